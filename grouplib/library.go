package grouplib

import (
	"archive/zip"
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/katalvlaran/stabchain/group"
	"github.com/katalvlaran/stabchain/perm"
)

// DecoratedGroup is one entry of a group library: a generating set in
// 1-indexed cycle notation, a declared order, and free-form metadata
// (spec.md §6). Order is carried as *big.Int since group orders grow
// super-exponentially in degree.
type DecoratedGroup struct {
	Generators []perm.Cycles
	Order      *big.Int
	Metadata   map[string]string
}

// Group realizes the decorated entry's cycle-notation generators as a
// group.Group of 0-indexed permutations.
func (d DecoratedGroup) Group() group.Group {
	gens := make([]perm.Permutation, len(d.Generators))
	for i, c := range d.Generators {
		gens[i] = c.Permutation()
	}
	return group.New(gens)
}

// wireGroup mirrors DecoratedGroup's JSON shape: generators as raw
// 1-indexed cycle lists (no exported fields on perm.Cycles to hang json
// tags off of) and order as a decimal string (big.Int has no native
// JSON number representation large enough to trust).
type wireGroup struct {
	Generators [][][]int         `json:"generators"`
	Order      string            `json:"order"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler, validating every
// generator's cycle notation via perm.ParseCycles and parsing Order as
// a base-10 big integer.
func (d *DecoratedGroup) UnmarshalJSON(data []byte) error {
	var w wireGroup
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	gens := make([]perm.Cycles, len(w.Generators))
	for i, raw := range w.Generators {
		c, err := perm.ParseCycles(raw)
		if err != nil {
			return fmt.Errorf("grouplib: generator %d: %w", i, err)
		}
		gens[i] = c
	}
	order, ok := new(big.Int).SetString(w.Order, 10)
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadOrder, w.Order)
	}
	d.Generators = gens
	d.Order = order
	d.Metadata = w.Metadata
	return nil
}

// MarshalJSON implements json.Marshaler, the inverse of UnmarshalJSON.
func (d DecoratedGroup) MarshalJSON() ([]byte, error) {
	raw := make([][][]int, len(d.Generators))
	for i, c := range d.Generators {
		raw[i] = c.Slice()
	}
	order := d.Order
	if order == nil {
		order = big.NewInt(0)
	}
	return json.Marshal(wireGroup{Generators: raw, Order: order.String(), Metadata: d.Metadata})
}

// Load reads a JSON array of DecoratedGroup entries from r via a
// buffered reader (spec.md §6: "loaded via a buffered reader").
func Load(r io.Reader) ([]DecoratedGroup, error) {
	br := bufio.NewReader(r)
	var groups []DecoratedGroup
	if err := json.NewDecoder(br).Decode(&groups); err != nil {
		return nil, fmt.Errorf("grouplib: decode library: %w", err)
	}
	return groups, nil
}

// LoadFile opens path and loads it as a DecoratedGroup library.
func LoadFile(path string) ([]DecoratedGroup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grouplib: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// LoadZip unpacks a zip archive of one or more JSON library files and
// concatenates their DecoratedGroup entries — spec.md §6's "archive
// inputs are unpacked first". Every entry with a .json suffix is read;
// others are skipped.
func LoadZip(path string) ([]DecoratedGroup, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("grouplib: open zip %s: %w", path, err)
	}
	defer archive.Close()

	if len(archive.File) == 0 {
		return nil, ErrNoZipEntries
	}

	var all []DecoratedGroup
	found := false
	for _, zf := range archive.File {
		if zf.FileInfo().IsDir() || !strings.HasSuffix(zf.Name, ".json") {
			continue
		}
		found = true
		rc, err := zf.Open()
		if err != nil {
			return nil, fmt.Errorf("grouplib: open zip entry %s: %w", zf.Name, err)
		}
		groups, err := Load(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("grouplib: zip entry %s: %w", zf.Name, err)
		}
		all = append(all, groups...)
	}
	if !found {
		return nil, ErrNoZipEntries
	}
	return all, nil
}
