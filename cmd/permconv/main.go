// Command permconv converts 0-indexed permutation image vectors to
// canonical disjoint-cycle notation, one line in, one line out (spec.md
// §6, grounded on original_source/examples/permutation_converter.rs).
//
// Usage:
//
//	permconv < images.txt
//
// Each stdin line is whitespace-separated 0-indexed integers: the k-th
// token is the image of k. A malformed line (non-integer token, image
// out of range, repeated image) fails fast — the offending line is
// reported on stderr and the program exits non-zero without processing
// the remaining lines, matching the original's eager .unwrap() panics.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/stabchain/perm"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "permconv:", err)
		os.Exit(1)
	}
}

func run(in *os.File, out *os.File) error {
	scanner := bufio.NewScanner(in)
	w := bufio.NewWriter(out)
	defer w.Flush()

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return fmt.Errorf("line %d: %w", lineNo, perm.ErrEmptyLine)
		}

		fields := strings.Fields(line)
		images := make([]int, len(fields))
		for i, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return fmt.Errorf("line %d: %q is not an integer", lineNo, tok)
			}
			images[i] = v
		}

		p, err := perm.ParseZeroIndexedImageVector(images)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		fmt.Fprintln(w, p.String())
	}
	return scanner.Err()
}
