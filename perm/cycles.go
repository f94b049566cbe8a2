package perm

import (
	"fmt"
	"strconv"
	"strings"
)

// Cycles is a permutation in 1-indexed disjoint-cycle notation: a list
// of cycles, each a list of positive integers, with every element
// appearing in at most one cycle. 1-cycles are omitted on export. This
// is the exchange format described in spec.md §6.
type Cycles struct {
	cycles [][]int
}

// ParseCycles validates raw 1-indexed cycle data and returns a Cycles
// value. It fails fast on non-positive integers and on a point
// appearing in more than one cycle.
func ParseCycles(raw [][]int) (Cycles, error) {
	seen := make(map[int]struct{})
	for _, cycle := range raw {
		for _, v := range cycle {
			if v <= 0 {
				return Cycles{}, fmt.Errorf("%w: %d", ErrMalformedCycle, v)
			}
			if _, dup := seen[v]; dup {
				return Cycles{}, fmt.Errorf("%w: %d", ErrDuplicatePoint, v)
			}
			seen[v] = struct{}{}
		}
	}
	cp := make([][]int, len(raw))
	for i, c := range raw {
		cc := make([]int, len(c))
		copy(cc, c)
		cp[i] = cc
	}
	return Cycles{cycles: cp}, nil
}

// SingleCycle builds a Cycles value from one cycle, e.g. SingleCycle(1,2,3) == "(1 2 3)".
func SingleCycle(points ...int) (Cycles, error) {
	return ParseCycles([][]int{points})
}

// Slice returns the underlying cycle lists; callers must not mutate it.
func (c Cycles) Slice() [][]int {
	return c.cycles
}

// Permutation converts the 1-indexed cycle notation to a 0-indexed
// Permutation, subtracting 1 from every point uniformly.
func (c Cycles) Permutation() Permutation {
	if len(c.cycles) == 0 {
		return ID()
	}
	maxPoint := 0
	for _, cycle := range c.cycles {
		for _, v := range cycle {
			if v > maxPoint {
				maxPoint = v
			}
		}
	}
	images := make([]Point, maxPoint)
	for i := range images {
		images[i] = i
	}
	for _, cycle := range c.cycles {
		for i, v := range cycle {
			next := cycle[(i+1)%len(cycle)]
			images[v-1] = next - 1
		}
	}
	return FromImages(images)
}

// String renders the cycle notation as "(a b c)(d e)", or "()" for the identity.
func (c Cycles) String() string {
	if len(c.cycles) == 0 {
		return "()"
	}
	var b strings.Builder
	for _, cycle := range c.cycles {
		b.WriteByte('(')
		for i, v := range cycle {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteByte(')')
	}
	return b.String()
}

// ExportCycles converts a 0-indexed Permutation to 1-indexed disjoint
// cycle notation, dropping 1-cycles.
func ExportCycles(p Permutation) Cycles {
	lmp, ok := p.Lmp()
	if !ok {
		return Cycles{}
	}
	accounted := make([]bool, lmp+1)
	var cycles [][]int
	for i := 0; i <= lmp; i++ {
		if accounted[i] {
			continue
		}
		accounted[i] = true
		cycle := []int{i + 1}
		cur := p.Apply(i)
		for cur != i {
			accounted[cur] = true
			cycle = append(cycle, cur+1)
			cur = p.Apply(cur)
		}
		if len(cycle) > 1 {
			cycles = append(cycles, cycle)
		}
	}
	return Cycles{cycles: cycles}
}

// ParseImageVector validates a 1-indexed image vector (the k-th entry is
// the image of k) and returns the corresponding 0-indexed Permutation.
func ParseImageVector(v []int) (Permutation, error) {
	n := len(v)
	seen := make([]bool, n+1)
	for _, img := range v {
		if img <= 0 || img > n {
			return nil, fmt.Errorf("%w: image %d out of range [1,%d]", ErrBadImageVector, img, n)
		}
		if seen[img] {
			return nil, fmt.Errorf("%w: image %d repeated", ErrBadImageVector, img)
		}
		seen[img] = true
	}
	images := make([]Point, n)
	for i, img := range v {
		images[i] = img - 1
	}
	return FromImages(images), nil
}

// ParseZeroIndexedImageVector validates a 0-indexed image vector (the
// k-th entry is the image of k) directly, with no offset conversion —
// used by the permutation converter CLI, whose input is already
// 0-indexed per spec.md §6.
func ParseZeroIndexedImageVector(v []int) (Permutation, error) {
	n := len(v)
	seen := make([]bool, n)
	for _, img := range v {
		if img < 0 || img >= n {
			return nil, fmt.Errorf("%w: image %d out of range [0,%d)", ErrBadImageVector, img, n)
		}
		if seen[img] {
			return nil, fmt.Errorf("%w: image %d repeated", ErrBadImageVector, img)
		}
		seen[img] = true
	}
	images := make([]Point, n)
	copy(images, v)
	return FromImages(images), nil
}
