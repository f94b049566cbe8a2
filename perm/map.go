package perm

// MapPermutation is a sparse representation: only moved points are
// stored, as a map[Point]Point of point -> image. It suits permutations
// whose domain is large but whose support is small.
type MapPermutation struct {
	images map[Point]Point
}

// NewMapPermutation builds a MapPermutation from an explicit point->image
// map. Fixed points (images[x] == x) are dropped; the caller is
// responsible for the map describing a bijection.
func NewMapPermutation(images map[Point]Point) Permutation {
	m := make(map[Point]Point, len(images))
	for k, v := range images {
		if k != v {
			m[k] = v
		}
	}
	if len(m) == 0 {
		return ID()
	}
	return MapPermutation{images: m}
}

func (p MapPermutation) Apply(x Point) Point {
	if img, ok := p.images[x]; ok {
		return img
	}
	return x
}

func (p MapPermutation) Inv() Permutation {
	inv := make(map[Point]Point, len(p.images))
	for k, v := range p.images {
		inv[v] = k
	}
	return MapPermutation{images: inv}
}

func (p MapPermutation) support() []Point {
	pts := make([]Point, 0, len(p.images))
	for k := range p.images {
		pts = append(pts, k)
	}
	return pts
}

func (p MapPermutation) Multiply(other Permutation) Permutation {
	seen := make(map[Point]struct{}, len(p.images))
	out := make(map[Point]Point, len(p.images))
	for x := range p.images {
		seen[x] = struct{}{}
		out[x] = other.Apply(p.Apply(x))
	}
	if om, ok := other.(MapPermutation); ok {
		for x := range om.images {
			if _, done := seen[x]; done {
				continue
			}
			out[x] = other.Apply(p.Apply(x))
		}
	} else if lmp, ok := other.Lmp(); ok {
		for x := 0; x <= lmp; x++ {
			if _, done := seen[x]; done {
				continue
			}
			out[x] = other.Apply(p.Apply(x))
		}
	}
	return NewMapPermutation(out)
}

func (p MapPermutation) Divide(other Permutation) Permutation {
	return p.Multiply(other.Inv())
}

func (p MapPermutation) Pow(k int) Permutation {
	if k < 0 {
		return p.Inv().Pow(-k)
	}
	result := ID()
	base := Permutation(p)
	for k > 0 {
		if k&1 == 1 {
			result = result.Multiply(base)
		}
		base = base.Multiply(base)
		k >>= 1
	}
	return result
}

func (p MapPermutation) Order() int {
	visited := make(map[Point]bool, len(p.images))
	order := 1
	for start := range p.images {
		if visited[start] {
			continue
		}
		cycleLen := 0
		cur := start
		for !visited[cur] {
			visited[cur] = true
			cur = p.Apply(cur)
			cycleLen++
		}
		if cycleLen > 1 {
			order = lcm(order, cycleLen)
		}
	}
	if order == 0 {
		return 1
	}
	return order
}

func (p MapPermutation) Lmp() (Point, bool) {
	if len(p.images) == 0 {
		return 0, false
	}
	lmp := -1
	for k := range p.images {
		if k > lmp {
			lmp = k
		}
	}
	return lmp, true
}

func (p MapPermutation) Shift(k Point) Permutation {
	if k == 0 {
		return p
	}
	out := make(map[Point]Point, len(p.images))
	for x, img := range p.images {
		out[x+k] = img + k
	}
	return MapPermutation{images: out}
}

func (p MapPermutation) IsID() bool {
	return len(p.images) == 0
}

func (p MapPermutation) Equal(other Permutation) bool {
	pts := p.support()
	if om, ok := other.(MapPermutation); ok {
		union := make(map[Point]struct{}, len(pts)+len(om.images))
		for _, x := range pts {
			union[x] = struct{}{}
		}
		for x := range om.images {
			union[x] = struct{}{}
		}
		for x := range union {
			if p.Apply(x) != other.Apply(x) {
				return false
			}
		}
		return true
	}
	if lmp, ok := other.Lmp(); ok {
		for x := 0; x <= lmp; x++ {
			if p.Apply(x) != other.Apply(x) {
				return false
			}
		}
		for _, x := range pts {
			if p.Apply(x) != other.Apply(x) {
				return false
			}
		}
		return true
	}
	return p.IsID()
}

func (p MapPermutation) Hash() uint64 {
	return toDense(p).Hash()
}

func (p MapPermutation) String() string {
	return fmtString(p)
}
