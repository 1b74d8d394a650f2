package mesh

import (
	"sort"

	"github.com/pbrady/shoccs/types"
)

// Filter is a sorted set of linear indices to be skipped by a field view's
// iteration: the fully interior solid cells (CutGeometry.S) along one
// direction, or their union across all three.
type Filter struct {
	skip []types.Integer
}

// NewFilter builds a Filter directly from an arbitrary set of linear
// indices, for callers (or tests) that already have an index set rather
// than a Mesh to derive one from.
func NewFilter(skip []types.Integer) Filter {
	cp := make([]types.Integer, len(skip))
	copy(cp, skip)
	return newFilter(cp)
}

func newFilter(skip []types.Integer) Filter {
	sort.Slice(skip, func(i, j int) bool { return skip[i] < skip[j] })
	out := skip[:0]
	var last types.Integer = -1
	for _, v := range skip {
		if v != last {
			out = append(out, v)
			last = v
		}
	}
	return Filter{skip: out}
}

// Skip reports whether linear index ic is filtered out.
func (f Filter) Skip(ic types.Integer) bool {
	i := sort.Search(len(f.skip), func(i int) bool { return f.skip[i] >= ic })
	return i < len(f.skip) && f.skip[i] == ic
}

// Len returns the number of skipped indices.
func (f Filter) Len() int { return len(f.skip) }

// Size returns the number of surviving indices out of a domain of total
// cells.
func (f Filter) Size(total int) int { return total - len(f.skip) }

// FDir returns the filter for the fully interior solid cells along direction
// d: mesh.S(d) converted to linear indices.
func (m Mesh) FDir(d int) Filter {
	s := m.Geometry.S(d)
	skip := make([]types.Integer, len(s))
	for i, ijk := range s {
		skip[i] = m.IC(ijk)
	}
	return newFilter(skip)
}

// F returns the filter for the union of fully interior solid cells across
// all three directions.
func (m Mesh) F() Filter {
	var skip []types.Integer
	for d := 0; d < 3; d++ {
		for _, ijk := range m.Geometry.S(d) {
			skip = append(skip, m.IC(ijk))
		}
	}
	return newFilter(skip)
}

// FUnion returns the filter for the union of the fully interior solid cells
// along the given directions only.
func FUnion(m Mesh, dirs ...int) Filter {
	var skip []types.Integer
	for _, d := range dirs {
		for _, ijk := range m.Geometry.S(d) {
			skip = append(skip, m.IC(ijk))
		}
	}
	return newFilter(skip)
}
