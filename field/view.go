package field

import (
	"github.com/pbrady/shoccs/mesh"
	"github.com/pbrady/shoccs/types"
)

// View is a random-access, sized, contiguous sequence over one component of
// a Scalar, produced by a selector (D, Rx, Ry, Rz). It shares its backing
// slice with the Scalar it was taken from, so Set mutates the field.
type View struct {
	data []types.Real
}

// D selects the domain component.
func D(s Scalar) View { return View{data: s.D} }

// Rx, Ry, Rz select the per-direction boundary components.
func Rx(s Scalar) View { return View{data: s.Rx} }
func Ry(s Scalar) View { return View{data: s.Ry} }
func Rz(s Scalar) View { return View{data: s.Rz} }

// R selects all three boundary components as a tuple.
func R(s Scalar) (x, y, z View) { return Rx(s), Ry(s), Rz(s) }

func (v View) Len() int                  { return len(v.data) }
func (v View) At(i int) types.Real       { return v.data[i] }
func (v View) Set(i int, x types.Real)   { v.data[i] = x }
func (v View) Raw() []types.Real         { return v.data }

// Assign overwrites up to len(v) elements of v from src.
func (v View) Assign(src []types.Real) {
	n := len(v.data)
	if len(src) < n {
		n = len(src)
	}
	copy(v.data[:n], src[:n])
}

// Filter narrows v to the indices f does not skip, yielding a
// random-access, sized, bidirectional, non-contiguous sequence in D-major
// order over the surviving indices.
func (v View) Filter(f mesh.Filter) FilteredView {
	idx := make([]int, 0, f.Size(len(v.data)))
	for i := 0; i < len(v.data); i++ {
		if !f.Skip(i) {
			idx = append(idx, i)
		}
	}
	return FilteredView{data: v.data, idx: idx}
}

// FilteredView is a View restricted to the surviving (non-solid) indices of
// a Filter.
type FilteredView struct {
	data []types.Real
	idx  []int
}

func (fv FilteredView) Len() int            { return len(fv.idx) }
func (fv FilteredView) At(i int) types.Real { return fv.data[fv.idx[i]] }
func (fv FilteredView) Set(i int, x types.Real) {
	fv.data[fv.idx[i]] = x
}

// Assign overwrites up to Len() surviving indices from src, leaving solid
// (filtered-out) indices untouched.
func (fv FilteredView) Assign(src []types.Real) {
	n := len(fv.idx)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		fv.data[fv.idx[i]] = src[i]
	}
}

// AssignFiltered overwrites up to min(Len(), src.Len()) surviving indices
// of fv from the surviving indices of src, index-by-index in iteration
// order. This is the filtered-to-filtered assignment the upstream left
// unsupported; both sides skip their own solid indices independently.
func (fv FilteredView) AssignFiltered(src FilteredView) {
	n := len(fv.idx)
	if len(src.idx) < n {
		n = len(src.idx)
	}
	for i := 0; i < n; i++ {
		fv.data[fv.idx[i]] = src.data[src.idx[i]]
	}
}
