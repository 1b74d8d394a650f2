// Package operators assembles mesh.Mesh + stencils.Stencil + boundary
// conditions into the sparse linear operators (O, B, N) that apply one
// directional derivative across a whole domain, honoring domain-face and
// object-boundary closures line by line.
package operators

import (
	"fmt"

	"github.com/pbrady/shoccs/bcs"
	"github.com/pbrady/shoccs/field"
	"github.com/pbrady/shoccs/matrix"
	"github.com/pbrady/shoccs/mesh"
	"github.com/pbrady/shoccs/stencils"
	"github.com/pbrady/shoccs/types"
)

// Derivative applies one directional derivative (∂/∂xᵢ, or whatever the
// supplied Stencil computes) across the whole mesh: O covers every
// interior/boundary-closure row addressed by field values alone, B adds the
// contribution of object-boundary (Dirichlet) surface values, and N adds
// the contribution of domain Neumann flux values.
type Derivative struct {
	dir int
	O   matrix.Block
	B   matrix.CSR
	N   matrix.CSR
}

// NewDerivative assembles a Derivative along direction dir from msh, using
// stencil st to compute interior and boundary coefficients, gridBCs for the
// domain faces, and objBCs to resolve each embedded object's boundary type
// (only bcs.Dirichlet is supported on objects; anything else is an error).
func NewDerivative(dir int, msh mesh.Mesh, st stencils.Stencil, gridBCs bcs.Grid, objBCs bcs.Object) (Derivative, error) {
	h := msh.H(dir)
	qmax := st.QueryMax()

	interiorWidth := 2*qmax.P + 1
	interiorC := make([]types.Real, interiorWidth)
	st.Interior(h, interiorC)
	interiorOffsets := make([]types.Integer, interiorWidth)
	for k := range interiorOffsets {
		interiorOffsets[k] = types.Integer(k) - qmax.P
	}

	n := msh.Size()
	bb := matrix.NewBlockBuilder(n, n)
	bBuilder := matrix.NewCSRBuilder(n, n)
	nBuilder := matrix.NewCSRBuilder(n, n)

	buf := make([]types.Real, qmax.R*qmax.T)
	extra := make([]types.Real, qmax.Ex)

	for _, line := range msh.Lines(dir) {
		if msh.DirichletLine(line.Start.MeshCoordinate, dir, gridBCs) {
			continue
		}

		stride := line.Stride
		columns := line.End.MeshCoordinate[dir] - line.Start.MeshCoordinate[dir] + 1
		rowOffset := msh.IC(line.Start.MeshCoordinate)
		colOffset := rowOffset
		// An object end of the line is the solid cell standing in for the
		// surface: its value is supplied through B, so it is neither an
		// output row nor an input column, and the closure row nearest the
		// surface sits one cell in from it.
		if line.Start.Object != nil {
			columns--
			rowOffset += stride
			colOffset += stride
		}
		rightOffset := msh.IC(line.End.MeshCoordinate)
		if line.End.Object != nil {
			columns--
			rightOffset -= stride
		}

		leftMat, err := assembleBoundary(boundarySide{
			dir: dir, h: h, right: false,
			b: line.Start, lineOffset: rowOffset,
			gridBC: gridBCs[dir].Left, objBCs: objBCs,
			stride: stride, st: st, qmax: qmax,
			buf: buf, extra: extra,
			bBuilder: bBuilder, nBuilder: nBuilder,
		})
		if err != nil {
			return Derivative{}, err
		}

		rightMat, err := assembleBoundary(boundarySide{
			dir: dir, h: h, right: true,
			b: line.End, lineOffset: rightOffset,
			gridBC: gridBCs[dir].Right, objBCs: objBCs,
			stride: stride, st: st, qmax: qmax,
			buf: buf, extra: extra,
			bBuilder: bBuilder, nBuilder: nBuilder,
		})
		if err != nil {
			return Derivative{}, err
		}

		rows := columns - leftMat.Rows() - rightMat.Rows()
		// A domain Dirichlet face has no output row of its own (the value
		// there is prescribed, not computed): drop one row from the count
		// and, on the left end, slide the interior's starting row past it.
		// The column offset is untouched either way, so the boundary cell
		// itself still feeds the nearest closure row as a known input.
		if line.Start.Object == nil && gridBCs[dir].Left == bcs.Dirichlet {
			rows--
			rowOffset += stride
		}
		if line.End.Object == nil && gridBCs[dir].Right == bcs.Dirichlet {
			rows--
		}
		if rows < 0 {
			return Derivative{}, fmt.Errorf(
				"operators: direction %d line at %v too short for stencil boundary closure", dir, line.Start.MeshCoordinate)
		}

		ib := matrix.NewInnerBlock(columns, rowOffset, colOffset, stride,
			leftMat, matrix.NewCirculant(rows, columns, interiorOffsets, interiorC), rightMat)
		bb.Add(ib)
	}

	return Derivative{dir: dir, O: bb.Build(), B: bBuilder.Build(), N: nBuilder.Build()}, nil
}

type boundarySide struct {
	dir        int
	h          types.Real
	right      bool
	b          mesh.Boundary
	lineOffset types.Integer
	gridBC     bcs.Type
	objBCs     bcs.Object
	stride     types.Integer
	st         stencils.Stencil
	qmax       stencils.StencilInfo
	buf, extra []types.Real
	bBuilder   *matrix.CSRBuilder
	nBuilder   *matrix.CSRBuilder
}

// assembleBoundary builds the Dense closure block for one end of a line,
// emitting any B (object Dirichlet) or N (domain Neumann) coupling entries
// along the way.
//
// Row convention: stencil.NBS always returns row 0 as the row nearest the
// boundary, growing into the interior. For the left end that already
// matches placement order (row 0 at the line's first address); for the
// right end the block sits at the tail of the line, so rows are reversed
// before constructing Dense, putting the boundary-nearest row last.
func assembleBoundary(s boundarySide) (matrix.Dense, error) {
	if s.b.Object != nil {
		return assembleObjectBoundary(s)
	}
	return assembleDomainBoundary(s)
}

func assembleObjectBoundary(s boundarySide) (matrix.Dense, error) {
	ob := s.b.Object
	if ob.ObjectID < 0 || ob.ObjectID >= len(s.objBCs) {
		return matrix.Dense{}, fmt.Errorf("operators: object id %d out of range", ob.ObjectID)
	}
	bc := s.objBCs[ob.ObjectID]
	if bc != bcs.Dirichlet {
		return matrix.Dense{}, fmt.Errorf(
			"operators: object %d has unsupported boundary type %s (only Dirichlet is supported on objects)", ob.ObjectID, bc)
	}

	info := s.st.Query(bc)
	if err := checkCapacity(info, s.qmax); err != nil {
		return matrix.Dense{}, err
	}
	s.st.NBS(s.h, bc, ob.Psi, s.right, s.buf[:info.R*info.T], s.extra[:info.Ex])

	rows, cols := info.R, info.T-1
	values := make([]types.Real, rows*cols)
	dropCol, keepFrom := 0, 1
	if s.right {
		dropCol, keepFrom = info.T-1, 0
	}
	// emit the dropped column (the object's own Dirichlet value) into B,
	// and copy the remaining columns into the Dense block, placing each raw
	// NBS row (0 = nearest the boundary) at its global address.
	for r := types.Integer(0); r < rows; r++ {
		placed := rowIndex(r, rows, s.right)
		s.bBuilder.Add(s.globalRow(r), ob.ObjectCoordinate, s.buf[r*info.T+dropCol])
		copy(values[placed*cols:placed*cols+cols], s.buf[r*info.T+keepFrom:r*info.T+keepFrom+cols])
	}
	return matrix.NewDense(rows, cols, values), nil
}

func assembleDomainBoundary(s boundarySide) (matrix.Dense, error) {
	bc := s.gridBC
	info := s.st.Query(bc)
	if err := checkCapacity(info, s.qmax); err != nil {
		return matrix.Dense{}, err
	}
	s.st.NBS(s.h, bc, 1, s.right, s.buf[:info.R*info.T], s.extra[:info.Ex])

	// A domain Dirichlet face still gets the full rLeft/rRight-row closure
	// here, unreduced: the caller (NewDerivative) is the one that drops a
	// row and slides the interior's offset, since that's where the line's
	// row/column accounting lives.
	values := make([]types.Real, info.R*info.T)
	for r := types.Integer(0); r < info.R; r++ {
		dst := rowIndex(r, info.R, s.right)
		copy(values[dst*info.T:dst*info.T+info.T], s.buf[r*info.T:r*info.T+info.T])
	}

	if bc == bcs.Neumann {
		for r := types.Integer(0); r < info.Ex; r++ {
			// every extra entry reads the flux value at the boundary cell
			row := s.globalRow(r)
			s.nBuilder.Add(row, s.lineOffset, s.extra[r])
		}
	}
	return matrix.NewDense(info.R, info.T, values), nil
}

func checkCapacity(info, qmax stencils.StencilInfo) error {
	if info.R > qmax.R || info.T > qmax.T || info.Ex > qmax.Ex {
		return fmt.Errorf("operators: stencil query %+v exceeds capacity %+v", info, qmax)
	}
	return nil
}

// rowIndex maps a raw NBS row (0 = nearest the boundary) to its placement
// within a block of n rows: unchanged for the left end, reversed for the
// right end so the boundary-nearest row lands last (at the block's highest
// global address).
func rowIndex(r, n types.Integer, right bool) types.Integer {
	if right {
		return n - 1 - r
	}
	return r
}

// globalRow computes the global mesh row address of raw NBS row r (0 =
// nearest the boundary), independent of how that row is placed within the
// Dense block's local layout.
func (s boundarySide) globalRow(r types.Integer) types.Integer {
	if s.right {
		return s.lineOffset - r*s.stride
	}
	return s.lineOffset + r*s.stride
}

// Dir returns the direction this Derivative was built for.
func (d Derivative) Dir() int { return d.dir }

// Apply computes du.D = O(u.D) [op], then adds B's coupling to the
// direction-specific object boundary values.
func (d Derivative) Apply(u, du field.Scalar, op matrix.Op) {
	d.O.Apply(u.D, du.D, op)
	d.B.Apply(u.RDir(d.dir), du.D)
}

// ApplyNeumann is Apply plus N's coupling to the Neumann flux field nu.
func (d Derivative) ApplyNeumann(u, nu, du field.Scalar, op matrix.Op) {
	d.Apply(u, du, op)
	d.N.Apply(nu.D, du.D)
}
