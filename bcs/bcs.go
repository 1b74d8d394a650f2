// Package bcs defines the boundary-condition vocabulary consumed by the mesh
// and operator packages: the domain-face conditions (Dirichlet, Neumann,
// Free) and the per-shape object conditions.
package bcs

import "strings"

// Type represents a boundary condition kind for a single domain face or
// object surface.
type Type uint8

const (
	// Dirichlet prescribes the field value at the boundary.
	Dirichlet Type = iota
	// Neumann prescribes the normal derivative at the boundary.
	Neumann
	// Free leaves the boundary unconstrained.
	Free
)

func (t Type) String() string {
	switch t {
	case Dirichlet:
		return "Dirichlet"
	case Neumann:
		return "Neumann"
	case Free:
		return "Free"
	default:
		return "Unknown"
	}
}

// NameMap provides a mapping from common boundary condition names to Type.
// Keys are lowercase for case-insensitive matching.
var NameMap = map[string]Type{
	"dirichlet": Dirichlet,
	"d":         Dirichlet,
	"neumann":   Neumann,
	"n":         Neumann,
	"free":      Free,
	"f":         Free,
}

// ParseName converts a boundary condition name string to a Type. The
// matching is case-insensitive and trims whitespace. Unknown names default
// to Free, mirroring the teacher's ParseBCName default-to-permissive
// behavior.
func ParseName(name string) Type {
	lower := strings.ToLower(strings.TrimSpace(name))
	if t, ok := NameMap[lower]; ok {
		return t
	}
	return Free
}

// FacePair holds the boundary condition on the left (low-index) and right
// (high-index) face of a single direction.
type FacePair struct {
	Left, Right Type
}

// Grid holds the domain-face boundary conditions for all three directions,
// indexed [0]=x, [1]=y, [2]=z.
type Grid [3]FacePair

// NewGrid is a small convenience constructor for building a Grid from three
// FacePairs, mirroring the upstream's bcs::Grid{dd, ff, nn} aggregate-init
// style used throughout the test suite.
func NewGrid(x, y, z FacePair) Grid {
	return Grid{x, y, z}
}

// Object holds the boundary condition for each shape id, indexed by the
// shape's id. Only Dirichlet is currently supported by the stencil/derivative
// assembly; any other value causes operators.NewDerivative to return an
// error rather than assembling an inconsistent operator.
type Object []Type
