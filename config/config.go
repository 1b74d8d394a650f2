// Package config loads the YAML description of a run: mesh extents and
// bounds, embedded shapes, domain and object boundary conditions, and which
// stencil/direction to assemble. It mirrors the teacher's InputParameters
// package's Parse(data []byte) error pattern, scoped to a direct
// github.com/ghodss/yaml unmarshal.
package config

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/pbrady/shoccs/bcs"
	"github.com/pbrady/shoccs/types"
)

// ShapeSpec describes one embedded object.
type ShapeSpec struct {
	Type   string     `json:"Type"`
	Center [3]float64 `json:"Center"`
	Radius float64    `json:"Radius"`
	BC     string     `json:"BC"`
}

// FacePairSpec is the YAML form of bcs.FacePair.
type FacePairSpec struct {
	Left  string `json:"Left"`
	Right string `json:"Right"`
}

// Spec is the top-level YAML document describing one mesh/operator build.
type Spec struct {
	Title     string          `json:"Title"`
	Extents   [3]int          `json:"Extents"`
	Min       [3]float64      `json:"Min"`
	Max       [3]float64      `json:"Max"`
	Stencil   string          `json:"Stencil"`
	Direction int             `json:"Direction"`
	GridBCs   [3]FacePairSpec `json:"GridBCs"`
	Shapes    []ShapeSpec     `json:"Shapes"`
}

// Parse unmarshals YAML-encoded data into s, mirroring the teacher's
// InputParameters.Parse signature.
func (s *Spec) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("config: parse failed: %w", err)
	}
	return s.Validate()
}

// Validate checks field ranges that would otherwise surface as confusing
// panics deep inside mesh/operator construction.
func (s *Spec) Validate() error {
	for d := 0; d < 3; d++ {
		if s.Extents[d] < 1 {
			return fmt.Errorf("config: Extents[%d]=%d must be >= 1", d, s.Extents[d])
		}
		if s.Min[d] >= s.Max[d] {
			return fmt.Errorf("config: Min[%d]=%v must be < Max[%d]=%v", d, s.Min[d], d, s.Max[d])
		}
	}
	if s.Direction < 0 || s.Direction > 2 {
		return fmt.Errorf("config: Direction=%d must be in [0,2]", s.Direction)
	}
	return nil
}

// LoadSpec reads and parses the YAML file at path.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	spec := &Spec{}
	if err := spec.Parse(data); err != nil {
		return nil, fmt.Errorf("config: loading %s: %w", path, err)
	}
	return spec, nil
}

// ExtentsInt3 returns Extents as a types.Int3.
func (s *Spec) ExtentsInt3() types.Int3 { return types.Int3{s.Extents[0], s.Extents[1], s.Extents[2]} }

// MinReal3 returns Min as a types.Real3.
func (s *Spec) MinReal3() types.Real3 { return types.Real3{s.Min[0], s.Min[1], s.Min[2]} }

// MaxReal3 returns Max as a types.Real3.
func (s *Spec) MaxReal3() types.Real3 { return types.Real3{s.Max[0], s.Max[1], s.Max[2]} }

// GridBCsGrid converts the YAML boundary-condition names into a bcs.Grid.
func (s *Spec) GridBCsGrid() bcs.Grid {
	var g bcs.Grid
	for d := 0; d < 3; d++ {
		g[d] = bcs.FacePair{
			Left:  bcs.ParseName(s.GridBCs[d].Left),
			Right: bcs.ParseName(s.GridBCs[d].Right),
		}
	}
	return g
}

// ObjectBCs converts each shape's BC name into a bcs.Object, indexed by
// shape position (matching shapes.Sphere.ID assignment order).
func (s *Spec) ObjectBCs() bcs.Object {
	obj := make(bcs.Object, len(s.Shapes))
	for i, sh := range s.Shapes {
		obj[i] = bcs.ParseName(sh.BC)
	}
	return obj
}
