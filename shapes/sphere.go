package shapes

import (
	"math"

	"github.com/pbrady/shoccs/types"
)

// Sphere is an analytic solid object defined by a center and radius.
type Sphere struct {
	ID     int
	Center types.Real3
	Radius types.Real
}

// NewSphere constructs a Sphere with the given shape id, center, and radius.
func NewSphere(id int, center types.Real3, radius types.Real) Sphere {
	return Sphere{ID: id, Center: center, Radius: radius}
}

// Bounds returns the sphere's axis-aligned bounding box.
func (s Sphere) Bounds() (min, max types.Real3) {
	r := types.Real3{s.Radius, s.Radius, s.Radius}
	return s.Center.Sub(r), s.Center.Add(r)
}

// Intersect solves the ray/sphere quadratic along axis dir, starting at
// rayOrigin and stepping with spacing h. The ray lies entirely within the
// plane fixed by rayOrigin's transverse coordinates; only the dir component
// of rayOrigin varies along the ray.
func (s Sphere) Intersect(rayOrigin types.Real3, dir int, h types.Real) []Hit {
	delta := rayOrigin.Sub(s.Center)

	// Solve |delta + t*e_dir|^2 = R^2 for t, i.e.
	// t^2 + 2*delta[dir]*t + (|delta|^2 - R^2) = 0
	b := delta[dir]
	c := delta[0]*delta[0] + delta[1]*delta[1] + delta[2]*delta[2] - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	t1, t2 := -b-sq, -b+sq
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	idx1 := t1 / h
	idx2 := t2 / h

	entryCoord := int(math.Ceil(idx1))
	exitCoord := int(math.Floor(idx2))

	entryPos := rayOrigin
	entryPos[dir] += t1
	exitPos := rayOrigin
	exitPos[dir] += t2

	entryPsi := clamp01(idx1 - types.Real(entryCoord-1))
	exitPsi := clamp01(types.Real(exitCoord+1) - idx2)

	return []Hit{
		{Position: entryPos, Psi: entryPsi, RayOutside: false, SolidCoord: entryCoord},
		{Position: exitPos, Psi: exitPsi, RayOutside: true, SolidCoord: exitCoord},
	}
}

func clamp01(v types.Real) types.Real {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
