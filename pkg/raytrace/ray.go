// Package raytrace implements the ray primitive and its two intersection
// tests: the AABB slab test used by the BVH, and Möller-Trumbore
// ray-triangle intersection used at the leaves.
package raytrace

import (
	"math"

	"github.com/taigrr/lumen/pkg/vecmath"
)

// triangleEpsilon rejects rays nearly parallel to a triangle's plane.
const triangleEpsilon = 1e-8

// Ray is a ray in 3D space, with a precomputed inverse direction for
// fast AABB slab tests. Sign records, per axis, whether the inverse
// direction component is negative — used by BVH traversal to pick the
// near child without recomputing the sign test per node.
type Ray struct {
	Origin    vecmath.Vec3
	Direction vecmath.Vec3
	InvDir    vecmath.Vec3
	Sign      [3]bool
}

// New builds a Ray from an origin and a (not necessarily unit-length)
// direction. The direction is normalized; InvDir and Sign are derived
// from the normalized direction, so 1/0 and 1/-0 both appear correctly
// as +Inf/-Inf on axis-aligned rays instead of panicking.
func New(origin, direction vecmath.Vec3) Ray {
	dir := direction.Normalize()
	inv := vecmath.V3(1/dir.X, 1/dir.Y, 1/dir.Z)
	return Ray{
		Origin:    origin,
		Direction: dir,
		InvDir:    inv,
		Sign:      [3]bool{inv.X < 0, inv.Y < 0, inv.Z < 0},
	}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) vecmath.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectAABB performs the slab test against box, returning the
// entry/exit parametric distances and whether the ray hits the box at
// all ahead of the origin (tExit >= max(tEnter, 0)). Handles
// zero-direction-component rays via IEEE-754 infinities in InvDir
// rather than dividing by zero at call time.
func (r Ray) IntersectAABB(box vecmath.AABB) (tEnter, tExit float32, hit bool) {
	t0x := (box.Min.X - r.Origin.X) * r.InvDir.X
	t1x := (box.Max.X - r.Origin.X) * r.InvDir.X
	t0y := (box.Min.Y - r.Origin.Y) * r.InvDir.Y
	t1y := (box.Max.Y - r.Origin.Y) * r.InvDir.Y
	t0z := (box.Min.Z - r.Origin.Z) * r.InvDir.Z
	t1z := (box.Max.Z - r.Origin.Z) * r.InvDir.Z

	tMin := fmin32(t0x, t1x)
	tMin = fmax32(tMin, fmin32(t0y, t1y))
	tMin = fmax32(tMin, fmin32(t0z, t1z))

	tMax := fmax32(t0x, t1x)
	tMax = fmin32(tMax, fmax32(t0y, t1y))
	tMax = fmin32(tMax, fmax32(t0z, t1z))

	if tMax < tMin || tMax < 0 {
		return tMin, tMax, false
	}
	return tMin, tMax, true
}

// Triangle is three vertex positions, used only as the parameter shape
// for intersection tests — the mesh package stores triangle indices,
// not this struct, at rest.
type Triangle struct {
	A, B, C vecmath.Vec3
}

// IntersectTriangle implements the Möller-Trumbore ray-triangle
// intersection test, returning the hit distance and barycentric u, v
// coordinates. ok is false when the ray is (nearly) parallel to the
// triangle's plane, the barycentric coordinates fall outside the
// triangle, or the hit lies behind triangleEpsilon along the ray.
func (r Ray) IntersectTriangle(tri Triangle) (t, u, v float32, ok bool) {
	edge1 := tri.B.Sub(tri.A)
	edge2 := tri.C.Sub(tri.A)
	h := r.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -triangleEpsilon && a < triangleEpsilon {
		return 0, 0, 0, false
	}

	f := 1 / a
	s := r.Origin.Sub(tri.A)
	u = f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v = f * r.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = f * edge2.Dot(q)
	if t <= triangleEpsilon {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

func fmin32(a, b float32) float32 {
	if math.IsNaN(float64(a)) {
		return a
	}
	if a < b {
		return a
	}
	return b
}

func fmax32(a, b float32) float32 {
	if math.IsNaN(float64(a)) {
		return a
	}
	if a > b {
		return a
	}
	return b
}
