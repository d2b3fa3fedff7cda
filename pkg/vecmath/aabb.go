package vecmath

import "math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates an AABB from min and max points.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns an AABB that contains no points: Min is set to
// +infinity and Max to -infinity on every axis, so the very first
// Expand or Union call replaces both unconditionally.
func EmptyAABB() AABB {
	inf := float32(math.Inf(1))
	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// FromTriangle returns the AABB enclosing a triangle's three vertices.
func FromTriangle(a, b, c Vec3) AABB {
	min := a.Min(b).Min(c)
	max := a.Max(b).Max(c)
	return AABB{Min: min, Max: max}
}

// Center returns the midpoint of the AABB.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the dimensions of the AABB.
func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// HalfSize returns half the dimensions (extents from center).
func (b AABB) HalfSize() Vec3 {
	return b.Size().Scale(0.5)
}

// Diagonal returns the length of the box's diagonal.
func (b AABB) Diagonal() float32 {
	return b.Size().Len()
}

// Get returns Min for index 0 and Max for index 1. It panics for any
// other index.
func (b AABB) Get(index int) Vec3 {
	switch index {
	case 0:
		return b.Min
	case 1:
		return b.Max
	default:
		panic("vecmath: index out of bounds for AABB")
	}
}

// Expand grows the box, in place, to also enclose other.
func (b *AABB) Expand(other AABB) {
	b.Min = b.Min.Min(other.Min)
	b.Max = b.Max.Max(other.Max)
}

// Union returns the smallest AABB enclosing both b and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: b.Min.Min(other.Min),
		Max: b.Max.Max(other.Max),
	}
}

// ContainsPoint returns true if the point lies inside (or on the
// boundary of) the AABB.
func (b AABB) ContainsPoint(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Contains returns true if other is entirely enclosed by b.
func (b AABB) Contains(other AABB) bool {
	return b.ContainsPoint(other.Min) && b.ContainsPoint(other.Max)
}

// Transform returns an AABB that bounds b after applying m, by
// transforming all 8 corners and taking their bounds.
func (b AABB) Transform(m Mat4) AABB {
	corners := [8]Vec3{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}

	transformed := m.MulVec3(corners[0])
	newMin := transformed
	newMax := transformed

	for i := 1; i < 8; i++ {
		transformed = m.MulVec3(corners[i])
		newMin = newMin.Min(transformed)
		newMax = newMax.Max(transformed)
	}

	return AABB{Min: newMin, Max: newMax}
}

// LongestAxis returns the index (0=X, 1=Y, 2=Z) of the box's longest
// dimension, used to choose both BVH split and traversal axes.
func (b AABB) LongestAxis() int {
	size := b.Size()
	axis := 0
	longest := size.X
	if size.Y > longest {
		axis = 1
		longest = size.Y
	}
	if size.Z > longest {
		axis = 2
	}
	return axis
}
