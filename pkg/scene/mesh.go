// Package scene provides mesh loading and representation for lumen.
package scene

import (
	"github.com/taigrr/lumen/pkg/bvh"
	"github.com/taigrr/lumen/pkg/raytrace"
	"github.com/taigrr/lumen/pkg/vecmath"
)

// Triangle holds the three vertex indices of one face, indexing into
// Mesh.V.
type Triangle struct {
	A, B, C int
}

// Mesh is a triangle soup: a flat vertex array plus one index triple,
// one face normal and one bounding box per triangle. Normals are
// per-triangle (flat shading) rather than per-vertex, matching a
// faceted STL mesh — there is no vertex-normal averaging step in the
// rendering path.
type Mesh struct {
	Name string

	V []vecmath.Vec3   // vertex positions
	T []Triangle       // triangle index triples, indexing V
	N []vecmath.Vec3   // per-triangle face normal, parallel to T
	B []vecmath.AABB   // per-triangle bounding box, parallel to T
	UV []vecmath.Vec2  // optional per-vertex UVs, parallel to V (GLTF only)

	Bounds vecmath.AABB

	// BVHRoot is populated by calling Build; it is nil until then.
	BVHRoot *bvh.Node
}

// Build constructs the mesh's BVH over all of its triangles.
func (m *Mesh) Build() {
	m.BVHRoot = bvh.Build(m.B)
}

// FindNearest returns the nearest triangle the ray hits, if any, by
// delegating to the BVH built by Build. Panics if Build has not been
// called yet.
func (m *Mesh) FindNearest(r raytrace.Ray, tMax float32) (hit bvh.Hit, ok bool) {
	if m.BVHRoot == nil {
		panic("scene: FindNearest called before Build")
	}
	return bvh.FindNearest(m.BVHRoot, r, tMax, m.TriangleAt)
}

// NewMesh creates an empty, named mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:   name,
		Bounds: vecmath.EmptyAABB(),
	}
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.T)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.V)
}

// Center returns the center of the mesh's bounding box.
func (m *Mesh) Center() vecmath.Vec3 {
	return m.Bounds.Center()
}

// Size returns the dimensions of the mesh's bounding box.
func (m *Mesh) Size() vecmath.Vec3 {
	return m.Bounds.Size()
}

// TriangleAt returns the raytrace.Triangle (vertex positions, not
// indices) for triangle i.
func (m *Mesh) TriangleAt(i int) raytrace.Triangle {
	tri := m.T[i]
	return raytrace.Triangle{A: m.V[tri.A], B: m.V[tri.B], C: m.V[tri.C]}
}

// AddTriangle appends one triangle, computing and storing its face
// normal (from vertex winding) and bounding box. a, b, c are vertex
// positions; the vertices are appended to V and a new Triangle index
// triple recorded.
func (m *Mesh) AddTriangle(a, b, c vecmath.Vec3) {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	m.AddTriangleWithNormal(a, b, c, edge1.Cross(edge2).Normalize())
}

// AddTriangleWithNormal appends one triangle using an explicitly
// supplied face normal instead of one derived from vertex winding —
// for mesh formats (STL) that provide their own per-facet normal,
// which may disagree with winding order.
func (m *Mesh) AddTriangleWithNormal(a, b, c, normal vecmath.Vec3) {
	base := len(m.V)
	m.V = append(m.V, a, b, c)
	m.T = append(m.T, Triangle{A: base, B: base + 1, C: base + 2})
	m.N = append(m.N, normal)

	box := vecmath.FromTriangle(a, b, c)
	m.B = append(m.B, box)
	m.Bounds.Expand(box)
}

// RecalculateBounds recomputes the overall bounding box and every
// per-triangle box from the current vertex positions. Call after
// directly mutating V (e.g. ApplyTransform).
func (m *Mesh) RecalculateBounds() {
	m.Bounds = vecmath.EmptyAABB()
	for i, tri := range m.T {
		box := vecmath.FromTriangle(m.V[tri.A], m.V[tri.B], m.V[tri.C])
		m.B[i] = box
		m.Bounds.Expand(box)
	}
}

// RecalculateNormals recomputes every per-triangle face normal from
// the current vertex positions.
func (m *Mesh) RecalculateNormals() {
	for i, tri := range m.T {
		edge1 := m.V[tri.B].Sub(m.V[tri.A])
		edge2 := m.V[tri.C].Sub(m.V[tri.A])
		m.N[i] = edge1.Cross(edge2).Normalize()
	}
}

// ApplyTransform bakes a transform into every vertex position (and
// rotates face normals by the transform's linear part), then
// recomputes all bounding boxes. Grounded in BaseObject's unused `mg`
// transform field in the original: there it was never multiplied
// through — here it does real work at load time.
func (m *Mesh) ApplyTransform(mat vecmath.Mat4) {
	for i := range m.V {
		m.V[i] = mat.MulVec3(m.V[i])
	}
	for i := range m.N {
		m.N[i] = mat.MulVec3Dir(m.N[i]).Normalize()
	}
	m.RecalculateBounds()
}

// Clone creates a deep copy of the mesh, excluding any built BVH
// (callers must rebuild it on the clone if needed).
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:   m.Name,
		V:      append([]vecmath.Vec3(nil), m.V...),
		T:      append([]Triangle(nil), m.T...),
		N:      append([]vecmath.Vec3(nil), m.N...),
		B:      append([]vecmath.AABB(nil), m.B...),
		Bounds: m.Bounds,
	}
	if m.UV != nil {
		clone.UV = append([]vecmath.Vec2(nil), m.UV...)
	}
	return clone
}
