// Package bvh implements a bounding volume hierarchy over a flat list
// of triangle bounding boxes, used to accelerate nearest-hit ray
// queries against a mesh.
package bvh

import (
	"sort"

	"github.com/taigrr/lumen/pkg/raytrace"
	"github.com/taigrr/lumen/pkg/vecmath"
)

// MaxTrianglesPerLeaf bounds how many triangles a leaf node may hold
// before the builder tries another split.
const MaxTrianglesPerLeaf = 4

// MaxDepth bounds recursion depth; a subtree still over the leaf limit
// at this depth is forced into a single leaf rather than splitting
// further.
const MaxDepth = 32

// medianSampleLimit caps how many triangle centers are sorted to find
// a split median — above this the median is estimated from a sampled
// subset rather than a full sort, trading split quality for build time
// on very large meshes.
const medianSampleLimit = 100

// Node is one node of the tree: either an internal node with two
// children, or a leaf holding triangle indices directly.
type Node struct {
	Bounds   vecmath.AABB
	Left     *Node
	Right    *Node
	Indices  []int // populated only on leaves
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Build constructs a BVH over triangles identified purely by index,
// given their precomputed bounding boxes (boxes[i] must be the AABB of
// triangle i). The returned tree stores only indices into boxes — the
// caller is responsible for mapping an index back to real geometry at
// traversal time.
func Build(boxes []vecmath.AABB) *Node {
	indices := make([]int, len(boxes))
	for i := range indices {
		indices[i] = i
	}
	return buildRecursive(boxes, indices, 0)
}

func buildRecursive(boxes []vecmath.AABB, indices []int, depth int) *Node {
	bounds := enclosingBox(boxes, indices)

	if len(indices) <= MaxTrianglesPerLeaf || depth >= MaxDepth {
		return &Node{Bounds: bounds, Indices: indices}
	}

	axis := bounds.LongestAxis()
	median := findMedian(boxes, indices, axis)

	var left, right []int
	for _, idx := range indices {
		if boxes[idx].Center().At(axis) < median {
			left = append(left, idx)
		} else {
			right = append(right, idx)
		}
	}

	// Degenerate split (all centers landed on one side): fall back to
	// an even index split so the tree still makes progress.
	if len(left) == 0 || len(right) == 0 {
		mid := len(indices) / 2
		left = append([]int(nil), indices[:mid]...)
		right = append([]int(nil), indices[mid:]...)
	}

	return &Node{
		Bounds: bounds,
		Left:   buildRecursive(boxes, left, depth+1),
		Right:  buildRecursive(boxes, right, depth+1),
	}
}

// findMedian estimates the median center coordinate along axis. For
// small index sets it sorts exactly; above medianSampleLimit it sorts
// only a sampled subset of up to medianSampleLimit centers, matching
// the original build policy this BVH is grounded on.
func findMedian(boxes []vecmath.AABB, indices []int, axis int) float32 {
	if len(indices) <= medianSampleLimit {
		vals := make([]float32, len(indices))
		for i, idx := range indices {
			vals[i] = boxes[idx].Center().At(axis)
		}
		sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
		return vals[len(vals)/2]
	}

	step := len(indices) / medianSampleLimit
	if step < 1 {
		step = 1
	}
	var sampled []float32
	for i := 0; i < len(indices) && len(sampled) < medianSampleLimit; i += step {
		sampled = append(sampled, boxes[indices[i]].Center().At(axis))
	}
	sort.Slice(sampled, func(i, j int) bool { return sampled[i] < sampled[j] })
	return sampled[len(sampled)/2]
}

func enclosingBox(boxes []vecmath.AABB, indices []int) vecmath.AABB {
	if len(indices) == 0 {
		return vecmath.EmptyAABB()
	}
	box := boxes[indices[0]]
	for _, idx := range indices[1:] {
		box.Expand(boxes[idx])
	}
	return box
}

// Hit is the result of a successful nearest-hit query.
type Hit struct {
	TriangleIndex int
	Distance      float32
	U, V          float32
}

// TriangleLookup returns the world-space triangle for index i, used by
// FindNearest to run the leaf-level ray-triangle test without the bvh
// package needing to know anything about mesh storage.
type TriangleLookup func(i int) raytrace.Triangle

// FindNearest traverses the tree for the closest triangle hit by r
// within (epsilon, tMax]. It recomputes the traversal axis from each
// internal node's own bounding box (not the axis used when that node
// was built), and orders child visitation by the ray direction's sign
// on that axis so the near child is always tried first.
func FindNearest(n *Node, r raytrace.Ray, tMax float32, lookup TriangleLookup) (Hit, bool) {
	if n == nil {
		return Hit{}, false
	}
	if _, boxExit, hit := r.IntersectAABB(n.Bounds); !hit || boxExit < 0 {
		return Hit{}, false
	}

	if n.IsLeaf() {
		return nearestInLeaf(n.Indices, r, tMax, lookup)
	}

	axis := n.Bounds.LongestAxis()
	near, far := n.Left, n.Right
	if r.Sign[axis] {
		near, far = n.Right, n.Left
	}

	nearHit, nearOK := FindNearest(near, r, tMax, lookup)
	limit := tMax
	if nearOK {
		limit = nearHit.Distance
	}
	farHit, farOK := FindNearest(far, r, limit, lookup)

	switch {
	case nearOK && farOK:
		if farHit.Distance < nearHit.Distance {
			return farHit, true
		}
		return nearHit, true
	case nearOK:
		return nearHit, true
	case farOK:
		return farHit, true
	default:
		return Hit{}, false
	}
}

const hitEpsilon = 1e-6

func nearestInLeaf(indices []int, r raytrace.Ray, tMax float32, lookup TriangleLookup) (Hit, bool) {
	best := Hit{}
	found := false
	for _, idx := range indices {
		t, u, v, ok := r.IntersectTriangle(lookup(idx))
		if !ok || t <= hitEpsilon || t > tMax {
			continue
		}
		if !found || t < best.Distance {
			best = Hit{TriangleIndex: idx, Distance: t, U: u, V: v}
			found = true
		}
	}
	return best, found
}
