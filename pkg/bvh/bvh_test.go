package bvh

import (
	"math/rand"
	"testing"

	"github.com/taigrr/lumen/pkg/raytrace"
	"github.com/taigrr/lumen/pkg/vecmath"
)

// buildTestMesh returns n axis-aligned boxes (1 wide on X, 2 on Y and
// Z) spaced 3 apart along X, plus one template triangle in the Z=0
// plane centered on the origin; tests that need per-box geometry shift
// it by 3*i along X (enough for a ray fired down +Z to hit).
func buildTestMesh(n int) ([]vecmath.AABB, raytrace.Triangle) {
	boxes := make([]vecmath.AABB, n)
	for i := range boxes {
		x := float32(i) * 3
		boxes[i] = vecmath.NewAABB(vecmath.V3(x, -1, -1), vecmath.V3(x+1, 1, 1))
	}
	tri := raytrace.Triangle{
		A: vecmath.V3(-1, -1, 0),
		B: vecmath.V3(1, -1, 0),
		C: vecmath.V3(0, 1, 0),
	}
	return boxes, tri
}

func TestBuildAllIndicesCovered(t *testing.T) {
	boxes, _ := buildTestMesh(37)
	root := Build(boxes)

	seen := map[int]bool{}
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			for _, idx := range n.Indices {
				seen[idx] = true
			}
			return
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)

	if len(seen) != len(boxes) {
		t.Fatalf("got %d distinct indices, want %d", len(seen), len(boxes))
	}
}

func TestBuildBoundsContainChildren(t *testing.T) {
	boxes, _ := buildTestMesh(50)
	root := Build(boxes)

	var check func(n *Node)
	check = func(n *Node) {
		if n == nil || n.IsLeaf() {
			return
		}
		if !n.Bounds.Contains(n.Left.Bounds) {
			t.Errorf("parent bounds %v do not contain left child bounds %v", n.Bounds, n.Left.Bounds)
		}
		if !n.Bounds.Contains(n.Right.Bounds) {
			t.Errorf("parent bounds %v do not contain right child bounds %v", n.Bounds, n.Right.Bounds)
		}
		check(n.Left)
		check(n.Right)
	}
	check(root)
}

func TestBuildLeafSizeBound(t *testing.T) {
	boxes, _ := buildTestMesh(200)
	root := Build(boxes)

	var check func(n *Node, depth int)
	check = func(n *Node, depth int) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			if len(n.Indices) > MaxTrianglesPerLeaf && depth < MaxDepth {
				t.Errorf("leaf at depth %d holds %d indices, want <= %d", depth, len(n.Indices), MaxTrianglesPerLeaf)
			}
			return
		}
		check(n.Left, depth+1)
		check(n.Right, depth+1)
	}
	check(root, 0)
}

func TestFindNearestFindsClosestTriangle(t *testing.T) {
	boxes, tri := buildTestMesh(10)
	lookup := func(i int) raytrace.Triangle {
		offset := float32(i) * 3
		return raytrace.Triangle{
			A: tri.A.Add(vecmath.V3(offset, 0, 0)),
			B: tri.B.Add(vecmath.V3(offset, 0, 0)),
			C: tri.C.Add(vecmath.V3(offset, 0, 0)),
		}
	}
	root := Build(boxes)

	r := raytrace.New(vecmath.V3(3, 0, -5), vecmath.V3(0, 0, 1))
	hit, ok := FindNearest(root, r, 1e9, lookup)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.TriangleIndex != 1 {
		t.Errorf("TriangleIndex = %d, want 1", hit.TriangleIndex)
	}
}

func TestFindNearestMissesWhenOutsideAllBoxes(t *testing.T) {
	boxes, tri := buildTestMesh(5)
	lookup := func(i int) raytrace.Triangle { return tri }
	root := Build(boxes)

	r := raytrace.New(vecmath.V3(0, 100, -5), vecmath.V3(0, 0, 1))
	if _, ok := FindNearest(root, r, 1e9, lookup); ok {
		t.Error("expected miss, ray is far above every box")
	}
}

func TestBuildRandomTrianglesStayBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const n = 10000
	boxes := make([]vecmath.AABB, n)
	for i := range boxes {
		cx := float32(rng.Float64()*200 - 100)
		cy := float32(rng.Float64()*200 - 100)
		cz := float32(rng.Float64()*200 - 100)
		boxes[i] = vecmath.NewAABB(vecmath.V3(cx-0.5, cy-0.5, cz-0.5), vecmath.V3(cx+0.5, cy+0.5, cz+0.5))
	}

	root := Build(boxes)
	if root == nil {
		t.Fatal("Build returned nil")
	}

	count := 0
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			count += len(n.Indices)
			return
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)
	if count != n {
		t.Errorf("leaf index count = %d, want %d", count, n)
	}
}
