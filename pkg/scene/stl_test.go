package scene

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// writeTestSTL writes a minimal binary STL with a single triangle. nx,
// nSlot2, nSlot3 are the facet normal's three floats in file order (x,
// z, y); the vertex parameters are likewise in file order.
func writeTestSTL(t *testing.T, nx, nSlot2, nSlot3, x0, y0z, y0y, x1, y1z, y1y, x2, y2z, y2y float32) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.stl")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := f.Write(make([]byte, stlHeaderSize)); err != nil {
		t.Fatal(err)
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(1)); err != nil {
		t.Fatal(err)
	}

	writeF32 := func(v float32) {
		if err := binary.Write(f, binary.LittleEndian, v); err != nil {
			t.Fatal(err)
		}
	}
	// facet normal, in file order (x, z, y)
	writeF32(nx)
	writeF32(nSlot2)
	writeF32(nSlot3)
	// three vertices, each in file order (x, z, y)
	writeF32(x0)
	writeF32(y0z)
	writeF32(y0y)
	writeF32(x1)
	writeF32(y1z)
	writeF32(y1y)
	writeF32(x2)
	writeF32(y2z)
	writeF32(y2y)
	// attribute byte count
	if _, err := f.Write([]byte{0, 0}); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoadSTLAxisSwap(t *testing.T) {
	// File order is (x, z, y); we write the 2nd float as 5 and the 3rd
	// as 7 for the first vertex, and expect the loaded mesh to store
	// Y=7 (file's 3rd float) and Z=5 (file's 2nd float).
	path := writeTestSTL(t,
		0, 0, 1,
		0, 5, 7,
		1, 0, 0,
		0, 1, 0,
	)

	mesh, err := LoadSTL(path)
	if err != nil {
		t.Fatal(err)
	}

	if mesh.TriangleCount() != 1 {
		t.Fatalf("TriangleCount = %d, want 1", mesh.TriangleCount())
	}
	v0 := mesh.V[mesh.T[0].A]
	if v0.Y != 7 || v0.Z != 5 {
		t.Errorf("vertex 0 = %v, want Y=7 Z=5 (file's 3rd float becomes Y, 2nd becomes Z)", v0)
	}
}

func TestLoadSTLPreservesFileNormalOverWinding(t *testing.T) {
	// These vertices wind to a face normal of (0, 0, 1) via
	// edge1.Cross(edge2); the facet normal written to the file is the
	// opposite, (0, 0, -1). The loaded mesh must keep the file's
	// normal rather than recompute one from winding.
	path := writeTestSTL(t,
		0, -1, 0, // facet normal, file order -> decodes to (0, 0, -1)
		-1, 0, -1,
		1, 0, -1,
		0, 0, 1,
	)

	mesh, err := LoadSTL(path)
	if err != nil {
		t.Fatal(err)
	}

	n := mesh.N[0]
	if n.X != 0 || n.Y != 0 || n.Z != -1 {
		t.Errorf("normal = %v, want the file-provided (0, 0, -1), not one recomputed from winding", n)
	}
}

func TestLoadSTLMissingFile(t *testing.T) {
	if _, err := LoadSTL("/nonexistent/path.stl"); err == nil {
		t.Error("expected error for missing file")
	}
}
