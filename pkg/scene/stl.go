package scene

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/taigrr/lumen/pkg/vecmath"
)

// stlHeaderSize is the fixed 80-byte header every binary STL file
// begins with; its contents are arbitrary and ignored.
const stlHeaderSize = 80

// LoadSTL reads a binary STL file and returns a flat-triangle Mesh.
//
// STL stores each vertex as three little-endian float32s in (X, Z, Y)
// order — a quirk of the modeling tool the reference renderer was
// originally paired with. Swapping the second and third components on
// read recovers a conventional (X, Y, Z) right-handed mesh; every
// vertex in this loader goes through that swap.
func LoadSTL(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stl: %w", err)
	}
	defer f.Close()

	if _, err := f.Seek(stlHeaderSize, io.SeekStart); err != nil {
		return nil, fmt.Errorf("skip stl header: %w", err)
	}

	var count uint32
	if err := binary.Read(f, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("read triangle count: %w", err)
	}

	mesh := NewMesh(filepath.Base(path))
	var buf [50]byte // 12 (normal) + 36 (3 vertices) + 2 (attribute byte count)

	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(f, buf[:]); err != nil {
			return nil, fmt.Errorf("read triangle %d: %w", i, err)
		}

		normal := readVec3Swapped(buf[0:12])
		a := readVec3Swapped(buf[12:24])
		b := readVec3Swapped(buf[24:36])
		c := readVec3Swapped(buf[36:48])
		mesh.AddTriangleWithNormal(a, b, c, normal)
	}

	return mesh, nil
}

// readVec3Swapped reads three little-endian float32s from b in file
// order (x, z, y) and returns them reordered as (x, y, z).
func readVec3Swapped(b []byte) vecmath.Vec3 {
	x := readFloat32(b[0:4])
	z := readFloat32(b[4:8])
	y := readFloat32(b[8:12])
	return vecmath.V3(x, y, z)
}
