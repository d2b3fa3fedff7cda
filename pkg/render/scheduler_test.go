package render

import "testing"

func TestSpiralOrderCoversEveryTileExactlyOnce(t *testing.T) {
	const nx, ny = 5, 4
	order := spiralOrder(nx, ny)

	seen := make(map[bucketCoord]bool)
	for _, c := range order {
		if seen[c] {
			t.Fatalf("tile %v visited twice", c)
		}
		seen[c] = true
	}
	if len(order) != nx*ny {
		t.Fatalf("spiralOrder returned %d tiles, want %d", len(order), nx*ny)
	}
}

func TestSpiralOrderStartsAtCenter(t *testing.T) {
	const nx, ny = 7, 7
	order := spiralOrder(nx, ny)
	first := order[0]
	if first.bx != nx/2 || first.by != ny/2 {
		t.Errorf("first tile = %v, want center (%d,%d)", first, nx/2, ny/2)
	}
}

func TestSpiralOrderIsNonDecreasingChebyshevDistance(t *testing.T) {
	const nx, ny = 9, 6
	order := spiralOrder(nx, ny)
	centerX, centerY := nx/2, ny/2

	dist := func(c bucketCoord) int {
		dx, dy := abs(c.bx-centerX), abs(c.by-centerY)
		if dx > dy {
			return dx
		}
		return dy
	}

	prev := -1
	for _, c := range order {
		d := dist(c)
		if d < prev {
			t.Fatalf("tile %v at distance %d came after distance %d", c, d, prev)
		}
		prev = d
	}
}

func TestTileBoundsClampsAtImageEdge(t *testing.T) {
	x0, y0, x1, y1 := tileBounds(2, 2, 70, 70)
	if x0 != 64 || y0 != 64 || x1 != 70 || y1 != 70 {
		t.Errorf("tileBounds(2,2,70,70) = (%d,%d,%d,%d), want (64,64,70,70)", x0, y0, x1, y1)
	}
}

func TestTileBoundsFullTileInterior(t *testing.T) {
	x0, y0, x1, y1 := tileBounds(1, 0, 256, 256)
	if x0 != 32 || y0 != 0 || x1 != 64 || y1 != 32 {
		t.Errorf("tileBounds(1,0,256,256) = (%d,%d,%d,%d), want (32,0,64,32)", x0, y0, x1, y1)
	}
}
