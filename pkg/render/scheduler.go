package render

// BucketSize is the edge length, in pixels, of a render tile.
const BucketSize = 32

// bucketCoord is a tile's column/row index, not its pixel position.
type bucketCoord struct {
	bx, by int
}

// spiralOrder returns every (bx, by) tile coordinate in numBucketsX x
// numBucketsY, ordered by Chebyshev distance from the grid's center
// outward — the tile containing the image center renders first, then
// each successive ring around it, so a preview visible mid-render fills
// in from the middle rather than top-left-to-bottom-right.
func spiralOrder(numBucketsX, numBucketsY int) []bucketCoord {
	centerX := numBucketsX / 2
	centerY := numBucketsY / 2

	maxDistance := centerX
	if centerY > maxDistance {
		maxDistance = centerY
	}

	var order []bucketCoord
	for distance := 0; distance <= maxDistance; distance++ {
		for dy := -distance; dy <= distance; dy++ {
			for dx := -distance; dx <= distance; dx++ {
				if abs(dx) != distance && abs(dy) != distance {
					continue
				}
				bx := centerX + dx
				by := centerY + dy
				if bx < 0 || by < 0 || bx >= numBucketsX || by >= numBucketsY {
					continue
				}
				order = append(order, bucketCoord{bx, by})
			}
		}
	}
	return order
}

// tileBounds returns the pixel rectangle [x0,x1) x [y0,y1) covered by
// tile (bx, by) in a width x height image, clamped at the image edge.
func tileBounds(bx, by, width, height int) (x0, y0, x1, y1 int) {
	x0 = bx * BucketSize
	y0 = by * BucketSize
	x1 = min(x0+BucketSize, width)
	y1 = min(y0+BucketSize, height)
	return
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
