package scene

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/qmuntal/gltf"
	"golang.org/x/image/draw"
)

// PreviewTexture decodes the first embedded image in a GLTF/GLB document
// and downsamples it to a thumbnail no larger than maxSize on either
// side. The renderer never samples texels during shading (no UV
// sampling in the shading path), so this is purely informational — a
// host can show it next to a render as a sanity check on the loaded
// asset.
func PreviewTexture(path string, maxSize int) (image.Image, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	var raw []byte
	for _, img := range doc.Images {
		if img.BufferView == nil {
			continue
		}
		bv := doc.BufferViews[*img.BufferView]
		buf := doc.Buffers[bv.Buffer]
		if buf.Data == nil {
			continue
		}
		raw = buf.Data[bv.ByteOffset : bv.ByteOffset+bv.ByteLength]
		break
	}
	if raw == nil {
		return nil, fmt.Errorf("no embedded image found")
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode embedded image: %w", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxSize && h <= maxSize {
		return src, nil
	}

	scale := float64(maxSize) / float64(max(w, h))
	dstW := max(1, int(float64(w)*scale))
	dstH := max(1, int(float64(h)*scale))
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst, nil
}
