// Package render drives the tiled, parallel render loop: it splits the
// frame into fixed-size buckets, orders them center-out so a partial
// result previews from the middle of the image outward, and fans the
// buckets across a worker pool. Each pixel is stochastically
// supersampled and shaded by pkg/shade, then written into a
// Framebuffer for PNG output.
package render

import (
	"image/color"
	"math/rand"
	"runtime"
	"sync"

	"github.com/taigrr/lumen/pkg/camera"
	"github.com/taigrr/lumen/pkg/light"
	"github.com/taigrr/lumen/pkg/scene"
	"github.com/taigrr/lumen/pkg/settings"
	"github.com/taigrr/lumen/pkg/shade"
)

// Config bundles everything one render needs beyond the scene itself.
type Config struct {
	Width, Height int
	Workers       int // 0 selects runtime.NumCPU()-1, minimum 1

	// DebugTileBounds overlays each bucket's outline on top of its
	// shaded pixels once it finishes, useful for visualizing the
	// scheduler's center-out tile order and worker distribution.
	DebugTileBounds bool
}

// debugTileOutlineColor is the overlay color drawn over each tile's
// border when Config.DebugTileBounds is set.
var debugTileOutlineColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// Render rasterizes mesh under cam and lights into a new Framebuffer,
// one tile at a time, using cfg.Workers goroutines. mesh must already
// have Build called on it.
func Render(cam *camera.Camera, mesh *scene.Mesh, lights []light.Light, sceneCfg settings.SceneSettings, cfg Config) *Framebuffer {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU() - 1
		if workers < 1 {
			workers = 1
		}
	}

	fb := NewFramebuffer(cfg.Width, cfg.Height)

	numBucketsX := (cfg.Width + BucketSize - 1) / BucketSize
	numBucketsY := (cfg.Height + BucketSize - 1) / BucketSize
	tiles := spiralOrder(numBucketsX, numBucketsY)

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for tileIdx, tile := range tiles {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, t bucketCoord) {
			defer wg.Done()
			defer func() { <-sem }()
			renderTile(fb, cam, mesh, lights, sceneCfg, t, idx)
			if cfg.DebugTileBounds {
				x0, y0, x1, y1 := tileBounds(t.bx, t.by, fb.Width, fb.Height)
				fb.DrawRectOutline(x0, y0, x1-x0, y1-y0, debugTileOutlineColor)
			}
		}(tileIdx, tile)
	}
	wg.Wait()

	return fb
}

// renderTile shades every pixel in one bucket. Each pixel gets its own
// RNG seeded from SceneSettings.Seed combined with the pixel's linear
// index, so a render is fully reproducible regardless of how the
// worker pool schedules tiles (goroutine interleaving never reaches
// the RNG stream, since no RNG is shared across pixels).
func renderTile(fb *Framebuffer, cam *camera.Camera, mesh *scene.Mesh, lights []light.Light, cfg settings.SceneSettings, tile bucketCoord, tileIndex int) {
	x0, y0, x1, y1 := tileBounds(tile.bx, tile.by, fb.Width, fb.Height)

	samples := cfg.AASamples
	if samples < 1 {
		samples = 1
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			pixelIndex := y*fb.Width + x
			rng := rand.New(rand.NewSource(cfg.Seed ^ int64(pixelIndex)))

			var c [3]float32
			for s := 0; s < samples; s++ {
				u := (float32(x) + rng.Float32()) / float32(fb.Width-1)
				v := (float32(y) + rng.Float32()) / float32(fb.Height-1)

				r := cam.GetRay(rng, u, v)
				shaded := shade.Trace(rng, r, mesh, lights, cfg, 0)
				c[0] += shaded.X
				c[1] += shaded.Y
				c[2] += shaded.Z
			}

			inv := 1.0 / float32(samples)
			fb.SetPixel(x, y, toRGBA(c[0]*inv, c[1]*inv, c[2]*inv))
		}
	}
}

// toRGBA clamps a linear [0,1]-ish color to 8-bit RGBA, alpha opaque.
func toRGBA(r, g, b float32) color.RGBA {
	return color.RGBA{
		R: clamp255(r),
		G: clamp255(g),
		B: clamp255(b),
		A: 255,
	}
}

func clamp255(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
