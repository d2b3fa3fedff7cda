package shade

import (
	"math/rand"
	"testing"

	"github.com/taigrr/lumen/pkg/light"
	"github.com/taigrr/lumen/pkg/raytrace"
	"github.com/taigrr/lumen/pkg/scene"
	"github.com/taigrr/lumen/pkg/settings"
	"github.com/taigrr/lumen/pkg/vecmath"
)

func singleTriangleMesh() *scene.Mesh {
	m := scene.NewMesh("tri")
	m.AddTriangle(
		vecmath.V3(-10, -10, 0),
		vecmath.V3(0, 10, 0),
		vecmath.V3(10, -10, 0),
	)
	m.Build()
	return m
}

func TestTraceMissReturnsBlack(t *testing.T) {
	mesh := singleTriangleMesh()
	rng := rand.New(rand.NewSource(1))
	cfg := settings.Default()
	lights := []light.Light{light.New("key", light.KindPoint, vecmath.V3(0, 0, -5), vecmath.Zero3(), vecmath.V3(1, 1, 1), 1, light.FalloffNone)}

	r := raytrace.New(vecmath.V3(100, 100, -10), vecmath.V3(0, 0, 1))
	color := Trace(rng, r, mesh, lights, cfg, 0)
	if color != vecmath.Zero3() {
		t.Errorf("Trace on a miss = %v, want black", color)
	}
}

func TestTraceDepthCapReturnsBlack(t *testing.T) {
	mesh := singleTriangleMesh()
	rng := rand.New(rand.NewSource(1))
	cfg := settings.Default()
	lights := []light.Light{light.New("key", light.KindPoint, vecmath.V3(0, 0, -5), vecmath.Zero3(), vecmath.V3(1, 1, 1), 1, light.FalloffNone)}

	r := raytrace.New(vecmath.V3(0, 0, -10), vecmath.V3(0, 0, 1))
	color := Trace(rng, r, mesh, lights, cfg, maxDepth+1)
	if color != vecmath.Zero3() {
		t.Errorf("Trace beyond maxDepth = %v, want black", color)
	}
}

func TestTraceLitSurfaceIsBright(t *testing.T) {
	mesh := singleTriangleMesh()
	rng := rand.New(rand.NewSource(1))
	cfg := settings.Default()
	cfg.AOEnabled = false
	cfg.ShadowsEnabled = false
	lights := []light.Light{light.New("key", light.KindPoint, vecmath.V3(0, 0, -5), vecmath.Zero3(), vecmath.V3(1, 1, 1), 1, light.FalloffNone)}

	r := raytrace.New(vecmath.V3(0, 0, -10), vecmath.V3(0, 0, 1))
	color := Trace(rng, r, mesh, lights, cfg, 0)
	if color.X <= 0 {
		t.Errorf("Trace on a directly lit front-facing surface = %v, want a positive contribution", color)
	}
}

func TestShadowedSurfaceIsDarker(t *testing.T) {
	// A second, small occluding triangle sits on the line from the hit
	// point (origin) to the light, off to one side so it never
	// intersects the straight-down-the-Z-axis primary ray.
	mesh := scene.NewMesh("occluded")
	mesh.AddTriangle(vecmath.V3(-10, -10, 0), vecmath.V3(0, 10, 0), vecmath.V3(10, -10, 0))
	mesh.AddTriangle(vecmath.V3(1.5, 1.5, -2.5), vecmath.V3(3.5, 1.5, -2.5), vecmath.V3(2.5, 3.5, -2.5))
	mesh.Build()

	rng := rand.New(rand.NewSource(1))
	cfg := settings.Default()
	cfg.AOEnabled = false
	cfg.ShadowsEnabled = true
	lights := []light.Light{light.New("key", light.KindPoint, vecmath.V3(5, 5, -5), vecmath.Zero3(), vecmath.V3(1, 1, 1), 1, light.FalloffNone)}

	r := raytrace.New(vecmath.V3(0, 0, -10), vecmath.V3(0, 0, 1))
	shadowed := Trace(rng, r, mesh, lights, cfg, 0)
	if shadowed != vecmath.Zero3() {
		t.Errorf("fully shadowed hit point = %v, want black (no unoccluded lights)", shadowed)
	}
}

func TestComputeAOBoundedZeroToOne(t *testing.T) {
	mesh := singleTriangleMesh()
	rng := rand.New(rand.NewSource(1))

	ao := computeAO(rng, vecmath.V3(0, 0, 0), vecmath.V3(0, 0, -1), mesh, 32)
	if ao < 0 || ao > 1 {
		t.Errorf("computeAO = %v, want in [0,1]", ao)
	}
}
