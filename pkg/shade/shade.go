// Package shade implements the direct-lighting integrator: one
// recursion-capped trace per ray that accumulates Lambert+Phong
// contributions from every light, tests shadow rays, and multiplies in
// an ambient-occlusion term before two final global dimming passes.
package shade

import (
	"math"
	"math/rand"

	"github.com/taigrr/lumen/pkg/light"
	"github.com/taigrr/lumen/pkg/raytrace"
	"github.com/taigrr/lumen/pkg/scene"
	"github.com/taigrr/lumen/pkg/settings"
	"github.com/taigrr/lumen/pkg/vecmath"
)

// maxDepth bounds recursion; Trace returns black once exceeded.
// Nothing in this integrator currently recurses past depth 0 (there is
// no reflected/refracted bounce), but the guard is kept so a future
// specular-bounce extension has somewhere to plug in without changing
// every caller.
const maxDepth = 5

// shadowBias offsets shadow/AO ray origins along the surface normal to
// avoid immediately re-hitting the originating triangle from floating
// point error ("shadow acne").
const shadowBias = 0.001

// diffuseAlbedo is the fixed material response every surface uses —
// there is no material system, every triangle shades identically.
var diffuseAlbedo = vecmath.V3(0.75, 0.75, 0.75)

const (
	specularPower      = 32
	specularModulation = 0.5
)

// Trace returns the shaded color for one ray against mesh, which must
// already have had Build called on it.
func Trace(rng *rand.Rand, r raytrace.Ray, mesh *scene.Mesh, lights []light.Light, cfg settings.SceneSettings, depth int) vecmath.Vec3 {
	if depth > maxDepth {
		return vecmath.Zero3()
	}

	hit, ok := mesh.FindNearest(r, float32(1e9))
	if !ok {
		return vecmath.Zero3()
	}

	hitPoint := r.At(hit.Distance)
	normal := mesh.N[hit.TriangleIndex]

	color := vecmath.Zero3()
	for _, l := range lights {
		color = color.Add(shadeLight(rng, r, hitPoint, normal, mesh, l, cfg))
	}

	if cfg.AOEnabled {
		ao := computeAO(rng, hitPoint, normal, mesh, cfg.AOSamples)
		color = color.Scale(ao)
	}

	color = color.Scale(1 - float32(cfg.ShadowMult)/100)
	color = color.Scale(1 - float32(cfg.AOMult)/100)

	return color
}

// shadeLight returns one light's Lambert+Phong contribution at
// hitPoint, averaged over LightSamples jittered positions for Area
// lights or a single sample for every other Kind.
func shadeLight(rng *rand.Rand, r raytrace.Ray, hitPoint, normal vecmath.Vec3, mesh *scene.Mesh, l light.Light, cfg settings.SceneSettings) vecmath.Vec3 {
	var total vecmath.Vec3

	if l.Kind == light.KindArea {
		samples := cfg.LightSamples
		if samples < 1 {
			samples = 1
		}
		for i := 0; i < samples; i++ {
			samplePos := jitterAreaLight(rng, l)
			lightDir := samplePos.Sub(hitPoint).Normalize()
			lightDistance := samplePos.Sub(hitPoint).Len()

			if cfg.ShadowsEnabled && inShadow(r, hitPoint, normal, lightDir, lightDistance, mesh) {
				continue
			}
			total = total.Add(lambertPhong(r, hitPoint, normal, lightDir, l))
		}
		total = total.Scale(1 / float32(samples))
	} else {
		lightDir := l.Position.Sub(hitPoint).Normalize()
		lightDistance := l.Position.Sub(hitPoint).Len()

		if !(cfg.ShadowsEnabled && inShadow(r, hitPoint, normal, lightDir, lightDistance, mesh)) {
			total = lambertPhong(r, hitPoint, normal, lightDir, l)
		}
	}

	// Falloff always uses the true distance to the light's nominal
	// Position, even for Area lights where individual samples land at
	// jittered, slightly different distances.
	lightDistance := l.Position.Sub(hitPoint).Len()
	return l.Falloff.Attenuate(total, lightDistance)
}

func lambertPhong(r raytrace.Ray, hitPoint, normal, lightDir vecmath.Vec3, l light.Light) vecmath.Vec3 {
	diffuseTerm := max32(normal.Dot(lightDir), 0)
	diffuse := diffuseAlbedo.Mul(l.Color).Scale(l.Intensity * diffuseTerm)

	reflectDir := lightDir.Negate().Reflect(normal)
	specTerm := powf32(max32(r.Direction.Dot(reflectDir), 0), specularPower)
	specular := l.Color.Scale(l.Intensity * specTerm * specularModulation)

	return diffuse.Add(specular)
}

func inShadow(r raytrace.Ray, hitPoint, normal, lightDir vecmath.Vec3, lightDistance float32, mesh *scene.Mesh) bool {
	origin := hitPoint.Add(normal.Scale(shadowBias))
	shadowRay := raytrace.New(origin, lightDir)
	hit, ok := mesh.FindNearest(shadowRay, lightDistance)
	return ok && hit.Distance < lightDistance
}

// jitterAreaLight samples a random point on the light's rectangle,
// spanned by two vectors perpendicular to its Direction, scaled by its
// AreaWidth/AreaHeight.
func jitterAreaLight(rng *rand.Rand, l light.Light) vecmath.Vec3 {
	spanW := l.Direction.Cross(vecmath.Up()).Normalize()
	spanH := l.Direction.Cross(vecmath.Right()).Normalize()

	jw := (float32(rng.Float64()) - 0.5) * l.AreaWidth
	jh := (float32(rng.Float64()) - 0.5) * l.AreaHeight

	return l.Position.Add(spanW.Scale(jw)).Add(spanH.Scale(jh))
}

// computeAO casts samples hemisphere-jittered rays from point and
// returns a [0,1] multiplier: 1 means fully unoccluded, lower values
// mean nearby geometry blocks the hemisphere. Only hits closer than
// 1.0 world units contribute, weighted by (1 - distance).
func computeAO(rng *rand.Rand, point, normal vecmath.Vec3, mesh *scene.Mesh, samples int) float32 {
	if samples < 1 {
		return 1
	}
	origin := point.Add(normal.Scale(shadowBias))

	var occlusion float32
	for i := 0; i < samples; i++ {
		dir := randomInHemisphere(rng, normal)
		r := raytrace.New(origin, dir)
		if hit, ok := mesh.FindNearest(r, 1.0); ok && hit.Distance < 1.0 {
			occlusion += 1 - hit.Distance
		}
	}
	return 1 - occlusion/float32(samples)
}

// randomInHemisphere returns a random unit vector in the hemisphere
// around normal, via rejection sampling then a reflection if the
// sample landed in the wrong half.
func randomInHemisphere(rng *rand.Rand, normal vecmath.Vec3) vecmath.Vec3 {
	v := randomInCube(rng)
	for v.LenSq() > 1 || v.LenSq() == 0 {
		v = randomInCube(rng)
	}
	v = v.Normalize()
	if v.Dot(normal) > 0 {
		return v
	}
	return v.Negate()
}

func randomInCube(rng *rand.Rand) vecmath.Vec3 {
	return vecmath.V3(
		float32(rng.Float64())*2-1,
		float32(rng.Float64())*2-1,
		float32(rng.Float64())*2-1,
	)
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func powf32(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}
