// Package settings defines the scene-wide render quality knobs: sample
// counts for antialiasing, ambient occlusion and area lights, and the
// two global dimming multipliers applied by pkg/shade.
package settings

// SceneSettings controls sampling quality and the shading pipeline's
// global dimming behavior.
type SceneSettings struct {
	QualityPreset string

	AASamples int // samples per pixel for antialiasing

	AOEnabled bool
	AOSamples int
	AOMult    int // percent: final color *= (1 - AOMult/100)

	ShadowsEnabled bool
	LightSamples   int // samples per area light
	ShadowMult     int // percent: final color *= (1 - ShadowMult/100)

	DollyIn    float32
	FieldOfView float32

	BucketOrder string // "CENTRAL" (spiral) is the only order implemented
	BucketCount int

	RotateHorizontalCamera float32
	RotateVerticalCamera   float32

	// Seed drives the per-pixel deterministic RNGs pkg/render uses for
	// stochastic antialiasing and AO/light sampling (each pixel's RNG is
	// seeded with Seed XOR the pixel's linear index). Zero is a valid
	// seed, not "unset" — it still produces a fixed sequence.
	Seed int64
}

// Default returns the settings used when a caller doesn't supply its
// own, matching the reference scene's defaults.
func Default() SceneSettings {
	return SceneSettings{
		QualityPreset:          "standard",
		AASamples:              3,
		AOEnabled:              true,
		AOSamples:              16,
		AOMult:                 2,
		ShadowsEnabled:         true,
		LightSamples:           32,
		ShadowMult:             1,
		DollyIn:                440,
		FieldOfView:            10,
		BucketOrder:            "CENTRAL",
		BucketCount:            75,
		RotateHorizontalCamera: 0,
		RotateVerticalCamera:   0,
		Seed:                   0,
	}
}
