package cmd

import (
	"github.com/taigrr/lumen/pkg/light"
	"github.com/taigrr/lumen/pkg/vecmath"
)

// defaultCameraPosition is the reference scene's starting eye point,
// before CenterObject re-frames it around the loaded mesh.
func defaultCameraPosition() vecmath.Vec3 {
	return vecmath.V3(20, 20, -100)
}

func upVector() vecmath.Vec3 {
	return vecmath.Up()
}

// defaultLightingRig reproduces the reference scene's fixed six-light
// setup: one spot key light with a linear falloff fill, and four area
// lights of varying color and intensity standing in for a softbox
// rig. Positions, directions, colors and intensities are carried over
// unchanged from the reference scene.
func defaultLightingRig() []light.Light {
	key := light.New("Light.2_Spot", light.KindSpot,
		vecmath.V3(-259.95, 518.74, 310.19),
		vecmath.V3(0.39509776, -0.7884324, -0.47145748),
		vecmath.V3(0.424, 0.536, 0.851),
		1.254, light.FalloffNone)
	key.SpotHalfAngleDeg = 28.8

	fill := light.New("Light.6", light.KindSpot,
		vecmath.V3(-355.24, -47.73, -221.27),
		vecmath.V3(0.84334135, 0.11331124, 0.525296),
		vecmath.V3(0.98, 0.96, 0.94),
		0.582, light.FalloffLinear)
	fill.SpotHalfAngleDeg = 28.8
	fill.RadiusDecay = 518.0

	rim := light.New("Light.4", light.KindArea,
		vecmath.V3(248.92, 322.63, 227.43),
		vecmath.V3(-0.53340256, -0.6913534, -0.48735234),
		vecmath.V3(0.567, 0.797, 1.042),
		1.088, light.FalloffNone)
	rim.AreaWidth, rim.AreaHeight = 72.83, 72.83

	bounce := light.New("Light.1", light.KindArea,
		vecmath.V3(284.31, 297.96, -348.31),
		vecmath.V3(-0.5271039, -0.55241066, 0.6457584),
		vecmath.V3(0.98, 0.96, 0.94),
		0.567, light.FalloffNone)
	bounce.AreaWidth, bounce.AreaHeight = 72.83, 72.83

	accent := light.New("Light", light.KindArea,
		vecmath.V3(195.36, -171.45, -294.36),
		vecmath.V3(-0.4974868, 0.43659967, 0.74959165),
		vecmath.V3(1.0, 0.336, 0.084),
		0.199, light.FalloffNone)
	accent.AreaWidth, accent.AreaHeight = 72.83, 72.83

	under := light.New("Light.5", light.KindArea,
		vecmath.V3(-320.85, 120.83, -300.78),
		vecmath.V3(0.7034878, -0.26492888, 0.6594828),
		vecmath.V3(0.98, 0.96, 0.94),
		0.12, light.FalloffNone)
	under.AreaWidth, under.AreaHeight = 72.83, 72.83

	return []light.Light{key, fill, rim, bounce, accent, under}
}
