// Package light defines the scene light representation: a single
// tagged-variant type covering point, spot, directional and area
// lights, plus the falloff curves applied to their contribution.
package light

import "github.com/taigrr/lumen/pkg/vecmath"

// Kind identifies which of the four light variants a Light is.
type Kind int

const (
	KindPoint Kind = iota
	KindSpot
	KindDirectional
	KindArea
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindSpot:
		return "spot"
	case KindDirectional:
		return "directional"
	case KindArea:
		return "area"
	default:
		return "unknown"
	}
}

// Falloff selects how a light's contribution attenuates with distance.
type Falloff int

const (
	FalloffNone Falloff = iota
	FalloffLinear
	FalloffQuadratic
)

// Light is a single scene light. Not every field is meaningful for
// every Kind — Area lights read AreaWidth/AreaHeight and Direction;
// the spot-only fields are stored but never read by pkg/shade, which
// shades every non-Area kind as a point light at Position.
type Light struct {
	Name      string
	Kind      Kind
	Position  vecmath.Vec3
	Direction vecmath.Vec3
	Color     vecmath.Vec3
	Intensity float32
	Falloff   Falloff

	// Spot-only. Not currently enforced as a cutoff by pkg/shade — see
	// SPEC_FULL.md's resolved-open-questions section.
	SpotHalfAngleDeg float32
	InnerRadius      float32
	RadiusDecay      float32

	// Area-only: the rectangle's width/height in world units, spanned
	// around Position in the plane perpendicular to Direction.
	AreaWidth  float32
	AreaHeight float32
}

// New builds a Light with the given required fields and zero values
// for every kind-specific field; callers set those directly.
func New(name string, kind Kind, position, direction, color vecmath.Vec3, intensity float32, falloff Falloff) Light {
	return Light{
		Name:      name,
		Kind:      kind,
		Position:  position,
		Direction: direction,
		Color:     color,
		Intensity: intensity,
		Falloff:   falloff,
	}
}

// Attenuate applies f to color based on distance, returning the
// attenuated color. FalloffNone returns color unchanged.
func (f Falloff) Attenuate(color vecmath.Vec3, distance float32) vecmath.Vec3 {
	switch f {
	case FalloffLinear:
		if distance == 0 {
			return color
		}
		return color.Scale(1 / distance)
	case FalloffQuadratic:
		if distance == 0 {
			return color
		}
		return color.Scale(1 / (distance * distance))
	default:
		return color
	}
}
