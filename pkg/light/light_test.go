package light

import (
	"testing"

	"github.com/taigrr/lumen/pkg/vecmath"
)

func TestFalloffNoneUnchanged(t *testing.T) {
	c := vecmath.V3(1, 1, 1)
	got := FalloffNone.Attenuate(c, 10)
	if got != c {
		t.Errorf("FalloffNone.Attenuate = %v, want unchanged %v", got, c)
	}
}

func TestFalloffLinear(t *testing.T) {
	c := vecmath.V3(10, 10, 10)
	got := FalloffLinear.Attenuate(c, 5)
	want := vecmath.V3(2, 2, 2)
	if got != want {
		t.Errorf("FalloffLinear.Attenuate = %v, want %v", got, want)
	}
}

func TestFalloffQuadratic(t *testing.T) {
	c := vecmath.V3(100, 100, 100)
	got := FalloffQuadratic.Attenuate(c, 10)
	want := vecmath.V3(1, 1, 1)
	if got != want {
		t.Errorf("FalloffQuadratic.Attenuate = %v, want %v", got, want)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindPoint, "point"},
		{KindSpot, "spot"},
		{KindDirectional, "directional"},
		{KindArea, "area"},
	}
	for _, tc := range tests {
		if got := tc.k.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.k, got, tc.want)
		}
	}
}
