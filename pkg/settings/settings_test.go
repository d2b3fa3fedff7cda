package settings

import "testing"

func TestDefaultMatchesReferenceScene(t *testing.T) {
	s := Default()
	if s.AOSamples != 16 {
		t.Errorf("AOSamples = %d, want 16", s.AOSamples)
	}
	if s.LightSamples != 32 {
		t.Errorf("LightSamples = %d, want 32", s.LightSamples)
	}
	if s.DollyIn != 440 {
		t.Errorf("DollyIn = %v, want 440", s.DollyIn)
	}
	if s.BucketOrder != "CENTRAL" {
		t.Errorf("BucketOrder = %q, want CENTRAL", s.BucketOrder)
	}
}
