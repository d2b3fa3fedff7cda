package cmd

import "testing"

func TestRunPreviewMissingFile(t *testing.T) {
	previewMaxSize = 256
	if err := runPreview(previewCmd, []string{"does-not-exist.glb"}); err == nil {
		t.Error("runPreview on a missing GLB = nil error, want open error")
	}
}
