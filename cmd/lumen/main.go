// lumen - offline CPU ray tracer
//
// Loads a triangle mesh (STL or GLB), builds a BVH over it, and renders
// it under a pinhole/thin-lens camera with direct lighting, shadows and
// ambient occlusion to a PNG file.
package main

import (
	"fmt"
	"os"

	"github.com/taigrr/lumen/cmd/lumen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
