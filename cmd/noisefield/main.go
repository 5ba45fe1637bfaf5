// Command noisefield explores coherent noise in the terminal: an animated
// viewer, text sampling, spectral analysis, PNG export and audio playback.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "noisefield: %v\n", err)
		os.Exit(1)
	}
}
