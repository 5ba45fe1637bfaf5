//go:build !linux

package sonify

import (
	"context"

	"noisefield/noise"
)

func PlayPacat(ctx context.Context, g noise.Generator, opts Options) error {
	return ErrUnsupported
}
