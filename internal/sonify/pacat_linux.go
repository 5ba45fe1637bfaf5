//go:build linux

package sonify

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"noisefield/internal/logging"
	"noisefield/noise"
)

// PlayPacat pipes g to PulseAudio/PipeWire through pacat until ctx is done.
// It needs no cgo audio bindings, only the pacat binary on PATH.
func PlayPacat(ctx context.Context, g noise.Generator, opts Options) error {
	cmd := exec.CommandContext(ctx, "pacat",
		"--playback",
		"--format=float32le",
		"--channels=1",
		fmt.Sprintf("--rate=%d", opts.SampleRate),
		"--latency-msec=20",
	)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("sonify: stdin pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("sonify: start pacat: %w", err)
	}
	logging.L().Info("pacat playback started", "rate", opts.SampleRate)

	buffer := make([]float32, opts.FramesPerBuffer)
	var scratch []byte
	var pos float64
	var writeErr error
	for ctx.Err() == nil {
		pos = Fill(buffer, g, pos, opts.Step, opts.Gain)
		if scratch, writeErr = encode(stdin, buffer, scratch); writeErr != nil {
			break
		}
	}

	stdin.Close()
	waitErr := cmd.Wait()

	switch {
	case ctx.Err() != nil:
		// killed by the context; that is the normal way to stop
		logging.L().Info("pacat playback stopped")
		return nil
	case writeErr != nil:
		return fmt.Errorf("sonify: write to pacat: %w", errors.Join(writeErr, waitErr))
	}
	return waitErr
}
