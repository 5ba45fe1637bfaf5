// Package sonify plays a noise field as mono audio.
package sonify

import (
	"context"
	"errors"
	"fmt"

	"github.com/gordonklaus/portaudio"

	"noisefield/internal/logging"
	"noisefield/mathx"
	"noisefield/noise"
)

var ErrUnsupported = errors.New("sonify: pacat playback is only available on Linux")

type Options struct {
	SampleRate      int
	FramesPerBuffer int
	Gain            float64
	Step            float64 // field distance per sample
}

func DefaultOptions() Options {
	return Options{
		SampleRate:      44100,
		FramesPerBuffer: 1024,
		Gain:            0.5,
		Step:            0.002,
	}
}

// Fill writes len(dst) samples of g along x starting at pos, remapped from
// the generator's nominal range to [-1,1], scaled by gain and clamped. It
// returns the position after the last sample.
func Fill(dst []float32, g noise.Generator, pos, step, gain float64) float64 {
	lo, hi := noise.Bounds(g)
	for i := range dst {
		v := mathx.Remap(g.Noise1D(pos), lo, hi, -1, 1)
		dst[i] = float32(mathx.Clamp(v*gain, -1, 1))
		pos += step
	}
	return pos
}

// Play streams g to the default PortAudio output until ctx is done. A zero
// SampleRate uses the device's default rate.
func Play(ctx context.Context, g noise.Generator, opts Options) error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("sonify: initialize portaudio: %w", err)
	}
	defer portaudio.Terminate()

	device, err := portaudio.DefaultOutputDevice()
	if err != nil {
		return fmt.Errorf("sonify: no output device: %w", err)
	}

	rate := float64(opts.SampleRate)
	if rate <= 0 {
		rate = device.DefaultSampleRate
	}

	buffer := make([]float32, opts.FramesPerBuffer)
	stream, err := portaudio.OpenStream(portaudio.StreamParameters{
		Output: portaudio.StreamDeviceParameters{
			Device:   device,
			Channels: 1,
			Latency:  device.DefaultLowOutputLatency,
		},
		SampleRate:      rate,
		FramesPerBuffer: len(buffer),
	}, buffer)
	if err != nil {
		return fmt.Errorf("sonify: open stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("sonify: start stream: %w", err)
	}
	defer stream.Stop()

	logging.L().Info("portaudio playback started", "device", device.Name, "rate", rate, "frames", len(buffer))

	var pos float64
	for {
		select {
		case <-ctx.Done():
			logging.L().Info("portaudio playback stopped")
			return nil
		default:
		}

		pos = Fill(buffer, g, pos, opts.Step, opts.Gain)
		if err := stream.Write(); err != nil {
			return fmt.Errorf("sonify: write: %w", err)
		}
	}
}
