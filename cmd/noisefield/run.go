package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"noisefield/internal/config"
	"noisefield/internal/export"
	"noisefield/internal/logging"
	"noisefield/internal/media"
	"noisefield/internal/sonify"
	"noisefield/internal/spectrum"
	"noisefield/internal/tui"
	"noisefield/noise"
)

const usage = `usage: noisefield <command> [flags]

commands:
  view       animated noise viewer
  sample     print noise values along x
  spectrum   band energies and roughness of a noise profile
  export     write a heightmap or waveform PNG
  play       listen to a noise profile

run "noisefield <command> -h" for command flags
`

var errUsage = errors.New("unknown command")

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return errUsage
	}

	cmd := args[0]
	switch cmd {
	case "view", "sample", "spectrum", "export", "play":
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("%w: %q", errUsage, cmd)
	}

	cfg, err := config.Parse(cmd, args[1:], stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if cfg.LogFile != "" {
		level := slog.LevelInfo
		if cfg.Debug {
			level = slog.LevelDebug
		}
		if err := logging.Init(cfg.LogFile, level); err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer logging.Close()
	}

	seed := resolveSeed(cfg, stderr)
	logging.L().Info("command", "cmd", cmd, "gen", cfg.Generator, "seed", seed, "octaves", cfg.Octaves)

	if cmd == "view" {
		return tui.Run(tui.Options{
			Generator:   cfg.Generator,
			Seed:        seed,
			Octaves:     cfg.Octaves,
			Persistence: cfg.Persistence,
			Lacunarity:  cfg.Lacunarity,
			Scale:       cfg.Scale,
			Palette:     cfg.Palette,
		})
	}

	g, err := build(cfg, seed)
	if err != nil {
		return err
	}

	switch cmd {
	case "sample":
		return sample(stdout, g, cfg)
	case "spectrum":
		return analyze(stdout, g, cfg)
	case "export":
		return exportPNG(g, cfg)
	default:
		return play(g, cfg)
	}
}

// resolveSeed picks the seed in order: playing track, explicit flag, clock.
func resolveSeed(cfg config.Config, stderr io.Writer) uint32 {
	if cfg.SeedFromMedia {
		s, err := mediaSeed()
		if err == nil {
			return s
		}
		fmt.Fprintf(stderr, "warning: %v, falling back\n", err)
		logging.L().Warn("media seed unavailable", "err", err)
	}
	if cfg.Seeded() {
		return uint32(cfg.Seed)
	}
	return uint32(time.Now().UnixNano())
}

func mediaSeed() (uint32, error) {
	p, err := media.NewProvider()
	if err != nil {
		return 0, err
	}
	defer p.Close()

	t, err := p.Current()
	if err != nil {
		return 0, err
	}
	logging.L().Info("seeding from track", "track", t.String())
	return t.Seed(), nil
}

func build(cfg config.Config, seed uint32) (noise.Generator, error) {
	base, err := noise.ByName(cfg.Generator, seed)
	if err != nil {
		return nil, err
	}
	if cfg.Octaves == 1 {
		return base, nil
	}
	f, err := noise.NewFractal(base, cfg.Octaves, cfg.Persistence, cfg.Lacunarity)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func sample(w io.Writer, g noise.Generator, cfg config.Config) error {
	vals := noise.Profile(g, cfg.Count, 0, cfg.Step)
	for i, v := range vals {
		fmt.Fprintf(w, "%.4f\t%.6f\n", float64(i)*cfg.Step, v)
	}
	if !cfg.Stats {
		return nil
	}

	mean, std := stat.MeanStdDev(vals, nil)
	fmt.Fprintf(w, "\nn=%d mean=%.6f std=%.6f min=%.6f max=%.6f\n",
		len(vals), mean, std, floats.Min(vals), floats.Max(vals))
	return nil
}

func analyze(w io.Writer, g noise.Generator, cfg config.Config) error {
	a := spectrum.NewAnalyzer(cfg.FFTSize)
	res := a.Analyze(spectrum.Signal(g, a.Size(), cfg.Step))

	fmt.Fprintf(w, "%-10s %8s  %s\n", "band", "energy", "share")
	for i, b := range spectrum.Bands {
		share := 0.0
		if res.Total > 0 {
			share = res.Energies[i] / res.Total
		}
		fmt.Fprintf(w, "%-10s %8.4f  %s\n", b.Name, res.Energies[i], bar(share, 30))
	}
	fmt.Fprintf(w, "\nhigh share %.3f  roughness %.3f\n", res.HighShare, res.Roughness)
	return nil
}

func bar(share float64, width int) string {
	n := int(share*float64(width) + 0.5)
	n = max(0, min(width, n))
	return strings.Repeat("█", n) + strings.Repeat("·", width-n)
}

func exportPNG(g noise.Generator, cfg config.Config) error {
	f, err := os.Create(cfg.Out)
	if err != nil {
		return err
	}

	switch cfg.Kind {
	case "waveform":
		err = export.Waveform(f, noise.Profile(g, cfg.Width, 0, cfg.Step), export.DefaultWaveformOptions())
	default:
		grid := noise.Grid(g, cfg.Width, cfg.Height, cfg.Scale, 0, 0, 0)
		err = export.Heightmap(f, grid, cfg.Upscale)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	logging.L().Info("exported", "kind", cfg.Kind, "path", cfg.Out)
	return nil
}

func play(g noise.Generator, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	opts := sonify.DefaultOptions()
	opts.SampleRate = cfg.SampleRate
	opts.Gain = cfg.Gain
	opts.Step = cfg.Step

	if cfg.Pacat {
		return sonify.PlayPacat(ctx, g, opts)
	}
	return sonify.Play(ctx, g, opts)
}
