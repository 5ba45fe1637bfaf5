// Package tui is the interactive noise viewer.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"noisefield/internal/logging"
	"noisefield/internal/render"
	"noisefield/noise"
	"noisefield/palette"
	"noisefield/random"
)

const (
	fps        = 30
	maxOctaves = 12
)

type mode int

const (
	modeField mode = iota
	modeStrands
)

// Options seeds the initial view.
type Options struct {
	Generator   string
	Seed        uint32
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Scale       float64
	Palette     string
}

type Model struct {
	width  int
	height int
	ready  bool

	opts    Options
	genIdx  int
	palIdx  int
	mode    mode
	chaos   float64
	rng     *random.Rand
	anim    *noise.Animator
	field   *render.Renderer
	strands *render.Strands
	err     error
}

type tickMsg time.Time

// New builds the model. Unknown generator or palette names fall back to the
// first entry; invalid fractal settings are shown in place of the field.
func New(opts Options) *Model {
	m := &Model{
		opts:   opts,
		genIdx: indexOf(noise.Names, opts.Generator),
		palIdx: indexOf(palette.Names, opts.Palette),
		chaos:  0.4,
		rng:    random.New(opts.Seed),
	}

	ramp, _ := palette.Named(palette.Names[m.palIdx])
	m.anim = noise.NewAnimator(noise.Value{})
	m.field = render.NewRenderer(ramp)
	m.strands = render.NewStrands(m.anim, ramp, 9)
	m.rebuild()

	logging.L().Info("viewer created", "generator", opts.Generator, "seed", opts.Seed)
	return m
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return 0
}

// rebuild applies the current generator, seed and octave settings.
func (m *Model) rebuild() {
	base, err := noise.ByName(noise.Names[m.genIdx], m.opts.Seed)
	if err != nil {
		m.err = err
		return
	}
	f, err := noise.NewFractal(base, m.opts.Octaves, m.opts.Persistence, m.opts.Lacunarity)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.anim.SetGenerator(f)
}

func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			logging.L().Info("quit requested", "key", msg.String())
			return m, tea.Quit
		case " ":
			m.palIdx = (m.palIdx + 1) % len(palette.Names)
			ramp, _ := palette.Named(palette.Names[m.palIdx])
			m.field.SetRamp(ramp)
			m.strands.SetRamp(ramp)
			logging.L().Debug("palette changed", "palette", palette.Names[m.palIdx])
		case "g":
			m.genIdx = (m.genIdx + 1) % len(noise.Names)
			m.rebuild()
			logging.L().Debug("generator changed", "generator", noise.Names[m.genIdx])
		case "+", "=":
			if m.opts.Octaves < maxOctaves {
				m.opts.Octaves++
				m.rebuild()
			}
		case "-":
			if m.opts.Octaves > 1 {
				m.opts.Octaves--
				m.rebuild()
			}
		case "r":
			m.opts.Seed = uint32(m.rng.Int(0, 1<<31-1))
			m.rebuild()
			logging.L().Debug("reseeded", "seed", m.opts.Seed)
		case "m":
			if m.mode == modeField {
				m.mode = modeStrands
			} else {
				m.mode = modeField
			}
		case "[":
			m.chaos = max(0, m.chaos-0.1)
		case "]":
			m.chaos = min(1, m.chaos+0.1)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		logging.L().Info("window resized", "width", m.width, "height", m.height)

	case tickMsg:
		m.anim.Update(1.0 / fps)
		return m, tickCmd()
	}

	return m, nil
}

func (m *Model) View() string {
	if !m.ready || m.width == 0 {
		return "Initializing..."
	}
	if m.err != nil {
		return "error: " + m.err.Error() + "\n\npress q to quit"
	}

	bodyHeight := max(1, m.height-2)

	var body string
	switch m.mode {
	case modeStrands:
		body = m.strands.Render(m.chaos, m.width, bodyHeight)
	default:
		g := m.anim.Generator()
		z := m.anim.Time() * 0.3
		grid := noise.Grid(g, m.width, bodyHeight*2, m.opts.Scale, 0, 0, z)
		lo, hi := noise.Bounds(g)
		body = m.field.Field(grid, lo, hi)
	}

	footer := lipgloss.NewStyle().
		Faint(true).
		Foreground(lipgloss.Color("#888888")).
		Render(fmt.Sprintf("\n%s seed=%d octaves=%d palette=%s chaos=%.1f | q quit  space palette  g gen  +/- octaves  r reseed  m mode  [ ] chaos",
			noise.Names[m.genIdx], m.opts.Seed, m.opts.Octaves, palette.Names[m.palIdx], m.chaos))

	return body + footer
}

// Run starts the viewer on the alternate screen and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
