package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/davidcortesortuno/skyrmion-model-widget/internal/config"
	"github.com/davidcortesortuno/skyrmion-model-widget/internal/lattice"
	"github.com/davidcortesortuno/skyrmion-model-widget/internal/spin"
	"github.com/davidcortesortuno/skyrmion-model-widget/internal/viz"
)

// Parameter bounds for the interactive surface.
const (
	helicityStep = math.Pi / 36
	radiusStep   = 0.5
	radiusMin    = 2.0
	radiusMax    = 25.0
)

// Footer label while the parameters match no applied preset.
const customPreset = "custom"

var paramNames = []string{"helicity", "radius", "vorticity", "chirality"}

var paramInfo = map[string]string{
	"helicity":  "in-plane rotation, 0 Néel .. π/2 Bloch",
	"radius":    "core size in lattice units",
	"vorticity": "+1 skyrmion, -1 antiskyrmion",
	"chirality": "global orientation sign",
}

type model struct {
	lat    *lattice.Lattice
	params spin.Parameters
	field  []spin.Vector
	err    error

	presets     []string
	presetIdx   int
	presetName  string
	paramCursor int
	editing     bool
	editBuf     string

	width  int
	height int
}

// Run starts the interactive view: every parameter change triggers one full
// field re-evaluation over all lattice points.
func Run(cfg *config.Config) error {
	lat, err := lattice.Generate(cfg.Lattice.Nx, cfg.Lattice.Ny, cfg.Lattice.Radius)
	if err != nil {
		return err
	}

	cx, cy := lat.Center()
	presets := config.ListPresets()
	sort.Strings(presets)

	m := model{
		lat:        lat,
		params:     cfg.Parameters(cx, cy),
		presets:    presets,
		presetName: customPreset,
		width:      80,
		height:     24,
	}
	m.recompute()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func (m *model) recompute() {
	field, err := spin.EvaluateField(m.lat, m.params)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.field = field
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(paramNames)-1 {
			m.paramCursor++
		}
	case "left", "h":
		m.nudge(-1)
	case "right", "l":
		m.nudge(+1)
	case "enter":
		name := paramNames[m.paramCursor]
		if name == "helicity" || name == "radius" {
			m.editing = true
			m.editBuf = fmt.Sprintf("%.3f", m.params.GetParams()[name])
		} else {
			m.nudge(+1) // toggle
		}
	case "v":
		m.params.Vorticity = -m.params.Vorticity
		m.presetName = customPreset
		m.recompute()
	case "c":
		m.params.Chirality = -m.params.Chirality
		m.presetName = customPreset
		m.recompute()
	case "p":
		m.applyPreset((m.presetIdx + 1) % len(m.presets))
	case "P":
		m.applyPreset((m.presetIdx - 1 + len(m.presets)) % len(m.presets))
	case "r":
		cfg := config.DefaultConfig()
		cx, cy := m.lat.Center()
		m.params = cfg.Parameters(cx, cy)
		m.presetName = customPreset
		m.recompute()
	}
	return m, nil
}

func (m *model) editKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		var val float64
		fmt.Sscanf(m.editBuf, "%f", &val)
		name := paramNames[m.paramCursor]
		switch name {
		case "helicity":
			m.params.Helicity = clamp(val, 0, math.Pi)
		case "radius":
			m.params.Radius = clamp(val, radiusMin, radiusMax)
		}
		m.editing = false
		m.editBuf = ""
		m.presetName = customPreset
		m.recompute()
	case "escape":
		m.editing = false
		m.editBuf = ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' {
				m.editBuf += string(c)
			}
		}
	}
	return *m, nil
}

// nudge moves the selected parameter one step and re-evaluates the field.
// Discrete parameters flip sign in either direction.
func (m *model) nudge(dir int) {
	switch paramNames[m.paramCursor] {
	case "helicity":
		m.params.Helicity = clamp(m.params.Helicity+float64(dir)*helicityStep, 0, math.Pi)
	case "radius":
		m.params.Radius = clamp(m.params.Radius+float64(dir)*radiusStep, radiusMin, radiusMax)
	case "vorticity":
		m.params.Vorticity = -m.params.Vorticity
	case "chirality":
		m.params.Chirality = -m.params.Chirality
	}
	m.presetName = customPreset
	m.recompute()
}

func (m *model) applyPreset(idx int) {
	m.presetIdx = idx
	cfg := config.GetPreset(m.presets[idx])
	if cfg == nil {
		return
	}
	m.presetName = m.presets[idx]
	cx, cy := m.lat.Center()
	p := cfg.Parameters(cx, cy)
	// The lattice is fixed at startup; presets only move the spin parameters.
	m.params.Radius = clamp(p.Radius, radiusMin, radiusMax)
	m.params.Helicity = p.Helicity
	m.params.Vorticity = p.Vorticity
	m.params.Chirality = p.Chirality
	m.recompute()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n  " + viz.Title.Render("skyrmion lattice") + "  " +
		viz.Label.Render(fmt.Sprintf("%dx%d triangular, %d spins", m.lat.Nx, m.lat.Ny, len(m.lat.Points))) + "\n")
	b.WriteString(viz.KeyHint.Render("  "+strings.Repeat("─", 40)) + "\n\n")

	field := viz.RenderField(m.lat, m.field)
	for _, line := range strings.Split(strings.TrimRight(field, "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n  " + viz.Label.Render("-z ") + viz.ColorBar(24) + viz.Label.Render(" +z") + "\n\n")

	for i, name := range paramNames {
		val := m.paramValue(name)
		if m.editing && i == m.paramCursor {
			val = m.editBuf + "▋"
		}
		if i == m.paramCursor {
			b.WriteString("  " + viz.Title.Render("▸ ") + viz.Value.Render(fmt.Sprintf("%-10s", name)) +
				viz.Accent.Render(fmt.Sprintf("%10s", val)) + "  " + viz.KeyHint.Render(paramInfo[name]) + "\n")
		} else {
			b.WriteString("    " + viz.Label.Render(fmt.Sprintf("%-10s", name)) +
				viz.Label.Render(fmt.Sprintf("%10s", val)) + "\n")
		}
	}

	b.WriteString("\n  " + viz.Label.Render(fmt.Sprintf("preset %s", m.presetName)) + "\n")

	if m.err != nil {
		b.WriteString("  " + viz.ErrText.Render(m.err.Error()) + "\n")
	}

	b.WriteString("\n  " + viz.KeyHint.Render("↑↓ select  ←→ adjust  enter edit  v/c flip  p preset  r reset  q quit") + "\n")

	return b.String()
}

func (m model) paramValue(name string) string {
	switch name {
	case "helicity":
		return fmt.Sprintf("%.3f rad", m.params.Helicity)
	case "radius":
		return fmt.Sprintf("%.1f", m.params.Radius)
	case "vorticity":
		return fmt.Sprintf("%+d", m.params.Vorticity)
	case "chirality":
		return fmt.Sprintf("%+d", m.params.Chirality)
	}
	return ""
}
