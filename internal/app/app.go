// Package app drives the simulation from terminal events: ticks, key
// presses, mouse input and resizes, delivered sequentially by Bubble Tea.
package app

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kdheepak/game-of-life/internal/render"
	"github.com/kdheepak/game-of-life/internal/ui"
	"github.com/kdheepak/game-of-life/pkg/life"
	"github.com/kdheepak/game-of-life/pkg/pattern"
)

// Model owns the universe and processes one event at a time; no event is
// handled concurrently with another, so the grid needs no locking.
type Model struct {
	cfg *Config
	uni *life.Universe
	pat *pattern.Pattern

	mode       Mode
	paused     bool
	seed       int64
	generation int

	cols, rows int
}

// New constructs the driver. pat may be nil, in which case every grid
// (re)initialization fills cells at random.
func New(cfg *Config, pat *pattern.Pattern) *Model {
	return &Model{
		cfg:  cfg,
		uni:  life.New(pat),
		pat:  pat,
		mode: ParseMode(cfg.Mode),
		seed: cfg.Seed,
	}
}

// Init starts the tick cadence.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TPS)
}

// Update processes a single event.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.reinit()
	case TickMsg:
		if !m.paused {
			m.step()
		}
		return m, tickCmd(m.cfg.TPS)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "enter":
			m.paused = false
		case "n":
			if m.paused {
				m.step()
			}
		case "r":
			m.reinit()
		case "s":
			m.seed = time.Now().UnixNano()
			m.reinit()
		case "m":
			m.mode = m.mode.Next()
		}
	case tea.MouseMsg:
		if msg.Type == tea.MouseLeft {
			m.paint(msg.Y, msg.X)
		}
	}
	return m, nil
}

// View renders the grid two rows per terminal line, with the status bar on
// the last line.
func (m *Model) View() string {
	if m.uni.Width() == 0 {
		return ""
	}
	var b strings.Builder
	for r := 0; r < m.uni.Height()/2; r++ {
		for c := 0; c < m.uni.Width(); c++ {
			b.WriteString(render.Composite(m.uni.At(2*r, c), m.uni.At(2*r+1, c)))
		}
		b.WriteByte('\n')
	}
	b.WriteString(ui.StatusBar(ui.Status{
		Pattern:    m.patternName(),
		Generation: m.generation,
		Population: m.uni.Population(),
		Paused:     m.paused,
		Mode:       m.mode.String(),
	}, m.cols))
	return b.String()
}

func (m *Model) step() {
	m.uni.Tick()
	m.generation++
}

// reinit rebuilds the grid for the current terminal size, reserving one
// terminal row for the status bar. Prior simulation state is not preserved.
func (m *Model) reinit() {
	h := 2 * (m.rows - 1)
	if h < 2 {
		h = 2
	}
	m.uni.Init(m.cols, h, m.seed)
	m.generation = 0
}

// paint sets the grid rows selected by the current mode alive at the
// pressed terminal cell. Presses outside the grid, such as on the status
// bar, are ignored here; the universe itself still rejects bad indices.
func (m *Model) paint(termRow, termCol int) {
	if termCol < 0 || termCol >= m.uni.Width() {
		return
	}
	if termRow < 0 || 2*termRow >= m.uni.Height() {
		return
	}
	for _, row := range m.mode.gridRows(termRow) {
		if err := m.uni.SetAlive(row, termCol); err != nil {
			return
		}
	}
}

func (m *Model) patternName() string {
	if m.pat == nil {
		return "random soup"
	}
	if m.pat.Name == "" {
		return "unnamed pattern"
	}
	return m.pat.Name
}
