package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortlab/internal/algo"
	"github.com/san-kum/sortlab/internal/config"
	"github.com/san-kum/sortlab/internal/dataset"
	"github.com/san-kum/sortlab/internal/export"
	"github.com/san-kum/sortlab/internal/playback"
	"github.com/san-kum/sortlab/internal/session"
	"github.com/san-kum/sortlab/internal/step"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Bar colors per highlight role, matched to the SVG export palette.
var roleStyles = map[step.Role]lipgloss.Style{
	step.RoleComparing: yellow,
	step.RoleSwapping:  red,
	step.RolePivot:     magenta,
	step.RoleSorted:    green,
	step.RoleRange:     lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
	step.RoleBoundary:  cyan,
}

type uiState int

const (
	stateMenu uiState = iota
	stateSetup
	statePlay
)

type playKeyMap struct {
	PlayPause key.Binding
	StepFwd   key.Binding
	StepBack  key.Binding
	Reset     key.Binding
	Faster    key.Binding
	Slower    key.Binding
	Medium    key.Binding
	Export    key.Binding
	Setup     key.Binding
	Quit      key.Binding
}

var playKeys = playKeyMap{
	PlayPause: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
	StepFwd:   key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n/→", "step")),
	StepBack:  key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p/←", "back")),
	Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Faster:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
	Slower:    key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
	Medium:    key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "medium")),
	Export:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "svg")),
	Setup:     key.NewBinding(key.WithKeys("esc", "c"), key.WithHelp("esc", "setup")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// tickMsg carries the driver generation it was scheduled under. The
// driver drops ticks from a stale generation, so a pause or reset
// cleanly kills the old tick chain without cancelling timers.
type tickMsg struct {
	gen int
}

func tick(d *playback.Driver) tea.Cmd {
	gen := d.Generation()
	return tea.Tick(d.Interval(), func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

type model struct {
	state uiState

	registry   *session.Registry
	algorithms []string
	metas      map[string]algo.Metadata
	cursor     int
	selected   string

	cfg         *config.Config
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string

	sess   *session.Session
	prog   progress.Model
	status string

	width  int
	height int
}

// setup parameter order. shape and speed cycle through fixed choices,
// the rest edit as integers.
var setupParams = []string{"size", "min", "max", "seed", "shape", "speed"}

func New(reg *session.Registry, cfg *config.Config) *model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	m := &model{
		state:      stateMenu,
		registry:   reg,
		algorithms: reg.List(),
		metas:      make(map[string]algo.Metadata),
		cfg:        cfg,
		paramNames: setupParams,
		prog:       progress.New(progress.WithDefaultGradient(), progress.WithWidth(40), progress.WithoutPercentage()),
		width:      80,
		height:     24,
	}
	for i, name := range m.algorithms {
		if a, err := reg.Get(name); err == nil {
			m.metas[name] = a.Meta()
		}
		if name == cfg.Algorithm {
			m.cursor = i
		}
	}
	return m
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
	case tickMsg:
		if m.state != statePlay || m.sess == nil {
			return m, nil
		}
		if m.sess.Driver.Tick(msg.gen) {
			return m, tick(m.sess.Driver)
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateSetup:
		return m.setupKey(msg)
	case statePlay:
		return m.playKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.algorithms)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.algorithms[m.cursor]
		m.cfg.Algorithm = m.selected
		m.state = stateSetup
		m.paramCursor = 0
		m.status = ""
	}
	return m, nil
}

func (m model) setupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.Atoi(m.editBuf); err == nil {
				m.setParam(m.paramNames[m.paramCursor], v)
			}
			m.editing = false
			m.editBuf = ""
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
				if (c >= '0' && c <= '9') || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "escape":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter":
		name := m.paramNames[m.paramCursor]
		if name == "shape" || name == "speed" {
			m.cycleParam(name, 1)
		} else {
			m.editing = true
			m.editBuf = strconv.Itoa(m.paramValue(name))
		}
	case "left", "h":
		m.adjustParam(m.paramNames[m.paramCursor], -1)
	case "right", "l":
		m.adjustParam(m.paramNames[m.paramCursor], 1)
	case "s", " ":
		if cmd := m.start(); cmd != nil {
			return m, cmd
		}
	}
	return m, nil
}

func (m model) playKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.sess.Driver
	switch {
	case key.Matches(msg, playKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, playKeys.Setup):
		d.Reset()
		m.sess = nil
		m.state = stateSetup
		m.status = ""
		return m, tea.ClearScreen
	case key.Matches(msg, playKeys.PlayPause):
		switch d.State() {
		case playback.Idle:
			if err := d.Start(); err != nil {
				m.status = err.Error()
				return m, nil
			}
			return m, tick(d)
		case playback.Playing:
			d.Pause()
		case playback.Paused:
			if err := d.Resume(); err != nil {
				m.status = err.Error()
				return m, nil
			}
			return m, tick(d)
		case playback.Finished:
			m.status = "finished, press r to reset"
		}
	case key.Matches(msg, playKeys.StepFwd):
		if _, err := d.Step(); err != nil {
			m.status = err.Error()
		} else {
			m.status = ""
		}
	case key.Matches(msg, playKeys.StepBack):
		if _, err := d.StepBack(); err != nil {
			m.status = err.Error()
		} else {
			m.status = ""
		}
	case key.Matches(msg, playKeys.Reset):
		d.Reset()
		m.status = ""
	case key.Matches(msg, playKeys.Faster):
		d.SetSpeed(d.Speed().Faster())
	case key.Matches(msg, playKeys.Slower):
		d.SetSpeed(d.Speed().Slower())
	case key.Matches(msg, playKeys.Medium):
		d.SetSpeed(playback.Medium)
	case key.Matches(msg, playKeys.Export):
		s := d.Cursor().Current()
		path := fmt.Sprintf("sortlab_%s_step_%03d.svg", m.selected, s.Seq)
		if err := export.SaveStepSVG(path, s, 800, 500); err != nil {
			m.status = err.Error()
		} else {
			m.status = "saved " + path
		}
	}
	return m, nil
}

func (m *model) paramValue(name string) int {
	switch name {
	case "size":
		return m.cfg.Size
	case "min":
		return m.cfg.Min
	case "max":
		return m.cfg.Max
	case "seed":
		return int(m.cfg.Seed)
	}
	return 0
}

func (m *model) setParam(name string, v int) {
	switch name {
	case "size":
		m.cfg.Size = v
	case "min":
		m.cfg.Min = v
	case "max":
		m.cfg.Max = v
	case "seed":
		m.cfg.Seed = int64(v)
	}
}

func (m *model) adjustParam(name string, delta int) {
	if name == "shape" || name == "speed" {
		m.cycleParam(name, delta)
		return
	}
	m.setParam(name, m.paramValue(name)+delta)
}

func (m *model) cycleParam(name string, delta int) {
	var choices []string
	var current string
	if name == "shape" {
		choices = dataset.Shapes()
		current = m.cfg.Shape
	} else {
		choices = playback.SpeedNames()
		current = m.cfg.Speed
	}
	idx := 0
	for i, c := range choices {
		if c == current {
			idx = i
		}
	}
	idx = (idx + delta + len(choices)) % len(choices)
	if name == "shape" {
		m.cfg.Shape = choices[idx]
	} else {
		m.cfg.Speed = choices[idx]
	}
}

// start builds the input array, runs the selected algorithm to record
// its log, and switches to the playback screen in the idle state.
func (m *model) start() tea.Cmd {
	values := m.cfg.Values
	if len(values) == 0 {
		seed := m.cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		v, err := dataset.Generate(m.cfg.Shape, m.cfg.Size, m.cfg.Min, m.cfg.Max, seed)
		if err != nil {
			m.status = err.Error()
			return nil
		}
		values = v
	}

	a, err := m.registry.Get(m.selected)
	if err != nil {
		m.status = err.Error()
		return nil
	}
	sess, err := session.New(a, values)
	if err != nil {
		m.status = err.Error()
		return nil
	}
	if spd, err := playback.ParseSpeed(m.cfg.Speed); err == nil {
		sess.Driver.SetSpeed(spd)
	}

	m.sess = sess
	m.state = statePlay
	m.status = ""
	return tea.ClearScreen
}

// Run starts the interactive visualizer in the alternate screen.
func Run(reg *session.Registry, cfg *config.Config) error {
	p := tea.NewProgram(New(reg, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
