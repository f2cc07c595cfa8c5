package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"radiorove/internal/config"
	"radiorove/internal/domain"
	"radiorove/internal/eventbus"
	"radiorove/internal/keymap"
	"radiorove/internal/radiogroup"
	"radiorove/internal/ui/input"
	inputtypes "radiorove/internal/ui/input/types"
	"radiorove/internal/ui/views"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	groups       []*radiogroup.Group
	focusedGroup int

	orientation   domain.Orientation
	textDirection domain.TextDirection

	width  int
	height int
	help   help.Model
	keys   keymap.KeyMap

	showHelp      bool
	statusMessage string
	statusIsError bool

	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	renderer     *views.ViewRenderer

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	styles := views.NewStyles()
	radio := views.NewRadioRenderer(styles, cfg.UISettings.SelectedMark, cfg.UISettings.UnselectedMark)

	m := &Model{
		bus:           bus,
		config:        cfg,
		orientation:   cfg.UISettings.Orientation,
		textDirection: cfg.UISettings.TextDirection,
		help:          help.New(),
		keys:          keymap.DefaultKeyMap(),
		inputHandler:  input.New(),
		helpRenderer:  NewHelpRenderer(),
		renderer:      views.NewViewRenderer(styles, radio),
	}

	// Build groups from config
	for _, gc := range cfg.Groups {
		g := radiogroup.New(gc.Name, gc.ToOptions(), bus)
		g.SetReadOnly(gc.ReadOnly)
		if gc.Value != "" {
			g.SetValue(gc.Value)
		}
		m.groups = append(m.groups, g)
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Groups exposes the composed radio groups
func (m *Model) Groups() []*radiogroup.Group {
	return m.groups
}

// Orientation implements inputtypes.Context
func (m *Model) Orientation() domain.Orientation { return m.orientation }

// TextDirection implements inputtypes.Context
func (m *Model) TextDirection() domain.TextDirection { return m.textDirection }

// GroupCount implements inputtypes.Context
func (m *Model) GroupCount() int { return len(m.groups) }

// FocusedGroup implements inputtypes.Context
func (m *Model) FocusedGroup() int { return m.focusedGroup }

// HelpVisible implements inputtypes.Context
func (m *Model) HelpVisible() bool { return m.showHelp }

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		actions, consumed := m.inputHandler.HandleKey(msg, m)
		if !consumed {
			return m, nil
		}
		return m.executeActions(actions)

	case EventMsg:
		m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("help pager: %v", msg.err))
		}
	}

	return m, nil
}

// executeActions applies the actions produced by the input handler
func (m *Model) executeActions(actions []inputtypes.Action) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	for _, action := range actions {
		switch a := action.(type) {
		case inputtypes.NavigateAction:
			if g := m.currentGroup(); g != nil {
				g.Navigate(a.Direction)
			}

		case inputtypes.JumpAction:
			if g := m.currentGroup(); g != nil {
				if a.ToEnd {
					g.End()
				} else {
					g.Home()
				}
			}

		case inputtypes.SelectAction:
			if g := m.currentGroup(); g != nil {
				idx := a.Index
				if idx < 0 {
					idx = g.Active()
				}
				if idx >= 0 {
					g.Select(idx)
				}
			}

		case inputtypes.CycleGroupAction:
			m.cycleGroup(a.Backward)

		case inputtypes.ToggleOrientationAction:
			if m.orientation == domain.OrientationVertical {
				m.orientation = domain.OrientationHorizontal
			} else {
				m.orientation = domain.OrientationVertical
			}
			m.publishConfigChanged()

		case inputtypes.ToggleTextDirectionAction:
			if m.textDirection == domain.TextDirectionLTR {
				m.textDirection = domain.TextDirectionRTL
			} else {
				m.textDirection = domain.TextDirectionLTR
			}
			m.publishConfigChanged()

		case inputtypes.ToggleReadOnlyAction:
			if g := m.currentGroup(); g != nil {
				g.SetReadOnly(!g.ReadOnly())
			}

		case inputtypes.ToggleHelpAction:
			m.showHelp = !m.showHelp

		case inputtypes.OpenHelpPagerAction:
			cmds = append(cmds, m.openHelpPager())

		case inputtypes.QuitAction:
			return m, tea.Quit
		}
	}

	return m, tea.Batch(cmds...)
}

// handleEvent reacts to domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.ValueChangedEvent:
		m.statusIsError = false
		m.statusMessage = fmt.Sprintf("%s = %s", e.Group, e.NewValue)

	case eventbus.ErrorEvent:
		m.setError(e.Message)

	case eventbus.ConfigSavedEvent:
		m.statusIsError = false
		m.statusMessage = "configuration saved"
	}
}

// View renders the UI
func (m *Model) View() string {
	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Groups:        m.groups,
		FocusedGroup:  m.focusedGroup,
		Orientation:   m.orientation,
		TextDirection: m.textDirection,
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		ShowHelp:      m.showHelp,
		Help:          m.help,
		Keys:          m.keys,
	}
	if m.showHelp {
		state.HelpContent = m.helpRenderer.RenderHelpContent()
	}
	return m.renderer.Render(state)
}

// UpdateConfig writes the current UI settings back into the config
func (m *Model) UpdateConfig() {
	m.config.UISettings.Orientation = m.orientation
	m.config.UISettings.TextDirection = m.textDirection
	for i := range m.config.Groups {
		if i < len(m.groups) {
			m.config.Groups[i].Value = m.groups[i].Value()
			m.config.Groups[i].ReadOnly = m.groups[i].ReadOnly()
		}
	}
}

func (m *Model) currentGroup() *radiogroup.Group {
	if m.focusedGroup < 0 || m.focusedGroup >= len(m.groups) {
		return nil
	}
	return m.groups[m.focusedGroup]
}

func (m *Model) cycleGroup(backward bool) {
	if len(m.groups) < 2 {
		return
	}
	delta := 1
	if backward {
		delta = -1
	}
	m.focusedGroup = (m.focusedGroup + delta + len(m.groups)) % len(m.groups)
	m.statusMessage = ""
}

func (m *Model) openHelpPager() tea.Cmd {
	if m.helpOps == nil {
		m.setError("help pager unavailable")
		return nil
	}
	content := m.helpRenderer.RenderHelpContent()
	return func() tea.Msg {
		return helpPagerMsg{err: m.helpOps.ShowHelpInPager(content)}
	}
}

func (m *Model) publishConfigChanged() {
	if m.bus == nil {
		return
	}
	m.bus.Publish(eventbus.ConfigChangedEvent{
		Orientation:   m.orientation,
		TextDirection: m.textDirection,
	})
}

func (m *Model) setError(msg string) {
	log.Printf("UI error: %s", msg)
	m.statusMessage = msg
	m.statusIsError = true
}
