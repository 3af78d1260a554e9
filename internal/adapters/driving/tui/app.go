package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

// viewState tracks which level of the browser is active.
type viewState int

const (
	viewParticipants viewState = iota
	viewScenes
	viewSceneDetail
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	detailStyle = lipgloss.NewStyle().Padding(1, 2)
)

// participantItem adapts domain.Participant to list.Item.
type participantItem struct {
	participant domain.Participant
}

func (i participantItem) Title() string { return fmt.Sprintf("Participant %d", i.participant.Number) }
func (i participantItem) Description() string {
	return fmt.Sprintf("%d scenes", len(i.participant.Scenes))
}
func (i participantItem) FilterValue() string { return i.Title() }

// sceneItem adapts domain.Scene to list.Item.
type sceneItem struct {
	scene domain.Scene
}

func (i sceneItem) Title() string { return fmt.Sprintf("Scene %d", i.scene.Number) }
func (i sceneItem) Description() string {
	desc := fmt.Sprintf("%d objects", len(i.scene.Objects))
	if d := i.scene.Duration(); d > 0 {
		desc += fmt.Sprintf(", %.1fs", float64(d)/1000)
	}
	return desc
}
func (i sceneItem) FilterValue() string { return i.Title() }

// participantsMsg carries the loaded participants.
type participantsMsg struct {
	participants []domain.Participant
}

// errMsg carries a load failure.
type errMsg struct {
	err error
}

// App is the dataset browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports
	ctx   context.Context

	state        viewState
	participants list.Model
	scenes       list.Model
	selected     *domain.Scene

	err    error
	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	participants := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	participants.Title = "BoxED participants"
	scenes := list.New(nil, list.NewDefaultDelegate(), 0, 0)

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		participants: participants,
		scenes:       scenes,
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) {
	a.ctx = ctx
}

// Init loads the participants.
func (a *App) Init() tea.Cmd {
	return a.loadParticipants
}

func (a *App) loadParticipants() tea.Msg {
	participants, err := a.ports.Query.Participants(a.ctx)
	if err != nil {
		return errMsg{err: err}
	}
	return participantsMsg{participants: participants}
}

// Update handles messages and key presses.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.participants.SetSize(msg.Width, msg.Height-2)
		a.scenes.SetSize(msg.Width, msg.Height-2)
		return a, nil

	case participantsMsg:
		items := make([]list.Item, len(msg.participants))
		for i := range msg.participants {
			items[i] = participantItem{participant: msg.participants[i]}
		}
		a.participants.SetItems(items)
		return a, nil

	case errMsg:
		a.err = msg.err
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, a.updateActiveList(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		// Let the list's filter input consume "q" while filtering.
		if msg.String() == "q" && a.activeListFiltering() {
			break
		}
		return a, tea.Quit

	case "enter":
		switch a.state {
		case viewParticipants:
			if item, ok := a.participants.SelectedItem().(participantItem); ok {
				a.enterParticipant(item.participant)
			}
			return a, nil
		case viewScenes:
			if item, ok := a.scenes.SelectedItem().(sceneItem); ok {
				scene := item.scene
				a.selected = &scene
				a.state = viewSceneDetail
			}
			return a, nil
		}

	case "esc":
		switch a.state {
		case viewSceneDetail:
			a.state = viewScenes
			a.selected = nil
			return a, nil
		case viewScenes:
			a.state = viewParticipants
			return a, nil
		}
	}

	return a, a.updateActiveList(msg)
}

func (a *App) enterParticipant(p domain.Participant) {
	items := make([]list.Item, len(p.Scenes))
	for i := range p.Scenes {
		items[i] = sceneItem{scene: p.Scenes[i]}
	}
	a.scenes.SetItems(items)
	a.scenes.Title = fmt.Sprintf("Participant %d", p.Number)
	a.scenes.ResetSelected()
	a.state = viewScenes
}

func (a *App) activeListFiltering() bool {
	switch a.state {
	case viewParticipants:
		return a.participants.FilterState() == list.Filtering
	case viewScenes:
		return a.scenes.FilterState() == list.Filtering
	default:
		return false
	}
}

func (a *App) updateActiveList(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.state {
	case viewParticipants:
		a.participants, cmd = a.participants.Update(msg)
	case viewScenes:
		a.scenes, cmd = a.scenes.Update(msg)
	}
	return cmd
}

// View renders the active screen.
func (a *App) View() string {
	if a.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", a.err)) + "\n\nPress q to quit.\n"
	}

	switch a.state {
	case viewScenes:
		return a.scenes.View()
	case viewSceneDetail:
		return a.sceneDetailView()
	default:
		return a.participants.View()
	}
}

func (a *App) sceneDetailView() string {
	s := a.selected
	if s == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Participant %d, scene %d", s.Participant, s.Number)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Packing order: "))
	b.WriteString(valueStyle.Render(strings.Join(s.PackingOrder(), " -> ")))
	b.WriteString("\n")

	if d := s.Duration(); d > 0 {
		b.WriteString(labelStyle.Render("Duration:      "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.1fs", float64(d)/1000)))
		b.WriteString("\n")
	}

	if len(s.InitialLayout) > 0 {
		b.WriteString(labelStyle.Render("Layout:        "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%d objects at scene start", len(s.InitialLayout))))
		b.WriteString("\n")
	}

	if s.Snapshot != nil {
		b.WriteString(labelStyle.Render("Snapshot:      "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%s (%dx%d)",
			s.Snapshot.Path, s.Snapshot.Width, s.Snapshot.Height)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("esc back, q quit"))
	return detailStyle.Render(b.String())
}
