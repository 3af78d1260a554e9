package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

// stubQuery implements the query port for TUI tests. Only Participants
// is exercised by the browser.
type stubQuery struct {
	participants []domain.Participant
	err          error
}

func (s *stubQuery) Sequences(_ context.Context, _ domain.SequenceOptions) ([][]string, error) {
	return nil, nil
}

func (s *stubQuery) GraspPoses(_ context.Context, _ domain.GraspKind, _ []string) (map[string][]domain.Pose, error) {
	return nil, nil
}

func (s *stubQuery) SceneDurations(_ context.Context) ([]int64, error) { return nil, nil }

func (s *stubQuery) InitialLayout(_ context.Context, _, _ int) (*domain.Scene, error) {
	return nil, nil
}

func (s *stubQuery) Objects(_ context.Context) ([]domain.ObjectCoverage, error) { return nil, nil }

func (s *stubQuery) Participants(_ context.Context) ([]domain.Participant, error) {
	return s.participants, s.err
}

func testParticipants() []domain.Participant {
	return []domain.Participant{
		{
			Number: 1,
			Scenes: []domain.Scene{
				{
					Participant: 1,
					Number:      1,
					Objects: []domain.Object{
						{Name: "011 banana"},
						{Name: "025 mug"},
					},
				},
			},
		},
		{Number: 2},
	}
}

func loadedApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(&Ports{Query: &stubQuery{participants: testParticipants()}})
	require.NoError(t, err)

	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	msg := app.Init()()
	app.Update(msg)
	return app
}

func TestNewApp(t *testing.T) {
	t.Run("requires a query service", func(t *testing.T) {
		_, err := NewApp(&Ports{})
		assert.ErrorIs(t, err, ErrMissingQueryService)
	})

	t.Run("valid ports", func(t *testing.T) {
		app, err := NewApp(&Ports{Query: &stubQuery{}})
		require.NoError(t, err)
		assert.NotNil(t, app)
	})
}

func TestApp_LoadsParticipants(t *testing.T) {
	app := loadedApp(t)

	assert.Len(t, app.participants.Items(), 2)
	assert.Contains(t, app.View(), "Participant 1")
}

func TestApp_LoadError(t *testing.T) {
	app, err := NewApp(&Ports{Query: &stubQuery{err: errors.New("db locked")}})
	require.NoError(t, err)

	msg := app.Init()()
	app.Update(msg)
	assert.Contains(t, app.View(), "db locked")
}

func TestApp_Navigation(t *testing.T) {
	app := loadedApp(t)

	// Enter the first participant.
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewScenes, app.state)
	assert.Contains(t, app.View(), "Scene 1")

	// Enter the first scene.
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewSceneDetail, app.state)
	view := app.View()
	assert.Contains(t, view, "011 banana")
	assert.Contains(t, view, "025 mug")

	// Back out to the participant list.
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewScenes, app.state)
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewParticipants, app.state)
}

func TestApp_Quit(t *testing.T) {
	app := loadedApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
