package ui

import (
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-local/internal/service"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
)

func newTestModel(t *testing.T) (*Model, *usecase.SessionController) {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	kv := storage.NewMemoryStorage()
	gameStorage := service.NewGameStorage(logger, repository.NewSessionRepository(kv), repository.NewLeaderboardRepository(kv))
	controller := usecase.NewSessionController(logger, gameStorage, usecase.WithClock(func() time.Time {
		return time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	}))

	return New(t.Context(), controller), controller
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText feeds characters to the focused input without running the blink commands.
func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(runes(string(r)))
	}
}

// press sends a key and completes the controller operation it starts, if any.
func press(t *testing.T, m *Model, msg tea.KeyMsg) tea.Msg {
	t.Helper()

	_, cmd := m.Update(msg)
	if cmd == nil {
		return nil
	}

	result := cmd()
	if changed, ok := result.(sessionChangedMsg); ok {
		m.Update(changed)
	}

	return result
}

func startGame(t *testing.T, m *Model) {
	t.Helper()

	typeText(m, "Ana")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "Bea")
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestModel_Welcome(t *testing.T) {
	t.Run("Typing fills both names", func(t *testing.T) {
		m, controller := newTestModel(t)

		// When: typing a name in each input
		typeText(m, "Ana")
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		typeText(m, "Bea")

		// Then: the controller holds the names
		assert.Equal(t, "Ana", controller.View().PlayerX)
		assert.Equal(t, "Bea", controller.View().PlayerO)
		assert.Contains(t, m.View(), "Enter player names to start!")
	})

	t.Run("Missing name shows the alert and stays on welcome", func(t *testing.T) {
		m, controller := newTestModel(t)

		// Given: only player O has a name
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		typeText(m, "Bea")

		// When: pressing enter
		press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		// Then: the alert is shown and no game starts
		assert.Equal(t, entity.StateWelcome, controller.View().State)
		assert.Equal(t, MissingNamesMessage, m.alert)
		assert.Contains(t, m.View(), MissingNamesMessage)

		// And: typing again dismisses it
		m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
		typeText(m, "A")
		assert.Empty(t, m.alert)
	})

	t.Run("Leaderboard toggles", func(t *testing.T) {
		m, _ := newTestModel(t)

		m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
		assert.Contains(t, m.View(), "No games played yet")

		m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
		assert.NotContains(t, m.View(), "Recent Games")
	})

	t.Run("Esc quits", func(t *testing.T) {
		m, _ := newTestModel(t)

		msg := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

		assert.Equal(t, tea.QuitMsg{}, msg)
	})
}

func TestModel_Playing(t *testing.T) {
	t.Run("Enter starts the game", func(t *testing.T) {
		m, controller := newTestModel(t)

		startGame(t, m)

		assert.Equal(t, entity.StatePlaying, controller.View().State)
		assert.False(t, m.inputs[0].Focused())
		assert.False(t, m.inputs[1].Focused())
		assert.Contains(t, m.View(), "Next Player: Ana")
	})

	t.Run("Number keys place marks", func(t *testing.T) {
		m, controller := newTestModel(t)
		startGame(t, m)

		// When: X 1, O 2, X 4, O 5, X 7 (cells 0, 1, 3, 4, 6)
		for _, key := range []string{"1", "2", "4", "5", "7"} {
			press(t, m, runes(key))
		}

		// Then: X wins and scores
		view := controller.View()
		assert.Equal(t, entity.PlayerX, view.Winner())
		assert.Equal(t, 1, view.Score.X)
		assert.Contains(t, m.View(), "Winner: Ana!")
	})

	t.Run("Occupied cell is ignored", func(t *testing.T) {
		m, controller := newTestModel(t)
		startGame(t, m)

		press(t, m, runes("5"))
		press(t, m, runes("5"))

		view := controller.View()
		assert.Equal(t, entity.PlayerX, view.Board[4])
		assert.Equal(t, entity.PlayerO, view.CurrentPlayer)
		assert.Empty(t, m.alert)
	})

	t.Run("Other keys do nothing", func(t *testing.T) {
		m, _ := newTestModel(t)
		startGame(t, m)

		_, cmd := m.Update(runes("0"))

		assert.Nil(t, cmd)
	})
}

func TestModel_Ended(t *testing.T) {
	endRound := func(t *testing.T, m *Model) {
		t.Helper()

		for _, key := range []string{"1", "2", "4", "5", "7"} {
			press(t, m, runes(key))
		}
		press(t, m, runes("e"))
	}

	t.Run("End game shows the final score and leaderboard", func(t *testing.T) {
		m, controller := newTestModel(t)
		startGame(t, m)
		endRound(t, m)

		assert.Equal(t, entity.StateEnded, controller.View().State)
		assert.Contains(t, m.View(), "Game Over!")
		assert.Contains(t, m.View(), "Ana: 1 - Bea: 0")

		press(t, m, runes("l"))
		assert.Contains(t, m.View(), "Winner: Ana (X)")
		assert.Contains(t, m.View(), "Ana (X) vs Bea (O)")
	})

	t.Run("Play again keeps the score", func(t *testing.T) {
		m, controller := newTestModel(t)
		startGame(t, m)
		endRound(t, m)

		press(t, m, runes("p"))

		assert.Equal(t, entity.StatePlaying, controller.View().State)
		assert.Equal(t, 1, controller.View().Score.X)
	})

	t.Run("Exit returns to an empty welcome screen", func(t *testing.T) {
		m, controller := newTestModel(t)
		startGame(t, m)
		endRound(t, m)

		press(t, m, runes("x"))

		assert.Equal(t, entity.StateWelcome, controller.View().State)
		assert.Empty(t, m.inputs[0].Value())
		assert.Empty(t, m.inputs[1].Value())
		assert.True(t, m.inputs[0].Focused())
		assert.Equal(t, entity.Score{}, controller.View().Score)
	})
}

func TestModel_CtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)
	startGame(t, m)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)

	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestRenderLeaderboard(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Contains(t, RenderLeaderboard(nil), "No games played yet")
	})

	t.Run("Draw and winner entries", func(t *testing.T) {
		results := []entity.GameResult{
			{
				Winner:    &entity.Player{Name: "Bea", Symbol: entity.PlayerO},
				Timestamp: time.Date(2024, time.May, 2, 12, 0, 0, 0, time.UTC),
				PlayerX:   "Ana",
				PlayerO:   "Bea",
				ScoreX:    1,
				ScoreO:    2,
			},
			{
				Timestamp: time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC),
				PlayerX:   "Cy",
				PlayerO:   "Di",
			},
		}

		out := RenderLeaderboard(results)

		assert.Contains(t, out, "Recent Games")
		assert.Contains(t, out, "Score: 1 - 2")
		assert.Contains(t, out, "Winner: Bea (O)")
		assert.Contains(t, out, "Cy (X) vs Di (O)")
		assert.Contains(t, out, "Draw")
	})
}

func TestRenderBoard(t *testing.T) {
	out := RenderBoard(entity.Board{"X", "", "O"})

	assert.Contains(t, out, "X")
	assert.Contains(t, out, "O")
	assert.Contains(t, out, "9")
	assert.Contains(t, out, "───┼───┼───")
}
