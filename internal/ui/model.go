// Package ui is the terminal front end: welcome, board and end screens drawn
// over the session controller.
package ui

import (
	"context"
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
)

const (
	MissingNamesMessage = "Please enter names for both players"

	nameCharLimit = 20
)

type controller interface {
	View() usecase.SessionView
	SetPlayerNames(playerX, playerO string) error
	StartNewGame(ctx context.Context) error
	CellTap(ctx context.Context, cell int) error
	EndGame(ctx context.Context) (entity.GameResult, error)
	ResetToWelcome(ctx context.Context) error
}

// sessionChangedMsg is delivered once a controller operation has finished.
type sessionChangedMsg struct {
	err error
}

type Model struct {
	ctx        context.Context
	controller controller

	inputs [2]textinput.Model
	focus  int

	showLeaderboard bool
	alert           string

	width  int
	height int
}

func New(ctx context.Context, controller controller) *Model {
	view := controller.View()

	m := &Model{
		ctx:        ctx,
		controller: controller,
	}

	for idx, label := range []string{"Player X", "Player O"} {
		input := textinput.New()
		input.Prompt = label + ": "
		input.Placeholder = "name"
		input.CharLimit = nameCharLimit
		m.inputs[idx] = input
	}

	m.inputs[0].SetValue(view.PlayerX)
	m.inputs[1].SetValue(view.PlayerO)

	if view.State == entity.StateWelcome {
		m.inputs[0].Focus()
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionChangedMsg:
		return m, m.handleSessionChanged(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.controller.View().State {
		case entity.StateWelcome:
			return m, m.handleWelcomeKey(msg)
		case entity.StatePlaying:
			return m, m.handlePlayingKey(msg)
		case entity.StateEnded:
			return m, m.handleEndedKey(msg)
		}
	}

	return m, nil
}

func (m *Model) handleSessionChanged(msg sessionChangedMsg) tea.Cmd {
	if errors.Is(msg.err, apperror.ErrMissingPlayerName) {
		m.alert = MissingNamesMessage
		return nil
	}

	m.alert = ""

	if m.controller.View().State != entity.StateWelcome {
		m.inputs[0].Blur()
		m.inputs[1].Blur()
		return nil
	}

	if m.inputs[0].Focused() || m.inputs[1].Focused() {
		return nil
	}

	// back on the welcome screen after a reset
	m.inputs[0].SetValue("")
	m.inputs[1].SetValue("")
	m.focus = 0
	m.showLeaderboard = false

	return m.inputs[0].Focus()
}

func (m *Model) handleWelcomeKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return tea.Quit
	case "enter":
		m.syncNames()
		return m.run(m.controller.StartNewGame)
	case "tab", "shift+tab", "up", "down":
		m.inputs[m.focus].Blur()
		m.focus = 1 - m.focus
		return m.inputs[m.focus].Focus()
	case "ctrl+l":
		m.showLeaderboard = !m.showLeaderboard
		return nil
	}

	m.alert = ""

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.syncNames()

	return cmd
}

func (m *Model) handlePlayingKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	switch key {
	case "q":
		return tea.Quit
	case "n":
		return m.run(m.controller.StartNewGame)
	case "e":
		return m.run(func(ctx context.Context) error {
			_, err := m.controller.EndGame(ctx)
			return err
		})
	}

	if cell, err := strconv.Atoi(key); err == nil && cell >= 1 && cell <= 9 {
		return m.run(func(ctx context.Context) error {
			return m.controller.CellTap(ctx, cell-1)
		})
	}

	return nil
}

func (m *Model) handleEndedKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "p", "enter":
		return m.run(m.controller.StartNewGame)
	case "x":
		return m.run(m.controller.ResetToWelcome)
	case "l":
		m.showLeaderboard = !m.showLeaderboard
	}

	return nil
}

func (m *Model) syncNames() {
	// the controller only rejects names outside welcome, which the caller already checked
	_ = m.controller.SetPlayerNames(m.inputs[0].Value(), m.inputs[1].Value())
}

// run executes a controller operation off the update loop.
func (m *Model) run(operation func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx

	return func() tea.Msg {
		return sessionChangedMsg{err: operation(ctx)}
	}
}
