package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
)

const leaderboardDateLayout = "2006-01-02"

func (m *Model) View() string {
	view := m.controller.View()

	var body string
	switch view.State {
	case entity.StatePlaying:
		body = m.renderGameScreen(view)
	case entity.StateEnded:
		body = m.renderEndScreen(view)
	default:
		body = m.renderWelcomeScreen(view)
	}

	return docStyle.Render(body)
}

func (m *Model) renderWelcomeScreen(view usecase.SessionView) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tic Tac Toe"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Enter player names to start!"))
	b.WriteString("\n\n")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n")

	if m.alert != "" {
		b.WriteString("\n")
		b.WriteString(alertStyle.Render(m.alert))
		b.WriteString("\n")
	}

	help := "enter start game • tab switch player • ctrl+l show leaderboard • esc quit"
	if m.showLeaderboard {
		help = "enter start game • tab switch player • ctrl+l hide leaderboard • esc quit"
	}
	b.WriteString(helpStyle.Render(help))

	if m.showLeaderboard {
		b.WriteString("\n\n")
		b.WriteString(RenderLeaderboard(view.Leaderboard))
	}

	return b.String()
}

func (m *Model) renderGameScreen(view usecase.SessionView) string {
	score := lipgloss.JoinHorizontal(lipgloss.Center,
		renderScore(view.PlayerX, view.Score.X),
		"  │  ",
		renderScore(view.PlayerO, view.Score.O),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		boxStyle.Render(score),
		statusStyle.Render(view.Status()),
		RenderBoard(view.Board),
		helpStyle.Render("1-9 place mark • n new game • e end game • q quit"),
	)
}

func (m *Model) renderEndScreen(view usecase.SessionView) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Game Over!"))
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Final Score:"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s: %d - %s: %d", view.PlayerX, view.Score.X, view.PlayerO, view.Score.O)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("p play again • x exit game • l leaderboard • q quit"))

	if m.showLeaderboard {
		b.WriteString("\n\n")
		b.WriteString(RenderLeaderboard(view.Leaderboard))
	}

	return b.String()
}

func renderScore(name string, wins int) string {
	return subtitleStyle.Render(name) + " " + titleStyle.Render(strconv.Itoa(wins))
}

// RenderBoard draws the grid; empty cells show the key that fills them.
func RenderBoard(board entity.Board) string {
	var b strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			b.WriteString("───┼───┼───\n")
		}

		for col := 0; col < 3; col++ {
			if col > 0 {
				b.WriteString("│")
			}

			idx := row*3 + col
			b.WriteString(" " + renderCell(board[idx], idx) + " ")
		}

		b.WriteString("\n")
	}

	return b.String()
}

func renderCell(cell string, idx int) string {
	switch cell {
	case entity.PlayerX:
		return markXStyle.Render(cell)
	case entity.PlayerO:
		return markOStyle.Render(cell)
	default:
		return hintStyle.Render(strconv.Itoa(idx + 1))
	}
}

// RenderLeaderboard lists finished games in stored order.
func RenderLeaderboard(results []entity.GameResult) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Recent Games"))
	b.WriteString("\n")

	if len(results) == 0 {
		b.WriteString(hintStyle.Render("No games played yet"))
		return b.String()
	}

	for _, result := range results {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(result.Timestamp.Local().Format(leaderboardDateLayout)))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s (X) vs %s (O)\n", result.PlayerX, result.PlayerO)
		fmt.Fprintf(&b, "Score: %d - %d\n", result.ScoreX, result.ScoreO)

		if result.Winner != nil {
			b.WriteString(winnerStyle.Render(fmt.Sprintf("Winner: %s (%s)", result.Winner.Name, result.Winner.Symbol)))
		} else {
			b.WriteString(winnerStyle.Render("Draw"))
		}
		b.WriteString("\n")
	}

	return b.String()
}
