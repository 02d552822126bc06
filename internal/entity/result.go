package entity

import (
	"sort"
	"time"
)

// GameResult is one finished game as recorded on the leaderboard.
// Winner is nil for a draw.
type GameResult struct {
	Winner    *Player   `json:"winner"`
	Timestamp time.Time `json:"timestamp"`
	PlayerX   string    `json:"playerX"`
	PlayerO   string    `json:"playerO"`
	ScoreX    int       `json:"scoreX"`
	ScoreO    int       `json:"scoreO"`
}

func (that GameResult) IsDraw() bool {
	return that.Winner == nil
}

// SortResults orders results newest first. Equal timestamps keep their relative order.
func SortResults(results []GameResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Timestamp.After(results[j].Timestamp)
	})
}
