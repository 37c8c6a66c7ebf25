// Package events carries one-way notifications from the game core to
// whatever presents it. Listeners observe; they never answer back.
package events

import "github.com/vovakirdan/gridshift/internal/grid"

// Event is implemented by every notification type.
type Event interface {
	event()
}

// TileFlipped is sent after every flip that changed at least one cell.
type TileFlipped struct {
	Count     int // cells flipped by this action
	Remaining int // Open cells left
	Total     int // flippable cells on the board
}

func (TileFlipped) event() {}

// ChainFlipped is sent after TileFlipped when more than one cell flipped.
type ChainFlipped struct {
	Count int
	Flips []grid.Flip // with distances, for staggered highlighting
}

func (ChainFlipped) event() {}

// ScoreChanged is sent whenever a puzzle session awards points.
type ScoreChanged struct {
	Score int // session score
	Delta int
}

func (ScoreChanged) event() {}

// RunScoreChanged is sent when points are banked into the run total: a won
// or lost session hands over its score, or an instant node pays out. Points
// handed over from a session were already announced by ScoreChanged.
type RunScoreChanged struct {
	Score int // run total
	Delta int
}

func (RunScoreChanged) event() {}

// TimerTicked is sent once per elapsed second of a limited level.
type TimerTicked struct {
	SecondsLeft int
}

func (TimerTicked) event() {}

// LevelWon is sent when the last Open cell is flipped.
type LevelWon struct {
	Score      int // session score including bonuses
	ClearBonus int
	TimeBonus  int
}

func (LevelWon) event() {}

// LossReason says why a level was lost.
type LossReason string

const (
	ReasonCaught LossReason = "caught"
	ReasonTimeUp LossReason = "time up"
)

// LevelLost is sent when an enemy reaches the player or time runs out.
type LevelLost struct {
	Reason LossReason
}

func (LevelLost) event() {}

// NodeSelectableChanged is sent when the set of pickable map nodes changes.
type NodeSelectableChanged struct {
	Selectable []int // node ids, ascending
}

func (NodeSelectableChanged) event() {}

// RunEnded is sent once when a run is won or lost.
type RunEnded struct {
	RunID string
	Won   bool
	Score int
}

func (RunEnded) event() {}
