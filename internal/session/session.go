// Package session runs a single puzzle attempt: one board, one player,
// the level's enemies and the timers that drive them. It decides when the
// attempt is won or lost and nothing beyond that.
package session

import (
	"math/rand"

	"github.com/vovakirdan/gridshift/internal/entity"
	"github.com/vovakirdan/gridshift/internal/events"
	"github.com/vovakirdan/gridshift/internal/grid"
	"github.com/vovakirdan/gridshift/internal/levels"
)

// State is the lifecycle of an attempt. Every state but Active is terminal.
type State int

const (
	Active State = iota
	Won
	Lost
	Abandoned
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Abandoned:
		return "abandoned"
	}
	return "unknown"
}

// Session is one attempt at a level.
type Session struct {
	level    *levels.Level
	settings Settings
	rng      *rand.Rand
	bus      *events.Bus

	grid    *grid.Grid
	player  *entity.Player
	enemies []*entity.Enemy

	enemyTimer *Timer
	countdown  *Timer

	now         int64
	state       State
	reason      events.LossReason
	score       int
	timeLimit   int
	secondsLeft int
	clearBonus  int
	timeBonus   int
}

// New starts an attempt at lvl. The player's start cell is flipped at once
// as the opening move, and scores like any other flip.
func New(lvl *levels.Level, s Settings, rng *rand.Rand, bus *events.Bus) *Session {
	sess := &Session{
		level:    lvl,
		settings: s,
		rng:      rng,
		bus:      bus,
		grid:     lvl.NewGrid(),
		player:   entity.NewPlayer(lvl.Start, s.PlayerMoveTicks),
		enemies:  lvl.SpawnEnemies(),
	}
	sess.enemyTimer = NewTimer(s.EnemyIntervalTicks, 0)
	sess.timeLimit = s.TimeLimit(lvl.TimeLimit)
	sess.secondsLeft = sess.timeLimit
	if sess.timeLimit > 0 {
		sess.countdown = NewTimer(s.CountdownTicks, 0)
	}

	sess.applyFlip(sess.grid.FlipAt(lvl.Start))
	return sess
}

// Move asks the player to step one cell. It returns false when the move is
// not legal right now. Stepping onto an enemy loses the attempt.
func (s *Session) Move(d grid.Dir) bool {
	if s.state != Active {
		return false
	}
	if !s.player.TryMove(d, s.grid, s.now) {
		return false
	}
	s.checkCollision()
	return true
}

// Flip flips the cell under the player and returns how many cells changed.
// It is ignored while the player is still moving.
func (s *Session) Flip() grid.FlipResult {
	if s.state != Active || s.player.Moving(s.now) {
		return grid.FlipResult{Anchor: s.player.Pos}
	}
	res := s.grid.FlipAt(s.player.Pos)
	s.applyFlip(res)
	return res
}

// Cancel abandons the attempt. It reports whether the session was active.
func (s *Session) Cancel() bool {
	if s.state != Active {
		return false
	}
	s.end(Abandoned)
	return true
}

// Tick advances the simulation by one tick: enemies move when their timer
// fires, then the countdown advances.
func (s *Session) Tick() {
	if s.state != Active {
		return
	}
	s.now++

	if s.enemyTimer.Due(s.now) {
		for _, e := range s.enemies {
			e.Step(s.grid, s.player.Pos, s.rng)
		}
		s.checkCollision()
		if s.state != Active {
			return
		}
	}

	if s.countdown.Due(s.now) {
		s.secondsLeft--
		s.bus.Publish(events.TimerTicked{SecondsLeft: s.secondsLeft})
		if s.secondsLeft <= 0 {
			s.lose(events.ReasonTimeUp)
		}
	}
}

func (s *Session) applyFlip(res grid.FlipResult) {
	n := res.Count()
	if n == 0 {
		return
	}
	s.award(s.settings.Scoring.TileFlip * n)
	s.bus.Publish(events.TileFlipped{
		Count:     n,
		Remaining: s.grid.Remaining(),
		Total:     s.grid.TotalFlippable(),
	})
	if res.IsChain() {
		s.award(s.settings.Scoring.ChainBonus * n)
		s.bus.Publish(events.ChainFlipped{Count: n, Flips: res.Flipped})
	}
	if s.grid.IsComplete() {
		s.win()
	}
}

func (s *Session) award(points int) {
	if points == 0 {
		return
	}
	s.score += points
	s.bus.Publish(events.ScoreChanged{Score: s.score, Delta: points})
}

func (s *Session) checkCollision() {
	if entity.Caught(s.enemies, s.player.Pos) {
		s.lose(events.ReasonCaught)
	}
}

func (s *Session) win() {
	s.end(Won)
	s.clearBonus = s.settings.Scoring.LevelClear
	if s.timeLimit > 0 && s.secondsLeft > 0 {
		s.timeBonus = s.secondsLeft * s.settings.Scoring.TimeBonus
	}
	s.award(s.clearBonus + s.timeBonus)
	s.bus.Publish(events.LevelWon{Score: s.score, ClearBonus: s.clearBonus, TimeBonus: s.timeBonus})
}

func (s *Session) lose(reason events.LossReason) {
	s.end(Lost)
	s.reason = reason
	s.bus.Publish(events.LevelLost{Reason: reason})
}

func (s *Session) end(state State) {
	s.state = state
	s.enemyTimer.Stop()
	s.countdown.Stop()
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Done reports whether the attempt reached a terminal state.
func (s *Session) Done() bool { return s.state != Active }

// LossReason is set once the session is Lost.
func (s *Session) LossReason() events.LossReason { return s.reason }

// Score is the points earned in this attempt, bonuses included.
func (s *Session) Score() int { return s.score }

// Bonuses returns the clear and time bonus awarded on a win.
func (s *Session) Bonuses() (clear, time int) { return s.clearBonus, s.timeBonus }

// SecondsLeft is the countdown value. It is 0 for unlimited levels.
func (s *Session) SecondsLeft() int { return s.secondsLeft }

// TimeLimit is the effective limit in seconds, 0 when unlimited.
func (s *Session) TimeLimit() int { return s.timeLimit }

// Now is the current simulation tick.
func (s *Session) Now() int64 { return s.now }

// Level returns the level being played.
func (s *Session) Level() *levels.Level { return s.level }

// Grid exposes the board for rendering. Callers must not mutate it.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Player returns the player's position.
func (s *Session) Player() grid.Coord { return s.player.Pos }

// PlayerMoving reports whether the player is mid-move.
func (s *Session) PlayerMoving() bool { return s.player.Moving(s.now) }

// Enemies returns the enemies for rendering. Callers must not mutate them.
func (s *Session) Enemies() []*entity.Enemy { return s.enemies }

// TimersRunning reports whether the enemy timer or countdown can still fire.
func (s *Session) TimersRunning() bool {
	return s.enemyTimer.Running() || s.countdown.Running()
}
