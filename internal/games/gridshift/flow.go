package gridshift

import (
	"github.com/vovakirdan/gridshift/internal/core"
	"github.com/vovakirdan/gridshift/internal/events"
	"github.com/vovakirdan/gridshift/internal/grid"
	"github.com/vovakirdan/gridshift/internal/levels"
	"github.com/vovakirdan/gridshift/internal/registry"
	"github.com/vovakirdan/gridshift/internal/run"
	"github.com/vovakirdan/gridshift/internal/session"
)

func (g *Game) toTitle() {
	g.screen = ScreenTitle
	g.run = nil
	g.campaign = nil
	g.sess = nil
	g.event = nil
	g.selectable = nil
	g.cursor = 0
	g.fx.reset()
	g.highScore = g.high.GetHighScore()
}

func (g *Game) stepTitle(in core.InputFrame) {
	switch {
	case confirmed(in):
		g.start()
	case in.Has(core.ActionBack):
		g.wantMenu = true
	}
}

// start begins a run or campaign. Without level data the game stays on
// the title screen.
func (g *Game) start() {
	if len(g.env.Levels) == 0 {
		g.notice = "No levels available"
		g.logger.Warn("cannot start", "game", g.ID(), "err", levels.ErrNoLevels)
		return
	}
	g.notice = ""
	g.lastRun = nil

	if g.mode == ModeCampaign {
		g.campaign = run.NewCampaign(len(g.env.Levels), g.high)
		g.logger.Info("campaign started", "id", g.campaign.ID, "levels", g.campaign.Total)
		g.startPuzzle(g.campaign.Index(), g.campaign.Index(), run.Puzzle)
		return
	}

	g.run = run.New(g.cfg, g.rng, run.Options{
		Bus:        g.bus,
		HighScores: g.high,
		Logger:     g.logger,
	})
	g.screen = ScreenMap
}

func (g *Game) stepMap(in core.InputFrame) {
	n := len(g.selectable)
	if n == 0 {
		return
	}
	switch {
	case in.Has(core.ActionLeft), in.Has(core.ActionUp):
		g.cursor = (g.cursor + n - 1) % n
	case in.Has(core.ActionRight), in.Has(core.ActionDown):
		g.cursor = (g.cursor + 1) % n
	case confirmed(in):
		g.enterNode(g.selectable[g.cursor])
	}
}

func (g *Game) enterNode(id int) {
	n, err := g.run.Select(id)
	if err != nil {
		g.logger.Warn("node not entered", "node", id, "err", err)
		return
	}
	if n.Kind.IsPuzzle() {
		idx := levels.PickIndex(n.Kind.Tier(), len(g.env.Levels), g.cfg.Levels, g.rng)
		g.startPuzzle(idx, g.run.Depth(), n.Kind)
		return
	}
	g.event = n
	g.screen = ScreenEvent
}

func (g *Game) startPuzzle(levelIndex, depth int, kind run.NodeKind) {
	g.attempt = attempt{LevelIndex: levelIndex, Kind: kind, Depth: depth}
	g.fx.reset()
	g.screen = ScreenPuzzle
	settings := session.NewSettings(g.cfg, g.rc, depth)
	g.sess = session.New(&g.env.Levels[levelIndex], settings, g.rng, g.bus)
	if g.sess.Done() {
		g.finishPuzzle()
	}
}

func (g *Game) stepPuzzle(in core.InputFrame) {
	s := g.sess
	if in.Has(core.ActionBack) {
		s.Cancel()
	} else {
		if d, ok := direction(in); ok {
			s.Move(d)
		}
		if in.Has(core.ActionFlip) {
			res := s.Flip()
			g.fx.flipped(res, g.tick, g.rc.TicksFor(g.cfg.Timing.ChainDelayMS), g.rc.TicksFor(flashMS))
		}
		if !s.Done() {
			before := positions(s)
			s.Tick()
			g.fx.landed(before, positions(s), g.tick, g.rc.TicksFor(g.cfg.Timing.EnemyMoveMS))
		}
	}

	if s.Done() {
		g.finishPuzzle()
	}
}

// finishPuzzle hands the session outcome to the run and picks the next
// screen.
func (g *Game) finishPuzzle() {
	s := g.sess
	state := s.State()
	clearBonus, timeBonus := s.Bonuses()
	g.result = outcome{
		State:      state,
		Reason:     s.LossReason(),
		Score:      s.Score(),
		ClearBonus: clearBonus,
		TimeBonus:  timeBonus,
		LevelName:  s.Level().Name,
	}

	var err error
	if g.mode == ModeCampaign {
		err = g.campaign.ApplyOutcome(state, s.Score())
	} else {
		err = g.run.ApplyOutcome(state, s.Score())
	}
	if err != nil {
		g.logger.Error("puzzle outcome not applied", "err", err)
	}

	switch state {
	case session.Won:
		g.screen = ScreenLevelComplete
	case session.Lost:
		g.gameOver()
	case session.Abandoned:
		g.sess = nil
		if g.mode == ModeCampaign {
			g.startPuzzle(g.attempt.LevelIndex, g.attempt.Depth, g.attempt.Kind)
			return
		}
		g.screen = ScreenMap
	}
}

func (g *Game) continueAfterWin() {
	g.sess = nil
	switch {
	case g.over():
		g.gameOver()
	case g.mode == ModeCampaign:
		idx := g.campaign.Index()
		g.startPuzzle(idx, idx, run.Puzzle)
	default:
		g.screen = ScreenMap
	}
}

func (g *Game) over() bool {
	if g.mode == ModeCampaign {
		return g.campaign.Over()
	}
	return g.run.Over()
}

func (g *Game) gameOver() {
	g.screen = ScreenGameOver
	g.lastRun = g.summary()
	g.logger.Info("game over", "game", g.ID(), "outcome", g.lastRun.Outcome, "score", g.lastRun.Score)
}

// summary describes the run that just ended.
func (g *Game) summary() *registry.RunSummary {
	s := &registry.RunSummary{Mode: g.ID(), Seed: g.rc.Seed}
	if g.mode == ModeCampaign {
		c := g.campaign
		s.RunID = c.ID
		s.Score = c.Score()
		s.Outcome = c.Status().String()
		s.Depth = c.Index()
		if c.Status() == run.Won {
			s.Depth = c.Total
		}
		s.Duration = c.Ended.Sub(c.Started)
		return s
	}
	r := g.run
	s.RunID = r.ID
	s.Score = r.Score()
	s.Outcome = r.Status().String()
	s.Depth = r.Depth()
	s.Duration = r.Ended.Sub(r.Started)
	return s
}

// NewHighScore reports whether the run that just ended set a new best.
func (g *Game) NewHighScore() bool {
	switch {
	case g.run != nil:
		return g.run.NewHighScore()
	case g.campaign != nil:
		return g.campaign.NewHighScore()
	}
	return false
}

// onEvent feeds the presentation layer. It never changes game state.
func (g *Game) onEvent(e events.Event) {
	switch ev := e.(type) {
	case events.NodeSelectableChanged:
		g.selectable = ev.Selectable
		g.cursor = 0
	case events.ChainFlipped:
		g.fx.chain(ev.Count, g.tick, g.rc.TicksFor(cueMS))
	case events.ScoreChanged:
		g.fx.scored(ev.Delta, g.tick, g.rc.TicksFor(cueMS))
	case events.TimerTicked:
		g.fx.lowTime = ev.SecondsLeft <= lowTimeSeconds
	}
}

func direction(in core.InputFrame) (grid.Dir, bool) {
	switch {
	case in.Has(core.ActionUp):
		return grid.DirUp, true
	case in.Has(core.ActionDown):
		return grid.DirDown, true
	case in.Has(core.ActionLeft):
		return grid.DirLeft, true
	case in.Has(core.ActionRight):
		return grid.DirRight, true
	}
	return 0, false
}

func positions(s *session.Session) []grid.Coord {
	enemies := s.Enemies()
	out := make([]grid.Coord, len(enemies))
	for i, e := range enemies {
		out[i] = e.Pos
	}
	return out
}
