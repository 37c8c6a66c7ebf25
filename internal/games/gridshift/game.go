// Package gridshift implements the tile-flip puzzle as a registry game.
// It wires the run map, puzzle sessions and the screens between them; the
// rules themselves live in the grid, entity, session and run packages.
package gridshift

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridshift/internal/config"
	"github.com/vovakirdan/gridshift/internal/core"
	"github.com/vovakirdan/gridshift/internal/events"
	"github.com/vovakirdan/gridshift/internal/registry"
	"github.com/vovakirdan/gridshift/internal/run"
	"github.com/vovakirdan/gridshift/internal/session"
)

// Mode selects how levels are reached.
type Mode string

const (
	ModeRun      Mode = "run"      // roguelike map
	ModeCampaign Mode = "campaign" // every level in order
)

// Game IDs as registered.
const (
	RunID      = "gridshift"
	CampaignID = "gridshift_campaign"
)

// Screen is what the game is currently showing.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenMap
	ScreenPuzzle
	ScreenEvent
	ScreenLevelComplete
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenMap:
		return "map"
	case ScreenPuzzle:
		return "puzzle"
	case ScreenEvent:
		return "event"
	case ScreenLevelComplete:
		return "level_complete"
	case ScreenGameOver:
		return "game_over"
	}
	return "unknown"
}

// Game implements registry.Game for both modes.
type Game struct {
	mode   Mode
	env    registry.Env
	cfg    config.Config
	logger *log.Logger

	rc   core.RuntimeConfig
	rng  *rand.Rand
	bus  *events.Bus
	tick uint64

	high      run.HighScores
	memHigh   *run.MemoryHighScores // used when the env has no store
	highScore int                   // best score when the title was last shown

	screen   Screen
	paused   bool
	wantMenu bool
	notice   string // title screen message

	run        *run.Run
	campaign   *run.Campaign
	selectable []int
	cursor     int
	event      *run.Node // chest or campfire being shown

	sess    *session.Session
	attempt attempt
	result  outcome
	fx      effects

	lastRun *registry.RunSummary
}

// attempt describes the puzzle being played.
type attempt struct {
	LevelIndex int
	Kind       run.NodeKind
	Depth      int
}

// outcome is the result of the last finished puzzle.
type outcome struct {
	State      session.State
	Reason     events.LossReason
	Score      int
	ClearBonus int
	TimeBonus  int
	LevelName  string
}

// New creates a roguelike-run game.
func New(env registry.Env) *Game {
	return newGame(ModeRun, env)
}

// NewCampaign creates a game that plays the levels in order.
func NewCampaign(env registry.Env) *Game {
	return newGame(ModeCampaign, env)
}

func newGame(mode Mode, env registry.Env) *Game {
	g := &Game{
		mode:   mode,
		env:    env,
		cfg:    env.Config,
		logger: env.Logger,
	}
	if g.cfg.Grid.Cols == 0 {
		g.cfg = config.DefaultConfig()
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	return g
}

func init() {
	registry.Register(RunID, func(env registry.Env) registry.Game {
		return New(env)
	})
	registry.Register(CampaignID, func(env registry.Env) registry.Game {
		return NewCampaign(env)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeCampaign {
		return CampaignID
	}
	return RunID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeCampaign {
		return "Gridshift (Campaign)"
	}
	return "Gridshift"
}

// Reset returns to the title screen with a fresh RNG.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	g.rc = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0

	listeners := append([]events.Listener{g.onEvent}, g.env.Listeners...)
	g.bus = events.NewBus(listeners...)
	g.high = g.highScores()

	g.paused = false
	g.wantMenu = false
	g.notice = ""
	g.lastRun = nil
	g.toTitle()
}

func (g *Game) highScores() run.HighScores {
	if g.env.HighScores != nil {
		if hs := g.env.HighScores(g.ID()); hs != nil {
			return hs
		}
	}
	if g.memHigh == nil {
		g.memHigh = &run.MemoryHighScores{}
	}
	return g.memHigh
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionPause) && g.screen == ScreenPuzzle {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch g.screen {
	case ScreenTitle:
		g.stepTitle(in)
	case ScreenMap:
		g.stepMap(in)
	case ScreenPuzzle:
		g.stepPuzzle(in)
	case ScreenEvent:
		if confirmed(in) {
			g.screen = ScreenMap
		}
	case ScreenLevelComplete:
		if confirmed(in) {
			g.continueAfterWin()
		}
	case ScreenGameOver:
		if confirmed(in) {
			g.toTitle()
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.screen == ScreenGameOver,
		Paused:   g.paused,
		Menu:     g.wantMenu,
	}
}

// Score is the run score plus whatever the current puzzle has earned.
func (g *Game) Score() int {
	score := 0
	switch {
	case g.run != nil:
		score = g.run.Score()
	case g.campaign != nil:
		score = g.campaign.Score()
	}
	if g.sess != nil && !g.sess.Done() {
		score += g.sess.Score()
	}
	return score
}

// Screen returns the screen being shown.
func (g *Game) Screen() Screen { return g.screen }

// Run returns the roguelike run, or nil.
func (g *Game) Run() *run.Run { return g.run }

// Session returns the puzzle being played, or nil.
func (g *Game) Session() *session.Session { return g.sess }

// LastRun describes the run that ended most recently.
func (g *Game) LastRun() (registry.RunSummary, bool) {
	if g.lastRun == nil {
		return registry.RunSummary{}, false
	}
	return *g.lastRun, true
}

func confirmed(in core.InputFrame) bool {
	return in.Has(core.ActionConfirm) || in.Has(core.ActionFlip)
}
