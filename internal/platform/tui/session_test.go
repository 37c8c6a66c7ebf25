package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridshift/internal/config"
	"github.com/vovakirdan/gridshift/internal/core"
	_ "github.com/vovakirdan/gridshift/internal/games/gridshift"
	"github.com/vovakirdan/gridshift/internal/levels"
	"github.com/vovakirdan/gridshift/internal/registry"
	"github.com/vovakirdan/gridshift/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	store.SetLogger(log.New(io.Discard))
	t.Cleanup(func() { store.Close() })
	return store
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func sessionEnv(t *testing.T, store *storage.Store) registry.Env {
	t.Helper()
	lvls, err := levels.Builtin(8, 7).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	return WithStore(registry.Env{
		Config: config.DefaultConfig(),
		Levels: lvls,
		Logger: log.New(io.Discard),
	}, store)
}

func update(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(store, sessionEnv(t, store), testRuntime())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("Enter on the menu should start a game")
	}

	// Back on the game's title screen returns to the menu.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = update(t, m, TickMsg(time.Now()))
	if m.gameModel != nil {
		t.Fatal("expected to be back on the menu")
	}
	if m.quitting {
		t.Error("returning to the menu must not end the session")
	}
	if m.View() == "" {
		t.Error("menu view is empty")
	}
}

func TestSessionScoreboard(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("gridshift", 420); err != nil {
		t.Fatal(err)
	}
	m := NewSessionModel(store, sessionEnv(t, store), testRuntime())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("Tab should open the scoreboard")
	}
	if len(m.scoreboard.scores) != 1 {
		t.Errorf("scoreboard loaded %d scores, expected 1", len(m.scoreboard.scores))
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if !m.scoreboard.ShowingHistory() {
		t.Error("r should switch to the run history")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Error("Esc should return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, sessionEnv(t, nil), testRuntime())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(SessionModel).quitting {
		t.Error("q should end the session")
	}
	if cmd == nil {
		t.Error("expected a quit command")
	}
}

// finishedGame ends on its first step and reports a run.
type finishedGame struct {
	state core.GameState
}

func (g *finishedGame) ID() string               { return "finished" }
func (g *finishedGame) Title() string            { return "Finished" }
func (g *finishedGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *finishedGame) Render(*core.Screen)      {}
func (g *finishedGame) State() core.GameState    { return g.state }

func (g *finishedGame) Step(core.InputFrame) core.StepResult {
	g.state = core.GameState{Score: 150, GameOver: true}
	return core.StepResult{State: g.state}
}

func (g *finishedGame) LastRun() (registry.RunSummary, bool) {
	return registry.RunSummary{
		RunID:    "run-1",
		Mode:     "finished",
		Seed:     7,
		Score:    150,
		Outcome:  "lost",
		Depth:    2,
		Duration: 90 * time.Second,
	}, true
}

func TestGameModelSavesResultsOnce(t *testing.T) {
	store := openStore(t)
	gm := NewGameModel(&finishedGame{}, store, testRuntime(), log.New(io.Discard))
	gm.Init()

	var model tea.Model = gm
	for i := 0; i < 3; i++ {
		model, _ = model.Update(TickMsg(time.Now()))
	}

	scores, err := store.TopScores("finished", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 150 {
		t.Errorf("scores = %+v, expected one entry of 150", scores)
	}

	runs, err := store.RecentRuns("finished", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, expected 1", len(runs))
	}
	if runs[0].Depth != 2 || runs[0].Duration != 90 || runs[0].Outcome != "lost" {
		t.Errorf("run = %+v", runs[0])
	}
}
