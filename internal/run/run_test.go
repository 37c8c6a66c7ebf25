package run

import (
	"errors"
	"io"
	"math/rand"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/gridshift/internal/config"
	"github.com/vovakirdan/gridshift/internal/events"
	"github.com/vovakirdan/gridshift/internal/session"
)

func quietOptions(bus *events.Bus, high HighScores) Options {
	return Options{Bus: bus, HighScores: high, Logger: log.New(io.Discard)}
}

func TestGenerateShape(t *testing.T) {
	cfg := config.DefaultConfig().Map

	for seed := int64(0); seed < 200; seed++ {
		g := Generate(cfg, rand.New(rand.NewSource(seed)))

		if len(g.Rows) != cfg.Rows+1 {
			t.Fatalf("seed %d: %d rows, expected %d", seed, len(g.Rows), cfg.Rows+1)
		}
		for r, row := range g.Rows[:cfg.Rows] {
			if len(row) < cfg.MinNodes || len(row) > cfg.MaxNodes {
				t.Errorf("seed %d: row %d has %d nodes", seed, r, len(row))
			}
		}
		boss := g.Boss()
		if len(g.Rows[cfg.Rows]) != 1 || boss.Kind != Boss || boss.Row != cfg.Rows {
			t.Errorf("seed %d: bad boss row %v", seed, g.Rows[cfg.Rows])
		}

		for _, n := range g.Nodes {
			switch {
			case n.Row == 0 && n.Kind != Puzzle:
				t.Errorf("seed %d: row 0 node %d is %v", seed, n.ID, n.Kind)
			case n.Row == cfg.Rows-1 && n.Kind != Puzzle && n.Kind != Elite:
				t.Errorf("seed %d: pre-boss node %d is %v", seed, n.ID, n.Kind)
			case n.Row < cfg.Rows && n.Kind == Boss:
				t.Errorf("seed %d: boss kind outside boss row", seed)
			}

			if n.Kind != Boss && n.Connections.Size() == 0 {
				t.Errorf("seed %d: node %d has no outgoing edge", seed, n.ID)
			}
			if n.Row > 0 && len(g.Incoming(n.ID)) == 0 {
				t.Errorf("seed %d: node %d has no incoming edge", seed, n.ID)
			}
			for _, to := range n.Targets() {
				if g.Nodes[to].Row != n.Row+1 {
					t.Errorf("seed %d: edge %d->%d skips rows", seed, n.ID, to)
				}
			}
			if n.ColCount != len(g.Rows[n.Row]) {
				t.Errorf("seed %d: node %d ColCount %d", seed, n.ID, n.ColCount)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := config.DefaultConfig().Map
	shape := func(g *Graph) [][]int {
		var out [][]int
		for _, n := range g.Nodes {
			out = append(out, append([]int{n.ID, int(n.Kind)}, n.Targets()...))
		}
		return out
	}

	a := Generate(cfg, rand.New(rand.NewSource(5)))
	b := Generate(cfg, rand.New(rand.NewSource(5)))
	if !reflect.DeepEqual(shape(a), shape(b)) {
		t.Error("same seed produced different maps")
	}
}

func TestGenerateSingleRow(t *testing.T) {
	cfg := config.DefaultConfig().Map
	cfg.Rows = 1
	g := Generate(cfg, rand.New(rand.NewSource(1)))

	if len(g.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(g.Rows))
	}
	for _, id := range g.Rows[0] {
		if g.Nodes[id].Kind != Puzzle {
			t.Errorf("node %d is %v, expected puzzle", id, g.Nodes[id].Kind)
		}
		if !g.Nodes[id].Connections.Has(g.Boss().ID) {
			t.Errorf("node %d does not reach the boss", id)
		}
	}
}

// lineGraph builds: puzzles 0 and 1 -> chest 2 -> campfire 3 -> boss 4.
func lineGraph() *Graph {
	g := &Graph{Rows: [][]int{{0, 1}, {2}, {3}, {4}}}
	kinds := []NodeKind{Puzzle, Puzzle, Chest, Campfire, Boss}
	rows := []int{0, 0, 1, 2, 3}
	for i, k := range kinds {
		g.Nodes = append(g.Nodes, &Node{ID: i, Row: rows[i], Kind: k, Connections: mapset.New[int]()})
	}
	g.Nodes[0].Connections.Put(2)
	g.Nodes[1].Connections.Put(2)
	g.Nodes[2].Connections.Put(3)
	g.Nodes[3].Connections.Put(4)
	return g
}

func newTestRun(t *testing.T, rec *events.Recorder, high HighScores) *Run {
	t.Helper()
	var bus *events.Bus
	if rec != nil {
		bus = events.NewBus(rec.Listen)
	}
	r := New(config.DefaultConfig(), rand.New(rand.NewSource(1)), quietOptions(bus, high))
	r.Graph = lineGraph()
	return r
}

func TestSelectableProgression(t *testing.T) {
	r := newTestRun(t, nil, nil)

	if got := r.Selectable(); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Fatalf("initial Selectable() = %v, expected row 0", got)
	}
	if _, err := r.Select(2); !errors.Is(err, ErrNodeNotSelectable) {
		t.Errorf("Select(2) error = %v, expected ErrNodeNotSelectable", err)
	}

	n, err := r.Select(0)
	if err != nil || n.ID != 0 {
		t.Fatalf("Select(0) = %v, %v", n, err)
	}
	if r.Pending() != n {
		t.Error("puzzle node should be pending")
	}
	if len(r.Selectable()) != 0 {
		t.Error("nothing is selectable while a puzzle is pending")
	}

	if err := r.ApplyOutcome(session.Won, 620); err != nil {
		t.Fatalf("ApplyOutcome: %v", err)
	}
	if r.Score() != 620 || !r.IsCompleted(0) || r.Current().ID != 0 {
		t.Errorf("after win: score %d completed %v current %v", r.Score(), r.IsCompleted(0), r.Current())
	}
	if got := r.Selectable(); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("Selectable() = %v, expected [2]", got)
	}
	if r.Depth() != 1 {
		t.Errorf("Depth() = %d, expected 1", r.Depth())
	}
}

func TestInstantNodes(t *testing.T) {
	r := newTestRun(t, nil, nil)
	r.Select(0)
	r.ApplyOutcome(session.Won, 100)

	if _, err := r.Select(2); err != nil {
		t.Fatalf("Select(chest): %v", err)
	}
	if r.Score() != 400 {
		t.Errorf("Score() after chest = %d, expected 400", r.Score())
	}
	if r.Pending() != nil || !r.IsCompleted(2) {
		t.Error("chest should resolve immediately")
	}

	r.Select(3)
	if r.Score() != 500 {
		t.Errorf("Score() after campfire = %d, expected 500", r.Score())
	}
	if got := r.Selectable(); !reflect.DeepEqual(got, []int{4}) {
		t.Errorf("Selectable() = %v, expected boss", got)
	}
}

func TestBossWinEndsRun(t *testing.T) {
	var rec events.Recorder
	high := &MemoryHighScores{Best: 100}
	r := newTestRun(t, &rec, high)

	r.Select(0)
	r.ApplyOutcome(session.Won, 100)
	r.Select(2)
	r.Select(3)
	r.Select(4)
	if err := r.ApplyOutcome(session.Won, 1000); err != nil {
		t.Fatal(err)
	}

	if r.Status() != Won || !r.Over() {
		t.Fatalf("Status() = %v, expected won", r.Status())
	}
	if !r.NewHighScore() || high.Best != 1500 {
		t.Errorf("high score not saved: new=%v best=%d", r.NewHighScore(), high.Best)
	}
	if _, err := r.Select(0); !errors.Is(err, ErrRunOver) {
		t.Errorf("Select after end = %v, expected ErrRunOver", err)
	}
	ended, ok := rec.Events[len(rec.Events)-1].(events.RunEnded)
	if !ok || !ended.Won || ended.Score != 1500 || ended.RunID != r.ID {
		t.Errorf("last event = %#v", rec.Events[len(rec.Events)-1])
	}
}

func TestLossEndsRun(t *testing.T) {
	high := &MemoryHighScores{Best: 5000}
	r := newTestRun(t, nil, high)

	r.Select(1)
	if err := r.ApplyOutcome(session.Lost, 40); err != nil {
		t.Fatal(err)
	}
	if r.Status() != Lost || r.Score() != 40 {
		t.Errorf("Status() = %v score %d", r.Status(), r.Score())
	}
	if r.IsCompleted(1) {
		t.Error("lost node should not be completed")
	}
	if r.NewHighScore() || high.Best != 5000 {
		t.Error("lower score must not replace the high score")
	}
	if err := r.ApplyOutcome(session.Won, 10); !errors.Is(err, ErrRunOver) {
		t.Errorf("ApplyOutcome after end = %v", err)
	}
}

func TestAbandonKeepsChoices(t *testing.T) {
	var rec events.Recorder
	r := newTestRun(t, &rec, nil)

	r.Select(0)
	rec.Reset()
	if err := r.ApplyOutcome(session.Abandoned, 300); err != nil {
		t.Fatal(err)
	}

	if r.Score() != 0 || r.IsCompleted(0) || r.Current() != nil {
		t.Errorf("abandon changed progress: score %d", r.Score())
	}
	if got := r.Selectable(); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("Selectable() = %v, expected row 0 again", got)
	}
	ev, ok := rec.Events[0].(events.NodeSelectableChanged)
	if !ok || !reflect.DeepEqual(ev.Selectable, []int{0, 1}) {
		t.Errorf("event = %#v", rec.Events[0])
	}
}

func TestApplyOutcomeErrors(t *testing.T) {
	r := newTestRun(t, nil, nil)

	if err := r.ApplyOutcome(session.Won, 10); !errors.Is(err, ErrNoPendingNode) {
		t.Errorf("no pending: %v", err)
	}
	r.Select(0)
	if err := r.ApplyOutcome(session.Active, 10); err == nil {
		t.Error("expected error for non-terminal outcome")
	}
}

func TestRunOnGeneratedMap(t *testing.T) {
	cfg := config.DefaultConfig()
	r := New(cfg, rand.New(rand.NewSource(3)), quietOptions(nil, nil))
	rng := rand.New(rand.NewSource(4))

	for steps := 0; !r.Over(); steps++ {
		if steps > 100 {
			t.Fatal("run did not finish")
		}
		sel := r.Selectable()
		if len(sel) == 0 {
			t.Fatal("no selectable nodes on an active run")
		}
		n, err := r.Select(sel[rng.Intn(len(sel))])
		if err != nil {
			t.Fatal(err)
		}
		if n.Kind.IsPuzzle() {
			r.ApplyOutcome(session.Won, 500)
		}
	}

	if r.Status() != Won || !r.IsCompleted(r.Graph.Boss().ID) {
		t.Errorf("winning every puzzle should win the run, got %v", r.Status())
	}
	if r.Depth() != cfg.Map.Rows+1 {
		t.Errorf("Depth() = %d, expected %d", r.Depth(), cfg.Map.Rows+1)
	}
}

func TestCampaign(t *testing.T) {
	high := &MemoryHighScores{}
	c := NewCampaign(2, high)

	c.ApplyOutcome(session.Abandoned, 50)
	if c.Index() != 0 || c.Score() != 0 {
		t.Errorf("abandon should retry: index %d score %d", c.Index(), c.Score())
	}
	c.ApplyOutcome(session.Won, 600)
	if c.Index() != 1 || !c.IsLast() {
		t.Errorf("Index() = %d after first win", c.Index())
	}
	c.ApplyOutcome(session.Won, 700)
	if c.Status() != Won || c.Score() != 1300 {
		t.Errorf("Status() = %v score %d", c.Status(), c.Score())
	}
	if !c.NewHighScore() || high.Best != 1300 {
		t.Error("campaign high score not saved")
	}
	if err := c.ApplyOutcome(session.Won, 1); !errors.Is(err, ErrRunOver) {
		t.Errorf("ApplyOutcome after end = %v", err)
	}
}

func TestMemoryHighScores(t *testing.T) {
	var m MemoryHighScores
	if m.GetHighScore() != 0 {
		t.Error("empty store should report 0")
	}
	if !m.SaveHighScore(10) || m.SaveHighScore(10) || m.SaveHighScore(5) {
		t.Error("only strictly greater scores should be saved")
	}
	if m.GetHighScore() != 10 {
		t.Errorf("GetHighScore() = %d", m.GetHighScore())
	}
}

func TestRunScoreEventsCarryRunTotal(t *testing.T) {
	var rec events.Recorder
	r := newTestRun(t, &rec, nil)

	r.Select(0)
	rec.Reset()
	r.ApplyOutcome(session.Won, 100)
	r.Select(2)

	var banked []events.RunScoreChanged
	for _, e := range rec.Events {
		switch ev := e.(type) {
		case events.ScoreChanged:
			t.Errorf("run published a session score event: %#v", ev)
		case events.RunScoreChanged:
			banked = append(banked, ev)
		}
	}
	want := []events.RunScoreChanged{
		{Score: 100, Delta: 100},
		{Score: 400, Delta: 300},
	}
	if !reflect.DeepEqual(banked, want) {
		t.Errorf("run score events = %+v, expected %+v", banked, want)
	}
}
