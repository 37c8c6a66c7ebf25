// Package run holds the roguelike layer around puzzle attempts: the
// generated map, which nodes may be picked next, and the score that
// carries over from one attempt to the next.
package run

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/gridshift/internal/config"
	"github.com/vovakirdan/gridshift/internal/events"
	"github.com/vovakirdan/gridshift/internal/session"
)

var (
	// ErrRunOver is returned when acting on a run that already ended.
	ErrRunOver = errors.New("run: run is over")
	// ErrNodeNotSelectable is returned for a node outside the selectable set.
	ErrNodeNotSelectable = errors.New("run: node is not selectable")
	// ErrNoPendingNode is returned when an outcome arrives with no puzzle in progress.
	ErrNoPendingNode = errors.New("run: no puzzle in progress")
)

// Status is the state of the whole run.
type Status int

const (
	Active Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// HighScores persists the best final score across runs.
type HighScores interface {
	// GetHighScore returns the stored best, or 0 when none is stored.
	GetHighScore() int
	// SaveHighScore stores score if it beats the stored best and reports
	// whether it did.
	SaveHighScore(score int) bool
}

// Options configures a new run. Zero values are valid.
type Options struct {
	Bus        *events.Bus
	HighScores HighScores
	Logger     *log.Logger
	Now        func() time.Time
}

// Run is one roguelike run from the first map row to the boss.
type Run struct {
	ID      string
	Graph   *Graph
	Started time.Time
	Ended   time.Time

	scoring   config.ScoringConfig
	score     int
	current   int // last resolved node, -1 before the first pick
	pending   int // puzzle node being played, -1 when none
	completed mapset.Set[int]
	status    Status
	newHigh   bool

	bus    *events.Bus
	high   HighScores
	logger *log.Logger
	now    func() time.Time
}

// New generates a map and starts a run on it.
func New(cfg config.Config, rng *rand.Rand, opts Options) *Run {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	r := &Run{
		ID:        uuid.NewString(),
		Graph:     Generate(cfg.Map, rng),
		scoring:   cfg.Scoring,
		current:   -1,
		pending:   -1,
		completed: mapset.New[int](),
		bus:       opts.Bus,
		high:      opts.HighScores,
		logger:    opts.Logger,
		now:       opts.Now,
	}
	r.Started = r.now()
	r.logger.Info("run started", "id", r.ID, "nodes", len(r.Graph.Nodes))
	r.publishSelectable()
	return r
}

// Score is the run's accumulated score.
func (r *Run) Score() int { return r.score }

// Status returns whether the run is active, won or lost.
func (r *Run) Status() Status { return r.status }

// Over reports whether the run has ended.
func (r *Run) Over() bool { return r.status != Active }

// NewHighScore reports whether the final score beat the stored best.
func (r *Run) NewHighScore() bool { return r.newHigh }

// Current returns the last resolved node, or nil before the first pick.
func (r *Run) Current() *Node { return r.Graph.Node(r.current) }

// Pending returns the puzzle node being played, or nil.
func (r *Run) Pending() *Node { return r.Graph.Node(r.pending) }

// Depth is the number of map rows cleared so far.
func (r *Run) Depth() int {
	if n := r.Current(); n != nil {
		return n.Row + 1
	}
	return 0
}

// IsCompleted reports whether a node has been resolved.
func (r *Run) IsCompleted(id int) bool { return r.completed.Has(id) }

// Selectable returns the ids that may be picked next, ascending. Before the
// first pick that is every row-0 node; afterwards the forward connections
// of the last resolved node.
func (r *Run) Selectable() []int {
	if r.Over() || r.pending >= 0 {
		return nil
	}
	if r.current < 0 {
		return append([]int(nil), r.Graph.Rows[0]...)
	}
	return r.Graph.Nodes[r.current].Targets()
}

// CanSelect reports whether id is in the selectable set.
func (r *Run) CanSelect(id int) bool {
	for _, s := range r.Selectable() {
		if s == id {
			return true
		}
	}
	return false
}

// Select enters a node. Chests and campfires resolve at once and award
// their points. Puzzle nodes become pending until ApplyOutcome is called.
func (r *Run) Select(id int) (*Node, error) {
	if r.Over() {
		return nil, ErrRunOver
	}
	if !r.CanSelect(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotSelectable, id)
	}

	n := r.Graph.Nodes[id]
	if n.Kind.IsPuzzle() {
		r.pending = id
		r.logger.Debug("entering puzzle", "run", r.ID, "node", id, "kind", n.Kind)
		r.publishSelectable()
		return n, nil
	}

	switch n.Kind {
	case Chest:
		r.addScore(r.scoring.Chest)
	case Campfire:
		r.addScore(r.scoring.Campfire)
	}
	r.resolve(n)
	return n, nil
}

// Reward returns the points an instant node awards.
func (r *Run) Reward(k NodeKind) int {
	switch k {
	case Chest:
		return r.scoring.Chest
	case Campfire:
		return r.scoring.Campfire
	}
	return 0
}

// ApplyOutcome records how the pending puzzle ended. A win adds the
// session score and completes the node; beating the boss wins the run.
// A loss keeps the points earned and ends the run. An abandoned attempt
// discards its points and leaves the same choices open.
func (r *Run) ApplyOutcome(state session.State, sessionScore int) error {
	if r.Over() {
		return ErrRunOver
	}
	n := r.Pending()
	if n == nil {
		return ErrNoPendingNode
	}

	switch state {
	case session.Won:
		r.pending = -1
		r.addScore(sessionScore)
		r.resolve(n)
		if n.Kind == Boss {
			r.end(Won)
		}
	case session.Lost:
		r.pending = -1
		r.addScore(sessionScore)
		r.end(Lost)
	case session.Abandoned:
		r.pending = -1
		r.logger.Debug("puzzle abandoned", "run", r.ID, "node", n.ID)
		r.publishSelectable()
	default:
		return fmt.Errorf("run: outcome %v is not terminal", state)
	}
	return nil
}

func (r *Run) addScore(points int) {
	if points <= 0 {
		return
	}
	r.score += points
	r.bus.Publish(events.RunScoreChanged{Score: r.score, Delta: points})
}

func (r *Run) resolve(n *Node) {
	n.Completed = true
	r.completed.Put(n.ID)
	r.current = n.ID
	r.logger.Info("node resolved", "run", r.ID, "node", n.ID, "kind", n.Kind, "score", r.score)
	r.publishSelectable()
}

func (r *Run) end(status Status) {
	r.status = status
	r.Ended = r.now()
	if r.high != nil {
		r.newHigh = r.high.SaveHighScore(r.score)
	}
	r.logger.Info("run ended", "id", r.ID, "status", status, "score", r.score, "depth", r.Depth())
	r.bus.Publish(events.NodeSelectableChanged{})
	r.bus.Publish(events.RunEnded{RunID: r.ID, Won: status == Won, Score: r.score})
}

func (r *Run) publishSelectable() {
	r.bus.Publish(events.NodeSelectableChanged{Selectable: r.Selectable()})
}

// MemoryHighScores keeps the best score in memory.
type MemoryHighScores struct {
	Best int
}

func (m *MemoryHighScores) GetHighScore() int { return m.Best }

func (m *MemoryHighScores) SaveHighScore(score int) bool {
	if score <= m.Best {
		return false
	}
	m.Best = score
	return true
}
