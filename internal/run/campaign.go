package run

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/gridshift/internal/session"
)

// Campaign plays every level once, in order. Clearing the last level wins;
// losing any level ends the campaign. An abandoned level is simply retried.
type Campaign struct {
	ID      string
	Total   int
	Started time.Time
	Ended   time.Time

	index   int
	score   int
	status  Status
	high    HighScores
	newHigh bool
}

// NewCampaign starts a campaign over total levels.
func NewCampaign(total int, high HighScores) *Campaign {
	return &Campaign{ID: uuid.NewString(), Total: total, Started: time.Now(), high: high}
}

// Index is the level to play next.
func (c *Campaign) Index() int { return c.index }

// IsLast reports whether the current level is the final one.
func (c *Campaign) IsLast() bool { return c.index >= c.Total-1 }

func (c *Campaign) Score() int         { return c.score }
func (c *Campaign) Status() Status     { return c.status }
func (c *Campaign) Over() bool         { return c.status != Active }
func (c *Campaign) NewHighScore() bool { return c.newHigh }

// ApplyOutcome records how the current level ended.
func (c *Campaign) ApplyOutcome(state session.State, sessionScore int) error {
	if c.Over() {
		return ErrRunOver
	}
	switch state {
	case session.Won:
		c.score += sessionScore
		if c.IsLast() {
			c.end(Won)
		} else {
			c.index++
		}
	case session.Lost:
		c.score += sessionScore
		c.end(Lost)
	case session.Abandoned:
	default:
		return fmt.Errorf("run: outcome %v is not terminal", state)
	}
	return nil
}

func (c *Campaign) end(status Status) {
	c.status = status
	c.Ended = time.Now()
	if c.high != nil {
		c.newHigh = c.high.SaveHighScore(c.score)
	}
}
