// Package flow drives a quote session through its steps: position tracking,
// per-step validation against the schema, default injection when a step
// becomes active, and the estimate action on the home coverage step.
package flow

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/pnanji/quoteflow/internal/quoteflow/schema"
	"github.com/pnanji/quoteflow/internal/quoteflow/store"
)

// ErrStepNotFound reports a step id outside the quote type's range.
var ErrStepNotFound = errors.New("step not found")

// Position is where the wizard stands: a 1-based step id, the terminal
// summary, or back out to the home screen.
type Position int

const (
	ExitHome Position = 0
	Summary  Position = -1
)

// Controller walks one quote type's steps over one form store.
type Controller struct {
	qt  schema.QuoteType
	st  *store.Store
	rng *rand.Rand
}

func New(qt schema.QuoteType, st *store.Store) *Controller {
	return &Controller{
		qt:  qt,
		st:  st,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed makes the estimate action deterministic.
func (c *Controller) Seed(seed int64) {
	c.rng = rand.New(rand.NewSource(seed))
}

func (c *Controller) QuoteType() schema.QuoteType { return c.qt }

func (c *Controller) Store() *store.Store { return c.st }

// Start always enters at step 1. A resumed session replays from the top
// with its persisted values already in place.
func (c *Controller) Start() Position {
	return 1
}

// Next validates the current step. On failure it stays put and returns the
// messages; on success it advances, landing on Summary past the last step.
func (c *Controller) Next(current Position) (Position, []string) {
	step, ok := c.qt.Step(int(current))
	if !ok {
		return current, []string{fmt.Sprintf("step %d: %v", current, ErrStepNotFound)}
	}
	if msgs := c.ValidateStep(step); len(msgs) > 0 {
		return current, msgs
	}
	if int(current) >= c.qt.StepCount() {
		return Summary, nil
	}
	return current + 1, nil
}

// Previous moves back one step without validating, exiting to the home
// screen from step 1 and returning to the last step from the summary.
func (c *Controller) Previous(current Position) Position {
	if current == Summary {
		return Position(c.qt.StepCount())
	}
	if current <= 1 {
		return ExitHome
	}
	return current - 1
}

// Step resolves the schema step at a position.
func (c *Controller) Step(current Position) (schema.Step, error) {
	step, ok := c.qt.Step(int(current))
	if !ok {
		return schema.Step{}, fmt.Errorf("step %d: %w", current, ErrStepNotFound)
	}
	return step, nil
}
