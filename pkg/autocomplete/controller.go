// Package autocomplete drives the protein search box: debounced requests,
// stale-response rejection, and the keyboard contract over the suggestion
// list.
package autocomplete

import (
	"strings"
	"sync"
	"time"

	kdb "github.com/kinoplex/kinoplex/pkg/db"
)

// DefaultQuietPeriod is how long input must be idle before a request fires.
const DefaultQuietPeriod = 300 * time.Millisecond

// DefaultMinLength is the shortest input worth a request.
const DefaultMinLength = 2

// Timer is a cancelable pending callback.
type Timer interface {
	// Stop cancels the callback; false when it already fired.
	Stop() bool
}

// Schedule arranges f to run after d. The default wraps time.AfterFunc;
// tests inject a manual one.
type Schedule func(d time.Duration, f func()) Timer

func afterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Requester issues an autocomplete request for query. The generation must
// be passed back to Deliver with the response, so late responses of
// superseded queries can be dropped.
type Requester func(generation uint64, query string)

// Selection is the outcome of an Enter keypress.
type Selection struct {
	// the chosen suggestion, when Direct is false.
	Protein kdb.Protein

	// raw input text for direct navigation, when no suggestion applied.
	Query string

	// no valid suggestion was under the cursor; navigate by Query.
	Direct bool
}

type Controller struct {
	mu sync.Mutex

	quiet    time.Duration
	minLen   int
	schedule Schedule
	request  Requester

	pending Timer

	// generation of the newest scheduled request. Deliveries with any
	// other generation are stale and dropped.
	latest uint64

	input   string
	results []kdb.Protein
	cursor  int
	open    bool
}

type Option func(*Controller) *Controller

func WithQuietPeriod(d time.Duration) Option {
	return func(c *Controller) *Controller {
		c.quiet = d
		return c
	}
}

func WithMinLength(n int) Option {
	return func(c *Controller) *Controller {
		c.minLen = n
		return c
	}
}

func WithSchedule(s Schedule) Option {
	return func(c *Controller) *Controller {
		c.schedule = s
		return c
	}
}

func New(request Requester, options ...Option) *Controller {
	c := &Controller{
		quiet:    DefaultQuietPeriod,
		minLen:   DefaultMinLength,
		schedule: afterFunc,
		request:  request,
		cursor:   -1,
	}
	for _, opt := range options {
		c = opt(c)
	}
	return c
}

// Input records a keystroke. Any pending request is canceled; when the
// trimmed text is long enough, a new one is scheduled after the quiet
// period. The timer cancellation stops only the *scheduling*: a request
// already sent stays in flight and is dealt with by its generation.
func (c *Controller) Input(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.input = text

	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}

	trimmed := strings.TrimSpace(text)
	if len(trimmed) < c.minLen {
		c.results = nil
		c.open = false
		c.cursor = -1
		return
	}

	c.latest += 1
	generation := c.latest
	c.pending = c.schedule(c.quiet, func() {
		c.request(generation, trimmed)
	})
}

// Deliver hands a response back to the controller. Responses of any
// generation but the newest are dropped: a slow early response must not
// overwrite a fast later one.
func (c *Controller) Deliver(generation uint64, results []kdb.Protein) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.latest {
		return
	}
	c.results = results
	c.open = true
	c.cursor = -1
}

// Suggestions returns the current list and whether it is shown.
func (c *Controller) Suggestions() ([]kdb.Protein, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results, c.open
}

// Cursor returns the selection index; -1 = nothing selected.
func (c *Controller) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

// MoveDown advances the cursor, clamping at the last entry.
func (c *Controller) MoveDown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open || len(c.results) == 0 {
		return
	}
	if c.cursor < len(c.results)-1 {
		c.cursor += 1
	}
}

// MoveUp retreats the cursor, clamping at the first entry. No wraparound.
func (c *Controller) MoveUp() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open || len(c.results) == 0 {
		return
	}
	if 0 < c.cursor {
		c.cursor -= 1
	}
}

// Enter picks the suggestion under the cursor. Without a valid one it
// falls back to direct navigation with the raw input.
func (c *Controller) Enter() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open && 0 <= c.cursor && c.cursor < len(c.results) {
		picked := c.results[c.cursor]
		c.open = false
		return Selection{Protein: picked}
	}
	return Selection{Query: strings.TrimSpace(c.input), Direct: true}
}

// Escape closes the suggestion list. The input text is kept.
func (c *Controller) Escape() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.open = false
	c.cursor = -1
}
