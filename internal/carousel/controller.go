package carousel

import (
	"sync"
	"time"

	"github.com/goliatone/go-showcase/internal/display"
	"github.com/goliatone/go-showcase/internal/i18n"
	"github.com/goliatone/go-showcase/internal/logging"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

// DefaultInterval is the auto-advance period when none is configured.
const DefaultInterval = 5000 * time.Millisecond

// Key is a keyboard navigation key.
type Key int

const (
	KeyArrowLeft Key = iota + 1
	KeyArrowRight
)

// State is a snapshot of the controller.
type State struct {
	Index   int
	Count   int
	Paused  bool
	Running bool
	// PauseOnHover reports whether pointer hover pauses auto-advance.
	PauseOnHover bool
	Interval     time.Duration
	Direction    i18n.Direction
}

// Empty reports whether there is nothing to show.
func (s State) Empty() bool { return s.Count == 0 }

// Navigable reports whether arrows, dots and auto-advance apply.
func (s State) Navigable() bool { return s.Count > 1 }

type Option func(*Controller)

func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

func WithDirection(dir i18n.Direction) Option {
	return func(c *Controller) {
		c.direction = dir
	}
}

// WithPauseOnHover toggles whether pointer hover pauses auto-advance.
func WithPauseOnHover(enabled bool) Option {
	return func(c *Controller) {
		c.pauseOnHover = enabled
	}
}

func WithClock(clock Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

func WithLogger(logger interfaces.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// OnChange registers an observer called after every state change.
func OnChange(fn func(State)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// Controller owns the current index of one carousel and its auto-advance
// timer. Timer callbacks fire on their own goroutine so all state is
// guarded by mu; a callback whose generation no longer matches is dropped.
type Controller struct {
	mu           sync.Mutex
	slides       []display.DisplaySlide
	index        int
	paused       bool
	running      bool
	closed       bool
	interval     time.Duration
	direction    i18n.Direction
	pauseOnHover bool

	clock      Clock
	timer      Timer
	generation uint64

	onChange func(State)
	logger   interfaces.Logger
}

// NewController creates a stopped controller positioned on the first slide.
func NewController(slides []display.DisplaySlide, opts ...Option) *Controller {
	c := &Controller{
		slides:       cloneSlides(slides),
		interval:     DefaultInterval,
		direction:    i18n.LTR,
		pauseOnHover: true,
		clock:        RealClock(),
		logger:       logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start arms auto-advance. It is a no-op on a closed controller.
func (c *Controller) Start() {
	c.mutate(func() bool {
		if c.closed || c.running {
			return false
		}
		c.running = true
		c.rearm()
		return true
	})
}

// Stop cancels the pending tick. Navigation keeps working.
func (c *Controller) Stop() {
	c.mutate(func() bool {
		if !c.running {
			return false
		}
		c.running = false
		c.disarm()
		return true
	})
}

// Close stops the controller for good. Later calls are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	c.closed = true
	c.disarm()
}

func (c *Controller) Next() {
	c.mutate(func() bool { return c.step(1) })
}

func (c *Controller) Previous() {
	c.mutate(func() bool { return c.step(-1) })
}

// GoTo jumps to slide i. Out of range targets are ignored and report false.
func (c *Controller) GoTo(i int) bool {
	moved := false
	c.mutate(func() bool {
		if c.closed || len(c.slides) <= 1 || i < 0 || i >= len(c.slides) {
			return false
		}
		moved = true
		if c.index == i {
			return false
		}
		c.index = i
		return true
	})
	return moved
}

// Key maps arrow keys onto reading order. In a right-to-left layout the
// visually left arrow moves forward.
func (c *Controller) Key(k Key) bool {
	c.mu.Lock()
	rtl := c.direction == i18n.RTL
	c.mu.Unlock()

	switch k {
	case KeyArrowLeft:
		if rtl {
			c.Next()
		} else {
			c.Previous()
		}
	case KeyArrowRight:
		if rtl {
			c.Previous()
		} else {
			c.Next()
		}
	default:
		return false
	}
	return true
}

// PointerEnter pauses auto-advance while the pointer is over the carousel.
func (c *Controller) PointerEnter() {
	c.setPaused(true)
}

// PointerLeave resumes auto-advance with a fresh interval.
func (c *Controller) PointerLeave() {
	c.setPaused(false)
}

// SetSlides replaces the slide list. The index is kept when still valid.
func (c *Controller) SetSlides(slides []display.DisplaySlide) {
	c.mutate(func() bool {
		if c.closed {
			return false
		}
		c.slides = cloneSlides(slides)
		if c.index >= len(c.slides) {
			c.index = 0
		}
		c.rearm()
		return true
	})
}

func (c *Controller) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mutate(func() bool {
		if c.closed || c.interval == d {
			return false
		}
		c.interval = d
		c.rearm()
		return true
	})
}

func (c *Controller) SetDirection(dir i18n.Direction) {
	c.mutate(func() bool {
		if c.direction == dir {
			return false
		}
		c.direction = dir
		return true
	})
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Current returns the slide at the current index.
func (c *Controller) Current() (display.DisplaySlide, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.slides) == 0 {
		return display.DisplaySlide{}, false
	}
	return c.slides[c.index], true
}

func (c *Controller) Slides() []display.DisplaySlide {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneSlides(c.slides)
}

func (c *Controller) setPaused(paused bool) {
	c.mutate(func() bool {
		if c.closed || !c.pauseOnHover || c.paused == paused {
			return false
		}
		c.paused = paused
		c.rearm()
		return true
	})
}

// step moves by delta with wrap-around. Caller holds mu.
func (c *Controller) step(delta int) bool {
	n := len(c.slides)
	if c.closed || n <= 1 {
		return false
	}
	c.index = ((c.index+delta)%n + n) % n
	return true
}

// rearm cancels any pending tick and schedules a new one when auto-advance
// applies. Caller holds mu.
func (c *Controller) rearm() {
	c.disarm()
	if !c.running || c.paused || len(c.slides) <= 1 {
		return
	}
	gen := c.generation
	c.timer = c.clock.AfterFunc(c.interval, func() { c.tick(gen) })
}

// disarm invalidates outstanding callbacks. Caller holds mu.
func (c *Controller) disarm() {
	c.generation++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) tick(gen uint64) {
	c.mutate(func() bool {
		if gen != c.generation {
			return false
		}
		c.timer = nil
		if !c.step(1) {
			return false
		}
		c.logger.Debug("carousel.advance", "index", c.index, "count", len(c.slides))
		gen := c.generation
		c.timer = c.clock.AfterFunc(c.interval, func() { c.tick(gen) })
		return true
	})
}

// mutate applies fn under the lock and notifies the observer outside it
// when fn reports a change.
func (c *Controller) mutate(fn func() bool) {
	c.mu.Lock()
	changed := fn()
	state := c.snapshot()
	observer := c.onChange
	c.mu.Unlock()

	if changed && observer != nil {
		observer(state)
	}
}

func (c *Controller) snapshot() State {
	return State{
		Index:        c.index,
		Count:        len(c.slides),
		Paused:       c.paused,
		Running:      c.running,
		PauseOnHover: c.pauseOnHover,
		Interval:     c.interval,
		Direction:    c.direction,
	}
}

func cloneSlides(slides []display.DisplaySlide) []display.DisplaySlide {
	if slides == nil {
		return nil
	}
	out := make([]display.DisplaySlide, len(slides))
	copy(out, slides)
	return out
}
