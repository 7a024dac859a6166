package termhost

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/focustrack/internal/host"
)

// Region is a named rectangular screen area used to synthesize pointer
// enter/leave events. Right and Bottom are exclusive.
type Region struct {
	ID     string
	Left   int
	Top    int
	Right  int
	Bottom int
}

// contains reports whether the cell (x, y) lies inside the region.
func (r Region) contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Source translates tcell input events into host events.
// It implements host.Source.
type Source struct {
	screen    tcell.Screen
	observers host.ObserverSet
	hold      *holdTracker

	mu       sync.Mutex
	regions  []Region
	lastX    int
	lastY    int
	inRegion string
	hasPos   bool

	stopOnce sync.Once
	stopped  chan struct{}
}

// Option configures a Source.
type Option func(*config)

type config struct {
	holdWindow time.Duration
	timer      timerFunc
}

// WithHoldWindow sets how long a key counts as held after its last
// press or repeat.
func WithHoldWindow(d time.Duration) Option {
	return func(c *config) {
		c.holdWindow = d
	}
}

// withTimer injects the hold timer, for tests.
func withTimer(t timerFunc) Option {
	return func(c *config) {
		c.timer = t
	}
}

// New creates a Source over an initialized tcell screen.
// The caller owns the screen; Run polls it until Stop is called.
func New(screen tcell.Screen, opts ...Option) *Source {
	cfg := config{holdWindow: DefaultHoldWindow}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Source{
		screen:  screen,
		stopped: make(chan struct{}),
	}
	s.hold = newHoldTracker(cfg.holdWindow, cfg.timer, s.observers.Notify)
	return s
}

// Observe implements host.Source.
func (s *Source) Observe(fn host.Observer) host.RemoveFunc {
	return s.observers.Add(fn)
}

// SetRegions replaces the pointer regions.
func (s *Source) SetRegions(regions []Region) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions = make([]Region, len(regions))
	copy(s.regions, regions)
}

// Run polls the screen for events until Stop is called.
// It must be called at most once.
func (s *Source) Run() {
	for {
		select {
		case <-s.stopped:
			return
		default:
		}

		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			s.handleKey(e)
		case *tcell.EventMouse:
			x, y := e.Position()
			s.HandleMotion(x, y)
		case *tcell.EventInterrupt:
			return
		}
	}
}

// Stop ends the event loop and cancels pending key-up synthesis.
func (s *Source) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopped)
		s.hold.stop()
		_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
}

// handleKey translates a tcell key event into a key-down and arms
// release synthesis.
func (s *Source) handleKey(e *tcell.EventKey) {
	k, r := convertKey(e.Key(), e.Rune())
	mod := convertMod(e.Modifiers())
	// Terminals report Shift-Tab as Backtab without the modifier bit.
	if e.Key() == tcell.KeyBacktab {
		mod |= host.ModShift
	}

	var ev host.Event
	if k == host.KeyRune {
		ev = host.RuneEvent(r, mod)
	} else {
		ev = host.PressEvent(k, mod)
	}
	s.observers.Notify(ev)
	s.hold.keyDown(k, mod)
}

// HandleMotion processes a pointer position, synthesizing region
// enter/leave transitions. Exported for the benefit of callers that
// already demultiplex tcell events themselves.
func (s *Source) HandleMotion(x, y int) {
	s.mu.Lock()
	moved := !s.hasPos || x != s.lastX || y != s.lastY
	s.lastX, s.lastY = x, y
	s.hasPos = true

	var next string
	for _, r := range s.regions {
		if r.contains(x, y) {
			next = r.ID
			break
		}
	}
	prev := s.inRegion
	s.inRegion = next
	s.mu.Unlock()

	if !moved {
		return
	}

	switch {
	case prev == next:
		s.observers.Notify(host.MoveEvent(x, y))
	case prev != "" && next == "":
		s.observers.Notify(host.LeaveEvent(x, y))
	case prev == "" && next != "":
		s.observers.Notify(host.EnterEvent(x, y))
	default:
		// Region-to-region crossing is a leave followed by an enter.
		s.observers.Notify(host.LeaveEvent(x, y))
		s.observers.Notify(host.EnterEvent(x, y))
	}
}

// RegionAt returns the ID of the region containing (x, y), or "".
func (s *Source) RegionAt(x, y int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.regions {
		if r.contains(x, y) {
			return r.ID
		}
	}
	return ""
}

// convertKey maps a tcell key to the host vocabulary.
func convertKey(k tcell.Key, r rune) (host.Key, rune) {
	switch k {
	case tcell.KeyRune:
		return host.KeyRune, r
	case tcell.KeyEscape:
		return host.KeyEscape, 0
	case tcell.KeyEnter:
		return host.KeyEnter, 0
	case tcell.KeyTab, tcell.KeyBacktab:
		return host.KeyTab, 0
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return host.KeyBackspace, 0
	case tcell.KeyDelete:
		return host.KeyDelete, 0
	case tcell.KeyHome:
		return host.KeyHome, 0
	case tcell.KeyEnd:
		return host.KeyEnd, 0
	case tcell.KeyPgUp:
		return host.KeyPageUp, 0
	case tcell.KeyPgDn:
		return host.KeyPageDown, 0
	case tcell.KeyUp:
		return host.KeyUp, 0
	case tcell.KeyDown:
		return host.KeyDown, 0
	case tcell.KeyLeft:
		return host.KeyLeft, 0
	case tcell.KeyRight:
		return host.KeyRight, 0
	default:
		return host.KeyNone, 0
	}
}

// convertMod maps a tcell modifier mask to the host vocabulary.
func convertMod(m tcell.ModMask) host.Modifier {
	var out host.Modifier
	if m&tcell.ModShift != 0 {
		out |= host.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= host.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= host.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= host.ModMeta
	}
	return out
}
