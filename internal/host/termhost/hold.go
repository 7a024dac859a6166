package termhost

import (
	"sync"
	"time"

	"github.com/dshills/focustrack/internal/host"
)

// DefaultHoldWindow is how long a key counts as held after its last
// press or repeat.
const DefaultHoldWindow = 500 * time.Millisecond

// timerFunc schedules fn after d and returns a cancel func.
// Production uses time.AfterFunc; tests inject a manual trigger.
type timerFunc func(d time.Duration, fn func()) (cancel func())

func afterFuncTimer(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// holdTracker synthesizes key-up events for sources that only observe
// presses. A press (or repeat) of any key restarts the window; when it
// expires, a key-up for the most recent key is emitted.
type holdTracker struct {
	mu     sync.Mutex
	window time.Duration
	timer  timerFunc
	emit   func(host.Event)

	cancel   func()
	held     bool
	lastKey  host.Key
	lastMod  host.Modifier
}

func newHoldTracker(window time.Duration, timer timerFunc, emit func(host.Event)) *holdTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	if timer == nil {
		timer = afterFuncTimer
	}
	return &holdTracker{window: window, timer: timer, emit: emit}
}

// keyDown records a press or repeat, restarting the hold window.
func (h *holdTracker) keyDown(k host.Key, mod host.Modifier) {
	h.mu.Lock()
	if h.cancel != nil {
		h.cancel()
	}
	h.held = true
	h.lastKey = k
	h.lastMod = mod
	h.cancel = h.timer(h.window, h.expire)
	h.mu.Unlock()
}

// expire fires when the hold window lapses with no further press.
func (h *holdTracker) expire() {
	h.mu.Lock()
	if !h.held {
		h.mu.Unlock()
		return
	}
	h.held = false
	h.cancel = nil
	k, mod := h.lastKey, h.lastMod
	h.mu.Unlock()

	h.emit(host.ReleaseEvent(k, mod))
}

// stop cancels any pending synthesis without emitting.
func (h *holdTracker) stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	h.held = false
}
