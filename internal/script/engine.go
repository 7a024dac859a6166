package script

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/focustrack/internal/event"
	"github.com/dshills/focustrack/internal/focus"
	"github.com/dshills/focustrack/internal/interaction"
	"github.com/dshills/focustrack/internal/logging"
)

// ErrEngineClosed is returned when loading into a closed engine.
var ErrEngineClosed = errors.New("script engine is closed")

// Lua global names looked up after a chunk loads. Both are optional.
const (
	fnFocusChanged = "on_focus_changed"
	fnInteraction  = "on_interaction"
)

// Engine runs Lua hooks against the event streams.
//
// gopher-lua's LState is not goroutine-safe. The subsystem is
// single-threaded, so calls are synchronous under a mutex rather than
// marshalled through a worker goroutine.
type Engine struct {
	mu     sync.Mutex
	state  *lua.LState
	bus    event.Bus
	log    *logging.Logger
	subs   []event.Subscription
	closed bool

	// Last observed values, so each hook call sees the full picture.
	lastID       string
	lastKeyboard bool
	keyPressed   bool
	mouseMoved   bool
}

// New creates an engine with a fresh Lua state. Pass logging.Null to
// silence it.
func New(bus event.Bus, log *logging.Logger) *Engine {
	if log == nil {
		log = logging.Null
	}
	return &Engine{
		state: lua.NewState(),
		bus:   bus,
		log:   log.WithComponent("script"),
	}
}

// LoadFile loads and runs a Lua chunk from disk, then wires any hook
// functions the chunk defined.
func (e *Engine) LoadFile(path string) error {
	return e.load(func(L *lua.LState) error { return L.DoFile(path) })
}

// LoadString loads and runs an inline Lua chunk, then wires any hook
// functions the chunk defined.
func (e *Engine) LoadString(src string) error {
	return e.load(func(L *lua.LState) error { return L.DoString(src) })
}

func (e *Engine) load(run func(*lua.LState) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}
	if err := run(e.state); err != nil {
		return fmt.Errorf("load lua chunk: %w", err)
	}
	return e.subscribe()
}

// subscribe wires the event streams once per engine. Caller holds the
// lock.
func (e *Engine) subscribe() error {
	if len(e.subs) > 0 {
		return nil
	}

	focusSub, err := e.bus.SubscribeFunc("focus.**", e.onFocusEvent, event.WithPriority(event.PriorityLow))
	if err != nil {
		return err
	}
	interactionSub, err := e.bus.SubscribeFunc("interaction.**", e.onInteractionEvent, event.WithPriority(event.PriorityLow))
	if err != nil {
		_ = e.bus.Unsubscribe(focusSub)
		return err
	}

	e.subs = []event.Subscription{focusSub, interactionSub}
	e.log.Debug("hooks wired")
	return nil
}

func (e *Engine) onFocusEvent(ev any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	switch typed := ev.(type) {
	case event.Event[focus.Changed]:
		e.lastID = ""
		if typed.Payload.Element != nil {
			e.lastID = typed.Payload.Element.ID()
		}
	case event.Event[event.Change[bool]]:
		e.lastKeyboard = typed.Payload.New
	default:
		return
	}

	id := lua.LString(e.lastID)
	if e.lastID == "" {
		e.call(fnFocusChanged, lua.LNil, lua.LBool(e.lastKeyboard))
		return
	}
	e.call(fnFocusChanged, id, lua.LBool(e.lastKeyboard))
}

func (e *Engine) onInteractionEvent(ev any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	typed, ok := ev.(event.Event[event.Change[bool]])
	if !ok {
		return
	}
	switch typed.Type {
	case interaction.TopicKeyChanged:
		e.keyPressed = typed.Payload.New
	case interaction.TopicMouseChanged:
		e.mouseMoved = typed.Payload.New
	default:
		return
	}

	e.call(fnInteraction, lua.LBool(e.keyPressed), lua.LBool(e.mouseMoved))
}

// call invokes a Lua global if the chunk defined it. Errors and panics
// are logged, never propagated to the publisher.
func (e *Engine) call(name string, args ...lua.LValue) {
	fn := e.state.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			e.log.Error("lua hook %s panicked: %v", name, r)
		}
	}()

	if err := e.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, args...); err != nil {
		e.log.Error("lua hook %s: %v", name, err)
	}
}

// Close cancels the subscriptions and releases the Lua state.
// Idempotent.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	for _, sub := range e.subs {
		_ = e.bus.Unsubscribe(sub)
	}
	e.subs = nil
	e.state.Close()
	e.log.Debug("closed")
}
