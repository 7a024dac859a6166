// Package host abstracts the input event source the trackers observe.
//
// A Source delivers typed input events (key down/up, pointer
// enter/leave/move) to registered observers. Observers are pre-dispatch:
// they run, in registration order, before any consumer-installed handler
// can consume or stop the event. That ordering is part of the Source
// contract: trackers depend on seeing every input event even when a
// downstream widget swallows it.
//
// Sim is a scripted in-memory source for tests and tooling. The termhost
// subpackage provides a tcell-backed source for real terminals.
package host
