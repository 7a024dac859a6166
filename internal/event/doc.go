// Package event provides the notification substrate for focustrack.
//
// Components communicate through a Bus carrying typed events on
// hierarchical dot-separated topics ("focus.changed",
// "interaction.key.changed"). Subscription patterns may use wildcards:
// "*" matches exactly one segment, "**" matches zero or more.
//
// Delivery is synchronous and priority-ordered: Publish invokes every
// matching active handler in the caller's goroutine before returning.
// The tracking subsystem is single-threaded and event-driven, so there
// is no async queue; handlers are expected to be short.
//
// Property wraps a single observable value. Setting a Property to the
// value it already holds publishes nothing, which is the contract every
// tracker in this module relies on.
package event
