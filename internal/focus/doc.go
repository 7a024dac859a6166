// Package focus tracks which UI element holds input focus and whether
// that focus came from keyboard navigation.
//
// Tracker maintains the focused element among a registered set and
// publishes focus.changed on every real transition. KeyboardTracker
// composes a Tracker with the shared interaction tracker to derive a
// single boolean: the current focus resulted from keyboard navigation
// rather than pointer interaction. Consumers use it to render focus
// indicators differently for the two cases.
package focus
