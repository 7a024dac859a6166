// Package termhost provides a tcell-backed host.Source for real
// terminals.
//
// Terminals report complete keystrokes, never key releases, so release
// is inferred: each key-down opens a hold window that key repeats
// extend, and expiry synthesizes a key-up. Pointer enter/leave events
// are synthesized when the pointer crosses registered screen regions;
// all other motion is reported as pointer-move.
package termhost
