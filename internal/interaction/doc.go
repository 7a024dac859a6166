// Package interaction tracks raw user interaction signals.
//
// A Tracker observes the host input source and maintains two observable
// booleans: whether a key is currently held down, and whether the
// pointer has moved since the last key press. Both publish change
// events on the bus with no-op suppression.
//
// The tracker is a shared resource: many consumers, one set of host
// observers. A Registry owns the shared tracker and hands out
// reference-counted access via Acquire/Release. There is no implicit
// package-level instance; embedders own the Registry's lifetime.
package interaction
