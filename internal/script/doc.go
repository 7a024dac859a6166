// Package script embeds a Lua hook engine. A loaded chunk may define
// on_focus_changed(id, keyboard) and on_interaction(key_pressed,
// mouse_moved); the engine subscribes to the focus and interaction
// event streams at low priority and invokes whichever handlers exist.
package script
