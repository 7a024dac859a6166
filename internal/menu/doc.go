// Package menu models a dropdown menu bar as a tree of menus and leaf
// items. Items are focus elements and can be registered with a focus
// tracker. Dump renders the tree as deterministic indented text for
// tests and tooling.
package menu
