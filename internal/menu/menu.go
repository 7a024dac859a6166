package menu

import "github.com/dshills/focustrack/internal/focus"

// Node is any entry in the menu tree.
type Node interface {
	Label() string
}

// Item is a leaf entry. It participates in focus tracking.
type Item struct {
	*focus.Node
	label string
}

// NewItem creates a leaf item. The label doubles as the focus ID.
func NewItem(label string) *Item {
	return &Item{Node: focus.NewNode(label), label: label}
}

// Label returns the item's display label.
func (it *Item) Label() string {
	return it.label
}

// Menu is a labelled group of child nodes. A lazy menu defers building
// its children; its child list stays empty until materialized.
type Menu struct {
	label    string
	lazy     bool
	children []Node
}

// NewMenu creates a menu with the given children.
func NewMenu(label string, children ...Node) *Menu {
	return &Menu{label: label, children: children}
}

// NewLazyMenu creates a menu whose children are not yet materialized.
func NewLazyMenu(label string) *Menu {
	return &Menu{label: label, lazy: true}
}

// Label returns the menu's display label.
func (m *Menu) Label() string {
	return m.label
}

// Lazy reports whether the menu's children are still unmaterialized.
func (m *Menu) Lazy() bool {
	return m.lazy
}

// Add appends child nodes. Adding to a lazy menu materializes it.
func (m *Menu) Add(children ...Node) {
	m.children = append(m.children, children...)
	m.lazy = false
}

// Children returns the menu's child nodes.
func (m *Menu) Children() []Node {
	return m.children
}

// Bar is the root of the menu tree.
type Bar struct {
	menus []*Menu
}

// NewBar creates a menu bar with the given top-level menus.
func NewBar(menus ...*Menu) *Bar {
	return &Bar{menus: menus}
}

// Add appends top-level menus.
func (b *Bar) Add(menus ...*Menu) {
	b.menus = append(b.menus, menus...)
}

// Menus returns the top-level menus.
func (b *Bar) Menus() []*Menu {
	return b.menus
}

// Items returns every leaf item in the tree in depth-first order,
// skipping lazy subtrees. Useful for bulk focus registration.
func (b *Bar) Items() []*Item {
	var items []*Item
	for _, m := range b.menus {
		items = appendItems(items, m)
	}
	return items
}

func appendItems(items []*Item, m *Menu) []*Item {
	if m.lazy {
		return items
	}
	for _, child := range m.children {
		switch c := child.(type) {
		case *Item:
			items = append(items, c)
		case *Menu:
			items = appendItems(items, c)
		}
	}
	return items
}
