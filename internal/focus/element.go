package focus

// Element is any focusable UI element.
type Element interface {
	// ID returns a stable identifier for the element.
	ID() string

	// SetFocused updates the element's focused state. Called only by
	// the Tracker.
	SetFocused(focused bool)

	// IsFocused reports whether the element currently has focus.
	IsFocused() bool
}

// Node is a minimal Element implementation for widgets that have no
// focus behavior of their own.
type Node struct {
	id      string
	focused bool
}

// NewNode creates a focusable node with the given ID.
func NewNode(id string) *Node {
	return &Node{id: id}
}

// ID implements Element.
func (n *Node) ID() string {
	return n.id
}

// SetFocused implements Element.
func (n *Node) SetFocused(focused bool) {
	n.focused = focused
}

// IsFocused implements Element.
func (n *Node) IsFocused() bool {
	return n.focused
}
