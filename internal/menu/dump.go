package menu

import "strings"

const indent = "  "

// Dump renders the menu tree as text, one node per line, indented two
// spaces per nesting level. Lazy menus render as `label (lazy)` with no
// children. The output is deterministic and suitable for test
// assertions.
func Dump(b *Bar) string {
	var sb strings.Builder
	for _, m := range b.menus {
		dumpMenu(&sb, m, 0)
	}
	return sb.String()
}

func dumpMenu(sb *strings.Builder, m *Menu, depth int) {
	sb.WriteString(strings.Repeat(indent, depth))
	sb.WriteString(m.label)
	if m.lazy {
		sb.WriteString(" (lazy)\n")
		return
	}
	sb.WriteByte('\n')
	for _, child := range m.children {
		switch c := child.(type) {
		case *Menu:
			dumpMenu(sb, c, depth+1)
		default:
			sb.WriteString(strings.Repeat(indent, depth+1))
			sb.WriteString(c.Label())
			sb.WriteByte('\n')
		}
	}
}
