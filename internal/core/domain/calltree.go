package domain

import "strings"

// CallTree is the ordered sequence of file identities on the active
// resolution path. It exists only for cycle detection within a single run.
type CallTree []string

// Contains reports whether the identity already appears on the path.
func (t CallTree) Contains(identity string) bool {
	for _, node := range t {
		if node == identity {
			return true
		}
	}
	return false
}

// Push returns a new CallTree with the identity appended. The receiver is
// copied so concurrent sibling resolutions never share a backing array.
func (t CallTree) Push(identity string) CallTree {
	next := make(CallTree, len(t), len(t)+1)
	copy(next, t)
	return append(next, identity)
}

// Cycle formats the offending path for an identity that closes a cycle,
// starting at its first occurrence, e.g. "a.js -> b.js -> a.js".
func (t CallTree) Cycle(identity string) string {
	start := 0
	for i, node := range t {
		if node == identity {
			start = i
			break
		}
	}
	var b strings.Builder
	for _, node := range t[start:] {
		b.WriteString(node)
		b.WriteString(" -> ")
	}
	b.WriteString(identity)
	return b.String()
}
