package domain

// Edge is a single import occurrence in a source file: the raw specifier text
// exactly as written, and the canonical identity it resolves to. Edges are
// recomputed on every run and never persisted.
type Edge struct {
	// Specifier is the literal specifier text, e.g. "./util/format.js".
	Specifier string
	// Path is the resolved file identity relative to the repository root.
	Path string
}
