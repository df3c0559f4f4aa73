// Package scan extracts and resolves relative import specifiers.
package scan

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"go.trai.ch/shipit/internal/core/domain"
	"go.trai.ch/shipit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ImportScanner = (*Scanner)(nil)

// The patterns are deliberately tolerant text matchers, not a parser. They
// locate specifier spans in the three supported source forms; a stricter
// syntax-aware extractor can replace this adapter behind the same interface.
var (
	// Static import/re-export statements: import x from "./a.js",
	// import "./a.js", export { x } from "./a.js".
	staticRe = regexp.MustCompile(`(?m)^[ \t]*(?:import|export)\b[^'"\n]*['"]([^'"\n]+)['"]`)
	// Dynamic or conditional import calls: import("./a.js").
	dynamicRe = regexp.MustCompile(`\bimport\(\s*['"]([^'"\n]+)['"]\s*\)`)
	// Project pseudo-import marker: importAsset("./logo.svg").
	pseudoRe = regexp.MustCompile(`\bimportAsset\(\s*['"]([^'"\n]+)['"]\s*\)`)
)

// Scanner implements ports.ImportScanner with a per-run cache.
type Scanner struct {
	mu    sync.Mutex
	cache map[string][]domain.Edge
}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{
		cache: make(map[string][]domain.Edge),
	}
}

// Scan returns the ordered relative import edges of the file at identity.
// Duplicate literals are preserved so each occurrence can be rewritten later.
func (s *Scanner) Scan(root, identity string) ([]domain.Edge, error) {
	key := root + "\x00" + identity

	s.mu.Lock()
	if edges, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return edges, nil
	}
	s.mu.Unlock()

	path := filepath.Join(root, filepath.FromSlash(identity))
	content, err := os.ReadFile(path) //nolint:gosec // path is rooted in the worktree
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read source file"), "path", identity)
	}

	var edges []domain.Edge
	for _, spec := range extractSpecifiers(string(content)) {
		if !isRelative(spec) {
			continue
		}
		resolved, err := s.Resolve(root, identity, spec)
		if err != nil {
			return nil, err
		}
		edges = append(edges, domain.Edge{Specifier: spec, Path: resolved})
	}

	s.mu.Lock()
	s.cache[key] = edges
	s.mu.Unlock()

	return edges, nil
}

// Resolve canonicalizes a relative specifier against the referencing file's
// directory: symlinks resolved, ".." collapsed, result relative to root.
func (s *Scanner) Resolve(root, fromIdentity, specifier string) (string, error) {
	abs := filepath.Join(root, filepath.Dir(filepath.FromSlash(fromIdentity)), specifier)

	canon, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", zerr.With(zerr.With(
			zerr.Wrap(err, domain.ErrImportNotFound.Error()),
			"specifier", specifier),
			"from", fromIdentity,
		)
	}

	canonRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to canonicalize root"), "root", root)
	}

	rel, err := filepath.Rel(canonRoot, canon)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(zerr.With(domain.ErrImportOutsideRoot, "specifier", specifier), "from", fromIdentity)
	}

	return filepath.ToSlash(rel), nil
}

type span struct {
	offset int
	text   string
}

// extractSpecifiers finds all specifier literals in source order. A literal
// matched by more than one pattern (a dynamic import at the start of a line
// also matches the static form) is reported once.
func extractSpecifiers(content string) []string {
	seen := make(map[int]bool)
	var spans []span

	for _, re := range []*regexp.Regexp{staticRe, dynamicRe, pseudoRe} {
		for _, m := range re.FindAllStringSubmatchIndex(content, -1) {
			start := m[2]
			if seen[start] {
				continue
			}
			seen[start] = true
			spans = append(spans, span{offset: start, text: content[m[2]:m[3]]})
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].offset < spans[j].offset })

	specs := make([]string, len(spans))
	for i, sp := range spans {
		specs[i] = sp.text
	}
	return specs
}

func isRelative(specifier string) bool {
	return strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../")
}
