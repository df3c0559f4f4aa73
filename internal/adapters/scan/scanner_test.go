package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shipit/internal/adapters/scan"
	"go.trai.ch/shipit/internal/core/domain"
)

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestScanner_SourceForms(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "a.js", "")
	writeFile(t, root, "b.js", "")
	writeFile(t, root, "logo.svg", "")
	writeFile(t, root, "index.js", `import a from "./a.js";
import "./b.js";
export { x } from "./a.js";
if (cond) { import("./b.js").then(go); }
const logo = importAsset("./logo.svg");
import fmt from "lodash";
`)

	s := scan.NewScanner()
	edges, err := s.Scan(root, "index.js")
	require.NoError(t, err)

	specs := make([]string, len(edges))
	for i, e := range edges {
		specs[i] = e.Specifier
	}

	// Bare specifiers are ignored; duplicates are preserved in source order.
	assert.Equal(t, []string{"./a.js", "./b.js", "./a.js", "./b.js", "./logo.svg"}, specs)
	assert.Equal(t, "a.js", edges[0].Path)
	assert.Equal(t, "logo.svg", edges[4].Path)
}

func TestScanner_DynamicImportAtLineStart(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "a.js", "")
	writeFile(t, root, "index.js", "import(\"./a.js\");\n")

	s := scan.NewScanner()
	edges, err := s.Scan(root, "index.js")
	require.NoError(t, err)
	// One occurrence, even though two patterns match the same span.
	require.Len(t, edges, 1)
	assert.Equal(t, "./a.js", edges[0].Specifier)
}

func TestScanner_Resolve(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "lib/util.js", "")
	writeFile(t, root, "app/index.js", "")

	s := scan.NewScanner()

	t.Run("collapses dotdot", func(t *testing.T) {
		t.Parallel()
		got, err := s.Resolve(root, "app/index.js", "../lib/util.js")
		require.NoError(t, err)
		assert.Equal(t, "lib/util.js", got)
	})

	t.Run("missing target", func(t *testing.T) {
		t.Parallel()
		_, err := s.Resolve(root, "app/index.js", "./nope.js")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrImportNotFound.Error())
	})

	t.Run("escapes root", func(t *testing.T) {
		t.Parallel()
		outside := filepath.Join(root, "..", "outside.js")
		require.NoError(t, os.WriteFile(outside, nil, 0o600))
		t.Cleanup(func() { _ = os.Remove(outside) })

		_, err := s.Resolve(root, "app/index.js", "../../outside.js")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrImportOutsideRoot.Error())
	})
}

func TestScanner_ResolveSymlink(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "real/util.js", "")
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "alias")))
	writeFile(t, root, "index.js", "")

	s := scan.NewScanner()
	got, err := s.Resolve(root, "index.js", "./alias/util.js")
	require.NoError(t, err)
	// Two specifiers naming the same file share one identity.
	assert.Equal(t, "real/util.js", got)
}

func TestScanner_CachesPerFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "a.js", "")
	writeFile(t, root, "index.js", `import "./a.js";`)

	s := scan.NewScanner()
	first, err := s.Scan(root, "index.js")
	require.NoError(t, err)

	// A rewrite of the source mid-run must not change the scanned result.
	writeFile(t, root, "index.js", "")
	second, err := s.Scan(root, "index.js")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
