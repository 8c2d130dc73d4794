package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-census/apiscan/internal/rules"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newRepo(t *testing.T, root, name string) string {
	t.Helper()
	repo := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))
	return repo
}

func testWalker(t *testing.T, options Options) *Walker {
	t.Helper()
	return New(hclog.NewNullLogger(), rules.NewRegistry(), options)
}

func TestWalkFlatLayout(t *testing.T) {
	root := t.TempDir()
	repo := newRepo(t, root, "acme_server")
	writeFile(t, filepath.Join(repo, "app.py"), "import os\n\ndef run():\n    os.system(\"ls\")\n")

	results, err := testWalker(t, Options{Threads: 2}).Walk(root)
	require.NoError(t, err)
	require.Len(t, results, 1)

	result := results["acme_server"]
	require.NotNil(t, result)
	assert.Equal(t, "python", result.Language)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "os.system", result.Findings[0].APIName)
	assert.Equal(t, "app.py", result.Findings[0].FilePath)
	assert.Equal(t, 1, result.ThreatCounts["COMMAND_EXECUTION"])
	assert.Equal(t, 1, result.ResourceCounts["SYSTEM_RESOURCE"])
}

func TestWalkNestedLayout(t *testing.T) {
	root := t.TempDir()
	repo := filepath.Join(root, "python", "acme_server")
	require.NoError(t, os.MkdirAll(repo, 0o755))
	writeFile(t, filepath.Join(repo, "app.py"), "eval(x)\n")

	results, err := testWalker(t, Options{}).Walk(root)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, results, "acme_server")
}

func TestWalkNestedLayoutSameFolderName(t *testing.T) {
	root := t.TempDir()
	first := filepath.Join(root, "node", "acme_server")
	second := filepath.Join(root, "python", "acme_server")
	require.NoError(t, os.MkdirAll(first, 0o755))
	require.NoError(t, os.MkdirAll(second, 0o755))
	writeFile(t, filepath.Join(first, "index.js"), "eval(x)\n")
	writeFile(t, filepath.Join(second, "app.py"), "eval(x)\n")

	results, err := testWalker(t, Options{Threads: 2}).Walk(root)
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Contains(t, results, "acme_server")
	require.Contains(t, results, "python/acme_server")
	assert.Equal(t, "typescript", results["acme_server"].Language)
	assert.Equal(t, "python", results["python/acme_server"].Language)
	assert.Equal(t, "python/acme_server", results["python/acme_server"].Name)
}

func TestWalkSkipsExcludedDirs(t *testing.T) {
	root := t.TempDir()
	repo := newRepo(t, root, "acme_server")
	writeFile(t, filepath.Join(repo, "node_modules", "dep", "index.js"), "eval(x)\n")
	writeFile(t, filepath.Join(repo, "vendor", "lib.py"), "eval(x)\n")
	writeFile(t, filepath.Join(repo, "src", "main.js"), "eval(x)\n")

	results, err := testWalker(t, Options{}).Walk(root)
	require.NoError(t, err)

	result := results["acme_server"]
	require.NotNil(t, result)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, filepath.Join("src", "main.js"), result.Findings[0].FilePath)
}

func TestWalkLanguageFilter(t *testing.T) {
	root := t.TempDir()
	repo := newRepo(t, root, "acme_server")
	writeFile(t, filepath.Join(repo, "app.py"), "eval(x)\n")
	writeFile(t, filepath.Join(repo, "index.js"), "eval(x)\n")

	results, err := testWalker(t, Options{Language: rules.LanguageTypeScript}).Walk(root)
	require.NoError(t, err)

	result := results["acme_server"]
	require.NotNil(t, result)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, "index.js", result.Findings[0].FilePath)
}

func TestWalkMaxRepos(t *testing.T) {
	root := t.TempDir()
	newRepo(t, root, "repo_a")
	newRepo(t, root, "repo_b")
	newRepo(t, root, "repo_c")

	results, err := testWalker(t, Options{MaxRepos: 2}).Walk(root)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestWalkMissingRoot(t *testing.T) {
	_, err := testWalker(t, Options{}).Walk(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWalkUsesCache(t *testing.T) {
	root := t.TempDir()
	repo := newRepo(t, root, "acme_server")
	writeFile(t, filepath.Join(repo, "app.py"), "eval(x)\n")

	w := testWalker(t, Options{UseCache: true})

	results, err := w.Walk(root)
	require.NoError(t, err)
	require.Len(t, results["acme_server"].Findings, 1)

	cachePath := filepath.Join(repo, ".git", CacheFileName)
	_, err = os.Stat(cachePath)
	require.NoError(t, err)

	// A second walk must reuse the cache even though the source changed.
	writeFile(t, filepath.Join(repo, "extra.py"), "eval(y)\n")
	results, err = w.Walk(root)
	require.NoError(t, err)
	assert.Len(t, results["acme_server"].Findings, 1)
}

func TestWalkNoCacheRescans(t *testing.T) {
	root := t.TempDir()
	repo := newRepo(t, root, "acme_server")
	writeFile(t, filepath.Join(repo, "app.py"), "eval(x)\n")

	cached := testWalker(t, Options{UseCache: true})
	_, err := cached.Walk(root)
	require.NoError(t, err)

	writeFile(t, filepath.Join(repo, "extra.py"), "eval(y)\n")

	uncached := testWalker(t, Options{UseCache: false})
	results, err := uncached.Walk(root)
	require.NoError(t, err)
	assert.Len(t, results["acme_server"].Findings, 2)
}

func TestDominantLanguageFallsBackToFileVote(t *testing.T) {
	result := NewRepositoryResult("repo")
	result.AddFile("python", nil)
	result.AddFile("python", nil)
	result.AddFile("typescript", nil)
	result.Finalize()

	assert.Equal(t, "python", result.Language)
}

func TestLoadRunResultRejectsInvalidFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"run_id": "x"}`), 0o644))

	_, err := LoadRunResult(path)
	assert.Error(t, err)
}
