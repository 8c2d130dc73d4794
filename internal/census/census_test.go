package census

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestCensusRun(t *testing.T) {
	root := t.TempDir()

	pyRepo := newRepo(t, root, "acme_py")
	writeFile(t, filepath.Join(pyRepo, "requirements.txt"), "flask==2.0\nrequests\n")
	writeFile(t, filepath.Join(pyRepo, "app.py"), "print('hi')\n")

	jsRepo := newRepo(t, root, "beta_js")
	writeFile(t, filepath.Join(jsRepo, "package.json"), `{"dependencies": {"express": "^4.0.0"}}`)
	writeFile(t, filepath.Join(jsRepo, "index.js"), "module.exports = {}\n")

	result, err := Run(hclog.NewNullLogger(), root)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalRepositories)
	assert.Equal(t, 1, result.LanguageDistribution["python"])
	assert.Equal(t, 1, result.LanguageDistribution["typescript"])
	assert.Equal(t, 1, result.LibraryUsage["flask"])
	assert.Equal(t, 1, result.LibraryUsage["express"])
	assert.Equal(t, 1, result.PerLanguage["python"]["requests"])
}

func TestCensusManifestInSubdirectory(t *testing.T) {
	root := t.TempDir()
	repo := newRepo(t, root, "acme_nested")
	writeFile(t, filepath.Join(repo, "app.py"), "print('hi')\n")
	writeFile(t, filepath.Join(repo, "backend", "requirements.txt"), "django\n")

	result, err := Run(hclog.NewNullLogger(), root)
	require.NoError(t, err)
	assert.Equal(t, 1, result.LibraryUsage["django"])
}

func TestCensusExport(t *testing.T) {
	census := &Census{
		TotalRepositories:    4,
		LanguageDistribution: map[string]int{"python": 2},
		LibraryUsage:         map[string]int{"flask": 2, "rarelib": 1},
		PerLanguage:          map[string]map[string]int{"python": {"flask": 2, "rarelib": 1}},
	}

	outputDir := filepath.Join(t.TempDir(), "analysis")
	require.NoError(t, census.Export(outputDir, 2))

	file, err := os.Open(filepath.Join(outputDir, "library_statistics.csv"))
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"name", "count", "percentage"}, rows[0])
	assert.Equal(t, []string{"flask", "2", "50.00"}, rows[1])

	_, err = os.Stat(filepath.Join(outputDir, "library_statistics_python.csv"))
	assert.NoError(t, err)
}
