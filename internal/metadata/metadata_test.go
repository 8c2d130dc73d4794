package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func catalogStore() *Store {
	records := []Record{
		{
			GitHubURL:  "https://github.com/Acme/server-files.git",
			Name:       "acme_server-files",
			Categories: []string{"File Systems"},
			Stars:      intPtr(1200),
		},
		{
			GitHubURL: "https://github.com/other/tool",
		},
	}
	records[1].Metadata.Categories = []string{"Developer Tools"}
	return NewStore(records)
}

func TestResolveByFolderKey(t *testing.T) {
	store := catalogStore()

	resolved := store.Resolve("acme_server-files", "")
	assert.True(t, resolved.Matched)
	assert.Equal(t, "acme/server-files", resolved.RepoName)
	assert.Equal(t, []string{"File Systems"}, resolved.Categories)
	assert.Equal(t, 1200, resolved.Stars)
}

func TestResolveStripsCloneSuffix(t *testing.T) {
	store := catalogStore()

	resolved := store.Resolve("acme_server-files_2", "")
	assert.True(t, resolved.Matched)
	assert.Equal(t, "acme/server-files", resolved.RepoName)
}

func TestResolveMetadataCategories(t *testing.T) {
	store := catalogStore()

	resolved := store.Resolve("other_tool", "")
	assert.True(t, resolved.Matched)
	assert.Equal(t, []string{"Developer Tools"}, resolved.Categories)
	assert.Equal(t, -1, resolved.Stars)
}

func TestResolveRepoNameWithNumericTail(t *testing.T) {
	store := NewStore([]Record{
		{GitHubURL: "https://github.com/acme/tool_3", Categories: []string{"Developer Tools"}},
	})

	// The repository is really named "tool_3"; stripping the clone suffix
	// from the folder name misses it, the owner/repo split does not.
	resolved := store.Resolve("acme_tool_3", "")
	assert.True(t, resolved.Matched)
	assert.Equal(t, "acme/tool_3", resolved.RepoName)
}

func TestResolveNoMatch(t *testing.T) {
	store := catalogStore()

	resolved := store.Resolve("unrelated_repo_3", "")
	assert.False(t, resolved.Matched)
	assert.Equal(t, "unrelated_repo", resolved.RepoName)
	assert.Equal(t, []string{"Unknown"}, resolved.Categories)
	assert.Equal(t, -1, resolved.Stars)
}

func TestAllCategoriesDefaultsToUnknown(t *testing.T) {
	record := Record{GitHubURL: "https://github.com/a/b"}
	assert.Equal(t, []string{"Unknown"}, record.AllCategories())
}

func TestLoadAndSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "servers.json")
	payload := `[
  {"github_url": "https://github.com/acme/server-files", "name": "acme", "categories": ["File Systems"], "stars": 42},
  {"github_url": "https://github.com/other/tool", "metadata": {"categories": ["Developer Tools"]}}
]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	store, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())
	require.NotNil(t, store.Records()[0].Stars)
	assert.Equal(t, 42, *store.Records()[0].Stars)
	assert.Nil(t, store.Records()[1].Stars)

	out := filepath.Join(dir, "servers-out.json")
	require.NoError(t, store.Save(out))

	reloaded, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, store.Len(), reloaded.Len())
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
