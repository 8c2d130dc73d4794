package walker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// CacheFileName is the per-repository result cache, stored inside the
// repository's .git directory so it never ends up in the scanned tree.
const CacheFileName = "api_scan_result.json"

type cacheEntry struct {
	RunID     string            `json:"run_id"`
	Timestamp string            `json:"timestamp"`
	Version   string            `json:"version"`
	Results   *RepositoryResult `json:"results"`
}

// loadCache returns the cached result for the repository, or false when no
// structurally valid cache exists. maxAgeDays of zero disables the staleness
// check.
func loadCache(repoPath string, maxAgeDays int) (*RepositoryResult, bool) {
	path := filepath.Join(repoPath, ".git", CacheFileName)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false
	}
	if entry.Timestamp == "" || entry.Results == nil {
		return nil, false
	}

	if maxAgeDays > 0 {
		written, err := time.Parse(timestampLayout, entry.Timestamp)
		if err != nil {
			return nil, false
		}
		if time.Since(written) > time.Duration(maxAgeDays)*24*time.Hour {
			return nil, false
		}
	}

	return entry.Results, true
}

// saveCache writes the repository result next to the repository's git
// metadata. Repositories without a .git directory are skipped.
func saveCache(repoPath string, result *RepositoryResult) error {
	gitDir := filepath.Join(repoPath, ".git")
	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("'%s' is not a git repository", repoPath)
	}

	entry := cacheEntry{
		RunID:     uuid.New().String(),
		Timestamp: time.Now().Format(timestampLayout),
		Version:   ResultVersion,
		Results:   result,
	}

	raw, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	path := filepath.Join(gitDir, CacheFileName)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file '%s': %w", path, err)
	}
	return nil
}
