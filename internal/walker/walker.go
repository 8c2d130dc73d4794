package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/mcp-census/apiscan/internal/rules"
	"github.com/mcp-census/apiscan/internal/scan"
	"github.com/mcp-census/apiscan/pkg/shared"
)

// excludedDirs are pruned from traversal at any depth. They hold vendored or
// generated code that would drown the scan in third-party findings.
var excludedDirs = map[string]struct{}{
	"node_modules": {}, "venv": {}, ".git": {}, "__pycache__": {},
	"dist": {}, "build": {}, "target": {}, "vendor": {}, "packages": {},
	"bin": {}, "obj": {}, "lib": {}, "libs": {}, "external": {},
	"third_party": {}, "third-party": {}, "ext": {}, "deps": {},
	"dependencies": {},
}

// Options tune a walk.
type Options struct {
	Threads     int
	MaxRepos    int
	Language    rules.Language
	UseCache    bool
	CacheMaxAge int
	ExcludeDirs []string
}

// Walker discovers repositories under a root directory and scans each one
// for dangerous API usage.
type Walker struct {
	logger   hclog.Logger
	registry *rules.Registry
	options  Options
	excluded map[string]struct{}
}

// New builds a walker around a prepared rule registry.
func New(logger hclog.Logger, registry *rules.Registry, options Options) *Walker {
	if options.Threads < 1 {
		options.Threads = 1
	}
	excluded := make(map[string]struct{}, len(excludedDirs)+len(options.ExcludeDirs))
	for name := range excludedDirs {
		excluded[name] = struct{}{}
	}
	for _, name := range options.ExcludeDirs {
		excluded[name] = struct{}{}
	}
	return &Walker{
		logger:   logger,
		registry: registry,
		options:  options,
		excluded: excluded,
	}
}

// ExcludedDirs returns a copy of the default exclusion set.
func ExcludedDirs() map[string]struct{} {
	excluded := make(map[string]struct{}, len(excludedDirs))
	for name := range excludedDirs {
		excluded[name] = struct{}{}
	}
	return excluded
}

// Walk scans every repository under root and returns results keyed by the
// repository's directory name.
func (w *Walker) Walk(root string) (map[string]*RepositoryResult, error) {
	repos, err := DiscoverRepositories(root, w.excluded, w.options.MaxRepos)
	if err != nil {
		return nil, err
	}

	w.logger.Info("discovered repositories", "count", len(repos), "root", root)

	keys := resultKeys(root, repos)
	results := make(map[string]*RepositoryResult, len(repos))
	var mu sync.Mutex

	shared.ForEveryWithBoundedGoroutines(w.options.Threads, repos, func(i int, repoPath string) {
		name := keys[i]

		result, err := w.scanRepository(repoPath)
		if err != nil {
			w.logger.Error("repository scan failed", "repository", name, "error", err)
			return
		}
		result.Name = name

		mu.Lock()
		results[name] = result
		mu.Unlock()
	})

	return results, nil
}

// resultKeys assigns each repository its folder name as result key. In the
// nested layout the same folder name can sit under two grouping directories;
// repos is sorted, the first occurrence keeps the short name and later ones
// fall back to the root-relative path.
func resultKeys(root string, repos []string) []string {
	keys := make([]string, len(repos))
	seen := make(map[string]struct{}, len(repos))
	for i, repoPath := range repos {
		name := filepath.Base(repoPath)
		if _, taken := seen[name]; taken {
			if rel, err := filepath.Rel(root, repoPath); err == nil {
				name = filepath.ToSlash(rel)
			}
		}
		seen[name] = struct{}{}
		keys[i] = name
	}
	return keys
}

// DiscoverRepositories supports both the flat layout (one repository per
// subdirectory of root) and the nested layout (root/<language>/<repository>).
// A directory holding a .git entry is a repository root; a first level
// directory without one is treated as a grouping directory. maxRepos of zero
// means no cap.
func DiscoverRepositories(root string, excluded map[string]struct{}, maxRepos int) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read scan root '%s': %w", root, err)
	}

	var repos []string
	capped := func() bool {
		return maxRepos > 0 && len(repos) >= maxRepos
	}

	for _, entry := range entries {
		if capped() {
			break
		}
		if !entry.IsDir() {
			continue
		}
		if _, skip := excluded[entry.Name()]; skip {
			continue
		}

		path := filepath.Join(root, entry.Name())
		if isRepository(path) {
			repos = append(repos, path)
			continue
		}

		nested, err := os.ReadDir(path)
		if err != nil {
			continue
		}
		for _, sub := range nested {
			if capped() {
				break
			}
			if !sub.IsDir() {
				continue
			}
			if _, skip := excluded[sub.Name()]; skip {
				continue
			}
			repos = append(repos, filepath.Join(path, sub.Name()))
		}
	}

	sort.Strings(repos)
	if maxRepos > 0 && len(repos) > maxRepos {
		repos = repos[:maxRepos]
	}
	return repos, nil
}

func isRepository(path string) bool {
	_, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil
}

// scanRepository scans every supported source file of one repository. The
// cached result is reused when present and valid.
func (w *Walker) scanRepository(repoPath string) (*RepositoryResult, error) {
	name := filepath.Base(repoPath)

	if w.options.UseCache {
		if cached, ok := loadCache(repoPath, w.options.CacheMaxAge); ok {
			w.logger.Debug("using cached result", "repository", name)
			cached.Name = name
			return cached, nil
		}
	}

	result := NewRepositoryResult(name)

	err := filepath.WalkDir(repoPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("traversal error", "path", path, "error", err)
			return nil
		}
		if entry.IsDir() {
			if _, skip := w.excluded[entry.Name()]; skip && path != repoPath {
				return filepath.SkipDir
			}
			return nil
		}

		language := rules.LanguageByExtension(filepath.Ext(path))
		if language == rules.LanguageUnknown {
			return nil
		}
		if w.options.Language != "" && language != w.options.Language {
			return nil
		}

		src, err := os.ReadFile(path)
		if err != nil {
			w.logger.Warn("failed to read file", "path", path, "error", err)
			return nil
		}

		relPath, err := filepath.Rel(repoPath, path)
		if err != nil {
			relPath = path
		}

		findings, err := scan.ScanFile(w.registry, language, relPath, src)
		if err != nil {
			w.logger.Warn("failed to scan file", "path", path, "error", err)
			return nil
		}

		result.AddFile(string(language), findings)
		if len(findings) > 0 {
			w.logger.Debug("found dangerous API calls", "path", relPath, "count", len(findings))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk repository '%s': %w", repoPath, err)
	}

	result.Finalize()

	if err := saveCache(repoPath, result); err != nil {
		w.logger.Debug("skipping result cache", "repository", name, "reason", err)
	}

	return result, nil
}
