package census

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/mcp-census/apiscan/internal/rules"
	"github.com/mcp-census/apiscan/internal/walker"
)

// manifestRootWeight biases the language vote towards the ecosystem whose
// manifest sits at the repository root.
const manifestRootWeight = 5

// RepositoryCensus is the per-repository library inventory.
type RepositoryCensus struct {
	Name      string   `json:"name"`
	Language  string   `json:"language"`
	Libraries []string `json:"libraries"`
}

// Census aggregates library usage over a set of repositories.
type Census struct {
	TotalRepositories    int                       `json:"total_repositories"`
	LanguageDistribution map[string]int            `json:"language_distribution"`
	LibraryUsage         map[string]int            `json:"library_usage"`
	PerLanguage          map[string]map[string]int `json:"per_language"`
	Repositories         []RepositoryCensus        `json:"repositories"`
}

// Run walks every repository under root, detects its primary ecosystem and
// parses its dependency manifests.
func Run(logger hclog.Logger, root string) (*Census, error) {
	repos, err := walker.DiscoverRepositories(root, walker.ExcludedDirs(), 0)
	if err != nil {
		return nil, err
	}

	census := &Census{
		TotalRepositories:    len(repos),
		LanguageDistribution: map[string]int{},
		LibraryUsage:         map[string]int{},
		PerLanguage:          map[string]map[string]int{},
	}

	for _, repoPath := range repos {
		name := filepath.Base(repoPath)
		repoCensus, err := analyzeRepository(repoPath)
		if err != nil {
			logger.Warn("census failed", "repository", name, "error", err)
			continue
		}
		repoCensus.Name = name

		census.LanguageDistribution[repoCensus.Language]++
		for _, library := range repoCensus.Libraries {
			census.LibraryUsage[library]++
			if census.PerLanguage[repoCensus.Language] == nil {
				census.PerLanguage[repoCensus.Language] = map[string]int{}
			}
			census.PerLanguage[repoCensus.Language][library]++
		}
		census.Repositories = append(census.Repositories, *repoCensus)
		logger.Debug("census analyzed repository", "repository", name,
			"language", repoCensus.Language, "libraries", len(repoCensus.Libraries))
	}

	return census, nil
}

// analyzeRepository detects the repository's primary language and parses
// every manifest of that ecosystem, at the root and in subdirectories.
func analyzeRepository(repoPath string) (*RepositoryCensus, error) {
	excluded := walker.ExcludedDirs()

	votes := map[string]int{}
	manifestPaths := map[string][]string{}

	err := filepath.WalkDir(repoPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() {
			if _, skip := excluded[entry.Name()]; skip && path != repoPath {
				return filepath.SkipDir
			}
			return nil
		}

		if language := rules.LanguageByExtension(filepath.Ext(path)); language != rules.LanguageUnknown {
			votes[string(language)]++
		}
		for _, m := range manifests {
			if entry.Name() != m.File {
				continue
			}
			manifestPaths[m.Language] = append(manifestPaths[m.Language], path)
			if filepath.Dir(path) == repoPath {
				votes[m.Language] += manifestRootWeight
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	language := "unknown"
	best := 0
	for candidate, count := range votes {
		if count > best || (count == best && candidate < language) {
			language = candidate
			best = count
		}
	}

	libraries := map[string]struct{}{}
	for _, m := range manifests {
		if m.Language != language {
			continue
		}
		for _, path := range manifestPaths[m.Language] {
			raw, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			deps, err := m.Parse(path, raw)
			if err != nil {
				continue
			}
			for dep := range deps {
				libraries[dep] = struct{}{}
			}
		}
	}

	sorted := make([]string, 0, len(libraries))
	for library := range libraries {
		sorted = append(sorted, library)
	}
	sort.Strings(sorted)

	return &RepositoryCensus{Language: language, Libraries: sorted}, nil
}
