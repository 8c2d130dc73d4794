package metadata

import (
	"strings"

	"github.com/gitsight/go-vcsurl"
	"github.com/go-git/go-git/v5"

	"github.com/mcp-census/apiscan/pkg/shared/githuburl"
)

// Resolved ties a scanned repository folder back to a catalog record.
// Stars is -1 when no star count is known.
type Resolved struct {
	RepoName   string
	Categories []string
	Stars      int
	Matched    bool
}

// Resolve maps a repository folder to its catalog record. The origin remote
// of the repository's git config is the most reliable signal and is tried
// first; the folder naming convention ("owner_repo" with an optional numeric
// clone suffix) is the fallback. Unmatched repositories resolve to the folder
// derived name with the "Unknown" category.
func (s *Store) Resolve(folderName, repoPath string) Resolved {
	if owner, repo, ok := originOwnerRepo(repoPath); ok {
		name := owner + "/" + repo
		if record, found := s.byOwnerRepo[strings.ToLower(name)]; found {
			return s.resolved(record)
		}
		return Resolved{
			RepoName:   name,
			Categories: []string{"Unknown"},
			Stars:      -1,
		}
	}

	base := githuburl.CloneBaseName(folderName)
	if record, found := s.byName[folderName]; found {
		return s.resolved(record)
	}
	if record, found := s.byName[base]; found {
		return s.resolved(record)
	}
	if record, found := s.byFolderKey[base]; found {
		return s.resolved(record)
	}
	for _, candidate := range githuburl.SplitFolderName(folderName) {
		if record, found := s.byOwnerRepo[candidate[0]+"/"+candidate[1]]; found {
			return s.resolved(record)
		}
	}

	return Resolved{
		RepoName:   base,
		Categories: []string{"Unknown"},
		Stars:      -1,
	}
}

func (s *Store) resolved(record *Record) Resolved {
	name := record.Name
	if owner, repo, ok := githuburl.OwnerRepo(record.GitHubURL); ok {
		name = owner + "/" + repo
	}
	stars := -1
	if record.Stars != nil {
		stars = *record.Stars
	}
	return Resolved{
		RepoName:   name,
		Categories: record.AllCategories(),
		Stars:      stars,
		Matched:    true,
	}
}

// originOwnerRepo reads the origin remote of the repository's git config and
// parses it into owner and repository names.
func originOwnerRepo(repoPath string) (owner, repo string, ok bool) {
	if repoPath == "" {
		return "", "", false
	}

	repository, err := git.PlainOpen(repoPath)
	if err != nil {
		return "", "", false
	}
	remote, err := repository.Remote(git.DefaultRemoteName)
	if err != nil || len(remote.Config().URLs) == 0 {
		return "", "", false
	}

	info, err := vcsurl.Parse(remote.Config().URLs[0])
	if err != nil || info.Host != vcsurl.GitHub {
		return "", "", false
	}
	return info.Username, strings.TrimSuffix(info.Name, ".git"), true
}
