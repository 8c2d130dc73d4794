package githuburl

import (
	"regexp"
	"strings"
)

var trailingIndexRe = regexp.MustCompile(`_\d+$`)

// Normalize canonicalizes a GitHub repository URL so that the same repository
// always yields the same string regardless of how the URL was written.
// Scheme, "www." prefix, ".git" suffix and trailing slashes are stripped and
// the result is lowercased.
func Normalize(raw string) string {
	u := strings.TrimSpace(raw)
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	u = strings.TrimPrefix(u, "www.")
	u = strings.TrimRight(u, "/")
	u = strings.TrimSuffix(u, ".git")
	return strings.ToLower(u)
}

// OwnerRepo extracts the owner and repository name from a GitHub URL.
// It returns ok=false when the URL does not carry both path segments.
func OwnerRepo(raw string) (owner, repo string, ok bool) {
	normalized := Normalize(raw)
	parts := strings.Split(normalized, "/")
	if len(parts) < 3 || parts[0] != "github.com" {
		return "", "", false
	}
	return parts[1], parts[2], true
}

// FolderKey builds the canonical folder name for a repository, the same
// convention the crawler uses when it clones repositories to disk.
func FolderKey(owner, repo string) string {
	return strings.ToLower(owner) + "_" + strings.ToLower(repo)
}

// CloneBaseName strips the numeric collision suffix the crawler appends when
// two repositories clone to the same folder name ("owner_repo_2" becomes
// "owner_repo").
func CloneBaseName(name string) string {
	base := strings.ToLower(name)
	if trimmed := trailingIndexRe.ReplaceAllString(base, ""); trimmed != "" {
		return trimmed
	}
	return base
}

// SplitFolderName interprets a local folder name of the form "owner_repo" or
// "owner_repo_N" (N is a numeric suffix appended on clone collisions) and
// returns the candidate owner together with the remaining repo part.
// The repo part may itself contain underscores, so callers must try every
// split position when matching against known repositories.
func SplitFolderName(name string) (candidates [][2]string) {
	base := strings.ToLower(name)
	names := []string{base}
	if trimmed := trailingIndexRe.ReplaceAllString(base, ""); trimmed != base && trimmed != "" {
		names = append(names, trimmed)
	}

	for _, n := range names {
		parts := strings.Split(n, "_")
		for i := 1; i < len(parts); i++ {
			owner := strings.Join(parts[:i], "_")
			repo := strings.Join(parts[i:], "_")
			if owner == "" || repo == "" {
				continue
			}
			candidates = append(candidates, [2]string{owner, repo})
		}
	}
	return candidates
}
