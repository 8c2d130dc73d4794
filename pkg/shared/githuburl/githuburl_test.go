package githuburl

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	var tests = []struct {
		raw  string
		want string
	}{
		{"https://github.com/Owner/Repo", "github.com/owner/repo"},
		{"http://www.github.com/owner/repo/", "github.com/owner/repo"},
		{"https://github.com/owner/repo.git", "github.com/owner/repo"},
		{"github.com/owner/repo", "github.com/owner/repo"},
		{"  https://github.com/owner/repo  ", "github.com/owner/repo"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestOwnerRepo(t *testing.T) {
	owner, repo, ok := OwnerRepo("https://github.com/ModelContext/server-filesystem.git")
	if !ok {
		t.Fatal("expected the URL to parse")
	}
	if owner != "modelcontext" || repo != "server-filesystem" {
		t.Errorf("got %s/%s", owner, repo)
	}

	if _, _, ok := OwnerRepo("https://gitlab.com/owner/repo"); ok {
		t.Error("expected non-github hosts to be rejected")
	}
	if _, _, ok := OwnerRepo("https://github.com/owneronly"); ok {
		t.Error("expected a URL without a repo segment to be rejected")
	}
}

func TestCloneBaseName(t *testing.T) {
	var tests = []struct {
		name string
		want string
	}{
		{"owner_repo", "owner_repo"},
		{"owner_repo_2", "owner_repo"},
		{"Owner_Repo_15", "owner_repo"},
		{"plainname", "plainname"},
	}
	for _, tt := range tests {
		if got := CloneBaseName(tt.name); got != tt.want {
			t.Errorf("CloneBaseName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSplitFolderName(t *testing.T) {
	candidates := SplitFolderName("my_org_my_repo_3")

	found := false
	for _, c := range candidates {
		if c[0] == "my_org" && c[1] == "my_repo" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected my_org/my_repo among candidates, got %v", candidates)
	}
}
