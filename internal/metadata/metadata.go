package metadata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mcp-census/apiscan/pkg/shared/githuburl"
)

// Record is one entry of the crawled server catalog. Stars is a pointer so
// that records the enrichment pass has not touched yet stay distinguishable
// from genuinely zero-star repositories.
type Record struct {
	GitHubURL  string   `json:"github_url"`
	Name       string   `json:"name,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Metadata   struct {
		Categories []string `json:"categories,omitempty"`
	} `json:"metadata,omitempty"`
	Stars *int `json:"stars,omitempty"`
}

// AllCategories merges the top level and nested category lists, defaulting
// to "Unknown" when the record carries none.
func (r *Record) AllCategories() []string {
	var categories []string
	for _, c := range r.Categories {
		if c != "" {
			categories = append(categories, c)
		}
	}
	for _, c := range r.Metadata.Categories {
		if c != "" {
			categories = append(categories, c)
		}
	}
	if len(categories) == 0 {
		categories = []string{"Unknown"}
	}
	return categories
}

// Store indexes catalog records for repository resolution.
type Store struct {
	records     []Record
	byName      map[string]*Record
	byFolderKey map[string]*Record
	byOwnerRepo map[string]*Record
}

// Load reads a catalog JSON file, an array of records.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file '%s': %w", path, err)
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to parse metadata file '%s': %w", path, err)
	}

	return NewStore(records), nil
}

// NewStore builds the lookup indexes over the given records. Records without
// a usable GitHub URL are kept but not indexed.
func NewStore(records []Record) *Store {
	s := &Store{
		records:     records,
		byName:      map[string]*Record{},
		byFolderKey: map[string]*Record{},
		byOwnerRepo: map[string]*Record{},
	}
	for i := range s.records {
		record := &s.records[i]
		if record.Name != "" {
			s.byName[record.Name] = record
		}
		owner, repo, ok := githuburl.OwnerRepo(record.GitHubURL)
		if !ok {
			continue
		}
		s.byFolderKey[githuburl.FolderKey(owner, repo)] = record
		s.byOwnerRepo[owner+"/"+repo] = record
	}
	return s
}

// Records returns the backing slice, in catalog order.
func (s *Store) Records() []Record {
	return s.records
}

// Len reports the number of catalog records.
func (s *Store) Len() int {
	return len(s.records)
}

// Save writes the records back as indented JSON, the same shape Load reads.
func (s *Store) Save(path string) error {
	raw, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata file '%s': %w", path, err)
	}
	return nil
}
