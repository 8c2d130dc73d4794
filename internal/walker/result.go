package walker

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/mcp-census/apiscan/internal/scan"
)

// ResultVersion marks the layout of result and cache files.
const ResultVersion = "1.0"

const timestampLayout = "2006-01-02 15:04:05"

// RepositoryResult holds everything the scan learned about one repository.
type RepositoryResult struct {
	Name           string         `json:"name"`
	Language       string         `json:"language"`
	Findings       []scan.Finding `json:"api_calls"`
	ThreatCounts   map[string]int `json:"threat_types"`
	ResourceCounts map[string]int `json:"resource_types"`

	findingsPerLanguage map[string]int
	filesPerLanguage    map[string]int
}

// NewRepositoryResult creates an empty result for the named repository.
func NewRepositoryResult(name string) *RepositoryResult {
	return &RepositoryResult{
		Name:                name,
		Findings:            []scan.Finding{},
		ThreatCounts:        map[string]int{},
		ResourceCounts:      map[string]int{},
		findingsPerLanguage: map[string]int{},
		filesPerLanguage:    map[string]int{},
	}
}

// AddFile records the findings of one scanned file.
func (r *RepositoryResult) AddFile(language string, findings []scan.Finding) {
	r.filesPerLanguage[language]++
	r.findingsPerLanguage[language] += len(findings)
	for _, finding := range findings {
		r.Findings = append(r.Findings, finding)
		r.ThreatCounts[string(finding.Threat)]++
		r.ResourceCounts[string(finding.Resource)]++
	}
}

// Finalize settles the repository's dominant language: the language with the
// most findings wins, ties and finding-free repositories fall back to a file
// count vote.
func (r *RepositoryResult) Finalize() {
	r.Language = dominant(r.findingsPerLanguage)
	if r.Language == "" {
		r.Language = dominant(r.filesPerLanguage)
	}
	if r.Language == "" {
		r.Language = "unknown"
	}
}

func dominant(votes map[string]int) string {
	best := ""
	bestCount := 0
	for language, count := range votes {
		if count > bestCount || (count == bestCount && best != "" && language < best) {
			best = language
			bestCount = count
		}
	}
	return best
}

// RunResult is the top level structure of the scan output file.
type RunResult struct {
	RunID     string                       `json:"run_id"`
	Timestamp string                       `json:"timestamp"`
	Version   string                       `json:"version"`
	Results   map[string]*RepositoryResult `json:"results"`
}

// NewRunResult stamps a fresh run with an ID and timestamp.
func NewRunResult(results map[string]*RepositoryResult) *RunResult {
	return &RunResult{
		RunID:     uuid.New().String(),
		Timestamp: time.Now().Format(timestampLayout),
		Version:   ResultVersion,
		Results:   results,
	}
}

// LoadRunResult reads a previously written scan output file.
func LoadRunResult(path string) (*RunResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read result file '%s': %w", path, err)
	}

	var run RunResult
	if err := json.Unmarshal(raw, &run); err != nil {
		return nil, fmt.Errorf("failed to parse result file '%s': %w", path, err)
	}
	if run.Results == nil {
		return nil, fmt.Errorf("result file '%s' has no results section", path)
	}
	for name, result := range run.Results {
		if result.Name == "" {
			result.Name = name
		}
	}
	return &run, nil
}
