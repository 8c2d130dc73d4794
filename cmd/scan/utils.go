package scan

import (
	"fmt"
	"sort"

	"github.com/mcp-census/apiscan/internal/metadata"
	"github.com/mcp-census/apiscan/internal/walker"
)

// printSummary prints a human readable recap of the run.
func printSummary(results map[string]*walker.RepositoryResult, store *metadata.Store, outputPath string) {
	names := make([]string, 0, len(results))
	totalFindings := 0
	for name, result := range results {
		names = append(names, name)
		totalFindings += len(result.Findings)
	}
	sort.Strings(names)

	fmt.Printf("Scanned %d repositories, %d dangerous API calls found\n", len(results), totalFindings)
	for _, name := range names {
		result := results[name]
		line := fmt.Sprintf("  %s [%s]: %d findings", name, result.Language, len(result.Findings))
		if store != nil {
			resolved := store.Resolve(name, "")
			if resolved.Matched {
				line += fmt.Sprintf(" -> %s", resolved.RepoName)
			}
		}
		fmt.Println(line)
	}
	fmt.Printf("Result written to %s\n", outputPath)
}
