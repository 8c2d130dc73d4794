package report

import (
	"fmt"
	"os"
	"sort"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/mcp-census/apiscan/internal/rules"
	"github.com/mcp-census/apiscan/internal/walker"
)

const toolName = "apiscan"
const toolInformationURI = "https://github.com/mcp-census/apiscan"

// toSarifErrorLevel maps a threat category onto a SARIF reporting level.
func toSarifErrorLevel(threat rules.ThreatCategory) string {
	switch threat {
	case rules.ThreatCommandExecution, rules.ThreatCodeInjection,
		rules.ThreatDeserialization, rules.ThreatMemoryCorruption,
		rules.ThreatPrivilegeEscalation:
		return "error"
	case rules.ThreatUnknown:
		return "note"
	default:
		return "warning"
	}
}

// BuildSarif converts scan results into a SARIF v2.1.0 report: one rule per
// dangerous API name, one result per finding.
func BuildSarif(results map[string]*walker.RepositoryResult) (*sarif.Report, error) {
	reportSarif, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create sarif report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolInformationURI)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	seenRules := map[string]struct{}{}

	for _, name := range names {
		result := results[name]
		for _, finding := range result.Findings {
			if _, ok := seenRules[finding.APIName]; !ok {
				run.AddRule(finding.APIName).
					WithDescription(finding.Description).
					WithDefaultConfiguration(&sarif.ReportingConfiguration{
						Level: toSarifErrorLevel(finding.Threat),
					})
				seenRules[finding.APIName] = struct{}{}
			}

			location := sarif.NewLocation().
				WithPhysicalLocation(sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewArtifactLocation().
						WithUri(fmt.Sprintf("%s/%s", name, finding.FilePath))).
					WithRegion(sarif.NewRegion().
						WithStartLine(finding.Line).
						WithStartColumn(finding.Column + 1)))

			message := fmt.Sprintf("%s in %s (%s / %s)",
				finding.Description, finding.Function, finding.Threat, finding.Resource)

			sarifResult := sarif.NewRuleResult(finding.APIName).
				WithMessage(sarif.NewTextMessage(message)).
				WithLevel(toSarifErrorLevel(finding.Threat)).
				WithLocations([]*sarif.Location{location})
			run.AddResult(sarifResult)
		}
	}

	reportSarif.AddRun(run)
	return reportSarif, nil
}

// WriteSarif renders the results as SARIF into the given file.
func WriteSarif(results map[string]*walker.RepositoryResult, path string) error {
	reportSarif, err := BuildSarif(results)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sarif file '%s': %w", path, err)
	}
	defer file.Close()

	if err := reportSarif.PrettyWrite(file); err != nil {
		return fmt.Errorf("failed to write sarif file '%s': %w", path, err)
	}
	return nil
}
