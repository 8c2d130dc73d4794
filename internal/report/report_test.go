package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-census/apiscan/internal/metadata"
	"github.com/mcp-census/apiscan/internal/rules"
	"github.com/mcp-census/apiscan/internal/scan"
	"github.com/mcp-census/apiscan/internal/walker"
)

func intPtr(v int) *int { return &v }

func sampleResults() map[string]*walker.RepositoryResult {
	shell := walker.NewRepositoryResult("acme_shell")
	shell.AddFile("python", []scan.Finding{
		{
			FilePath: "app.py", Line: 3, Column: 0, APIName: "os.system",
			Function: "run", Description: "executes a shell command",
			Threat: rules.ThreatCommandExecution, Resource: rules.ResourceSystem,
		},
	})
	shell.Finalize()

	net := walker.NewRepositoryResult("beta_net")
	net.AddFile("go", []scan.Finding{
		{
			FilePath: "main.go", Line: 9, Column: 1, APIName: "http.Get",
			Function: "fetch", Description: "sends an HTTP GET request",
			Threat: rules.ThreatNetworkRequest, Resource: rules.ResourceNetwork,
		},
	})
	net.Finalize()

	return map[string]*walker.RepositoryResult{
		"acme_shell": shell,
		"beta_net":   net,
	}
}

func sampleStore() *metadata.Store {
	records := []metadata.Record{
		{
			GitHubURL:  "https://github.com/acme/shell",
			Categories: []string{"System Tools"},
			Stars:      intPtr(50),
		},
		{
			GitHubURL:  "https://github.com/beta/net",
			Categories: []string{"Networking"},
		},
	}
	return metadata.NewStore(records)
}

func TestBuildAggregate(t *testing.T) {
	agg := Build(sampleResults(), sampleStore())

	assert.Equal(t, 2, agg.TotalFindings)
	assert.Equal(t, []string{"NETWORK_RESOURCE", "SYSTEM_RESOURCE"}, agg.ResourceTypes)
	assert.Equal(t, 1, agg.ThreatCounts["COMMAND_EXECUTION"])
	assert.Equal(t, 1, agg.ThreatCounts["NETWORK_REQUEST"])

	require.Contains(t, agg.Categories, "System Tools")
	assert.Equal(t, 1, agg.Categories["System Tools"].Repositories)
	assert.Equal(t, 1, agg.Categories["System Tools"].ResourceTypes["SYSTEM_RESOURCE"])

	// Only acme/shell has a known star count, so only it lands in a bucket.
	require.Contains(t, agg.StarBuckets, "11-100")
	assert.Equal(t, 1, agg.StarBuckets["11-100"].Repositories)
	assert.Equal(t, 1, agg.UnknownStars)
}

func TestStarBucketLabel(t *testing.T) {
	var tests = []struct {
		stars int
		want  string
	}{
		{0, "0-10"},
		{10, "0-10"},
		{11, "11-100"},
		{100, "11-100"},
		{101, "101-1000"},
		{1000, "101-1000"},
		{1001, "1001-10000"},
		{10001, "10001-50000"},
		{50001, "50000+"},
		{2000000, "50000+"},
	}
	for _, tt := range tests {
		if got := starBucketLabel(tt.stars); got != tt.want {
			t.Errorf("starBucketLabel(%d) = %s, want %s", tt.stars, got, tt.want)
		}
	}
}

func TestRenderMarkdown(t *testing.T) {
	table := RenderMarkdown(Build(sampleResults(), sampleStore()))

	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 6)

	assert.Equal(t, "| Dimension | Total | NETWORK_RESOURCE | SYSTEM_RESOURCE |", lines[0])
	assert.Contains(t, table, "| **Category** |")
	assert.Contains(t, table, "| **Stars Range** |")
	assert.Contains(t, table, "| System Tools | 1 | 0 | 1 |")
	assert.Contains(t, table, "| Networking | 1 | 1 | 0 |")
	assert.Contains(t, table, "| 11-100 | 1 | 0 | 1 |")
}

func TestBuildSarif(t *testing.T) {
	sarifReport, err := BuildSarif(sampleResults())
	require.NoError(t, err)
	require.Len(t, sarifReport.Runs, 1)

	run := sarifReport.Runs[0]
	assert.Equal(t, "apiscan", run.Tool.Driver.Name)
	assert.Len(t, run.Tool.Driver.Rules, 2)
	require.Len(t, run.Results, 2)

	first := run.Results[0]
	assert.Equal(t, "os.system", *first.RuleID)
	assert.Equal(t, "error", *first.Level)
	require.Len(t, first.Locations, 1)
	physical := first.Locations[0].PhysicalLocation
	assert.Equal(t, "acme_shell/app.py", *physical.ArtifactLocation.URI)
	assert.Equal(t, 3, *physical.Region.StartLine)
}
