package report

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcp-census/apiscan/internal/metadata"
	"github.com/mcp-census/apiscan/internal/report"
	"github.com/mcp-census/apiscan/internal/walker"
	"github.com/mcp-census/apiscan/pkg/shared"
	"github.com/mcp-census/apiscan/pkg/shared/config"
	"github.com/mcp-census/apiscan/pkg/shared/files"
	"github.com/mcp-census/apiscan/pkg/shared/logger"
)

const (
	FormatMarkdown = "markdown"
	FormatSarif    = "sarif"
)

// RunOptionsReport holds the arguments for the report command.
type RunOptionsReport struct {
	InputPath    string
	Format       string
	MetadataPath string
	OutputPath   string
}

var (
	AppConfig          *config.Config
	reportOptions      RunOptionsReport
	exampleReportUsage = `  # Rendering the security statistics table from a scan result
  apiscan report --input apiscan-result-20260830-120000.json --metadata servers.json

  # Exporting every finding as SARIF
  apiscan report --input apiscan-result-20260830-120000.json --format sarif --output findings.sarif`
)

var ReportCmd = &cobra.Command{
	Use:                   "report --input/-i PATH [--format markdown|sarif] [--metadata/-m PATH] [--output/-o PATH]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleReportUsage,
	Short:                 "Builds reports from a scan result file",
	RunE:                  runReportCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runReportCommand executes the report command.
func runReportCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	logger := logger.NewLogger(AppConfig, "core-report")

	if err := validateReportArgs(&reportOptions, args); err != nil {
		logger.Error("invalid report arguments", "error", err)
		return err
	}

	run, err := walker.LoadRunResult(reportOptions.InputPath)
	if err != nil {
		logger.Error("failed to load scan result", "error", err)
		return err
	}
	logger.Info("loaded scan result", "repositories", len(run.Results), "run_id", run.RunID)

	store := metadata.NewStore(nil)
	if reportOptions.MetadataPath != "" {
		store, err = metadata.Load(reportOptions.MetadataPath)
		if err != nil {
			logger.Error("failed to load metadata", "error", err)
			return err
		}
	}

	var outputPath string
	switch reportOptions.Format {
	case FormatMarkdown:
		outputPath, err = writeMarkdown(run.Results, store, reportOptions.OutputPath)
	case FormatSarif:
		outputPath, err = writeSarif(run.Results, reportOptions.OutputPath)
	}
	if err != nil {
		logger.Error("failed to write report", "error", err)
		return err
	}

	fmt.Printf("Report written to %s\n", outputPath)
	logger.Info("report command completed successfully")
	return nil
}

func writeMarkdown(results map[string]*walker.RepositoryResult, store *metadata.Store, outputPath string) (string, error) {
	nameTemplate := fmt.Sprintf("security_table_%s.md", time.Now().Format("20060102-150405"))
	fullPath, folder, err := files.DetermineFileFullPath(outputPath, nameTemplate)
	if err != nil {
		return "", err
	}
	if err := files.CreateFolderIfNotExists(folder); err != nil {
		return "", err
	}

	agg := report.Build(results, store)
	if err := os.WriteFile(fullPath, []byte(report.RenderMarkdown(agg)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report file '%s': %w", fullPath, err)
	}
	return fullPath, nil
}

func writeSarif(results map[string]*walker.RepositoryResult, outputPath string) (string, error) {
	nameTemplate := fmt.Sprintf("apiscan-report-%s.sarif", time.Now().Format("20060102-150405"))
	fullPath, folder, err := files.DetermineFileFullPath(outputPath, nameTemplate)
	if err != nil {
		return "", err
	}
	if err := files.CreateFolderIfNotExists(folder); err != nil {
		return "", err
	}

	if err := report.WriteSarif(results, fullPath); err != nil {
		return "", err
	}
	return fullPath, nil
}

func init() {
	ReportCmd.Flags().StringVarP(&reportOptions.InputPath, "input", "i", "", "Path to a scan result JSON file.")
	ReportCmd.Flags().StringVar(&reportOptions.Format, "format", FormatMarkdown, "Report format (markdown or sarif).")
	ReportCmd.Flags().StringVarP(&reportOptions.MetadataPath, "metadata", "m", "", "Path to the catalog metadata JSON file.")
	ReportCmd.Flags().StringVarP(&reportOptions.OutputPath, "output", "o", ".", "Output file or directory for the report.")
	ReportCmd.Flags().BoolP("help", "h", false, "Show help for the report command.")
}
