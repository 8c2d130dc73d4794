package census

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	libcensus "github.com/mcp-census/apiscan/internal/census"
	"github.com/mcp-census/apiscan/pkg/shared"
	"github.com/mcp-census/apiscan/pkg/shared/config"
	"github.com/mcp-census/apiscan/pkg/shared/files"
	"github.com/mcp-census/apiscan/pkg/shared/logger"
)

// RunOptionsCensus holds the arguments for the census command.
type RunOptionsCensus struct {
	MinFrequency int
	OutputDir    string
}

var (
	AppConfig          *config.Config
	censusOptions      RunOptionsCensus
	exampleCensusUsage = `  # Tallying third-party library usage across every repository
  apiscan census /data/mcp_servers

  # Keeping only libraries used by at least five repositories
  apiscan census --min-frequency 5 --output analysis/ /data/mcp_servers`
)

var CensusCmd = &cobra.Command{
	Use:                   "census [--min-frequency N] [--output/-o DIR] ROOT",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleCensusUsage,
	Short:                 "Tallies third-party library usage across repositories",
	RunE:                  runCensusCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runCensusCommand executes the census command.
func runCensusCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	logger := logger.NewLogger(AppConfig, "core-census")

	if err := validateCensusArgs(&censusOptions, args); err != nil {
		logger.Error("invalid census arguments", "error", err)
		return err
	}

	result, err := libcensus.Run(logger, args[0])
	if err != nil {
		logger.Error("census failed", "error", err)
		return err
	}

	if err := result.Export(censusOptions.OutputDir, censusOptions.MinFrequency); err != nil {
		logger.Error("failed to export census", "error", err)
		return err
	}

	raw, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal census: %w", err)
	}
	detailPath := filepath.Join(censusOptions.OutputDir, "library_usage_detail.json")
	if err := files.WriteJsonFile(detailPath, raw); err != nil {
		logger.Error("failed to write census detail", "error", err)
		return err
	}

	fmt.Printf("Analyzed %d repositories, %d distinct libraries, results in %s\n",
		result.TotalRepositories, len(result.LibraryUsage), censusOptions.OutputDir)
	logger.Info("census command completed successfully")
	return nil
}

// validateCensusArgs validates the arguments provided to the census command.
func validateCensusArgs(options *RunOptionsCensus, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one positional argument is required: the directory to analyze")
	}

	info, err := os.Stat(args[0])
	if err != nil {
		return fmt.Errorf("census root %q is not accessible: %w", args[0], err)
	}
	if !info.IsDir() {
		return fmt.Errorf("census root %q is not a directory", args[0])
	}

	if options.MinFrequency < 1 {
		return fmt.Errorf("the 'min-frequency' flag must be at least 1")
	}
	return nil
}

func init() {
	CensusCmd.Flags().IntVar(&censusOptions.MinFrequency, "min-frequency", 1, "Minimum usage count for a library to appear in the CSV exports.")
	CensusCmd.Flags().StringVarP(&censusOptions.OutputDir, "output", "o", "analysis", "Output directory for the census files.")
	CensusCmd.Flags().BoolP("help", "h", false, "Show help for the census command.")
}
