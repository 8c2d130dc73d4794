package enrich

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcp-census/apiscan/internal/metadata"
	"github.com/mcp-census/apiscan/internal/stars"
	"github.com/mcp-census/apiscan/pkg/shared"
	"github.com/mcp-census/apiscan/pkg/shared/config"
	"github.com/mcp-census/apiscan/pkg/shared/files"
	"github.com/mcp-census/apiscan/pkg/shared/logger"
)

// RunOptionsEnrich holds the arguments for the enrich command.
type RunOptionsEnrich struct {
	MetadataPath string
	OutputPath   string
	Delay        time.Duration
}

var (
	AppConfig          *config.Config
	enrichOptions      RunOptionsEnrich
	exampleEnrichUsage = `  # Filling in missing star counts, writing the catalog back in place
  apiscan enrich --metadata servers.json

  # Writing the enriched catalog to a new file with a slower request rate
  apiscan enrich --metadata servers.json --output servers-enriched.json --delay 2s`
)

var EnrichCmd = &cobra.Command{
	Use:                   "enrich --metadata/-m PATH [--output/-o PATH] [--delay DURATION]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleEnrichUsage,
	Short:                 "Fetches missing GitHub star counts into the catalog metadata",
	RunE:                  runEnrichCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runEnrichCommand executes the enrich command.
func runEnrichCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	logger := logger.NewLogger(AppConfig, "core-enrich")

	if err := validateEnrichArgs(&enrichOptions, args); err != nil {
		logger.Error("invalid enrich arguments", "error", err)
		return err
	}

	store, err := metadata.Load(enrichOptions.MetadataPath)
	if err != nil {
		logger.Error("failed to load metadata", "error", err)
		return err
	}
	logger.Info("loaded catalog metadata", "records", store.Len())

	client := stars.NewClient(logger, AppConfig)
	if enrichOptions.Delay > 0 {
		client.SetDelay(enrichOptions.Delay)
	}

	updated, err := client.EnrichStore(context.Background(), store)
	if err != nil {
		logger.Error("enrichment failed", "updated", updated, "error", err)
		return err
	}

	outputPath := enrichOptions.OutputPath
	if outputPath == "" {
		outputPath = enrichOptions.MetadataPath
	}
	if err := store.Save(outputPath); err != nil {
		logger.Error("failed to save metadata", "error", err)
		return err
	}

	fmt.Printf("Updated %d of %d records, written to %s\n", updated, store.Len(), outputPath)
	logger.Info("enrich command completed successfully")
	return nil
}

// validateEnrichArgs validates the arguments provided to the enrich command.
func validateEnrichArgs(options *RunOptionsEnrich, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("invalid argument(s) received, the enrich command takes flags only")
	}
	if options.MetadataPath == "" {
		return fmt.Errorf("the 'metadata' flag must be specified")
	}
	if err := files.ValidatePath(options.MetadataPath); err != nil {
		return fmt.Errorf("failed to validate metadata path %q: %w", options.MetadataPath, err)
	}
	if options.Delay < 0 {
		return fmt.Errorf("the 'delay' flag must not be negative")
	}
	return nil
}

func init() {
	EnrichCmd.Flags().StringVarP(&enrichOptions.MetadataPath, "metadata", "m", "", "Path to the catalog metadata JSON file.")
	EnrichCmd.Flags().StringVarP(&enrichOptions.OutputPath, "output", "o", "", "Output file for the enriched metadata (default: overwrite the input).")
	EnrichCmd.Flags().DurationVar(&enrichOptions.Delay, "delay", 0, "Delay between GitHub API requests (default: from config).")
	EnrichCmd.Flags().BoolP("help", "h", false, "Show help for the enrich command.")
}
