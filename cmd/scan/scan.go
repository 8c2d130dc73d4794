package scan

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcp-census/apiscan/internal/metadata"
	"github.com/mcp-census/apiscan/internal/rules"
	"github.com/mcp-census/apiscan/internal/walker"
	"github.com/mcp-census/apiscan/pkg/shared"
	"github.com/mcp-census/apiscan/pkg/shared/config"
	"github.com/mcp-census/apiscan/pkg/shared/files"
	"github.com/mcp-census/apiscan/pkg/shared/logger"
)

// RunOptionsScan holds the arguments for the scan command.
type RunOptionsScan struct {
	MetadataPath string
	OutputPath   string
	MaxRepos     int
	Language     string
	Threads      int
	NoCache      bool
}

var (
	AppConfig        *config.Config
	scanOptions      RunOptionsScan
	exampleScanUsage = `  # Scanning every repository under a directory
  apiscan scan /data/mcp_servers

  # Scanning with catalog metadata and a custom output location
  apiscan scan --metadata servers.json --output results/ /data/mcp_servers

  # Scanning only Python sources with eight workers
  apiscan scan -l python -j 8 /data/mcp_servers

  # Rescanning the first fifty repositories, ignoring cached results
  apiscan scan --max-repos 50 --no-cache /data/mcp_servers`
)

var ScanCmd = &cobra.Command{
	Use:                   "scan [--metadata/-m PATH] [--output/-o PATH] [--language/-l LANG] [-j THREADS_NUMBER] [--max-repos N] [--no-cache] ROOT",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleScanUsage,
	Short:                 "Scans repositories for dangerous API usage",
	RunE:                  runScanCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runScanCommand executes the scan command.
func runScanCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !shared.HasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	logger := logger.NewLogger(AppConfig, "core-scan")

	if err := validateScanArgs(&scanOptions, args); err != nil {
		logger.Error("invalid scan arguments", "error", err)
		return err
	}
	root := args[0]

	var language rules.Language
	if scanOptions.Language != "" {
		language = rules.ParseLanguage(scanOptions.Language)
		if language == rules.LanguageUnknown {
			err := fmt.Errorf("unknown language: %v", scanOptions.Language)
			logger.Error("invalid language filter", "error", err)
			return err
		}
	}

	var store *metadata.Store
	if scanOptions.MetadataPath != "" {
		loaded, err := metadata.Load(scanOptions.MetadataPath)
		if err != nil {
			logger.Error("failed to load metadata", "error", err)
			return err
		}
		store = loaded
		logger.Info("loaded catalog metadata", "records", store.Len())
	}

	threads := scanOptions.Threads
	if threads == 0 {
		threads = config.SetThen(AppConfig.Scanner.Threads, config.DefaultScannerConfig().Threads)
	}
	maxRepos := scanOptions.MaxRepos
	if maxRepos == 0 {
		maxRepos = AppConfig.Scanner.MaxRepos
	}

	w := walker.New(logger, rules.NewRegistry(), walker.Options{
		Threads:     threads,
		MaxRepos:    maxRepos,
		Language:    language,
		UseCache:    !scanOptions.NoCache,
		CacheMaxAge: AppConfig.Scanner.CacheMaxAge,
		ExcludeDirs: AppConfig.Scanner.ExcludeDirs,
	})

	results, err := w.Walk(root)
	if err != nil {
		logger.Error("scan failed", "error", err)
		return err
	}

	outputPath, err := writeRunResult(results, scanOptions.OutputPath)
	if err != nil {
		logger.Error("failed to write result", "error", err)
		return err
	}

	printSummary(results, store, outputPath)
	logger.Info("scan command completed successfully")
	return nil
}

// writeRunResult marshals the run and writes it to the resolved output path.
func writeRunResult(results map[string]*walker.RepositoryResult, outputPath string) (string, error) {
	nameTemplate := fmt.Sprintf("apiscan-result-%s.json", time.Now().Format("20060102-150405"))
	fullPath, folder, err := files.DetermineFileFullPath(outputPath, nameTemplate)
	if err != nil {
		return "", err
	}
	if err := files.CreateFolderIfNotExists(folder); err != nil {
		return "", err
	}

	run := walker.NewRunResult(results)
	raw, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal scan result: %w", err)
	}
	if err := files.WriteJsonFile(fullPath, raw); err != nil {
		return "", err
	}
	return fullPath, nil
}

func init() {
	ScanCmd.Flags().StringVarP(&scanOptions.MetadataPath, "metadata", "m", "", "Path to the catalog metadata JSON file.")
	ScanCmd.Flags().StringVarP(&scanOptions.OutputPath, "output", "o", ".", "Output file or directory for the scan result JSON.")
	ScanCmd.Flags().IntVar(&scanOptions.MaxRepos, "max-repos", 0, "Maximum number of repositories to scan (default: no limit).")
	ScanCmd.Flags().StringVarP(&scanOptions.Language, "language", "l", "", "Restrict scanning to one language (e.g., python, typescript, go).")
	ScanCmd.Flags().IntVarP(&scanOptions.Threads, "threads", "j", 0, "Number of concurrent repository workers.")
	ScanCmd.Flags().BoolVar(&scanOptions.NoCache, "no-cache", false, "Ignore cached per-repository results.")
	ScanCmd.Flags().BoolP("help", "h", false, "Show help for the scan command.")
}
