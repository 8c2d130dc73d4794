package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcp-census/apiscan/cmd/census"
	"github.com/mcp-census/apiscan/cmd/enrich"
	"github.com/mcp-census/apiscan/cmd/report"
	"github.com/mcp-census/apiscan/cmd/scan"
	"github.com/mcp-census/apiscan/cmd/version"
	"github.com/mcp-census/apiscan/pkg/shared/config"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "apiscan [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Apiscan finds dangerous API usage across collections of repositories.",
		Long: `Apiscan walks directories of cloned repositories, flags calls to dangerous
	APIs in a dozen languages, ties repositories back to their catalog metadata
	and renders security statistics as Markdown or SARIF reports.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.AddCommand(version.NewVersionCmd())
	rootCmd.AddCommand(scan.ScanCmd)
	rootCmd.AddCommand(report.ReportCmd)
	rootCmd.AddCommand(enrich.EnrichCmd)
	rootCmd.AddCommand(census.CensusCmd)
}

func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 1
	}
	return 0
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Printf("initializing config file function is crashed - %v \n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	version.Init(AppConfig)
	scan.Init(AppConfig)
	report.Init(AppConfig)
	enrich.Init(AppConfig)
	census.Init(AppConfig)
}
