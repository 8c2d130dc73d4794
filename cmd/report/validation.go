package report

import (
	"fmt"

	"github.com/mcp-census/apiscan/pkg/shared"
	"github.com/mcp-census/apiscan/pkg/shared/files"
)

// validateReportArgs validates the arguments provided to the report command.
func validateReportArgs(options *RunOptionsReport, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("invalid argument(s) received, the report command takes flags only")
	}

	if options.InputPath == "" {
		return fmt.Errorf("the 'input' flag must be specified")
	}
	if err := files.ValidatePath(options.InputPath); err != nil {
		return fmt.Errorf("failed to validate input path %q: %w", options.InputPath, err)
	}

	formats := []string{FormatMarkdown, FormatSarif}
	if !shared.IsInList(options.Format, formats) {
		return fmt.Errorf("unknown format: %v", options.Format)
	}

	if options.MetadataPath != "" {
		if err := files.ValidatePath(options.MetadataPath); err != nil {
			return fmt.Errorf("failed to validate metadata path %q: %w", options.MetadataPath, err)
		}
	}
	return nil
}
