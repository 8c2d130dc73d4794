package scan

import (
	"fmt"
	"os"
)

// validateScanArgs validates the arguments provided to the scan command.
func validateScanArgs(options *RunOptionsScan, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one positional argument is required: the directory to scan")
	}

	info, err := os.Stat(args[0])
	if err != nil {
		return fmt.Errorf("scan root %q is not accessible: %w", args[0], err)
	}
	if !info.IsDir() {
		return fmt.Errorf("scan root %q is not a directory", args[0])
	}

	if options.MaxRepos < 0 {
		return fmt.Errorf("the 'max-repos' flag must not be negative")
	}
	if options.Threads < 0 {
		return fmt.Errorf("the 'threads' flag must not be negative")
	}

	if options.MetadataPath != "" {
		if _, err := os.Stat(options.MetadataPath); err != nil {
			return fmt.Errorf("metadata file %q is not accessible: %w", options.MetadataPath, err)
		}
	}
	return nil
}
