package scan

import (
	"unicode/utf8"

	"github.com/mcp-census/apiscan/internal/rules"
)

// Scanner analyzes a single source file and reports dangerous API findings.
type Scanner interface {
	Scan(path string, src []byte) ([]Finding, error)
}

// ForLanguage returns the scanner for the given language. Go sources get the
// AST scanner, everything else the text-based line scanner.
func ForLanguage(registry *rules.Registry, language rules.Language) (Scanner, error) {
	ruleSet, err := registry.RuleSet(language)
	if err != nil {
		return nil, err
	}
	if language == rules.LanguageGo {
		return NewGoASTScanner(ruleSet), nil
	}
	return NewLineScanner(language, ruleSet), nil
}

// ScanFile runs the scanner appropriate for the language over src. Content
// that is not valid UTF-8 is skipped silently, matching the behavior for
// binary files that slipped through the extension filter.
func ScanFile(registry *rules.Registry, language rules.Language, path string, src []byte) ([]Finding, error) {
	if !utf8.Valid(src) {
		return nil, nil
	}
	scanner, err := ForLanguage(registry, language)
	if err != nil {
		return nil, err
	}
	return scanner.Scan(path, src)
}
