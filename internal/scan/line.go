package scan

import (
	"regexp"
	"strings"

	"github.com/mcp-census/apiscan/internal/rules"
)

// functionPatterns extract the name of a function definition per language.
// The first non-empty capture group carries the name.
var functionPatterns = map[rules.Language]*regexp.Regexp{
	rules.LanguagePython:     regexp.MustCompile(`def\s+(\w+)\s*\(`),
	rules.LanguageTypeScript: regexp.MustCompile(`function\s+(\w+)|(\w+)\s*=\s*function|(\w+)\s*=\s*(?:async\s+)?\([^)]*\)\s*=>|(\w+)\s*\([^)]*\)\s*=>|^\s*(\w+)\s*\([^)]*\)\s*\{`),
	rules.LanguageJava:       regexp.MustCompile(`(?:public|private|protected|static|\s)+[\w<>\[\]]+\s+(\w+)\s*\([^)]*\)\s*(?:\{|[^;])`),
	rules.LanguageC:          regexp.MustCompile(`[\w<>\[\]]+\s+(\w+)\s*\([^)]*\)\s*(?:\{|[^;])`),
	rules.LanguageCPP:        regexp.MustCompile(`[\w<>\[\]]+\s+(\w+)\s*\([^)]*\)\s*(?:\{|[^;])`),
	rules.LanguageCSharp:     regexp.MustCompile(`(?:public|private|protected|internal|static|\s)+[\w<>\[\]]+\s+(\w+)\s*\([^)]*\)\s*(?:\{|[^;])`),
	rules.LanguageRust:       regexp.MustCompile(`fn\s+(\w+)\s*\(`),
	rules.LanguageGo:         regexp.MustCompile(`func\s+(\w+)\s*\(`),
	rules.LanguagePHP:        regexp.MustCompile(`function\s+(\w+)\s*\(`),
	rules.LanguageRuby:       regexp.MustCompile(`def\s+(\w+)\s*(?:\(|$)`),
	rules.LanguageSwift:      regexp.MustCompile(`func\s+(\w+)\s*\(`),
	rules.LanguageKotlin:     regexp.MustCompile(`fun\s+(\w+)\s*\(`),
}

// LineScanner is the text-based fallback scanner. It walks a file line by
// line, tracks the most recent function definition for context and matches
// every dangerous API of the language's rule set against each line.
type LineScanner struct {
	language rules.Language
	ruleSet  *rules.RuleSet
	funcRe   *regexp.Regexp
	comment  string
}

// NewLineScanner builds a line scanner for the given language.
func NewLineScanner(language rules.Language, ruleSet *rules.RuleSet) *LineScanner {
	return &LineScanner{
		language: language,
		ruleSet:  ruleSet,
		funcRe:   functionPatterns[language],
		comment:  language.CommentMarker(),
	}
}

// Scan analyzes src and returns all dangerous API findings.
func (s *LineScanner) Scan(path string, src []byte) ([]Finding, error) {
	var findings []Finding

	currentFunction := ModuleLevel
	lines := strings.Split(string(src), "\n")

	for i, line := range lines {
		if s.funcRe != nil {
			if name := firstGroup(s.funcRe, line); name != "" {
				currentFunction = name
			}
		}

		stripped := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(stripped, s.comment) {
			continue
		}

		for _, api := range s.ruleSet.Names() {
			column, ok := MatchAPI(api, line)
			if !ok {
				continue
			}
			findings = append(findings, Finding{
				FilePath:    path,
				Line:        i + 1,
				Column:      column,
				APIName:     api,
				Function:    currentFunction,
				Description: s.ruleSet.Describe(api),
				Threat:      s.ruleSet.Threat(api),
				Resource:    s.ruleSet.Resource(api),
			})
		}
	}

	return findings, nil
}

// firstGroup returns the first non-empty capture group of the match.
func firstGroup(re *regexp.Regexp, line string) string {
	match := re.FindStringSubmatch(line)
	if match == nil {
		return ""
	}
	for _, g := range match[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}
