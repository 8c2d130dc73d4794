package rules

import (
	"fmt"
	"sort"
)

// ThreatCategory classifies what kind of attack a dangerous API enables.
type ThreatCategory string

const (
	ThreatCommandExecution     ThreatCategory = "COMMAND_EXECUTION"
	ThreatFileOperation        ThreatCategory = "FILE_OPERATION"
	ThreatCodeInjection        ThreatCategory = "CODE_INJECTION"
	ThreatDeserialization      ThreatCategory = "DESERIALIZATION"
	ThreatDatabaseOperation    ThreatCategory = "DATABASE_OPERATION"
	ThreatNetworkRequest       ThreatCategory = "NETWORK_REQUEST"
	ThreatMemorySafety         ThreatCategory = "MEMORY_SAFETY"
	ThreatXSS                  ThreatCategory = "XSS"
	ThreatXXE                  ThreatCategory = "XXE"
	ThreatDynamicLoading       ThreatCategory = "DYNAMIC_LOADING"
	ThreatCryptoWeakness       ThreatCategory = "CRYPTO_WEAKNESS"
	ThreatWeakEncryption       ThreatCategory = "WEAK_ENCRYPTION"
	ThreatInsecureRandom       ThreatCategory = "INSECURE_RANDOM"
	ThreatPrivilegeEscalation  ThreatCategory = "PRIVILEGE_ESCALATION"
	ThreatEnvManipulation      ThreatCategory = "ENVIRONMENT_MANIPULATION"
	ThreatResourceExhaustion   ThreatCategory = "RESOURCE_EXHAUSTION"
	ThreatProcessManipulation  ThreatCategory = "PROCESS_MANIPULATION"
	ThreatInsecureTempFile     ThreatCategory = "INSECURE_TEMP_FILE"
	ThreatMemoryCorruption     ThreatCategory = "MEMORY_CORRUPTION"
	ThreatUnknown              ThreatCategory = "UNKNOWN"
)

// ResourceCategory classifies which host resource an API touches.
type ResourceCategory string

const (
	ResourceSystem  ResourceCategory = "SYSTEM_RESOURCE"
	ResourceFile    ResourceCategory = "FILE_RESOURCE"
	ResourceNetwork ResourceCategory = "NETWORK_RESOURCE"
	ResourceMemory  ResourceCategory = "MEMORY_RESOURCE"
	ResourceUnknown ResourceCategory = "UNKNOWN"
)

// APIRule describes one dangerous API pattern for a language.
type APIRule struct {
	Name        string
	Description string
	Threat      ThreatCategory
	Resource    ResourceCategory
}

// RuleSet holds the dangerous API table for a single language.
type RuleSet struct {
	language Language
	rules    map[string]APIRule
	names    []string
}

func newRuleSet(language Language, rules []APIRule) *RuleSet {
	rs := &RuleSet{
		language: language,
		rules:    make(map[string]APIRule, len(rules)),
		names:    make([]string, 0, len(rules)),
	}
	for _, r := range rules {
		if _, exists := rs.rules[r.Name]; exists {
			continue
		}
		rs.rules[r.Name] = r
		rs.names = append(rs.names, r.Name)
	}
	sort.Strings(rs.names)
	return rs
}

// Language returns the language this set applies to.
func (rs *RuleSet) Language() Language { return rs.language }

// Names returns all dangerous API names in deterministic order.
func (rs *RuleSet) Names() []string { return rs.names }

// Lookup returns the rule for the given API name.
func (rs *RuleSet) Lookup(name string) (APIRule, bool) {
	r, ok := rs.rules[name]
	return r, ok
}

// Describe returns the description of a known API, or a placeholder text.
func (rs *RuleSet) Describe(name string) string {
	if r, ok := rs.rules[name]; ok {
		return r.Description
	}
	return "unknown dangerous API"
}

// Threat returns the threat category for an API name, UNKNOWN when unlisted.
func (rs *RuleSet) Threat(name string) ThreatCategory {
	if r, ok := rs.rules[name]; ok {
		return r.Threat
	}
	return ThreatUnknown
}

// Resource returns the resource category for an API name, UNKNOWN when unlisted.
func (rs *RuleSet) Resource(name string) ResourceCategory {
	if r, ok := rs.rules[name]; ok {
		return r.Resource
	}
	return ResourceUnknown
}

// ErrUnsupportedLanguage is returned when no rule table exists for a language.
type ErrUnsupportedLanguage struct {
	Language Language
}

func (e *ErrUnsupportedLanguage) Error() string {
	return fmt.Sprintf("no dangerous API rules for language %q", e.Language)
}

// Registry maps languages to their rule sets.
type Registry struct {
	sets map[Language]*RuleSet
}

// NewRegistry builds the registry with the built-in rule tables.
// C and C++ share one table since the dangerous surface is the same libc
// and platform API surface.
func NewRegistry() *Registry {
	cfamily := cFamilyRules()
	return &Registry{
		sets: map[Language]*RuleSet{
			LanguagePython:     newRuleSet(LanguagePython, pythonRules()),
			LanguageTypeScript: newRuleSet(LanguageTypeScript, typeScriptRules()),
			LanguageRust:       newRuleSet(LanguageRust, rustRules()),
			LanguageGo:         newRuleSet(LanguageGo, goRules()),
			LanguageJava:       newRuleSet(LanguageJava, javaRules()),
			LanguageC:          newRuleSet(LanguageC, cfamily),
			LanguageCPP:        newRuleSet(LanguageCPP, cfamily),
			LanguageCSharp:     newRuleSet(LanguageCSharp, cSharpRules()),
			LanguagePHP:        newRuleSet(LanguagePHP, phpRules()),
			LanguageRuby:       newRuleSet(LanguageRuby, rubyRules()),
			LanguageSwift:      newRuleSet(LanguageSwift, swiftRules()),
			LanguageKotlin:     newRuleSet(LanguageKotlin, kotlinRules()),
		},
	}
}

// RuleSet returns the table for a language or ErrUnsupportedLanguage.
func (r *Registry) RuleSet(language Language) (*RuleSet, error) {
	rs, ok := r.sets[language]
	if !ok {
		return nil, &ErrUnsupportedLanguage{Language: language}
	}
	return rs, nil
}

// Languages returns all languages with a rule table in deterministic order.
func (r *Registry) Languages() []Language {
	languages := make([]Language, 0, len(r.sets))
	for l := range r.sets {
		languages = append(languages, l)
	}
	sort.Slice(languages, func(i, j int) bool { return languages[i] < languages[j] })
	return languages
}
