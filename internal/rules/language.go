package rules

import "strings"

// Language identifies a programming language supported by the scanner.
type Language string

const (
	LanguagePython     Language = "python"
	LanguageTypeScript Language = "typescript"
	LanguageRust       Language = "rust"
	LanguageGo         Language = "go"
	LanguageJava       Language = "java"
	LanguageC          Language = "c"
	LanguageCPP        Language = "cpp"
	LanguageCSharp     Language = "csharp"
	LanguagePHP        Language = "php"
	LanguageRuby       Language = "ruby"
	LanguageSwift      Language = "swift"
	LanguageKotlin     Language = "kotlin"
	LanguageUnknown    Language = "unknown"
)

// extensionMap resolves a lowercased file extension to a language.
// JavaScript files share the TypeScript table.
var extensionMap = map[string]Language{
	".py":  LanguagePython,
	".pyw": LanguagePython,
	".pyx": LanguagePython,
	".pxd": LanguagePython,

	".ts":  LanguageTypeScript,
	".tsx": LanguageTypeScript,
	".js":  LanguageTypeScript,
	".jsx": LanguageTypeScript,
	".mjs": LanguageTypeScript,

	".rs":   LanguageRust,
	".rlib": LanguageRust,

	".go": LanguageGo,

	".java": LanguageJava,

	".c":   LanguageC,
	".h":   LanguageC,
	".cpp": LanguageCPP,
	".cc":  LanguageCPP,
	".hpp": LanguageCPP,

	".cs": LanguageCSharp,

	".rb":   LanguageRuby,
	".rake": LanguageRuby,

	".php": LanguagePHP,

	".swift": LanguageSwift,

	".kt":  LanguageKotlin,
	".kts": LanguageKotlin,
}

// LanguageByExtension maps a file extension (with leading dot) to a language.
// Unrecognized extensions yield LanguageUnknown.
func LanguageByExtension(ext string) Language {
	if l, ok := extensionMap[strings.ToLower(ext)]; ok {
		return l
	}
	return LanguageUnknown
}

// ParseLanguage interprets a user-supplied language name.
func ParseLanguage(s string) Language {
	switch strings.ToLower(s) {
	case "python", "py":
		return LanguagePython
	case "typescript", "javascript", "ts", "js":
		return LanguageTypeScript
	case "rust", "rs":
		return LanguageRust
	case "go", "golang":
		return LanguageGo
	case "java":
		return LanguageJava
	case "c":
		return LanguageC
	case "cpp", "c++":
		return LanguageCPP
	case "csharp", "c#", "cs":
		return LanguageCSharp
	case "php":
		return LanguagePHP
	case "ruby", "rb":
		return LanguageRuby
	case "swift":
		return LanguageSwift
	case "kotlin", "kt":
		return LanguageKotlin
	default:
		return LanguageUnknown
	}
}

// CommentMarker returns the single-line comment marker used when the
// line scanner skips commented-out code.
func (l Language) CommentMarker() string {
	switch l {
	case LanguagePython, LanguageRuby:
		return "#"
	default:
		return "//"
	}
}
