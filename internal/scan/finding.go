package scan

import (
	"github.com/mcp-census/apiscan/internal/rules"
)

// ModuleLevel is the enclosing function name reported for findings that
// occur outside any function body.
const ModuleLevel = "<module>"

// Finding records one dangerous API occurrence in a source file.
// Line is 1-based, Column is a 0-based byte offset within the line.
type Finding struct {
	FilePath    string                 `json:"file"`
	Line        int                    `json:"line"`
	Column      int                    `json:"column"`
	APIName     string                 `json:"api_name"`
	Function    string                 `json:"function"`
	Description string                 `json:"description"`
	Threat      rules.ThreatCategory   `json:"threat_type"`
	Resource    rules.ResourceCategory `json:"resource_type"`
}
