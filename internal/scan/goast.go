package scan

import (
	"go/ast"
	"go/parser"
	"go/token"

	"github.com/mcp-census/apiscan/internal/rules"
)

// GoASTScanner analyzes Go sources through the parsed syntax tree, which
// gives exact call sites instead of substring matches. Files that fail to
// parse fall back to the line scanner.
type GoASTScanner struct {
	ruleSet  *rules.RuleSet
	fallback *LineScanner
}

// NewGoASTScanner builds an AST-based scanner for Go sources.
func NewGoASTScanner(ruleSet *rules.RuleSet) *GoASTScanner {
	return &GoASTScanner{
		ruleSet:  ruleSet,
		fallback: NewLineScanner(rules.LanguageGo, ruleSet),
	}
}

// Scan parses src and reports every call expression that resolves to a
// dangerous API.
func (s *GoASTScanner) Scan(path string, src []byte) ([]Finding, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, 0)
	if err != nil {
		return s.fallback.Scan(path, src)
	}

	var findings []Finding

	for _, decl := range file.Decls {
		function := ModuleLevel
		if funcDecl, ok := decl.(*ast.FuncDecl); ok {
			function = funcDecl.Name.Name
		}

		ast.Inspect(decl, func(node ast.Node) bool {
			call, ok := node.(*ast.CallExpr)
			if !ok {
				return true
			}
			name := callName(call)
			if name == "" {
				return true
			}
			rule, ok := s.ruleSet.Lookup(name)
			if !ok {
				return true
			}
			position := fset.Position(call.Pos())
			findings = append(findings, Finding{
				FilePath:    path,
				Line:        position.Line,
				Column:      position.Column - 1,
				APIName:     name,
				Function:    function,
				Description: rule.Description,
				Threat:      rule.Threat,
				Resource:    rule.Resource,
			})
			return true
		})
	}

	return findings, nil
}

// callName renders a call target as "name" or "pkg.Name". Chained or
// computed call targets are skipped.
func callName(call *ast.CallExpr) string {
	switch fun := call.Fun.(type) {
	case *ast.Ident:
		return fun.Name
	case *ast.SelectorExpr:
		if pkg, ok := fun.X.(*ast.Ident); ok {
			return pkg.Name + "." + fun.Sel.Name
		}
	}
	return ""
}
