package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-census/apiscan/internal/rules"
)

func goScanner(t *testing.T) *GoASTScanner {
	t.Helper()
	ruleSet, err := rules.NewRegistry().RuleSet(rules.LanguageGo)
	require.NoError(t, err)
	return NewGoASTScanner(ruleSet)
}

func TestGoASTScannerFindsCalls(t *testing.T) {
	src := []byte(`package main

import (
	"net/http"
	"os/exec"
)

func fetch(url string) {
	http.Get(url)
}

func run(name string) {
	cmd := exec.Command(name)
	_ = cmd
}
`)

	findings, err := goScanner(t).Scan("main.go", src)
	require.NoError(t, err)
	require.Len(t, findings, 2)

	assert.Equal(t, "http.Get", findings[0].APIName)
	assert.Equal(t, "fetch", findings[0].Function)
	assert.Equal(t, 9, findings[0].Line)
	assert.Equal(t, 1, findings[0].Column)

	assert.Equal(t, "exec.Command", findings[1].APIName)
	assert.Equal(t, "run", findings[1].Function)
	assert.Equal(t, rules.ThreatCommandExecution, findings[1].Threat)
}

func TestGoASTScannerIgnoresNonCalls(t *testing.T) {
	src := []byte(`package main

// http.Get in a comment must not match.
var label = "http.Get"

func noop() {}
`)

	findings, err := goScanner(t).Scan("main.go", src)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestGoASTScannerFallsBackOnParseError(t *testing.T) {
	src := []byte(`package main

func broken( {
	exec.Command("ls")
`)

	findings, err := goScanner(t).Scan("main.go", src)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "exec.Command", findings[0].APIName)
	assert.Equal(t, 4, findings[0].Line)
}
