package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-census/apiscan/internal/rules"
)

func pythonScanner(t *testing.T) *LineScanner {
	t.Helper()
	ruleSet, err := rules.NewRegistry().RuleSet(rules.LanguagePython)
	require.NoError(t, err)
	return NewLineScanner(rules.LanguagePython, ruleSet)
}

func TestLineScannerTracksCurrentFunction(t *testing.T) {
	src := []byte(`import os

os.system("ls")

def handler(request):
    eval(request.body)
`)

	findings, err := pythonScanner(t).Scan("server.py", src)
	require.NoError(t, err)
	require.Len(t, findings, 2)

	assert.Equal(t, "os.system", findings[0].APIName)
	assert.Equal(t, 3, findings[0].Line)
	assert.Equal(t, 0, findings[0].Column)
	assert.Equal(t, ModuleLevel, findings[0].Function)

	assert.Equal(t, "eval", findings[1].APIName)
	assert.Equal(t, 6, findings[1].Line)
	assert.Equal(t, 4, findings[1].Column)
	assert.Equal(t, "handler", findings[1].Function)
	assert.Equal(t, rules.ThreatCodeInjection, findings[1].Threat)
}

func TestLineScannerSkipsComments(t *testing.T) {
	src := []byte(`# os.system("ls")
    # eval(x)
os.system("ls")
`)

	findings, err := pythonScanner(t).Scan("server.py", src)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, 3, findings[0].Line)
}

func TestLineScannerRejectsPartialIdentifiers(t *testing.T) {
	src := []byte(`def run():
    evaluate(x)
    my_eval(y)
`)

	findings, err := pythonScanner(t).Scan("server.py", src)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestLineScannerTypeScriptFunctionForms(t *testing.T) {
	ruleSet, err := rules.NewRegistry().RuleSet(rules.LanguageTypeScript)
	require.NoError(t, err)
	scanner := NewLineScanner(rules.LanguageTypeScript, ruleSet)

	src := []byte(`function start() {
  eval(payload);
}
const run = (input) => {
  eval(input);
}
`)

	findings, err := scanner.Scan("index.ts", src)
	require.NoError(t, err)
	require.Len(t, findings, 2)
	assert.Equal(t, "start", findings[0].Function)
	assert.Equal(t, "run", findings[1].Function)
}

func TestLineScannerRubyCommentMarker(t *testing.T) {
	ruleSet, err := rules.NewRegistry().RuleSet(rules.LanguageRuby)
	require.NoError(t, err)
	scanner := NewLineScanner(rules.LanguageRuby, ruleSet)

	src := []byte(`# eval("1 + 1")
def run
  eval(code)
end
`)

	findings, err := scanner.Scan("job.rb", src)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "run", findings[0].Function)
}
