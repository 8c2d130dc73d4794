package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-census/apiscan/internal/rules"
)

func TestScanFileSkipsInvalidUTF8(t *testing.T) {
	registry := rules.NewRegistry()

	// A binary blob that slipped through the extension filter, with a
	// dangerous API name embedded in the bytes.
	src := append([]byte{0x89, 0x50, 0x4e, 0x47, 0xff, 0xfe}, []byte("eval(x)")...)

	findings, err := ScanFile(registry, rules.LanguagePython, "app.py", src)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestScanFileValidUTF8StillScans(t *testing.T) {
	registry := rules.NewRegistry()

	findings, err := ScanFile(registry, rules.LanguagePython, "app.py", []byte("eval(x)\n"))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "eval", findings[0].APIName)
}
