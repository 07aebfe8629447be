package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `a:
    b: 1
    c: 2
d: 4
`

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestFlattenCommand(t *testing.T) {
	path := writeDoc(t, "a.md", sampleDoc)

	code, out, _ := runCLI(t, "flatten", path)
	require.Equal(t, 0, code)
	assert.Equal(t, "a:\na:b: 1\na:c: 2\nd: 4\n", out)
}

func TestFlattenCommandJSON(t *testing.T) {
	path := writeDoc(t, "a.md", sampleDoc)

	code, out, _ := runCLI(t, "--format", "json", "flatten", path)
	require.Equal(t, 0, code)
	assert.JSONEq(t, `[["a:"],["a:","b: 1"],["a:","c: 2"],["d: 4"]]`, out)
}

func TestTableCommand(t *testing.T) {
	path := writeDoc(t, "a.md", sampleDoc)

	code, out, _ := runCLI(t, "table", path)
	require.Equal(t, 0, code)
	assert.Equal(t, "a:b: 1\na:c: 2\nd: 4\n", out)
}

func TestDictCommand(t *testing.T) {
	path := writeDoc(t, "a.md", sampleDoc)

	code, out, _ := runCLI(t, "dict", path)
	require.Equal(t, 0, code)
	assert.Equal(t, "a.b: 1\na.c: 2\nd: 4\n", out)

	code, out, _ = runCLI(t, "-f", "yaml", "dict", path)
	require.Equal(t, 0, code)
	assert.Equal(t, "a.b: 1\na.c: 2\nd: 4\n", out)
}

func TestDictCommandMergesFiles(t *testing.T) {
	base := writeDoc(t, "base.md", sampleDoc)
	override := writeDoc(t, "override.md", "a:\n  c: 20\ne: new\n")

	code, out, _ := runCLI(t, "--format", "json", "dict", base, override)
	require.Equal(t, 0, code)
	assert.Equal(t, "{\n  \"a.b\": 1,\n  \"a.c\": 20,\n  \"d\": 4,\n  \"e\": \"new\"\n}\n", out)
}

func TestGetCommand(t *testing.T) {
	path := writeDoc(t, "a.md", sampleDoc)

	t.Run("value", func(t *testing.T) {
		code, out, _ := runCLI(t, "get", path, "a.b")
		require.Equal(t, 0, code)
		assert.Equal(t, "1\n", out)
	})

	t.Run("section", func(t *testing.T) {
		code, out, _ := runCLI(t, "--format", "json", "get", path, "a")
		require.Equal(t, 0, code)
		assert.JSONEq(t, `{"b": 1, "c": 2}`, out)
	})

	t.Run("default", func(t *testing.T) {
		code, out, _ := runCLI(t, "get", "--default", "42", path, "missing.path")
		require.Equal(t, 0, code)
		assert.Equal(t, "42\n", out)
	})

	t.Run("missing", func(t *testing.T) {
		code, out, errOut := runCLI(t, "get", path, "missing.path")
		assert.Equal(t, 1, code)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "key not found")
	})
}

func TestNestCommand(t *testing.T) {
	path := writeDoc(t, "a.md", sampleDoc)

	code, out, _ := runCLI(t, "nest", path)
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{"a": {"b": 1, "c": 2}, "d": 4}`, out)
}

func TestFmtCommand(t *testing.T) {
	path := writeDoc(t, "a.md", "a:\n    b: 1\n    c:\n        d: 2.5\n")

	code, out, _ := runCLI(t, "fmt", path)
	require.Equal(t, 0, code)
	assert.Equal(t, "a:\n    b: 1\n    c:\n        d: 2.5\n", out)

	code, out, _ = runCLI(t, "fmt", "--unit", `\t`, path)
	require.Equal(t, 0, code)
	assert.Equal(t, "a:\n\tb: 1\n\tc:\n\t\td: 2.5\n", out)
}

func TestFmtCommandRejectsColonKey(t *testing.T) {
	path := writeDoc(t, "a.md", "a\n  f:1\n    g: 3\n")

	code, out, errOut := runCLI(t, "fmt", path)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "a.f:1.g")
}

func TestIndentFlag(t *testing.T) {
	path := writeDoc(t, "a.md", "a:\n    b:\n        c: 1\n")

	code, _, errOut := runCLI(t, "--indent", "  ", "dict", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "indent level")
}

func TestFormatFromEnv(t *testing.T) {
	t.Setenv("MDCFG_FORMAT", "json")
	path := writeDoc(t, "a.md", sampleDoc)

	code, out, _ := runCLI(t, "get", path, "d")
	require.Equal(t, 0, code)
	assert.Equal(t, "4\n", out)
}

func TestVerboseLogsToStderr(t *testing.T) {
	path := writeDoc(t, "a.md", sampleDoc)

	code, _, errOut := runCLI(t, "-v", "dict", path)
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "indent unit detected")
}

func TestUnreadableFile(t *testing.T) {
	code, _, errOut := runCLI(t, "flatten", filepath.Join(t.TempDir(), "nope.md"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "source unavailable")
}

func TestBadUsage(t *testing.T) {
	code, _, _ := runCLI(t, "nosuchcommand")
	assert.Equal(t, 2, code)
}
