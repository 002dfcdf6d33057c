package analyzecmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.yml")
}

func TestRunAnalyze_Success(t *testing.T) {
	path := writeDoc(t, "# Plans\n\nWe cover dental and vision needs.\n")

	opts := &analyzeOptions{
		configPath: missingConfig(t),
		output:     "plain",
		noColor:    true,
	}
	assert.NoError(t, runAnalyze(path, opts))
}

func TestRunAnalyze_KeywordOverride(t *testing.T) {
	path := writeDoc(t, "Dental coverage for the whole family.\n")

	opts := &analyzeOptions{
		keywords:   []string{" dental ", "vision"},
		configPath: missingConfig(t),
		output:     "json",
		noColor:    true,
	}
	assert.NoError(t, runAnalyze(path, opts))
}

func TestRunAnalyze_MissingFile(t *testing.T) {
	opts := &analyzeOptions{
		configPath: missingConfig(t),
		output:     "plain",
		noColor:    true,
	}
	assert.Error(t, runAnalyze(filepath.Join(t.TempDir(), "nope.md"), opts))
}

func TestRunAnalyze_InvalidOutputFormat(t *testing.T) {
	opts := &analyzeOptions{output: "yaml"}
	err := runAnalyze("whatever.md", opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestNewCmdAnalyze_RequiresExactlyOneArg(t *testing.T) {
	cmd := NewCmdAnalyze()
	cmd.SetArgs([]string{"a.md", "b.md"})
	assert.Error(t, cmd.Execute())
}
