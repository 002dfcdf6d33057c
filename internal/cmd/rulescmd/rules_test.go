package rulescmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRules_Defaults(t *testing.T) {
	opts := &rulesOptions{
		configPath: filepath.Join(t.TempDir(), "config.yml"),
		output:     "plain",
		noColor:    true,
	}
	assert.NoError(t, runRules(opts))
}

func TestRunRules_DisabledCategoryFromConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("categories:\n  numbers: false\n"), 0644))

	opts := &rulesOptions{
		configPath: cfgPath,
		output:     "json",
		noColor:    true,
	}
	assert.NoError(t, runRules(opts))
}

func TestRunRules_InvalidOutputFormat(t *testing.T) {
	opts := &rulesOptions{output: "csv"}
	err := runRules(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}
