package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copyops/copycheck/pkg/rules"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "empty config",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "known categories",
			config: Config{
				Categories: map[string]bool{"numbers": false, "times": true},
			},
			wantErr: false,
		},
		{
			name: "unknown category",
			config: Config{
				Categories: map[string]bool{"speling": false},
			},
			wantErr: true,
			errMsg:  "unknown category",
		},
		{
			name:    "negative word count target",
			config:  Config{TargetWordCount: -1},
			wantErr: true,
			errMsg:  "target_word_count",
		},
		{
			name:    "negative reading level target",
			config:  Config{TargetReadingLevel: -0.5},
			wantErr: true,
			errMsg:  "target_reading_level",
		},
		{
			name:    "negative workers",
			config:  Config{Workers: -2},
			wantErr: true,
			errMsg:  "workers",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	cfg := &Config{
		Categories: map[string]bool{"branding": false},
		Exclusions: []string{"AT&T", "Barnes & Noble"},
		DigitalTerms: []rules.Replacement{
			{Wrong: "cyber space", Correct: "cyberspace"},
		},
		Trademarks:         []string{"Gia"},
		Locale:             "en-US",
		TargetWordCount:    350,
		TargetReadingLevel: 8,
		Keywords:           []string{"health insurance"},
		Workers:            4,
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("categories: [not a map"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadWithEnv_MissingFileDefaults(t *testing.T) {
	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestConfig_LoadFromEnv(t *testing.T) {
	t.Setenv("COPYCHECK_LOCALE", "en-GB")
	t.Setenv("COPYCHECK_WORKERS", "3")
	t.Setenv("COPYCHECK_EXCLUSIONS", "AT&T, Barnes & Noble ,")

	var cfg Config
	cfg.LoadFromEnv()

	assert.Equal(t, "en-GB", cfg.Locale)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, []string{"AT&T", "Barnes & Noble"}, cfg.Exclusions)
}

func TestConfig_LoadFromEnv_IgnoresBadWorkers(t *testing.T) {
	t.Setenv("COPYCHECK_WORKERS", "many")

	cfg := Config{Workers: 2}
	cfg.LoadFromEnv()
	assert.Equal(t, 2, cfg.Workers)
}

func TestDefaultConfigPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "copycheck", "config.yml"), DefaultConfigPath())
}

func TestConfig_PipelineConfig(t *testing.T) {
	cfg := Config{
		Categories:         map[string]bool{"numbers": false},
		Keywords:           []string{"dental"},
		TargetWordCount:    200,
		TargetReadingLevel: 9,
		Workers:            2,
	}

	pc := cfg.PipelineConfig()
	assert.False(t, pc.Enabled(rules.CategoryNumber))
	assert.True(t, pc.Enabled(rules.CategoryTime))
	assert.Equal(t, []string{"dental"}, pc.Analysis.Keywords)
	assert.Equal(t, 200, pc.Analysis.TargetWordCount)
	assert.Equal(t, 2, pc.Workers)
}

func TestConfig_RuleSet(t *testing.T) {
	cfg := Config{Exclusions: []string{"AT&T"}}

	rs := cfg.RuleSet()
	require.NotNil(t, rs)
	assert.Equal(t, []string{"AT&T"}, rs.Exclusions().Terms())
	assert.NotEmpty(t, rs.Rules())
}
