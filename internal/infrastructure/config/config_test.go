package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmill.dev/cli/internal/core/rng"
	"taskmill.dev/cli/internal/plugins/random"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestRepository_Load_DefaultsWithoutSources tests the bare defaults
func TestRepository_Load_DefaultsWithoutSources(t *testing.T) {
	repo := NewRepositoryWithSources()

	cfg, err := repo.Load()

	require.NoError(t, err)
	assert.Equal(t, []string{random.PluginName}, cfg.Plugins)
	assert.Equal(t, rng.DefaultAlgorithm, cfg.RNGAlgorithm)
	assert.Zero(t, cfg.RNGSeed)
	assert.False(t, cfg.Debug)
}

// TestRepository_Load_FileOverridesDefaults tests the file layer
func TestRepository_Load_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"rng_algorithm": "chacha8", "rng_seed": 7}`)
	repo := NewRepositoryWithSources(NewFileSource(path))

	cfg, err := repo.Load()

	require.NoError(t, err)
	assert.Equal(t, "chacha8", cfg.RNGAlgorithm)
	assert.Equal(t, uint64(7), cfg.RNGSeed)
	// Untouched fields keep their defaults.
	assert.Equal(t, []string{random.PluginName}, cfg.Plugins)
}

// TestRepository_Load_EnvOverridesFile tests layer precedence
func TestRepository_Load_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `{"rng_algorithm": "chacha8", "debug": true}`)
	t.Setenv("TM_RNG_ALGORITHM", "crypto")
	t.Setenv("TM_PLUGINS", "random-number, other-plugin")

	repo := NewRepositoryWithSources(NewFileSource(path), NewEnvSource())
	cfg, err := repo.Load()

	require.NoError(t, err)
	assert.Equal(t, "crypto", cfg.RNGAlgorithm, "env wins over file")
	assert.True(t, cfg.Debug, "file value survives where env is silent")
	assert.Equal(t, []string{"random-number", "other-plugin"}, cfg.Plugins)
}

// TestRepository_Load_MissingFileIsNotAnError tests the absent-file path
func TestRepository_Load_MissingFileIsNotAnError(t *testing.T) {
	repo := NewRepositoryWithSources(NewFileSource(filepath.Join(t.TempDir(), "absent.json")))

	cfg, err := repo.Load()

	require.NoError(t, err)
	assert.Equal(t, rng.DefaultAlgorithm, cfg.RNGAlgorithm)
}

// TestRepository_Load_MalformedInput_Fails tests invalid sources
func TestRepository_Load_MalformedInput_Fails(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) *Repository
	}{
		{
			name: "MalformedFile",
			setup: func(t *testing.T) *Repository {
				path := writeConfigFile(t, `{not-json`)
				return NewRepositoryWithSources(NewFileSource(path))
			},
		},
		{
			name: "BadSeedEnv",
			setup: func(t *testing.T) *Repository {
				t.Setenv("TM_RNG_SEED", "not-a-number")
				return NewRepositoryWithSources(NewEnvSource())
			},
		},
		{
			name: "BadDebugEnv",
			setup: func(t *testing.T) *Repository {
				t.Setenv("TM_DEBUG", "maybe")
				return NewRepositoryWithSources(NewEnvSource())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.setup(t).Load()
			assert.Error(t, err)
		})
	}
}

// TestDefaultConfigPath_HonorsEnvOverride tests the config path override
func TestDefaultConfigPath_HonorsEnvOverride(t *testing.T) {
	t.Setenv("TM_CONFIG_FILE", "/tmp/custom-taskmill.json")
	assert.Equal(t, "/tmp/custom-taskmill.json", DefaultConfigPath())
}
