// Package config loads taskmill configuration from its layered sources.
package config

import (
	"os"
	"path/filepath"

	"taskmill.dev/cli/internal/core/rng"
	"taskmill.dev/cli/internal/plugins/random"
)

// Configuration holds every runtime setting the CLI consumes
type Configuration struct {
	// Plugins is the ordered list of plugins applied to each project.
	Plugins []string `json:"plugins"`

	// RNGAlgorithm names the provider the random task draws from.
	RNGAlgorithm string `json:"rng_algorithm"`

	// RNGSeed fixes the provider seed; 0 means time-derived entropy.
	RNGSeed uint64 `json:"rng_seed"`

	// RegistryURL is the remote plugin index endpoint.
	RegistryURL string `json:"registry_url"`

	// PluginDirs are the directories scanned for plugin manifests.
	PluginDirs []string `json:"plugin_dirs"`

	// Debug enables debug-level logging.
	Debug bool `json:"debug"`
}

// Default returns the configuration used when no source overrides anything
func Default() *Configuration {
	return &Configuration{
		Plugins:      []string{random.PluginName},
		RNGAlgorithm: rng.DefaultAlgorithm,
		RNGSeed:      0,
		RegistryURL:  "https://registry.taskmill.dev",
		PluginDirs:   []string{"~/.taskmill/plugins", "./plugins"},
		Debug:        false,
	}
}

// DefaultConfigPath returns the path of the user config file, honoring the
// TM_CONFIG_FILE override
func DefaultConfigPath() string {
	if path := os.Getenv("TM_CONFIG_FILE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".taskmill", "config.json")
	}
	return filepath.Join(home, ".taskmill", "config.json")
}
