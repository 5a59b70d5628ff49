package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Source is one layer of configuration. Load returns only the fields the
// source knows about; nil fields leave the lower layer's value in place.
type Source interface {
	// Load reads the source's overlay. A missing source returns (nil, nil).
	Load() (*Overlay, error)

	// Name identifies the source in diagnostics.
	Name() string
}

// Overlay carries partial configuration; nil pointers mean "not set".
type Overlay struct {
	Plugins      []string `json:"plugins,omitempty"`
	RNGAlgorithm *string  `json:"rng_algorithm,omitempty"`
	RNGSeed      *uint64  `json:"rng_seed,omitempty"`
	RegistryURL  *string  `json:"registry_url,omitempty"`
	PluginDirs   []string `json:"plugin_dirs,omitempty"`
	Debug        *bool    `json:"debug,omitempty"`
}

// apply copies the overlay's set fields onto cfg
func (o *Overlay) apply(cfg *Configuration) {
	if o == nil {
		return
	}
	if o.Plugins != nil {
		cfg.Plugins = o.Plugins
	}
	if o.RNGAlgorithm != nil {
		cfg.RNGAlgorithm = *o.RNGAlgorithm
	}
	if o.RNGSeed != nil {
		cfg.RNGSeed = *o.RNGSeed
	}
	if o.RegistryURL != nil {
		cfg.RegistryURL = *o.RegistryURL
	}
	if o.PluginDirs != nil {
		cfg.PluginDirs = o.PluginDirs
	}
	if o.Debug != nil {
		cfg.Debug = *o.Debug
	}
}

// FileSource reads JSON configuration from a path
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name identifies the source
func (s *FileSource) Name() string {
	return fmt.Sprintf("file(%s)", s.path)
}

// Load reads and decodes the config file; a missing file is not an error
func (s *FileSource) Load() (*Overlay, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var overlay Overlay
	if err := json.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", s.path, err)
	}
	return &overlay, nil
}

// EnvSource reads configuration overrides from TM_* environment variables
type EnvSource struct{}

// NewEnvSource creates an EnvSource
func NewEnvSource() *EnvSource {
	return &EnvSource{}
}

// Name identifies the source
func (s *EnvSource) Name() string {
	return "environment"
}

// Load reads the TM_* variables that are set
func (s *EnvSource) Load() (*Overlay, error) {
	overlay := &Overlay{}

	if v, ok := os.LookupEnv("TM_PLUGINS"); ok {
		parts := strings.Split(v, ",")
		plugins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				plugins = append(plugins, p)
			}
		}
		overlay.Plugins = plugins
	}
	if v, ok := os.LookupEnv("TM_RNG_ALGORITHM"); ok {
		overlay.RNGAlgorithm = &v
	}
	if v, ok := os.LookupEnv("TM_RNG_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TM_RNG_SEED %q: %w", v, err)
		}
		overlay.RNGSeed = &seed
	}
	if v, ok := os.LookupEnv("TM_REGISTRY_URL"); ok {
		overlay.RegistryURL = &v
	}
	if v, ok := os.LookupEnv("TM_DEBUG"); ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TM_DEBUG %q: %w", v, err)
		}
		overlay.Debug = &debug
	}

	return overlay, nil
}
