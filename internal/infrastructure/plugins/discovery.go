// Package plugins discovers externally installed plugin manifests.
package plugins

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"taskmill.dev/cli/internal/core/plugin"
)

// manifestSuffix marks the files the scanner treats as plugin manifests.
const manifestSuffix = ".manifest.json"

// FilesystemDiscovery finds plugin manifests by scanning directories.
// It only lists and validates; it never loads or executes anything.
type FilesystemDiscovery struct {
	directories []string
	log         *zap.Logger
}

// NewFilesystemDiscovery creates a FilesystemDiscovery over the given
// directories
func NewFilesystemDiscovery(directories []string, log *zap.Logger) *FilesystemDiscovery {
	return &FilesystemDiscovery{
		directories: directories,
		log:         log,
	}
}

// Discover scans every configured directory for plugin manifests.
// Missing directories are skipped; malformed manifests are logged and
// skipped rather than failing the scan.
func (d *FilesystemDiscovery) Discover(ctx context.Context) ([]plugin.Info, error) {
	var found []plugin.Info

	for _, dir := range d.directories {
		expanded := expandPath(dir)

		entries, err := os.ReadDir(expanded)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("scanning plugin directory %s: %w", expanded, err)
		}
		d.log.Debug("scanning plugin directory", zap.String("dir", expanded))

		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), manifestSuffix) {
				continue
			}

			info, err := d.readManifest(filepath.Join(expanded, entry.Name()))
			if err != nil {
				d.log.Warn("skipping invalid plugin manifest",
					zap.String("file", entry.Name()),
					zap.Error(err),
				)
				continue
			}
			found = append(found, *info)
		}
	}

	return found, nil
}

// readManifest decodes and validates one manifest file
func (d *FilesystemDiscovery) readManifest(path string) (*plugin.Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var info plugin.Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if info.Name == "" {
		return nil, fmt.Errorf("manifest missing plugin name")
	}
	if info.Version == "" {
		return nil, fmt.Errorf("manifest missing plugin version")
	}
	return &info, nil
}

// expandPath resolves a leading ~ to the user home directory
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
