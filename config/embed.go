package config

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultMatchFile is the embedded tuning file.
const DefaultMatchFile = "match.yaml"

//go:embed *.yaml
var ConfigFS embed.FS

// Load reads a config file, preferring a copy on disk so tuning can be
// edited without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanConfigPath(name)
	if data, err := os.ReadFile(diskConfigPath(name)); err == nil {
		return data, nil
	}
	return ConfigFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskConfigPath(name))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanConfigPath(path string) string {
	if path == "" {
		return DefaultMatchFile
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "config/"); ok {
		return after
	}
	return filepath.Base(s)
}

func diskConfigPath(name string) string {
	if name == "" {
		name = DefaultMatchFile
	}
	if filepath.IsAbs(name) || strings.ContainsRune(filepath.ToSlash(name), '/') {
		return filepath.FromSlash(name)
	}
	return filepath.Join("config", name)
}

// DiskPath returns the on-disk location Load checks first.
func DiskPath(name string) string {
	return diskConfigPath(name)
}
