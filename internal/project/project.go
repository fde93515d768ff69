// Package project locates the directories and files a configuration run
// operates on. The _quarto.yml build file is the marker that identifies the
// project: it must live either at the root or under ./template.
package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// MarkerFile identifies the Quarto build directory.
const MarkerFile = "_quarto.yml"

// ConfigFileName is the default name of the site configuration record.
const ConfigFileName = "site-config.yaml"

// Paths holds every resolved location for one run.
type Paths struct {
	Root       string // repository root
	Base       string // directory containing _quarto.yml (Root or Root/template)
	ConfigPath string // site-config.yaml location
	LogPath    string // configure.log, always at the root
	DocsDir    string // build output directory (docs/), may not exist
}

// Resolve determines the project layout starting from root. configOverride,
// when non-empty, wins over the default config locations. A missing marker
// file at both candidate locations is fatal.
func Resolve(root, configOverride string) (*Paths, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	var base string
	switch {
	case fileExists(filepath.Join(absRoot, MarkerFile)):
		base = absRoot
	case fileExists(filepath.Join(absRoot, "template", MarkerFile)):
		base = filepath.Join(absRoot, "template")
	default:
		return nil, fmt.Errorf("%s not found (root or ./template)", MarkerFile)
	}

	cfgRoot := filepath.Join(absRoot, ConfigFileName)
	cfgBase := filepath.Join(base, ConfigFileName)
	configPath := cfgRoot
	switch {
	case configOverride != "":
		configPath = configOverride
	case fileExists(cfgRoot):
		configPath = cfgRoot
	case fileExists(cfgBase):
		configPath = cfgBase
	}

	return &Paths{
		Root:       absRoot,
		Base:       base,
		ConfigPath: configPath,
		LogPath:    filepath.Join(absRoot, "configure.log"),
		DocsDir:    filepath.Join(absRoot, "docs"),
	}, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
