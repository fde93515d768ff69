// Package apply drives the fixed update sequence of a configuration run:
// the main _quarto.yml rewrite, the stylesheet variables, the imprint
// document, every templated .qmd file, and finally the build-output marker
// and the run log. Individual misses are logged and skipped; only I/O errors
// bubble up.
package apply

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gisma-courses/web-template/internal/configstore"
	"github.com/gisma-courses/web-template/internal/project"
	"github.com/gisma-courses/web-template/internal/runlog"
)

type applier struct {
	paths *project.Paths
	rec   *configstore.Record
	log   *runlog.Log
}

// Run applies the record to every target file class and flushes the run log.
func Run(paths *project.Paths, rec *configstore.Record, log *runlog.Log) error {
	a := &applier{paths: paths, rec: rec, log: log}

	if err := a.updateQuartoYAML(); err != nil {
		return err
	}
	if err := a.updateStylesheets(); err != nil {
		return err
	}
	if err := a.updateImprint(); err != nil {
		return err
	}
	if err := a.updateTemplatedDocs(); err != nil {
		return err
	}
	if err := a.ensureNoJekyll(); err != nil {
		return err
	}
	return log.Flush(paths.LogPath)
}

// ensureNoJekyll drops an empty .nojekyll marker into the build output
// directory, but only when that directory already exists.
func (a *applier) ensureNoJekyll() error {
	if _, err := os.Stat(a.paths.DocsDir); err != nil {
		return nil
	}
	marker := filepath.Join(a.paths.DocsDir, ".nojekyll")
	if err := os.WriteFile(marker, nil, 0o644); err != nil {
		return err
	}
	a.log.Printf("ensure docs/.nojekyll")
	return nil
}

// readText loads a target file fully into memory; (text, true) on success.
func (a *applier) readText(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// writeIfChanged writes text back only when it differs from orig.
func writeIfChanged(path, orig, text string) (bool, error) {
	if text == orig {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return false, err
	}
	slog.Debug("File rewritten", "path", path)
	return true, nil
}
