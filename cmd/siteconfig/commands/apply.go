package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gisma-courses/web-template/internal/apply"
	"github.com/gisma-courses/web-template/internal/configstore"
	"github.com/gisma-courses/web-template/internal/project"
	"github.com/gisma-courses/web-template/internal/runlog"
	"github.com/gisma-courses/web-template/internal/schema"
)

// ApplyCmd implements the 'apply' command: load config, fill missing values,
// rewrite the project files, flush the run log.
type ApplyCmd struct {
	Interactive    bool   `short:"i" xor:"mode" help:"Ask for missing values"`
	Noninteractive bool   `short:"n" xor:"mode" help:"No prompts; fail if required values are missing (default)"`
	Config         string `short:"c" type:"path" help:"Path to site-config.yaml"`
	Root           string `default:"." type:"path" help:"Project root directory"`
}

// Run executes the apply command.
func (a *ApplyCmd) Run(_ *Global, _ *CLI) error {
	paths, err := project.Resolve(a.Root, a.Config)
	if err != nil {
		return err
	}

	configstore.LoadEnvOverrides(paths.Root)

	rec, err := configstore.Load(paths.ConfigPath)
	if err != nil {
		return err
	}

	log := runlog.New()

	existed := fileExists(paths.ConfigPath)
	changed, err := schema.Resolve(rec, schema.Options{
		Interactive: a.Interactive && !a.Noninteractive,
		Input:       os.Stdin,
		Output:      os.Stdout,
	})
	if err != nil {
		return err
	}

	if changed || !existed {
		if err := configstore.Save(paths.ConfigPath, rec); err != nil {
			return err
		}
		log.Printf("save config -> %s", paths.ConfigPath)
	}

	if err := apply.Run(paths, rec, log); err != nil {
		return err
	}

	slog.Info("Run log written", "path", paths.LogPath)
	fmt.Println("configuration applied. Commit & push to build on CI.")
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
