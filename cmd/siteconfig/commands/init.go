package commands

import (
	"fmt"

	"github.com/gisma-courses/web-template/internal/configstore"
	"github.com/gisma-courses/web-template/internal/schema"
)

// InitCmd writes a starter site-config.yaml populated with the schema
// defaults, ready to be edited and applied.
type InitCmd struct {
	Path  string `arg:"" optional:"" default:"site-config.yaml" type:"path" help:"Where to write the starter config"`
	Force bool   `help:"Overwrite an existing file"`
}

// Run executes the init command.
func (i *InitCmd) Run(_ *Global, _ *CLI) error {
	if fileExists(i.Path) && !i.Force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", i.Path)
	}

	rec := configstore.NewRecord()
	for _, f := range schema.Fields {
		rec.Set(f.Key, f.Default)
	}
	if err := configstore.Save(i.Path, rec); err != nil {
		return err
	}
	fmt.Printf("Wrote starter configuration to %s\n", i.Path)
	return nil
}
