package main

import (
	"github.com/alecthomas/kong"

	"github.com/gisma-courses/web-template/cmd/siteconfig/commands"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("siteconfig"),
		kong.Description("Apply site-config.yaml to the project template files."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&commands.Global{}, cli))
}
