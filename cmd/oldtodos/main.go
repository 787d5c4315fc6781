package main

import (
	"github.com/alecthomas/kong"
)

var cli struct {
	Report ReportCmd `cmd:"" default:"withargs" help:"List the oldest TODO comments, by the date of the commit that last changed them."`
}

func main() {
	ctx := kong.Parse(&cli, kongOptions()...)

	err := ctx.Run(newTerminalOutput())
	ctx.FatalIfErrorf(err)
}

func kongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("oldtodos"),
		kong.Description("Find the oldest TODOs in a git repository."),
		kong.ShortUsageOnError(),
		kong.Configuration(kong.JSON, "./.oldtodos.json", "~/.config/oldtodos/config.json"),
	}
}
