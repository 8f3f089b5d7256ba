package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("zorder"),
		kong.Description("Keep things in z-order with a binary-search sorted array"),
		kong.UsageOnError(),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)

	ctx.FatalIfErrorf(cli.configureLogging(os.Stderr))
	ctx.FatalIfErrorf(ctx.Run(&cli))
}
