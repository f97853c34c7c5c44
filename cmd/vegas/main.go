package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play interactively in the terminal"`
	Deal     DealCmd          `cmd:"" help:"Generate and print a deal"`
	Solve    SolveCmd         `cmd:"" help:"Run the solvability oracle on a deal"`
	Simulate SimulateCmd      `cmd:"" help:"Play many deals automatically and report statistics"`
	Serve    ServeCmd         `cmd:"" help:"Run the WebSocket game server"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("vegas"),
		kong.Description("One-pass solitaire with a wagering economy"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
