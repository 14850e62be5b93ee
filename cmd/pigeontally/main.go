package main

import (
	"os"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `default:"warn" enum:"debug,info,warn,error" help:"Log level (${enum})"`

	Score ScoreCmd `cmd:"" default:"withargs" help:"Tally wins, losses and draws in an exported transcript"`
	Rules RulesCmd `cmd:"" help:"Print the active rule table"`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("pigeontally"),
		kong.Description("Count GamePigeon wins, losses and draws in an iMessage export"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logger, err := SetupLogger(cli.LogLevel)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&app{stdout: os.Stdout, logger: logger})
	ctx.FatalIfErrorf(err)
}
