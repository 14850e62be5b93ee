package main

import (
	"github.com/lox/pigeontally/internal/report"
	"github.com/lox/pigeontally/internal/tally"
)

// ScoreCmd tallies a transcript and prints the summary.
type ScoreCmd struct {
	File string `arg:"" name:"file" type:"path" help:"Path to the exported transcript"`

	TableFlags `embed:""`

	NoColor bool `help:"Disable colored output"`
	Verbose bool `help:"Show lines scanned and elapsed time"`
}

func (cmd *ScoreCmd) Run(rt *app) error {
	table, err := cmd.Table()
	if err != nil {
		return err
	}

	rt.logger.Info("Analyzing GamePigeon results",
		"file", cmd.File,
		"owner", table.Owner,
		"rules", len(table.Rules))

	res, err := tally.NewScorer(table, rt.logger, nil).ScoreFile(cmd.File)
	if err != nil {
		return err
	}

	return report.New(rt.stdout, report.Options{
		Color:   !cmd.NoColor,
		Verbose: cmd.Verbose,
	}).Render(res)
}
