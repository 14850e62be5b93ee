package main

import (
	"io"

	"github.com/lox/pigeontally/internal/fileutil"
	"github.com/lox/pigeontally/internal/rules"
)

// RulesCmd prints the active rule table so it can be copied and edited.
type RulesCmd struct {
	TableFlags `embed:""`

	Format string `default:"hcl" enum:"hcl,yaml" help:"Output format (${enum})"`
	Out    string `type:"path" placeholder:"FILE" help:"Write to FILE instead of stdout"`
}

func (cmd *RulesCmd) Run(rt *app) error {
	table, err := cmd.Table()
	if err != nil {
		return err
	}

	format := rules.Format(cmd.Format)
	if cmd.Out == "" {
		return rules.Encode(rt.stdout, table, format)
	}

	err = fileutil.WriteAtomic(cmd.Out, 0644, func(w io.Writer) error {
		return rules.Encode(w, table, format)
	})
	if err != nil {
		return err
	}
	rt.logger.Info("Wrote rule table", "path", cmd.Out, "format", format, "rules", len(table.Rules))
	return nil
}
