package main

import (
	"fmt"

	"github.com/lox/pigeontally/internal/rules"
)

// TableFlags select and adjust the rule table. Flags override values from
// the rule file.
type TableFlags struct {
	RulesFile string `name:"rules" type:"path" placeholder:"FILE" help:"HCL or YAML rule table (default: built-in)"`
	Owner     string `help:"Sender name of the device owner in the export"`
	Opponent  string `help:"Only count results from this counterparty (phone number or name)"`
	Marker    string `help:"Line that announces a game message"`
}

// Table loads the rule table and applies overrides.
func (f TableFlags) Table() (*rules.Table, error) {
	table := rules.Default()
	if f.RulesFile != "" {
		loaded, err := rules.Load(f.RulesFile)
		if err != nil {
			return nil, err
		}
		table = loaded
	}

	if f.Owner != "" {
		table.Owner = f.Owner
	}
	if f.Opponent != "" {
		table.Opponent = f.Opponent
	}
	if f.Marker != "" {
		table.Marker = f.Marker
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rule table: %w", err)
	}
	return table, nil
}
