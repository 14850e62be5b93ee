package rules

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"gopkg.in/yaml.v3"
)

// Format is a rule file encoding.
type Format string

const (
	FormatHCL  Format = "hcl"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported rule file extension %q (want .hcl, .yaml or .yml)", filepath.Ext(path))
}

// FileConfig is the on-disk shape of a rule table.
type FileConfig struct {
	Owner    string       `hcl:"owner,optional" yaml:"owner,omitempty"`
	Opponent string       `hcl:"opponent,optional" yaml:"opponent,omitempty"`
	Marker   string       `hcl:"marker,optional" yaml:"marker,omitempty"`
	Rules    []RuleConfig `hcl:"rule,block" yaml:"rules"`
}

// RuleConfig is the on-disk shape of a single rule.
type RuleConfig struct {
	Name          string `hcl:"name,label" yaml:"name"`
	Match         string `hcl:"match,optional" yaml:"match,omitempty"`
	Phrase        string `hcl:"phrase" yaml:"phrase"`
	Outcome       string `hcl:"outcome" yaml:"outcome"`
	Perspective   string `hcl:"perspective,optional" yaml:"perspective,omitempty"`
	Scope         string `hcl:"scope,optional" yaml:"scope,omitempty"`
	CaseSensitive bool   `hcl:"case_sensitive,optional" yaml:"case_sensitive,omitempty"`
}

// Load reads a rule table from an HCL or YAML file. Missing owner and marker
// fall back to the defaults.
func Load(path string) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("rule file: %w", err)
	}

	var cfg FileConfig
	switch format {
	case FormatHCL:
		err = decodeHCL(path, &cfg)
	case FormatYAML:
		err = decodeYAML(path, &cfg)
	}
	if err != nil {
		return nil, err
	}

	table, err := cfg.Table()
	if err != nil {
		return nil, fmt.Errorf("rule file %s: %w", path, err)
	}
	return table, nil
}

func decodeHCL(path string, cfg *FileConfig) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return nil
}

func decodeYAML(path string, cfg *FileConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("rule file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("rule file %s is empty", path)
		}
		return fmt.Errorf("failed to decode YAML: %w", err)
	}
	return nil
}

// Table converts the file shape into a compiled table.
func (c FileConfig) Table() (*Table, error) {
	t := &Table{
		Owner:    c.Owner,
		Opponent: c.Opponent,
		Marker:   c.Marker,
		Rules:    make([]Rule, 0, len(c.Rules)),
	}
	if t.Owner == "" {
		t.Owner = DefaultOwner
	}
	if t.Marker == "" {
		t.Marker = DefaultMarker
	}

	for i, rc := range c.Rules {
		r, err := rc.rule()
		if err != nil {
			name := rc.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			return nil, fmt.Errorf("rule %q: %w", name, err)
		}
		t.Rules = append(t.Rules, r)
	}

	if err := t.Compile(); err != nil {
		return nil, err
	}
	return t, nil
}

func (rc RuleConfig) rule() (Rule, error) {
	match, err := ParseMatchKind(rc.Match)
	if err != nil {
		return Rule{}, err
	}
	outcome, err := ParseOutcome(rc.Outcome)
	if err != nil {
		return Rule{}, err
	}
	perspective, err := ParsePerspective(rc.Perspective)
	if err != nil {
		return Rule{}, err
	}
	scope, err := ParseScope(rc.Scope)
	if err != nil {
		return Rule{}, err
	}
	return Rule{
		Name:          rc.Name,
		Match:         match,
		Phrase:        rc.Phrase,
		Outcome:       outcome,
		Perspective:   perspective,
		Scope:         scope,
		CaseSensitive: rc.CaseSensitive,
	}, nil
}

// Config returns the file shape of the table.
func (t *Table) Config() FileConfig {
	cfg := FileConfig{
		Owner:    t.Owner,
		Opponent: t.Opponent,
		Marker:   t.Marker,
		Rules:    make([]RuleConfig, 0, len(t.Rules)),
	}
	for _, r := range t.Rules {
		cfg.Rules = append(cfg.Rules, RuleConfig{
			Name:          r.Name,
			Match:         r.Match.String(),
			Phrase:        r.Phrase,
			Outcome:       r.Outcome.String(),
			Perspective:   r.Perspective.String(),
			Scope:         r.Scope.String(),
			CaseSensitive: r.CaseSensitive,
		})
	}
	return cfg
}

// Encode writes the table in the given format. The output loads back with
// Load.
func Encode(w io.Writer, t *Table, format Format) error {
	cfg := t.Config()
	switch format {
	case FormatHCL:
		f := hclwrite.NewEmptyFile()
		gohcl.EncodeIntoBody(cfg, f.Body())
		_, err := w.Write(f.Bytes())
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format %q", format)
}
