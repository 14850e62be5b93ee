// Package rules holds the table that maps result phrases to game outcomes.
package rules

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Outcome is the result of a game from one side's point of view.
type Outcome int

const (
	Win Outcome = iota
	Loss
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Invert returns the outcome seen from the other side.
func (o Outcome) Invert() Outcome {
	switch o {
	case Win:
		return Loss
	case Loss:
		return Win
	default:
		return o
	}
}

// ParseOutcome parses "win", "loss" or "draw".
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "win":
		return Win, nil
	case "loss":
		return Loss, nil
	case "draw":
		return Draw, nil
	}
	return 0, fmt.Errorf("unknown outcome %q", s)
}

// MatchKind selects how a rule's phrase is compared to a line.
type MatchKind int

const (
	MatchExact MatchKind = iota
	MatchPrefix
	MatchContains
)

func (m MatchKind) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchPrefix:
		return "prefix"
	case MatchContains:
		return "contains"
	default:
		return fmt.Sprintf("match(%d)", int(m))
	}
}

// ParseMatchKind parses "exact", "prefix" or "contains". Empty means exact.
func ParseMatchKind(s string) (MatchKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "exact":
		return MatchExact, nil
	case "prefix":
		return MatchPrefix, nil
	case "contains":
		return MatchContains, nil
	}
	return 0, fmt.Errorf("unknown match kind %q", s)
}

// Perspective says whose result a phrase announces.
type Perspective int

const (
	// PerspectiveOwner phrases already describe the device owner's result.
	PerspectiveOwner Perspective = iota
	// PerspectiveSender phrases describe the result of whoever sent the
	// message.
	PerspectiveSender
)

func (p Perspective) String() string {
	if p == PerspectiveSender {
		return "sender"
	}
	return "owner"
}

// ParsePerspective parses "owner" or "sender". Empty means owner.
func ParsePerspective(s string) (Perspective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "owner":
		return PerspectiveOwner, nil
	case "sender":
		return PerspectiveSender, nil
	}
	return 0, fmt.Errorf("unknown perspective %q", s)
}

// Scope limits where in a transcript a rule may fire.
type Scope int

const (
	// ScopeAny rules match any body line.
	ScopeAny Scope = iota
	// ScopeGameMessage rules only match after the game-message marker line
	// and before the next message header.
	ScopeGameMessage
)

func (s Scope) String() string {
	if s == ScopeGameMessage {
		return "game_message"
	}
	return "any"
}

// ParseScope parses "any" or "game_message". Empty means any.
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return ScopeAny, nil
	case "game_message":
		return ScopeGameMessage, nil
	}
	return 0, fmt.Errorf("unknown scope %q", s)
}

// Rule maps one phrase to an outcome.
type Rule struct {
	Name          string
	Match         MatchKind
	Phrase        string
	Outcome       Outcome
	Perspective   Perspective
	Scope         Scope
	CaseSensitive bool

	folded string
}

func (r *Rule) matches(text, folded string) bool {
	phrase, line := r.Phrase, text
	if !r.CaseSensitive {
		phrase, line = r.folded, folded
	}
	switch r.Match {
	case MatchPrefix:
		return strings.HasPrefix(line, phrase)
	case MatchContains:
		return strings.Contains(line, phrase)
	default:
		return line == phrase
	}
}

// Table is an ordered rule list plus the identities needed to attribute
// results. The first matching rule wins.
type Table struct {
	Owner    string // sender name of the device owner in the export
	Opponent string // optional counterparty; other senders are ignored when set
	Marker   string // line announcing a game message
	Rules    []Rule

	fold      cases.Caser
	needsFold bool
}

// Compile validates the table and prepares it for matching. It must be called
// after Rules is modified.
func (t *Table) Compile() error {
	if err := t.Validate(); err != nil {
		return err
	}
	t.fold = cases.Fold()
	t.needsFold = false
	for i := range t.Rules {
		r := &t.Rules[i]
		if !r.CaseSensitive {
			r.folded = t.fold.String(r.Phrase)
			t.needsFold = true
		}
	}
	return nil
}

// Validate reports the first problem found in the table.
func (t *Table) Validate() error {
	if strings.TrimSpace(t.Owner) == "" {
		return errors.New("owner is required")
	}
	if strings.TrimSpace(t.Marker) == "" {
		return errors.New("marker is required")
	}
	if len(t.Rules) == 0 {
		return errors.New("at least one rule is required")
	}

	seen := make(map[string]bool, len(t.Rules))
	for i, r := range t.Rules {
		if r.Name == "" {
			return fmt.Errorf("rule %d: name is required", i+1)
		}
		if seen[r.Name] {
			return fmt.Errorf("rule %q: duplicate name", r.Name)
		}
		seen[r.Name] = true
		if strings.TrimSpace(r.Phrase) == "" {
			return fmt.Errorf("rule %q: phrase is required", r.Name)
		}
		if r.Outcome < Win || r.Outcome > Draw {
			return fmt.Errorf("rule %q: invalid outcome %d", r.Name, int(r.Outcome))
		}
		if r.Match < MatchExact || r.Match > MatchContains {
			return fmt.Errorf("rule %q: invalid match kind %d", r.Name, int(r.Match))
		}
	}
	return nil
}

// Match returns the first rule matching text. inGame reports whether the line
// follows the game-message marker; game-message rules are skipped otherwise.
func (t *Table) Match(text string, inGame bool) (*Rule, bool) {
	var folded string
	if t.needsFold {
		folded = t.fold.String(text)
	}
	for i := range t.Rules {
		r := &t.Rules[i]
		if r.Scope == ScopeGameMessage && !inGame {
			continue
		}
		if r.matches(text, folded) {
			return r, true
		}
	}
	return nil, false
}

// IsMarker reports whether text is the game-message marker line.
func (t *Table) IsMarker(text string) bool {
	return text == t.Marker
}

// IsOwner reports whether sender is the device owner.
func (t *Table) IsOwner(sender string) bool {
	return sender == t.Owner
}

// Tracks reports whether results sent by sender count. An empty sender (no
// header seen) always counts.
func (t *Table) Tracks(sender string) bool {
	if t.Opponent == "" || sender == "" {
		return true
	}
	return sender == t.Owner || sender == t.Opponent
}
