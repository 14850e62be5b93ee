package rules

const (
	DefaultOwner  = "Me"
	DefaultMarker = "GamePigeon message:"
)

// defaultRules lists GamePigeon's own phrasing first, attributed by sender,
// then owner-perspective phrasing that may appear on any line.
func defaultRules() []Rule {
	return []Rule{
		{Name: "sender_won", Match: MatchExact, Phrase: "I won!", Outcome: Win, Perspective: PerspectiveSender, Scope: ScopeGameMessage, CaseSensitive: true},
		{Name: "receiver_won", Match: MatchExact, Phrase: "You Won!", Outcome: Loss, Perspective: PerspectiveSender, Scope: ScopeGameMessage, CaseSensitive: true},
		{Name: "draw", Match: MatchExact, Phrase: "Draw!", Outcome: Draw, Perspective: PerspectiveSender, Scope: ScopeGameMessage, CaseSensitive: true},
		{Name: "owner_won", Match: MatchPrefix, Phrase: "You won", Outcome: Win, Perspective: PerspectiveOwner, Scope: ScopeAny},
		{Name: "owner_lost", Match: MatchPrefix, Phrase: "You lost", Outcome: Loss, Perspective: PerspectiveOwner, Scope: ScopeAny},
		{Name: "plain_draw", Match: MatchExact, Phrase: "Draw!", Outcome: Draw, Perspective: PerspectiveOwner, Scope: ScopeAny},
	}
}

// Default returns the built-in rule table.
func Default() *Table {
	t := &Table{
		Owner:  DefaultOwner,
		Marker: DefaultMarker,
		Rules:  defaultRules(),
	}
	if err := t.Compile(); err != nil {
		panic("rules: invalid default table: " + err.Error())
	}
	return t
}
