package tally

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pigeontally/internal/rules"
	"github.com/lox/pigeontally/internal/transcript"
)

func newTestScorer(t *testing.T, table *rules.Table) *Scorer {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	return NewScorer(table, logger, quartz.NewMock(t))
}

func writeTranscript(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transcript.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return path
}

func scoreLines(t *testing.T, table *rules.Table, lines ...string) Result {
	t.Helper()
	res, err := newTestScorer(t, table).Score(transcript.NewReader(strings.NewReader(strings.Join(lines, "\n"))))
	require.NoError(t, err)
	return res
}

func TestScoreOwnerPhrasing(t *testing.T) {
	path := writeTranscript(t, "hello", "You won the game!", "lol", "You lost.", "Draw!")

	res, err := newTestScorer(t, rules.Default()).ScoreFile(path)
	require.NoError(t, err)

	assert.Equal(t, Tally{Wins: 1, Losses: 1, Draws: 1}, res.Tally)
	assert.Equal(t, 5, res.Lines)
}

func TestScoreChatOnly(t *testing.T) {
	res := scoreLines(t, rules.Default(), "hey", "what's up", "", "nothing much")
	assert.Equal(t, Tally{}, res.Tally)
	assert.Equal(t, 4, res.Lines)
}

func TestScoreEmptyTranscript(t *testing.T) {
	res := scoreLines(t, rules.Default())
	assert.Equal(t, Tally{}, res.Tally)
	assert.Zero(t, res.Lines)
}

func TestScoreExport(t *testing.T) {
	res, err := newTestScorer(t, rules.Default()).ScoreFile(filepath.Join("testdata", "imessage_export.txt"))
	require.NoError(t, err)

	// Counterparty "You Won!" is a win, own "I won!" a win, counterparty
	// "I won!" a loss and the checkers game a draw. "I won! lol" and the
	// result after a fresh header are outside a game message.
	assert.Equal(t, Tally{Wins: 2, Losses: 1, Draws: 1}, res.Tally)
	assert.LessOrEqual(t, res.Total(), res.Lines)
}

func TestScoreSenderAttribution(t *testing.T) {
	header := "Feb 14, 2024  7:00:00 PM"
	game := func(sender, result string) []string {
		return []string{header, sender, rules.DefaultMarker, result}
	}

	tests := []struct {
		name   string
		sender string
		result string
		want   Tally
	}{
		{"owner says I won", "Me", "I won!", Tally{Wins: 1}},
		{"counterparty says I won", "Alex", "I won!", Tally{Losses: 1}},
		{"owner says You Won", "Me", "You Won!", Tally{Losses: 1}},
		{"counterparty says You Won", "Alex", "You Won!", Tally{Wins: 1}},
		{"owner draw", "Me", "Draw!", Tally{Draws: 1}},
		{"counterparty draw", "Alex", "Draw!", Tally{Draws: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := scoreLines(t, rules.Default(), game(tt.sender, tt.result)...)
			assert.Equal(t, tt.want, res.Tally)
		})
	}
}

func TestScoreMarkerOnlyArmsOneResult(t *testing.T) {
	res := scoreLines(t, rules.Default(),
		"Mar 01, 2024  1:00:00 PM",
		"Me",
		rules.DefaultMarker,
		"Word Hunt",
		"I won!",
		"I won!",
	)
	assert.Equal(t, Tally{Wins: 1}, res.Tally)
}

func TestScoreOpponentFilter(t *testing.T) {
	lines := []string{
		"Mar 01, 2024  1:00:00 PM", "Alex", rules.DefaultMarker, "I won!",
		"Mar 01, 2024  1:05:00 PM", "Sam", rules.DefaultMarker, "I won!",
		"Mar 01, 2024  1:10:00 PM", "Me", rules.DefaultMarker, "I won!",
	}

	all := scoreLines(t, rules.Default(), lines...)
	assert.Equal(t, Tally{Wins: 1, Losses: 2}, all.Tally)

	table := rules.Default()
	table.Opponent = "Alex"
	filtered := scoreLines(t, table, lines...)
	assert.Equal(t, Tally{Wins: 1, Losses: 1}, filtered.Tally)
}

func TestScoreCustomOwner(t *testing.T) {
	table := rules.Default()
	table.Owner = "Jordan"

	res := scoreLines(t, table, "Mar 01, 2024  1:00:00 PM", "Jordan", rules.DefaultMarker, "I won!")
	assert.Equal(t, Tally{Wins: 1}, res.Tally)
}

func TestScoreIsRepeatable(t *testing.T) {
	path := filepath.Join("testdata", "imessage_export.txt")
	scorer := newTestScorer(t, rules.Default())

	first, err := scorer.ScoreFile(path)
	require.NoError(t, err)
	second, err := scorer.ScoreFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScoreUsesClock(t *testing.T) {
	res := scoreLines(t, rules.Default(), "Draw!")
	assert.Zero(t, res.Elapsed, "mock clock does not advance on its own")
}

func TestScoreFileErrors(t *testing.T) {
	scorer := newTestScorer(t, rules.Default())

	t.Run("missing", func(t *testing.T) {
		res, err := scorer.ScoreFile(filepath.Join(t.TempDir(), "missing.txt"))
		require.ErrorIs(t, err, transcript.ErrNotFound)
		assert.Equal(t, Result{}, res)
	})

	t.Run("read failure", func(t *testing.T) {
		path := writeTranscript(t, "You won", strings.Repeat("x", 2<<20))
		res, err := scorer.ScoreFile(path)

		var readErr *transcript.ReadError
		require.ErrorAs(t, err, &readErr)
		assert.Equal(t, Result{}, res, "no partial tally on failure")
	})
}
