// Package tally scores transcripts into a win/loss/draw record.
package tally

import (
	"time"

	"github.com/lox/pigeontally/internal/rules"
)

// Tally counts game results from the device owner's point of view.
type Tally struct {
	Wins   int
	Losses int
	Draws  int
}

// Add records one result.
func (t *Tally) Add(o rules.Outcome) {
	switch o {
	case rules.Win:
		t.Wins++
	case rules.Loss:
		t.Losses++
	case rules.Draw:
		t.Draws++
	}
}

// Total returns the number of games recorded.
func (t Tally) Total() int {
	return t.Wins + t.Losses + t.Draws
}

// WinRate returns wins as a percentage of all games, 0 when there are none.
func (t Tally) WinRate() float64 {
	total := t.Total()
	if total == 0 {
		return 0
	}
	return float64(t.Wins) / float64(total) * 100
}

// Result is the outcome of scoring one transcript.
type Result struct {
	Tally
	Lines   int           // lines scanned
	Elapsed time.Duration // wall time of the scan
}
