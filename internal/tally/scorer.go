package tally

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pigeontally/internal/rules"
	"github.com/lox/pigeontally/internal/transcript"
)

// Scorer classifies transcript lines with a rule table and accumulates a
// Tally. A Scorer holds no per-scan state and may be reused.
type Scorer struct {
	table  *rules.Table
	logger *log.Logger
	clock  quartz.Clock
}

// NewScorer creates a scorer. A nil clock uses the real clock.
func NewScorer(table *rules.Table, logger *log.Logger, clock quartz.Clock) *Scorer {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Scorer{
		table:  table,
		logger: logger,
		clock:  clock,
	}
}

// ScoreFile opens the transcript at path and scores it. The file is closed
// before ScoreFile returns.
func (s *Scorer) ScoreFile(path string) (Result, error) {
	r, err := transcript.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer r.Close()

	return s.Score(r)
}

// Score consumes r to the end and returns the tally. Any read error aborts the
// scan and no partial result is returned.
func (s *Scorer) Score(r *transcript.Reader) (Result, error) {
	start := s.clock.Now()
	var (
		tally  Tally
		inGame bool
	)

	for {
		line, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, err
		}

		switch line.Kind {
		case transcript.KindHeader:
			inGame = false
			continue
		case transcript.KindSender:
			continue
		}

		if s.table.IsMarker(line.Text) {
			inGame = true
			continue
		}

		rule, ok := s.table.Match(line.Text, inGame)
		if !ok {
			continue
		}
		inGame = false

		if !s.table.Tracks(line.Sender) {
			s.logger.Debug("Skipping result from untracked sender",
				"line", line.Number,
				"sender", line.Sender,
				"rule", rule.Name)
			continue
		}

		outcome := s.attribute(rule, line.Sender)
		tally.Add(outcome)
		s.logger.Debug("Counted result",
			"line", line.Number,
			"rule", rule.Name,
			"sender", line.Sender,
			"outcome", outcome)
	}

	res := Result{
		Tally:   tally,
		Lines:   r.Lines(),
		Elapsed: s.clock.Since(start),
	}
	s.logger.Info("Scan complete",
		"path", r.Path(),
		"lines", res.Lines,
		"games", res.Total(),
		"elapsed", res.Elapsed)
	return res, nil
}

// attribute converts a rule's outcome to the owner's point of view.
func (s *Scorer) attribute(rule *rules.Rule, sender string) rules.Outcome {
	if rule.Perspective == rules.PerspectiveSender && !s.table.IsOwner(sender) {
		return rule.Outcome.Invert()
	}
	return rule.Outcome
}
