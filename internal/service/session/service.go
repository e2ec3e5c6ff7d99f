// Package session builds the payload values that travel between owner and
// partner. Every transition constructs a new payload; inputs are never
// mutated in place.
package session

import (
	"strings"
	"time"

	"github.com/zhoulin/matchquiz/internal/model/quiz"
)

// Service performs the three lifecycle transitions: author, submit, replay.
type Service struct {
	now func() time.Time
}

// NewService returns a Service on the real clock.
func NewService() *Service {
	return &Service{now: time.Now}
}

// WithClock overrides the time source. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Author assembles a fresh session from the owner's form rows. Rows with a
// blank question are dropped; the surviving question and answer text is
// trimmed so authored answers compare cleanly later. Created is set here,
// once, and carried unchanged through every later transition.
func (s *Service) Author(owner string, rows []quiz.Pair) (quiz.Payload, error) {
	pairs := make([]quiz.Pair, 0, len(rows))
	for _, row := range rows {
		question := strings.TrimSpace(row.Question)
		if question == "" {
			continue
		}
		pairs = append(pairs, quiz.Pair{
			Question: question,
			Answer:   strings.TrimSpace(row.Answer),
		})
	}

	p := quiz.Payload{
		Owner:   strings.TrimSpace(owner),
		Created: s.now().UTC(),
		Pairs:   pairs,
	}
	if err := p.Validate(); err != nil {
		return quiz.Payload{}, err
	}
	return p, nil
}

// Submit attaches the partner's answers to a decoded session. Answers align
// by position: missing trailing entries become empty strings, extras beyond
// the question count are ignored.
func (s *Service) Submit(p quiz.Payload, answers []string) quiz.Payload {
	aligned := make([]string, len(p.Pairs))
	copy(aligned, answers)

	out := p.Clone()
	out.Partner = &quiz.PartnerResponse{
		Submitted: s.now().UTC(),
		Answers:   aligned,
	}
	return out
}

// Replay hands back the same session for a fresh attempt. Nothing is
// stripped: the re-issued token keeps carrying the owner's answers, a known
// property of the unencrypted transport.
func (s *Service) Replay(p quiz.Payload) quiz.Payload {
	return p.Clone()
}
