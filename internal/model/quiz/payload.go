package quiz

import (
	"errors"
	"strings"
	"time"
)

// MaxPairs bounds how many question/answer rows a single session may carry.
const MaxPairs = 10

var (
	ErrNoQuestions      = errors.New("at least one question is required")
	ErrTooManyQuestions = errors.New("a session holds at most 10 questions")
	ErrBlankQuestion    = errors.New("questions must not be blank")
)

// Pair is one authored question together with the owner's reference answer.
// The answer may be empty; the question may not.
type Pair struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// Payload is the session value that travels between owner and partner inside
// transport tokens. ID is set only when the payload is persisted locally,
// Partner only once the partner has submitted answers.
type Payload struct {
	Owner   string           `json:"owner"`
	Created time.Time        `json:"created"`
	Pairs   []Pair           `json:"pairs"`
	ID      string           `json:"id,omitempty"`
	Partner *PartnerResponse `json:"partner,omitempty"`
}

// PartnerResponse carries the partner's answers, aligned by position against
// Payload.Pairs. Missing trailing entries read as empty strings.
type PartnerResponse struct {
	Submitted time.Time `json:"submitted"`
	Answers   []string  `json:"answers"`
}

// Validate enforces the authoring invariants: 1 to MaxPairs pairs, each with
// a non-blank question.
func (p Payload) Validate() error {
	if len(p.Pairs) == 0 {
		return ErrNoQuestions
	}
	if len(p.Pairs) > MaxPairs {
		return ErrTooManyQuestions
	}
	for _, pair := range p.Pairs {
		if strings.TrimSpace(pair.Question) == "" {
			return ErrBlankQuestion
		}
	}
	return nil
}

// Clone returns a deep copy so lifecycle transitions never mutate or alias
// the payload they were handed.
func (p Payload) Clone() Payload {
	out := p
	out.Pairs = append([]Pair(nil), p.Pairs...)
	if p.Partner != nil {
		partner := *p.Partner
		partner.Answers = append([]string(nil), p.Partner.Answers...)
		out.Partner = &partner
	}
	return out
}
