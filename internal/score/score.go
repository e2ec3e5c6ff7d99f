// Package score compares owner and partner answers and buckets the outcome.
package score

import (
	"math"

	"github.com/zhoulin/matchquiz/internal/model/quiz"
)

// Result is the derived outcome of comparing the two answer sets. It is
// computed on demand and never persisted.
type Result struct {
	Matches int `json:"matches"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// Score walks the questions position by position and counts normalized
// matches. Questions where both sides normalize to empty are skipped: they
// count neither for nor against. Total is never below 1 and Percent is
// rounded half up, so 2 matches out of 3 scores 67.
func Score(pairs []quiz.Pair, partnerAnswers []string) Result {
	matches := 0
	for i, pair := range pairs {
		owner := Normalize(pair.Answer)
		partner := ""
		if i < len(partnerAnswers) {
			partner = Normalize(partnerAnswers[i])
		}
		if owner == "" && partner == "" {
			continue
		}
		if owner == partner {
			matches++
		}
	}

	total := len(pairs)
	if total == 0 {
		total = 1
	}
	percent := int(math.Round(float64(matches) / float64(total) * 100))

	return Result{Matches: matches, Total: total, Percent: percent}
}

// Tier buckets a percentage for the result banner. Presentation layers map
// tiers to localized copy; the numeric score travels separately.
type Tier string

const (
	TierPerfect     Tier = "perfect"
	TierGreat       Tier = "great"
	TierOK          Tier = "ok"
	TierKeepTalking Tier = "keep-talking"
)

// TierFor maps a percent score to its tier. Lower bounds are inclusive: 90
// is already perfect, 89 is still great.
func TierFor(percent int) Tier {
	switch {
	case percent >= 90:
		return TierPerfect
	case percent >= 70:
		return TierGreat
	case percent >= 50:
		return TierOK
	default:
		return TierKeepTalking
	}
}
