// Package checkin scores the WHO-5-style daily check-in and persists the
// append-only mood log.
package checkin

import (
	"errors"
	"fmt"
)

const (
	// Items is the number of survey items; each is answered 0-5 and the
	// sum is scaled to 0-100.
	Items    = 5
	MaxItem  = 5
	MaxScore = 100

	// HappyThreshold is the daily average score counted as a happy day.
	HappyThreshold = 60
)

var ErrBadAnswers = errors.New("invalid check-in answers")

// Score aggregates the five 0-5 answers into a 0-100 wellbeing score.
func Score(answers []int) (int, error) {
	if len(answers) != Items {
		return 0, fmt.Errorf("%w: expected %d answers, got %d", ErrBadAnswers, Items, len(answers))
	}
	total := 0
	for i, a := range answers {
		if a < 0 || a > MaxItem {
			return 0, fmt.Errorf("%w: answer %d out of range: %d", ErrBadAnswers, i, a)
		}
		total += a
	}
	return total * 4, nil
}

type ScoreTier string

const (
	TierToughDay ScoreTier = "low"
	TierSteady   ScoreTier = "ok"
	TierBright   ScoreTier = "high"
)

var (
	cheerLow = []string{
		"Tough days happen. You still showed up — that matters.",
		"Be gentle with yourself today. Tiny steps count.",
	}
	cheerOK = []string{
		"Steady is good. Normal days build strength.",
		"Nice balance today — keep the kind pace.",
	}
	cheerHigh = []string{
		"Great vibe — share a kind word today!",
		"Lovely energy — note what helped and repeat it.",
	}
	quoteLow  = []string{"Small steps are still steps.", "No rain, no flowers."}
	quoteOK   = []string{"Ordinary days build extraordinary strength.", "Consistency beats intensity."}
	quoteHigh = []string{"Joy shared is joy doubled.", "Gratitude turns enough into plenty."}
)

// PickFunc selects a pool entry avoiding the previous pick for its key;
// the session provides the cursor state.
type PickFunc func(key string, pool []string) string

// Response tiers a saved score into a rotating cheer-plus-quote message.
func Response(score int, pick PickFunc) (ScoreTier, string) {
	switch {
	case score < 40:
		return TierToughDay, pick("cheer_low", cheerLow) + "\n\n" + pick("quote_low", quoteLow)
	case score < 70:
		return TierSteady, pick("cheer_ok", cheerOK) + "\n\n" + pick("quote_ok", quoteOK)
	default:
		return TierBright, pick("cheer_high", cheerHigh) + "\n\n" + pick("quote_high", quoteHigh)
	}
}
