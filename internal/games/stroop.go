package games

import (
	"errors"
	"math/rand"
	"time"
)

// Colors are the six ink/word options shown each trial.
var Colors = []string{"RED", "BLUE", "GREEN", "YELLOW", "PURPLE", "ORANGE"}

var ErrUnknownColor = errors.New("unknown color")

// StroopItem is one trial: a color word rendered in an (often different)
// ink color. The player must name the ink, not the word.
type StroopItem struct {
	Word string `json:"word"`
	Ink  string `json:"ink"`
}

// StroopRun is an in-flight attention game. Trial is strictly increasing
// and bounded by Trials; Score never exceeds Trial.
type StroopRun struct {
	Trial     int
	Score     int
	StartedAt time.Time
	Item      StroopItem
}

// StroopResult summarizes a completed run.
type StroopResult struct {
	Score   int           `json:"score"`
	Trials  int           `json:"trials"`
	Elapsed time.Duration `json:"-"`
	Tier    Tier          `json:"tier"`
}

func NewStroopRun(rng *rand.Rand, now time.Time) *StroopRun {
	return &StroopRun{StartedAt: now, Item: newStroopItem(rng)}
}

func newStroopItem(rng *rand.Rand) StroopItem {
	return StroopItem{
		Word: Colors[rng.Intn(len(Colors))],
		Ink:  Colors[rng.Intn(len(Colors))],
	}
}

// Answer records one color selection. It scores iff the selection equals
// the current item's ink, then either draws the next item or, after the
// final trial, returns the run result. An unknown color is rejected
// without advancing the trial.
func (r *StroopRun) Answer(color string, rng *rand.Rand, now time.Time) (*StroopResult, error) {
	if !validColor(color) {
		return nil, ErrUnknownColor
	}
	r.Trial++
	if color == r.Item.Ink {
		r.Score++
	}
	if r.Trial >= Trials {
		return &StroopResult{
			Score:   r.Score,
			Trials:  Trials,
			Elapsed: now.Sub(r.StartedAt),
			Tier:    TierFor(r.Score),
		}, nil
	}
	r.Item = newStroopItem(rng)
	return nil, nil
}

func validColor(color string) bool {
	for _, c := range Colors {
		if c == color {
			return true
		}
	}
	return false
}
