package games

import (
	"strings"
	"time"
)

var (
	gratitudeCheers = []string{
		"Nice! Noted for today.",
		"Beautiful — gratitude shifts the spotlight to the good.",
	}
	gratitudeQuotes = []string{
		"Where attention goes, emotion flows.",
		"What we appreciate, appreciates.",
	}
)

// GratitudeRun is the 60-second timed journaling window. The core only
// records the start time; the display layer polls the remaining seconds.
type GratitudeRun struct {
	StartedAt time.Time
}

func NewGratitudeRun(now time.Time) *GratitudeRun {
	return &GratitudeRun{StartedAt: now}
}

// Remaining returns whole seconds left in the window, never negative.
func (g *GratitudeRun) Remaining(now time.Time) int {
	left := GratitudeWindow - now.Sub(g.StartedAt)
	if left < 0 {
		return 0
	}
	return int(left.Seconds())
}

// GratitudeMessage builds the affirmation shown when notes are saved.
func GratitudeMessage(pick PickFunc) string {
	return pick("grat_msg", gratitudeCheers) + "\n\n" + pick("grat_quote", gratitudeQuotes)
}

// CleanNotes trims entries and drops empty ones.
func CleanNotes(notes []string) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		if t := strings.TrimSpace(n); t != "" {
			out = append(out, t)
		}
	}
	return out
}
