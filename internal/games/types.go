package games

import (
	"time"
)

// Tier buckets a completed run's score.
type Tier string

const (
	TierLow     Tier = "low"
	TierAverage Tier = "average"
	TierGood    Tier = "good"
)

const (
	// Trials is the fixed round count for both games.
	Trials = 5
	// BannerLifetime is how long a result banner stays visible.
	BannerLifetime = 20 * time.Second
	// GratitudeWindow is the length of the gratitude blitz timer.
	GratitudeWindow = 60 * time.Second
)

// TierFor maps a score out of Trials to its tier.
func TierFor(score int) Tier {
	switch {
	case score >= 4:
		return TierGood
	case score == 3:
		return TierAverage
	default:
		return TierLow
	}
}

// Banner is a time-limited result message. The display layer polls it
// and discards it after expiry; nothing here runs a timer.
type Banner struct {
	Tier    Tier      `json:"tier"`
	Text    string    `json:"text"`
	Expires time.Time `json:"expires"`
}

func (b Banner) Expired(now time.Time) bool {
	return !now.Before(b.Expires)
}

// PickFunc selects one entry from a pool, avoiding the previous pick for
// the same key. The session owns the cursor state behind it.
type PickFunc func(key string, pool []string) string
