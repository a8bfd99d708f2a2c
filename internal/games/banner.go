package games

import (
	"fmt"
	"time"
)

var (
	cheerGood = []string{
		"Great focus — your attention is sharp!",
		"Awesome run — you were dialed in!",
	}
	cheerAverage = []string{
		"Nice effort — try once more, slow and steady.",
		"Solid! One more round can boost it further.",
	}
	cheerLow = []string{
		"Mind might be busy — a 30-sec breath can help.",
		"It's okay — reset with a breath and try again.",
	}
	quotes = []string{
		"Focus grows where attention goes.",
		"Progress > perfection.",
		"Storms pass; you stay.",
	}
)

// ResultBanner builds the closing banner for a finished run. Elapsed is
// only shown on a good run, matching the upbeat framing of the message.
func ResultBanner(score, trials int, elapsed time.Duration, pick PickFunc, now time.Time) Banner {
	tier := TierFor(score)
	var cheer string
	switch tier {
	case TierGood:
		cheer = pick("game_good", cheerGood)
	case TierAverage:
		cheer = pick("game_avg", cheerAverage)
	default:
		cheer = pick("game_low", cheerLow)
	}
	text := fmt.Sprintf("%s %d/%d", cheer, score, trials)
	if tier == TierGood && elapsed > 0 {
		text += fmt.Sprintf(" in %.1fs", elapsed.Seconds())
	}
	text += "\n\n" + pick("game_quote", quotes)
	return Banner{Tier: tier, Text: text, Expires: now.Add(BannerLifetime)}
}
