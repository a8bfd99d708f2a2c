package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mannmitra/mannmitra/internal/session"
)

const recapUserMessages = 3

// BuildRecap summarizes the session's recent user messages into a short
// recap plus a tiny plan. The model version is best-effort; any failure
// falls back to the deterministic text.
func (c *Coordinator) BuildRecap(ctx context.Context, sess *session.Session) string {
	lang := sess.Lang()
	lastUser := sess.LastUserMessages(recapUserMessages)

	points := "- (no details)"
	if len(lastUser) > 0 {
		lines := make([]string, 0, len(lastUser))
		for _, m := range lastUser {
			lines = append(lines, "- "+m)
		}
		points = strings.Join(lines, "\n")
	}
	base := fmt.Sprintf(
		"Session recap (%s):\n%s\n\nTiny plan for today:\n• 3 cycles 4-7-8\n• One kind line to yourself\n• 10-min walk",
		lang, points,
	)

	if c.provider == nil || len(lastUser) == 0 {
		return base
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	prompt := fmt.Sprintf("Summarize in %s ≤60 words, then 3-bullet plan. Return plain text.\n%s",
		lang, strings.Join(lastUser, "\n"))
	out, err := c.provider.CompleteWithSystem(ctx, c.model, persona, prompt)
	if err != nil || strings.TrimSpace(out) == "" {
		if err != nil {
			log.Debug().Err(err).Msg("recap generation failed, using fallback")
		}
		return base
	}
	return out
}
