package chat

import (
	"regexp"
	"strings"

	"github.com/mannmitra/mannmitra/internal/session"
)

// Rule maps message patterns to a coping activity. Declaration order is
// priority order; the first rule with any matching pattern wins.
type Rule struct {
	ID       string
	Kind     session.SuggestionKind
	Title    string
	Patterns []*regexp.Regexp
}

func patterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(`(?i)`+e))
	}
	return out
}

var defaultRules = []Rule{
	{
		ID: "breathing_478", Kind: session.KindExercise, Title: "Try 4-7-8 breathing",
		Patterns: patterns(`\banxious\b`, `\banxiety\b`, `\bstressed?\b`, `\boverwhelm`, `घबराहट`, `tension`),
	},
	{
		ID: "grounding_54321", Kind: session.KindExercise, Title: "Try 5-4-3-2-1 grounding",
		Patterns: patterns(`\boverthink`, `\bspiral`, `\bloop`, `\bracing thoughts\b`),
	},
	{
		ID: "stroop", Kind: session.KindGame, Title: "Play a 1-minute Focus game",
		Patterns: patterns(`\bbored\b`, `\bdistract`, `\bcan.?t focus\b`, `\bprocrastinat`),
	},
}

// fallbackWordCount is the message length at which an unmatched message
// still earns the default breathing suggestion; long messages correlate
// with rumination.
const fallbackWordCount = 25

// Engine evaluates the suggestion rules. It is pure: same text and same
// rules always give the same answer, and it never calls the model.
type Engine struct {
	rules []Rule
}

func NewEngine() *Engine {
	return &Engine{rules: defaultRules}
}

// Suggest returns the first matching rule's suggestion, the default
// breathing exercise for unmatched messages of at least 25 words, or nil.
func (e *Engine) Suggest(text string) *session.Suggestion {
	for _, r := range e.rules {
		for _, p := range r.Patterns {
			if p.MatchString(text) {
				return &session.Suggestion{ID: r.ID, Kind: r.Kind, Title: r.Title}
			}
		}
	}
	if len(strings.Fields(text)) >= fallbackWordCount {
		return &session.Suggestion{ID: "breathing_478", Kind: session.KindExercise, Title: "Try 4-7-8 breathing"}
	}
	return nil
}
