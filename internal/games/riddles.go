package games

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/mannmitra/mannmitra/internal/content"
)

var (
	ErrEmptyAnswer = errors.New("empty answer")
	ErrQuizDone    = errors.New("quiz already finished")
)

// RiddleRun is an in-flight quiz over a 5-riddle sample drawn without
// replacement from the pool.
type RiddleRun struct {
	Riddles  []content.Riddle
	Index    int
	Score    int
	HintStep int
	Feedback string
}

// QuizResult summarizes a completed quiz.
type QuizResult struct {
	Score  int  `json:"score"`
	Trials int  `json:"trials"`
	Tier   Tier `json:"tier"`
}

func NewRiddleRun(pool []content.Riddle, rng *rand.Rand) *RiddleRun {
	n := Trials
	if n > len(pool) {
		n = len(pool)
	}
	sample := make([]content.Riddle, 0, n)
	for _, i := range rng.Perm(len(pool))[:n] {
		sample = append(sample, pool[i])
	}
	return &RiddleRun{Riddles: sample}
}

// Current returns the riddle in play. ok is false once the run is done.
func (r *RiddleRun) Current() (content.Riddle, bool) {
	if r.Index >= len(r.Riddles) {
		return content.Riddle{}, false
	}
	return r.Riddles[r.Index], true
}

// Hints reveals one more hint and returns all revealed so far, capped at
// the riddle's hint count.
func (r *RiddleRun) Hints() []string {
	cur, ok := r.Current()
	if !ok {
		return nil
	}
	if r.HintStep < len(cur.Hints) {
		r.HintStep++
	}
	return cur.Hints[:r.HintStep]
}

// Submit checks a free-text answer against the accepted alternatives
// using normalized exact matching. An empty answer is a no-op prompting
// re-entry. The result is non-nil once the fifth riddle is consumed.
func (r *RiddleRun) Submit(answer string) (correct bool, result *QuizResult, err error) {
	if strings.TrimSpace(answer) == "" {
		return false, nil, ErrEmptyAnswer
	}
	cur, ok := r.Current()
	if !ok {
		return false, nil, ErrQuizDone
	}
	norm := Normalize(answer)
	for _, a := range cur.Answers {
		if Normalize(a) == norm {
			correct = true
			break
		}
	}
	if correct {
		r.Score++
		r.Feedback = "Correct! Nice thinking."
	} else {
		r.Feedback = fmt.Sprintf("Not quite. Answer was %s.", titleWord(cur.Answers[0]))
	}
	return correct, r.advance(), nil
}

// Skip advances the question index without scoring, identically to a
// submission.
func (r *RiddleRun) Skip() (*QuizResult, error) {
	cur, ok := r.Current()
	if !ok {
		return nil, ErrQuizDone
	}
	r.Feedback = fmt.Sprintf("Skipped. Answer was %s.", titleWord(cur.Answers[0]))
	return r.advance(), nil
}

func (r *RiddleRun) advance() *QuizResult {
	r.Index++
	r.HintStep = 0
	if r.Index < len(r.Riddles) {
		return nil
	}
	return &QuizResult{Score: r.Score, Trials: len(r.Riddles), Tier: TierFor(r.Score)}
}

// Normalize lowercases, trims, drops a leading article and strips
// non-alphanumeric runes so that "A Clock" matches the accepted answer
// "clock". Idempotent.
func Normalize(s string) string {
	t := strings.ToLower(strings.TrimSpace(s))
	for _, article := range []string{"a ", "an ", "the "} {
		if strings.HasPrefix(t, article) {
			t = t[len(article):]
			break
		}
	}
	var b strings.Builder
	for _, r := range t {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
