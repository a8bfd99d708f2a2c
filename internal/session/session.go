package session

import (
	"math/rand"
	"sync"
	"time"

	"github.com/mannmitra/mannmitra/internal/content"
	"github.com/mannmitra/mannmitra/internal/games"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one transcript entry. The transcript is append-only for the
// lifetime of the session.
type Turn struct {
	Role Role      `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

type Language string

const (
	LangEnglish  Language = "english"
	LangHindi    Language = "hindi"
	LangHinglish Language = "hinglish"
)

// ParseLanguage maps a user-supplied value to a supported language,
// defaulting to English.
func ParseLanguage(s string) Language {
	switch Language(s) {
	case LangHindi, LangHinglish:
		return Language(s)
	default:
		return LangEnglish
	}
}

type SuggestionKind string

const (
	KindExercise SuggestionKind = "exercise"
	KindGame     SuggestionKind = "game"
)

// Suggestion is a recommended coping activity. At most one is active per
// session; it is cleared on accept, decline, or an elevated-risk turn.
type Suggestion struct {
	ID    string         `json:"id"`
	Kind  SuggestionKind `json:"kind"`
	Title string         `json:"title"`
}

// Session owns all per-user state: transcript, reply language, active
// suggestion, game runs, result banners and the rotation cursors used to
// avoid repeating cosmetic messages. All mutation goes through its
// methods; there is no shared state between sessions.
type Session struct {
	Token     string
	CreatedAt time.Time

	mu         sync.Mutex
	lang       Language
	history    []Turn
	suggestion *Suggestion
	lastPick   map[string]string
	rng        *rand.Rand

	stroop    *games.StroopRun
	riddles   *games.RiddleRun
	gratitude *games.GratitudeRun
	banners   map[string]games.Banner
}

func newSession(token string, rng *rand.Rand) *Session {
	return &Session{
		Token:     token,
		CreatedAt: time.Now().UTC(),
		lang:      LangEnglish,
		lastPick:  make(map[string]string),
		rng:       rng,
		banners:   make(map[string]games.Banner),
	}
}

func (s *Session) Lang() Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

func (s *Session) SetLang(lang Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = lang
}

func (s *Session) Append(role Role, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, Turn{Role: role, Text: text, At: time.Now().UTC()})
}

func (s *Session) History() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.history))
	copy(out, s.history)
	return out
}

// LastUserMessages returns up to n most recent user turns, oldest first.
func (s *Session) LastUserMessages(n int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var msgs []string
	for _, t := range s.history {
		if t.Role == RoleUser {
			msgs = append(msgs, t.Text)
		}
	}
	if len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	return msgs
}

func (s *Session) Suggestion() *Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.suggestion == nil {
		return nil
	}
	cp := *s.suggestion
	return &cp
}

func (s *Session) SetSuggestion(sug *Suggestion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestion = sug
}

func (s *Session) ClearSuggestion() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestion = nil
}

// PickNew selects a pool entry different from the previous pick for the
// same key, unless the pool has a single eligible entry after exclusion.
// Deterministic under the session's seeded source.
func (s *Session) PickNew(key string, pool []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pickNewLocked(key, pool)
}

func (s *Session) pickNewLocked(key string, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	last := s.lastPick[key]
	eligible := make([]string, 0, len(pool))
	for _, c := range pool {
		if c != last {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		eligible = pool
	}
	choice := eligible[s.rng.Intn(len(eligible))]
	s.lastPick[key] = choice
	return choice
}

// Banner returns the unexpired banner for a game, dropping it once
// expired.
func (s *Session) Banner(game string, now time.Time) (games.Banner, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.banners[game]
	if !ok {
		return games.Banner{}, false
	}
	if b.Expired(now) {
		delete(s.banners, game)
		return games.Banner{}, false
	}
	return b, true
}

func (s *Session) setBannerLocked(game string, b games.Banner) {
	s.banners[game] = b
}

// --- Stroop ---

// StartStroop begins (or restarts) an attention game run and returns the
// first item.
func (s *Session) StartStroop(now time.Time) games.StroopItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stroop = games.NewStroopRun(s.rng, now)
	return s.stroop.Item
}

// AnswerStroop plays one trial. On completion the run resets to idle, a
// banner is stored and the result returned; otherwise the next item and
// trial index come back.
func (s *Session) AnswerStroop(color string, now time.Time) (games.StroopItem, int, *games.StroopResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stroop == nil {
		return games.StroopItem{}, 0, nil, ErrNoActiveGame
	}
	res, err := s.stroop.Answer(color, s.rng, now)
	if err != nil {
		return s.stroop.Item, s.stroop.Trial, nil, err
	}
	if res != nil {
		s.setBannerLocked("stroop", games.ResultBanner(res.Score, res.Trials, res.Elapsed, s.pickNewLocked, now))
		s.stroop = nil
		return games.StroopItem{}, games.Trials, res, nil
	}
	return s.stroop.Item, s.stroop.Trial, nil, nil
}

// --- Riddles ---

// StartRiddles samples a fresh 5-riddle run and returns the first
// question.
func (s *Session) StartRiddles(pool []content.Riddle) content.Riddle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.riddles = games.NewRiddleRun(pool, s.rng)
	cur, _ := s.riddles.Current()
	return cur
}

// CurrentRiddle returns the question in play.
func (s *Session) CurrentRiddle() (content.Riddle, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.riddles == nil {
		return content.Riddle{}, 0, ErrNoActiveGame
	}
	cur, ok := s.riddles.Current()
	if !ok {
		return content.Riddle{}, 0, ErrNoActiveGame
	}
	return cur, s.riddles.Index, nil
}

func (s *Session) RiddleHints() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.riddles == nil {
		return nil, ErrNoActiveGame
	}
	return s.riddles.Hints(), nil
}

// SubmitRiddle checks an answer; SkipRiddle advances without scoring.
// Both reset the run to idle and store a banner once the fifth question
// is consumed.
func (s *Session) SubmitRiddle(answer string, now time.Time) (string, bool, *games.QuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.riddles == nil {
		return "", false, nil, ErrNoActiveGame
	}
	correct, res, err := s.riddles.Submit(answer)
	if err != nil {
		return "", false, nil, err
	}
	feedback := s.riddles.Feedback
	if res != nil {
		s.setBannerLocked("riddles", games.ResultBanner(res.Score, res.Trials, 0, s.pickNewLocked, now))
		s.riddles = nil
	}
	return feedback, correct, res, nil
}

func (s *Session) SkipRiddle(now time.Time) (string, *games.QuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.riddles == nil {
		return "", nil, ErrNoActiveGame
	}
	res, err := s.riddles.Skip()
	if err != nil {
		return "", nil, err
	}
	feedback := s.riddles.Feedback
	if res != nil {
		s.setBannerLocked("riddles", games.ResultBanner(res.Score, res.Trials, 0, s.pickNewLocked, now))
		s.riddles = nil
	}
	return feedback, res, nil
}

// --- Gratitude blitz ---

func (s *Session) StartGratitude(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gratitude = games.NewGratitudeRun(now)
}

func (s *Session) ResetGratitude() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gratitude = nil
}

// GratitudeRemaining reports seconds left; ok is false when no timer is
// running.
func (s *Session) GratitudeRemaining(now time.Time) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gratitude == nil {
		return 0, false
	}
	return s.gratitude.Remaining(now), true
}

// SaveGratitude stores nothing durable (the notes are the user's own);
// it clears the timer and returns the rotating affirmation.
func (s *Session) SaveGratitude() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gratitude = nil
	return games.GratitudeMessage(s.pickNewLocked)
}
