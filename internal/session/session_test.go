package session

import (
	"errors"
	"testing"
	"time"

	"github.com/mannmitra/mannmitra/internal/content"
	"github.com/mannmitra/mannmitra/internal/games"
)

func TestManagerCreateGetEnd(t *testing.T) {
	m := NewManager()

	s := m.Create()
	if s.Token == "" {
		t.Fatal("token should not be empty")
	}
	if s.Lang() != LangEnglish {
		t.Fatalf("expected english default, got %s", s.Lang())
	}

	got, err := m.Get(s.Token)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != s {
		t.Fatal("get returned a different session")
	}

	m.End(s.Token)
	if _, err := m.Get(s.Token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestHistoryIsAppendOnlyCopy(t *testing.T) {
	s := NewManager().CreateSeeded(1)
	s.Append(RoleUser, "hello")
	s.Append(RoleAssistant, "hi there")

	hist := s.History()
	if len(hist) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(hist))
	}
	hist[0].Text = "mutated"
	if s.History()[0].Text != "hello" {
		t.Fatal("History must return a copy")
	}
}

func TestLastUserMessages(t *testing.T) {
	s := NewManager().CreateSeeded(1)
	for _, msg := range []string{"one", "two", "three", "four"} {
		s.Append(RoleUser, msg)
		s.Append(RoleAssistant, "ok")
	}

	got := s.LastUserMessages(3)
	if len(got) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(got))
	}
	if got[0] != "two" || got[2] != "four" {
		t.Fatalf("expected oldest-first tail, got %v", got)
	}
}

func TestParseLanguage(t *testing.T) {
	cases := map[string]Language{
		"hindi":    LangHindi,
		"hinglish": LangHinglish,
		"english":  LangEnglish,
		"klingon":  LangEnglish,
		"":         LangEnglish,
	}
	for in, want := range cases {
		if got := ParseLanguage(in); got != want {
			t.Fatalf("ParseLanguage(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestPickNewAvoidsImmediateRepeat(t *testing.T) {
	s := NewManager().CreateSeeded(42)
	pool := []string{"a", "b", "c"}

	last := s.PickNew("k", pool)
	for i := 0; i < 50; i++ {
		next := s.PickNew("k", pool)
		if next == last {
			t.Fatalf("iteration %d repeated %q", i, next)
		}
		last = next
	}
}

func TestPickNewSingleEntryPool(t *testing.T) {
	s := NewManager().CreateSeeded(1)
	pool := []string{"only"}
	if s.PickNew("k", pool) != "only" || s.PickNew("k", pool) != "only" {
		t.Fatal("single-entry pool must always return its entry")
	}
	if s.PickNew("k", nil) != "" {
		t.Fatal("empty pool must return empty string")
	}
}

func TestSuggestionLifecycle(t *testing.T) {
	s := NewManager().CreateSeeded(1)
	if s.Suggestion() != nil {
		t.Fatal("expected no suggestion initially")
	}

	s.SetSuggestion(&Suggestion{ID: "breathing_478", Kind: KindExercise, Title: "Try 4-7-8 breathing"})
	got := s.Suggestion()
	if got == nil || got.ID != "breathing_478" {
		t.Fatalf("unexpected suggestion %+v", got)
	}
	got.ID = "mutated"
	if s.Suggestion().ID != "breathing_478" {
		t.Fatal("Suggestion must return a copy")
	}

	s.ClearSuggestion()
	if s.Suggestion() != nil {
		t.Fatal("expected suggestion cleared")
	}
}

func TestStroopFlowStoresBanner(t *testing.T) {
	s := NewManager().CreateSeeded(7)
	now := time.Now()

	item := s.StartStroop(now)
	var result *games.StroopResult
	for i := 0; i < games.Trials; i++ {
		var err error
		var next games.StroopItem
		next, _, result, err = s.AnswerStroop(item.Ink, now.Add(10*time.Second))
		if err != nil {
			t.Fatalf("answer %d failed: %v", i, err)
		}
		item = next
	}
	if result == nil {
		t.Fatal("expected result after final trial")
	}
	if result.Score != games.Trials {
		t.Fatalf("expected perfect score, got %d", result.Score)
	}

	// The run is idle again and a banner is up.
	if _, _, _, err := s.AnswerStroop("RED", now); !errors.Is(err, ErrNoActiveGame) {
		t.Fatalf("expected ErrNoActiveGame after completion, got %v", err)
	}
	banner, ok := s.Banner("stroop", now.Add(10*time.Second))
	if !ok {
		t.Fatal("expected banner after completion")
	}
	if banner.Tier != games.TierGood {
		t.Fatalf("expected good banner, got %s", banner.Tier)
	}
	if _, ok := s.Banner("stroop", now.Add(10*time.Second).Add(games.BannerLifetime)); ok {
		t.Fatal("banner should expire")
	}
}

func TestAnswerStroopWithoutRun(t *testing.T) {
	s := NewManager().CreateSeeded(1)
	if _, _, _, err := s.AnswerStroop("RED", time.Now()); !errors.Is(err, ErrNoActiveGame) {
		t.Fatalf("expected ErrNoActiveGame, got %v", err)
	}
}

func TestRiddleFlow(t *testing.T) {
	s := NewManager().CreateSeeded(7)
	pool := []content.Riddle{
		{Question: "q1", Answers: []string{"a1"}, Hints: []string{"h1"}},
		{Question: "q2", Answers: []string{"a2"}, Hints: []string{"h2"}},
		{Question: "q3", Answers: []string{"a3"}, Hints: []string{"h3"}},
		{Question: "q4", Answers: []string{"a4"}, Hints: []string{"h4"}},
		{Question: "q5", Answers: []string{"a5"}, Hints: []string{"h5"}},
	}
	now := time.Now()

	first := s.StartRiddles(pool)
	cur, index, err := s.CurrentRiddle()
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if index != 0 || cur.Question != first.Question {
		t.Fatalf("unexpected current riddle %q at %d", cur.Question, index)
	}

	hints, err := s.RiddleHints()
	if err != nil || len(hints) != 1 {
		t.Fatalf("expected 1 hint, got %v (%v)", hints, err)
	}

	var result *games.QuizResult
	for i := 0; i < games.Trials; i++ {
		cur, _, err := s.CurrentRiddle()
		if err != nil {
			t.Fatalf("current %d failed: %v", i, err)
		}
		_, _, result, err = s.SubmitRiddle(cur.Answers[0], now)
		if err != nil {
			t.Fatalf("submit %d failed: %v", i, err)
		}
	}
	if result == nil || result.Score != games.Trials {
		t.Fatalf("unexpected result %+v", result)
	}

	if _, _, err := s.CurrentRiddle(); !errors.Is(err, ErrNoActiveGame) {
		t.Fatalf("expected ErrNoActiveGame after completion, got %v", err)
	}
	if _, ok := s.Banner("riddles", now); !ok {
		t.Fatal("expected riddles banner")
	}
}

func TestSkipRiddleWithoutRun(t *testing.T) {
	s := NewManager().CreateSeeded(1)
	if _, _, err := s.SkipRiddle(time.Now()); !errors.Is(err, ErrNoActiveGame) {
		t.Fatalf("expected ErrNoActiveGame, got %v", err)
	}
}

func TestGratitudeLifecycle(t *testing.T) {
	s := NewManager().CreateSeeded(1)
	now := time.Now()

	if _, running := s.GratitudeRemaining(now); running {
		t.Fatal("no timer should run before start")
	}

	s.StartGratitude(now)
	remaining, running := s.GratitudeRemaining(now.Add(20 * time.Second))
	if !running || remaining != 40 {
		t.Fatalf("expected 40s running, got %d (%v)", remaining, running)
	}

	msg := s.SaveGratitude()
	if msg == "" {
		t.Fatal("expected affirmation message")
	}
	if _, running := s.GratitudeRemaining(now); running {
		t.Fatal("save must clear the timer")
	}
}
