package games

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestGratitudeRemaining(t *testing.T) {
	start := time.Now()
	run := NewGratitudeRun(start)

	if got := run.Remaining(start); got != 60 {
		t.Fatalf("expected 60s at start, got %d", got)
	}
	if got := run.Remaining(start.Add(25 * time.Second)); got != 35 {
		t.Fatalf("expected 35s, got %d", got)
	}
	if got := run.Remaining(start.Add(2 * time.Minute)); got != 0 {
		t.Fatalf("remaining must clamp at zero, got %d", got)
	}
}

func TestGratitudeMessage(t *testing.T) {
	msg := GratitudeMessage(firstPick)
	if !strings.Contains(msg, gratitudeCheers[0]) || !strings.Contains(msg, gratitudeQuotes[0]) {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestCleanNotes(t *testing.T) {
	got := CleanNotes([]string{" chai with mom ", "", "   ", "sunny morning"})
	want := []string{"chai with mom", "sunny morning"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CleanNotes = %v, want %v", got, want)
	}
}
