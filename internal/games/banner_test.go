package games

import (
	"strings"
	"testing"
	"time"
)

func firstPick(key string, pool []string) string {
	return pool[0]
}

func TestResultBannerGoodShowsElapsed(t *testing.T) {
	now := time.Now()
	b := ResultBanner(5, 5, 12500*time.Millisecond, firstPick, now)

	if b.Tier != TierGood {
		t.Fatalf("expected tier good, got %s", b.Tier)
	}
	if !strings.Contains(b.Text, "5/5 in 12.5s") {
		t.Fatalf("expected score and elapsed, got %q", b.Text)
	}
	if !strings.Contains(b.Text, quotes[0]) {
		t.Fatalf("expected quote, got %q", b.Text)
	}
	if b.Expires != now.Add(BannerLifetime) {
		t.Fatalf("unexpected expiry %s", b.Expires)
	}
}

func TestResultBannerAverageOmitsElapsed(t *testing.T) {
	b := ResultBanner(3, 5, 10*time.Second, firstPick, time.Now())
	if b.Tier != TierAverage {
		t.Fatalf("expected tier average, got %s", b.Tier)
	}
	if strings.Contains(b.Text, "in 10") {
		t.Fatalf("elapsed should only show on good runs, got %q", b.Text)
	}
	if !strings.Contains(b.Text, "3/5") {
		t.Fatalf("expected score, got %q", b.Text)
	}
}

func TestResultBannerLow(t *testing.T) {
	b := ResultBanner(1, 5, 0, firstPick, time.Now())
	if b.Tier != TierLow {
		t.Fatalf("expected tier low, got %s", b.Tier)
	}
	if !strings.Contains(b.Text, cheerLow[0]) {
		t.Fatalf("expected low cheer, got %q", b.Text)
	}
}

func TestBannerExpiry(t *testing.T) {
	now := time.Now()
	b := ResultBanner(5, 5, time.Second, firstPick, now)

	if b.Expired(now) {
		t.Fatal("banner expired immediately")
	}
	if b.Expired(now.Add(BannerLifetime - time.Second)) {
		t.Fatal("banner expired early")
	}
	if !b.Expired(now.Add(BannerLifetime)) {
		t.Fatal("banner should expire at the lifetime boundary")
	}
}
