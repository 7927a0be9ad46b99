package utils

import (
	"testing"
	"time"
)

func TestFeedDateLabel(t *testing.T) {
	created := time.Date(2025, time.October, 12, 10, 0, 0, 0, time.UTC)

	if got := FeedDateLabel(created, "pt"); got != "12 OUT" {
		t.Errorf("pt label = %q, want %q", got, "12 OUT")
	}
	if got := FeedDateLabel(created, "en"); got != "12 OCT" {
		t.Errorf("en label = %q, want %q", got, "12 OCT")
	}
}

func TestFeedDateLabelPadsDay(t *testing.T) {
	created := time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC)
	if got := FeedDateLabel(created, "pt"); got != "05 FEV" {
		t.Errorf("label = %q, want %q", got, "05 FEV")
	}
}

func TestFeedDateLabelUnknownLangFallsBack(t *testing.T) {
	created := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	if got := FeedDateLabel(created, "fr"); got != "01 DEZ" {
		t.Errorf("expected pt fallback, got %q", got)
	}
}
