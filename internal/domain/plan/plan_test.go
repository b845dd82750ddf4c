package plan

import (
	"testing"

	"github.com/satiregames/orangenotlemons/server/internal/domain/stats"
)

func threeBandCard() Card {
	return Card{
		ID:       "test-card",
		Name:     "Test Card",
		Category: CategoryEconomy,
		BaseCost: 100,
		Outcomes: []OutcomeBand{
			{MinScore: 60, MaxScore: 100, Title: "Great", Immediate: stats.Effect{Support: 10}},
			{MinScore: 30, MaxScore: 59, Title: "Fine", Immediate: stats.Effect{Support: 2}},
			{MinScore: -100, MaxScore: 29, Title: "Bad", Immediate: stats.Effect{Support: -8}},
		},
	}
}

func TestResolveCoversEveryScore(t *testing.T) {
	card := threeBandCard()
	if err := card.Validate(); err != nil {
		t.Fatalf("Card should validate: %v", err)
	}

	for score := -100; score <= 100; score++ {
		band := card.Resolve(score)
		if band.Title == "" {
			t.Fatalf("Score %d resolved to no band", score)
		}
	}
}

func TestResolveOvershootPicksBestBand(t *testing.T) {
	card := threeBandCard()

	band := card.Resolve(250)
	if band.Title != "Great" {
		t.Errorf("Overshoot should resolve to best band, got %q", band.Title)
	}
}

func TestResolveUndershootPicksWorstBand(t *testing.T) {
	card := threeBandCard()

	band := card.Resolve(-500)
	if band.Title != "Bad" {
		t.Errorf("Undershoot should resolve to worst band, got %q", band.Title)
	}
}

func TestResolveGapFallsToWorstBand(t *testing.T) {
	card := Card{
		ID:       "gapped",
		Category: CategoryMedia,
		Outcomes: []OutcomeBand{
			{MinScore: 60, MaxScore: 100, Title: "Great"},
			{MinScore: -100, MaxScore: 20, Title: "Bad"},
		},
	}

	band := card.Resolve(40)
	if band.Title != "Bad" {
		t.Errorf("Score in a band gap should resolve to worst band, got %q", band.Title)
	}
}

func TestValidateRejectsEmptyOutcomes(t *testing.T) {
	card := Card{ID: "empty", Category: CategoryPolitics}
	if err := card.Validate(); err == nil {
		t.Errorf("Expected validation error for empty outcomes list")
	}
}

func TestValidateRejectsOverlappingBands(t *testing.T) {
	card := Card{
		ID:       "overlap",
		Category: CategoryForeign,
		Outcomes: []OutcomeBand{
			{MinScore: 50, MaxScore: 100},
			{MinScore: 40, MaxScore: 60},
		},
	}
	if err := card.Validate(); err == nil {
		t.Errorf("Expected validation error for overlapping bands")
	}
}

func TestValidateRejectsUnknownCategory(t *testing.T) {
	card := threeBandCard()
	card.Category = "astrology"
	if err := card.Validate(); err == nil {
		t.Errorf("Expected validation error for unknown category")
	}
}
