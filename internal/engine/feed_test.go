package engine

import (
	"testing"

	"github.com/satiregames/orangenotlemons/server/internal/content"
	"github.com/satiregames/orangenotlemons/server/internal/domain/stats"
	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/platform/logger"
)

func newTestFeed() *FeedSystem {
	def, _ := content.Load()
	return NewFeedSystem(def.Feed, events.NewEventLog(nil), logger.NewLogger(), fixedSource{f: 0.99})
}

func TestScandalFiresAfterGracePeriod(t *testing.T) {
	fs := newTestFeed()
	v := stats.Initial()
	msg := fs.post(1, MessageCritical, "load-bearing leak")

	fs.CheckScandals(8, &v) // turn 8 - turn 1 = 7 < grace
	if v.Loyalty != 65 {
		t.Fatalf("Scandal fired inside grace period: loyalty %d", v.Loyalty)
	}

	fs.CheckScandals(9, &v)
	if v.Loyalty != 60 || v.Support != 35 || v.Health != 65 {
		t.Errorf("Expected -5 across loyalty/support/health, got %+v", v)
	}

	// Fired flag: never twice.
	fs.CheckScandals(10, &v)
	if v.Loyalty != 60 {
		t.Errorf("Scandal fired twice: loyalty %d", v.Loyalty)
	}
	_ = msg
}

func TestModerationCancelsScandal(t *testing.T) {
	fs := newTestFeed()
	v := stats.Initial()
	msg := fs.post(1, MessageCritical, "inconvenient accuracy")

	if _, err := fs.DeletePost(2, msg.ID, &v, 0.08); err != nil {
		t.Fatalf("DeletePost failed: %v", err)
	}
	loyaltyAfterModeration := v.Loyalty

	fs.CheckScandals(20, &v)
	if v.Loyalty != loyaltyAfterModeration {
		t.Errorf("Moderated scandal must not fire, loyalty %d", v.Loyalty)
	}
}

func TestModerationInDebtBumpsRate(t *testing.T) {
	fs := newTestFeed()
	v := stats.Initial()
	v.Money = 10 // delete fee pushes this negative
	msg := fs.post(1, MessageCritical, "pricey problem")

	rate, err := fs.DeletePost(2, msg.ID, &v, 0.08)
	if err != nil {
		t.Fatalf("DeletePost failed: %v", err)
	}
	if rate <= 0.08 {
		t.Errorf("Moderating into debt must bump the rate, got %v", rate)
	}
	if rate > 0.25 {
		t.Errorf("Moderation rate is capped at 0.25, got %v", rate)
	}
}

func TestFeedCapBounded(t *testing.T) {
	fs := newTestFeed()
	for turn := 1; turn <= 40; turn++ {
		fs.GenerateTurnChatter(turn)
	}
	if got := len(fs.Messages()); got > feedCap {
		t.Errorf("Feed length %d exceeds cap %d", got, feedCap)
	}
}

func TestRantSpendsBotFirst(t *testing.T) {
	fs := newTestFeed()
	v := stats.Initial() // one free bot

	fs.Rant(1, &v)
	if v.FreeBots != 0 {
		t.Errorf("Expected free bot consumed, got %d", v.FreeBots)
	}
	moneyAfterFirst := v.Money

	fs.Rant(1, &v)
	if v.Money >= moneyAfterFirst {
		t.Errorf("Second rant without bots must cost money")
	}
}
