package engine

import (
	"fmt"

	"github.com/satiregames/orangenotlemons/server/internal/content"
	"github.com/satiregames/orangenotlemons/server/internal/domain/rules"
	"github.com/satiregames/orangenotlemons/server/internal/domain/stats"
	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/platform/entropy"
	"github.com/satiregames/orangenotlemons/server/internal/platform/logger"
)

// MessageType is the closed set of feed message kinds.
type MessageType string

const (
	MessageNews     MessageType = "news"
	MessageRumor    MessageType = "rumor"
	MessageNonsense MessageType = "nonsense"
	MessageCritical MessageType = "critical"
	MessagePraise   MessageType = "praise"
	MessagePlayer   MessageType = "player"
)

// Feed economy constants.
const (
	feedCap = 50

	deletePostCost = 50
	banUserCost    = 200

	scandalGraceTurns  = 8
	scandalStatPenalty = 5
	rantBotCost        = 10
	rantSuccessCap     = 90
	rantSuccessBase    = 40
)

// FeedMessage is one post on the in-game social feed.
type FeedMessage struct {
	ID        string      `json:"id"`
	Type      MessageType `json:"type"`
	Text      string      `json:"text"`
	Turn      int         `json:"turn"`
	Moderated bool        `json:"moderated"`
	Fired     bool        `json:"-"`
}

// FeedSystem runs the satirical social feed: per-turn chatter, player rants,
// moderation and the deferred penalty for ignored scandals. The penalty is
// cancellation-by-flag: moderating a post before its grace period expires
// cancels the hit, checked at fire time.
type FeedSystem struct {
	eventLog *events.EventLog
	logger   *logger.Logger
	rng      entropy.Source
	tables   content.FeedTables

	messages []*FeedMessage
}

func NewFeedSystem(tables content.FeedTables, eventLog *events.EventLog, log *logger.Logger, rng entropy.Source) *FeedSystem {
	return &FeedSystem{
		eventLog: eventLog,
		logger:   log,
		rng:      rng,
		tables:   tables,
		messages: make([]*FeedMessage, 0),
	}
}

// Reset drops the feed for a new run.
func (fs *FeedSystem) Reset() {
	fs.messages = fs.messages[:0]
}

// Messages returns a copy of the current feed, newest last.
func (fs *FeedSystem) Messages() []FeedMessage {
	out := make([]FeedMessage, 0, len(fs.messages))
	for _, m := range fs.messages {
		out = append(out, *m)
	}
	return out
}

// GenerateTurnChatter posts 2-4 messages for the new turn. One in ten posts
// is a critical scandal that will bite if ignored; a smaller share is praise.
func (fs *FeedSystem) GenerateTurnChatter(turn int) {
	count := 2 + fs.rng.Intn(3)
	for i := 0; i < count; i++ {
		roll := fs.rng.Float64()
		var msgType MessageType
		var pool []string
		switch {
		case roll < 0.10:
			msgType, pool = MessageCritical, fs.tables.Critical
		case roll < 0.18:
			msgType, pool = MessagePraise, fs.tables.Praise
		case roll < 0.45:
			msgType, pool = MessageNews, fs.tables.News
		case roll < 0.72:
			msgType, pool = MessageRumor, fs.tables.Rumors
		default:
			msgType, pool = MessageNonsense, fs.tables.Nonsense
		}
		fs.post(turn, msgType, pool[fs.rng.Intn(len(pool))])
	}
}

func (fs *FeedSystem) post(turn int, msgType MessageType, text string) *FeedMessage {
	msg := &FeedMessage{
		ID:   events.GenerateEventID(),
		Type: msgType,
		Text: text,
		Turn: turn,
	}
	fs.messages = append(fs.messages, msg)
	if len(fs.messages) > feedCap {
		fs.messages = fs.messages[len(fs.messages)-feedCap:]
	}
	fs.eventLog.Emit(events.EventTypeFeedMessage, turn, text, map[string]interface{}{
		"messageId": msg.ID,
		"type":      string(msgType),
	})
	return msg
}

// find returns the live message with the given id.
func (fs *FeedSystem) find(messageID string) *FeedMessage {
	for _, m := range fs.messages {
		if m.ID == messageID {
			return m
		}
	}
	return nil
}

// DeletePost buries a post. Costs money and a little loyalty; paying while
// already in debt bumps the interest rate. Returns the updated base rate.
func (fs *FeedSystem) DeletePost(turn int, messageID string, v *stats.Vector, baseRate float64) (float64, error) {
	msg := fs.find(messageID)
	if msg == nil {
		return baseRate, fmt.Errorf("unknown feed message %q", messageID)
	}
	if msg.Moderated {
		return baseRate, fmt.Errorf("message %q already moderated", messageID)
	}
	msg.Moderated = true
	v.Apply(stats.Effect{Money: -deletePostCost, Loyalty: -3})
	if v.Money < 0 {
		baseRate = minRate(baseRate+rules.ModerateRateIncrease, rules.MaxModerationRate)
	}
	fs.eventLog.Emit(events.EventTypeModeration, turn, "A post quietly disappears.",
		map[string]interface{}{"messageId": messageID, "action": "delete"})
	return baseRate, nil
}

// BanUser nukes the poster. Expensive, disloyal-looking and chaotic.
func (fs *FeedSystem) BanUser(turn int, messageID string, v *stats.Vector, baseRate float64) (float64, error) {
	msg := fs.find(messageID)
	if msg == nil {
		return baseRate, fmt.Errorf("unknown feed message %q", messageID)
	}
	if msg.Moderated {
		return baseRate, fmt.Errorf("message %q already moderated", messageID)
	}
	msg.Moderated = true
	v.Apply(stats.Effect{Money: -banUserCost, Loyalty: -5, Chaos: 10})
	if v.Money < 0 {
		baseRate = minRate(baseRate+rules.ModerateRateIncrease, rules.MaxModerationRate)
	}
	fs.eventLog.Emit(events.EventTypeModeration, turn, "An account is banned for excessive accuracy.",
		map[string]interface{}{"messageId": messageID, "action": "ban"})
	return baseRate, nil
}

// CheckScandals fires the deferred penalty for every critical post that sat
// unmoderated through its grace period. The moderation flag is checked here,
// at fire time, never earlier.
func (fs *FeedSystem) CheckScandals(turn int, v *stats.Vector) {
	for _, msg := range fs.messages {
		if msg.Type != MessageCritical || msg.Fired || msg.Moderated {
			continue
		}
		if turn-msg.Turn < scandalGraceTurns {
			continue
		}
		msg.Fired = true
		actual := v.Apply(stats.Effect{
			Loyalty: -scandalStatPenalty,
			Support: -scandalStatPenalty,
			Health:  -scandalStatPenalty,
		})
		fs.eventLog.Emit(events.EventTypeScandalIgnored, turn,
			"An ignored scandal metastasizes.",
			map[string]interface{}{"messageId": msg.ID, "actual": actual})
	}
}

// Rant posts as the player. A free bot is consumed if available, otherwise
// it costs money. Success depends on luck; failure reads the room wrong.
func (fs *FeedSystem) Rant(turn int, v *stats.Vector) (FeedMessage, bool) {
	if v.FreeBots > 0 {
		v.Apply(stats.Effect{FreeBots: -1})
	} else {
		v.Apply(stats.Effect{Money: -rantBotCost})
	}

	successProb := rantSuccessBase + v.Luck/5
	if successProb > rantSuccessCap {
		successProb = rantSuccessCap
	}
	success := fs.rng.Intn(100) < successProb

	text := fs.tables.Rants[fs.rng.Intn(len(fs.tables.Rants))]
	msg := fs.post(turn, MessagePlayer, text)

	if success {
		v.Apply(stats.Effect{Support: 5 + fs.rng.Intn(11)})
	} else {
		v.Apply(stats.Effect{Support: -(10 + fs.rng.Intn(11))})
		mock := fs.tables.Mockery[fs.rng.Intn(len(fs.tables.Mockery))]
		fs.post(turn, MessageNonsense, mock)
	}
	fs.eventLog.Emit(events.EventTypeRantPosted, turn, text, map[string]interface{}{
		"messageId": msg.ID,
		"success":   success,
	})
	return *msg, success
}

func minRate(rate, cap float64) float64 {
	if rate > cap {
		return cap
	}
	return rate
}
