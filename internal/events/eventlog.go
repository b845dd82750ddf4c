// Package events provides the notification log for the game.
// Every stat change, delayed-effect trigger, outcome resolution and state
// transition is recorded here; the log is the core's sole observable output
// besides the stat vector and score.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType defines the category of a game event.
type EventType string

const (
	EventTypeRunStarted      EventType = "RUN_STARTED"
	EventTypeTurnStarted     EventType = "TURN_STARTED"
	EventTypeStatChange      EventType = "STAT_CHANGE"
	EventTypeDelayedEffect   EventType = "DELAYED_EFFECT"
	EventTypeOutcomeResolved EventType = "OUTCOME_RESOLVED"
	EventTypePlanSelected    EventType = "PLAN_SELECTED"
	EventTypePlanResearched  EventType = "PLAN_RESEARCHED"
	EventTypeSlotSpin        EventType = "SLOT_SPIN"
	EventTypeTurnSkipped     EventType = "TURN_SKIPPED"
	EventTypeDebtInterest    EventType = "DEBT_INTEREST"
	EventTypeValuationDrift  EventType = "VALUATION_DRIFT"
	EventTypeSituationDrawn  EventType = "SITUATION_DRAWN"
	EventTypeTermTransition  EventType = "TERM_TRANSITION"
	EventTypeGameOver        EventType = "GAME_OVER"
	EventTypeMarketShock     EventType = "MARKET_SHOCK"
	EventTypeTradeExecuted   EventType = "TRADE_EXECUTED"
	EventTypeStockResearched EventType = "STOCK_RESEARCHED"
	EventTypeFeedMessage     EventType = "FEED_MESSAGE"
	EventTypeRantPosted      EventType = "RANT_POSTED"
	EventTypeModeration      EventType = "MODERATION"
	EventTypeScandalIgnored  EventType = "SCANDAL_IGNORED"
	EventTypeBotsGranted     EventType = "BOTS_GRANTED"
	EventTypeHighScore       EventType = "HIGH_SCORE"
)

// GameEvent represents an immutable record of something that happened in a run.
type GameEvent struct {
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Type      EventType   `json:"type"`
	Turn      int         `json:"turn"`
	Text      string      `json:"text"`    // Narrative text for the presentation layer
	Payload   interface{} `json:"payload"` // Event-specific data
}

// EventPersister defines how an event is durably stored.
type EventPersister interface {
	Append(event GameEvent) error
}

// EventLog is the in-memory append-only log of game events.
type EventLog struct {
	mu        sync.RWMutex
	events    []GameEvent
	persister EventPersister
}

// NewEventLog creates a new event log with an optional persister.
func NewEventLog(persister EventPersister) *EventLog {
	return &EventLog{
		events:    make([]GameEvent, 0),
		persister: persister,
	}
}

// Append adds a new event to the log. Events are immutable once appended.
func (el *EventLog) Append(event GameEvent) {
	el.mu.Lock()
	defer el.mu.Unlock()
	el.events = append(el.events, event)

	if el.persister != nil {
		// Write through to persistent storage
		go func(e GameEvent) {
			_ = el.persister.Append(e)
		}(event)
	}
}

// Emit is the convenience path used by the engine subsystems: it stamps an ID
// and timestamp and appends.
func (el *EventLog) Emit(t EventType, turn int, text string, payload interface{}) {
	el.Append(GameEvent{
		ID:        GenerateEventID(),
		Timestamp: time.Now(),
		Type:      t,
		Turn:      turn,
		Text:      text,
		Payload:   payload,
	})
}

// GetByTurn returns all events recorded during a specific turn.
func (el *EventLog) GetByTurn(turn int) []GameEvent {
	el.mu.RLock()
	defer el.mu.RUnlock()

	var result []GameEvent
	for _, e := range el.events {
		if e.Turn == turn {
			result = append(result, e)
		}
	}
	return result
}

// GetByType returns all events of a specific type.
func (el *EventLog) GetByType(t EventType) []GameEvent {
	el.mu.RLock()
	defer el.mu.RUnlock()

	var result []GameEvent
	for _, e := range el.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// Replay returns the full history of events for state reconstruction.
func (el *EventLog) Replay() []GameEvent {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return el.events
}

// GenerateEventID creates a unique event identifier.
func GenerateEventID() string {
	return uuid.NewString()
}
