// JSON export of the run's event history. Lets the post-game screen and
// curious players replay the immutable record of a term.
package network

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/platform/logger"
)

// ReplayHandler provides the event replay API.
type ReplayHandler struct {
	eventLog *events.EventLog
	logger   *logger.Logger
}

// NewReplayHandler creates a new replay handler.
func NewReplayHandler(el *events.EventLog, log *logger.Logger) *ReplayHandler {
	return &ReplayHandler{
		eventLog: el,
		logger:   log,
	}
}

// ReplayEvent is a sanitized event for the replay viewer.
type ReplayEvent struct {
	ID        string      `json:"id"`
	Timestamp string      `json:"timestamp"`
	Turn      int         `json:"turn"`
	Type      string      `json:"type"`
	Summary   string      `json:"summary"`
	Impact    string      `json:"impact"`
	Details   interface{} `json:"details,omitempty"`
}

// ReplayResponse is the API response for a replay query.
type ReplayResponse struct {
	TotalEvents int           `json:"total_events"`
	FilteredBy  string        `json:"filtered_by,omitempty"`
	GeneratedAt string        `json:"generated_at"`
	Events      []ReplayEvent `json:"events"`
}

// HandleReplay returns the event replay.
// GET /api/replay?turn=N&type=OUTCOME_RESOLVED
func (rh *ReplayHandler) HandleReplay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		rh.jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Optional filters
	turnStr := r.URL.Query().Get("turn")
	eventType := r.URL.Query().Get("type")

	allEvents := rh.eventLog.Replay()

	var replayEvents []ReplayEvent
	filterDesc := ""

	for _, e := range allEvents {
		if turnStr != "" {
			turn, _ := strconv.Atoi(turnStr)
			if e.Turn != turn {
				continue
			}
			filterDesc = "Turn " + turnStr
		}

		if eventType != "" && string(e.Type) != eventType {
			continue
		}

		replayEvents = append(replayEvents, rh.convertToReplayEvent(e))
	}

	response := ReplayResponse{
		TotalEvents: len(replayEvents),
		FilteredBy:  filterDesc,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Events:      replayEvents,
	}

	rh.logger.Infof("Replay served: %d events (filter %q)", len(replayEvents), filterDesc)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleEventDetail returns one event with its full payload.
// GET /api/replay/event?event_id=XXX
func (rh *ReplayHandler) HandleEventDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		rh.jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	eventID := r.URL.Query().Get("event_id")
	if eventID == "" {
		rh.jsonError(w, "Missing event_id", http.StatusBadRequest)
		return
	}

	for _, e := range rh.eventLog.Replay() {
		if e.ID == eventID {
			detail := rh.convertToReplayEvent(e)
			detail.Details = e.Payload

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(detail)
			return
		}
	}

	rh.jsonError(w, "Event not found", http.StatusNotFound)
}

// HandleStats returns aggregate counts over the event history.
// GET /api/replay/stats
func (rh *ReplayHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		rh.jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	allEvents := rh.eventLog.Replay()

	stats := map[string]int{
		"total_events":   len(allEvents),
		"plans_resolved": 0,
		"turns_skipped":  0,
		"market_shocks":  0,
		"trades":         0,
		"scandals":       0,
	}

	for _, e := range allEvents {
		switch e.Type {
		case events.EventTypeOutcomeResolved:
			stats["plans_resolved"]++
		case events.EventTypeTurnSkipped:
			stats["turns_skipped"]++
		case events.EventTypeMarketShock:
			stats["market_shocks"]++
		case events.EventTypeTradeExecuted:
			stats["trades"]++
		case events.EventTypeScandalIgnored:
			stats["scandals"]++
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"stats":        stats,
	})
}

// RegisterRoutes sets up the replay API routes.
func (rh *ReplayHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/replay", rh.HandleReplay)
	mux.HandleFunc("/api/replay/event", rh.HandleEventDetail)
	mux.HandleFunc("/api/replay/stats", rh.HandleStats)
}

// convertToReplayEvent transforms an internal event to public format.
func (rh *ReplayHandler) convertToReplayEvent(e events.GameEvent) ReplayEvent {
	return ReplayEvent{
		ID:        e.ID,
		Timestamp: e.Timestamp.Format("15:04:05"),
		Turn:      e.Turn,
		Type:      string(e.Type),
		Summary:   e.Text,
		Impact:    rh.determineImpact(e),
	}
}

// determineImpact classifies the event for the replay viewer.
func (rh *ReplayHandler) determineImpact(e events.GameEvent) string {
	switch e.Type {
	case events.EventTypeScandalIgnored, events.EventTypeDebtInterest,
		events.EventTypeTurnSkipped, events.EventTypeMarketShock:
		return "NEGATIVE"
	case events.EventTypeOutcomeResolved, events.EventTypeHighScore,
		events.EventTypeBotsGranted:
		return "POSITIVE"
	default:
		return "NEUTRAL"
	}
}

// jsonError sends an error response.
func (rh *ReplayHandler) jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
