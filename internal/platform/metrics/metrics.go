// Package metrics provides observability for the game server.
package metrics

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// Collector gathers performance metrics.
type Collector struct {
	// Turn metrics
	TurnsAdvanced  int64
	TurnLatencySum int64 // nanoseconds
	TurnLatencyMax int64
	LastTurnTime   time.Time

	// Resolution metrics
	PlansExecuted  int64
	BlindPlays     int64
	TurnsSkipped   int64
	TimerExpiries  int64
	RunsStarted    int64
	RunsCompleted  int64

	// Market metrics
	TradesExecuted int64
	MarketShocks   int64

	// Event metrics
	EventsWritten    int64
	EventWriteErrors int64

	// WebSocket metrics
	WSConnectionsActive int64
	WSMessagesIn        int64
	WSMessagesOut       int64
	WSErrors            int64

	// System
	StartTime time.Time
	mu        sync.RWMutex
}

// Global collector instance
var collector = &Collector{
	StartTime: time.Now(),
}

// Get returns the global collector.
func Get() *Collector {
	return collector
}

// RecordTurn records a completed turn pipeline pass.
func (c *Collector) RecordTurn(latency time.Duration) {
	atomic.AddInt64(&c.TurnsAdvanced, 1)
	atomic.AddInt64(&c.TurnLatencySum, int64(latency))

	// Update max (non-atomic but acceptable for metrics)
	if int64(latency) > atomic.LoadInt64(&c.TurnLatencyMax) {
		atomic.StoreInt64(&c.TurnLatencyMax, int64(latency))
	}

	c.mu.Lock()
	c.LastTurnTime = time.Now()
	c.mu.Unlock()
}

// RecordPlanExecuted records a plan resolution, blind or spun.
func (c *Collector) RecordPlanExecuted(blind bool) {
	atomic.AddInt64(&c.PlansExecuted, 1)
	if blind {
		atomic.AddInt64(&c.BlindPlays, 1)
	}
}

// RecordSkip records a skipped turn; forced marks timer expiries.
func (c *Collector) RecordSkip(forced bool) {
	atomic.AddInt64(&c.TurnsSkipped, 1)
	if forced {
		atomic.AddInt64(&c.TimerExpiries, 1)
	}
}

// RecordRunStart records a new game.
func (c *Collector) RecordRunStart() {
	atomic.AddInt64(&c.RunsStarted, 1)
}

// RecordRunEnd records a terminal state being reached.
func (c *Collector) RecordRunEnd() {
	atomic.AddInt64(&c.RunsCompleted, 1)
}

// RecordTrade records an executed market order.
func (c *Collector) RecordTrade() {
	atomic.AddInt64(&c.TradesExecuted, 1)
}

// RecordMarketShock records a price shock applied by plan execution.
func (c *Collector) RecordMarketShock() {
	atomic.AddInt64(&c.MarketShocks, 1)
}

// RecordEventWrite records an event write to the database.
func (c *Collector) RecordEventWrite(err error) {
	atomic.AddInt64(&c.EventsWritten, 1)
	if err != nil {
		atomic.AddInt64(&c.EventWriteErrors, 1)
	}
}

// RecordWSConnection records WebSocket connection changes.
func (c *Collector) RecordWSConnection(delta int64) {
	atomic.AddInt64(&c.WSConnectionsActive, delta)
}

// RecordWSMessage records WebSocket messages.
func (c *Collector) RecordWSMessage(incoming bool) {
	if incoming {
		atomic.AddInt64(&c.WSMessagesIn, 1)
	} else {
		atomic.AddInt64(&c.WSMessagesOut, 1)
	}
}

// RecordWSError records a WebSocket error.
func (c *Collector) RecordWSError() {
	atomic.AddInt64(&c.WSErrors, 1)
}

// Snapshot returns current metrics as a map.
func (c *Collector) Snapshot() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	turns := atomic.LoadInt64(&c.TurnsAdvanced)

	var turnAvg float64
	if turns > 0 {
		turnAvg = float64(atomic.LoadInt64(&c.TurnLatencySum)) / float64(turns) / 1e6 // ms
	}

	return map[string]interface{}{
		"uptime_seconds": time.Since(c.StartTime).Seconds(),

		"turns": map[string]interface{}{
			"advanced":       turns,
			"avg_latency_ms": turnAvg,
			"max_latency_ms": float64(atomic.LoadInt64(&c.TurnLatencyMax)) / 1e6,
			"last_turn":      c.LastTurnTime.Format(time.RFC3339),
		},

		"resolution": map[string]interface{}{
			"plans_executed": atomic.LoadInt64(&c.PlansExecuted),
			"blind_plays":    atomic.LoadInt64(&c.BlindPlays),
			"turns_skipped":  atomic.LoadInt64(&c.TurnsSkipped),
			"timer_expiries": atomic.LoadInt64(&c.TimerExpiries),
			"runs_started":   atomic.LoadInt64(&c.RunsStarted),
			"runs_completed": atomic.LoadInt64(&c.RunsCompleted),
		},

		"market": map[string]interface{}{
			"trades_executed": atomic.LoadInt64(&c.TradesExecuted),
			"price_shocks":    atomic.LoadInt64(&c.MarketShocks),
		},

		"events": map[string]interface{}{
			"written": atomic.LoadInt64(&c.EventsWritten),
			"errors":  atomic.LoadInt64(&c.EventWriteErrors),
		},

		"websocket": map[string]interface{}{
			"active_connections": atomic.LoadInt64(&c.WSConnectionsActive),
			"messages_in":        atomic.LoadInt64(&c.WSMessagesIn),
			"messages_out":       atomic.LoadInt64(&c.WSMessagesOut),
			"errors":             atomic.LoadInt64(&c.WSErrors),
		},
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-cache")

		snapshot := collector.Snapshot()
		json.NewEncoder(w).Encode(snapshot)
	}
}

// PrometheusHandler returns metrics in Prometheus format.
func PrometheusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		c := collector

		fmt.Fprintf(w, "# HELP orange_turns_advanced Total turn pipeline passes\n")
		fmt.Fprintf(w, "# TYPE orange_turns_advanced counter\n")
		fmt.Fprintf(w, "orange_turns_advanced %d\n\n", atomic.LoadInt64(&c.TurnsAdvanced))

		fmt.Fprintf(w, "# HELP orange_plans_executed Total plan resolutions\n")
		fmt.Fprintf(w, "# TYPE orange_plans_executed counter\n")
		fmt.Fprintf(w, "orange_plans_executed %d\n\n", atomic.LoadInt64(&c.PlansExecuted))

		fmt.Fprintf(w, "# HELP orange_turns_skipped Total skipped turns\n")
		fmt.Fprintf(w, "# TYPE orange_turns_skipped counter\n")
		fmt.Fprintf(w, "orange_turns_skipped %d\n\n", atomic.LoadInt64(&c.TurnsSkipped))

		fmt.Fprintf(w, "# HELP orange_trades_executed Total market orders filled\n")
		fmt.Fprintf(w, "# TYPE orange_trades_executed counter\n")
		fmt.Fprintf(w, "orange_trades_executed %d\n\n", atomic.LoadInt64(&c.TradesExecuted))

		fmt.Fprintf(w, "# HELP orange_events_written Total events written\n")
		fmt.Fprintf(w, "# TYPE orange_events_written counter\n")
		fmt.Fprintf(w, "orange_events_written %d\n\n", atomic.LoadInt64(&c.EventsWritten))

		fmt.Fprintf(w, "# HELP orange_event_write_errors Total event write errors\n")
		fmt.Fprintf(w, "# TYPE orange_event_write_errors counter\n")
		fmt.Fprintf(w, "orange_event_write_errors %d\n\n", atomic.LoadInt64(&c.EventWriteErrors))

		fmt.Fprintf(w, "# HELP orange_ws_connections Active WebSocket connections\n")
		fmt.Fprintf(w, "# TYPE orange_ws_connections gauge\n")
		fmt.Fprintf(w, "orange_ws_connections %d\n\n", atomic.LoadInt64(&c.WSConnectionsActive))

		fmt.Fprintf(w, "# HELP orange_ws_messages_total Total WebSocket messages\n")
		fmt.Fprintf(w, "# TYPE orange_ws_messages_total counter\n")
		fmt.Fprintf(w, "orange_ws_messages_total{direction=\"in\"} %d\n", atomic.LoadInt64(&c.WSMessagesIn))
		fmt.Fprintf(w, "orange_ws_messages_total{direction=\"out\"} %d\n", atomic.LoadInt64(&c.WSMessagesOut))
	}
}
