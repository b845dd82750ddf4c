// REST surface for the desktop client. Mutations go through the session,
// which serializes them against the turn timer; reads are snapshots.
package network

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/satiregames/orangenotlemons/server/internal/engine"
	"github.com/satiregames/orangenotlemons/server/internal/infra/storage"
	"github.com/satiregames/orangenotlemons/server/internal/platform/logger"
)

// GameAPI handles HTTP interactions with the running session.
type GameAPI struct {
	session *engine.Session
	scores  storage.ScoreRepository
	recon   *storage.Reconstructor
	wsHub   *Hub
	logger  *logger.Logger
}

// NewGameAPI creates the REST handler set.
func NewGameAPI(session *engine.Session, scores storage.ScoreRepository, recon *storage.Reconstructor, hub *Hub, log *logger.Logger) *GameAPI {
	return &GameAPI{
		session: session,
		scores:  scores,
		recon:   recon,
		wsHub:   hub,
		logger:  log,
	}
}

// HandleNewGame starts a fresh run, discarding the current one.
// POST /api/game/new
func (api *GameAPI) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	api.session.StartRun()
	api.jsonSuccess(w, api.session.Snapshot())
}

// HandleState returns the full state snapshot.
// GET /api/game/state
func (api *GameAPI) HandleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	api.jsonSuccess(w, api.session.Snapshot())
}

// HandleSelectPlan picks one of the offered cards.
// POST /api/plan/select
func (api *GameAPI) HandleSelectPlan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlanID string `json:"plan_id"`
	}
	if !api.decodePost(w, r, &req) {
		return
	}
	if err := api.session.SelectPlan(req.PlanID); err != nil {
		api.jsonError(w, err.Error(), http.StatusConflict)
		return
	}
	api.jsonSuccess(w, api.session.Snapshot())
}

// HandleResearchPlan buys one hidden attribute of an offered card.
// POST /api/plan/research
func (api *GameAPI) HandleResearchPlan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlanID    string `json:"plan_id"`
		Attribute string `json:"attribute"`
		PayWith   string `json:"pay_with"`
	}
	if !api.decodePost(w, r, &req) {
		return
	}
	revealed, err := api.session.ResearchPlan(req.PlanID, req.Attribute, req.PayWith)
	if err != nil {
		api.jsonError(w, err.Error(), http.StatusConflict)
		return
	}
	api.jsonSuccess(w, map[string]interface{}{"revealed": revealed})
}

// HandleSpin pulls the slot machine lever for the selected plan.
// POST /api/plan/spin
func (api *GameAPI) HandleSpin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	result, err := api.session.SpinSlot()
	if err != nil {
		api.jsonError(w, err.Error(), http.StatusConflict)
		return
	}
	api.jsonSuccess(w, result)
}

// HandleExecute resolves the selected plan with the accumulated spin total.
// POST /api/plan/execute
func (api *GameAPI) HandleExecute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := api.session.ExecutePlan(); err != nil {
		api.jsonError(w, err.Error(), http.StatusConflict)
		return
	}
	api.jsonSuccess(w, api.session.Snapshot())
}

// HandleBlind resolves the selected plan without spinning.
// POST /api/plan/blind
func (api *GameAPI) HandleBlind(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	score, err := api.session.ExecuteBlind()
	if err != nil {
		api.jsonError(w, err.Error(), http.StatusConflict)
		return
	}
	api.jsonSuccess(w, map[string]interface{}{"score": score})
}

// HandleSkip passes the turn, taking the skip penalty.
// POST /api/turn/skip
func (api *GameAPI) HandleSkip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := api.session.SkipTurn(); err != nil {
		api.jsonError(w, err.Error(), http.StatusConflict)
		return
	}
	api.jsonSuccess(w, api.session.Snapshot())
}

// HandleModerate deletes a post or bans its author.
// POST /api/feed/moderate
func (api *GameAPI) HandleModerate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MessageID string `json:"message_id"`
		Action    string `json:"action"` // "delete" or "ban"
	}
	if !api.decodePost(w, r, &req) {
		return
	}
	if err := api.session.ModerateFeed(req.MessageID, req.Action); err != nil {
		api.jsonError(w, err.Error(), http.StatusConflict)
		return
	}
	api.jsonSuccess(w, api.session.Snapshot())
}

// HandleRant posts an all-caps rant, spending a bot or money.
// POST /api/feed/rant
func (api *GameAPI) HandleRant(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	post, success, err := api.session.Rant()
	if err != nil {
		api.jsonError(w, err.Error(), http.StatusConflict)
		return
	}
	api.jsonSuccess(w, map[string]interface{}{"post": post, "success": success})
}

// HandleTrade executes a market order.
// POST /api/market/trade
func (api *GameAPI) HandleTrade(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action       string `json:"action"` // "buy", "sell", "short", "close"
		InstrumentID string `json:"instrument_id"`
		Shares       int    `json:"shares"`
	}
	if !api.decodePost(w, r, &req) {
		return
	}
	receipt, err := api.session.Trade(engine.TradeAction(req.Action), req.InstrumentID, req.Shares)
	if err != nil {
		api.jsonError(w, err.Error(), http.StatusConflict)
		return
	}
	api.jsonSuccess(w, receipt)
}

// HandleStockResearch raises the research level on an instrument.
// POST /api/market/research
func (api *GameAPI) HandleStockResearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InstrumentID string `json:"instrument_id"`
	}
	if !api.decodePost(w, r, &req) {
		return
	}
	level, hints, err := api.session.ResearchStock(req.InstrumentID)
	if err != nil {
		api.jsonError(w, err.Error(), http.StatusConflict)
		return
	}
	api.jsonSuccess(w, map[string]interface{}{"level": level, "hints": hints})
}

// HandleOutlook returns hint lines for an instrument at the current level.
// GET /api/market/outlook?instrument_id=XXX
func (api *GameAPI) HandleOutlook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := r.URL.Query().Get("instrument_id")
	if id == "" {
		api.jsonError(w, "Missing instrument_id", http.StatusBadRequest)
		return
	}
	api.jsonSuccess(w, map[string]interface{}{
		"instrument_id": id,
		"hints":         api.session.StockOutlook(id),
	})
}

// HandleShare returns the brag line for the end-of-run screen.
// GET /api/game/share
func (api *GameAPI) HandleShare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	api.jsonSuccess(w, map[string]string{"text": api.session.ShareText()})
}

// HandleHistory returns the financial chart rows, pregame months included.
// GET /api/history
func (api *GameAPI) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	api.jsonSuccess(w, api.session.Snapshot().History)
}

// HandleScores returns the leaderboard.
// GET /api/scores?limit=N
func (api *GameAPI) HandleScores(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	top, err := api.scores.Top(r.Context(), limit)
	if err != nil {
		api.jsonError(w, "Failed to load scores", http.StatusInternalServerError)
		return
	}
	api.jsonSuccess(w, map[string]interface{}{
		"scores":       top,
		"generated_at": time.Now().Format(time.RFC3339),
	})
}

// HandleRecap returns the reconstructed run summary from the ledger.
// GET /api/recap
func (api *GameAPI) HandleRecap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	summary, err := api.recon.RebuildRunSummary(r.Context())
	if err != nil {
		api.jsonError(w, "Failed to rebuild summary", http.StatusInternalServerError)
		return
	}
	api.jsonSuccess(w, summary)
}

// RegisterRoutes sets up the game API routes.
func (api *GameAPI) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/game/new", api.HandleNewGame)
	mux.HandleFunc("/api/game/state", api.HandleState)
	mux.HandleFunc("/api/game/share", api.HandleShare)
	mux.HandleFunc("/api/plan/select", api.HandleSelectPlan)
	mux.HandleFunc("/api/plan/research", api.HandleResearchPlan)
	mux.HandleFunc("/api/plan/spin", api.HandleSpin)
	mux.HandleFunc("/api/plan/execute", api.HandleExecute)
	mux.HandleFunc("/api/plan/blind", api.HandleBlind)
	mux.HandleFunc("/api/turn/skip", api.HandleSkip)
	mux.HandleFunc("/api/feed/moderate", api.HandleModerate)
	mux.HandleFunc("/api/feed/rant", api.HandleRant)
	mux.HandleFunc("/api/market/trade", api.HandleTrade)
	mux.HandleFunc("/api/market/research", api.HandleStockResearch)
	mux.HandleFunc("/api/market/outlook", api.HandleOutlook)
	mux.HandleFunc("/api/history", api.HandleHistory)
	mux.HandleFunc("/api/scores", api.HandleScores)
	mux.HandleFunc("/api/recap", api.HandleRecap)
}

// decodePost enforces POST and parses the JSON body.
func (api *GameAPI) decodePost(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if r.Method != http.MethodPost {
		api.jsonError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		api.jsonError(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// jsonError sends an error response.
func (api *GameAPI) jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// jsonSuccess sends a success response.
func (api *GameAPI) jsonSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(data)
}
