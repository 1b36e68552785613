package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fletchernt/extinction-escape/internal/friendcode"
	"github.com/fletchernt/extinction-escape/internal/game"
	"github.com/fletchernt/extinction-escape/internal/prestige"
	"github.com/fletchernt/extinction-escape/internal/save"
	"github.com/fletchernt/extinction-escape/internal/telemetry"
)

// App holds what the handlers depend on.
type App struct {
	Engine    *game.Engine
	Saves     *save.Manager
	Telemetry telemetry.Repository
	Hub       *Hub

	BootNow time.Time
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// actionResult is the uniform purchase/claim response: ok mirrors the
// engine's silent no-op semantics, state is the fresh view.
type actionResult struct {
	OK    bool      `json:"ok"`
	State game.View `json:"state"`
}

func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	engine := app.Engine

	Handle(mux, rr, "GET /api/state", "Current game state view", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, engine.View())
	})

	Handle(mux, rr, "POST /api/rescue", "Manual rescue (+1)", "", func(w http.ResponseWriter, r *http.Request) {
		res := engine.ManualRescue()
		writeJSON(w, map[string]any{"result": res, "state": engine.View()})
	})

	Handle(mux, rr, "POST /api/units/{index}/buy", "Buy one rescue unit", "", func(w http.ResponseWriter, r *http.Request) {
		i, err := strconv.Atoi(r.PathValue("index"))
		if err != nil {
			http.Error(w, "bad index", http.StatusBadRequest)
			return
		}
		writeJSON(w, actionResult{OK: engine.PurchaseUnit(i), State: engine.View()})
	})

	Handle(mux, rr, "POST /api/upgrades/{index}/buy", "Buy one upgrade", "", func(w http.ResponseWriter, r *http.Request) {
		i, err := strconv.Atoi(r.PathValue("index"))
		if err != nil {
			http.Error(w, "bad index", http.StatusBadRequest)
			return
		}
		writeJSON(w, actionResult{OK: engine.PurchaseUpgrade(i), State: engine.View()})
	})

	Handle(mux, rr, "POST /api/permits/{kind}/buy", "Buy a permit upgrade", "", func(w http.ResponseWriter, r *http.Request) {
		kind := prestige.UpgradeKind(r.PathValue("kind"))
		writeJSON(w, actionResult{OK: engine.PurchasePermitUpgrade(kind), State: engine.View()})
	})

	Handle(mux, rr, "POST /api/prestige", "File for permits and reset the season", "", func(w http.ResponseWriter, r *http.Request) {
		res := engine.Prestige()
		writeJSON(w, map[string]any{"result": res, "state": engine.View()})
	})

	Handle(mux, rr, "POST /api/biomes/{id}/unlock", "Unlock a biome", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, actionResult{OK: engine.UnlockBiome(r.PathValue("id")), State: engine.View()})
	})

	Handle(mux, rr, "POST /api/achievements/{id}/claim", "Claim an achievement", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, actionResult{OK: engine.ClaimAchievement(r.PathValue("id")), State: engine.View()})
	})

	Handle(mux, rr, "POST /api/quest/claim", "Claim the current quest step", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, actionResult{OK: engine.ClaimQuest(), State: engine.View()})
	})

	Handle(mux, rr, "GET /api/friendcode", "Export the local friend code", "", func(w http.ResponseWriter, r *http.Request) {
		v := engine.View()
		code, err := friendcode.Encode(v.PlayerID, v.BestSeason)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]string{"code": code})
	})

	Handle(mux, rr, "POST /api/friendcode/compare", "Compare a friend code", `{"code":"..."}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Code string `json:"code"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		p, err := friendcode.Decode(body.Code)
		if err != nil {
			if errors.Is(err, friendcode.ErrMalformed) {
				http.Error(w, "invalid friend code", http.StatusUnprocessableEntity)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, friendcode.Compare(engine.View().BestSeason, p))
	})

	Handle(mux, rr, "POST /api/save", "Force a save", "", func(w http.ResponseWriter, r *http.Request) {
		if app.Saves == nil {
			http.Error(w, "persistence disabled", http.StatusServiceUnavailable)
			return
		}
		if err := app.Saves.Save(engine); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]bool{"ok": true})
	})

	Handle(mux, rr, "GET /api/stats", "Telemetry stats since boot", "", func(w http.ResponseWriter, r *http.Request) {
		if app.Telemetry == nil {
			writeJSON(w, telemetry.Stats{})
			return
		}
		events, err := app.Telemetry.GetEvents(app.BootNow, nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		stats, err := telemetry.CalculateStats(events, app.BootNow)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, stats)
	})

	Handle(mux, rr, "GET /api/routes", "List API routes", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, rr.List())
	})

	Handle(mux, rr, "GET /healthz", "Health check", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"ok":      true,
			"service": "extinction-escape",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	if app.Hub != nil {
		mux.HandleFunc("GET /ws", app.Hub.ServeWS)
	}
}
