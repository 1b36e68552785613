package serverapp

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fletchernt/extinction-escape/internal/catalog"
	"github.com/fletchernt/extinction-escape/internal/config"
	"github.com/fletchernt/extinction-escape/internal/game"
	"github.com/fletchernt/extinction-escape/internal/httpmw"
	"github.com/fletchernt/extinction-escape/internal/save"
	"github.com/fletchernt/extinction-escape/internal/server"
	"github.com/fletchernt/extinction-escape/internal/telemetry"
)

type Options struct {
	Config *config.Config
	Logger *log.Logger
	Clock  game.Clock

	// Store overrides the disk-backed store, mainly for tests.
	Store save.Store
}

// Server wires the engine, persistence and HTTP surface together and owns
// the tick/autosave loop.
type Server struct {
	Engine  *game.Engine
	Saves   *save.Manager
	Hub     *server.Hub
	Handler http.Handler

	cfg    *config.Config
	bal    config.Balance
	store  save.Store
	logger *log.Logger
	clock  game.Clock
	done   chan struct{}
}

// New builds a ready-to-serve Server. A store that fails to open degrades
// to in-memory play with a logged warning, never a refusal to start.
func New(opts Options) (*Server, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Clock == nil {
		opts.Clock = game.RealClock{}
	}

	bal := opts.Config.EffectiveBalance()

	store := opts.Store
	if store == nil {
		disk, err := save.OpenLevelStore(filepath.Join(opts.Config.DataDir, "save"))
		if err != nil {
			opts.Logger.Printf("save store unavailable, playing in memory: %v", err)
			store = save.NewMemoryStore()
		} else {
			store = disk
		}
	}

	cat := catalog.Seed()
	events := telemetry.NewMemoryRepository()
	saves := save.NewManager(store, bal, opts.Clock, opts.Logger)

	st, loadRes := saves.Load(cat)
	if loadRes.Fresh {
		opts.Logger.Printf("starting a fresh rescue operation, player %s", st.PlayerID)
	} else {
		opts.Logger.Printf("restored save: offline %.0fs credited %.1f, daily bonus %.0f",
			loadRes.OfflineSeconds, loadRes.OfflineCredit, loadRes.DailyBonus)
	}
	if loadRes.OfflineCredit > 0 {
		_ = events.RecordEvent(telemetry.EventOfflineCredit, telemetry.EventMetadata{
			"seconds": loadRes.OfflineSeconds,
			"credit":  loadRes.OfflineCredit,
		})
	}
	if loadRes.DailyBonus > 0 {
		_ = events.RecordEvent(telemetry.EventDailyBonus, telemetry.EventMetadata{
			"coins": loadRes.DailyBonus,
		})
	}

	rng := rand.New(rand.NewSource(opts.Clock.Now().UnixNano()))
	engine := game.NewEngine(bal, cat, st, opts.Clock, rng, events)

	hub := server.NewHub(opts.Logger)
	app := &server.App{
		Engine:    engine,
		Saves:     saves,
		Telemetry: events,
		Hub:       hub,
		BootNow:   opts.Clock.Now(),
	}

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}
	server.RegisterStatic(mux)
	server.RegisterAPIRoutes(mux, rr, app)

	handler := httpmw.Chain(mux,
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRateLimit(opts.Config.Limits.RequestsPerSecond, opts.Config.Limits.Burst),
	)

	return &Server{
		Engine:  engine,
		Saves:   saves,
		Hub:     hub,
		Handler: handler,
		cfg:     opts.Config,
		bal:     bal,
		store:   store,
		logger:  opts.Logger,
		clock:   opts.Clock,
		done:    make(chan struct{}),
	}, nil
}

// Run drives the simulation until ctx is cancelled: one engine tick per
// tick period, a push to websocket clients after each tick, an autosave on
// its own cadence, and a final save on the way out. Callers that own the
// store must Wait before Close so the final save lands.
func (s *Server) Run(ctx context.Context) {
	defer close(s.done)

	tickEvery := time.Duration(s.bal.TickSeconds) * time.Second
	if tickEvery <= 0 {
		tickEvery = time.Second
	}
	saveEvery := time.Duration(s.bal.AutosaveSeconds) * time.Second
	if saveEvery <= 0 {
		saveEvery = 30 * time.Second
	}

	ticker := time.NewTicker(tickEvery)
	defer ticker.Stop()
	saver := time.NewTicker(saveEvery)
	defer saver.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := s.Saves.Save(s.Engine); err == nil {
				s.logger.Printf("final save written")
			}
			return
		case <-ticker.C:
			s.Engine.Tick()
			s.Hub.Broadcast(s.Engine.View())
		case <-saver.C:
			_ = s.Saves.Save(s.Engine)
		}
	}
}

// Wait blocks until the run loop has exited and the final save is written.
func (s *Server) Wait() {
	<-s.done
}

// Close releases the save store.
func (s *Server) Close() error {
	return s.store.Close()
}
