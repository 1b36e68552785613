package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fletchernt/extinction-escape/internal/config"
	"github.com/fletchernt/extinction-escape/internal/serverapp"
)

func main() {
	cfg, err := config.Load("extinction_config.yml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	app, err := serverapp.New(serverapp.Options{
		Config: cfg,
		Logger: log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go app.Run(ctx)

	srv := &http.Server{Addr: cfg.Addr, Handler: app.Handler}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on http://localhost%s", cfg.Addr)
	serveErr := srv.ListenAndServe()

	// The run loop writes the final save; it has to finish before the store
	// closes underneath it.
	stop()
	app.Wait()
	if err := app.Close(); err != nil {
		log.Printf("close store: %v", err)
	}

	if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		log.Fatalf("serve: %v", serveErr)
	}
}
