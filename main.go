package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/fletchernt/extinction-escape/internal/config"
	"github.com/fletchernt/extinction-escape/internal/save"
	"github.com/fletchernt/extinction-escape/internal/serverapp"
)

const PORT = "8797"

// Dev entrypoint: everything in memory, no save file. cmd/server is the
// persistent build.
func main() {
	cfg := &config.Config{Addr: ":" + PORT}
	cfg.ApplyDefaults()

	app, err := serverapp.New(serverapp.Options{
		Config: cfg,
		Logger: log.Default(),
		Store:  save.NewMemoryStore(),
	})
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	go app.Run(context.Background())

	fmt.Printf("extinction-escape listening on %s\n", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, app.Handler))
}
