// Package serve runs the HTTP quoting API.
package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"lendrock/rate-quote/cmd/root"
	"lendrock/rate-quote/internal/config"
	"lendrock/rate-quote/internal/engine"
	"lendrock/rate-quote/internal/geo"
	"lendrock/rate-quote/internal/history"
	"lendrock/rate-quote/internal/server"
)

var port int

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP quoting API",
	Long:  `Serve the pricing endpoint, pricing history, and health check over HTTP.`,
	Run:   serveFunc,
}

func init() {
	Cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides configuration)")
}

func serveFunc(cmd *cobra.Command, args []string) {
	cfg := config.Get()
	if port != 0 {
		cfg.Server.Port = port
	}

	client := engine.NewClient(cfg)
	store := history.NewStore(cfg.History.Capacity)
	var locator server.Locator
	if cfg.Geo.LookupURL != "" {
		locator = geo.NewService(cfg.Geo.LookupURL, time.Duration(cfg.Geo.TimeoutSeconds)*time.Second)
	}
	srv := server.New(cfg, client, locator, store)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Start(); err != nil {
			root.Log.WithError(err).Error("HTTP server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		root.Log.WithError(err).Error("Shutdown failed")
	}
	<-done
}
