// Command apiserver serves the built frontend and the placeholder endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clubsite/internal/api"
	"clubsite/internal/buildinfo"
	"clubsite/internal/config"
	"clubsite/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var configDir string
	var version bool
	flag.StringVar(&configDir, "config", "", "Directory holding clubsite.yaml and .env files.")
	flag.BoolVar(&version, "version", false, "Print the build version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	cfg, err := config.Load(config.Options{Dir: configDir})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	lvl, _ := logging.ParseLevel(cfg.LogLevel)
	logging.Configure(lvl, nil)
	logger := logging.New("api")

	srv := api.NewServer(&api.Options{
		Address:    cfg.Address(),
		Port:       cfg.Port,
		StaticDir:  cfg.StaticDir,
		Production: cfg.Production(),
		Debug:      cfg.Debug,
		Logger:     logger,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal(err)
		}
		return
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Fatal(err)
	}
}
