package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/minigamehub/arcade/internal/platform/tui"
	"github.com/minigamehub/arcade/internal/platform/web"
	"github.com/minigamehub/arcade/internal/storage"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the arcade over SSH and the leaderboard over HTTP",
	Long: `Start an SSH server that lets users connect and play, and optionally a
read-only JSON leaderboard API.

Each SSH connection gets its own session with a game picker menu.
All users share the same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

HTTP endpoints (when --http is set):
  GET /healthz
  GET /api/games
  GET /api/games/{id}/scores?limit=N
  GET /api/games/{id}/stats

Examples:
  arcade serve                           # SSH on :23234
  arcade serve --ssh :2222 --http :8080  # SSH and HTTP
  arcade serve --ssh "" --http :8080     # HTTP only
  arcade serve --host-key ./my_host_key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (empty to disable)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Leaderboard HTTP address (empty to disable)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagSSHAddr == "" && flagHTTPAddr == "" {
		return errors.New("nothing to serve: set --ssh or --http")
	}

	logger := newConsoleLogger("arcade")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, runs will not be saved", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpDone := make(chan error, 1)
	if flagHTTPAddr != "" {
		api := web.NewServer(store, logger.WithPrefix("arcade-http"))
		go func() { httpDone <- api.ListenAndServe(ctx, flagHTTPAddr) }()
	} else {
		close(httpDone)
	}

	if flagSSHAddr != "" {
		cfg := tui.DefaultSSHServerConfig()
		cfg.Address = flagSSHAddr
		cfg.HostKeyPath = flagHostKey
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
		cfg.TickRate = flagFPS
		cfg.Logger = logger.WithPrefix("arcade-ssh")

		server, err := tui.NewSSHServer(cfg, store)
		if err != nil {
			return err
		}
		logger.Info("connect with: ssh localhost -p <port>", "address", server.Addr())
		if err := server.ListenAndServe(); err != nil {
			stop()
			return err
		}
		stop()
	} else {
		<-ctx.Done()
	}

	return <-httpDone
}
