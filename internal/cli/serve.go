package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/fsutil/billy"
	"github.com/jmgilman/go/fsutil/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve <directory>",
	Short: "Serve a directory over HTTP",
	Long: `Serve a directory read-only over HTTP. Files are returned as raw
bytes and directories as JSON listings under /files/. The directory is
the visibility boundary: nothing outside it is reachable.`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}

	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}

	_, dir, err := hostFS(args[0])
	if err != nil {
		return err
	}
	fsys, err := billy.NewLocal().Chroot(dir)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Addr:         addr,
		Version:      version,
		ReadTimeout:  parseTimeout(cfg.Server.ReadTimeout, 30*time.Second),
		WriteTimeout: parseTimeout(cfg.Server.WriteTimeout, 30*time.Second),
	}, fsys, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-sigCh:
		logger.Info("received %s", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Stop(ctx)
	}
}

// parseTimeout parses a config duration, falling back on empty or bad input.
func parseTimeout(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
