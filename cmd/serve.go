package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lep/jassbot/internal/cachemanager"
	"github.com/lep/jassbot/internal/docs"
	"github.com/lep/jassbot/internal/jassbot"
	"github.com/lep/jassbot/internal/log"
	"github.com/lep/jassbot/internal/markdown"
	"github.com/lep/jassbot/internal/server"
	"github.com/lep/jassbot/internal/tracing"
	"github.com/lep/jassbot/internal/watcher"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the documentation website",
	Long: `Serve the jassdoc database as a website with highlighted code, type search
through the jassbot API, syntax.js for in-browser highlighting and a JSON
highlighting endpoint.

When auto_reload is on (the default) the vocabulary is rebuilt whenever the
database file is regenerated.

Example:
  jassbot serve                          # 127.0.0.1:5000
  jassbot serve --addr :8080 --prefix /jassbot/`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveAddr   string
	servePrefix string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "address to listen on (overrides config)")
	serveCmd.Flags().StringVar(&servePrefix, "prefix", "", "URL prefix of every route (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	if err := initStderrLogging(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	provider, err := tracing.NewProvider(cfg.Tracing.Provider())
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := docs.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("opening docs database: %w", err)
	}

	mdCache := cachemanager.NewInMemoryCacheManager[string, string]("markdown", cfg.Cache.MarkdownTTL, 2*cfg.Cache.MarkdownTTL)
	prefix := servePrefix
	if prefix == "" {
		prefix = cfg.Server.URLPrefix
	}
	handler, err := server.NewHandler(ctx, server.HandlerConfig{
		Store:    store,
		Searcher: jassbot.NewClient(cfg.API, jassbot.WithTimeout(searchTimeout())),
		Markdown: markdown.NewHTML(markdown.WithCache(mdCache, cfg.Cache.MarkdownTTL)),
		Prefix:   prefix,
		BaseURL:  cfg.Server.BaseURL,
		Tracer:   provider.Tracer(),
	})
	if err != nil {
		_ = store.Close()
		return fmt.Errorf("creating handler: %w", err)
	}
	// waitFollow is replaced once auto reload runs; the store is closed only
	// after the last reload finished.
	waitFollow := func() {}
	defer func() {
		cancel()
		waitFollow()
		closeCurrentStore(handler)
	}()

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}
	srv, err := server.NewServer(server.ServerConfig{
		Addr:    addr,
		Handler: handler,
		Tracer:  provider.Tracer(),
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	if cfg.AutoReload {
		w, err := watcher.New(watcher.DefaultConfig(cfg.DB))
		if err != nil {
			log.Warn(log.CatWatcher, "Auto reload disabled", "error", err)
		} else if changes, err := w.Start(); err != nil {
			log.Warn(log.CatWatcher, "Auto reload disabled", "error", err)
			_ = w.Stop()
		} else {
			defer func() { _ = w.Stop() }()
			waitFollow = startFollow(ctx, handler, changes, func() (docs.Store, error) {
				return docs.Open(cfg.DB)
			})
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	log.Info(log.CatHTTP, "jassbot serving", "addr", srv.Addr(), "prefix", server.NormalizePrefix(prefix), "db", cfg.DB)
	fmt.Printf("jassbot listening on http://%s%s\n", srv.Addr(), server.NormalizePrefix(prefix))

	select {
	case sig := <-sigCh:
		fmt.Printf("\nReceived %s, shutting down...\n", sig)
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.ErrorErr(log.CatHTTP, "Error stopping server", err)
	}
	if err := provider.Shutdown(shutdownCtx); err != nil {
		log.ErrorErr(log.CatTrace, "Error flushing traces", err)
	}
	return nil
}

// startFollow runs h.Follow in the background. The returned func blocks until
// Follow returned, which is after any reload it had started.
func startFollow(ctx context.Context, h *server.Handler, changes <-chan struct{}, open server.OpenFunc) func() {
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.Follow(ctx, changes, open)
	}()
	return func() { <-done }
}

// closeCurrentStore closes the store h serves from, which Follow may have
// swapped since startup.
func closeCurrentStore(h *server.Handler) {
	if c, ok := h.Store().(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.ErrorErr(log.CatDB, "Closing docs database failed", err)
		}
	}
}
