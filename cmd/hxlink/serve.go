package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pthm/hxlink"
	"github.com/pthm/hxlink/lib/config"
)

func newServeCmd(rootFlags *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a demo page of the configured fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, rootFlags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				e.cfg.Addr = addr
			}

			handler, err := newServeHandler(e.cfg, e.link, e.log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return listen(ctx, e.cfg.Addr, handler, e.log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	return cmd
}

// newServeHandler wires the demo page and the re-render routes.
func newServeHandler(cfg *config.Config, link *hxlink.Hyperlink, log zerolog.Logger) (http.Handler, error) {
	key := []byte(cfg.Key)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generating key: %w", err)
		}
		log.Warn().Msg("no signing key configured, using a random key")
	}

	reg := hxlink.NewRegistry(key)
	reg.SetLogger(log)
	reg.Define(link)

	mux := http.NewServeMux()
	mux.Handle(hxlink.DefaultPrefix, reg.Handler())
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		fixtures, err := hydrateFixtures(r.Context(), cfg.Fixtures, link)
		if err != nil {
			log.Error().Err(err).Msg("demo fixtures failed")
			http.Error(w, "fixture error", http.StatusInternalServerError)
			return
		}
		if err := hxlink.Render(w, r, demoPage(link, fixtures)); err != nil {
			log.Error().Err(err).Msg("demo page failed")
		}
	})
	return mux, nil
}

// demoFixture is a configured fixture ready to render.
type demoFixture struct {
	Name  string
	Props hxlink.Props
}

func hydrateFixtures(ctx context.Context, fixtures []config.Fixture, link *hxlink.Hyperlink) ([]demoFixture, error) {
	out := make([]demoFixture, 0, len(fixtures))
	for _, f := range fixtures {
		props := f.Props()
		if err := link.Hydrate(ctx, &props); err != nil {
			return nil, fmt.Errorf("fixture %s: %w", f.Name, err)
		}
		out = append(out, demoFixture{Name: f.Name, Props: props})
	}
	return out, nil
}

func listen(ctx context.Context, addr string, handler http.Handler, log zerolog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("serving")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
