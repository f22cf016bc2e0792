package navigationservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"navsim/internal/general/config"
	"navsim/internal/general/logger"
	"navsim/internal/general/websocket"
	directoryservice "navsim/internal/software/directory/service"
	"navsim/internal/software/navigation/handler"
	"navsim/internal/software/navigation/service"
)

func Run(ctx context.Context, cfgPath string, maxConcurrent int) error {
	// set up a new logger for the navigation service with a static request ID for startup logs
	logger := logger.New("navigation-service")
	ctx = logger.WithRequestID(ctx, "startup-001")

	// load configuration
	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// the single navigation session the whole service operates on
	session := service.NewSession(logger, service.Config{
		SpeedKMH:     cfg.Navigation.SpeedKMH,
		StepInterval: time.Duration(cfg.Navigation.StepIntervalSeconds) * time.Second,
	})
	defer session.Close()

	// the in-memory location directory backing /locations/search
	directory := directoryservice.NewDirectoryService(logger)

	// set up the renderer gateway and subscribe it to session updates
	gateway := websocket.NewRendererGateway(logger, session, time.Duration(cfg.WebSocket.PingIntervalSeconds)*time.Second)
	session.Attach(gateway)

	// set up the HTTP handler and its routes
	mux := http.NewServeMux()
	httpHandler := handler.NewNavigationHTTPHandler(session, directory, logger, gateway)
	httpHandler.RegisterRoutes(mux)

	// concurrency limiter (global) — blocks when capacity is full
	limitedHandler := withConcurrencyLimit(maxConcurrent, mux)

	// set up the server configurations
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),               // listen on the specified port
		Handler:           limitedHandler,                                    // apply the concurrency limiter to HTTP handler
		ReadHeaderTimeout: 5 * time.Second,                                   // time to read headers
		ReadTimeout:       10 * time.Second,                                  // time to read full request body
		WriteTimeout:      0,                                                 // websocket connections outlive any write deadline
		IdleTimeout:       60 * time.Second,                                  // keep-alive window
		BaseContext:       func(net.Listener) context.Context { return ctx }, // pass base ctx to all handlers
	}

	// log service start
	logger.Info(ctx, "service_started",
		fmt.Sprintf("Navigation Service started on port %d", cfg.Server.Port),
		map[string]any{"port": cfg.Server.Port, "max_concurrent": maxConcurrent, "session_id": session.ID()},
	)

	// start the server in a background goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	// wait for context cancellation or server error
	select {
	case <-ctx.Done():
		// graceful HTTP shutdown on context cancel
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shCtx); err != nil && err != http.ErrServerClosed {
			logger.Error(ctx, "http_shutdown_failed", "Failed to gracefully shut down HTTP server", err, nil)
		}
	case err := <-errCh:
		// server returned a terminal error at startup or during run
		if err != nil && err != http.ErrServerClosed {
			logger.Error(ctx, "http_server_error", "HTTP server terminated with error", err, map[string]any{"port": cfg.Server.Port})
			return err
		}
		return nil
	}

	return nil
}

// withConcurrencyLimit wraps an http.Handler with a semaphore-based limiter.
// It controls how many HTTP requests can be in-progress at the same time.
func withConcurrencyLimit(n int, next http.Handler) http.Handler {
	if n <= 0 {
		return next
	}
	sem := make(chan struct{}, n)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case sem <- struct{}{}: // acquire
			defer func() { <-sem }() // release
			next.ServeHTTP(w, r)
		case <-r.Context().Done():
			// client canceled or server is shutting down
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		}
	})
}
