package main

import (
	"bankist/internal/config"
	"bankist/internal/handlers"
	"bankist/internal/observer"
	bank "bankist/internal/services"
	"bankist/internal/session"
	"bankist/internal/store"
	"bankist/pkg/logger"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 5 * time.Second

type app struct {
	store    store.Store
	sessions *session.Manager
	server   http.Server
	observer *observer.Observer
}

func newApp(s store.Store) *app {
	sessions := session.NewManager(config.Config.SessionTTL)

	instance := &app{
		store:    s,
		sessions: sessions,
		observer: observer.NewObserver(sessions, config.Config.SessionReapInterval),
	}

	return instance
}

func (a *app) Close() error {
	if err := a.shutdownServer(); err != nil {
		return fmt.Errorf("error by Server shutdown: %w", err)
	}

	a.observer.Close()

	if err := a.store.Close(); err != nil {
		return fmt.Errorf("error by closing Store: %w", err)
	}

	logger.Log.Info("Store graceful shutdown complete")

	return nil
}

func (a *app) StartServer() error {
	logger.Log.Info("Running server", logger.String("addr", config.Config.AddrRun), logger.Stringer("config", config.Config))

	a.server = http.Server{
		Addr: config.Config.AddrRun,
		Handler: handlers.NewRouter(handlers.Handler{
			Store:     a.store,
			Bank:      bank.NewBank(a.store),
			Sessions:  a.sessions,
			SecretKey: config.Config.SecretKey,
		}),
	}

	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (a *app) shutdownServer() error {
	shutdownCtx, shutdownRelease := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownRelease()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP shutdown error: %w", err)
	}

	logger.Log.Info("HTTP graceful shutdown complete")

	return nil
}

func (a *app) StartObserver(ctx context.Context) {
	a.observer.Start(ctx)
}

func (a *app) CatchTerminateSignal() error {
	terminateSignals := make(chan os.Signal, 1)

	signal.Notify(terminateSignals, syscall.SIGINT, syscall.SIGTERM)

	<-terminateSignals

	if err := a.Close(); err != nil {
		return err
	}

	logger.Log.Info("Terminate app complete")

	return nil
}
