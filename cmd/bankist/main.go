package main

import (
	"bankist/internal/config"
	"bankist/internal/models/accounts"
	"bankist/internal/store/memory"
	"bankist/pkg/logger"
	"context"
	"fmt"
)

func main() {
	if err := config.Config.Parse(); err != nil {
		panic(err)
	}

	if err := logger.Initialize(config.Config.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Log.Sync()

	if err := run(); err != nil {
		logger.Log.Fatal("app stopped", logger.Error(err))
	}
}

func run() error {
	s, err := memory.NewStore(accounts.Seed()...)
	if err != nil {
		return fmt.Errorf("unable seed accounts: %w", err)
	}

	appInstance := newApp(s)

	appInstance.StartObserver(context.Background())

	go func() {
		if err := appInstance.StartServer(); err != nil {
			logger.Log.Error("server stopped", logger.Error(err))
		}
	}()

	return appInstance.CatchTerminateSignal()
}
