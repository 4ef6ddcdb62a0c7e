package main

import (
	"fmt"

	log "github.com/charmbracelet/log"
	"github.com/hazemf/atmledger/infra"
	infrarepo "github.com/hazemf/atmledger/infra/repository"
	"github.com/hazemf/atmledger/pkg/app"
	"github.com/hazemf/atmledger/pkg/config"
	"github.com/hazemf/atmledger/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	logger := infra.NewLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infra.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	a := app.New(infrarepo.NewUoW(db), cfg, logger)
	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	return fiberApp.Listen(addr)
}
