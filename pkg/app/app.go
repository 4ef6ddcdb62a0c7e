// Package app wires configuration, storage and services into one container.
package app

import (
	"log/slog"

	"github.com/hazemf/atmledger/pkg/config"
	"github.com/hazemf/atmledger/pkg/repository"
	accountsvc "github.com/hazemf/atmledger/pkg/service/account"
	authsvc "github.com/hazemf/atmledger/pkg/service/auth"
	ledgersvc "github.com/hazemf/atmledger/pkg/service/ledger"
)

// App aggregates the services and configuration shared by the HTTP server
// and the terminal client.
type App struct {
	AccountService *accountsvc.Service
	LedgerService  *ledgersvc.Service
	AuthService    *authsvc.Service
	Config         *config.App
	Logger         *slog.Logger
}

// New constructs the application services over the given unit of work.
func New(uow repository.UnitOfWork, cfg *config.App, logger *slog.Logger) *App {
	return &App{
		AccountService: accountsvc.New(uow, logger),
		LedgerService:  ledgersvc.New(uow, logger),
		AuthService:    authsvc.New(cfg.Auth.Jwt, logger),
		Config:         cfg,
		Logger:         logger,
	}
}
