// Package account exposes the balance and ledger endpoints.
package account

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hazemf/atmledger/pkg/config"
	"github.com/hazemf/atmledger/pkg/domain"
	"github.com/hazemf/atmledger/pkg/middleware"
	"github.com/hazemf/atmledger/pkg/money"
	"github.com/hazemf/atmledger/pkg/projection"
	accountsvc "github.com/hazemf/atmledger/pkg/service/account"
	authsvc "github.com/hazemf/atmledger/pkg/service/auth"
	ledgersvc "github.com/hazemf/atmledger/pkg/service/ledger"
	"github.com/hazemf/atmledger/webapi/common"
)

// Routes registers the account endpoints, all JWT-protected:
//   - GET  /account/balance      : Current balance.
//   - POST /account/deposit      : Deposit funds.
//   - POST /account/withdraw     : Withdraw funds.
//   - GET  /account/transactions : Ordered history with display lines.
//   - GET  /account/series       : Signed per-transaction series.
func Routes(
	app *fiber.App,
	accountSvc *accountsvc.Service,
	ledgerSvc *ledgersvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Get("/account/balance", protected, GetBalance(accountSvc, authSvc))
	app.Post("/account/deposit", protected, Apply(ledgerSvc, authSvc, domain.Deposit))
	app.Post("/account/withdraw", protected, Apply(ledgerSvc, authSvc, domain.Withdraw))
	app.Get("/account/transactions", protected, GetTransactions(ledgerSvc, authSvc))
	app.Get("/account/series", protected, GetSeries(ledgerSvc, authSvc))
}

func handleFromContext(c *fiber.Ctx, authSvc *authsvc.Service) (domain.Handle, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return domain.Handle{}, domain.ErrInvalidCredentials
	}
	return authSvc.HandleFromToken(token)
}

// GetBalance returns the account's current balance.
func GetBalance(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		handle, err := handleFromContext(c, authSvc)
		if err != nil {
			return common.DomainErrorJSON(c, "Unauthorized", err)
		}
		balance, err := accountSvc.Balance(c.Context(), handle)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to fetch balance", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance fetched", fiber.Map{
			"username": handle.Username,
			"balance":  balance.String(),
		})
	}
}

// Apply returns a handler that applies the given operation kind with the
// amount from the request body.
func Apply(ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service, kind domain.TxKind) fiber.Handler {
	title := "Deposit failed"
	success := "Deposit successful"
	if kind == domain.Withdraw {
		title = "Withdrawal failed"
		success = "Withdrawal successful"
	}
	return func(c *fiber.Ctx) error {
		handle, err := handleFromContext(c, authSvc)
		if err != nil {
			return common.DomainErrorJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		tx, err := ledgerSvc.Apply(c.Context(), handle, kind, money.FromFloat(input.Amount))
		if err != nil {
			return common.DomainErrorJSON(c, title, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, success, tx)
	}
}

// GetTransactions returns the ordered history together with its rendered
// display lines.
func GetTransactions(ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		handle, err := handleFromContext(c, authSvc)
		if err != nil {
			return common.DomainErrorJSON(c, "Unauthorized", err)
		}
		history, err := ledgerSvc.History(c.Context(), handle)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to fetch transactions", err)
		}
		lines, err := projection.DisplayLines(history)
		if err != nil && !errors.Is(err, projection.ErrNoTransactions) {
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, "Failed to render transactions", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", fiber.Map{
			"transactions": history,
			"lines":        lines,
		})
	}
}

// GetSeries returns the signed per-transaction series for charting.
func GetSeries(ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		handle, err := handleFromContext(c, authSvc)
		if err != nil {
			return common.DomainErrorJSON(c, "Unauthorized", err)
		}
		history, err := ledgerSvc.History(c.Context(), handle)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to fetch transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Series fetched", fiber.Map{
			"series": projection.SignedSeries(history),
		})
	}
}
