// Package auth exposes the registration and login endpoints.
package auth

import (
	"github.com/gofiber/fiber/v2"
	accountsvc "github.com/hazemf/atmledger/pkg/service/account"
	authsvc "github.com/hazemf/atmledger/pkg/service/auth"
	"github.com/hazemf/atmledger/webapi/common"
)

// Routes registers the authentication endpoints:
//   - POST /auth/register : Create a new account.
//   - POST /auth/login    : Authenticate and receive a session token.
func Routes(app *fiber.App, accountSvc *accountsvc.Service, authSvc *authsvc.Service) {
	app.Post("/auth/register", Register(accountSvc))
	app.Post("/auth/login", Login(accountSvc, authSvc))
}

// Register creates an account for the supplied username/PIN pair.
func Register(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterRequest](c)
		if input == nil {
			return err
		}
		if err := accountSvc.Register(c.Context(), input.Username, input.Pin); err != nil {
			return common.DomainErrorJSON(c, "Registration failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Registration successful", fiber.Map{
			"username": input.Username,
		})
	}
}

// Login authenticates the username/PIN pair and returns a session token.
// Unknown usernames and wrong PINs produce the same response.
func Login(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginRequest](c)
		if input == nil {
			return err
		}
		handle, err := accountSvc.Authenticate(c.Context(), input.Username, input.Pin)
		if err != nil {
			return common.DomainErrorJSON(c, "Invalid credentials", err)
		}
		token, err := authSvc.GenerateToken(handle)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, "Internal Server Error", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Login successful", fiber.Map{
			"token": token,
		})
	}
}
