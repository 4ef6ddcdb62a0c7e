// Package webapi assembles the HTTP presentation layer. It is a consumer of
// the ledger core: it parses user input, calls the services, and renders
// results and errors. Sub-packages:
//   - auth: registration and login endpoints
//   - account: balance and ledger endpoints
package webapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/hazemf/atmledger/pkg/app"
	accountweb "github.com/hazemf/atmledger/webapi/account"
	authweb "github.com/hazemf/atmledger/webapi/auth"
	"github.com/hazemf/atmledger/webapi/common"
)

// SetupApp initializes Fiber with middleware and all routes.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "atmledger",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, "Internal Server Error", err.Error())
		},
	})

	// Rate limiting keyed by client IP, honoring proxy headers.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "rate limit exceeded")
		},
	}))
	fiberApp.Use(recover.New())
	// Every request gets a uuid, echoed in X-Request-Id and in the access
	// log, so a log line can be tied back to a client report.
	fiberApp.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	fiberApp.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("atmledger is running")
	})

	authweb.Routes(fiberApp, a.AccountService, a.AuthService)
	accountweb.Routes(fiberApp, a.AccountService, a.LedgerService, a.AuthService, a.Config)
	return fiberApp
}
