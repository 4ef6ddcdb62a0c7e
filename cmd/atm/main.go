// Command atm is an interactive terminal client for the account ledger.
// It connects straight to the configured database, the same way the HTTP
// server does, and drives the core services from a menu loop.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	log "github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/hazemf/atmledger/infra"
	infrarepo "github.com/hazemf/atmledger/infra/repository"
	"github.com/hazemf/atmledger/pkg/app"
	"github.com/hazemf/atmledger/pkg/config"
	"github.com/hazemf/atmledger/pkg/domain"
	"github.com/hazemf/atmledger/pkg/money"
	"github.com/hazemf/atmledger/pkg/projection"
	"golang.org/x/term"
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
	cli := &client{app: a, in: bufio.NewReader(os.Stdin)}
	return cli.loop(context.Background())
}

type client struct {
	app *app.App
	in  *bufio.Reader
	t   stringTable
}

var (
	title   = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
)

func (c *client) loop(ctx context.Context) error {
	c.selectLanguage()
	for {
		handle, done, err := c.authScreen(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if err := c.menu(ctx, handle); err != nil {
			return err
		}
	}
}

func (c *client) selectLanguage() {
	fmt.Println("Select Language / اختر اللغة: [1] English [2] Arabic")
	choice := c.readLine("> ")
	if choice == "2" {
		c.t = languages["Arabic"]
		return
	}
	c.t = languages["English"]
}

// authScreen prompts for login or registration. It returns done=true when
// the user chooses to quit.
func (c *client) authScreen(ctx context.Context) (domain.Handle, bool, error) {
	for {
		title.Printf("\n[1] %s  [2] %s  [3] %s\n", c.t.Login, c.t.Register, c.t.Exit)
		switch c.readLine("> ") {
		case "1":
			username := c.readLine(c.t.Username + " ")
			pin, err := c.readPin(c.t.Pin + " ")
			if err != nil {
				return domain.Handle{}, false, err
			}
			handle, err := c.app.AccountService.Authenticate(ctx, username, pin)
			if err != nil {
				failure.Printf("%s %s\n", c.t.Error, c.t.InvalidCredentials)
				continue
			}
			return handle, false, nil
		case "2":
			username := c.readLine(c.t.Username + " ")
			pin, err := c.readPin(c.t.Pin + " ")
			if err != nil {
				return domain.Handle{}, false, err
			}
			if err := c.app.AccountService.Register(ctx, username, pin); err != nil {
				if errors.Is(err, domain.ErrUsernameTaken) {
					failure.Printf("%s %s\n", c.t.Error, c.t.UsernameExists)
				} else {
					failure.Printf("%s %v\n", c.t.Error, err)
				}
				continue
			}
			success.Println(c.t.RegistrationSuccess)
		case "3":
			return domain.Handle{}, true, nil
		}
	}
}

func (c *client) menu(ctx context.Context, handle domain.Handle) error {
	for {
		title.Printf("\n%s\n", c.t.Menu)
		fmt.Printf("[1] %s\n[2] %s\n[3] %s\n[4] %s\n[5] %s\n[6] %s\n",
			c.t.CheckBalance, c.t.DepositMoney, c.t.WithdrawMoney,
			c.t.TransactionHistory, c.t.ViewSeries, c.t.Exit)
		switch c.readLine("> ") {
		case "1":
			balance, err := c.app.AccountService.Balance(ctx, handle)
			if err != nil {
				failure.Printf("%s %v\n", c.t.Error, err)
				continue
			}
			fmt.Printf("%s%s\n", c.t.Balance, balance)
		case "2":
			c.apply(ctx, handle, domain.Deposit, c.t.DepositPrompt)
		case "3":
			c.apply(ctx, handle, domain.Withdraw, c.t.WithdrawPrompt)
		case "4":
			c.history(ctx, handle)
		case "5":
			c.series(ctx, handle)
		case "6":
			return nil
		}
	}
}

func (c *client) apply(ctx context.Context, handle domain.Handle, kind domain.TxKind, prompt string) {
	raw := c.readLine(prompt + " ")
	amount, err := money.Parse(raw)
	if err != nil {
		failure.Printf("%s %s\n", c.t.Error, c.t.InvalidAmount)
		return
	}
	tx, err := c.app.LedgerService.Apply(ctx, handle, kind, amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			failure.Printf("%s %s\n", c.t.Error, c.t.InvalidAmount)
		case errors.Is(err, domain.ErrInsufficientFunds):
			failure.Printf("%s %s\n", c.t.Error, c.t.InsufficientFunds)
		default:
			failure.Printf("%s %v\n", c.t.Error, err)
		}
		return
	}
	success.Printf("%s: $%s\n", c.t.Success, tx.Amount.StringFixed(2))
}

func (c *client) history(ctx context.Context, handle domain.Handle) {
	txs, err := c.app.LedgerService.History(ctx, handle)
	if err != nil {
		failure.Printf("%s %v\n", c.t.Error, err)
		return
	}
	lines, err := projection.DisplayLines(txs)
	if err != nil {
		fmt.Println(c.t.NoTransactions)
		return
	}
	for _, line := range lines {
		fmt.Println(line)
	}
}

// series prints the signed per-transaction amounts, the textual stand-in for
// the chart the GUI used to draw.
func (c *client) series(ctx context.Context, handle domain.Handle) {
	txs, err := c.app.LedgerService.History(ctx, handle)
	if err != nil {
		failure.Printf("%s %v\n", c.t.Error, err)
		return
	}
	points := projection.SignedSeries(txs)
	if len(points) == 0 {
		fmt.Println(c.t.NoTransactions)
		return
	}
	for _, p := range points {
		sign := "+"
		if p.Amount.IsNegative() {
			sign = ""
		}
		fmt.Printf("%s  %s%s\n", p.Timestamp.Format("2006-01-02 15:04:05"), sign, p.Amount.StringFixed(2))
	}
}

func (c *client) readLine(prompt string) string {
	fmt.Print(prompt)
	line, _ := c.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// readPin reads the PIN without echoing it back to the terminal.
func (c *client) readPin(prompt string) (string, error) {
	fmt.Print(prompt)
	pin, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(pin)), nil
}
