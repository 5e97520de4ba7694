// Package cli implements the Stockpile command front end.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/akulikov/stockpile/internal/client/api"
	"github.com/akulikov/stockpile/internal/client/auth"
	"github.com/akulikov/stockpile/internal/client/iocli"
	"github.com/akulikov/stockpile/internal/client/session"
)

type Cli struct {
	apiClient *api.Client
	machine   *auth.Machine
	guard     *auth.Guard
	sessions  *session.Store
	io        iocli.IO
	log       *slog.Logger
}

func New(apiClient *api.Client, machine *auth.Machine, guard *auth.Guard, sessions *session.Store, io iocli.IO, log *slog.Logger) *Cli {
	if log == nil {
		log = slog.Default()
	}
	return &Cli{
		apiClient: apiClient,
		machine:   machine,
		guard:     guard,
		sessions:  sessions,
		io:        io,
		log:       log,
	}
}

// Run dispatches a command. Unknown commands return an error after
// printing usage.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "forgot-password":
		return c.runForgotPassword(ctx)
	case "reset-password":
		return c.runResetPassword(ctx, args)
	case "products":
		return c.runProducts(ctx, args)
	case "categories":
		return c.runCategories(ctx, args)
	case "profile":
		return c.runProfile(ctx, args)
	case "theme":
		return c.runTheme(ctx, args)
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage lists the available commands.
func (c *Cli) PrintUsage() {
	c.io.Println("Usage: stockpile [flags] <command> [arguments]")
	c.io.Println("")
	c.io.Println("Account:")
	c.io.Println("  register                        create an account and sign in")
	c.io.Println("  login                           sign in")
	c.io.Println("  logout                          sign out and clear the local session")
	c.io.Println("  status                          show the current session")
	c.io.Println("  forgot-password                 request a password reset link")
	c.io.Println("  reset-password <id> <token>     set a new password from a reset link")
	c.io.Println("")
	c.io.Println("Catalog (requires sign-in):")
	c.io.Println("  products list")
	c.io.Println("  products get <id>")
	c.io.Println("  products add -name <name> -category <id> [-description <text>]")
	c.io.Println("  products update <id> [-name <name>] [-category <id>] [-description <text>]")
	c.io.Println("  products delete <id>")
	c.io.Println("  products add-image <product-id> <file>")
	c.io.Println("  products delete-image <image-id>")
	c.io.Println("  categories list")
	c.io.Println("  categories get <id>")
	c.io.Println("  categories add -name <name> [-image <file>]")
	c.io.Println("  categories update <id> -name <name> [-image <file>]")
	c.io.Println("  categories delete <id>")
	c.io.Println("  categories delete-image <id>")
	c.io.Println("")
	c.io.Println("Settings:")
	c.io.Println("  profile show")
	c.io.Println("  profile update [-first <name>] [-last <name>] [-email <email>] [-image <file>]")
	c.io.Println("  profile delete-image")
	c.io.Println("  theme [light|dark|system]")
}
