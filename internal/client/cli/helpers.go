package cli

import (
	"context"
	"errors"

	"github.com/akulikov/stockpile/internal/client/api"
	"github.com/akulikov/stockpile/internal/client/auth"
)

// requireAuth gates a protected command: activate the guard and reject
// anonymous visitors, pointing them to the sign-in entry.
func (c *Cli) requireAuth(ctx context.Context) error {
	if c.guard.Activate(ctx) != auth.GuardAuthenticated {
		return errors.New("not signed in. Run 'stockpile login' first")
	}
	return nil
}

// displayErr converts an API failure into the message a user should see:
// the server's own words when it sent any, the generic fallback otherwise.
func displayErr(err error) error {
	if err == nil {
		return nil
	}
	return errors.New(api.ErrorMessage(err))
}

// token returns the credential for authenticated requests.
func (c *Cli) token() string {
	return c.machine.Token()
}

// printField prints one aligned label/value line, skipping empty values
// the way the original detail screens hide unset fields.
func (c *Cli) printField(name, value string) {
	if value == "" {
		return
	}
	c.io.Printf("%-12s %s\n", name+":", value)
}
