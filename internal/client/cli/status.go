package cli

import (
	"context"
	"time"

	"github.com/akulikov/stockpile/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	user := c.machine.CurrentUser()
	if user == nil {
		c.io.Println("Status: not signed in")
		c.io.Println("")
		c.io.Println("Run 'stockpile login' to sign in.")
		return nil
	}

	c.io.Println("Status: signed in")
	c.printField("Name", user.FullName())
	c.printField("Email", user.Email)
	c.printField("User ID", user.ID)

	theme := c.sessions.Theme(ctx)
	if theme != "" {
		c.printField("Theme", theme)
	}

	if expiry, ok := auth.TokenExpiry(c.machine.Token()); ok {
		c.printField("Token expires", expiry.Format(time.RFC3339))
		if remaining := time.Until(expiry); remaining > 0 {
			c.printField("Remaining", remaining.Round(time.Second).String())
		} else {
			c.io.Println("Token has expired. Please sign in again.")
		}
	}

	return nil
}
