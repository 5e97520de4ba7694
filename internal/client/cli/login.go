package cli

import (
	"context"
	"fmt"

	"github.com/akulikov/stockpile/internal/validation"
	"github.com/akulikov/stockpile/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Sign in ===")
	c.io.Println("")

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	req := api.SignInRequest{Email: email, Password: password}
	if err := validation.ValidateSignIn(req); err != nil {
		return err
	}

	user, err := c.machine.Login(ctx, req)
	if err != nil {
		return displayErr(err)
	}

	c.io.Println("")
	c.io.Printf("Signed in as %s <%s>\n", user.FullName(), user.Email)

	return nil
}
