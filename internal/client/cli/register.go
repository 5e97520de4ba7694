package cli

import (
	"context"
	"fmt"

	"github.com/akulikov/stockpile/internal/validation"
	"github.com/akulikov/stockpile/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Create account ===")
	c.io.Println("")

	firstName, err := c.io.ReadInput("First name: ")
	if err != nil {
		return fmt.Errorf("failed to read first name: %w", err)
	}

	lastName, err := c.io.ReadInput("Last name: ")
	if err != nil {
		return fmt.Errorf("failed to read last name: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	req := api.SignUpRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	}
	if err := validation.ValidateSignUp(req); err != nil {
		return err
	}

	user, err := c.machine.Register(ctx, req)
	if err != nil {
		return displayErr(err)
	}

	c.io.Println("")
	c.io.Printf("Account created. Signed in as %s <%s>\n", user.FullName(), user.Email)

	return nil
}
