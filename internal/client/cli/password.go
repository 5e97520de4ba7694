package cli

import (
	"context"
	"fmt"

	"github.com/akulikov/stockpile/internal/validation"
	"github.com/akulikov/stockpile/pkg/api"
)

func (c *Cli) runForgotPassword(ctx context.Context) error {
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	req := api.ForgotPasswordRequest{Email: email}
	if err := validation.ValidateForgotPassword(req); err != nil {
		return err
	}

	if err := c.apiClient.ForgotPassword(ctx, req); err != nil {
		return displayErr(err)
	}

	c.io.Println("If the address is registered, a reset link has been sent.")

	return nil
}

// runResetPassword consumes the id and token from a reset link. The link
// is verified before prompting so a stale one fails fast.
func (c *Cli) runResetPassword(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: stockpile reset-password <id> <token>")
	}
	userID, resetToken := args[0], args[1]

	if err := c.apiClient.ValidateResetToken(ctx, userID, resetToken); err != nil {
		return displayErr(err)
	}

	password, err := c.io.ReadPassword("New password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}

	req := api.ResetPasswordRequest{Password: password, ConfirmPassword: confirm}
	if err := validation.ValidateResetPassword(req); err != nil {
		return err
	}

	if err := c.apiClient.ResetPassword(ctx, userID, resetToken, req); err != nil {
		return displayErr(err)
	}

	c.io.Println("Password updated. You can sign in with the new password now.")

	return nil
}
