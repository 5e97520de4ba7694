// Package validation checks form input before it goes over the wire.
// Only presence is enforced; format and strength rules belong to the
// backend.
package validation

import (
	"fmt"

	"github.com/akulikov/stockpile/pkg/api"
)

// ValidateSignIn checks the sign-in form.
func ValidateSignIn(req api.SignInRequest) error {
	if req.Email == "" {
		return fmt.Errorf("email is required")
	}
	if req.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// ValidateSignUp checks the sign-up form.
func ValidateSignUp(req api.SignUpRequest) error {
	if req.FirstName == "" {
		return fmt.Errorf("first name is required")
	}
	if req.LastName == "" {
		return fmt.Errorf("last name is required")
	}
	if req.Email == "" {
		return fmt.Errorf("email is required")
	}
	if req.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// ValidateForgotPassword checks the forgot-password form.
func ValidateForgotPassword(req api.ForgotPasswordRequest) error {
	if req.Email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

// ValidateResetPassword checks the reset-password form. Matching
// confirmation is the one rule beyond presence the forms enforce.
func ValidateResetPassword(req api.ResetPasswordRequest) error {
	if req.Password == "" {
		return fmt.Errorf("password is required")
	}
	if req.ConfirmPassword == "" {
		return fmt.Errorf("password confirmation is required")
	}
	if req.Password != req.ConfirmPassword {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}

// ValidateProductForm checks the create/update product form.
func ValidateProductForm(name, categoryID string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if categoryID == "" {
		return fmt.Errorf("category is required")
	}
	return nil
}

// ValidateCategoryForm checks the create/update category form.
func ValidateCategoryForm(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
