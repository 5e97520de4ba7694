package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akulikov/stockpile/pkg/api"
)

func TestValidateSignIn(t *testing.T) {
	tests := []struct {
		name    string
		req     api.SignInRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  api.SignInRequest{Email: "a@b.c", Password: "secret"},
		},
		{
			name:    "missing email",
			req:     api.SignInRequest{Password: "secret"},
			wantErr: "email is required",
		},
		{
			name:    "missing password",
			req:     api.SignInRequest{Email: "a@b.c"},
			wantErr: "password is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSignIn(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSignUp(t *testing.T) {
	valid := api.SignUpRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Password:  "secret",
	}

	assert.NoError(t, ValidateSignUp(valid))

	tests := []struct {
		name    string
		mutate  func(*api.SignUpRequest)
		wantErr string
	}{
		{"missing first name", func(r *api.SignUpRequest) { r.FirstName = "" }, "first name is required"},
		{"missing last name", func(r *api.SignUpRequest) { r.LastName = "" }, "last name is required"},
		{"missing email", func(r *api.SignUpRequest) { r.Email = "" }, "email is required"},
		{"missing password", func(r *api.SignUpRequest) { r.Password = "" }, "password is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.EqualError(t, ValidateSignUp(req), tt.wantErr)
		})
	}
}

func TestValidateResetPassword(t *testing.T) {
	tests := []struct {
		name    string
		req     api.ResetPasswordRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  api.ResetPasswordRequest{Password: "new", ConfirmPassword: "new"},
		},
		{
			name:    "missing password",
			req:     api.ResetPasswordRequest{ConfirmPassword: "new"},
			wantErr: "password is required",
		},
		{
			name:    "missing confirmation",
			req:     api.ResetPasswordRequest{Password: "new"},
			wantErr: "password confirmation is required",
		},
		{
			name:    "mismatch",
			req:     api.ResetPasswordRequest{Password: "new", ConfirmPassword: "other"},
			wantErr: "passwords do not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResetPassword(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateForgotPassword(t *testing.T) {
	assert.NoError(t, ValidateForgotPassword(api.ForgotPasswordRequest{Email: "a@b.c"}))
	assert.EqualError(t, ValidateForgotPassword(api.ForgotPasswordRequest{}), "email is required")
}

func TestValidateProductForm(t *testing.T) {
	assert.NoError(t, ValidateProductForm("Chair", "cat-1"))
	assert.EqualError(t, ValidateProductForm("", "cat-1"), "name is required")
	assert.EqualError(t, ValidateProductForm("Chair", ""), "category is required")
}

func TestValidateCategoryForm(t *testing.T) {
	assert.NoError(t, ValidateCategoryForm("Furniture"))
	assert.EqualError(t, ValidateCategoryForm(""), "name is required")
}
