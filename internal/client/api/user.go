package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/akulikov/stockpile/internal/models"
)

// Users lists all accounts.
func (c *Client) Users(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	_, err := c.doJSON(ctx, http.MethodGet, "/user", token, nil, &users)
	if err != nil {
		return nil, fmt.Errorf("list users request failed: %w", err)
	}
	return users, nil
}

// User fetches a single account.
func (c *Client) User(ctx context.Context, token, id string) (*models.User, error) {
	var user models.User
	_, err := c.doJSON(ctx, http.MethodGet, "/user/"+id, token, nil, &user)
	if err != nil {
		return nil, fmt.Errorf("get user request failed: %w", err)
	}
	return &user, nil
}

// UpdateUser modifies profile fields, optionally replacing the profile
// image, and returns the updated account record. Empty fields are sent
// as-is; the backend keeps blank values unchanged. image may be nil.
func (c *Client) UpdateUser(ctx context.Context, token, id string, fields map[string]string, imageName string, image io.Reader) (*models.User, error) {
	var user models.User
	err := c.doMultipart(ctx, http.MethodPut, "/user/"+id, token, fields, "image", imageName, image, &user)
	if err != nil {
		return nil, fmt.Errorf("update user request failed: %w", err)
	}
	return &user, nil
}

// DeleteUserImage removes the profile image and returns the updated record.
func (c *Client) DeleteUserImage(ctx context.Context, token, id string) (*models.User, error) {
	var user models.User
	_, err := c.doJSON(ctx, http.MethodDelete, "/user/i/"+id, token, nil, &user)
	if err != nil {
		return nil, fmt.Errorf("delete user image request failed: %w", err)
	}
	return &user, nil
}
