// Package api implements the HTTP client for the Stockpile backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/akulikov/stockpile/internal/models"
	"github.com/akulikov/stockpile/pkg/api"
)

const defaultTimeout = 30 * time.Second

// HeaderAuthToken is the response header carrying the session token on
// successful sign-in/sign-up. Requests send the token back as a bearer
// credential; it is always passed explicitly, never attached implicitly.
const HeaderAuthToken = "X-Auth-Token"

// HeaderClientID identifies this client install on every request.
const HeaderClientID = "X-Client-Id"

// Client represents the HTTP client for the backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
}

// NewClient creates a new API client. A zero timeout selects the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Keep the bearer credential across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetClientID sets the per-install id sent with every request.
func (c *Client) SetClientID(id string) {
	c.clientID = id
}

// SignIn authenticates the user and returns the account record together
// with the session token delivered in the X-Auth-Token response header.
func (c *Client) SignIn(ctx context.Context, req api.SignInRequest) (*models.User, string, error) {
	var user models.User
	header, err := c.doJSON(ctx, http.MethodPost, "/auth/sign-in", "", req, &user)
	if err != nil {
		return nil, "", fmt.Errorf("sign-in request failed: %w", err)
	}
	return &user, header.Get(HeaderAuthToken), nil
}

// SignUp creates a new account and returns it with the session token.
func (c *Client) SignUp(ctx context.Context, req api.SignUpRequest) (*models.User, string, error) {
	var user models.User
	header, err := c.doJSON(ctx, http.MethodPost, "/auth/sign-up", "", req, &user)
	if err != nil {
		return nil, "", fmt.Errorf("sign-up request failed: %w", err)
	}
	return &user, header.Get(HeaderAuthToken), nil
}

// SignOut invalidates the session token on the server.
func (c *Client) SignOut(ctx context.Context, token string) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/auth/sign-out", token, nil, nil)
	if err != nil {
		return fmt.Errorf("sign-out request failed: %w", err)
	}
	return nil
}

// ValidateUserToken checks the session token and returns the account it
// belongs to. The token is an explicit parameter: the caller decides which
// stored credential to present.
func (c *Client) ValidateUserToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	_, err := c.doJSON(ctx, http.MethodGet, "/auth/validate-user-token", token, nil, &user)
	if err != nil {
		return nil, fmt.Errorf("validate token request failed: %w", err)
	}
	return &user, nil
}

// ValidateResetToken checks a password-reset link before showing the form.
func (c *Client) ValidateResetToken(ctx context.Context, userID, resetToken string) error {
	path := fmt.Sprintf("/auth/validate-reset-token/%s/%s", userID, resetToken)
	_, err := c.doJSON(ctx, http.MethodGet, path, "", nil, nil)
	if err != nil {
		return fmt.Errorf("validate reset token request failed: %w", err)
	}
	return nil
}

// ForgotPassword asks the server to mail a reset link.
func (c *Client) ForgotPassword(ctx context.Context, req api.ForgotPasswordRequest) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/auth/forgot-password", "", req, nil)
	if err != nil {
		return fmt.Errorf("forgot password request failed: %w", err)
	}
	return nil
}

// ResetPassword sets a new password using a reset link's id and token.
func (c *Client) ResetPassword(ctx context.Context, userID, resetToken string, req api.ResetPasswordRequest) error {
	path := fmt.Sprintf("/auth/reset-password/%s/%s", userID, resetToken)
	_, err := c.doJSON(ctx, http.MethodPost, path, "", req, nil)
	if err != nil {
		return fmt.Errorf("reset password request failed: %w", err)
	}
	return nil
}

// doJSON performs a JSON request and decodes the response into result.
// The returned header lets callers read response metadata such as the
// session token.
func (c *Client) doJSON(ctx context.Context, method, path, token string, body, result any) (http.Header, error) {
	var bodyReader io.Reader
	contentType := ""

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
		contentType = "application/json"
	}

	return c.do(ctx, method, path, token, contentType, bodyReader, result)
}

// doMultipart performs a multipart/form-data request with the given text
// fields and an optional file part, decoding the response into result.
func (c *Client) doMultipart(
	ctx context.Context,
	method, path, token string,
	fields map[string]string,
	fileField, fileName string,
	file io.Reader,
	result any,
) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write form field %q: %w", name, err)
		}
	}

	if file != nil {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			return fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return fmt.Errorf("failed to copy file contents: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	_, err := c.do(ctx, method, path, token, writer.FormDataContentType(), &buf, result)
	return err
}

// do performs the HTTP request and maps non-2xx responses onto the error
// taxonomy: a decodable body with a message becomes a *ServiceError,
// anything else stays an opaque error that surfaces as the generic message.
func (c *Client) do(ctx context.Context, method, path, token, contentType string, body io.Reader, result any) (http.Header, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if c.clientID != "" {
		req.Header.Set(HeaderClientID, c.clientID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return nil, &ServiceError{Message: errResp.Message, StatusCode: resp.StatusCode}
		}
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return resp.Header, nil
}
