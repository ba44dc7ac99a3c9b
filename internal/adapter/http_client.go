package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/ymatsuda/go-api-sample/internal/config"
	"github.com/ymatsuda/go-api-sample/internal/logger"
	"github.com/ymatsuda/go-api-sample/models"
)

// HTTPClient implements [APIClient] over resty.
type HTTPClient struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPClient constructs an API client for the given base URL.
func NewHTTPClient(cfg config.Client, log *logger.Logger) *HTTPClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	return &HTTPClient{
		client: client,
		logger: log,
	}
}

// Greet calls GET /.
func (c *HTTPClient) Greet(ctx context.Context) (models.GreetingResponse, error) {
	var out models.GreetingResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/")
	if err != nil {
		return models.GreetingResponse{}, fmt.Errorf("error calling greeting endpoint: %w", err)
	}
	if resp.IsError() {
		return models.GreetingResponse{}, mapHTTPError(resp)
	}

	return out, nil
}

// Add calls POST /add.
func (c *HTTPClient) Add(ctx context.Context, a, b float64) (models.AddResponse, error) {
	var out models.AddResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.AddRequest{A: a, B: b}).
		SetResult(&out).
		Post("/add")
	if err != nil {
		return models.AddResponse{}, fmt.Errorf("error calling add endpoint: %w", err)
	}
	if resp.IsError() {
		return models.AddResponse{}, mapHTTPError(resp)
	}

	return out, nil
}

// CreateUser calls POST /api/users/.
func (c *HTTPClient) CreateUser(ctx context.Context, in models.UserCreate) (models.UserResponse, error) {
	var out models.UserResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(in).
		SetResult(&out).
		Post("/api/users/")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("error calling create user endpoint: %w", err)
	}
	if resp.IsError() {
		return models.UserResponse{}, mapHTTPError(resp)
	}

	return out, nil
}

// Login calls POST /api/users/login.
func (c *HTTPClient) Login(ctx context.Context, in models.LoginRequest) (models.TokenResponse, error) {
	var out models.TokenResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(in).
		SetResult(&out).
		Post("/api/users/login")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("error calling login endpoint: %w", err)
	}
	if resp.IsError() {
		return models.TokenResponse{}, mapHTTPError(resp)
	}

	return out, nil
}

// GetVersion calls GET /api/version/. The endpoint responds with the bare
// version string as text/plain.
func (c *HTTPClient) GetVersion(ctx context.Context) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("error calling version endpoint: %w", err)
	}
	if resp.IsError() {
		return "", mapHTTPError(resp)
	}

	return resp.String(), nil
}

// mapHTTPError converts an error response body into a client error.
// A 422 body carries a field-error list; everything else a detail string.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusUnprocessableEntity {
		var validation models.ValidationErrorResponse
		if err := json.Unmarshal(resp.Body(), &validation); err == nil && len(validation.Detail) > 0 {
			fields := make([]string, 0, len(validation.Detail))
			for _, fe := range validation.Detail {
				fields = append(fields, fmt.Sprintf("%s: %s", strings.Join(fe.Loc, "."), fe.Msg))
			}
			return fmt.Errorf("%w: %s", ErrValidationFailed, strings.Join(fields, "; "))
		}
	}

	var errorBody models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errorBody); err == nil && errorBody.Detail != "" {
		return fmt.Errorf("%w: %s (status %d)", ErrRequestFailed, errorBody.Detail, resp.StatusCode())
	}

	return fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode())
}
