// Package client is the dashboard's API facade. Data-fetching calls never
// surface hard failures: a transport error, non-2xx status or malformed body
// is converted into a fixed mock payload, and the placeholder token makes the
// facade skip the network entirely. Login and registration are the only
// operations that report explicit messages.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/crucial707/auth-dashboard/internal/models"
)

// FakeToken is the placeholder sentinel meaning "no real backend session".
// Presenting it short-circuits every data call to mock payloads.
const FakeToken = "fake-jwt-token"

// DefaultBaseURL points at a local API server.
const DefaultBaseURL = "http://localhost:5000/api"

// Mock login account accepted when the backend is unreachable.
const (
	mockEmail    = "admin@example.com"
	mockPassword = "password"
)

// Client calls the dashboard API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthResult is the outcome of Login or Register. Message is only set on
// failure or for registration confirmations.
type AuthResult struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Token   string      `json:"token,omitempty"`
	User    ProfileUser `json:"user,omitempty"`
}

// ProfileUser is the minimal profile returned on login.
type ProfileUser struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// UsersResult is the outcome of GetUsers.
type UsersResult struct {
	Success bool   `json:"success"`
	Users   []User `json:"users"`
}

// Login authenticates against the backend. When the backend is unreachable or
// rejects the call, it falls back to the local mock account so the dashboard
// stays usable offline.
func (c *Client) Login(ctx context.Context, email, password string) AuthResult {
	var real AuthResult
	err := c.request(ctx, http.MethodPost, "/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &real)
	if err == nil && real.Success {
		return real
	}

	if email == mockEmail && password == mockPassword {
		return AuthResult{
			Success: true,
			Token:   FakeToken,
			User:    ProfileUser{Email: email, Role: "Admin"},
		}
	}
	return AuthResult{
		Success: false,
		Message: fmt.Sprintf("Invalid credentials. Try %s / %s", mockEmail, mockPassword),
	}
}

// Register creates an account. An unreachable backend reports mock success;
// the caller still has to log in separately either way.
func (c *Client) Register(ctx context.Context, name, email, password string) AuthResult {
	var real AuthResult
	err := c.request(ctx, http.MethodPost, "/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &real)
	if err == nil {
		return real
	}

	return AuthResult{Success: true, Message: "Registration successful! Please login."}
}

// GetData fetches dashboard statistics. The returned payload is always
// complete: sentinel token and every failure mode yield the mock payload, and
// a backend response without a summary is normalized into one.
func (c *Client) GetData(ctx context.Context, token string) models.StatsResponse {
	if token == FakeToken {
		return MockStats()
	}

	var raw RawStats
	if err := c.request(ctx, http.MethodGet, "/stats", token, nil, &raw); err != nil {
		return MockStats()
	}

	if raw.Summary == nil {
		return Normalize(raw)
	}

	resp := models.StatsResponse{Summary: *raw.Summary}
	if raw.ChartData != nil {
		resp.ChartData = *raw.ChartData
	}
	return resp
}

// GetUsers fetches the user directory. A successful backend call is merged
// with the five demo users; anything else returns the demo users alone,
// still flagged as success.
func (c *Client) GetUsers(ctx context.Context, token string) UsersResult {
	if token == FakeToken {
		return UsersResult{Success: true, Users: DemoUsers()}
	}

	var real UsersResult
	err := c.request(ctx, http.MethodGet, "/users", token, nil, &real)
	if err != nil || !real.Success {
		return UsersResult{Success: true, Users: DemoUsers()}
	}

	return UsersResult{Success: true, Users: append(real.Users, DemoUsers()...)}
}

// request performs one JSON round trip. Any non-2xx status is an error so
// callers can fall back uniformly.
func (c *Client) request(ctx context.Context, method, path, token string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return err
		}
	}
	return nil
}
