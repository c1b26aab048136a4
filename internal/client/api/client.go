// Package api is the HTTP client for the inventory server. Every request
// carries the saved bearer token when one exists; requests without a token
// go out unauthenticated and let the server answer 401.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stocklane/inventory-system/internal/core/domain"
	"github.com/stocklane/inventory-system/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// TokenSource yields the current access token. An empty token with a nil
// error means "send the request unauthenticated".
type TokenSource interface {
	Get() (string, error)
}

// Error is a non-2xx response decoded from the server's error envelope.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// bearerTransport injects "Authorization: Bearer <token>" into every
// outgoing request that has a token available.
type bearerTransport struct {
	tokens TokenSource
	next   http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token, err := t.tokens.Get(); err == nil && token != "" {
		clone := req.Clone(req.Context())
		clone.Header.Set("Authorization", "Bearer "+token)
		req = clone
	}
	return t.next.RoundTrip(req)
}

// Client talks to the inventory server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the server at baseURL. Trailing slashes on
// baseURL are ignored.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   defaultTimeout,
			Transport: &bearerTransport{tokens: tokens, next: http.DefaultTransport},
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope struct {
			Error string `json:"error"`
		}
		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
			msg = envelope.Error
		}
		return &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// AuthResponse is the flat payload returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"name": name, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, name, email string) (*domain.User, error) {
	var out domain.User
	body := map[string]string{"name": name, "email": email}
	if err := c.do(ctx, http.MethodPut, "/auth/profile", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{
		"oldPassword":     oldPassword,
		"newPassword":     newPassword,
		"confirmPassword": newPassword,
	}
	return c.do(ctx, http.MethodPut, "/auth/password", body, nil)
}

func (c *Client) Items(ctx context.Context) ([]domain.Item, error) {
	var out []domain.Item
	if err := c.do(ctx, http.MethodGet, "/items/get", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateItem(ctx context.Context, item any) (*domain.Item, error) {
	var out domain.Item
	if err := c.do(ctx, http.MethodPost, "/items/add", item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateItem(ctx context.Context, id string, item any) (*domain.Item, error) {
	var out domain.Item
	if err := c.do(ctx, http.MethodPut, "/items/"+id, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/items/"+id, nil, nil)
}

func (c *Client) Entities(ctx context.Context) ([]domain.Entity, error) {
	var out []domain.Entity
	if err := c.do(ctx, http.MethodGet, "/entities", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateEntity(ctx context.Context, entity any) (*domain.Entity, error) {
	var out domain.Entity
	if err := c.do(ctx, http.MethodPost, "/entities", entity, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEntity(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/entities/"+id, nil, nil)
}

func (c *Client) Sales(ctx context.Context) ([]domain.Sale, error) {
	var out []domain.Sale
	if err := c.do(ctx, http.MethodGet, "/sales", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSale(ctx context.Context, sale any) (*domain.Sale, error) {
	var out domain.Sale
	if err := c.do(ctx, http.MethodPost, "/sales", sale, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSale(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/sales/"+id, nil, nil)
}

func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ChangeRole(ctx context.Context, id, role string) (*domain.User, error) {
	var out domain.User
	body := map[string]string{"role": role}
	if err := c.do(ctx, http.MethodPut, "/users/"+id+"/role", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id, nil, nil)
}

func (c *Client) Overview(ctx context.Context) (*ports.Overview, error) {
	var out ports.Overview
	if err := c.do(ctx, http.MethodGet, "/dashboard/overview", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
