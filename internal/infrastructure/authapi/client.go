package authapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	domainerrors "laundry-scout.backend/internal/domain/errors"
)

// Client talks to the hosted auth-admin API. Deleting a profile row
// alone leaves a live credential behind, so user deletion also removes
// the auth account through this client. The service key stays
// server-side.
type Client struct {
	baseURL    string
	serviceKey string
	http       *http.Client
}

// NewClient creates an auth-admin API client
func NewClient(baseURL, serviceKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		http:       &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether the client is configured. An unconfigured
// client skips the remote call so local deletion still works in dev.
func (c *Client) Enabled() bool {
	return c.baseURL != "" && c.serviceKey != ""
}

// DeleteUser removes the auth account behind a user profile
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	if !c.Enabled() {
		return nil
	}

	url := fmt.Sprintf("%s/auth/v1/admin/users/%s", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return domainerrors.ErrNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("auth-admin delete failed: status=%d body=%s", resp.StatusCode, string(body))
	}
}
