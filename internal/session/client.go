package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pranit96/life.me/internal/model"
)

// APIClient is the remote half of the gate: it performs the login call
// against the HTTP API so a client process can authenticate.
type APIClient struct {
	baseURL string
	http    *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type loginPayload struct {
	TelegramID string `json:"telegramId"`
	Username   string `json:"username,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
}

// Login calls POST /api/auth/login and returns the stored user record.
func (c *APIClient) Login(ctx context.Context, telegramID string, profile model.UserProfile) (*model.User, error) {
	body, err := json.Marshal(loginPayload{
		TelegramID: telegramID,
		Username:   profile.Username,
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
	})
	if err != nil {
		return nil, fmt.Errorf("encode login payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var fail struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&fail); err != nil || fail.Error == "" {
			return nil, fmt.Errorf("login failed with status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("login failed: %s", fail.Error)
	}

	var user model.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	return &user, nil
}
