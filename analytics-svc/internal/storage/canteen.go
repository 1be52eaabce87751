package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"canteen/apperr"
)

// CanteenClient asks canteen-svc who owns a bearer token.
type CanteenClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewCanteenClient(baseURL string) *CanteenClient {
	return &CanteenClient{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: http.DefaultClient}
}

type meResponse struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// VerifyStaff succeeds when authorization belongs to a staff account.
func (c *CanteenClient) VerifyStaff(ctx context.Context, authorization string) error {
	if authorization == "" {
		return apperr.UnauthorizedErr("Sign in required.")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/me", nil)
	if err != nil {
		return apperr.Wrap(err)
	}
	req.Header.Set("Authorization", authorization)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return apperr.Wrap(err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return apperr.UnauthorizedErr("Sign in required.")
	default:
		return apperr.Wrap(fmt.Errorf("canteen-svc /api/me returned %d", resp.StatusCode))
	}

	var me meResponse
	if err := json.NewDecoder(resp.Body).Decode(&me); err != nil {
		return apperr.Wrap(err)
	}
	if me.Role != "staff" {
		return apperr.ForbiddenErr("Staff access required.")
	}
	return nil
}
