// Package portalapi holds the HTTP adapters for the external portal
// collaborators: account provisioning and notification dispatch.
package portalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"talenthire-backend/internal/domain/portal"
)

type ProvisionerClient struct {
	baseURL string
	httpc   *http.Client
}

func NewProvisionerClient(baseURL string, timeout time.Duration) *ProvisionerClient {
	return &ProvisionerClient{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

type createAccountReq struct {
	LeadID         string `json:"lead_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	CredentialHash string `json:"credential_hash"`
}

type createAccountResp struct {
	AccountID string `json:"account_id"`
	LoginID   string `json:"login_id"`
}

func (c *ProvisionerClient) CreatePortalAccount(ctx context.Context, a portal.Account) (*portal.ProvisionedAccount, error) {
	payload, err := json.Marshal(createAccountReq{
		LeadID:         a.LeadID,
		Name:           a.Name,
		Email:          a.Email,
		Phone:          a.Phone,
		CredentialHash: a.CredentialHash,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/portal-accounts", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusConflict:
		return nil, portal.ErrAccountExists
	case resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("portal provisioning: status %d: %s", resp.StatusCode, body)
	}

	var out createAccountResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &portal.ProvisionedAccount{AccountID: out.AccountID, LoginID: out.LoginID}, nil
}
