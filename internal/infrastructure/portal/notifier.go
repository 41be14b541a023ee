package portalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"talenthire-backend/internal/domain/portal"
)

// NotifierClient posts notification events to the dispatch service.
// Callers treat every send as fire-and-forget; errors are for logging.
type NotifierClient struct {
	baseURL string
	httpc   *http.Client
}

func NewNotifierClient(baseURL string, timeout time.Duration) *NotifierClient {
	return &NotifierClient{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *NotifierClient) SendWelcomeNotification(ctx context.Context, w portal.Welcome) error {
	return c.post(ctx, "/notifications/welcome", map[string]string{
		"name":       w.Name,
		"login_id":   w.LoginID,
		"credential": w.Credential,
		"contact":    w.Contact,
	})
}

func (c *NotifierClient) SendReviewNotification(ctx context.Context, r portal.Review) error {
	return c.post(ctx, "/notifications/review", map[string]string{
		"client_id": r.ClientID,
		"actor_id":  r.ActorID,
		"message":   r.Message,
	})
}

func (c *NotifierClient) post(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification dispatch: status %d", resp.StatusCode)
	}
	return nil
}
