package portalapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"talenthire-backend/internal/domain/portal"
)

func testAccount() portal.Account {
	return portal.Account{
		LeadID:         strings.Repeat("e", 32),
		Name:           "Jordan Reese",
		Email:          "jordan@example.com",
		Phone:          "+628111222333",
		CredentialHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
}

func TestCreatePortalAccount_Success(t *testing.T) {
	var gotReq createAccountReq
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/portal-accounts" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("content-type: %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(createAccountResp{
			AccountID: "acct-77",
			LoginID:   "jordan@example.com",
		})
	}))
	defer srv.Close()

	c := NewProvisionerClient(srv.URL, 2*time.Second)
	acct, err := c.CreatePortalAccount(context.Background(), testAccount())
	if err != nil {
		t.Fatalf("CreatePortalAccount: %v", err)
	}
	if acct.AccountID != "acct-77" || acct.LoginID != "jordan@example.com" {
		t.Fatalf("unexpected account: %+v", acct)
	}
	if gotReq.LeadID != strings.Repeat("e", 32) || gotReq.Email != "jordan@example.com" {
		t.Fatalf("payload not forwarded: %+v", gotReq)
	}
	if gotReq.CredentialHash == "" {
		t.Fatalf("credential hash must be sent")
	}
}

func TestCreatePortalAccount_ConflictMapsToErrAccountExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	c := NewProvisionerClient(srv.URL, 2*time.Second)
	_, err := c.CreatePortalAccount(context.Background(), testAccount())
	if !errors.Is(err, portal.ErrAccountExists) {
		t.Fatalf("want portal.ErrAccountExists, got %v", err)
	}
}

func TestCreatePortalAccount_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	c := NewProvisionerClient(srv.URL, 2*time.Second)
	_, err := c.CreatePortalAccount(context.Background(), testAccount())
	if err == nil {
		t.Fatalf("expected error for 502")
	}
	if errors.Is(err, portal.ErrAccountExists) {
		t.Fatalf("502 must not map to ErrAccountExists")
	}
	if !strings.Contains(err.Error(), "502") || !strings.Contains(err.Error(), "upstream down") {
		t.Fatalf("error should carry status and body excerpt: %v", err)
	}
}

func TestCreatePortalAccount_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewProvisionerClient(srv.URL, 2*time.Second)
	if _, err := c.CreatePortalAccount(ctx, testAccount()); err == nil {
		t.Fatalf("expected error for canceled context")
	}
}
