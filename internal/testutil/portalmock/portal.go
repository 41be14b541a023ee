package portalmock

import (
	"context"
	"sync"

	"talenthire-backend/internal/domain/portal"
)

var (
	_ portal.Provisioner = (*Provisioner)(nil)
	_ portal.Notifier    = (*Notifier)(nil)
)

// Provisioner is a function-backed mock that also counts calls, for
// exactly-once assertions.
type Provisioner struct {
	mu       sync.Mutex
	calls    int
	CreateFn func(ctx context.Context, a portal.Account) (*portal.ProvisionedAccount, error)
}

func (m *Provisioner) CreatePortalAccount(ctx context.Context, a portal.Account) (*portal.ProvisionedAccount, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return &portal.ProvisionedAccount{AccountID: "acct-1", LoginID: a.Email}, nil
}

func (m *Provisioner) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Notifier records dispatched notifications.
type Notifier struct {
	mu        sync.Mutex
	Welcomes  []portal.Welcome
	Reviews   []portal.Review
	WelcomeFn func(ctx context.Context, w portal.Welcome) error
	ReviewFn  func(ctx context.Context, r portal.Review) error
}

func (m *Notifier) SendWelcomeNotification(ctx context.Context, w portal.Welcome) error {
	m.mu.Lock()
	m.Welcomes = append(m.Welcomes, w)
	m.mu.Unlock()
	if m.WelcomeFn != nil {
		return m.WelcomeFn(ctx, w)
	}
	return nil
}

func (m *Notifier) SendReviewNotification(ctx context.Context, r portal.Review) error {
	m.mu.Lock()
	m.Reviews = append(m.Reviews, r)
	m.mu.Unlock()
	if m.ReviewFn != nil {
		return m.ReviewFn(ctx, r)
	}
	return nil
}
