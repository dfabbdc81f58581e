package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"github.com/dimitrije/recipebox-api/internal/config"
)

// UserInfo is the profile a provider reports for the signed-in account.
type UserInfo struct {
	Email     string
	Name      string
	AvatarURL string
	ID        string
	Provider  string
}

type Provider interface {
	GetConsentURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*UserInfo, error)
	Name() string
}

// NewProviders returns the providers that have a client id configured,
// keyed by name.
func NewProviders(cfg *config.Config) map[string]Provider {
	providers := make(map[string]Provider)
	if cfg.GitHub.ClientID != "" {
		p := NewGitHubProvider(cfg.GitHub)
		providers[p.Name()] = p
	}
	if cfg.Google.ClientID != "" {
		p := NewGoogleProvider(cfg.Google)
		providers[p.Name()] = p
	}
	return providers
}

func GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// StateStore remembers issued consent states until they are consumed or
// expire. A state can be consumed once.
type StateStore struct {
	states sync.Map
	ttl    time.Duration
	now    func() time.Time
}

type pendingState struct {
	provider  string
	expiresAt time.Time
}

func NewStateStore(ttl time.Duration) *StateStore {
	return &StateStore{ttl: ttl, now: time.Now}
}

func (s *StateStore) Issue(provider string) (string, error) {
	state, err := GenerateState()
	if err != nil {
		return "", err
	}
	s.states.Store(state, pendingState{provider: provider, expiresAt: s.now().Add(s.ttl)})
	return state, nil
}

// Consume reports whether state was issued for provider and is still live.
func (s *StateStore) Consume(state, provider string) bool {
	v, ok := s.states.LoadAndDelete(state)
	if !ok {
		return false
	}
	pending := v.(pendingState)
	return pending.provider == provider && s.now().Before(pending.expiresAt)
}

// Sweep drops expired states and returns how many were removed.
func (s *StateStore) Sweep() int {
	removed := 0
	now := s.now()
	s.states.Range(func(key, value any) bool {
		if now.After(value.(pendingState).expiresAt) {
			s.states.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// RunSweeper sweeps every interval until ctx is done.
func (s *StateStore) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
