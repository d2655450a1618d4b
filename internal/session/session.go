package session

import (
	"context"
	"sync"

	"unbacklog/internal/model"
)

// State of the session: Unknown until the first identity resolution
// finishes, then Authenticated or Unauthenticated.
type State int

const (
	StateUnknown State = iota
	StateAuthenticated
	StateUnauthenticated
)

// API is the slice of the remote client the session store drives.
type API interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password, name string) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*model.User, error)
	SessionToken() string
}

// Store holds the authenticated identity for the lifetime of the
// process. Views read it; only the auth actions mutate it.
type Store struct {
	mu    sync.RWMutex
	api   API
	user  *model.User
	state State
}

func New(api API) *Store {
	return &Store{api: api, state: StateUnknown}
}

// Resolve attempts to recover an identity from an existing session
// credential. Failure is not an error, it just means "not logged in".
func (s *Store) Resolve(ctx context.Context) {
	user, err := s.api.CurrentUser(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.user = nil
		s.state = StateUnauthenticated
		return
	}
	s.user = user
	s.state = StateAuthenticated
}

// Login establishes a session and resolves the identity behind it.
// State is left Unauthenticated when the credentials are rejected.
func (s *Store) Login(ctx context.Context, email, password string) error {
	if err := s.api.Login(ctx, email, password); err != nil {
		s.Invalidate()
		return err
	}
	return s.adopt(ctx)
}

// Register creates the account and immediately establishes a session,
// with the same failure contract as Login.
func (s *Store) Register(ctx context.Context, email, password, name string) error {
	if err := s.api.Register(ctx, email, password, name); err != nil {
		s.Invalidate()
		return err
	}
	return s.adopt(ctx)
}

// Logout invalidates the session server-side and clears the local
// identity regardless of what the server answered.
func (s *Store) Logout(ctx context.Context) error {
	err := s.api.Logout(ctx)
	s.Invalidate()
	return err
}

// Invalidate drops the local identity. Called on logout and whenever
// any remote call reports the session is no longer accepted.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.state = StateUnauthenticated
}

func (s *Store) adopt(ctx context.Context) error {
	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.Invalidate()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.state = StateAuthenticated
	return nil
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the current identity, false when not authenticated.
func (s *Store) User() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// IsProductOwner reports whether the logged-in user participates in
// the project as Product Owner. Every role-gated affordance goes
// through here instead of recomputing membership per view.
func (s *Store) IsProductOwner(project model.Project) bool {
	user, ok := s.User()
	if !ok {
		return false
	}
	for _, associate := range project.Associates {
		if associate.Email == user.Email && associate.Role == model.RoleProductOwner {
			return true
		}
	}
	return false
}
