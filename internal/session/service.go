// Package session owns the authenticated session of a profile: it is
// created by a successful login, torn down by logout, by token expiry and
// by unauthenticated API answers, and it provides the bearer token the
// transport attaches to every request.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/walletapi"
)

// DefaultProfile is the profile used when none is configured.
const DefaultProfile = "default"

// API is the subset of the wallet API the session depends on.
type API interface {
	Login(ctx context.Context, input walletapi.LoginInput) (walletapi.LoggedInUser, error)
	Register(ctx context.Context, input walletapi.RegisterInput) (walletapi.CreatedUser, error)
	Me(ctx context.Context) (walletapi.User, error)
}

// Service manages the session lifecycle.
type Service interface {
	// Login validates the form, authenticates and stores the new session.
	// Invalid forms return a *FormError without calling the API.
	Login(ctx context.Context, form LoginForm) (Session, error)

	// Register validates the form and creates the account. No session is
	// established; the user logs in afterwards.
	Register(ctx context.Context, form RegisterForm) (walletapi.CreatedUser, error)

	// Logout tears the session down.
	Logout(ctx context.Context) error

	// Current returns the active session. Expired sessions are torn down
	// and reported as ErrSessionExpired.
	Current(ctx context.Context) (Session, error)

	// Token returns the bearer token of the active session, or "" when
	// there is none.
	Token(ctx context.Context) (string, error)

	// Expire tears the session down after the API rejected its token.
	Expire(ctx context.Context)

	// Refresh reloads the full user profile into the session.
	Refresh(ctx context.Context) (Session, error)

	// Resume stores a session for a token obtained elsewhere, e.g. from a
	// previous login passed on the command line.
	Resume(ctx context.Context, token string) (Session, error)
}

type service struct {
	mu sync.Mutex

	api     API
	storage Storage
	profile string
	now     func() time.Time
}

var _ Service = (*service)(nil)

type config struct {
	storage Storage
	profile string
	now     func() time.Time
}

// Option configures the session service.
type Option func(*config)

// WithStorage sets where sessions are persisted. Default: in memory.
func WithStorage(s Storage) Option {
	return func(c *config) {
		c.storage = s
	}
}

// WithProfile sets the profile sessions are stored under. Default: DefaultProfile.
func WithProfile(profile string) Option {
	return func(c *config) {
		c.profile = profile
	}
}

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// New creates the session service.
func New(api API, opts ...Option) *service {
	cfg := config{
		profile: DefaultProfile,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.storage == nil {
		cfg.storage = NewMemoryStorage()
	}

	return &service{
		api:     api,
		storage: cfg.storage,
		profile: cfg.profile,
		now:     cfg.now,
	}
}

func (s *service) Login(ctx context.Context, form LoginForm) (Session, error) {
	if err := validateLoginForm(form); err != nil {
		return Session{}, err
	}

	login, err := s.api.Login(ctx, walletapi.LoginInput{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		return Session{}, err
	}

	sess := newSession(login, form.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.SaveSession(ctx, s.profile, sess); err != nil {
		return Session{}, err
	}

	logger.Info(ctx, "session created", "session.profile", s.profile, "user.id", sess.User.ID)
	return sess, nil
}

func (s *service) Register(ctx context.Context, form RegisterForm) (walletapi.CreatedUser, error) {
	if err := validateRegisterForm(form); err != nil {
		return walletapi.CreatedUser{}, err
	}

	return s.api.Register(ctx, walletapi.RegisterInput{
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Password:  form.Password,
	})
}

func (s *service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.DeleteSession(ctx, s.profile); err != nil {
		return err
	}

	logger.Info(ctx, "session closed", "session.profile", s.profile)
	return nil
}

func (s *service) Current(ctx context.Context) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current(ctx)
}

// current must be called with s.mu held.
func (s *service) current(ctx context.Context) (Session, error) {
	sess, err := s.storage.LoadSession(ctx, s.profile)
	if err != nil {
		return Session{}, err
	}

	if sess.Expired(s.now()) {
		if err := s.storage.DeleteSession(ctx, s.profile); err != nil {
			logger.Warn(ctx, "failed to delete expired session", "session.profile", s.profile, "error", err)
		}
		return Session{}, ErrSessionExpired
	}

	return sess, nil
}

func (s *service) Token(ctx context.Context) (string, error) {
	sess, err := s.Current(ctx)
	switch {
	case errors.Is(err, ErrNoSession), errors.Is(err, ErrSessionExpired):
		return "", nil
	case err != nil:
		return "", err
	default:
		return sess.Token, nil
	}
}

func (s *service) Expire(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.DeleteSession(ctx, s.profile); err != nil {
		logger.Warn(ctx, "failed to delete rejected session", "session.profile", s.profile, "error", err)
		return
	}

	logger.Warn(ctx, "session expired", "session.profile", s.profile)
}

func (s *service) Refresh(ctx context.Context) (Session, error) {
	if _, err := s.Current(ctx); err != nil {
		return Session{}, err
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		if errors.Is(err, walletapi.ErrUnauthenticated) {
			s.Expire(ctx)
		}
		return Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.current(ctx)
	if err != nil {
		return Session{}, err
	}

	sess.User = user
	if err := s.storage.SaveSession(ctx, s.profile, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *service) Resume(ctx context.Context, token string) (Session, error) {
	if token == "" {
		return Session{}, ErrNoSession
	}

	sess := Session{Token: token, ExpiresAt: tokenExpiry(token)}
	if sess.Expired(s.now()) {
		return Session{}, ErrSessionExpired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.SaveSession(ctx, s.profile, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}
