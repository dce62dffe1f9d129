package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rashikfit/backend/internal/domain"
)

// AuthService is a simulated account registry. The password digest is not a
// real hash and nothing here is a security boundary.
type AuthService struct {
	registry domain.UserRegistry
	logger   logrus.FieldLogger
	newID    func() string
}

func NewAuthService(registry domain.UserRegistry, logger logrus.FieldLogger) *AuthService {
	return &AuthService{registry: registry, logger: logger, newID: uuid.NewString}
}

func simulatePasswordHash(password string) string {
	return password + "_hashed_simulated"
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", fmt.Errorf("%w: a valid email is required", domain.ErrInvalidRequest)
	}
	return email, nil
}

// Register creates an email/password account. It does not start a session.
func (s *AuthService) Register(ctx context.Context, email, password string) (domain.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return domain.User{}, err
	}
	if password == "" {
		return domain.User{}, fmt.Errorf("%w: password is required", domain.ErrInvalidRequest)
	}

	users, err := s.registry.Users(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if _, ok := findByEmail(users, email); ok {
		return domain.User{}, fmt.Errorf("%w: %s", domain.ErrUserExists, email)
	}

	user := domain.User{ID: s.newID(), Email: email}
	users = append(users, domain.RegisteredUser{User: user, PasswordHash: simulatePasswordHash(password)})
	if err := s.registry.SaveUsers(ctx, users); err != nil {
		return domain.User{}, err
	}
	s.logger.WithField("user_id", user.ID).Info("user registered")
	return user, nil
}

// Login checks an email/password account and starts a session
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return domain.User{}, err
	}
	users, err := s.registry.Users(ctx)
	if err != nil {
		return domain.User{}, err
	}
	found, ok := findByEmail(users, email)
	if !ok {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	if found.IsGoogleLogin {
		return domain.User{}, domain.ErrGoogleAccount
	}
	if found.PasswordHash != simulatePasswordHash(password) {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return s.startSession(ctx, found.User)
}

// SignInWithGoogle logs an existing Google account in or registers a new one
func (s *AuthService) SignInWithGoogle(ctx context.Context, email string) (domain.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return domain.User{}, err
	}
	users, err := s.registry.Users(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if found, ok := findByEmail(users, email); ok {
		if !found.IsGoogleLogin {
			return domain.User{}, domain.ErrPasswordAccount
		}
		return s.startSession(ctx, found.User)
	}

	user := domain.User{ID: s.newID(), Email: email, IsGoogleLogin: true}
	if err := s.registry.SaveUsers(ctx, append(users, domain.RegisteredUser{User: user})); err != nil {
		return domain.User{}, err
	}
	s.logger.WithField("user_id", user.ID).Info("user registered with Google")
	return s.startSession(ctx, user)
}

// LoginWithGoogle only logs in accounts that already exist
func (s *AuthService) LoginWithGoogle(ctx context.Context, email string) (domain.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return domain.User{}, err
	}
	users, err := s.registry.Users(ctx)
	if err != nil {
		return domain.User{}, err
	}
	found, ok := findByEmail(users, email)
	if !ok {
		return domain.User{}, fmt.Errorf("%w: no Google account for %s", domain.ErrInvalidCredentials, email)
	}
	if !found.IsGoogleLogin {
		return domain.User{}, domain.ErrPasswordAccount
	}
	return s.startSession(ctx, found.User)
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.registry.ClearSession(ctx)
}

// CurrentUser resolves the session. A session pointing at a removed user is cleared.
func (s *AuthService) CurrentUser(ctx context.Context) (domain.User, error) {
	id, err := s.registry.SessionUserID(ctx)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && id == "") {
		return domain.User{}, domain.ErrUnauthenticated
	}
	if err != nil {
		return domain.User{}, err
	}
	user, err := s.UserByID(ctx, id)
	if errors.Is(err, domain.ErrUnauthenticated) {
		if clearErr := s.registry.ClearSession(ctx); clearErr != nil {
			s.logger.WithError(clearErr).Warn("failed to clear stale session")
		}
	}
	return user, err
}

// UserByID resolves a user id, used by request authentication
func (s *AuthService) UserByID(ctx context.Context, id string) (domain.User, error) {
	users, err := s.registry.Users(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u.User, nil
		}
	}
	return domain.User{}, domain.ErrUnauthenticated
}

func (s *AuthService) startSession(ctx context.Context, user domain.User) (domain.User, error) {
	if err := s.registry.SetSessionUserID(ctx, user.ID); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func findByEmail(users []domain.RegisteredUser, email string) (domain.RegisteredUser, bool) {
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return domain.RegisteredUser{}, false
}
