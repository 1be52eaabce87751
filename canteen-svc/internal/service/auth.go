package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"canteen/apperr"
	"canteen/canteen-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
	Role     string `json:"role" validate:"omitempty,oneof=user staff"`
}

type ProfileInput struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"omitempty,phone"`
}

type AuthService struct {
	users       UserRepository
	identity    IdentityProvider
	sessions    SessionStore
	ttl         time.Duration
	staffEmails map[string]bool
	log         *logrus.Entry
}

// NewAuthService builds the auth service. Sign-ups whose email is listed in
// staffEmails are created as staff.
func NewAuthService(users UserRepository, identity IdentityProvider, sessions SessionStore, ttl time.Duration, staffEmails []string, log *logrus.Entry) *AuthService {
	seeded := make(map[string]bool, len(staffEmails))
	for _, email := range staffEmails {
		if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
			seeded[email] = true
		}
	}
	return &AuthService{users: users, identity: identity, sessions: sessions, ttl: ttl, staffEmails: seeded, log: log}
}

// Register is the public sign-up. Staff accounts come from STAFF_EMAILS or
// from CreateAccount called by an existing staff member.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Role != "" && in.Role != domain.RoleUser {
		return nil, apperr.ForbiddenErr("Only staff can create staff accounts.")
	}
	in.Role = domain.RoleUser
	if s.staffEmails[in.Email] {
		in.Role = domain.RoleStaff
	}
	return s.create(ctx, in)
}

// CreateAccount lets staff create an account with any known role.
func (s *AuthService) CreateAccount(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Role == "" {
		in.Role = domain.RoleUser
	}
	return s.create(ctx, in)
}

func (s *AuthService) create(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	uid, err := s.identity.CreateIdentity(ctx, in.Email, in.Password, in.Name)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperr.ConflictErr("An account with this email already exists.").With(err)
		}
		return nil, apperr.Wrap(err)
	}

	user := &domain.User{
		ID:    uid,
		Email: in.Email,
		Name:  in.Name,
		Role:  in.Role,
		Phone: in.Phone,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		// Drop the identity so the email can register again.
		if derr := s.identity.DeleteIdentity(ctx, uid); derr != nil {
			s.log.WithError(derr).WithField("user_id", uid).Warn("failed to remove identity after profile write failed")
		}
		return nil, repoErr(err, "User")
	}

	s.log.WithFields(logrus.Fields{"user_id": uid, "role": user.Role}).Info("user registered")
	return user, nil
}

func (s *AuthService) SignIn(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	uid, err := s.identity.VerifyCredentials(ctx, creds)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPassword) {
			return nil, apperr.UnauthorizedErr("Invalid email or password.").With(err)
		}
		return nil, apperr.Wrap(err)
	}

	user, err := s.users.GetUser(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.UnauthorizedErr("No profile exists for this account.").With(err)
		}
		return nil, apperr.Wrap(err)
	}

	token := uuid.NewString()
	if err := s.sessions.Save(ctx, token, uid, s.ttl); err != nil {
		return nil, apperr.Wrap(err)
	}

	return &domain.Session{
		Token:     token,
		User:      user,
		ExpiresAt: time.Now().Add(s.ttl),
	}, nil
}

func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return apperr.Wrap(s.sessions.Delete(ctx, token))
}

// Authenticate resolves a session token to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, apperr.UnauthorizedErr("Sign in required.")
	}

	uid, err := s.sessions.Lookup(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.UnauthorizedErr("Session expired. Please sign in again.").With(err)
		}
		return nil, apperr.Wrap(err)
	}

	user, err := s.users.GetUser(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.UnauthorizedErr("Sign in required.").With(err)
		}
		return nil, apperr.Wrap(err)
	}
	return user, nil
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, repoErr(err, "User")
	}
	return user, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*domain.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, repoErr(err, "User")
	}
	user.Name = in.Name
	user.Phone = in.Phone

	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, repoErr(err, "User")
	}
	return user, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return users, nil
}

var _ AuthServiceInterface = (*AuthService)(nil)
