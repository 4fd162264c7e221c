package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/timeseven/ielts-essay-analyzer/internal/domain"
	"github.com/timeseven/ielts-essay-analyzer/internal/repository"
	"github.com/timeseven/ielts-essay-analyzer/pkg/hash"
	"github.com/timeseven/ielts-essay-analyzer/pkg/session"
	"github.com/timeseven/ielts-essay-analyzer/pkg/token"
)

var (
	// ErrInvalidCredentials covers unknown identifier and wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	users    repository.UserRepository
	clients  repository.ClientRepository
	profiles repository.ProfileRepository
	sessions *session.Store
	issuer   *token.Issuer
}

type RegisterRequest struct {
	Username   string `json:"username" validate:"required,min=3,max=255"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	ClientName string `json:"client_name" validate:"omitempty,max=255"`
	ClientID   string `json:"client_id" validate:"omitempty,uuid"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func NewAuthService(
	users repository.UserRepository,
	clients repository.ClientRepository,
	profiles repository.ProfileRepository,
	sessions *session.Store,
	issuer *token.Issuer,
) *AuthService {
	return &AuthService{
		users:    users,
		clients:  clients,
		profiles: profiles,
		sessions: sessions,
		issuer:   issuer,
	}
}

// Register creates a user, attaches it to a client (creating one when
// no client_id is given, in which case the user becomes its owner),
// creates the client-scoped profile, and mints the cookie token pair
// with the refresh session stored server-side.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*domain.Profile, *token.Pair, error) {
	hashedPassword, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:             uuid.New(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	var clientID uuid.UUID
	ownsClient := req.ClientID == ""
	if ownsClient {
		clientName := req.ClientName
		if clientName == "" {
			clientName = req.Username
		}
		client := &domain.Client{ID: uuid.New(), Name: clientName}
		if err := s.clients.Create(ctx, client); err != nil {
			return nil, nil, err
		}
		clientID = client.ID
	} else {
		clientID, err = uuid.Parse(req.ClientID)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid client_id: %w", err)
		}
		if _, err := s.clients.GetByID(ctx, clientID); err != nil {
			return nil, nil, err
		}
	}

	if err := s.users.SetCurrentClient(ctx, user.ID, clientID); err != nil {
		return nil, nil, err
	}

	fullName := user.Username
	profile := &domain.Profile{
		ClientID:      clientID,
		UserID:        user.ID,
		IsClientOwner: ownsClient,
		FullName:      &fullName,
		Status:        domain.ProfileStatusActive,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, nil, err
	}

	pair, err := s.mintSession(ctx, clientID, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return profile, pair, nil
}

// Login authenticates by username or email and returns the refreshed
// profile plus a new cookie token pair.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*domain.Profile, *token.Pair, error) {
	user, err := s.users.GetByUsernameOrEmail(ctx, req.Username)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if !hash.VerifyPassword(req.Password, user.HashedPassword) {
		return nil, nil, ErrInvalidCredentials
	}

	if user.CurrentClientID == nil {
		return nil, nil, ErrInvalidCredentials
	}
	clientID := *user.CurrentClientID

	profile, err := s.profiles.TouchLogin(ctx, clientID, user.ID)
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.mintSession(ctx, clientID, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return profile, pair, nil
}

// Logout invalidates the refresh session. An empty or already-expired
// token is a no-op.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.sessions.Delete(ctx, refreshToken)
}

func (s *AuthService) mintSession(ctx context.Context, clientID, userID uuid.UUID) (*token.Pair, error) {
	pair, err := s.issuer.IssuePair(clientID.String(), userID.String())
	if err != nil {
		return nil, fmt.Errorf("issue token pair: %w", err)
	}

	if err := s.sessions.PutUntil(ctx, pair.RefreshToken, clientID.String(), userID.String(), pair.RefreshExpiresAt); err != nil {
		return nil, err
	}

	return pair, nil
}
