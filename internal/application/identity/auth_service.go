package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/playbase/backend/internal/domain/identity"
	"github.com/playbase/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PasswordHasher hashes and verifies account passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// TokenIssuer issues signed access tokens for authenticated users
type TokenIssuer interface {
	Issue(user *identity.User) (token string, expiresAt time.Time, err error)
}

// TokenRevoker invalidates issued tokens before their natural expiry
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, until time.Time) error
}

// AuthService handles registration, login and account operations
type AuthService struct {
	userRepo identity.Repository
	hasher   PasswordHasher
	issuer   TokenIssuer
	revoker  TokenRevoker
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo identity.Repository,
	hasher PasswordHasher,
	issuer TokenIssuer,
	revoker TokenRevoker,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		revoker:  revoker,
		logger:   logger,
	}
}

// Register creates a new client account and logs it in
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := identity.NewUser(req.Name, req.Email, hash, identity.RoleClient)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issue(user)
}

// Login authenticates a user by email and password. Failed attempts all
// surface the same error so the response does not leak which part was wrong.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	invalid := shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, invalid
	}
	if !user.IsActive {
		return nil, invalid
	}
	if !s.hasher.Verify(user.PasswordHash, req.Password) {
		return nil, invalid
	}

	user.RecordLogin(time.Now())
	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Warn("failed to record login time", zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	return s.issue(user)
}

// Logout revokes the presented token until its natural expiry
func (s *AuthService) Logout(ctx context.Context, token string, expiresAt time.Time) error {
	if s.revoker == nil {
		return nil
	}
	return s.revoker.Revoke(ctx, token, expiresAt)
}

// Me returns the current user's profile
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// ChangePassword replaces the current user's password after verifying the
// old one
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(user.PasswordHash, req.CurrentPassword) {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Current password is incorrect")
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	if err := user.ChangePassword(hash); err != nil {
		return err
	}
	return s.userRepo.Save(ctx, user)
}

func (s *AuthService) issue(user *identity.User) (*AuthResponse, error) {
	token, expiresAt, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      ToUserResponse(user),
	}, nil
}
