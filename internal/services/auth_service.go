package services

import (
	"context"
	"fmt"
	"time"

	"github.com/azimochilov/instagram-clone/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	codeSvc     domain.CodeService
	accessTTL   time.Duration
	refreshTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	codeSvc domain.CodeService,
	accessTTL, refreshTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		codeSvc:     codeSvc,
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
	}
}

// Login implements domain.AuthService. The identifier is classified once:
// phone-shaped input resolves by phone, email-shaped by email, everything
// else by username. Only DONE and PHOTO_STEP accounts may log in.
func (s *AuthServiceImpl) Login(ctx context.Context, identifier, password string) (*domain.AuthResult, error) {
	user, err := s.resolve(ctx, domain.ClassifyIdentifier(identifier))
	if err != nil {
		return nil, err
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.AuthStatus.CanLogin() {
		return nil, domain.ErrRegistrationIncomplete
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	return s.IssuePair(ctx, user)
}

func (s *AuthServiceImpl) resolve(ctx context.Context, id domain.Identifier) (*domain.User, error) {
	switch id.Kind {
	case domain.IdentifierPhone:
		return s.userRepo.FindByPhone(ctx, id.Value)
	case domain.IdentifierEmail:
		return s.userRepo.FindByEmail(ctx, id.Value)
	default:
		return s.userRepo.FindByUsername(ctx, id.Value)
	}
}

// Refresh implements domain.AuthService. The session lookup is the
// revocation check: a logged-out session fails here immediately.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	claims, err := s.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	session, err := s.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID, user.Role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    session.ID,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// Logout implements domain.AuthService. Deleting the session revokes the
// refresh token; a second logout with the same token fails.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return domain.ErrTokenInvalid
	}

	if _, err := s.sessionRepo.FindByID(ctx, claims.SessionID); err != nil {
		return err
	}

	return s.sessionRepo.Delete(ctx, claims.SessionID)
}

// ForgotPassword implements domain.AuthService. It issues a reset code on
// the resolved channel and hands back a session pair before the password
// changes, so the client can reach the reset endpoint.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, identifier string) (*domain.AuthResult, error) {
	id := domain.ClassifyIdentifier(identifier)

	var (
		user    *domain.User
		channel domain.AuthType
		err     error
	)
	switch id.Kind {
	case domain.IdentifierPhone:
		user, err = s.userRepo.FindByPhone(ctx, id.Value)
		channel = domain.ViaPhone
	case domain.IdentifierEmail:
		user, err = s.userRepo.FindByEmail(ctx, id.Value)
		channel = domain.ViaEmail
	default:
		return nil, domain.ErrInvalidChannel
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.codeSvc.Issue(ctx, user, channel); err != nil {
		return nil, fmt.Errorf("failed to issue reset code: %w", err)
	}

	return s.IssuePair(ctx, user)
}

// ResetPassword implements domain.AuthService
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, userID uint, password, confirm string) (*domain.AuthResult, error) {
	if password != confirm {
		return nil, domain.ErrPasswordMismatch
	}
	if err := s.passwordSvc.Validate(password); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	hash, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}
	user.PasswordHash = hash

	return s.IssuePair(ctx, user)
}

// IssuePair implements domain.AuthService
func (s *AuthServiceImpl) IssuePair(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	session := &domain.Session{
		ID:        fmt.Sprintf("sess_%d_%d", user.ID, time.Now().UnixNano()),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.refreshTTL),
		CreatedAt: time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID, user.Role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokenSvc.GenerateRefreshToken(user.ID, user.Role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    session.ID,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}
