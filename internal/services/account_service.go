package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/azimochilov/instagram-clone/domain"
)

// AccountServiceImpl implements domain.AccountService, the signup state
// machine NEW -> CODE_VERIFIED -> {PHOTO_STEP, DONE}.
type AccountServiceImpl struct {
	userRepo    domain.UserRepository
	codeSvc     domain.CodeService
	passwordSvc domain.PasswordService
	authSvc     domain.AuthService
}

// NewAccountService creates a new account service
func NewAccountService(
	userRepo domain.UserRepository,
	codeSvc domain.CodeService,
	passwordSvc domain.PasswordService,
	authSvc domain.AuthService,
) domain.AccountService {
	return &AccountServiceImpl{
		userRepo:    userRepo,
		codeSvc:     codeSvc,
		passwordSvc: passwordSvc,
		authSvc:     authSvc,
	}
}

// Signup implements domain.AccountService. The identifier must classify as
// email or phone; it fixes the auth channel for the account's lifetime. The
// returned token pair lets the client drive verification, but login stays
// gated until the profile is complete.
func (s *AccountServiceImpl) Signup(ctx context.Context, emailOrPhone string) (*domain.AuthResult, error) {
	id := domain.ClassifyIdentifier(emailOrPhone)

	user := &domain.User{
		Username:   tempUsername(),
		Role:       "user",
		AuthStatus: domain.StatusNew,
	}

	switch id.Kind {
	case domain.IdentifierEmail:
		if existing, err := s.userRepo.FindByEmail(ctx, id.Value); err == nil && existing != nil {
			return nil, domain.ErrUserAlreadyExists
		}
		user.Email = id.Value
		user.AuthType = domain.ViaEmail
	case domain.IdentifierPhone:
		if existing, err := s.userRepo.FindByPhone(ctx, id.Value); err == nil && existing != nil {
			return nil, domain.ErrUserAlreadyExists
		}
		user.Phone = id.Value
		user.AuthType = domain.ViaPhone
	default:
		return nil, domain.ErrInvalidChannel
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if _, err := s.codeSvc.Issue(ctx, user, user.AuthType); err != nil {
		return nil, fmt.Errorf("failed to issue verification code: %w", err)
	}

	return s.authSvc.IssuePair(ctx, user)
}

// VerifyCode implements domain.AccountService. Advancing NEW to
// CODE_VERIFIED happens at most once; verifying again later is a no-op on
// status.
func (s *AccountServiceImpl) VerifyCode(ctx context.Context, userID uint, code string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.codeSvc.Check(ctx, user.ID, code); err != nil {
		return nil, err
	}

	if user.AuthStatus == domain.StatusNew {
		if !user.AuthStatus.CanTransition(domain.StatusCodeVerified) {
			return nil, domain.ErrIllegalTransition
		}
		user.AuthStatus = domain.StatusCodeVerified
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to update user status: %w", err)
		}
	}

	return s.authSvc.IssuePair(ctx, user)
}

// ResendCode implements domain.AccountService
func (s *AccountServiceImpl) ResendCode(ctx context.Context, userID uint) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	outstanding, err := s.codeSvc.HasOutstanding(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to check outstanding code: %w", err)
	}
	if outstanding {
		return domain.ErrCodeStillValid
	}

	var channel domain.AuthType
	switch {
	case user.AuthType == domain.ViaEmail && user.Email != "":
		channel = domain.ViaEmail
	case user.AuthType == domain.ViaPhone && user.Phone != "":
		channel = domain.ViaPhone
	default:
		return domain.ErrInvalidChannel
	}

	_, err = s.codeSvc.Issue(ctx, user, channel)
	return err
}

// CompleteProfile implements domain.AccountService. Supplying the required
// fields moves a CODE_VERIFIED account to DONE.
func (s *AccountServiceImpl) CompleteProfile(ctx context.Context, userID uint, upd domain.ProfileUpdate) (domain.AuthStatus, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if err := validateProfileFields(upd); err != nil {
		return "", err
	}
	if upd.Password != upd.ConfirmPassword {
		return "", domain.ErrPasswordMismatch
	}
	if err := s.passwordSvc.Validate(upd.Password); err != nil {
		return "", err
	}

	if existing, err := s.userRepo.FindByUsername(ctx, upd.Username); err == nil && existing != nil && existing.ID != user.ID {
		return "", domain.ErrUsernameTaken
	}

	hash, err := s.passwordSvc.Hash(upd.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user.FirstName = upd.FirstName
	user.LastName = upd.LastName
	user.Username = upd.Username
	user.PasswordHash = hash

	if user.AuthStatus == domain.StatusCodeVerified && user.AuthStatus.CanTransition(domain.StatusDone) {
		user.AuthStatus = domain.StatusDone
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}

	return user.AuthStatus, nil
}

// SetPhoto implements domain.AccountService. Uploading a photo moves a
// verified or completed account to PHOTO_STEP; an unverified account is
// rejected.
func (s *AccountServiceImpl) SetPhoto(ctx context.Context, userID uint, photoURL string) (domain.AuthStatus, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if !user.AuthStatus.CanTransition(domain.StatusPhotoStep) {
		return "", domain.ErrIllegalTransition
	}

	user.PhotoURL = photoURL
	user.AuthStatus = domain.StatusPhotoStep
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}

	return user.AuthStatus, nil
}

// Profile implements domain.AccountService
func (s *AccountServiceImpl) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// validateProfileFields enforces the shared rule for first name, last name
// and username: 3 to 30 characters, not purely numeric.
func validateProfileFields(upd domain.ProfileUpdate) error {
	for _, field := range []string{upd.FirstName, upd.LastName, upd.Username} {
		n := utf8.RuneCountInString(field)
		if n < 3 || n > 30 {
			return domain.ErrInvalidProfileField
		}
		if isNumeric(field) {
			return domain.ErrInvalidProfileField
		}
	}
	return nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// tempUsername generates a placeholder username so the unique index holds
// until the user picks one during profile completion.
func tempUsername() string {
	bytes := make([]byte, 6)
	rand.Read(bytes)
	return "user_" + hex.EncodeToString(bytes)
}
