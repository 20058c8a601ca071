package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/azimochilov/instagram-clone/domain"
	"github.com/azimochilov/instagram-clone/internal/mocks"
)

func newAccountServiceForTest(
	userRepo *mocks.MockUserRepository,
	codeSvc *mocks.MockCodeService,
	passwordSvc *mocks.MockPasswordService,
	authSvc *mocks.MockAuthService,
) domain.AccountService {
	return NewAccountService(userRepo, codeSvc, passwordSvc, authSvc)
}

func TestAccountServiceImpl_Signup(t *testing.T) {
	tests := []struct {
		name          string
		identifier    string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockCodeService)
		expectedError error
		validateUser  func(t *testing.T, user *domain.User)
	}{
		{
			name:       "signup by email",
			identifier: "new@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository, codeSvc *mocks.MockCodeService) {},
			validateUser: func(t *testing.T, user *domain.User) {
				if user.Email != "new@example.com" {
					t.Errorf("expected email new@example.com, got %s", user.Email)
				}
				if user.AuthType != domain.ViaEmail {
					t.Errorf("expected auth type %s, got %s", domain.ViaEmail, user.AuthType)
				}
				if user.AuthStatus != domain.StatusNew {
					t.Errorf("expected status %s, got %s", domain.StatusNew, user.AuthStatus)
				}
				if !strings.HasPrefix(user.Username, "user_") {
					t.Errorf("expected placeholder username, got %s", user.Username)
				}
			},
		},
		{
			name:       "signup by phone",
			identifier: "+998901234567",
			setupMocks: func(userRepo *mocks.MockUserRepository, codeSvc *mocks.MockCodeService) {},
			validateUser: func(t *testing.T, user *domain.User) {
				if user.Phone != "+998901234567" {
					t.Errorf("expected phone +998901234567, got %s", user.Phone)
				}
				if user.AuthType != domain.ViaPhone {
					t.Errorf("expected auth type %s, got %s", domain.ViaPhone, user.AuthType)
				}
			},
		},
		{
			name:       "email already registered",
			identifier: "taken@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository, codeSvc *mocks.MockCodeService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return &domain.User{ID: 7, Email: email}, nil
				}
			},
			expectedError: domain.ErrUserAlreadyExists,
		},
		{
			name:       "phone already registered",
			identifier: "+998901234567",
			setupMocks: func(userRepo *mocks.MockUserRepository, codeSvc *mocks.MockCodeService) {
				userRepo.FindByPhoneFunc = func(ctx context.Context, phone string) (*domain.User, error) {
					return &domain.User{ID: 7, Phone: phone}, nil
				}
			},
			expectedError: domain.ErrUserAlreadyExists,
		},
		{
			name:          "username is not a signup channel",
			identifier:    "plainusername",
			setupMocks:    func(userRepo *mocks.MockUserRepository, codeSvc *mocks.MockCodeService) {},
			expectedError: domain.ErrInvalidChannel,
		},
		{
			name:       "code issue failure aborts signup",
			identifier: "new@example.com",
			setupMocks: func(userRepo *mocks.MockUserRepository, codeSvc *mocks.MockCodeService) {
				codeSvc.IssueFunc = func(ctx context.Context, user *domain.User, channel domain.AuthType) (*domain.VerificationCode, error) {
					return nil, errors.New("store down")
				}
			},
			expectedError: errors.New("failed to issue verification code"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			codeSvc := mocks.NewMockCodeService()
			tt.setupMocks(userRepo, codeSvc)

			svc := newAccountServiceForTest(userRepo, codeSvc, mocks.NewMockPasswordService(), mocks.NewMockAuthService())
			result, err := svc.Signup(context.Background(), tt.identifier)

			if tt.expectedError != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.expectedError)
				}
				if !strings.Contains(err.Error(), tt.expectedError.Error()) {
					t.Errorf("expected error containing %q, got %q", tt.expectedError.Error(), err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result == nil || result.User == nil {
				t.Fatal("expected auth result with user")
			}
			if result.AccessToken == "" || result.RefreshToken == "" {
				t.Error("expected a token pair")
			}
			if tt.validateUser != nil {
				tt.validateUser(t, result.User)
			}
		})
	}
}

func TestAccountServiceImpl_VerifyCode(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		setupMocks     func(*mocks.MockUserRepository, *mocks.MockCodeService)
		expectedError  error
		expectedStatus domain.AuthStatus
	}{
		{
			name: "new account advances to code_verified",
			code: "123456",
			setupMocks: func(userRepo *mocks.MockUserRepository, codeSvc *mocks.MockCodeService) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return &domain.User{ID: id, AuthStatus: domain.StatusNew}, nil
				}
			},
			expectedStatus: domain.StatusCodeVerified,
		},
		{
			name: "completed account status untouched",
			code: "123456",
			setupMocks: func(userRepo *mocks.MockUserRepository, codeSvc *mocks.MockCodeService) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return &domain.User{ID: id, AuthStatus: domain.StatusDone}, nil
				}
			},
			expectedStatus: domain.StatusDone,
		},
		{
			name: "wrong code rejected",
			code: "000000",
			setupMocks: func(userRepo *mocks.MockUserRepository, codeSvc *mocks.MockCodeService) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return &domain.User{ID: id, AuthStatus: domain.StatusNew}, nil
				}
			},
			expectedError: domain.ErrCodeInvalid,
		},
		{
			name:          "unknown user",
			code:          "123456",
			setupMocks:    func(userRepo *mocks.MockUserRepository, codeSvc *mocks.MockCodeService) {},
			expectedError: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			codeSvc := mocks.NewMockCodeService()
			tt.setupMocks(userRepo, codeSvc)

			svc := newAccountServiceForTest(userRepo, codeSvc, mocks.NewMockPasswordService(), mocks.NewMockAuthService())
			result, err := svc.VerifyCode(context.Background(), 1, tt.code)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.User.AuthStatus != tt.expectedStatus {
				t.Errorf("expected status %s, got %s", tt.expectedStatus, result.User.AuthStatus)
			}
		})
	}
}

func TestAccountServiceImpl_ResendCode(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockCodeService)
		expectedError error
	}{
		{
			name: "resend after expiry",
			setupMocks: func(userRepo *mocks.MockUserRepository, codeSvc *mocks.MockCodeService) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return &domain.User{ID: id, Email: "a@b.com", AuthType: domain.ViaEmail, AuthStatus: domain.StatusNew}, nil
				}
			},
		},
		{
			name: "outstanding code blocks resend",
			setupMocks: func(userRepo *mocks.MockUserRepository, codeSvc *mocks.MockCodeService) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return &domain.User{ID: id, Email: "a@b.com", AuthType: domain.ViaEmail, AuthStatus: domain.StatusNew}, nil
				}
				codeSvc.HasOutstandingFunc = func(ctx context.Context, userID uint) (bool, error) {
					return true, nil
				}
			},
			expectedError: domain.ErrCodeStillValid,
		},
		{
			name: "no delivery channel",
			setupMocks: func(userRepo *mocks.MockUserRepository, codeSvc *mocks.MockCodeService) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return &domain.User{ID: id, AuthStatus: domain.StatusNew}, nil
				}
			},
			expectedError: domain.ErrInvalidChannel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			codeSvc := mocks.NewMockCodeService()
			tt.setupMocks(userRepo, codeSvc)

			svc := newAccountServiceForTest(userRepo, codeSvc, mocks.NewMockPasswordService(), mocks.NewMockAuthService())
			err := svc.ResendCode(context.Background(), 1)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestAccountServiceImpl_CompleteProfile(t *testing.T) {
	verifiedUser := func() *domain.User {
		return &domain.User{ID: 1, Email: "a@b.com", AuthType: domain.ViaEmail, AuthStatus: domain.StatusCodeVerified}
	}

	tests := []struct {
		name           string
		upd            domain.ProfileUpdate
		setupMocks     func(*mocks.MockUserRepository)
		expectedError  error
		expectedStatus domain.AuthStatus
	}{
		{
			name: "verified account completes to done",
			upd: domain.ProfileUpdate{
				FirstName:       "Ada",
				LastName:        "Lovelace",
				Username:        "ada",
				Password:        "strongpass1",
				ConfirmPassword: "strongpass1",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return verifiedUser(), nil
				}
			},
			expectedStatus: domain.StatusDone,
		},
		{
			name: "password confirmation mismatch",
			upd: domain.ProfileUpdate{
				FirstName:       "Ada",
				LastName:        "Lovelace",
				Username:        "ada",
				Password:        "strongpass1",
				ConfirmPassword: "different1",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return verifiedUser(), nil
				}
			},
			expectedError: domain.ErrPasswordMismatch,
		},
		{
			name: "weak password",
			upd: domain.ProfileUpdate{
				FirstName:       "Ada",
				LastName:        "Lovelace",
				Username:        "ada",
				Password:        "short",
				ConfirmPassword: "short",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return verifiedUser(), nil
				}
			},
			expectedError: domain.ErrWeakPassword,
		},
		{
			name: "purely numeric username rejected",
			upd: domain.ProfileUpdate{
				FirstName:       "Ada",
				LastName:        "Lovelace",
				Username:        "12345",
				Password:        "strongpass1",
				ConfirmPassword: "strongpass1",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return verifiedUser(), nil
				}
			},
			expectedError: domain.ErrInvalidProfileField,
		},
		{
			name: "too short first name rejected",
			upd: domain.ProfileUpdate{
				FirstName:       "Al",
				LastName:        "Lovelace",
				Username:        "ada",
				Password:        "strongpass1",
				ConfirmPassword: "strongpass1",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return verifiedUser(), nil
				}
			},
			expectedError: domain.ErrInvalidProfileField,
		},
		{
			name: "overlong last name rejected",
			upd: domain.ProfileUpdate{
				FirstName:       "Ada",
				LastName:        strings.Repeat("x", 31),
				Username:        "ada",
				Password:        "strongpass1",
				ConfirmPassword: "strongpass1",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return verifiedUser(), nil
				}
			},
			expectedError: domain.ErrInvalidProfileField,
		},
		{
			name: "username taken by another user",
			upd: domain.ProfileUpdate{
				FirstName:       "Ada",
				LastName:        "Lovelace",
				Username:        "ada",
				Password:        "strongpass1",
				ConfirmPassword: "strongpass1",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return verifiedUser(), nil
				}
				userRepo.FindByUsernameFunc = func(ctx context.Context, username string) (*domain.User, error) {
					return &domain.User{ID: 99, Username: username}, nil
				}
			},
			expectedError: domain.ErrUsernameTaken,
		},
		{
			name: "keeping own username is allowed",
			upd: domain.ProfileUpdate{
				FirstName:       "Ada",
				LastName:        "Lovelace",
				Username:        "ada",
				Password:        "strongpass1",
				ConfirmPassword: "strongpass1",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					u := verifiedUser()
					u.Username = "ada"
					return u, nil
				}
				userRepo.FindByUsernameFunc = func(ctx context.Context, username string) (*domain.User, error) {
					return &domain.User{ID: 1, Username: username}, nil
				}
			},
			expectedStatus: domain.StatusDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			tt.setupMocks(userRepo)

			svc := newAccountServiceForTest(userRepo, mocks.NewMockCodeService(), mocks.NewMockPasswordService(), mocks.NewMockAuthService())
			status, err := svc.CompleteProfile(context.Background(), 1, tt.upd)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if status != tt.expectedStatus {
				t.Errorf("expected status %s, got %s", tt.expectedStatus, status)
			}
		})
	}
}

func TestAccountServiceImpl_SetPhoto(t *testing.T) {
	tests := []struct {
		name           string
		current        domain.AuthStatus
		expectedError  error
		expectedStatus domain.AuthStatus
	}{
		{name: "from code_verified", current: domain.StatusCodeVerified, expectedStatus: domain.StatusPhotoStep},
		{name: "from done", current: domain.StatusDone, expectedStatus: domain.StatusPhotoStep},
		{name: "photo can be replaced", current: domain.StatusPhotoStep, expectedStatus: domain.StatusPhotoStep},
		{name: "unverified account rejected", current: domain.StatusNew, expectedError: domain.ErrIllegalTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
				return &domain.User{ID: id, AuthStatus: tt.current}, nil
			}

			svc := newAccountServiceForTest(userRepo, mocks.NewMockCodeService(), mocks.NewMockPasswordService(), mocks.NewMockAuthService())
			status, err := svc.SetPhoto(context.Background(), 1, "https://cdn.example.com/p.jpg")

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if status != tt.expectedStatus {
				t.Errorf("expected status %s, got %s", tt.expectedStatus, status)
			}
		})
	}
}
