package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azimochilov/instagram-clone/domain"
	"github.com/azimochilov/instagram-clone/internal/mocks"
)

// authenticated simulates the auth middleware for handler tests.
func authenticated(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Set("session_id", "sess_test")
		c.Next()
	}
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAccountHandlers_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*mocks.MockAccountService)
		expectedStatus int
	}{
		{
			name:           "created",
			body:           SignupRequest{EmailOrPhone: "new@example.com"},
			setupMocks:     func(svc *mocks.MockAccountService) {},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "conflict",
			body: SignupRequest{EmailOrPhone: "taken@example.com"},
			setupMocks: func(svc *mocks.MockAccountService) {
				svc.SignupFunc = func(ctx context.Context, emailOrPhone string) (*domain.AuthResult, error) {
					return nil, domain.ErrUserAlreadyExists
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "username is not a channel",
			body: SignupRequest{EmailOrPhone: "justaname"},
			setupMocks: func(svc *mocks.MockAccountService) {
				svc.SignupFunc = func(ctx context.Context, emailOrPhone string) (*domain.AuthResult, error) {
					return nil, domain.ErrInvalidChannel
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing body field",
			body:           map[string]string{},
			setupMocks:     func(svc *mocks.MockAccountService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAccountService()
			tt.setupMocks(svc)

			r := gin.New()
			h := NewAccountHandlers(svc)
			r.POST("/users/signup", h.Signup)

			w := performJSON(t, r, http.MethodPost, "/users/signup", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var resp map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data, ok := resp["data"].(map[string]interface{})
				require.True(t, ok)
				assert.NotEmpty(t, data["access_token"])
				assert.NotEmpty(t, data["refresh_token"])
			}
		})
	}
}

func TestAccountHandlers_Verify(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{name: "accepted", code: "123456", expectedStatus: http.StatusOK},
		{name: "rejected", code: "000000", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAccountService()

			r := gin.New()
			h := NewAccountHandlers(svc)
			r.POST("/users/verify", authenticated("1", "user"), h.Verify)

			w := performJSON(t, r, http.MethodPost, "/users/verify", VerifyRequest{Code: tt.code})
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAccountHandlers_CompleteProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validBody := ProfileRequest{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Username:        "ada",
		Password:        "strongpass1",
		ConfirmPassword: "strongpass1",
	}

	tests := []struct {
		name           string
		setupMocks     func(*mocks.MockAccountService)
		expectedStatus int
	}{
		{
			name:           "profile completed",
			setupMocks:     func(svc *mocks.MockAccountService) {},
			expectedStatus: http.StatusOK,
		},
		{
			name: "username taken",
			setupMocks: func(svc *mocks.MockAccountService) {
				svc.CompleteProfileFunc = func(ctx context.Context, userID uint, upd domain.ProfileUpdate) (domain.AuthStatus, error) {
					return "", domain.ErrUsernameTaken
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "weak password",
			setupMocks: func(svc *mocks.MockAccountService) {
				svc.CompleteProfileFunc = func(ctx context.Context, userID uint, upd domain.ProfileUpdate) (domain.AuthStatus, error) {
					return "", domain.ErrWeakPassword
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid profile field",
			setupMocks: func(svc *mocks.MockAccountService) {
				svc.CompleteProfileFunc = func(ctx context.Context, userID uint, upd domain.ProfileUpdate) (domain.AuthStatus, error) {
					return "", domain.ErrInvalidProfileField
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "step out of order",
			setupMocks: func(svc *mocks.MockAccountService) {
				svc.CompleteProfileFunc = func(ctx context.Context, userID uint, upd domain.ProfileUpdate) (domain.AuthStatus, error) {
					return "", domain.ErrIllegalTransition
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAccountService()
			tt.setupMocks(svc)

			r := gin.New()
			h := NewAccountHandlers(svc)
			r.PUT("/users/profile", authenticated("1", "user"), h.CompleteProfile)

			w := performJSON(t, r, http.MethodPut, "/users/profile", validBody)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAccountHandlers_ResendCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("resent", func(t *testing.T) {
		svc := mocks.NewMockAccountService()
		r := gin.New()
		h := NewAccountHandlers(svc)
		r.GET("/users/verify/resend", authenticated("1", "user"), h.ResendCode)

		w := performJSON(t, r, http.MethodGet, "/users/verify/resend", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("previous code still valid", func(t *testing.T) {
		svc := mocks.NewMockAccountService()
		svc.ResendCodeFunc = func(ctx context.Context, userID uint) error {
			return domain.ErrCodeStillValid
		}
		r := gin.New()
		h := NewAccountHandlers(svc)
		r.GET("/users/verify/resend", authenticated("1", "user"), h.ResendCode)

		w := performJSON(t, r, http.MethodGet, "/users/verify/resend", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestResponseEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success body carries the envelope", func(t *testing.T) {
		svc := mocks.NewMockAccountService()
		r := gin.New()
		h := NewAccountHandlers(svc)
		r.POST("/users/signup", h.Signup)

		w := performJSON(t, r, http.MethodPost, "/users/signup", SignupRequest{EmailOrPhone: "new@example.com"})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
		assert.NotEmpty(t, resp["message"])
		assert.Contains(t, resp, "data")
	})

	t.Run("failure body carries the envelope", func(t *testing.T) {
		svc := mocks.NewMockAccountService()
		svc.SignupFunc = func(ctx context.Context, emailOrPhone string) (*domain.AuthResult, error) {
			return nil, domain.ErrUserAlreadyExists
		}
		r := gin.New()
		h := NewAccountHandlers(svc)
		r.POST("/users/signup", h.Signup)

		w := performJSON(t, r, http.MethodPost, "/users/signup", SignupRequest{EmailOrPhone: "taken@example.com"})
		require.Equal(t, http.StatusConflict, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "User already exists", resp["message"])
	})
}

func TestAccountHandlers_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := mocks.NewMockAccountService()
	svc.ProfileFunc = func(ctx context.Context, userID uint) (*domain.User, error) {
		return &domain.User{ID: userID, Username: "ada", Email: "ada@example.com", AuthStatus: domain.StatusDone}, nil
	}

	r := gin.New()
	h := NewAccountHandlers(svc)
	r.GET("/users/me", authenticated("1", "user"), h.Me)

	w := performJSON(t, r, http.MethodGet, "/users/me", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ada", data["username"])
	assert.Equal(t, string(domain.StatusDone), data["auth_status"])
}
