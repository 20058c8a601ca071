package domain

import "testing"

func TestAuthStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    AuthStatus
		to      AuthStatus
		allowed bool
	}{
		{"new to code_verified", StatusNew, StatusCodeVerified, true},
		{"code_verified to done", StatusCodeVerified, StatusDone, true},
		{"code_verified to photo_step", StatusCodeVerified, StatusPhotoStep, true},
		{"done to photo_step", StatusDone, StatusPhotoStep, true},
		{"photo_step re-upload", StatusPhotoStep, StatusPhotoStep, true},
		{"new to done skips verification", StatusNew, StatusDone, false},
		{"new to photo_step skips verification", StatusNew, StatusPhotoStep, false},
		{"done back to new", StatusDone, StatusNew, false},
		{"code_verified back to new", StatusCodeVerified, StatusNew, false},
		{"photo_step back to done", StatusPhotoStep, StatusDone, false},
		{"done to code_verified", StatusDone, StatusCodeVerified, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransition(tt.to); got != tt.allowed {
				t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestAuthStatus_CanLogin(t *testing.T) {
	tests := []struct {
		status AuthStatus
		want   bool
	}{
		{StatusNew, false},
		{StatusCodeVerified, false},
		{StatusPhotoStep, true},
		{StatusDone, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.CanLogin(); got != tt.want {
				t.Errorf("CanLogin(%s) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}
