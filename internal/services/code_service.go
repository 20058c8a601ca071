package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/azimochilov/instagram-clone/domain"
)

// CodeServiceImpl implements domain.CodeService on the relational store
type CodeServiceImpl struct {
	codeRepo        domain.CodeRepository
	notificationSvc domain.NotificationService
	config          CodeConfig
}

type CodeConfig struct {
	Length int
	TTL    time.Duration
}

// NewCodeService creates a new verification code service
func NewCodeService(codeRepo domain.CodeRepository, notificationSvc domain.NotificationService, config CodeConfig) domain.CodeService {
	return &CodeServiceImpl{
		codeRepo:        codeRepo,
		notificationSvc: notificationSvc,
		config:          config,
	}
}

// Issue implements domain.CodeService. Delivery is best effort: a sender
// failure is logged and the issued code stays valid.
func (s *CodeServiceImpl) Issue(ctx context.Context, user *domain.User, channel domain.AuthType) (*domain.VerificationCode, error) {
	value, err := s.generateSecureCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}

	code := &domain.VerificationCode{
		UserID:    user.ID,
		Channel:   channel,
		Code:      value,
		ExpiresAt: time.Now().Add(s.config.TTL),
	}

	if err := s.codeRepo.Replace(ctx, code); err != nil {
		return nil, fmt.Errorf("failed to store verification code: %w", err)
	}

	s.deliver(user, channel, value)

	return code, nil
}

func (s *CodeServiceImpl) deliver(user *domain.User, channel domain.AuthType, code string) {
	message := fmt.Sprintf("Your verification code is: %s. Valid for %d minutes.", code, int(s.config.TTL.Minutes()))

	var err error
	switch channel {
	case domain.ViaEmail:
		err = s.notificationSvc.SendEmail(user.Email, "Your verification code", message)
	case domain.ViaPhone:
		err = s.notificationSvc.SendSMS(user.Phone, message)
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"channel": channel,
		}).WithError(err).Warn("verification code delivery failed")
	}
}

// Check implements domain.CodeService. A confirmed code can never pass Check
// again; expiry is a strict time comparison.
func (s *CodeServiceImpl) Check(ctx context.Context, userID uint, code string) error {
	_, err := s.codeRepo.Confirm(ctx, userID, code, time.Now())
	return err
}

// HasOutstanding implements domain.CodeService
func (s *CodeServiceImpl) HasOutstanding(ctx context.Context, userID uint) (bool, error) {
	return s.codeRepo.HasOutstanding(ctx, userID, time.Now())
}

// generateSecureCode generates a cryptographically secure numeric code
func (s *CodeServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
