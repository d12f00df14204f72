package usecases

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/webloom-dev/webloom/internal/application/auth/dto"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	"github.com/webloom-dev/webloom/internal/infrastructure/email"
	"github.com/webloom-dev/webloom/internal/shared/biztime"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// ForgotPasswordUseCase begins the reset flow. It reports success whether
// or not the email has an account, so the endpoint cannot be used to
// enumerate users.
type ForgotPasswordUseCase struct {
	userRepo       domainUser.Repository
	emailService   email.Service
	expiresMinutes int
	logger         logger.Interface
}

func NewForgotPasswordUseCase(
	userRepo domainUser.Repository,
	emailService email.Service,
	expiresMinutes int,
	logger logger.Interface,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:       userRepo,
		emailService:   emailService,
		expiresMinutes: expiresMinutes,
		logger:         logger,
	}
}

func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, request dto.ForgotPasswordRequest) error {
	userEntity, err := uc.userRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		uc.logger.Errorw("failed to load user for password reset", "error", err)
		return fmt.Errorf("failed to load user: %w", err)
	}
	if userEntity == nil || !userEntity.IsActive() {
		uc.logger.Infow("password reset requested for unknown email")
		return nil
	}

	token, err := generateResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiresAt := biztime.NowUTC().Add(time.Duration(uc.expiresMinutes) * time.Minute)
	if err := userEntity.BeginPasswordReset(token, expiresAt); err != nil {
		return fmt.Errorf("failed to begin password reset: %w", err)
	}
	if err := uc.userRepo.Update(ctx, userEntity); err != nil {
		return fmt.Errorf("failed to save reset token: %w", err)
	}

	go func(addr, token string) {
		if err := uc.emailService.SendPasswordResetEmail(addr, token); err != nil {
			uc.logger.Warnw("failed to send password reset email", "error", err)
		}
	}(userEntity.Email().String(), token)

	uc.logger.Infow("password reset initiated", "id", userEntity.SID())
	return nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
