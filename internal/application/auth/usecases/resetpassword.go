package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/auth/dto"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	"github.com/webloom-dev/webloom/internal/infrastructure/email"
	"github.com/webloom-dev/webloom/internal/shared/biztime"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// ResetPasswordUseCase completes the reset flow with a valid token.
type ResetPasswordUseCase struct {
	userRepo     domainUser.Repository
	hasher       PasswordHasher
	emailService email.Service
	logger       logger.Interface
}

func NewResetPasswordUseCase(
	userRepo domainUser.Repository,
	hasher PasswordHasher,
	emailService email.Service,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		emailService: emailService,
		logger:       logger,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, request dto.ResetPasswordRequest) error {
	userEntity, err := uc.userRepo.GetByResetToken(ctx, request.Token)
	if err != nil {
		uc.logger.Errorw("failed to load user by reset token", "error", err)
		return fmt.Errorf("failed to load user: %w", err)
	}
	if userEntity == nil || !userEntity.CanResetPassword(request.Token, biztime.NowUTC()) {
		return errors.NewBadRequestError("reset token is invalid or expired")
	}

	passwordHash, err := uc.hasher.Hash(request.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// ChangePassword clears the reset token so it is single use
	if err := userEntity.ChangePassword(passwordHash); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	if err := uc.userRepo.Update(ctx, userEntity); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	go func(addr string) {
		if err := uc.emailService.SendPasswordChangedEmail(addr); err != nil {
			uc.logger.Warnw("failed to send password changed email", "error", err)
		}
	}(userEntity.Email().String())

	uc.logger.Infow("password reset completed", "id", userEntity.SID())
	return nil
}
