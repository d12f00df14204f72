package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/webloom-dev/webloom/internal/application/auth/dto"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	"github.com/webloom-dev/webloom/internal/infrastructure/auth"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// LoginUseCase verifies credentials and opens a session. Failures are
// reported uniformly so callers cannot probe which accounts exist.
type LoginUseCase struct {
	userRepo     domainUser.Repository
	hasher       PasswordHasher
	jwtService   *auth.JWTService
	sessionStore SessionSaver
	logger       logger.Interface
}

func NewLoginUseCase(
	userRepo domainUser.Repository,
	hasher PasswordHasher,
	jwtService *auth.JWTService,
	sessionStore SessionSaver,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		jwtService:   jwtService,
		sessionStore: sessionStore,
		logger:       logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, request dto.LoginRequest) (*dto.AuthResponse, error) {
	userEntity, err := uc.userRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		uc.logger.Errorw("failed to load user for login", "error", err)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if userEntity == nil || !userEntity.IsActive() {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Verify(request.Password, userEntity.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "email", request.Email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	sessionID := uuid.NewString()
	tokens, err := uc.jwtService.Generate(userEntity.SID(), sessionID, userEntity.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "error", err)
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	if err := uc.sessionStore.Save(ctx, sessionID, tokens.RefreshToken); err != nil {
		uc.logger.Errorw("failed to save session", "error", err)
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	uc.logger.Infow("user logged in", "id", userEntity.SID())

	return &dto.AuthResponse{
		User: toUserResponse(userEntity),
		Tokens: &dto.TokenResponse{
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
			ExpiresIn:    tokens.ExpiresIn,
		},
	}, nil
}
