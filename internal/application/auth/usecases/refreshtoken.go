package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/auth/dto"
	"github.com/webloom-dev/webloom/internal/infrastructure/auth"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// SessionRotator is the subset of the session store used when refreshing.
type SessionRotator interface {
	Rotate(ctx context.Context, sessionID, oldToken, newToken string) (bool, error)
}

// RefreshTokenUseCase exchanges a refresh token for a fresh pair with
// rotation: the presented token must match the session's stored one and is
// replaced atomically.
type RefreshTokenUseCase struct {
	jwtService   *auth.JWTService
	sessionStore SessionRotator
	logger       logger.Interface
}

func NewRefreshTokenUseCase(
	jwtService *auth.JWTService,
	sessionStore SessionRotator,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		jwtService:   jwtService,
		sessionStore: sessionStore,
		logger:       logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, request dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := uc.jwtService.Verify(request.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}
	if claims.TokenType != auth.TokenTypeRefresh {
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	tokens, err := uc.jwtService.Generate(claims.UserSID, claims.SessionID, claims.Role)
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "error", err)
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	rotated, err := uc.sessionStore.Rotate(ctx, claims.SessionID, request.RefreshToken, tokens.RefreshToken)
	if err != nil {
		uc.logger.Errorw("failed to rotate session", "error", err)
		return nil, fmt.Errorf("failed to rotate session: %w", err)
	}
	if !rotated {
		// session revoked, or the token was already used once
		return nil, errors.NewUnauthorizedError("session is no longer valid")
	}

	return &dto.TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
