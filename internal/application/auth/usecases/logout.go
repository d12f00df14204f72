package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// SessionRevoker is the subset of the session store used at logout.
type SessionRevoker interface {
	Revoke(ctx context.Context, sessionID string) error
}

// LogoutUseCase revokes the caller's session so its refresh token stops
// working. The access token stays valid until expiry.
type LogoutUseCase struct {
	sessionStore SessionRevoker
	logger       logger.Interface
}

func NewLogoutUseCase(sessionStore SessionRevoker, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionStore: sessionStore,
		logger:       logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, sessionID string) error {
	if err := uc.sessionStore.Revoke(ctx, sessionID); err != nil {
		uc.logger.Errorw("failed to revoke session", "session_id", sessionID, "error", err)
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	uc.logger.Infow("session revoked", "session_id", sessionID)
	return nil
}
