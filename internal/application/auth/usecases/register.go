package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/webloom-dev/webloom/internal/application/auth/dto"
	"github.com/webloom-dev/webloom/internal/domain/credits"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	vo "github.com/webloom-dev/webloom/internal/domain/user/valueobjects"
	"github.com/webloom-dev/webloom/internal/infrastructure/auth"
	"github.com/webloom-dev/webloom/internal/infrastructure/email"
	sharedConfig "github.com/webloom-dev/webloom/internal/shared/config"
	"github.com/webloom-dev/webloom/internal/shared/db"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/id"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// PasswordHasher abstracts the bcrypt hasher for testability.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// SessionSaver is the subset of the session store used at login time.
type SessionSaver interface {
	Save(ctx context.Context, sessionID, refreshToken string) error
}

// RegisterUseCase creates an account with the default plan limits and
// bootstraps its credit ledger in the same transaction.
type RegisterUseCase struct {
	userRepo     domainUser.Repository
	creditsRepo  credits.Repository
	hasher       PasswordHasher
	jwtService   *auth.JWTService
	sessionStore SessionSaver
	txManager    db.TxManager
	emailService email.Service
	quota        sharedConfig.QuotaConfig
	logger       logger.Interface
}

func NewRegisterUseCase(
	userRepo domainUser.Repository,
	creditsRepo credits.Repository,
	hasher PasswordHasher,
	jwtService *auth.JWTService,
	sessionStore SessionSaver,
	txManager db.TxManager,
	emailService email.Service,
	quota sharedConfig.QuotaConfig,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:     userRepo,
		creditsRepo:  creditsRepo,
		hasher:       hasher,
		jwtService:   jwtService,
		sessionStore: sessionStore,
		txManager:    txManager,
		emailService: emailService,
		quota:        quota,
		logger:       logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, request dto.RegisterRequest) (*dto.AuthResponse, error) {
	uc.logger.Infow("executing register use case", "email", request.Email)

	emailVO, err := vo.NewEmail(request.Email)
	if err != nil {
		return nil, errors.NewValidationError("invalid email", err.Error())
	}

	existing, err := uc.userRepo.GetByEmail(ctx, emailVO.String())
	if err != nil {
		uc.logger.Errorw("failed to check existing user", "error", err)
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("an account with this email already exists")
	}

	passwordHash, err := uc.hasher.Hash(request.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userEntity, err := domainUser.NewUser(emailVO, passwordHash, domainUser.PlanLimits{
		MaxSites:           uc.quota.MaxSites,
		MaxPagesPerSite:    uc.quota.MaxPagesPerSite,
		MaxSectionsPerPage: uc.quota.MaxSectionsPerPage,
	}, id.NewUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Create(txCtx, userEntity); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("an account with this email already exists")
			}
			return fmt.Errorf("failed to save user: %w", err)
		}

		ledger, err := credits.NewLedger(userEntity.ID(), int64(uc.quota.SignupCredits), credits.ResetMonthly)
		if err != nil {
			return fmt.Errorf("failed to create credit ledger: %w", err)
		}
		if err := uc.creditsRepo.Create(txCtx, ledger); err != nil {
			return fmt.Errorf("failed to save credit ledger: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
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

	uc.logger.Infow("user registered", "id", userEntity.SID(), "email", userEntity.Email().String())

	if uc.emailService != nil {
		go func(addr string) {
			if err := uc.emailService.SendWelcomeEmail(addr); err != nil {
				uc.logger.Warnw("failed to send welcome email", "error", err)
			}
		}(userEntity.Email().String())
	}

	return &dto.AuthResponse{
		User: toUserResponse(userEntity),
		Tokens: &dto.TokenResponse{
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
			ExpiresIn:    tokens.ExpiresIn,
		},
	}, nil
}
