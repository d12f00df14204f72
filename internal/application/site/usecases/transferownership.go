package usecases

import (
	"context"
	"fmt"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/site/dto"
	domainSite "github.com/webloom-dev/webloom/internal/domain/site"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	"github.com/webloom-dev/webloom/internal/shared/db"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

// TransferOwnershipUseCase hands a site to another active user. The
// recipient's own site quota is enforced before the transfer.
type TransferOwnershipUseCase struct {
	resolver  *access.Resolver
	siteRepo  domainSite.Repository
	userRepo  domainUser.Repository
	txManager db.TxManager
	logger    logger.Interface
}

func NewTransferOwnershipUseCase(
	resolver *access.Resolver,
	siteRepo domainSite.Repository,
	userRepo domainUser.Repository,
	txManager db.TxManager,
	logger logger.Interface,
) *TransferOwnershipUseCase {
	return &TransferOwnershipUseCase{
		resolver:  resolver,
		siteRepo:  siteRepo,
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *TransferOwnershipUseCase) Execute(ctx context.Context, actor Actor, siteSID string, request dto.TransferOwnershipRequest) (*dto.SiteResponse, error) {
	siteEntity, err := uc.resolver.AuthorizeSite(ctx, actor, siteSID)
	if err != nil {
		return nil, err
	}

	recipient, err := uc.userRepo.GetByEmail(ctx, request.NewOwnerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if recipient == nil || !recipient.IsActive() {
		return nil, errors.NewNotFoundError("recipient user not found")
	}

	// the recipient quota check and the handover must see the same state
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		count, err := uc.siteRepo.CountByOwner(txCtx, recipient.ID())
		if err != nil {
			return fmt.Errorf("failed to count sites: %w", err)
		}
		if count >= int64(recipient.Limits().MaxSites) {
			return errors.NewConflictError("recipient has reached their site limit")
		}

		if err := siteEntity.TransferTo(recipient.ID()); err != nil {
			return errors.NewBadRequestError(err.Error())
		}
		if err := uc.siteRepo.Update(txCtx, siteEntity); err != nil {
			return fmt.Errorf("failed to save site: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("site ownership transferred",
		"id", siteEntity.SID(), "new_owner", recipient.SID())
	return toSiteResponse(siteEntity), nil
}
