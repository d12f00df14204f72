package mappers

import (
	"fmt"

	"github.com/webloom-dev/webloom/internal/domain/user"
	vo "github.com/webloom-dev/webloom/internal/domain/user/valueobjects"
	"github.com/webloom-dev/webloom/internal/infrastructure/persistence/models"
	"github.com/webloom-dev/webloom/internal/shared/authorization"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:                     u.ID(),
		SID:                    u.SID(),
		Email:                  u.Email().String(),
		PasswordHash:           u.PasswordHash(),
		Role:                   string(u.Role()),
		Status:                 string(u.Status()),
		MaxSites:               u.Limits().MaxSites,
		MaxPagesPerSite:        u.Limits().MaxPagesPerSite,
		MaxSectionsPerPage:     u.Limits().MaxSectionsPerPage,
		BillingCustomerID:      u.BillingCustomerID(),
		BillingSubscriptionID:  u.BillingSubscriptionID(),
		PasswordResetToken:     u.PasswordResetToken(),
		PasswordResetExpiresAt: u.PasswordResetExpiresAt(),
		Version:                u.Version(),
		CreatedAt:              u.CreatedAt(),
		UpdatedAt:              u.UpdatedAt(),
	}
}

func UserToDomain(model *models.UserModel) (*user.User, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid email in storage: %w", err)
	}

	role, err := authorization.ParseUserRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("invalid role in storage: %w", err)
	}

	return user.ReconstructUser(
		model.ID,
		model.SID,
		email,
		model.PasswordHash,
		role,
		user.Status(model.Status),
		user.PlanLimits{
			MaxSites:           model.MaxSites,
			MaxPagesPerSite:    model.MaxPagesPerSite,
			MaxSectionsPerPage: model.MaxSectionsPerPage,
		},
		model.BillingCustomerID,
		model.BillingSubscriptionID,
		model.PasswordResetToken,
		model.PasswordResetExpiresAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
