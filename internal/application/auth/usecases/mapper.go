package usecases

import (
	"github.com/webloom-dev/webloom/internal/application/auth/dto"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
)

func toUserResponse(u *domainUser.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:     u.SID(),
		Email:  u.Email().String(),
		Role:   string(u.Role()),
		Status: string(u.Status()),
		Limits: dto.LimitsResponse{
			MaxSites:           u.Limits().MaxSites,
			MaxPagesPerSite:    u.Limits().MaxPagesPerSite,
			MaxSectionsPerPage: u.Limits().MaxSectionsPerPage,
		},
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}
