package usecases

import (
	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/application/credits/dto"
	domainCredits "github.com/webloom-dev/webloom/internal/domain/credits"
)

// Actor aliases the access actor so handlers import one package.
type Actor = access.Actor

func toBalanceResponse(l *domainCredits.Ledger) *dto.BalanceResponse {
	return &dto.BalanceResponse{
		Credits:     l.Credits(),
		UsedCredits: l.UsedCredits(),
		Remaining:   l.Remaining(),
		Frequency:   l.Frequency().String(),
		LastResetAt: l.LastResetAt(),
		NextResetAt: l.NextResetAt(),
	}
}
