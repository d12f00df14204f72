package mappers

import (
	"github.com/webloom-dev/webloom/internal/domain/credits"
	"github.com/webloom-dev/webloom/internal/infrastructure/persistence/models"
)

func LedgerToModel(l *credits.Ledger) *models.CreditLedgerModel {
	return &models.CreditLedgerModel{
		ID:             l.ID(),
		UserID:         l.UserID(),
		Credits:        l.Credits(),
		UsedCredits:    l.UsedCredits(),
		ResetFrequency: l.Frequency().String(),
		LastResetAt:    l.LastResetAt(),
		NextResetAt:    l.NextResetAt(),
		Version:        l.Version(),
		CreatedAt:      l.CreatedAt(),
		UpdatedAt:      l.UpdatedAt(),
	}
}

func LedgerToDomain(model *models.CreditLedgerModel) (*credits.Ledger, error) {
	return credits.ReconstructLedger(
		model.ID,
		model.UserID,
		model.Credits,
		model.UsedCredits,
		credits.ResetFrequency(model.ResetFrequency),
		model.LastResetAt,
		model.NextResetAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
