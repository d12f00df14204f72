package mappers

import (
	"fmt"

	"github.com/webloom-dev/webloom/internal/domain/payment"
	vo "github.com/webloom-dev/webloom/internal/domain/payment/valueobjects"
	"github.com/webloom-dev/webloom/internal/infrastructure/persistence/models"
)

func PaymentToModel(p *payment.Payment) *models.PaymentModel {
	model := &models.PaymentModel{
		ID:             p.ID(),
		SID:            p.SID(),
		UserID:         p.UserID(),
		OrderNo:        p.OrderNo(),
		Amount:         p.Amount().Amount(),
		RefundedAmount: p.RefundedAmount().Amount(),
		Currency:       p.Amount().Currency(),
		Status:         p.Status().String(),
		Method:         p.Method().String(),
		PaymentType:    p.PaymentType().String(),
		ProcessorRef:   p.ProcessorRef(),
		Description:    p.Description(),
		PaidAt:         p.PaidAt(),
		RefundedAt:     p.RefundedAt(),
		Version:        p.Version(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}

	if len(p.Metadata()) > 0 {
		model.Metadata = p.Metadata()
	}

	return model
}

func PaymentToDomain(model *models.PaymentModel) (*payment.Payment, error) {
	amount, err := vo.NewMoney(model.Amount, model.Currency)
	if err != nil {
		return nil, fmt.Errorf("invalid amount in storage: %w", err)
	}

	refunded, err := vo.NewMoney(model.RefundedAmount, model.Currency)
	if err != nil {
		return nil, fmt.Errorf("invalid refunded amount in storage: %w", err)
	}

	method, err := vo.ParsePaymentMethod(model.Method)
	if err != nil {
		return nil, err
	}

	paymentType, err := vo.ParsePaymentType(model.PaymentType)
	if err != nil {
		return nil, err
	}

	return payment.ReconstructPayment(
		model.ID,
		model.SID,
		model.UserID,
		model.OrderNo,
		amount,
		refunded,
		vo.PaymentStatus(model.Status),
		method,
		paymentType,
		model.ProcessorRef,
		model.Description,
		model.Metadata,
		model.PaidAt,
		model.RefundedAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
