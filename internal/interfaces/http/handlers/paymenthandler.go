package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/webloom-dev/webloom/internal/application/payment/dto"
	paymentUsecases "github.com/webloom-dev/webloom/internal/application/payment/usecases"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
	"github.com/webloom-dev/webloom/internal/shared/utils"
)

// PaymentHandler exposes payment intents, refunds, credit purchases,
// subscriptions, and processor-side billing data.
type PaymentHandler struct {
	createIntentUC       *paymentUsecases.CreateIntentUseCase
	confirmIntentUC      *paymentUsecases.ConfirmIntentUseCase
	cancelIntentUC       *paymentUsecases.CancelIntentUseCase
	refundUC             *paymentUsecases.RefundPaymentUseCase
	purchaseCreditsUC    *paymentUsecases.PurchaseCreditsUseCase
	getPaymentUC         *paymentUsecases.GetPaymentUseCase
	listHistoryUC        *paymentUsecases.ListHistoryUseCase
	createSubscriptionUC *paymentUsecases.CreateSubscriptionUseCase
	cancelSubscriptionUC *paymentUsecases.CancelSubscriptionUseCase
	applyCouponUC        *paymentUsecases.ApplyCouponUseCase
	listInvoicesUC       *paymentUsecases.ListInvoicesUseCase
	paymentMethodsUC     *paymentUsecases.PaymentMethodsUseCase
	logger               logger.Interface
}

func NewPaymentHandler(
	createIntentUC *paymentUsecases.CreateIntentUseCase,
	confirmIntentUC *paymentUsecases.ConfirmIntentUseCase,
	cancelIntentUC *paymentUsecases.CancelIntentUseCase,
	refundUC *paymentUsecases.RefundPaymentUseCase,
	purchaseCreditsUC *paymentUsecases.PurchaseCreditsUseCase,
	getPaymentUC *paymentUsecases.GetPaymentUseCase,
	listHistoryUC *paymentUsecases.ListHistoryUseCase,
	createSubscriptionUC *paymentUsecases.CreateSubscriptionUseCase,
	cancelSubscriptionUC *paymentUsecases.CancelSubscriptionUseCase,
	applyCouponUC *paymentUsecases.ApplyCouponUseCase,
	listInvoicesUC *paymentUsecases.ListInvoicesUseCase,
	paymentMethodsUC *paymentUsecases.PaymentMethodsUseCase,
	logger logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		createIntentUC:       createIntentUC,
		confirmIntentUC:      confirmIntentUC,
		cancelIntentUC:       cancelIntentUC,
		refundUC:             refundUC,
		purchaseCreditsUC:    purchaseCreditsUC,
		getPaymentUC:         getPaymentUC,
		listHistoryUC:        listHistoryUC,
		createSubscriptionUC: createSubscriptionUC,
		cancelSubscriptionUC: cancelSubscriptionUC,
		applyCouponUC:        applyCouponUC,
		listInvoicesUC:       listInvoicesUC,
		paymentMethodsUC:     paymentMethodsUC,
		logger:               logger,
	}
}

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.CreateIntentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.createIntentUC.Execute(c.Request.Context(), actor, request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, response, "payment intent created")
}

func (h *PaymentHandler) ConfirmIntent(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	response, err := h.confirmIntentUC.Execute(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment confirmed", response)
}

func (h *PaymentHandler) CancelIntent(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	response, err := h.cancelIntentUC.Execute(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment cancelled", response)
}

func (h *PaymentHandler) Refund(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.RefundPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.refundUC.Execute(c.Request.Context(), actor, c.Param("id"), request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "refund processed", response)
}

func (h *PaymentHandler) PurchaseCredits(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.PurchaseCreditsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.purchaseCreditsUC.Execute(c.Request.Context(), actor, request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, response, "credit purchase intent created")
}

func (h *PaymentHandler) Get(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	response, err := h.getPaymentUC.Execute(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

func (h *PaymentHandler) History(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	pagination := utils.ParsePagination(c)

	payments, total, err := h.listHistoryUC.Execute(c.Request.Context(), actor, pagination)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, payments, total, pagination.Page, pagination.PageSize)
}

func (h *PaymentHandler) CreateSubscription(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.createSubscriptionUC.Execute(c.Request.Context(), actor, request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, response, "subscription created")
}

func (h *PaymentHandler) CancelSubscription(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	response, err := h.cancelSubscriptionUC.Execute(c.Request.Context(), actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "subscription cancelled", response)
}

func (h *PaymentHandler) ApplyCoupon(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.applyCouponUC.Execute(c.Request.Context(), actor, request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "coupon applied", response)
}

func (h *PaymentHandler) ListInvoices(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	invoices, err := h.listInvoicesUC.Execute(c.Request.Context(), actor, limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", invoices)
}

func (h *PaymentHandler) ListPaymentMethods(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	methods, err := h.paymentMethodsUC.List(c.Request.Context(), actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", methods)
}

func (h *PaymentHandler) AttachPaymentMethod(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.AttachPaymentMethodRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.paymentMethodsUC.Attach(c.Request.Context(), actor, request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, response, "payment method attached")
}
