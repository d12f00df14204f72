package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webloom-dev/webloom/internal/application/credits/dto"
	creditsUsecases "github.com/webloom-dev/webloom/internal/application/credits/usecases"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
	"github.com/webloom-dev/webloom/internal/shared/utils"
)

// CreditsHandler exposes the AI credit balance and metering endpoints.
// Granting and reset frequency changes are admin operations.
type CreditsHandler struct {
	getBalanceUC      *creditsUsecases.GetBalanceUseCase
	consumeUC         *creditsUsecases.ConsumeCreditsUseCase
	grantUC           *creditsUsecases.GrantCreditsUseCase
	updateFrequencyUC *creditsUsecases.UpdateResetFrequencyUseCase
	logger            logger.Interface
}

func NewCreditsHandler(
	getBalanceUC *creditsUsecases.GetBalanceUseCase,
	consumeUC *creditsUsecases.ConsumeCreditsUseCase,
	grantUC *creditsUsecases.GrantCreditsUseCase,
	updateFrequencyUC *creditsUsecases.UpdateResetFrequencyUseCase,
	logger logger.Interface,
) *CreditsHandler {
	return &CreditsHandler{
		getBalanceUC:      getBalanceUC,
		consumeUC:         consumeUC,
		grantUC:           grantUC,
		updateFrequencyUC: updateFrequencyUC,
		logger:            logger,
	}
}

func (h *CreditsHandler) Balance(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	response, err := h.getBalanceUC.Execute(c.Request.Context(), actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

func (h *CreditsHandler) Consume(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.ConsumeCreditsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.consumeUC.Execute(c.Request.Context(), actor, request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "credits consumed", response)
}

func (h *CreditsHandler) Grant(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.GrantCreditsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.grantUC.Execute(c.Request.Context(), actor, request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "credits granted", response)
}

func (h *CreditsHandler) UpdateResetFrequency(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.UpdateResetFrequencyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.updateFrequencyUC.Execute(c.Request.Context(), actor, request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "reset frequency updated", response)
}
