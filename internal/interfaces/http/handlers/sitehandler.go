package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webloom-dev/webloom/internal/application/site/dto"
	siteUsecases "github.com/webloom-dev/webloom/internal/application/site/usecases"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
	"github.com/webloom-dev/webloom/internal/shared/utils"
)

// SiteHandler exposes site CRUD and lifecycle endpoints.
type SiteHandler struct {
	createUC    *siteUsecases.CreateSiteUseCase
	getUC       *siteUsecases.GetSiteUseCase
	listUC      *siteUsecases.ListSitesUseCase
	updateUC    *siteUsecases.UpdateSiteUseCase
	deleteUC    *siteUsecases.DeleteSiteUseCase
	publishUC   *siteUsecases.PublishSiteUseCase
	duplicateUC *siteUsecases.DuplicateSiteUseCase
	transferUC  *siteUsecases.TransferOwnershipUseCase
	statsUC     *siteUsecases.SiteStatsUseCase
	logger      logger.Interface
}

func NewSiteHandler(
	createUC *siteUsecases.CreateSiteUseCase,
	getUC *siteUsecases.GetSiteUseCase,
	listUC *siteUsecases.ListSitesUseCase,
	updateUC *siteUsecases.UpdateSiteUseCase,
	deleteUC *siteUsecases.DeleteSiteUseCase,
	publishUC *siteUsecases.PublishSiteUseCase,
	duplicateUC *siteUsecases.DuplicateSiteUseCase,
	transferUC *siteUsecases.TransferOwnershipUseCase,
	statsUC *siteUsecases.SiteStatsUseCase,
	logger logger.Interface,
) *SiteHandler {
	return &SiteHandler{
		createUC:    createUC,
		getUC:       getUC,
		listUC:      listUC,
		updateUC:    updateUC,
		deleteUC:    deleteUC,
		publishUC:   publishUC,
		duplicateUC: duplicateUC,
		transferUC:  transferUC,
		statsUC:     statsUC,
		logger:      logger,
	}
}

func (h *SiteHandler) Create(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.CreateSiteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.createUC.Execute(c.Request.Context(), actor, request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, response, "site created successfully")
}

func (h *SiteHandler) List(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	pagination := utils.ParsePagination(c)

	sites, total, err := h.listUC.Execute(c.Request.Context(), actor, pagination)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, sites, total, pagination.Page, pagination.PageSize)
}

func (h *SiteHandler) Get(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	response, err := h.getUC.Execute(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

func (h *SiteHandler) Update(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.UpdateSiteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.updateUC.Execute(c.Request.Context(), actor, c.Param("id"), request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "site updated successfully", response)
}

func (h *SiteHandler) Delete(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), actor, c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *SiteHandler) Publish(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	response, err := h.publishUC.Execute(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "site published successfully", response)
}

func (h *SiteHandler) Unpublish(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	response, err := h.publishUC.Unpublish(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "site unpublished successfully", response)
}

func (h *SiteHandler) Duplicate(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.DuplicateSiteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.duplicateUC.Execute(c.Request.Context(), actor, c.Param("id"), request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, response, "site duplicated successfully")
}

func (h *SiteHandler) TransferOwnership(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.TransferOwnershipRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.transferUC.Execute(c.Request.Context(), actor, c.Param("id"), request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "site ownership transferred", response)
}

func (h *SiteHandler) Stats(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	response, err := h.statsUC.Execute(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}
