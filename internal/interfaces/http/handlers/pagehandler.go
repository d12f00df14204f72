package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webloom-dev/webloom/internal/application/page/dto"
	pageUsecases "github.com/webloom-dev/webloom/internal/application/page/usecases"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
	"github.com/webloom-dev/webloom/internal/shared/utils"
)

// PageHandler exposes page CRUD, ordering, and homepage endpoints. Pages
// are created under their site; everything else addresses the page
// directly.
type PageHandler struct {
	createUC      *pageUsecases.CreatePageUseCase
	getUC         *pageUsecases.GetPageUseCase
	listUC        *pageUsecases.ListPagesUseCase
	updateUC      *pageUsecases.UpdatePageUseCase
	deleteUC      *pageUsecases.DeletePageUseCase
	duplicateUC   *pageUsecases.DuplicatePageUseCase
	reorderUC     *pageUsecases.ReorderPagesUseCase
	setHomepageUC *pageUsecases.SetHomepageUseCase
	logger        logger.Interface
}

func NewPageHandler(
	createUC *pageUsecases.CreatePageUseCase,
	getUC *pageUsecases.GetPageUseCase,
	listUC *pageUsecases.ListPagesUseCase,
	updateUC *pageUsecases.UpdatePageUseCase,
	deleteUC *pageUsecases.DeletePageUseCase,
	duplicateUC *pageUsecases.DuplicatePageUseCase,
	reorderUC *pageUsecases.ReorderPagesUseCase,
	setHomepageUC *pageUsecases.SetHomepageUseCase,
	logger logger.Interface,
) *PageHandler {
	return &PageHandler{
		createUC:      createUC,
		getUC:         getUC,
		listUC:        listUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		duplicateUC:   duplicateUC,
		reorderUC:     reorderUC,
		setHomepageUC: setHomepageUC,
		logger:        logger,
	}
}

func (h *PageHandler) Create(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.CreatePageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.createUC.Execute(c.Request.Context(), actor, c.Param("id"), request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, response, "page created successfully")
}

func (h *PageHandler) ListBySite(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	pages, err := h.listUC.Execute(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", pages)
}

func (h *PageHandler) Get(c *gin.Context) {
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

func (h *PageHandler) Update(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.UpdatePageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.updateUC.Execute(c.Request.Context(), actor, c.Param("id"), request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "page updated successfully", response)
}

func (h *PageHandler) Delete(c *gin.Context) {
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

func (h *PageHandler) Duplicate(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.DuplicatePageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.duplicateUC.Execute(c.Request.Context(), actor, c.Param("id"), request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, response, "page duplicated successfully")
}

func (h *PageHandler) Reorder(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.ReorderPagesRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	if err := h.reorderUC.Execute(c.Request.Context(), actor, request); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "pages reordered successfully", nil)
}

func (h *PageHandler) SetHomepage(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	response, err := h.setHomepageUC.Execute(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "homepage updated successfully", response)
}
