package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webloom-dev/webloom/internal/application/section/dto"
	sectionUsecases "github.com/webloom-dev/webloom/internal/application/section/usecases"
	"github.com/webloom-dev/webloom/internal/shared/errors"
	"github.com/webloom-dev/webloom/internal/shared/logger"
	"github.com/webloom-dev/webloom/internal/shared/utils"
)

// SectionHandler exposes section CRUD and ordering endpoints. Sections are
// created under their page.
type SectionHandler struct {
	createUC  *sectionUsecases.CreateSectionUseCase
	getUC     *sectionUsecases.GetSectionUseCase
	listUC    *sectionUsecases.ListSectionsUseCase
	updateUC  *sectionUsecases.UpdateSectionUseCase
	deleteUC  *sectionUsecases.DeleteSectionUseCase
	reorderUC *sectionUsecases.ReorderSectionsUseCase
	logger    logger.Interface
}

func NewSectionHandler(
	createUC *sectionUsecases.CreateSectionUseCase,
	getUC *sectionUsecases.GetSectionUseCase,
	listUC *sectionUsecases.ListSectionsUseCase,
	updateUC *sectionUsecases.UpdateSectionUseCase,
	deleteUC *sectionUsecases.DeleteSectionUseCase,
	reorderUC *sectionUsecases.ReorderSectionsUseCase,
	logger logger.Interface,
) *SectionHandler {
	return &SectionHandler{
		createUC:  createUC,
		getUC:     getUC,
		listUC:    listUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		reorderUC: reorderUC,
		logger:    logger,
	}
}

func (h *SectionHandler) Create(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.CreateSectionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.createUC.Execute(c.Request.Context(), actor, c.Param("id"), request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, response, "section created successfully")
}

func (h *SectionHandler) ListByPage(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	sections, err := h.listUC.Execute(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", sections)
}

func (h *SectionHandler) Get(c *gin.Context) {
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

func (h *SectionHandler) Update(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.UpdateSectionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	response, err := h.updateUC.Execute(c.Request.Context(), actor, c.Param("id"), request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "section updated successfully", response)
}

func (h *SectionHandler) Delete(c *gin.Context) {
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

func (h *SectionHandler) Reorder(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var request dto.ReorderSectionsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	if err := h.reorderUC.Execute(c.Request.Context(), actor, request); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "sections reordered successfully", nil)
}
