package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lerms/internal/application/agency/usecases"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/utils"
)

type AgencyHandler struct {
	agencyUC *usecases.AgencyUseCase
	logger   logger.Interface
}

func NewAgencyHandler(agencyUC *usecases.AgencyUseCase) *AgencyHandler {
	return &AgencyHandler{
		agencyUC: agencyUC,
		logger:   logger.NewLogger(),
	}
}

type CreateAgencyRequest struct {
	Name         string `json:"name" binding:"required"`
	Code         string `json:"code" binding:"required"`
	Jurisdiction string `json:"jurisdiction"`
}

// Create godoc
// @Summary Create an agency
// @Tags agencies
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateAgencyRequest true "Agency data"
// @Success 201 {object} utils.APIResponse{data=agency.Agency}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /agencies [post]
func (h *AgencyHandler) Create(c *gin.Context) {
	var req CreateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create agency request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.agencyUC.Create(c.Request.Context(), usecases.CreateAgencyCommand{
		Name:         req.Name,
		Code:         req.Code,
		Jurisdiction: req.Jurisdiction,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "agency created")
}

// Get godoc
// @Summary Get an agency
// @Tags agencies
// @Produce json
// @Security Bearer
// @Param id path int true "Agency ID"
// @Success 200 {object} utils.APIResponse{data=agency.Agency}
// @Failure 404 {object} utils.APIResponse
// @Router /agencies/{id} [get]
func (h *AgencyHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "agency")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.agencyUC.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List godoc
// @Summary List agencies
// @Tags agencies
// @Produce json
// @Security Bearer
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /agencies [get]
func (h *AgencyHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	items, total, err := h.agencyUC.List(c.Request.Context(), pagination.Page, pagination.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, pagination.Page, pagination.PageSize)
}
