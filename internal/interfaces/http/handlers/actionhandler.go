package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lerms/internal/application/actionengine/usecases"
	"lerms/internal/interfaces/http/middleware"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/utils"
)

// ActionHandler exposes the approval workflow: applying actions to records
// and reading their audit history.
type ActionHandler struct {
	applyUC   *usecases.ApplyActionUseCase
	historyUC *usecases.GetActionHistoryUseCase
	typesUC   *usecases.ListActionTypesUseCase
	logger    logger.Interface
}

func NewActionHandler(
	applyUC *usecases.ApplyActionUseCase,
	historyUC *usecases.GetActionHistoryUseCase,
	typesUC *usecases.ListActionTypesUseCase,
) *ActionHandler {
	return &ActionHandler{
		applyUC:   applyUC,
		historyUC: historyUC,
		typesUC:   typesUC,
		logger:    logger.NewLogger(),
	}
}

type ApplyActionRequest struct {
	Action string `json:"action" binding:"required"`
	Notes  string `json:"notes"`
}

// Apply godoc
// @Summary Apply a workflow action
// @Description Transition a record's approval status. The status change and
// @Description its audit entry commit atomically.
// @Tags actions
// @Accept json
// @Produce json
// @Security Bearer
// @Param kind path string true "Record kind"
// @Param id path int true "Record ID"
// @Param request body ApplyActionRequest true "Action to apply"
// @Success 200 {object} utils.APIResponse{data=usecases.ApplyActionResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /records/{kind}/{id}/actions [post]
func (h *ActionHandler) Apply(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "caller identity not resolved")
		return
	}

	recordID, err := utils.ParseIDParam(c, "id", "record")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ApplyActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid apply action request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "action is required")
		return
	}

	result, err := h.applyUC.Execute(c.Request.Context(), usecases.ApplyActionCommand{
		Kind:         c.Param("kind"),
		RecordID:     recordID,
		ActionName:   req.Action,
		ActingUserID: user.ID(),
		IPAddress:    utils.ClientIP(c),
		Notes:        req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "action applied", result)
}

// History godoc
// @Summary Get a record's action history
// @Description List audit entries for a record, newest first
// @Tags actions
// @Produce json
// @Security Bearer
// @Param kind path string true "Record kind"
// @Param id path int true "Record ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /records/{kind}/{id}/actions [get]
func (h *ActionHandler) History(c *gin.Context) {
	recordID, err := utils.ParseIDParam(c, "id", "record")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)

	items, total, err := h.historyUC.Execute(c.Request.Context(), usecases.GetActionHistoryCommand{
		Kind:     c.Param("kind"),
		RecordID: recordID,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, pagination.Page, pagination.PageSize)
}

// ListTypes godoc
// @Summary List action types
// @Description List the seeded action vocabulary
// @Tags actions
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=[]dto.ActionTypeDTO}
// @Router /actions/types [get]
func (h *ActionHandler) ListTypes(c *gin.Context) {
	result, err := h.typesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
