package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lerms/internal/application/suppressionengine/usecases"
	"lerms/internal/interfaces/http/middleware"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/utils"
)

// SuppressionHandler exposes the suppression lifecycle plus the two detail
// collections hanging off each suppression.
type SuppressionHandler struct {
	createUC  *usecases.CreateSuppressionUseCase
	getUC     *usecases.GetSuppressionUseCase
	updateUC  *usecases.UpdateSuppressionUseCase
	revokeUC  *usecases.RevokeSuppressionUseCase
	listUC    *usecases.ListSuppressionsUseCase
	checkUC   *usecases.CheckSuppressionUseCase
	detailsUC *usecases.SuppressionDetailsUseCase
	logger    logger.Interface
}

func NewSuppressionHandler(
	createUC *usecases.CreateSuppressionUseCase,
	getUC *usecases.GetSuppressionUseCase,
	updateUC *usecases.UpdateSuppressionUseCase,
	revokeUC *usecases.RevokeSuppressionUseCase,
	listUC *usecases.ListSuppressionsUseCase,
	checkUC *usecases.CheckSuppressionUseCase,
	detailsUC *usecases.SuppressionDetailsUseCase,
) *SuppressionHandler {
	return &SuppressionHandler{
		createUC:  createUC,
		getUC:     getUC,
		updateUC:  updateUC,
		revokeUC:  revokeUC,
		listUC:    listUC,
		checkUC:   checkUC,
		detailsUC: detailsUC,
		logger:    logger.NewLogger(),
	}
}

type CreateSuppressionRequest struct {
	RecordKind        string     `json:"record_kind" binding:"required"`
	RecordID          *uint      `json:"record_id"`
	Reason            string     `json:"reason" binding:"required"`
	ReasonDescription string     `json:"reason_description"`
	EffectiveDate     *time.Time `json:"effective_date"`
	ExpirationDate    *time.Time `json:"expiration_date"`
}

type UpdateSuppressionRequest struct {
	Reason            *string    `json:"reason"`
	ReasonDescription *string    `json:"reason_description"`
	ExpirationDate    *time.Time `json:"expiration_date"`
	ClearExpiration   bool       `json:"clear_expiration"`
}

type AddAccessRequestRequest struct {
	DateRequested         *time.Time `json:"date_requested"`
	SubjectPlateOrLicense string     `json:"subject_plate_or_license" binding:"required"`
	Requester             string     `json:"requester" binding:"required"`
	Reason                string     `json:"reason"`
	Duration              string     `json:"duration"`
	Initials              string     `json:"initials"`
}

type AddIdentityAliasRequest struct {
	OldName           string `json:"old_name" binding:"required"`
	OldPlateOrLicense string `json:"old_plate_or_license"`
}

// Create godoc
// @Summary Suppress a record
// @Description Hide a record from default listings, or create an unbound
// @Description suppression carrying identity details only
// @Tags suppressions
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateSuppressionRequest true "Suppression data"
// @Success 201 {object} utils.APIResponse{data=dto.SuppressionDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /suppressions [post]
func (h *SuppressionHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "caller identity not resolved")
		return
	}

	var req CreateSuppressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create suppression request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	effective := time.Now()
	if req.EffectiveDate != nil {
		effective = *req.EffectiveDate
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateSuppressionCommand{
		RecordKind:        req.RecordKind,
		RecordID:          req.RecordID,
		Reason:            req.Reason,
		ReasonDescription: req.ReasonDescription,
		EffectiveDate:     effective,
		ExpirationDate:    req.ExpirationDate,
		CreatedBy:         user.Email(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "suppression created")
}

// Get godoc
// @Summary Get a suppression
// @Tags suppressions
// @Produce json
// @Security Bearer
// @Param id path int true "Suppression ID"
// @Success 200 {object} utils.APIResponse{data=dto.SuppressionDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /suppressions/{id} [get]
func (h *SuppressionHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "suppression")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update godoc
// @Summary Update a suppression
// @Description Edit the reason, description, or expiration of an active suppression
// @Tags suppressions
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Suppression ID"
// @Param request body UpdateSuppressionRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.SuppressionDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /suppressions/{id} [patch]
func (h *SuppressionHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "suppression")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSuppressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update suppression request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateSuppressionCommand{
		SuppressionID:     id,
		Reason:            req.Reason,
		ReasonDescription: req.ReasonDescription,
		ExpirationDate:    req.ExpirationDate,
		ClearExpiration:   req.ClearExpiration,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Revoke godoc
// @Summary Revoke a suppression
// @Description Lift a suppression, restoring the record to default listings
// @Tags suppressions
// @Produce json
// @Security Bearer
// @Param id path int true "Suppression ID"
// @Success 200 {object} utils.APIResponse{data=dto.SuppressionDTO}
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /suppressions/{id}/revoke [post]
func (h *SuppressionHandler) Revoke(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "caller identity not resolved")
		return
	}

	id, err := utils.ParseIDParam(c, "id", "suppression")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.revokeUC.Execute(c.Request.Context(), usecases.RevokeSuppressionCommand{
		SuppressionID: id,
		RevokedBy:     user.Email(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "suppression revoked", result)
}

// List godoc
// @Summary List suppressions
// @Tags suppressions
// @Produce json
// @Security Bearer
// @Param record_kind query string false "Record kind filter"
// @Param status query string false "Status filter (active, removed)"
// @Param created_by query string false "Creator filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /suppressions [get]
func (h *SuppressionHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	items, total, err := h.listUC.Execute(c.Request.Context(), usecases.ListSuppressionsCommand{
		RecordKind: c.Query("record_kind"),
		Status:     c.Query("status"),
		CreatedBy:  c.Query("created_by"),
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, pagination.Page, pagination.PageSize)
}

// Check godoc
// @Summary Check suppression status
// @Description Report whether a record is currently suppressed
// @Tags suppressions
// @Produce json
// @Security Bearer
// @Param record_kind query string true "Record kind"
// @Param record_id query int true "Record ID"
// @Success 200 {object} utils.APIResponse{data=dto.SuppressionCheckDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /suppressions/check [get]
func (h *SuppressionHandler) Check(c *gin.Context) {
	recordID := utils.ParseUintQuery(c, "record_id")
	if recordID == nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "record_id is required")
		return
	}

	result, err := h.checkUC.Execute(c.Request.Context(), usecases.CheckSuppressionCommand{
		RecordKind: c.Query("record_kind"),
		RecordID:   *recordID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddAccessRequest godoc
// @Summary Record an access request
// @Description Attach an access-request detail to an active suppression
// @Tags suppressions
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Suppression ID"
// @Param request body AddAccessRequestRequest true "Access request data"
// @Success 201 {object} utils.APIResponse{data=dto.AccessRequestDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /suppressions/{id}/access-requests [post]
func (h *SuppressionHandler) AddAccessRequest(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "suppression")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddAccessRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid add access request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	requested := time.Now()
	if req.DateRequested != nil {
		requested = *req.DateRequested
	}

	result, err := h.detailsUC.AddAccessRequest(c.Request.Context(), usecases.AddAccessRequestCommand{
		SuppressionID:         id,
		DateRequested:         requested,
		SubjectPlateOrLicense: req.SubjectPlateOrLicense,
		Requester:             req.Requester,
		Reason:                req.Reason,
		Duration:              req.Duration,
		Initials:              req.Initials,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "access request recorded")
}

// ListAccessRequests godoc
// @Summary List access requests
// @Tags suppressions
// @Produce json
// @Security Bearer
// @Param id path int true "Suppression ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /suppressions/{id}/access-requests [get]
func (h *SuppressionHandler) ListAccessRequests(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "suppression")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)

	items, total, err := h.detailsUC.ListAccessRequests(c.Request.Context(), id, pagination.Page, pagination.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, pagination.Page, pagination.PageSize)
}

// AddIdentityAlias godoc
// @Summary Record an identity alias
// @Description Attach a prior-identity detail to an active suppression
// @Tags suppressions
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Suppression ID"
// @Param request body AddIdentityAliasRequest true "Identity alias data"
// @Success 201 {object} utils.APIResponse{data=dto.IdentityAliasDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /suppressions/{id}/identity-aliases [post]
func (h *SuppressionHandler) AddIdentityAlias(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "suppression")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddIdentityAliasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid add identity alias request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.detailsUC.AddIdentityAlias(c.Request.Context(), usecases.AddIdentityAliasCommand{
		SuppressionID:     id,
		OldName:           req.OldName,
		OldPlateOrLicense: req.OldPlateOrLicense,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "identity alias recorded")
}

// ListIdentityAliases godoc
// @Summary List identity aliases
// @Tags suppressions
// @Produce json
// @Security Bearer
// @Param id path int true "Suppression ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /suppressions/{id}/identity-aliases [get]
func (h *SuppressionHandler) ListIdentityAliases(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "suppression")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)

	items, total, err := h.detailsUC.ListIdentityAliases(c.Request.Context(), id, pagination.Page, pagination.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, pagination.Page, pagination.PageSize)
}
