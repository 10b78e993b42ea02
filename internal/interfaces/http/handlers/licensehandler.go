package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lerms/internal/application/identity/services"
	"lerms/internal/application/license/usecases"
	"lerms/internal/interfaces/http/middleware"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/utils"
)

type LicenseHandler struct {
	createUC    *usecases.CreateLicenseUseCase
	getUC       *usecases.GetLicenseUseCase
	updateUC    *usecases.UpdateLicenseUseCase
	deleteUC    *usecases.DeleteLicenseUseCase
	listUC      *usecases.ListLicensesUseCase
	contactsUC  *usecases.LicenseContactsUseCase
	permService *services.PermissionService
	logger      logger.Interface
}

func NewLicenseHandler(
	createUC *usecases.CreateLicenseUseCase,
	getUC *usecases.GetLicenseUseCase,
	updateUC *usecases.UpdateLicenseUseCase,
	deleteUC *usecases.DeleteLicenseUseCase,
	listUC *usecases.ListLicensesUseCase,
	contactsUC *usecases.LicenseContactsUseCase,
	permService *services.PermissionService,
) *LicenseHandler {
	return &LicenseHandler{
		createUC:    createUC,
		getUC:       getUC,
		updateUC:    updateUC,
		deleteUC:    deleteUC,
		listUC:      listUC,
		contactsUC:  contactsUC,
		permService: permService,
		logger:      logger.NewLogger(),
	}
}

type CreateLicenseRequest struct {
	Variant        string     `json:"variant" binding:"required,oneof=original fictitious"`
	LicenseNumber  string     `json:"license_number" binding:"required"`
	HolderName     string     `json:"holder_name" binding:"required"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Address        string     `json:"address"`
	Class          string     `json:"class"`
	IssueDate      *time.Time `json:"issue_date"`
	ExpirationDate *time.Time `json:"expiration_date"`
	AgencyID       *uint      `json:"agency_id"`
}

type UpdateLicenseRequest struct {
	LicenseNumber  *string    `json:"license_number"`
	HolderName     *string    `json:"holder_name"`
	Address        *string    `json:"address"`
	Class          *string    `json:"class"`
	ExpirationDate *time.Time `json:"expiration_date"`
	AgencyID       *uint      `json:"agency_id"`
}

type AddContactRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

func (h *LicenseHandler) includeSuppressed(c *gin.Context) bool {
	if c.Query("include_suppressed") != "true" {
		return false
	}
	return h.permService.CanSeeSuppressed(middleware.CurrentUser(c))
}

// Create godoc
// @Summary Issue a driver license record
// @Description Create a license record in pending status
// @Tags licenses
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateLicenseRequest true "License data"
// @Success 201 {object} utils.APIResponse{data=dto.LicenseDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /licenses [post]
func (h *LicenseHandler) Create(c *gin.Context) {
	var req CreateLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create license request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateLicenseCommand{
		Variant:        req.Variant,
		LicenseNumber:  req.LicenseNumber,
		HolderName:     req.HolderName,
		DateOfBirth:    req.DateOfBirth,
		Address:        req.Address,
		Class:          req.Class,
		IssueDate:      req.IssueDate,
		ExpirationDate: req.ExpirationDate,
		AgencyID:       req.AgencyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "driver license created")
}

// Get godoc
// @Summary Get a driver license
// @Tags licenses
// @Produce json
// @Security Bearer
// @Param id path int true "License ID"
// @Param include_suppressed query bool false "Include suppressed records (requires suppression read)"
// @Success 200 {object} utils.APIResponse{data=dto.LicenseDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /licenses/{id} [get]
func (h *LicenseHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "driver license")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetLicenseCommand{
		LicenseID:         id,
		IncludeSuppressed: h.includeSuppressed(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update godoc
// @Summary Update a driver license
// @Tags licenses
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "License ID"
// @Param request body UpdateLicenseRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.LicenseDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /licenses/{id} [patch]
func (h *LicenseHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "driver license")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update license request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateLicenseCommand{
		LicenseID:      id,
		LicenseNumber:  req.LicenseNumber,
		HolderName:     req.HolderName,
		Address:        req.Address,
		Class:          req.Class,
		ExpirationDate: req.ExpirationDate,
		AgencyID:       req.AgencyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Delete godoc
// @Summary Deactivate a driver license
// @Tags licenses
// @Produce json
// @Security Bearer
// @Param id path int true "License ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /licenses/{id} [delete]
func (h *LicenseHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "driver license")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "driver license deactivated", nil)
}

// List godoc
// @Summary List driver licenses
// @Tags licenses
// @Produce json
// @Security Bearer
// @Param variant query string false "Variant (original, fictitious)"
// @Param license_number query string false "License number filter"
// @Param holder_name query string false "Holder name filter"
// @Param approval_status query string false "Approval status filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /licenses [get]
func (h *LicenseHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	cmd := usecases.ListLicensesCommand{
		Variant:           c.Query("variant"),
		LicenseNumber:     c.Query("license_number"),
		HolderName:        c.Query("holder_name"),
		ApprovalStatus:    c.Query("approval_status"),
		AgencyID:          utils.ParseUintQuery(c, "agency_id"),
		IncludeSuppressed: h.includeSuppressed(c),
		IncludeInactive:   c.Query("include_inactive") == "true",
		Page:              pagination.Page,
		PageSize:          pagination.PageSize,
	}

	items, total, err := h.listUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, pagination.Page, pagination.PageSize)
}

// AddContact godoc
// @Summary Add a cover contact
// @Description Attach a contact entry to a fictitious license
// @Tags licenses
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "License ID"
// @Param request body AddContactRequest true "Contact data"
// @Success 201 {object} utils.APIResponse{data=dto.ContactDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /licenses/{id}/contacts [post]
func (h *LicenseHandler) AddContact(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "driver license")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid add contact request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.contactsUC.Add(c.Request.Context(), usecases.AddContactCommand{
		LicenseID:    id,
		Name:         req.Name,
		Phone:        req.Phone,
		Relationship: req.Relationship,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "contact added")
}

// ListContacts godoc
// @Summary List cover contacts
// @Tags licenses
// @Produce json
// @Security Bearer
// @Param id path int true "License ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.ContactDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /licenses/{id}/contacts [get]
func (h *LicenseHandler) ListContacts(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "driver license")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.contactsUC.List(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
