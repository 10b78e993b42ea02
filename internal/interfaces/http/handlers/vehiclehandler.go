package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lerms/internal/application/identity/services"
	"lerms/internal/application/vehicle/usecases"
	"lerms/internal/interfaces/http/middleware"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/utils"
)

type VehicleHandler struct {
	createUC    *usecases.CreateVehicleUseCase
	getUC       *usecases.GetVehicleUseCase
	updateUC    *usecases.UpdateVehicleUseCase
	deleteUC    *usecases.DeleteVehicleUseCase
	listUC      *usecases.ListVehiclesUseCase
	permService *services.PermissionService
	logger      logger.Interface
}

func NewVehicleHandler(
	createUC *usecases.CreateVehicleUseCase,
	getUC *usecases.GetVehicleUseCase,
	updateUC *usecases.UpdateVehicleUseCase,
	deleteUC *usecases.DeleteVehicleUseCase,
	listUC *usecases.ListVehiclesUseCase,
	permService *services.PermissionService,
) *VehicleHandler {
	return &VehicleHandler{
		createUC:    createUC,
		getUC:       getUC,
		updateUC:    updateUC,
		deleteUC:    deleteUC,
		listUC:      listUC,
		permService: permService,
		logger:      logger.NewLogger(),
	}
}

type CreateVehicleRequest struct {
	Variant      string `json:"variant" binding:"required,oneof=master undercover fictitious"`
	PlateNumber  string `json:"plate_number" binding:"required"`
	VIN          string `json:"vin"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	OwnerName    string `json:"owner_name" binding:"required"`
	OwnerAddress string `json:"owner_address"`
	AgencyID     *uint  `json:"agency_id"`
}

type UpdateVehicleRequest struct {
	PlateNumber  *string `json:"plate_number"`
	VIN          *string `json:"vin"`
	Make         *string `json:"make"`
	Model        *string `json:"model"`
	Year         *int    `json:"year"`
	OwnerName    *string `json:"owner_name"`
	OwnerAddress *string `json:"owner_address"`
	AgencyID     *uint   `json:"agency_id"`
}

// includeSuppressed honors the include_suppressed query flag only for
// callers allowed to see suppressed records.
func (h *VehicleHandler) includeSuppressed(c *gin.Context) bool {
	if c.Query("include_suppressed") != "true" {
		return false
	}
	return h.permService.CanSeeSuppressed(middleware.CurrentUser(c))
}

// Create godoc
// @Summary Register a vehicle
// @Description Create a vehicle registration in pending status
// @Tags vehicles
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateVehicleRequest true "Registration data"
// @Success 201 {object} utils.APIResponse{data=dto.VehicleDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /vehicles [post]
func (h *VehicleHandler) Create(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create vehicle request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.ValidatePlateNumber(req.PlateNumber); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := utils.ValidateVIN(req.VIN); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateVehicleCommand{
		Variant:      req.Variant,
		PlateNumber:  req.PlateNumber,
		VIN:          req.VIN,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		OwnerName:    req.OwnerName,
		OwnerAddress: req.OwnerAddress,
		AgencyID:     req.AgencyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "vehicle registration created")
}

// Get godoc
// @Summary Get a vehicle registration
// @Tags vehicles
// @Produce json
// @Security Bearer
// @Param id path int true "Vehicle ID"
// @Param include_suppressed query bool false "Include suppressed records (requires suppression read)"
// @Success 200 {object} utils.APIResponse{data=dto.VehicleDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "vehicle registration")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetVehicleCommand{
		VehicleID:         id,
		IncludeSuppressed: h.includeSuppressed(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update godoc
// @Summary Update a vehicle registration
// @Description Apply a partial update to registration fields
// @Tags vehicles
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Vehicle ID"
// @Param request body UpdateVehicleRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=dto.VehicleDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /vehicles/{id} [patch]
func (h *VehicleHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "vehicle registration")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update vehicle request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateVehicleCommand{
		VehicleID:    id,
		PlateNumber:  req.PlateNumber,
		VIN:          req.VIN,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		OwnerName:    req.OwnerName,
		OwnerAddress: req.OwnerAddress,
		AgencyID:     req.AgencyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Delete godoc
// @Summary Deactivate a vehicle registration
// @Tags vehicles
// @Produce json
// @Security Bearer
// @Param id path int true "Vehicle ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "vehicle registration")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "vehicle registration deactivated", nil)
}

// List godoc
// @Summary List vehicle registrations
// @Description Page through registrations with optional filters
// @Tags vehicles
// @Produce json
// @Security Bearer
// @Param variant query string false "Variant (master, undercover, fictitious)"
// @Param plate_number query string false "Plate number filter"
// @Param approval_status query string false "Approval status filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	cmd := usecases.ListVehiclesCommand{
		Variant:           c.Query("variant"),
		PlateNumber:       c.Query("plate_number"),
		VIN:               c.Query("vin"),
		ApprovalStatus:    c.Query("approval_status"),
		IncludeSuppressed: h.includeSuppressed(c),
		IncludeInactive:   c.Query("include_inactive") == "true",
		Page:              pagination.Page,
		PageSize:          pagination.PageSize,
	}
	cmd.AgencyID = utils.ParseUintQuery(c, "agency_id")

	items, total, err := h.listUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, pagination.Page, pagination.PageSize)
}
