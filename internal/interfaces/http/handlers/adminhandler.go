package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lerms/internal/application/identity/usecases"
	"lerms/internal/domain/identity"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/utils"
)

// AdminHandler covers the identity management surface: roles, permissions,
// email-role mappings, and user accounts.
type AdminHandler struct {
	adminUC *usecases.AdminUseCase
	logger  logger.Interface
}

func NewAdminHandler(adminUC *usecases.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
		logger:  logger.NewLogger(),
	}
}

type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
}

type GrantPermissionRequest struct {
	Permission string `json:"permission" binding:"required"`
}

type CreateMappingRequest struct {
	Pattern string `json:"pattern" binding:"required"`
	RoleID  uint   `json:"role_id" binding:"required"`
}

// RoleResponse is the serializable view of a role.
type RoleResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	IsSystem    bool     `json:"is_system"`
	Permissions []string `json:"permissions"`
}

type PermissionResponse struct {
	ID          uint   `json:"id"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type MappingResponse struct {
	ID      uint   `json:"id"`
	Pattern string `json:"pattern"`
	RoleID  uint   `json:"role_id"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

func roleToResponse(role *identity.Role) RoleResponse {
	perms := make([]string, 0, len(role.Permissions()))
	for _, p := range role.Permissions() {
		perms = append(perms, p.Slug())
	}
	return RoleResponse{
		ID:          role.ID(),
		Name:        role.Name(),
		Slug:        role.Slug(),
		Description: role.Description(),
		IsSystem:    role.IsSystem(),
		Permissions: perms,
	}
}

func userToResponse(user *identity.User) UserResponse {
	roles := make([]string, 0, len(user.Roles()))
	for _, r := range user.Roles() {
		roles = append(roles, r.Slug())
	}
	return UserResponse{
		ID:        user.ID(),
		Email:     user.Email(),
		Name:      user.Name(),
		IsActive:  user.IsActive(),
		Roles:     roles,
		CreatedAt: user.CreatedAt(),
	}
}

// CreateRole godoc
// @Summary Create a role
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateRoleRequest true "Role data"
// @Success 201 {object} utils.APIResponse{data=RoleResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /admin/roles [post]
func (h *AdminHandler) CreateRole(c *gin.Context) {
	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create role request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	role, err := h.adminUC.CreateRole(c.Request.Context(), usecases.CreateRoleCommand{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, roleToResponse(role), "role created")
}

// ListRoles godoc
// @Summary List roles
// @Tags admin
// @Produce json
// @Security Bearer
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /admin/roles [get]
func (h *AdminHandler) ListRoles(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	roles, total, err := h.adminUC.ListRoles(c.Request.Context(), pagination.Page, pagination.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		items = append(items, roleToResponse(role))
	}

	utils.ListSuccessResponse(c, items, total, pagination.Page, pagination.PageSize)
}

// GrantPermission godoc
// @Summary Grant a permission to a role
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Role ID"
// @Param request body GrantPermissionRequest true "Permission slug"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/roles/{id}/permissions [post]
func (h *AdminHandler) GrantPermission(c *gin.Context) {
	roleID, err := utils.ParseIDParam(c, "id", "role")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req GrantPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid grant permission request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.adminUC.GrantPermission(c.Request.Context(), roleID, req.Permission); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "permission granted", nil)
}

// ListPermissions godoc
// @Summary List permissions
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=[]PermissionResponse}
// @Router /admin/permissions [get]
func (h *AdminHandler) ListPermissions(c *gin.Context) {
	perms, err := h.adminUC.ListPermissions(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]PermissionResponse, 0, len(perms))
	for _, p := range perms {
		items = append(items, PermissionResponse{
			ID:          p.ID(),
			Slug:        p.Slug(),
			Description: p.Description(),
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// CreateMapping godoc
// @Summary Create an email-role mapping
// @Description Map an email pattern (exact or %-wildcard) to a role
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateMappingRequest true "Mapping data"
// @Success 201 {object} utils.APIResponse{data=MappingResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/mappings [post]
func (h *AdminHandler) CreateMapping(c *gin.Context) {
	var req CreateMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create mapping request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	mapping, err := h.adminUC.CreateMapping(c.Request.Context(), usecases.CreateMappingCommand{
		Pattern: req.Pattern,
		RoleID:  req.RoleID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, MappingResponse{
		ID:      mapping.ID,
		Pattern: mapping.Pattern,
		RoleID:  mapping.RoleID,
	}, "mapping created")
}

// ListMappings godoc
// @Summary List email-role mappings
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=[]MappingResponse}
// @Router /admin/mappings [get]
func (h *AdminHandler) ListMappings(c *gin.Context) {
	mappings, err := h.adminUC.ListMappings(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]MappingResponse, 0, len(mappings))
	for _, m := range mappings {
		items = append(items, MappingResponse{
			ID:      m.ID,
			Pattern: m.Pattern,
			RoleID:  m.RoleID,
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// DeleteMapping godoc
// @Summary Delete an email-role mapping
// @Tags admin
// @Produce json
// @Security Bearer
// @Param id path int true "Mapping ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/mappings/{id} [delete]
func (h *AdminHandler) DeleteMapping(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "mapping")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.adminUC.DeleteMapping(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "mapping deleted", nil)
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Security Bearer
// @Param email query string false "Email substring filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	users, total, err := h.adminUC.ListUsers(c.Request.Context(), c.Query("email"), pagination.Page, pagination.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, userToResponse(user))
	}

	utils.ListSuccessResponse(c, items, total, pagination.Page, pagination.PageSize)
}

// DeactivateUser godoc
// @Summary Deactivate a user
// @Description Disable an account; subsequent resolution fails with 403
// @Tags admin
// @Produce json
// @Security Bearer
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/users/{id}/deactivate [post]
func (h *AdminHandler) DeactivateUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.adminUC.DeactivateUser(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user deactivated", nil)
}
