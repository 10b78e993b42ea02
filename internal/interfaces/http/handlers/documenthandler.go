package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lerms/internal/application/document/usecases"
	"lerms/internal/application/identity/services"
	"lerms/internal/interfaces/http/middleware"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/utils"
)

type DocumentHandler struct {
	uploadUC    *usecases.UploadDocumentUseCase
	listUC      *usecases.ListDocumentsUseCase
	getUC       *usecases.GetDocumentUseCase
	permService *services.PermissionService
	logger      logger.Interface
}

func NewDocumentHandler(
	uploadUC *usecases.UploadDocumentUseCase,
	listUC *usecases.ListDocumentsUseCase,
	getUC *usecases.GetDocumentUseCase,
	permService *services.PermissionService,
) *DocumentHandler {
	return &DocumentHandler{
		uploadUC:    uploadUC,
		listUC:      listUC,
		getUC:       getUC,
		permService: permService,
		logger:      logger.NewLogger(),
	}
}

// Upload godoc
// @Summary Upload a document
// @Description Record document metadata and run field extraction. Only the
// @Description file name, content type, and size are kept; file bytes are
// @Description discarded after extraction.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param file formData file true "Document file"
// @Param linked_kind formData string false "Record kind to link"
// @Param linked_id formData int false "Record ID to link"
// @Success 201 {object} utils.APIResponse{data=dto.DocumentDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "caller identity not resolved")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.logger.Warnw("upload without file", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "file is required")
		return
	}

	cmd := usecases.UploadDocumentCommand{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		SizeBytes:   fileHeader.Size,
		UploaderID:  user.ID(),
		LinkedKind:  c.PostForm("linked_kind"),
		LinkedID:    parseFormUint(c, "linked_id"),
	}

	result, err := h.uploadUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "document uploaded")
}

func parseFormUint(c *gin.Context, key string) *uint {
	raw := c.PostForm(key)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return nil
	}
	value := uint(id)
	return &value
}

// List godoc
// @Summary List documents
// @Tags documents
// @Produce json
// @Security Bearer
// @Param uploader_id query int false "Uploader filter"
// @Param linked_kind query string false "Linked record kind filter"
// @Param linked_id query int false "Linked record ID filter"
// @Param approval_status query string false "Approval status filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	includeSuppressed := false
	if c.Query("include_suppressed") == "true" {
		includeSuppressed = h.permService.CanSeeSuppressed(middleware.CurrentUser(c))
	}

	cmd := usecases.ListDocumentsCommand{
		UploaderID:        utils.ParseUintQuery(c, "uploader_id"),
		LinkedKind:        c.Query("linked_kind"),
		LinkedID:          utils.ParseUintQuery(c, "linked_id"),
		ApprovalStatus:    c.Query("approval_status"),
		IncludeSuppressed: includeSuppressed,
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

// Get godoc
// @Summary Get a document
// @Tags documents
// @Produce json
// @Security Bearer
// @Param id path int true "Document ID"
// @Success 200 {object} utils.APIResponse{data=dto.DocumentDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /documents/{id} [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "document")
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
