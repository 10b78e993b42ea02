package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lerms/internal/application/auth/usecases"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/utils"
)

type AuthHandler struct {
	loginUC *usecases.LoginUseCase
	logger  logger.Interface
}

func NewAuthHandler(loginUC *usecases.LoginUseCase) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		logger:  logger.NewLogger(),
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in with email and password
// @Description Verify credentials and issue a Bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=usecases.LoginResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
