package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omsai/pos-backend/internal/application/service"
	"github.com/omsai/pos-backend/internal/presentation/http/dto/request"
	"github.com/omsai/pos-backend/pkg/apperror"
)

// AuthHandler handles the admin login route
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		legacyError(c, apperror.NewBadRequestError("Invalid request body"))
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false})
			return
		}
		legacyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
