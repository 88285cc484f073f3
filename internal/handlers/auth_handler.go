package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/academia-accounts/internal/dto"
	"github.com/BruksfildServices01/academia-accounts/internal/httperr"
	ucAccount "github.com/BruksfildServices01/academia-accounts/internal/usecase/account"
)

type AuthHandler struct {
	authenticateUC *ucAccount.Authenticate
}

func NewAuthHandler(authenticateUC *ucAccount.Authenticate) *AuthHandler {
	return &AuthHandler{authenticateUC: authenticateUC}
}

// --------- Requests ---------

// Form-encoded, estilo OAuth2 password flow: username transporta o email.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	out, err := h.authenticateUC.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "too_many_attempts"):
			httperr.TooManyRequests(c, "too_many_attempts", "Demasiados intentos fallidos. Inténtalo más tarde.")
		case httperr.IsBusiness(err, "invalid_credentials"):
			c.Header("WWW-Authenticate", "Bearer")
			httperr.Unauthorized(c, "invalid_credentials", "Email o contraseña incorrectos.")
		default:
			httperr.Internal(c, "internal_error", "Error interno.")
		}
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: out.AccessToken,
		TokenType:   "bearer",
	})
}
