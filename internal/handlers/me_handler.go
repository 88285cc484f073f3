package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/academia-accounts/internal/domain/account"
	"github.com/BruksfildServices01/academia-accounts/internal/httperr"
	"github.com/BruksfildServices01/academia-accounts/internal/httpresp"
	"github.com/BruksfildServices01/academia-accounts/internal/middleware"
)

type MeHandler struct {
	repo domain.Repository
}

func NewMeHandler(repo domain.Repository) *MeHandler {
	return &MeHandler{repo: repo}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	emailVal, exists := c.Get(middleware.ContextUserEmail)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	email, ok := emailVal.(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_email_type"})
		return
	}

	user, err := h.repo.GetByEmail(c.Request.Context(), email)
	if err != nil {
		// Token válido mas conta entretanto apagada.
		if httperr.IsBusiness(err, "user_not_found") {
			c.Header("WWW-Authenticate", "Bearer")
			httperr.Unauthorized(c, "invalid_token", "Cuenta no disponible.")
			return
		}
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	httpresp.OK(c, user)
}
