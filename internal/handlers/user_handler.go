package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/academia-accounts/internal/httperr"
	"github.com/BruksfildServices01/academia-accounts/internal/httpresp"
	ucAccount "github.com/BruksfildServices01/academia-accounts/internal/usecase/account"
)

type UserHandler struct {
	registerUC *ucAccount.RegisterAccount
	updateUC   *ucAccount.UpdateAccount
	deleteUC   *ucAccount.DeleteAccount
	listUC     *ucAccount.ListAccounts
}

func NewUserHandler(
	registerUC *ucAccount.RegisterAccount,
	updateUC *ucAccount.UpdateAccount,
	deleteUC *ucAccount.DeleteAccount,
	listUC *ucAccount.ListAccounts,
) *UserHandler {
	return &UserHandler{
		registerUC: registerUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		listUC:     listUC,
	}
}

// --------- Requests ---------

type CreateUserRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	DNI      *string `json:"dni,omitempty"`
	Phone    string  `json:"phone"`
	Username *string `json:"username,omitempty"`
	Role     string  `json:"role" binding:"required"`
}

type UpdateUserRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=6"`
	DNI      *string `json:"dni,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Username *string `json:"username,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// --------- Handlers ---------

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	user, err := h.registerUC.Execute(c.Request.Context(), ucAccount.RegisterAccountInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		DNI:      req.DNI,
		Phone:    req.Phone,
		Username: req.Username,
		Role:     req.Role,
	})
	if err != nil {
		writeAccountError(c, err)
		return
	}

	httpresp.Created(c, user)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_users", "No se pudo listar los usuarios.")
		return
	}

	httpresp.OK(c, users)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// id que não resolve para um User existente → 404
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	user, err := h.updateUC.Execute(c.Request.Context(), id, ucAccount.UpdateAccountInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		DNI:      req.DNI,
		Phone:    req.Phone,
		Username: req.Username,
		IsActive: req.IsActive,
	})
	if err != nil {
		writeAccountError(c, err)
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		writeAccountError(c, err)
		return
	}

	httpresp.NoContent(c)
}

// --------- Error mapping ---------

func writeAccountError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "duplicate_email"):
		httperr.Conflict(c, "duplicate_email", "El email ya está registrado.")
	case httperr.IsBusiness(err, "duplicate_dni"):
		httperr.Conflict(c, "duplicate_dni", "El DNI ya está registrado.")
	case httperr.IsBusiness(err, "duplicate_username"):
		httperr.Conflict(c, "duplicate_username", "El nombre de usuario ya está en uso.")
	case httperr.IsBusiness(err, "duplicate_identity"):
		httperr.Conflict(c, "duplicate_identity", "Ya existe un usuario con esos datos.")
	case httperr.IsBusiness(err, "invalid_role"):
		httperr.BadRequest(c, "invalid_role", "Rol desconocido.")
	case httperr.IsBusiness(err, "invalid_dni"):
		httperr.BadRequest(c, "invalid_dni", "DNI inválido.")
	case httperr.IsBusiness(err, "user_not_found"):
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
	case httperr.IsBusiness(err, "role_profile_creation_failed"):
		httperr.Internal(c, "role_profile_creation_failed", "No se pudo crear el perfil del rol.")
	default:
		httperr.Internal(c, "internal_error", "Error interno.")
	}
}
