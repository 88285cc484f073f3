package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/academia-accounts/internal/audit"
	"github.com/BruksfildServices01/academia-accounts/internal/credentials"
	domain "github.com/BruksfildServices01/academia-accounts/internal/domain/account"
	"github.com/BruksfildServices01/academia-accounts/internal/httperr"
	"github.com/BruksfildServices01/academia-accounts/internal/models"
	"github.com/BruksfildServices01/academia-accounts/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type RegisterAccountInput struct {
	FullName string
	Email    string
	Password string
	DNI      *string
	Phone    string
	Username *string
	Role     string
}

// ======================================================
// USE CASE
// ======================================================

type RegisterAccount struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegisterAccount(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RegisterAccount {
	return &RegisterAccount{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RegisterAccount) Execute(
	ctx context.Context,
	in RegisterAccountInput,
) (*models.User, error) {

	email := strings.ToLower(strings.TrimSpace(in.Email))

	// --------------------------------------------------
	// 1️⃣ Unicidade (best-effort; a constraint decide sob corrida)
	// --------------------------------------------------
	exists, err := uc.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("duplicate_email")
	}

	var dni *string
	if in.DNI != nil {
		normalized := strings.ToUpper(strings.TrimSpace(*in.DNI))
		if !validators.IsDNIValid(normalized) {
			return nil, httperr.ErrBusiness("invalid_dni")
		}

		exists, err := uc.repo.DNIExists(ctx, normalized)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, httperr.ErrBusiness("duplicate_dni")
		}
		dni = &normalized
	}

	var username *string
	if in.Username != nil {
		normalized := strings.ToLower(strings.TrimSpace(*in.Username))
		exists, err := uc.repo.UsernameExists(ctx, normalized)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, httperr.ErrBusiness("duplicate_username")
		}
		username = &normalized
	}

	// --------------------------------------------------
	// 2️⃣ Rol
	// --------------------------------------------------
	roleID, err := domain.ResolveRoleID(in.Role)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Hash da password
	// --------------------------------------------------
	hash, err := credentials.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ User + perfil do rol (atómico no repositório)
	// --------------------------------------------------
	user := &models.User{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        email,
		PasswordHash: hash,
		DNI:          dni,
		Phone:        in.Phone,
		Username:     username,
		RoleID:       roleID,
		IsActive:     true,
	}

	if err := uc.repo.CreateAccount(ctx, user); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"role": in.Role},
	})

	return user, nil
}
