package account

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/academia-accounts/internal/audit"
	"github.com/BruksfildServices01/academia-accounts/internal/credentials"
	domain "github.com/BruksfildServices01/academia-accounts/internal/domain/account"
	"github.com/BruksfildServices01/academia-accounts/internal/httperr"
	"github.com/BruksfildServices01/academia-accounts/internal/models"
	"github.com/BruksfildServices01/academia-accounts/internal/validators"
)

// Patch parcial: só campos não-nil são aplicados.
type UpdateAccountInput struct {
	FullName *string
	Email    *string
	Password *string
	DNI      *string
	Phone    *string
	Username *string
	IsActive *bool
}

type UpdateAccount struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAccount(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAccount {
	return &UpdateAccount{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAccount) Execute(
	ctx context.Context,
	id uuid.UUID,
	in UpdateAccountInput,
) (*models.User, error) {

	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}

	if in.FullName != nil {
		fields["full_name"] = strings.TrimSpace(*in.FullName)
	}
	if in.Email != nil {
		fields["email"] = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Password != nil {
		// O plaintext nunca chega ao storage.
		hash, err := credentials.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = hash
	}
	if in.DNI != nil {
		normalized := strings.ToUpper(strings.TrimSpace(*in.DNI))
		if !validators.IsDNIValid(normalized) {
			return nil, httperr.ErrBusiness("invalid_dni")
		}
		fields["dni"] = normalized
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Username != nil {
		fields["username"] = strings.ToLower(strings.TrimSpace(*in.Username))
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}

	if len(fields) == 0 {
		return user, nil
	}

	if err := uc.repo.UpdateUser(ctx, user, fields); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
