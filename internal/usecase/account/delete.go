package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/academia-accounts/internal/audit"
	domain "github.com/BruksfildServices01/academia-accounts/internal/domain/account"
)

type DeleteAccount struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAccount(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAccount {
	return &DeleteAccount{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAccount) Execute(
	ctx context.Context,
	id uuid.UUID,
) error {

	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := uc.repo.DeleteAccount(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &id,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &id,
	})

	return nil
}
