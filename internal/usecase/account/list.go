package account

import (
	"context"

	domain "github.com/BruksfildServices01/academia-accounts/internal/domain/account"
	"github.com/BruksfildServices01/academia-accounts/internal/models"
)

type ListAccounts struct {
	repo domain.Repository
}

func NewListAccounts(repo domain.Repository) *ListAccounts {
	return &ListAccounts{repo: repo}
}

func (uc *ListAccounts) Execute(ctx context.Context) ([]models.User, error) {
	return uc.repo.ListUsers(ctx)
}
