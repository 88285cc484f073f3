package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/academia-accounts/internal/models"
)

type Repository interface {
	// -------- Uniqueness probes --------
	EmailExists(
		ctx context.Context,
		email string,
	) (bool, error)

	DNIExists(
		ctx context.Context,
		dni string,
	) (bool, error)

	UsernameExists(
		ctx context.Context,
		username string,
	) (bool, error)

	// -------- Account (create / read) --------

	// CreateAccount persiste o User e a linha de perfil do rol
	// (Student ou Teacher) numa única transação: falha no perfil
	// desfaz o User.
	CreateAccount(
		ctx context.Context,
		user *models.User,
	) error

	GetByID(
		ctx context.Context,
		id uuid.UUID,
	) (*models.User, error)

	GetByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	ListUsers(
		ctx context.Context,
	) ([]models.User, error)

	// -------- Account (mutate) --------
	UpdateUser(
		ctx context.Context,
		user *models.User,
		fields map[string]any,
	) error

	// DeleteAccount remove o User e a linha de perfil dependente na
	// mesma transação.
	DeleteAccount(
		ctx context.Context,
		id uuid.UUID,
	) error
}
