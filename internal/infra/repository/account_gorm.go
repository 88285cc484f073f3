package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/academia-accounts/internal/domain/account"
	"github.com/BruksfildServices01/academia-accounts/internal/httperr"
	"github.com/BruksfildServices01/academia-accounts/internal/models"
)

const pgUniqueViolation = "23505"

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// --------------------------------------------------
// Uniqueness probes
// --------------------------------------------------

func (r *AccountGormRepository) EmailExists(
	ctx context.Context,
	email string,
) (bool, error) {
	return r.columnExists(ctx, "email", email)
}

func (r *AccountGormRepository) DNIExists(
	ctx context.Context,
	dni string,
) (bool, error) {
	return r.columnExists(ctx, "dni", dni)
}

func (r *AccountGormRepository) UsernameExists(
	ctx context.Context,
	username string,
) (bool, error) {
	return r.columnExists(ctx, "username", username)
}

func (r *AccountGormRepository) columnExists(
	ctx context.Context,
	column string,
	value string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where(column+" = ?", value).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Account (create / read)
// --------------------------------------------------

func (r *AccountGormRepository) CreateAccount(
	ctx context.Context,
	user *models.User,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Create(user).Error; err != nil {
			// Os pre-checks do use case são best-effort: sob corrida,
			// a constraint do Postgres é o árbitro final.
			return translateUniqueViolation(err)
		}

		switch user.RoleID {
		case models.RoleStudentID:
			if err := tx.Create(&models.Student{UserID: user.ID}).Error; err != nil {
				return httperr.ErrBusiness("role_profile_creation_failed")
			}
		case models.RoleTeacherID:
			if err := tx.Create(&models.Teacher{UserID: user.ID}).Error; err != nil {
				return httperr.ErrBusiness("role_profile_creation_failed")
			}
		}

		return nil
	})
}

func (r *AccountGormRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Where("id = ?", id).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, err
	}

	return &user, nil
}

func (r *AccountGormRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, err
	}

	return &user, nil
}

func (r *AccountGormRepository) ListUsers(
	ctx context.Context,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Order("created_at ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

// --------------------------------------------------
// Account (mutate)
// --------------------------------------------------

func (r *AccountGormRepository) UpdateUser(
	ctx context.Context,
	user *models.User,
	fields map[string]any,
) error {

	if err := r.db.WithContext(ctx).
		Model(user).
		Updates(fields).Error; err != nil {
		return translateUniqueViolation(err)
	}

	return nil
}

func (r *AccountGormRepository) DeleteAccount(
	ctx context.Context,
	id uuid.UUID,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Cascade explícito: perfis primeiro, depois o dono.
		if err := tx.Where("user_id = ?", id).
			Delete(&models.Student{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).
			Delete(&models.Teacher{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("user_not_found")
		}

		return nil
	})
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return err
	}

	constraint := strings.ToLower(pgErr.ConstraintName)
	switch {
	case strings.Contains(constraint, "email"):
		return httperr.ErrBusiness("duplicate_email")
	case strings.Contains(constraint, "dni"):
		return httperr.ErrBusiness("duplicate_dni")
	case strings.Contains(constraint, "username"):
		return httperr.ErrBusiness("duplicate_username")
	}

	return httperr.ErrBusiness("duplicate_identity")
}

// Compile-time check
var _ domain.Repository = (*AccountGormRepository)(nil)
