package account_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/academia-accounts/internal/domain/account"
	"github.com/BruksfildServices01/academia-accounts/internal/httperr"
	"github.com/BruksfildServices01/academia-accounts/internal/models"
)

// Repositório em memória com a mesma semântica do AccountGormRepository:
// constraints de unicidade no CreateAccount e criação atómica de
// user + perfil.
type fakeRepository struct {
	users        map[uuid.UUID]*models.User
	students     map[uuid.UUID]uuid.UUID // userID → profile ID
	teachers     map[uuid.UUID]uuid.UUID
	failProfiles bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		users:    map[uuid.UUID]*models.User{},
		students: map[uuid.UUID]uuid.UUID{},
		teachers: map[uuid.UUID]uuid.UUID{},
	}
}

func roleFor(id int) models.Role {
	switch id {
	case models.RoleStudentID:
		return models.Role{ID: id, Name: "student"}
	case models.RoleTeacherID:
		return models.Role{ID: id, Name: "teacher"}
	case models.RoleAdminID:
		return models.Role{ID: id, Name: "admin"}
	}
	return models.Role{}
}

func (f *fakeRepository) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) DNIExists(_ context.Context, dni string) (bool, error) {
	for _, u := range f.users {
		if u.DNI != nil && *u.DNI == dni {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range f.users {
		if u.Username != nil && *u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) CreateAccount(ctx context.Context, user *models.User) error {
	if exists, _ := f.EmailExists(ctx, user.Email); exists {
		return httperr.ErrBusiness("duplicate_email")
	}
	if user.DNI != nil {
		if exists, _ := f.DNIExists(ctx, *user.DNI); exists {
			return httperr.ErrBusiness("duplicate_dni")
		}
	}
	if user.Username != nil {
		if exists, _ := f.UsernameExists(ctx, *user.Username); exists {
			return httperr.ErrBusiness("duplicate_username")
		}
	}

	// falha na criação do perfil desfaz tudo, como na transação real
	if f.failProfiles {
		return httperr.ErrBusiness("role_profile_creation_failed")
	}

	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.Role = roleFor(user.RoleID)

	stored := *user
	f.users[user.ID] = &stored

	switch user.RoleID {
	case models.RoleStudentID:
		f.students[user.ID] = uuid.New()
	case models.RoleTeacherID:
		f.teachers[user.ID] = uuid.New()
	}

	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, httperr.ErrBusiness("user_not_found")
	}
	copied := *u
	copied.Role = roleFor(u.RoleID)
	return &copied, nil
}

func (f *fakeRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			copied.Role = roleFor(u.RoleID)
			return &copied, nil
		}
	}
	return nil, httperr.ErrBusiness("user_not_found")
}

func (f *fakeRepository) ListUsers(_ context.Context) ([]models.User, error) {
	var users []models.User
	for _, u := range f.users {
		copied := *u
		copied.Role = roleFor(u.RoleID)
		users = append(users, copied)
	}
	return users, nil
}

func (f *fakeRepository) UpdateUser(_ context.Context, user *models.User, fields map[string]any) error {
	stored, ok := f.users[user.ID]
	if !ok {
		return httperr.ErrBusiness("user_not_found")
	}

	applyFields(stored, fields)
	applyFields(user, fields)
	return nil
}

func applyFields(u *models.User, fields map[string]any) {
	for column, value := range fields {
		switch column {
		case "full_name":
			u.FullName = value.(string)
		case "email":
			u.Email = value.(string)
		case "password_hash":
			u.PasswordHash = value.(string)
		case "dni":
			v := value.(string)
			u.DNI = &v
		case "phone":
			u.Phone = value.(string)
		case "username":
			v := value.(string)
			u.Username = &v
		case "is_active":
			u.IsActive = value.(bool)
		}
	}
	u.UpdatedAt = time.Now()
}

func (f *fakeRepository) DeleteAccount(_ context.Context, id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return httperr.ErrBusiness("user_not_found")
	}
	delete(f.users, id)
	delete(f.students, id)
	delete(f.teachers, id)
	return nil
}

var _ domain.Repository = (*fakeRepository)(nil)
