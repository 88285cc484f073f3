package account_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/academia-accounts/internal/credentials"
	"github.com/BruksfildServices01/academia-accounts/internal/httperr"
	"github.com/BruksfildServices01/academia-accounts/internal/models"
	ucAccount "github.com/BruksfildServices01/academia-accounts/internal/usecase/account"
)

func strPtr(s string) *string { return &s }

func registerInput() ucAccount.RegisterAccountInput {
	return ucAccount.RegisterAccountInput{
		FullName: "Ana Gomez",
		Email:    "ana@x.com",
		Password: "secret1",
		Role:     "student",
	}
}

func TestRegisterAccount_Student(t *testing.T) {
	repo := newFakeRepository()
	uc := ucAccount.NewRegisterAccount(repo, nil)

	user, err := uc.Execute(context.Background(), registerInput())
	require.NoError(t, err)

	assert.Equal(t, "Ana Gomez", user.FullName)
	assert.Equal(t, "ana@x.com", user.Email)
	assert.Equal(t, models.RoleStudentID, user.RoleID)
	assert.True(t, user.IsActive)
	assert.NotZero(t, user.ID)
	assert.NotZero(t, user.CreatedAt)

	// plaintext nunca guardado
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.True(t, credentials.Verify("secret1", user.PasswordHash))

	// exatamente um perfil de student, nenhum de teacher
	_, hasStudent := repo.students[user.ID]
	_, hasTeacher := repo.teachers[user.ID]
	assert.True(t, hasStudent)
	assert.False(t, hasTeacher)
}

func TestRegisterAccount_Teacher(t *testing.T) {
	repo := newFakeRepository()
	uc := ucAccount.NewRegisterAccount(repo, nil)

	in := registerInput()
	in.Email = "prof@x.com"
	in.Role = "teacher"

	user, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, models.RoleTeacherID, user.RoleID)
	_, hasTeacher := repo.teachers[user.ID]
	assert.True(t, hasTeacher)
}

func TestRegisterAccount_NormalizesFields(t *testing.T) {
	repo := newFakeRepository()
	uc := ucAccount.NewRegisterAccount(repo, nil)

	in := registerInput()
	in.Email = "  ANA@X.com "
	in.DNI = strPtr(" 12345678z ")
	in.Username = strPtr(" AnaG ")

	user, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "ana@x.com", user.Email)
	require.NotNil(t, user.DNI)
	assert.Equal(t, "12345678Z", *user.DNI)
	require.NotNil(t, user.Username)
	assert.Equal(t, "anag", *user.Username)
}

func TestRegisterAccount_DuplicateEmail(t *testing.T) {
	repo := newFakeRepository()
	uc := ucAccount.NewRegisterAccount(repo, nil)

	_, err := uc.Execute(context.Background(), registerInput())
	require.NoError(t, err)

	// segunda tentativa com o mesmo email, resto diferente
	in := registerInput()
	in.FullName = "Otra Persona"
	in.Password = "other-pass"
	in.Role = "teacher"

	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "duplicate_email"))
	assert.Len(t, repo.users, 1)
}

func TestRegisterAccount_DuplicateDNI(t *testing.T) {
	repo := newFakeRepository()
	uc := ucAccount.NewRegisterAccount(repo, nil)

	in := registerInput()
	in.DNI = strPtr("12345678Z")
	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	in2 := registerInput()
	in2.Email = "otro@x.com"
	in2.DNI = strPtr("12345678Z")

	_, err = uc.Execute(context.Background(), in2)
	assert.True(t, httperr.IsBusiness(err, "duplicate_dni"))
}

func TestRegisterAccount_DuplicateUsername(t *testing.T) {
	repo := newFakeRepository()
	uc := ucAccount.NewRegisterAccount(repo, nil)

	in := registerInput()
	in.Username = strPtr("anag")
	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	in2 := registerInput()
	in2.Email = "otro@x.com"
	in2.Username = strPtr("anag")

	_, err = uc.Execute(context.Background(), in2)
	assert.True(t, httperr.IsBusiness(err, "duplicate_username"))
}

func TestRegisterAccount_InvalidRole(t *testing.T) {
	repo := newFakeRepository()
	uc := ucAccount.NewRegisterAccount(repo, nil)

	in := registerInput()
	in.Role = "wizard"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_role"))
	assert.Empty(t, repo.users)
}

func TestRegisterAccount_AdminNotRegistrable(t *testing.T) {
	repo := newFakeRepository()
	uc := ucAccount.NewRegisterAccount(repo, nil)

	in := registerInput()
	in.Role = "admin"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_role"))
}

func TestRegisterAccount_InvalidDNI(t *testing.T) {
	repo := newFakeRepository()
	uc := ucAccount.NewRegisterAccount(repo, nil)

	in := registerInput()
	in.DNI = strPtr("12345678A") // letra de control errada

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_dni"))
}

func TestRegisterAccount_ProfileFailureRollsBack(t *testing.T) {
	repo := newFakeRepository()
	repo.failProfiles = true
	uc := ucAccount.NewRegisterAccount(repo, nil)

	_, err := uc.Execute(context.Background(), registerInput())
	assert.True(t, httperr.IsBusiness(err, "role_profile_creation_failed"))

	// o User nunca pode ficar sem o seu perfil
	assert.Empty(t, repo.users)
	assert.Empty(t, repo.students)
}
