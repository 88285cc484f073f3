package account

import (
	"strings"

	"github.com/BruksfildServices01/academia-accounts/internal/httperr"
	"github.com/BruksfildServices01/academia-accounts/internal/models"
)

// Mapeamento fixo de rol para registo. "admin" existe como referência
// mas não é atribuível via registo público.
var registrableRoles = map[string]int{
	"student": models.RoleStudentID,
	"teacher": models.RoleTeacherID,
}

func ResolveRoleID(name string) (int, error) {
	id, ok := registrableRoles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, httperr.ErrBusiness("invalid_role")
	}
	return id, nil
}
