package models

// Roles são dados de referência: seed no arranque, nunca criados em runtime.
const (
	RoleStudentID = 1
	RoleTeacherID = 2
	RoleAdminID   = 3
)

type Role struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:30;uniqueIndex;not null" json:"name"`
}
