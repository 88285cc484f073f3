package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	FullName     string `gorm:"size:255;not null" json:"full_name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	DNI      *string `gorm:"column:dni;size:20;uniqueIndex" json:"dni,omitempty"`
	Phone    string  `gorm:"size:20" json:"phone,omitempty"`
	Username *string `gorm:"size:60;uniqueIndex" json:"username,omitempty"`

	RoleID int  `gorm:"not null" json:"role_id"`
	Role   Role `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"role"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
