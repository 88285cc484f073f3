package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/academia-accounts/internal/config"
	"github.com/BruksfildServices01/academia-accounts/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Student{},
		&models.Teacher{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedRoles(db)

	return db
}

// seedRoles garante os roles fixos. Idempotente: IDs já existentes ficam
// como estão.
func seedRoles(db *gorm.DB) {
	roles := []models.Role{
		{ID: models.RoleStudentID, Name: "student"},
		{ID: models.RoleTeacherID, Name: "teacher"},
		{ID: models.RoleAdminID, Name: "admin"},
	}

	for _, role := range roles {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&role).Error; err != nil {
			log.Fatalf("failed to seed role %q: %v", role.Name, err)
		}
	}
}
