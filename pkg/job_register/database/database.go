package database

import (
	"fmt"

	_ "github.com/lib/pq"
	"github.com/skillbridge/job-register/pkg/job_register/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(connStr string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}

// Migrate creates the document collections this service owns or reads.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Applicant{},
		&models.Certification{},
		&models.Submission{},
		&models.Employer{},
		&models.JobPosting{},
		&models.Application{},
		&models.ArchivedArtifact{},
	)
}
