package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/skillbridge/job-register/pkg/job_register/models"
	"gorm.io/gorm"
)

// ArchiveRepository is the append-only ledger of destroyed artifacts. The
// interface deliberately exposes no update or delete: audit records are
// written once and kept forever.
type ArchiveRepository interface {
	Append(ctx context.Context, rec *models.ArchivedArtifact) error
	ListByApplicant(ctx context.Context, applicantID string) ([]models.ArchivedArtifact, error)
	Count(ctx context.Context) (int64, error)
}

type archiveRepository struct {
	db *gorm.DB
}

func NewArchiveRepository(db *gorm.DB) ArchiveRepository {
	return &archiveRepository{db: db}
}

func (r *archiveRepository) Append(ctx context.Context, rec *models.ArchivedArtifact) error {
	if rec.Id == "" {
		rec.Id = uuid.NewString()
	}
	if rec.DeletedAt.IsZero() {
		rec.DeletedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *archiveRepository) ListByApplicant(ctx context.Context, applicantID string) ([]models.ArchivedArtifact, error) {
	var recs []models.ArchivedArtifact
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("deleted_at ASC, id").
		Find(&recs).Error
	return recs, err
}

func (r *archiveRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.ArchivedArtifact{}).Count(&n).Error
	return n, err
}
