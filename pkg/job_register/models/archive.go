package models

import "time"

const (
	ArtifactKindResume      = "resume"
	ArtifactKindCertificate = "certificate"
)

// ArchivedArtifact is one entry in the append-only ledger of destroyed
// artifacts. A record is written exactly once per successful delete, strictly
// before the blob is removed, and is itself never mutated or deleted.
type ArchivedArtifact struct {
	Id          string    `gorm:"column:id;primaryKey" json:"id"`
	ApplicantID string    `gorm:"index" json:"applicantId"`
	Kind        string    `json:"kind"`
	SkillTag    *string   `json:"skillTag,omitempty"`
	URL         string    `json:"url"`
	DeletedAt   time.Time `gorm:"column:deleted_at" json:"deletedAt"`
}

// TableName keeps the collection name of the original store.
func (ArchivedArtifact) TableName() string { return "deleted_files" }
