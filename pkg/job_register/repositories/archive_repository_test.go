package repositories_test

import (
	"context"
	"testing"

	"github.com/skillbridge/job-register/pkg/job_register/models"
	"github.com/skillbridge/job-register/pkg/job_register/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveRepository_Append(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewArchiveRepository(db)
	ctx := context.Background()

	tag := "HTML"
	rec := &models.ArchivedArtifact{
		ApplicantID: "a1",
		Kind:        models.ArtifactKindCertificate,
		SkillTag:    &tag,
		URL:         "users/a1/certifications/HTML/one.pdf",
	}
	require.NoError(t, repo.Append(ctx, rec))

	// Append fills in id and timestamp
	assert.NotEmpty(t, rec.Id)
	assert.False(t, rec.DeletedAt.IsZero())

	recs, err := repo.ListByApplicant(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, models.ArtifactKindCertificate, recs[0].Kind)
	require.NotNil(t, recs[0].SkillTag)
	assert.Equal(t, "HTML", *recs[0].SkillTag)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	// a resume record carries no skill tag
	require.NoError(t, repo.Append(ctx, &models.ArchivedArtifact{
		ApplicantID: "a1",
		Kind:        models.ArtifactKindResume,
		URL:         "users/a1/resume/cv.pdf",
	}))
	recs, err = repo.ListByApplicant(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Nil(t, recs[1].SkillTag)
}
