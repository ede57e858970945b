package services

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/skillbridge/job-register/pkg/job_register/blobstore"
	"github.com/skillbridge/job-register/pkg/job_register/helpers/util"
	"github.com/skillbridge/job-register/pkg/job_register/models"
	"github.com/skillbridge/job-register/pkg/job_register/repositories"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// ArtifactService owns the credential artifact lifecycle: uploads, ledgered
// deletes, profile/badge derivation and the archive audit.
type ArtifactService struct {
	applicants repositories.ApplicantRepository
	archive    repositories.ArchiveRepository
	blobs      blobstore.Store
	skills     *models.SkillRegistry
	log        *zap.Logger
}

func NewArtifactService(
	applicants repositories.ApplicantRepository,
	archive repositories.ArchiveRepository,
	blobs blobstore.Store,
	skills *models.SkillRegistry,
	log *zap.Logger,
) *ArtifactService {
	return &ArtifactService{
		applicants: applicants,
		archive:    archive,
		blobs:      blobs,
		skills:     skills,
		log:        log,
	}
}

// RegisterApplicant stores the profile document for a provider-issued
// identity. Re-registering the same id overwrites the profile fields.
func (s *ArtifactService) RegisterApplicant(ctx context.Context, in *models.NewApplicantInput) (*models.Applicant, error) {
	applicant := &models.Applicant{
		Id:         in.Id,
		Name:       in.Name,
		Email:      in.Email,
		GithubLink: in.GithubLink,
	}
	if err := s.applicants.Save(ctx, applicant); err != nil {
		return nil, err
	}
	return applicant, nil
}

// Upload writes the artifact bytes to the blob store and, only after the
// write is confirmed, records the reference on the applicant. A resume
// replaces the previous reference; a certificate appends to its tag.
func (s *ArtifactService) Upload(ctx context.Context, applicantID, kind, fileName string, content []byte, skillTag string) (*models.ArtifactRef, error) {
	if err := s.validateKind(kind, skillTag); err != nil {
		return nil, err
	}

	applicant, err := s.applicants.GetApplicantByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, fmt.Errorf("%w: %s", ErrApplicantNotFound, applicantID)
	}

	var objectPath string
	if kind == models.ArtifactKindResume {
		objectPath = blobstore.ResumePath(applicantID, fileName)
	} else {
		objectPath = blobstore.CertificatePath(applicantID, skillTag, fileName)
	}

	ref, err := s.blobs.Put(ctx, objectPath, content)
	if err != nil {
		// Applicant record stays untouched, the caller sees the same
		// credential state as before.
		return nil, &DependencyError{Op: OpUpload, Target: objectPath, Err: err}
	}

	if kind == models.ArtifactKindResume {
		err = s.applicants.UpdateResumeURL(ctx, applicantID, ref)
	} else {
		err = s.applicants.AddCertification(ctx, &models.Certification{
			ApplicantID: applicantID,
			SkillTag:    skillTag,
			URL:         ref,
		})
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("artifact uploaded",
		zap.String("applicant", applicantID),
		zap.String("kind", kind),
		zap.String("skillTag", skillTag),
		zap.String("ref", ref))

	return &models.ArtifactRef{Kind: kind, SkillTag: skillTag, URL: ref}, nil
}

// Delete destroys one artifact under a two-phase contract: the archive
// ledger entry must be written and confirmed before the blob delete is
// issued. The ordering is enforced here, not left to caller discipline.
func (s *ArtifactService) Delete(ctx context.Context, applicantID, kind, url, skillTag string) error {
	if err := s.validateKind(kind, skillTag); err != nil {
		return err
	}

	rec := &models.ArchivedArtifact{
		ApplicantID: applicantID,
		Kind:        kind,
		URL:         url,
	}
	if kind == models.ArtifactKindCertificate {
		tag := skillTag
		rec.SkillTag = &tag
	}

	// Phase 1: ledger first. On failure nothing has been destroyed and the
	// credential set is unchanged.
	if err := s.archive.Append(ctx, rec); err != nil {
		return &DependencyError{Op: OpArchive, Target: url, Err: err}
	}

	// Phase 2: destructive delete. If this fails the audit record already
	// exists while the blob remains; accepted, favoring audit completeness.
	if err := s.blobs.Delete(ctx, url); err != nil {
		s.log.Warn("blob delete failed after ledger write; artifact remains with audit record",
			zap.String("applicant", applicantID),
			zap.String("ref", url),
			zap.Error(err))
		return &DependencyError{Op: OpDelete, Target: url, Err: err}
	}

	// Phase 3: drop the reference from the applicant record.
	var err error
	if kind == models.ArtifactKindResume {
		err = s.applicants.UpdateResumeURL(ctx, applicantID, "")
	} else {
		err = s.applicants.RemoveCertification(ctx, applicantID, skillTag, url)
	}
	if err != nil {
		return err
	}

	s.log.Info("artifact deleted",
		zap.String("applicant", applicantID),
		zap.String("kind", kind),
		zap.String("ref", url))
	return nil
}

// Profile returns the applicant view including badges: a tag is certified
// iff at least one certificate is filed under it. Pure read.
func (s *ArtifactService) Profile(ctx context.Context, applicantID string) (*models.ApplicantProfile, error) {
	applicant, err := s.applicants.GetApplicantByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, fmt.Errorf("%w: %s", ErrApplicantNotFound, applicantID)
	}

	set := util.ToCertificationSet(applicant.Certifications, s.skills)
	badges := make([]models.SkillBadge, 0, len(s.skills.Tags()))
	for _, tag := range s.skills.Tags() {
		badges = append(badges, models.SkillBadge{
			SkillTag:  tag,
			Certified: len(set[tag]) > 0,
		})
	}

	return &models.ApplicantProfile{
		Id:             applicant.Id,
		Name:           applicant.Name,
		Email:          applicant.Email,
		GithubLink:     applicant.GithubLink,
		ResumeURL:      applicant.ResumeURL,
		SkillScore:     applicant.SkillScore,
		Certifications: set,
		Badges:         badges,
	}, nil
}

// Archive lists the applicant's ledger records, oldest first.
func (s *ArtifactService) Archive(ctx context.Context, applicantID string) ([]models.ArchivedArtifact, error) {
	return s.archive.ListByApplicant(ctx, applicantID)
}

// AuditArchive cross-checks the ledger against live credential sets: a URL
// that is both archived and still referenced means a delete stopped between
// phase 2 and 3. Findings are logged, never repaired automatically.
func (s *ArtifactService) AuditArchive(ctx context.Context) error {
	ids, err := s.applicants.AllApplicantIDs(ctx)
	if err != nil {
		return err
	}

	const maxConcurrent = 4
	sem := semaphore.NewWeighted(maxConcurrent)
	g, ctx := errgroup.WithContext(ctx)

	var conflicts atomic.Int64
	for _, id := range ids {
		id := id
		if err := sem.Acquire(ctx, 1); err != nil {
			return err
		}
		g.Go(func() error {
			defer sem.Release(1)

			recs, err := s.archive.ListByApplicant(ctx, id)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				return nil
			}
			archived := make(map[string]struct{}, len(recs))
			for _, rec := range recs {
				archived[rec.URL] = struct{}{}
			}

			certs, err := s.applicants.GetCertifications(ctx, id)
			if err != nil {
				return err
			}
			for _, cert := range certs {
				if _, ok := archived[cert.URL]; ok {
					conflicts.Add(1)
					s.log.Warn("archived artifact still referenced",
						zap.String("applicant", id),
						zap.String("skillTag", cert.SkillTag),
						zap.String("ref", cert.URL))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total, err := s.archive.Count(ctx)
	if err != nil {
		return err
	}
	s.log.Info("archive audit finished",
		zap.Int("applicants", len(ids)),
		zap.Int64("ledgerRecords", total),
		zap.Int64("conflicts", conflicts.Load()))
	return nil
}

// validateKind enforces the tag/kind invariant before any I/O: resumes carry
// no tag, certificates carry a registered one.
func (s *ArtifactService) validateKind(kind, skillTag string) error {
	switch kind {
	case models.ArtifactKindResume:
		if skillTag != "" {
			return fmt.Errorf("%w: resume cannot carry tag %q", ErrKindMismatch, skillTag)
		}
	case models.ArtifactKindCertificate:
		if skillTag == "" {
			return fmt.Errorf("%w: certificate requires a skill tag", ErrKindMismatch)
		}
		if !s.skills.Contains(skillTag) {
			return fmt.Errorf("%w: %q", ErrUnknownSkillTag, skillTag)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrKindMismatch, kind)
	}
	return nil
}
