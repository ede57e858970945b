package services_test

import (
	"context"
	"errors"

	"github.com/skillbridge/job-register/pkg/job_register/models"
)

// stubApplicantRepo mocks ApplicantRepository for service tests
type stubApplicantRepo struct {
	saveFunc         func(ctx context.Context, applicant *models.Applicant) error
	getFunc          func(ctx context.Context, id string) (*models.Applicant, error)
	updateResumeFunc func(ctx context.Context, id, url string) error
	addCertFunc      func(ctx context.Context, cert *models.Certification) error
	removeCertFunc   func(ctx context.Context, applicantID, skillTag, url string) error
	certsFunc        func(ctx context.Context, applicantID string) ([]models.Certification, error)
	subsFunc         func(ctx context.Context, applicantID string) ([]models.Submission, error)
	idsFunc          func(ctx context.Context) ([]string, error)
}

func (s *stubApplicantRepo) Save(ctx context.Context, applicant *models.Applicant) error {
	if s.saveFunc == nil {
		return nil
	}
	return s.saveFunc(ctx, applicant)
}

func (s *stubApplicantRepo) GetApplicantByID(ctx context.Context, id string) (*models.Applicant, error) {
	if s.getFunc == nil {
		return nil, nil
	}
	return s.getFunc(ctx, id)
}

func (s *stubApplicantRepo) UpdateResumeURL(ctx context.Context, id, url string) error {
	if s.updateResumeFunc == nil {
		return nil
	}
	return s.updateResumeFunc(ctx, id, url)
}

func (s *stubApplicantRepo) AddCertification(ctx context.Context, cert *models.Certification) error {
	if s.addCertFunc == nil {
		return nil
	}
	return s.addCertFunc(ctx, cert)
}

func (s *stubApplicantRepo) RemoveCertification(ctx context.Context, applicantID, skillTag, url string) error {
	if s.removeCertFunc == nil {
		return nil
	}
	return s.removeCertFunc(ctx, applicantID, skillTag, url)
}

func (s *stubApplicantRepo) GetCertifications(ctx context.Context, applicantID string) ([]models.Certification, error) {
	if s.certsFunc == nil {
		return nil, nil
	}
	return s.certsFunc(ctx, applicantID)
}

func (s *stubApplicantRepo) GetSubmissions(ctx context.Context, applicantID string) ([]models.Submission, error) {
	if s.subsFunc == nil {
		return nil, nil
	}
	return s.subsFunc(ctx, applicantID)
}

func (s *stubApplicantRepo) AllApplicantIDs(ctx context.Context) ([]string, error) {
	if s.idsFunc == nil {
		return nil, nil
	}
	return s.idsFunc(ctx)
}

// stubJobRepo mocks JobRepository
type stubJobRepo struct {
	saveJobFunc     func(ctx context.Context, job *models.JobPosting) error
	getJobFunc      func(ctx context.Context, id string) (*models.JobPosting, error)
	allJobsFunc     func(ctx context.Context) ([]models.JobPosting, error)
	byEmployerFunc  func(ctx context.Context, employerID string) ([]models.JobPosting, error)
	upsertFunc      func(ctx context.Context, app *models.Application) error
	appsFunc        func(ctx context.Context, jobID string) ([]models.Application, error)
	saveEmpFunc     func(ctx context.Context, employer *models.Employer) error
	getEmployerFunc func(ctx context.Context, id string) (*models.Employer, error)
}

func (s *stubJobRepo) SaveJob(ctx context.Context, job *models.JobPosting) error {
	if s.saveJobFunc == nil {
		return nil
	}
	return s.saveJobFunc(ctx, job)
}

func (s *stubJobRepo) GetJobByID(ctx context.Context, id string) (*models.JobPosting, error) {
	if s.getJobFunc == nil {
		return nil, nil
	}
	return s.getJobFunc(ctx, id)
}

func (s *stubJobRepo) AllJobs(ctx context.Context) ([]models.JobPosting, error) {
	if s.allJobsFunc == nil {
		return nil, nil
	}
	return s.allJobsFunc(ctx)
}

func (s *stubJobRepo) JobsByEmployer(ctx context.Context, employerID string) ([]models.JobPosting, error) {
	if s.byEmployerFunc == nil {
		return nil, nil
	}
	return s.byEmployerFunc(ctx, employerID)
}

func (s *stubJobRepo) UpsertApplication(ctx context.Context, app *models.Application) error {
	if s.upsertFunc == nil {
		return nil
	}
	return s.upsertFunc(ctx, app)
}

func (s *stubJobRepo) GetApplications(ctx context.Context, jobID string) ([]models.Application, error) {
	if s.appsFunc == nil {
		return nil, nil
	}
	return s.appsFunc(ctx, jobID)
}

func (s *stubJobRepo) SaveEmployer(ctx context.Context, employer *models.Employer) error {
	if s.saveEmpFunc == nil {
		return nil
	}
	return s.saveEmpFunc(ctx, employer)
}

func (s *stubJobRepo) GetEmployerByID(ctx context.Context, id string) (*models.Employer, error) {
	if s.getEmployerFunc == nil {
		return nil, nil
	}
	return s.getEmployerFunc(ctx, id)
}

// stubArchiveRepo mocks ArchiveRepository
type stubArchiveRepo struct {
	appendFunc func(ctx context.Context, rec *models.ArchivedArtifact) error
	listFunc   func(ctx context.Context, applicantID string) ([]models.ArchivedArtifact, error)
	countFunc  func(ctx context.Context) (int64, error)
}

func (s *stubArchiveRepo) Append(ctx context.Context, rec *models.ArchivedArtifact) error {
	if s.appendFunc == nil {
		return nil
	}
	return s.appendFunc(ctx, rec)
}

func (s *stubArchiveRepo) ListByApplicant(ctx context.Context, applicantID string) ([]models.ArchivedArtifact, error) {
	if s.listFunc == nil {
		return nil, nil
	}
	return s.listFunc(ctx, applicantID)
}

func (s *stubArchiveRepo) Count(ctx context.Context) (int64, error) {
	if s.countFunc == nil {
		return 0, nil
	}
	return s.countFunc(ctx)
}

// fakeBlobStore mocks blobstore.Store
type fakeBlobStore struct {
	putFunc    func(ctx context.Context, objectPath string, content []byte) (string, error)
	deleteFunc func(ctx context.Context, ref string) error
}

func (f *fakeBlobStore) Put(ctx context.Context, objectPath string, content []byte) (string, error) {
	if f.putFunc == nil {
		return objectPath, nil
	}
	return f.putFunc(ctx, objectPath, content)
}

func (f *fakeBlobStore) Delete(ctx context.Context, ref string) error {
	if f.deleteFunc == nil {
		return nil
	}
	return f.deleteFunc(ctx, ref)
}

var errBoom = errors.New("boom")

func floatPtr(f float64) *float64 { return &f }
