package job_register

import (
	"github.com/gin-gonic/gin"
	"github.com/loopfz/gadgeto/tonic"
	"github.com/skillbridge/job-register/pkg/job_register/handler"
	"github.com/skillbridge/job-register/pkg/job_register/middleware"
	"github.com/wI2L/fizz"
	"github.com/wI2L/fizz/openapi"
)

var apiVersionHeader = fizz.Header(
	"API-Version",
	"The API version of the response",
	"",
)

func NewRouter(apiVersion string, applicants *handler.ApplicantsAPIController, employers *handler.EmployersAPIController) *fizz.Fizz {
	g := gin.Default()
	g.Use(APIVersionMiddleware(apiVersion))
	f := fizz.NewFromEngine(g)

	info := &openapi.Info{
		Title:       "Job register API v1",
		Description: "Credential lifecycle, job matching and application snapshots",
		Version:     apiVersion,
	}

	root := f.Group("/v1", "API v1", "Job register v1 routes")

	read := root.Group("", "Read", "Read-only endpoints", middleware.RequireAccess("jobs:read"))
	read.GET("/applicants/:id",
		[]fizz.OperationOption{
			fizz.Summary("Retrieve an applicant profile with skill badges"),
			apiVersionHeader,
		},
		tonic.Handler(applicants.RetrieveProfile, 200),
	)
	read.GET("/applicants/:id/archive",
		[]fizz.OperationOption{
			fizz.Summary("List the archived-artifact ledger of an applicant"),
			apiVersionHeader,
		},
		tonic.Handler(applicants.ListArchive, 200),
	)
	read.GET("/applicants/:id/jobs",
		[]fizz.OperationOption{
			fizz.Summary("Search job postings, with eligibility view"),
			apiVersionHeader,
		},
		tonic.Handler(applicants.SearchJobs, 200),
	)
	read.GET("/employers/:id/jobs",
		[]fizz.OperationOption{
			fizz.Summary("List an employer's own postings"),
			apiVersionHeader,
		},
		tonic.Handler(employers.ListJobs, 200),
	)
	read.GET("/employers/:id/jobs/:jobId/applications",
		[]fizz.OperationOption{
			fizz.Summary("List the applications of an owned posting"),
			apiVersionHeader,
		},
		tonic.Handler(employers.ListApplications, 200),
	)

	write := root.Group("", "Write", "Mutating endpoints", middleware.RequireAccess("jobs:write"))
	write.POST("/applicants",
		[]fizz.OperationOption{
			fizz.Summary("Register an applicant profile"),
			apiVersionHeader,
		},
		tonic.Handler(applicants.RegisterApplicant, 201),
	)
	write.POST("/applicants/:id/artifacts",
		[]fizz.OperationOption{
			fizz.Summary("Upload a resume or certificate artifact"),
			apiVersionHeader,
		},
		tonic.Handler(applicants.UploadArtifact, 201),
	)
	write.DELETE("/applicants/:id/artifacts",
		[]fizz.OperationOption{
			fizz.Summary("Delete an artifact, ledgered before removal"),
			apiVersionHeader,
		},
		tonic.Handler(applicants.DeleteArtifact, 204),
	)
	write.POST("/applicants/:id/applications",
		[]fizz.OperationOption{
			fizz.Summary("Apply to a job with a credential snapshot"),
			apiVersionHeader,
		},
		tonic.Handler(applicants.Apply, 201),
	)
	write.POST("/employers",
		[]fizz.OperationOption{
			fizz.Summary("Register an employer profile"),
			apiVersionHeader,
		},
		tonic.Handler(employers.RegisterEmployer, 201),
	)
	write.POST("/employers/:id/jobs",
		[]fizz.OperationOption{
			fizz.Summary("Create a job posting with an eligibility threshold"),
			apiVersionHeader,
		},
		tonic.Handler(employers.CreateJob, 201),
	)

	f.GET("/v1/openapi.json", []fizz.OperationOption{}, f.OpenAPI(info, "json"))

	return f
}

type apiVersionWriter struct {
	gin.ResponseWriter
	version string
}

func (w *apiVersionWriter) WriteHeader(code int) {
	if code >= 200 && code < 300 {
		w.Header().Set("API-Version", w.version)
	}
	w.ResponseWriter.WriteHeader(code)
}

func APIVersionMiddleware(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer = &apiVersionWriter{c.Writer, version}
		c.Next()
	}
}
