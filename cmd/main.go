package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/loopfz/gadgeto/tonic"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	api "github.com/skillbridge/job-register/pkg/job_register"
	"github.com/skillbridge/job-register/pkg/job_register/blobstore"
	"github.com/skillbridge/job-register/pkg/job_register/database"
	"github.com/skillbridge/job-register/pkg/job_register/handler"
	problem "github.com/skillbridge/job-register/pkg/job_register/helpers/problem"
	"github.com/skillbridge/job-register/pkg/job_register/models"
	"github.com/skillbridge/job-register/pkg/job_register/repositories"
	"github.com/skillbridge/job-register/pkg/job_register/services"
	"github.com/skillbridge/job-register/pkg/jobs"
	"github.com/skillbridge/job-register/pkg/logger"
)

func invalidParamsFromBinding(err error, sample any) []problem.InvalidParam {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []problem.InvalidParam{{Name: "body", Reason: err.Error()}}
	}

	t := reflect.TypeOf(sample)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	out := make([]problem.InvalidParam, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if f, ok := t.FieldByName(fe.StructField()); ok {
			if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
				name = strings.Split(tag, ",")[0]
			}
		}
		out = append(out, problem.InvalidParam{
			Name:   name,
			Reason: humanReason(fe),
		})
	}
	return out
}

func humanReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min", "max":
		return "is out of range"
	default:
		return fe.Error()
	}
}

func init() {
	tonic.SetErrorHook(func(c *gin.Context, err error) (int, interface{}) {
		var be tonic.BindError
		if errors.As(err, &be) || isValidationErr(err) {
			invalids := invalidParamsFromBinding(err, models.UploadArtifactInput{})
			apiErr := problem.NewBadRequest("body", "Invalid input", invalids...)
			c.Header("Content-Type", "application/problem+json")
			return apiErr.Status, apiErr
		}

		if apiErr, ok := err.(problem.APIError); ok {
			c.Header("Content-Type", "application/problem+json")
			return apiErr.Status, apiErr
		}

		internal := problem.NewInternalServerError(err.Error())
		c.Header("Content-Type", "application/problem+json")
		return internal.Status, internal
	})
}

func isValidationErr(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

func main() {
	_ = godotenv.Load()

	zlog, err := logger.New(os.Getenv("LOG_JSON") == "true", os.Getenv("LOG_DEBUG") == "true")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	dbcon := "postgres://" +
		os.Getenv("DB_USERNAME") + ":" +
		os.Getenv("DB_PASSWORD") + "@" +
		os.Getenv("DB_HOSTNAME") + "/" +
		os.Getenv("DB_DBNAME")
	db, err := database.Connect(dbcon)
	if err != nil {
		zlog.Fatal("no database connection", zap.Error(err))
	}

	blobDir := os.Getenv("BLOB_DIR")
	if blobDir == "" {
		blobDir = "./blobs"
	}
	blobs, err := blobstore.NewFSStore(blobDir)
	if err != nil {
		zlog.Fatal("no blob store", zap.Error(err))
	}

	skills := models.ParseSkillRegistry(os.Getenv("SKILL_TAGS"))

	applicantRepo := repositories.NewApplicantRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	archiveRepo := repositories.NewArchiveRepository(db)

	artifactService := services.NewArtifactService(applicantRepo, archiveRepo, blobs, skills, zlog)
	matchService := services.NewMatchService(applicantRepo, jobRepo, zlog)
	applicationService := services.NewApplicationService(applicantRepo, jobRepo, skills, zlog)
	employerService := services.NewEmployerService(jobRepo, zlog)

	applicantsController := handler.NewApplicantsAPIController(artifactService, matchService, applicationService)
	employersController := handler.NewEmployersAPIController(employerService)

	jobs.ScheduleDailyArchiveAudit(context.Background(), artifactService, zlog)

	router := api.NewRouter("1.0.0", applicantsController, employersController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	zlog.Info("server is running", zap.String("port", port), zap.Strings("skillTags", skills.Tags()))
	log.Fatal(http.ListenAndServe(":"+port, router))
}
