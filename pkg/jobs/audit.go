package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/skillbridge/job-register/pkg/job_register/services"
	"github.com/skillbridge/job-register/pkg/tools"
	"go.uber.org/zap"
)

// ScheduleDailyArchiveAudit sets up a cron job that cross-checks the archive
// ledger against live credential sets every day.
func ScheduleDailyArchiveAudit(ctx context.Context, svc *services.ArtifactService, log *zap.Logger) *cron.Cron {
	c := cron.New()
	_, _ = c.AddFunc("@daily", func() {
		tools.Dispatch(context.Background(), "archive_audit", log, func(ctx context.Context) error {
			return svc.AuditArchive(ctx)
		})
	})
	c.Start()

	go func() {
		<-ctx.Done()
		c.Stop()
	}()
	return c
}
