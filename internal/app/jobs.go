package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// initJobs registers background maintenance. Only the catalog cleanup is
// scheduled, and only when a cron expression is configured.
func (a *Application) initJobs() {
	a.sched = cron.New(cron.WithLocation(time.Local), cron.WithParser(cronParser))

	expr := a.appConfig.Maintenance.CleanupCron
	if expr == "" {
		return
	}
	_, err := a.sched.AddFunc(expr, func() {
		stats, err := a.maint.Cleanup(context.Background())
		if err != nil {
			zap.L().Error("scheduled cleanup failed", zap.Error(err))
			return
		}
		zap.L().Info("scheduled cleanup finished",
			zap.Int("total", stats.Total),
			zap.Int("removed", stats.Removed))
	})
	if err != nil {
		zap.S().Errorf("init cleanup job error %s", err.Error())
	}
}
