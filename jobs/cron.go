package jobs

import (
	"cleverloo/services"
	"cleverloo/services/logger"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartCronJobs schedules the nightly rating recompute, which repairs any
// averages that drifted from their reviews.
func StartCronJobs(db *gorm.DB, lg logger.Logger) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 3 * * *", func() {
		if err := services.RecomputeAllRatings(db); err != nil {
			lg.Error("nightly rating recompute failed: %v", err)
			return
		}
		lg.Info("nightly rating recompute completed")
	})
	if err != nil {
		lg.Error("failed to schedule rating recompute: %v", err)
		return c
	}

	c.Start()
	return c
}
