package jobs

import (
	"github.com/wanjikuh/shop_admin/logger"
	"github.com/wanjikuh/shop_admin/services"
)

// NonceCleanupJob drops expired SIWE nonces; scheduled from main via cron.
type NonceCleanupJob struct {
	Siwe services.SiweService
	Log  *logger.Logger
}

func (j *NonceCleanupJob) Run() {
	if purged := j.Siwe.PurgeExpiredNonces(); purged > 0 {
		j.Log.Info("purged expired siwe nonces", "count", purged)
	}
}
