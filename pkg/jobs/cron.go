package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/agencydesk/agencydesk/ent"
	"github.com/agencydesk/agencydesk/ent/user"
	"github.com/agencydesk/agencydesk/pkg/files"
)

// CronManager manages scheduled housekeeping jobs
type CronManager struct {
	cron          *cron.Cron
	db            *ent.Client
	fileService   *files.Service
	retentionDays int
	logger        *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(db *ent.Client, fileService *files.Service, retentionDays int, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:          cron.New(),
		db:            db,
		fileService:   fileService,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Hourly: clear expired magic-link tokens so stale hashes don't linger
	_, err := cm.cron.AddFunc("0 * * * *", func() {
		cm.logger.Println("🕐 Running magic-link sweep...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		n, err := cm.SweepExpiredMagicLinks(ctx)
		if err != nil {
			cm.logger.Printf("❌ Magic-link sweep failed: %v", err)
			return
		}
		cm.logger.Printf("✅ Magic-link sweep cleared %d expired tokens", n)
	})
	if err != nil {
		return err
	}

	// Nightly at 3 AM: purge file records soft-deleted past retention
	_, err = cm.cron.AddFunc("0 3 * * *", func() {
		cm.logger.Println("🕐 Running file retention purge...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		cutoff := time.Now().AddDate(0, 0, -cm.retentionDays)
		n, err := cm.fileService.PurgeDeleted(ctx, cutoff)
		if err != nil {
			cm.logger.Printf("⚠️ File purge stopped after %d rows: %v", n, err)
			return
		}
		cm.logger.Printf("✅ File purge removed %d rows", n)
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Println("  - Hourly: clear expired magic-link tokens")
	cm.logger.Println("  - Daily at 3 AM: purge soft-deleted files past retention")

	return nil
}

// SweepExpiredMagicLinks clears token hashes whose expiry has passed.
func (cm *CronManager) SweepExpiredMagicLinks(ctx context.Context) (int, error) {
	return cm.db.User.Update().
		Where(
			user.MagicLinkTokenNotNil(),
			user.MagicLinkExpiresAtLT(time.Now()),
		).
		ClearMagicLinkToken().
		ClearMagicLinkExpiresAt().
		Save(ctx)
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}
