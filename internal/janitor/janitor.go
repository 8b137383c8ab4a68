// Package janitor runs scheduled cleanup of expired and stale rows
package janitor

import (
	"context"
	"fmt"
	"log"
	"time"

	"hrhub/internal/config"
	"hrhub/internal/repository"

	"github.com/robfig/cron/v3"
)

// Janitor periodically removes expired refresh tokens and prunes the
// audit log down to the configured retention window.
type Janitor struct {
	cfg              config.JanitorConfig
	refreshTokenRepo repository.RefreshTokenRepository
	auditRepo        repository.AuditLogRepository
	cron             *cron.Cron
}

// New creates a new Janitor
func New(cfg config.JanitorConfig, refreshTokenRepo repository.RefreshTokenRepository, auditRepo repository.AuditLogRepository) *Janitor {
	// Cron scheduler with seconds disabled
	c := cron.New(cron.WithParser(cron.NewParser(
		cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
	)))

	return &Janitor{
		cfg:              cfg,
		refreshTokenRepo: refreshTokenRepo,
		auditRepo:        auditRepo,
		cron:             c,
	}
}

// RunOnce performs a single cleanup pass
func (j *Janitor) RunOnce(ctx context.Context) error {
	deleted, err := j.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	if deleted > 0 {
		log.Printf("Janitor removed %d expired refresh tokens", deleted)
	}

	retention := time.Duration(j.cfg.AuditRetentionDays) * 24 * time.Hour
	if err := j.auditRepo.CleanupOld(ctx, retention); err != nil {
		return fmt.Errorf("failed to prune audit log: %w", err)
	}

	return nil
}

// Start schedules cleanup runs and blocks until the context is cancelled
func (j *Janitor) Start(ctx context.Context) error {
	if j.cfg.Schedule == "" {
		return fmt.Errorf("janitor has no schedule configured")
	}

	_, err := j.cron.AddFunc(j.cfg.Schedule, func() {
		log.Println("Running scheduled cleanup")
		if err := j.RunOnce(ctx); err != nil {
			log.Printf("Error running cleanup: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule cleanup: %w", err)
	}

	j.cron.Start()
	log.Printf("Janitor started with schedule %s", j.cfg.Schedule)

	<-ctx.Done()
	log.Println("Stopping janitor...")
	j.cron.Stop()

	return nil
}
