package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"innsight/config"
	"innsight/services/audit"
	"innsight/utils"

	"github.com/hibiken/asynq"
)

const TypeAuditRun = "audit:run"

// AuditRunPayload is the task payload; an empty PropertyID audits everything.
type AuditRunPayload struct {
	PropertyID string `json:"propertyId"`
}

// InitAuditWorker runs the async audit worker and the periodic scheduler in
// the background.
func InitAuditWorker(svc audit.AuditService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			// Audit runs are store-heavy; one at a time is enough.
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAuditRun, handleAuditTask(svc))

	go startScheduler(redisOpts)

	// Start async worker with retry logic
	go func() {
		log.Println("[AuditWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[AuditWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[AuditWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// startScheduler enqueues an unscoped audit run on the configured cron spec.
func startScheduler(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})

	payload, _ := json.Marshal(AuditRunPayload{})
	if _, err := scheduler.Register(config.AppConfig.AuditCronSpec, asynq.NewTask(TypeAuditRun, payload)); err != nil {
		log.Printf("[AuditWorker] Failed to register scheduled audit: %v", err)
		return
	}

	if err := scheduler.Run(); err != nil {
		log.Printf("[AuditWorker] Scheduler stopped: %v", err)
	}
}

func handleAuditTask(svc audit.AuditService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p AuditRunPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[AuditHandler] Invalid payload: %v", err)
			return err
		}

		report := svc.RunConsistencyCheck(ctx, p.PropertyID)
		log.Printf("[AuditHandler] Scheduled audit complete: %d bookings, %d issues (%d critical)",
			report.Summary.TotalBookings, report.Summary.IssuesFound, report.Summary.CriticalIssues)

		// Refresh the cached report so the next dashboard read sees this run.
		if payload, err := json.Marshal(report); err == nil {
			cache := utils.GetReportCacheClient()
			if err := cache.Set(ctx, utils.ReportCacheKey(p.PropertyID), payload, utils.ReportCacheTTL()).Err(); err != nil {
				log.Printf("[AuditHandler] Failed to cache report: %v", err)
			}
		}
		return nil
	}
}
