package scheduler

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"agua-be-svc/internal/metrics"
	"agua-be-svc/internal/models"
	"agua-be-svc/internal/repository"
	"agua-be-svc/internal/service"
	"agua-be-svc/pkg/logger"
)

// PeriodoScheduler opens the billing period for the current month
type PeriodoScheduler struct {
	periodoService   service.PeriodoService
	schedulerLogRepo repository.SchedulerLogRepository
	logger           *logger.Logger
	cron             *cron.Cron
	cronExpression   string
}

// NewPeriodoScheduler creates a new period scheduler
func NewPeriodoScheduler(periodoService service.PeriodoService, schedulerLogRepo repository.SchedulerLogRepository, logger *logger.Logger, cronExpression string) *PeriodoScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &PeriodoScheduler{
		periodoService:   periodoService,
		schedulerLogRepo: schedulerLogRepo,
		logger:           logger,
		cron:             c,
		cronExpression:   cronExpression,
	}
}

// Start initializes and starts all scheduled jobs
func (s *PeriodoScheduler) Start() error {
	s.logger.Info("Starting period scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling period-opening job")
	_, err := s.cron.AddFunc(s.cronExpression, s.openCurrentPeriodo)
	if err != nil {
		return fmt.Errorf("failed to schedule period-opening job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Period scheduler started successfully")

	return nil
}

// Stop gracefully stops the scheduler
func (s *PeriodoScheduler) Stop() {
	s.logger.Info("Stopping period scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Period scheduler stopped successfully")
}

// openCurrentPeriodo is the scheduled job that opens the current month's
// period with zeroed expenses, to be filled in by the administrator
func (s *PeriodoScheduler) openCurrentPeriodo() {
	schedulerCode := "PERIODO_OPENING"
	now := time.Now()
	docID := uuid.New().String()

	s.logScheduler(schedulerCode, docID, "Starting scheduled period opening", "START", &now)

	mes, ano := service.PeriodoAtual(now)
	s.logger.WithField("mes", mes).WithField("ano", ano).Info("Opening billing period")

	s.logScheduler(schedulerCode, docID, fmt.Sprintf("Opening period for month %d year %d", mes, ano), "RUNNING", &now)

	periodo, created, err := s.periodoService.EnsurePeriodoExists(mes, ano)
	if err != nil {
		s.logScheduler(schedulerCode, docID, fmt.Sprintf("Failed to open period: %v", err), "FAILED", &now)
		metrics.SchedulerRunsTotal.WithLabelValues("failed").Inc()
		s.logger.WithError(err).Error("Failed to open billing period")
		return
	}

	if !created {
		s.logScheduler(schedulerCode, docID, fmt.Sprintf("Period %d/%d already exists", mes, ano), "SUCCESS", &now)
		metrics.SchedulerRunsTotal.WithLabelValues("skipped").Inc()
		s.logger.WithField("periodo_id", periodo.ID).Info("Billing period already exists")
		return
	}

	s.logScheduler(schedulerCode, docID, fmt.Sprintf("Period %d/%d opened with id %d", mes, ano, periodo.ID), "SUCCESS", &now)
	metrics.SchedulerRunsTotal.WithLabelValues("success").Inc()
	s.logger.WithField("periodo_id", periodo.ID).Info("Billing period opened successfully")
}

// logScheduler creates a new log entry in the database
func (s *PeriodoScheduler) logScheduler(schedulerCode, documentID, message, status string, createdAt *time.Time) {
	logEntry := &models.SchedulerLog{
		DocumentID:    &documentID,
		SchedulerCode: &schedulerCode,
		Message:       &message,
		Status:        &status,
		CreatedAt:     createdAt,
	}

	if err := s.schedulerLogRepo.Create(logEntry); err != nil {
		s.logger.WithError(err).Error("Failed to write scheduler log entry")
	}
}
