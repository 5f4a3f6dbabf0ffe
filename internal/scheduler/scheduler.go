package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/RestoStock-api/internal/application/stockops"
	"github.com/jhoicas/RestoStock-api/pkg/config"
	"github.com/jhoicas/RestoStock-api/pkg/logger"
)

// Scheduler dispara periódicamente el pase del motor de operaciones y el
// barrido del janitor usando expresiones cron de 5 campos. El endpoint
// POST /api/stock/operations/run sigue disponible para disparos a demanda
// tras una ráfaga de encolados.
type Scheduler struct {
	cron    *cron.Cron
	execute *stockops.ExecuteOperationsUseCase
	janitor *stockops.JanitorUseCase
	cfg     config.OpsConfig
	log     *logger.Logger
}

// NewScheduler construye el scheduler.
func NewScheduler(cfg config.OpsConfig, execute *stockops.ExecuteOperationsUseCase, janitor *stockops.JanitorUseCase, log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	return &Scheduler{
		cron:    cron.New(),
		execute: execute,
		janitor: janitor,
		cfg:     cfg,
		log:     log,
	}
}

// Start registra los trabajos y arranca el cron.
func (s *Scheduler) Start() {
	s.log.Info().
		Str("run_schedule", s.cfg.RunSchedule).
		Str("sweep_schedule", s.cfg.SweepSchedule).
		Msg("iniciando scheduler")

	if _, err := s.cron.AddFunc(s.cfg.RunSchedule, s.runPass); err != nil {
		s.log.Error().Err(err).Msg("no se pudo programar el pase de ejecución")
	}
	if _, err := s.cron.AddFunc(s.cfg.SweepSchedule, s.sweep); err != nil {
		s.log.Error().Err(err).Msg("no se pudo programar el barrido del janitor")
	}

	s.cron.Start()
}

// Stop detiene el cron; los trabajos en curso terminan.
func (s *Scheduler) Stop() {
	s.log.Info().Msg("deteniendo scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runPass() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := s.execute.Run(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("pase de ejecución programado falló")
		return
	}
	if result.SuccessCount > 0 || result.FailedCount > 0 {
		s.log.Info().
			Int("success", result.SuccessCount).
			Int("failed", result.FailedCount).
			Msg("pase de ejecución programado completado")
	}
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	retention := time.Duration(s.cfg.RetentionHours) * time.Hour
	if _, err := s.janitor.Sweep(ctx, retention); err != nil {
		s.log.Error().Err(err).Msg("barrido programado falló")
	}
}
