package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"llm-personal-assistant/internal/model"
	"llm-personal-assistant/internal/prompt"
	pkgLog "llm-personal-assistant/pkg/log"
)

// Config holds the cron specs for each cadence, in standard 5-field form.
type Config struct {
	DailySpec   string
	WeeklySpec  string
	MonthlySpec string
}

// Scheduler fires the cadence prompts on their schedule. Each tick looks up
// the prompts for its cadence and surfaces them as a notification; delivery
// beyond structured logging is left to whoever tails the logs.
type Scheduler struct {
	l    pkgLog.Logger
	uc   prompt.UseCase
	cron *cron.Cron
	cfg  Config
}

// New creates a scheduler with the standard 5-field parser. Ticks that
// overlap a still-running job are skipped rather than queued.
func New(l pkgLog.Logger, uc prompt.UseCase, cfg Config) *Scheduler {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	c := cron.New(
		cron.WithParser(parser),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	return &Scheduler{
		l:    l,
		uc:   uc,
		cron: c,
		cfg:  cfg,
	}
}

// Start registers the per-cadence jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	jobs := []struct {
		spec    string
		cadence model.Cadence
	}{
		{s.cfg.DailySpec, model.CadenceDaily},
		{s.cfg.WeeklySpec, model.CadenceWeekly},
		{s.cfg.MonthlySpec, model.CadenceMonthly},
	}

	for _, job := range jobs {
		cadence := job.cadence
		if _, err := s.cron.AddFunc(job.spec, func() { s.notify(cadence) }); err != nil {
			return fmt.Errorf("scheduler: add %s job: %w", cadence, err)
		}
	}

	s.cron.Start()
	s.l.Infof(context.Background(), "scheduler: started (daily=%q weekly=%q monthly=%q)",
		s.cfg.DailySpec, s.cfg.WeeklySpec, s.cfg.MonthlySpec)
	return nil
}

// Stop halts the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.l.Info(context.Background(), "scheduler: stopped")
}

func (s *Scheduler) notify(cadence model.Cadence) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	prompts, err := s.uc.ListByCadence(ctx, cadence)
	if err != nil {
		s.l.Errorf(ctx, "scheduler: list %s prompts: %v", cadence, err)
		return
	}

	for _, p := range prompts {
		s.l.Infof(ctx, "scheduler: %s prompt due: %s", cadence, p.Question)
	}
}
