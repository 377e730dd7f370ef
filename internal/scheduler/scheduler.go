package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const jobTimeout = 2 * time.Minute

// Scheduler - обёртка над cron для фоновых задач бота
type Scheduler struct {
	cron *cron.Cron
	log  *zerolog.Logger
}

func NewScheduler(loc *time.Location, log *zerolog.Logger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		log:  log,
	}
}

// ScheduleDaily запускает job каждый день в HH:MM по таймзоне планировщика.
// job получает контекст с таймаутом, ошибка только логируется.
func (s *Scheduler) ScheduleDaily(ctx context.Context, name, timeStr string, job func(ctx context.Context) error) (cron.EntryID, error) {
	spec, err := buildDailySpec(timeStr)
	if err != nil {
		return 0, err
	}

	return s.cron.AddFunc(spec, func() {
		jobCtx, cancel := context.WithTimeout(ctx, jobTimeout)
		defer cancel()

		start := time.Now()
		if err := job(jobCtx); err != nil {
			s.log.Error().Err(err).Str("job", name).Msg("scheduled job failed")
			return
		}
		s.log.Info().Str("job", name).Dur("duration_ms", time.Since(start)).Msg("scheduled job done")
	})
}

// Next - ближайший запуск задачи, нулевое время если задача не найдена
func (s *Scheduler) Next(id cron.EntryID) time.Time {
	return s.cron.Entry(id).Next
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop ждёт завершения уже запущенных задач
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func buildDailySpec(timeStr string) (string, error) {
	parts := strings.Split(strings.TrimSpace(timeStr), ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", timeStr)
	}
	// cron format: second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
