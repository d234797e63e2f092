package scheduler

import (
	"StationAdmin/internal/service"
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// probeTimeout ограничивает один прогон проверки.
const probeTimeout = 10 * time.Second

// Prober выполняет диагностический запрос к Stations.
type Prober interface {
	Probe(ctx context.Context) service.ProbeResult
}

// ProbeJob периодически выполняет проверку БД и пишет результат в лог.
type ProbeJob struct {
	prober    Prober
	interval  time.Duration
	logger    *zap.SugaredLogger
	scheduler *gocron.Scheduler
}

// NewProbeJob создаёт задачу. interval должен быть больше нуля.
func NewProbeJob(p Prober, interval time.Duration, logger *zap.SugaredLogger) *ProbeJob {
	return &ProbeJob{prober: p, interval: interval, logger: logger}
}

// Start запускает расписание асинхронно, первый прогон выполняется сразу.
func (j *ProbeJob) Start() error {
	if j.interval <= 0 {
		return fmt.Errorf("probe interval must be positive, got %s", j.interval)
	}
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	if _, err := s.Every(j.interval).StartImmediately().Do(j.Run); err != nil {
		return fmt.Errorf("schedule probe job: %w", err)
	}
	s.StartAsync()
	j.scheduler = s
	j.logger.Infow("Probe job started", "interval", j.interval)
	return nil
}

// Stop останавливает расписание.
func (j *ProbeJob) Stop() {
	if j.scheduler == nil {
		return
	}
	j.scheduler.Stop()
	j.logger.Infow("Probe job stopped")
}

// Running сообщает, запущено ли расписание.
func (j *ProbeJob) Running() bool {
	return j.scheduler != nil && j.scheduler.IsRunning()
}

// Run один прогон проверки.
func (j *ProbeJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	res := j.prober.Probe(ctx)
	if res.Error != nil {
		j.logger.Warnw("Stations probe failed", "error", res.Error)
		return
	}
	j.logger.Infow("Stations probe ok", "rows", len(res.Data))
}
