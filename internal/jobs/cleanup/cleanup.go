package cleanup

import (
	"context"
	"time"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Job периодически удаляет финализированные записи старше срока хранения.
// Активные записи не удаляются независимо от возраста
type Job struct {
	repo           AppointmentRepository
	retentionYears int
	interval       time.Duration
	log            Logger
}

func New(repo AppointmentRepository, retentionYears int, interval time.Duration, log Logger) *Job {
	return &Job{
		repo:           repo,
		retentionYears: retentionYears,
		interval:       interval,
		log:            log,
	}
}

// Run запускает цикл очистки до отмены контекста.
// Первый проход выполняется сразу, далее по тикеру
func (j *Job) Run(ctx context.Context) {
	j.log.Info("cleanup: job started, retention %d years, interval %s", j.retentionYears, j.interval)

	j.runOnce(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.log.Info("cleanup: job stopped")
			return
		case <-ticker.C:
			j.runOnce(ctx)
		}
	}
}

func (j *Job) runOnce(ctx context.Context) {
	cutoff := time.Now().AddDate(-j.retentionYears, 0, 0)

	deleted, err := j.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		j.log.Error("cleanup: failed to delete old appointments: %v", err)
		return
	}

	if deleted > 0 {
		j.log.Info("cleanup: deleted %d appointments older than %s", deleted, cutoff.Format("2006-01-02"))
	}
}
