package background

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"tracking/pkg/logger"
)

var errTaskPanic = errors.New("task panic")

// Task - периодическая фоновая задача.
type Task interface {
	// TTL - интервал между запусками.
	TTL() time.Duration

	Do(context.Context) error

	// Info - имя задачи для логов и метрик.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Worker struct {
	log   handlerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// New запускает задачи. Первый запуск каждой задачи синхронный: если хоть
// одна упала или запаниковала, New возвращает ошибку и ничего не остаётся
// работать в фоне. Дальше задачи идут по своему TTL до отмены ctx.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}

	warmup, warmupCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		warmup.Go(func() error {
			log.Info("task warmup", logger.NewField("task", task.Info()))
			if err := worker.runOnce(warmupCtx, task); err != nil {
				return fmt.Errorf("warmup %s: %w", task.Info(), err)
			}
			return nil
		})
	}
	if err := warmup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		worker.wg.Add(1)
		go func() {
			defer worker.wg.Done()
			worker.loop(ctx, task)
		}()
	}

	return worker, nil
}

// Wait ждёт остановки всех задач после отмены ctx.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) loop(ctx context.Context, task Task) {
	taskLog := w.log.With(logger.NewField("task", task.Info()))

	ttl := task.TTL()
	if ttl <= 0 {
		taskLog.Warn("non-positive TTL, periodic runs disabled", logger.NewField("ttl", ttl.String()))
		return
	}
	taskLog.Info("periodic runs started", logger.NewField("ttl", ttl.String()))

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			taskLog.Info("periodic runs stopped")
			return
		case <-ticker.C:
			if err := w.runOnce(ctx, task); err != nil && ctx.Err() == nil {
				taskLog.Error("background task failed", logger.NewField("error", err))
			}
		}
	}
}

// runOnce выполняет задачу один раз, паника превращается в errTaskPanic.
func (w *Worker) runOnce(ctx context.Context, task Task) (err error) {
	name := task.Info()
	start := time.Now()

	defer func() {
		taskDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

		result := resultOK
		if r := recover(); r != nil {
			result = resultPanic
			err = fmt.Errorf("%w: %v", errTaskPanic, r)
			w.log.Error("background task panic",
				logger.NewField("task", name),
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		} else if err != nil {
			result = resultError
		}
		taskRunsTotal.WithLabelValues(name, result).Inc()
	}()

	return task.Do(ctx)
}
