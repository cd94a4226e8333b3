package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// OnRetryFunc получает ошибку попытки и паузу до следующей.
type OnRetryFunc func(err error, wait time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc

	OnRetry OnRetryFunc
}

// ConnectConfig - ретраи при старте: ждём postgres/kafka/routing пока поднимутся.
func ConnectConfig() Config {
	return Config{
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
	}
}
