package zap_adapter

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"tracking/pkg/logger"
)

type ZapAdapter struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

func NewZapAdapter() (*ZapAdapter, error) {
	config := zap.NewProductionConfig()

	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Encoding = "json"
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLogger, err := config.Build(
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	)
	if err != nil {
		return nil, err
	}
	return &ZapAdapter{logger: zapLogger, level: config.Level}, nil
}

// NewNop используется в тестах, где вывод логов не нужен.
func NewNop() *ZapAdapter {
	return &ZapAdapter{logger: zap.NewNop(), level: zap.NewAtomicLevel()}
}

func newFromCore(core zapcore.Core, level zap.AtomicLevel) *ZapAdapter {
	return &ZapAdapter{logger: zap.New(core), level: level}
}

// SetLevel меняет уровень уже созданного логгера и всех, полученных через With:
// логгер создаётся до чтения конфигурации.
func (z *ZapAdapter) SetLevel(level string) error {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	z.level.SetLevel(parsed)
	return nil
}

func (z *ZapAdapter) Debug(msg string, fields ...logger.Field) {
	z.logger.Debug(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Info(msg string, fields ...logger.Field) {
	z.logger.Info(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Warn(msg string, fields ...logger.Field) {
	z.logger.Warn(msg, convertFields(fields)...)
}

func (z *ZapAdapter) Error(msg string, fields ...logger.Field) {
	z.logger.Error(msg, convertFields(fields)...)
}

func (z *ZapAdapter) With(fields ...logger.Field) logger.Logger {
	return &ZapAdapter{
		logger: z.logger.With(convertFields(fields)...),
		level:  z.level,
	}
}

func (z *ZapAdapter) Sync() error {
	return z.logger.Sync()
}

// convertFields: ошибки пишутся через zap.NamedError, остальное - zap.Any.
// fmt.Stringer (TrackingID, UnLocode) приводится к строке.
func convertFields(fields []logger.Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value.(type) {
		case error:
			zapFields = append(zapFields, zap.NamedError(f.Key, v))
		case fmt.Stringer:
			zapFields = append(zapFields, zap.Stringer(f.Key, v))
		default:
			zapFields = append(zapFields, zap.Any(f.Key, v))
		}
	}
	return zapFields
}
