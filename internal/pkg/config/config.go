package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	InspectionModeSync  = "sync"
	InspectionModeKafka = "kafka"

	NotificationModeLog   = "log"
	NotificationModeKafka = "kafka"
)

type (
	Tasks struct {
		OverdueCargoScanInterval time.Duration `env:"BACKGROUND_OVERDUE_CARGO_SCAN_INTERVAL" envDefault:"1m"`
	}

	HTTPServer struct {
		Port             string        `env:"PORT"`
		RequestTimeout   time.Duration `env:"MIDDLEWARE_REQUEST_TIMEOUT"`  // middleware timeout
		RateLimiterQPS   int           `env:"MIDDLEWARE_RATE_LIMIT_QPS"`   // middleware rate limiter capacity
		RateLimiterBurst int           `env:"MIDDLEWARE_RATE_LIMIT_BURST"` // middleware rate limiter burst/refill
		PprofEnabled     bool          `env:"PPROF_ENABLED"`
		PprofPort        string        `env:"PPROF_PORT"`
	}

	Storage struct {
		Driver string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	}

	Database struct {
		Host     string `env:"POSTGRES_HOST"`
		Port     string `env:"POSTGRES_PORT"`
		User     string `env:"POSTGRES_USER"`
		Password string `env:"POSTGRES_PASSWORD"`
		DBName   string `env:"POSTGRES_DB"`
		SSLMode  string `env:"POSTGRES_SSLMODE"`
		MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
		MinConns int32  `env:"POSTGRES_MIN_CONNS" envDefault:"2"`
	}

	// RoutingService - внешний поиск маршрутов. Без хоста работает локальный pathfinder.
	RoutingService struct {
		GRPCHost string `env:"ROUTING_SERVICE_GRPC_HOST"`
	}

	// RoutingServer - cmd/routing-service, отдаёт маршруты pathfinder по gRPC.
	RoutingServer struct {
		GRPCPort        string `env:"ROUTING_SERVER_GRPC_PORT"`
		PortHealthcheck string `env:"ROUTING_SERVER_HTTP_HEALTHCHECK_PORT"`
	}

	Inspection struct {
		Mode string `env:"INSPECTION_MODE" envDefault:"sync"`
	}

	Notification struct {
		Mode string `env:"NOTIFICATION_MODE" envDefault:"log"`
	}

	Kafka struct {
		PortHealthcheck string   `env:"KAFKA_HTTP_HEALTHCHECK_PORT"`
		Brokers         []string `env:"KAFKA_BROKERS" envSeparator:","`
		ConsumerGroup   string   `env:"KAFKA_CONSUMER_GROUP"`
		Topics          KafkaTopics
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	KafkaTopics struct {
		HandlingReports string `env:"KAFKA_TOPIC_HANDLING_REPORTS" envDefault:"cargo.handling-reports"`
		CargoHandled    string `env:"KAFKA_TOPIC_CARGO_HANDLED" envDefault:"cargo.handled"`
		Notifications   string `env:"KAFKA_TOPIC_NOTIFICATIONS" envDefault:"cargo.notifications"`
	}

	Sarama struct {
		Version                   string `env:"KAFKA_SARAMA_VERSION"`
		ConsumerOffsetsAutocommit bool   `env:"KAFKA_SARAMA_OFFSETS_AUTOCOMMIT"`
	}

	KafkaHandlers struct {
		ProcessTimeout time.Duration `env:"KAFKA_HANDLER_PROCESS_TIMEOUT" envDefault:"5s"`
	}

	Logging struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	Tracing struct {
		ServiceName  string `env:"SERVICE_NAME" envDefault:"cargo-tracking"`
		OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	}

	Config struct {
		Tasks          Tasks
		Server         HTTPServer
		Storage        Storage
		Database       Database
		RoutingService RoutingService
		RoutingServer  RoutingServer
		Inspection     Inspection
		Notification   Notification
		Kafka          Kafka
		Tracing        Tracing
		Logging        Logging
	}
)

// UsesKafka - нужен ли брокер сервису при выбранных режимах.
func (c *Config) UsesKafka() bool {
	return c.Inspection.Mode == InspectionModeKafka || c.Notification.Mode == NotificationModeKafka
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadWorker - конфигурация для kafka воркеров: брокер обязателен, HTTP API не нужен.
func LoadWorker() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateWorkerConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadRoutingServer - конфигурация сервиса маршрутов: Kafka и HTTP API не нужны.
func LoadRoutingServer() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateRoutingServerConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadDatabase - только подключение к postgres, для миграций.
func LoadDatabase() (*Database, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return &cfg.Database, nil
}

func loadFromEnv() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	cfg.Inspection.Mode = strings.ToLower(strings.TrimSpace(cfg.Inspection.Mode))
	cfg.Notification.Mode = strings.ToLower(strings.TrimSpace(cfg.Notification.Mode))
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Tasks.OverdueCargoScanInterval == time.Duration(0) {
		return errors.New("BACKGROUND_OVERDUE_CARGO_SCAN_INTERVAL is required")
	}

	if err := validateModes(cfg); err != nil {
		return err
	}

	if cfg.Storage.Driver == StorageDriverPostgres {
		if err := validateDatabase(&cfg.Database); err != nil {
			return err
		}
	}

	if cfg.UsesKafka() {
		if err := validateKafka(&cfg.Kafka); err != nil {
			return err
		}
	}

	return nil
}

func validateWorkerConfig(cfg *Config) error {
	if err := validateModes(cfg); err != nil {
		return err
	}
	if cfg.Storage.Driver != StorageDriverPostgres {
		return errors.New("workers share state with the service and require STORAGE_DRIVER=postgres")
	}
	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}
	if err := validateKafka(&cfg.Kafka); err != nil {
		return err
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Handlers.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_PROCESS_TIMEOUT is required")
	}
	return nil
}

func validateRoutingServerConfig(cfg *Config) error {
	if err := validateModes(cfg); err != nil {
		return err
	}
	if cfg.RoutingServer.GRPCPort == "" {
		return errors.New("ROUTING_SERVER_GRPC_PORT is required")
	}
	if cfg.RoutingServer.PortHealthcheck == "" {
		return errors.New("ROUTING_SERVER_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Storage.Driver == StorageDriverPostgres {
		return validateDatabase(&cfg.Database)
	}
	return nil
}

func validateModes(cfg *Config) error {
	switch cfg.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageDriverPostgres, StorageDriverMemory, cfg.Storage.Driver)
	}

	switch cfg.Inspection.Mode {
	case InspectionModeSync, InspectionModeKafka:
	default:
		return fmt.Errorf("INSPECTION_MODE must be %q or %q, got %q", InspectionModeSync, InspectionModeKafka, cfg.Inspection.Mode)
	}

	switch cfg.Notification.Mode {
	case NotificationModeLog, NotificationModeKafka:
	default:
		return fmt.Errorf("NOTIFICATION_MODE must be %q or %q, got %q", NotificationModeLog, NotificationModeKafka, cfg.Notification.Mode)
	}

	return nil
}

func validateDatabase(db *Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	if db.MaxConns <= 0 || db.MinConns < 0 || db.MinConns > db.MaxConns {
		return fmt.Errorf("POSTGRES_MIN_CONNS (%d) must be within [0, POSTGRES_MAX_CONNS (%d)]", db.MinConns, db.MaxConns)
	}
	return nil
}

func validateKafka(k *Kafka) error {
	if len(k.Brokers) == 0 {
		return errors.New("KAFKA_BROKERS is required")
	}
	if k.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if k.Topics.HandlingReports == "" || k.Topics.CargoHandled == "" || k.Topics.Notifications == "" {
		return errors.New("KAFKA_TOPIC_* must not be empty")
	}
	return nil
}
