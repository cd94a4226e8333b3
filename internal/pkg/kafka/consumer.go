package kafka

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/IBM/sarama"
	"tracking/internal/pkg/config"
	"tracking/pkg/logger"
	"tracking/pkg/retrier"
	"tracking/pkg/retrier/backoff_adapter"
)

var errTopicMissing = errors.New("topic does not exist yet")

type Consumer struct {
	log     logger.Logger
	client  sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func NewSaramaConfig(
	versionStr string,
	autoCommit bool,
	initialOffset int64,
	rebalanceStrategy sarama.BalanceStrategy,
) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Consumer.Offsets.Initial = initialOffset
	cfg.Consumer.Offsets.AutoCommit.Enable = autoCommit
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{rebalanceStrategy}
	cfg.Consumer.Return.Errors = true

	return cfg, nil
}

// NewConsumer ждёт, пока брокер поднимется и на нём появятся все topics,
// и только потом возвращает consumer group.
func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string, groupID string, topics []string, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	saramaConfig, err := NewSaramaConfig(
		cfg.Sarama.Version,
		cfg.Sarama.ConsumerOffsetsAutocommit,
		sarama.OffsetOldest,
		sarama.NewBalanceStrategyRoundRobin(),
	)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", groupID),
		logger.NewField("topics", topics),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig, topics...)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	client, err := sarama.NewConsumerGroup(brokers, groupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &Consumer{
		log:     kafkaLog,
		client:  client,
		topics:  topics,
		handler: handler,
	}, nil
}

// Start запускает consumer (блокирующий вызов). Consume возвращается при
// каждой ребалансировке, поэтому вызывается в цикле до отмены ctx.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("Kafka consumer starting")

	go c.logErrors()

	for {
		err := c.client.Consume(ctx, c.topics, c.handler)
		if err != nil {
			c.log.With(
				logger.NewField("error", err),
			).Error("Error from consumer")
			return fmt.Errorf("consumer error: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Warn("Context cancelled, stopping consumer")
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	return c.client.Close()
}

// logErrors читает ошибки фоновых горутин sarama (Consumer.Return.Errors),
// канал закрывается вместе с группой.
func (c *Consumer) logErrors() {
	for err := range c.client.Errors() {
		c.log.With(
			logger.NewField("error", err),
		).Warn("kafka consumer group error")
	}
}

// pingKafka ретраит подключение к брокерам; непустой topics требует, чтобы
// все топики уже были созданы.
func pingKafka(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config, topics ...string) error {
	retryConfig := retrier.ConnectConfig()
	retryConfig.OnRetry = func(err error, wait time.Duration) {
		log.With(
			logger.NewField("error", err),
			logger.NewField("retry_in", wait.String()),
		).Warn("kafka is not ready")
	}

	var attempt uint64
	err := backoff_adapter.New(retryConfig).ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}

		defer func() {
			err := client.Close()
			if err != nil {
				log.Error("failed to close Kafka connection",
					logger.NewField("error", err),
				)
			}
		}()

		existing, err := client.Topics()
		if err != nil {
			return err
		}
		for _, topic := range topics {
			if !slices.Contains(existing, topic) {
				return fmt.Errorf("%w: %s", errTopicMissing, topic)
			}
		}
		return nil
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Kafka connection failed after retries")
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("Kafka connection established")
	return nil
}
