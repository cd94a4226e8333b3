package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"tracking/internal/pkg/config"
	"tracking/pkg/logger"
)

// NewSyncProducer - синхронный продюсер: событие считается отправленным,
// только когда все реплики подтвердили запись. Ключ сообщения - tracking id,
// hash partitioner держит события одного груза в одной партиции.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.SyncProducer, error) {
	saramaConfig, err := NewSaramaConfig(
		cfg.Sarama.Version,
		cfg.Sarama.ConsumerOffsetsAutocommit,
		sarama.OffsetOldest,
		sarama.NewBalanceStrategyRoundRobin(),
	)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	kafkaLog := log.With(
		logger.NewField("component", "kafka-producer"),
		logger.NewField("brokers", cfg.Brokers),
	)

	err = pingKafka(ctx, kafkaLog, cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return producer, nil
}
