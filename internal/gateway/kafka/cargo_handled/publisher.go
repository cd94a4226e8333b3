// Package cargo_handled откладывает инспекцию груза: событие публикуется в
// Kafka, инспекцию выполняет worker-cargo-inspection.
package cargo_handled

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"tracking/internal/entities"
	retrierconfig "tracking/pkg/retrier"
	"tracking/pkg/retrier/backoff_adapter"
)

// Событие уже записано, когда публикуется: без сообщения инспекция по нему
// не случится, поэтому отправка повторяется дольше, чем запрос к маршрутизации.
const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 10 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Publisher struct {
	producer producer
	topic    string
	retrier  retrier
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		retrier: backoff_adapter.New(retrierconfig.Config{
			InitialInterval: initialInterval,
			MaxInterval:     maxInterval,
			MaxElapsedTime:  maxElapsedTime,
			Randomization:   randomization,
			Multiplier:      multiplier,
		}),
	}
}

// CargoHandled публикует событие с ключом tracking id: события одного груза
// попадают в одну партицию и инспектируются по порядку.
// Ошибка брокера повторяется с паузами, пока не истечёт maxElapsedTime или ctx.
func (p *Publisher) CargoHandled(ctx context.Context, event entities.HandlingEvent) error {
	payload, err := json.Marshal(fromDomain(event))
	if err != nil {
		return fmt.Errorf("marshal cargo handled: %w", err)
	}

	err = p.retrier.ExecuteWithContext(ctx, func(context.Context) error {
		_, _, err := p.producer.SendMessage(&sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(event.TrackingID.String()),
			Value: sarama.ByteEncoder(payload),
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("publish cargo handled %s: %w", event.TrackingID, err)
	}

	return nil
}
