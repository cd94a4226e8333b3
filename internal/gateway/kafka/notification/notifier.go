package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"tracking/internal/entities"
)

// Notifier публикует сигналы инспекции в топик уведомлений.
type Notifier struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Notifier {
	return &Notifier{
		producer: producer,
		topic:    topic,
	}
}

func (n *Notifier) CargoMisdirected(_ context.Context, cargo entities.Cargo, delivery entities.Delivery) error {
	return n.publish(newMessage(signalMisdirected, cargo, delivery))
}

func (n *Notifier) CargoDelivered(_ context.Context, cargo entities.Cargo, delivery entities.Delivery) error {
	return n.publish(newMessage(signalDelivered, cargo, delivery))
}

func (n *Notifier) publish(msg notificationMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", msg.Signal, err)
	}

	_, _, err = n.producer.SendMessage(&sarama.ProducerMessage{
		Topic:   n.topic,
		Key:     sarama.StringEncoder(msg.TrackingID),
		Value:   sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{{Key: []byte("signal"), Value: []byte(msg.Signal)}},
	})
	if err != nil {
		return fmt.Errorf("publish %s for %s: %w", msg.Signal, msg.TrackingID, err)
	}

	return nil
}
