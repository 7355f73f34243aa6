package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/alimikegami/pettech-microservices/stock-service/config"
	"github.com/alimikegami/pettech-microservices/stock-service/internal/dto"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const maxRetries = 3

type EventPublisher interface {
	Publish(ctx context.Context, key string, msg dto.KafkaMessage) error
	Close() error
}

type KafkaPublisher struct {
	writer  *kafka.Writer
	backoff time.Duration
}

// CreateEventPublisher returns a Kafka backed publisher, or a no-op one when no broker is configured.
func CreateEventPublisher(config *config.Config) EventPublisher {
	if config.KafkaConfig.BrokerAddress == "" {
		log.Info().Str("component", "CreateEventPublisher").Msg("no broker configured, stock events are not published")
		return NoopPublisher{}
	}

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(config.KafkaConfig.BrokerAddress),
			Topic:                  config.KafkaConfig.BrokerTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,

			// Publishes are single messages; flush them right away.
			BatchTimeout: 10 * time.Millisecond,
			WriteTimeout: time.Second,
			ReadTimeout:  time.Second,
		},
		backoff: 200 * time.Millisecond,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) (err error) {
	jsonMsg, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	for i := 0; i < maxRetries; i++ {
		err = p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(key),
			Value: jsonMsg,
		})
		if err == nil {
			return nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "Publish").Int("attempt", i+1).Msg("")

		if i == maxRetries-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.backoff * time.Duration(i+1)):
		}
	}

	return err
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
