package repository

import (
	"context"
	"errors"

	sdk "github.com/segmentio/kafka-go"
	domainrepos "github.com/whiteelite/solid/internal/domain/repositories"
	"go.uber.org/zap"
)

var (
	ErrBrokersRequired = errors.New("kafka brokers are required")
	ErrTopicRequired   = errors.New("kafka topic is required")
)

const defaultBufSize = 1024

// KafkaMessageQueueParams implements repositories.MessageQueueParams
// and provides configuration for the Kafka producer and consumer.
type KafkaMessageQueueParams struct {
	// Required
	Brokers []string
	Topic   string

	// Optional
	GroupID          string
	ToProduceBufSize int
	ToConsumeBufSize int
}

func (p KafkaMessageQueueParams) Get() map[string]any {
	return map[string]any{
		"brokers":         p.Brokers,
		"topic":           p.Topic,
		"groupId":         p.GroupID,
		"toProduceBuffer": p.ToProduceBufSize,
		"toConsumeBuffer": p.ToConsumeBufSize,
	}
}

var _ domainrepos.MessageQueueParams = KafkaMessageQueueParams{}

// ValidateKafkaParams ensures required params are set.
func ValidateKafkaParams(p KafkaMessageQueueParams) error {
	if len(p.Brokers) == 0 {
		return ErrBrokersRequired
	}
	if p.Topic == "" {
		return ErrTopicRequired
	}
	return nil
}

func withDefaults(p KafkaMessageQueueParams) KafkaMessageQueueParams {
	if p.ToProduceBufSize <= 0 {
		p.ToProduceBufSize = defaultBufSize
	}
	if p.ToConsumeBufSize <= 0 {
		p.ToConsumeBufSize = defaultBufSize
	}
	return p
}

// messageWriter is the subset of *kafka.Writer used by the producer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...sdk.Message) error
	Close() error
}

// messageReader is the subset of *kafka.Reader used by the consumer.
type messageReader interface {
	FetchMessage(ctx context.Context) (sdk.Message, error)
	CommitMessages(ctx context.Context, msgs ...sdk.Message) error
	Close() error
}

// logErrors drains errs until it is closed, then closes done.
func logErrors(logger *zap.Logger, role string, errs <-chan error, done chan<- struct{}) {
	defer close(done)
	for err := range errs {
		logger.Warn("kafka worker error", zap.String("role", role), zap.Error(err))
	}
}
