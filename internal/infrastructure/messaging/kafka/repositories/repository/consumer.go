package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	json "github.com/goccy/go-json"

	sdk "github.com/segmentio/kafka-go"
	domainrepos "github.com/whiteelite/solid/internal/domain/repositories"
	mapper "github.com/whiteelite/solid/internal/infrastructure/messaging/kafka/repositories/mapper"
	models "github.com/whiteelite/solid/internal/infrastructure/messaging/kafka/repositories/models"
	shared "github.com/whiteelite/solid/pkg/shared/domain/entities"
	"go.uber.org/zap"
)

// delivery pairs a decoded entity with the message it came from, so the
// offset can be committed once the entity has been handed to the caller.
type delivery[T shared.Entity] struct {
	entity  *T
	message sdk.Message
}

// StartConsumer decodes messages from reader into bucket. Offsets are
// committed only when the message comes back on confirmed, i.e. after the
// caller has received the entity. Undecodable messages are reported and
// committed straight away so they are not redelivered.
func StartConsumer[T shared.Entity](
	ctx context.Context,
	wg *sync.WaitGroup,
	reader messageReader,
	bucket chan<- *delivery[T],
	errs chan<- error,
	confirmed <-chan sdk.Message,
) {
	defer wg.Done()
	defer close(bucket)

	// Confirm messages. Runs until confirmed is closed so that entities
	// received right before shutdown are still committed.
	wg.Add(1)
	go func() {
		defer wg.Done()

		commitCtx := context.WithoutCancel(ctx)
		for data := range confirmed {
			if err := reader.CommitMessages(commitCtx, data); err != nil {
				errs <- fmt.Errorf("commit offset %d: %w", data.Offset, err)
			}
		}
	}()

	for {
		data, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return
			}
			errs <- err
			continue
		}

		message, err := decode[T](data.Value)
		if err != nil {
			errs <- fmt.Errorf("decode message at offset %d: %w", data.Offset, err)
			if err := reader.CommitMessages(ctx, data); err != nil {
				errs <- fmt.Errorf("commit offset %d: %w", data.Offset, err)
			}
			continue
		}

		select {
		case <-ctx.Done():
			return
		case bucket <- &delivery[T]{entity: message, message: data}:
		}
	}
}

func decode[T shared.Entity](value []byte) (*T, error) {
	model := new(models.Message)
	if err := json.Unmarshal(value, model); err != nil {
		return nil, err
	}
	return mapper.FromMessage[T](model)
}

// KafkaConsumer implements repositories.MessageQueueConsumer on top of
// StartConsumer.
type KafkaConsumer[T shared.Entity] struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     *sync.WaitGroup
	logger *zap.Logger

	reader messageReader

	toConsume     chan T
	bucket        chan *delivery[T]
	confirmations chan sdk.Message
	errors        chan error
	logged        chan struct{}

	closeOnce sync.Once
}

// NewKafkaConsumer validates params and starts a consumer for the topic.
func NewKafkaConsumer[T shared.Entity](params KafkaMessageQueueParams, logger *zap.Logger) (*KafkaConsumer[T], error) {
	if err := ValidateKafkaParams(params); err != nil {
		return nil, err
	}
	params = withDefaults(params)

	reader := sdk.NewReader(sdk.ReaderConfig{
		Brokers: params.Brokers,
		Topic:   params.Topic,
		GroupID: params.GroupID,
	})

	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("kafka consumer initialized", zap.Any("params", params.Get()))

	return newKafkaConsumer[T](reader, params.ToConsumeBufSize, logger), nil
}

func newKafkaConsumer[T shared.Entity](reader messageReader, bufSize int, logger *zap.Logger) *KafkaConsumer[T] {
	ctx, cancel := context.WithCancel(context.Background())

	c := &KafkaConsumer[T]{
		ctx:       ctx,
		cancel:    cancel,
		wg:        &sync.WaitGroup{},
		logger:    logger,
		reader:    reader,
		// Unbuffered: a completed send means the caller has the entity.
		toConsume:     make(chan T),
		bucket:        make(chan *delivery[T], bufSize),
		confirmations: make(chan sdk.Message, bufSize),
		errors:        make(chan error, 16),
		logged:        make(chan struct{}),
	}

	c.startWorkers()
	return c
}

func (c *KafkaConsumer[T]) startWorkers() {
	go logErrors(c.logger, "consumer", c.errors, c.logged)

	c.wg.Add(1)
	go StartConsumer[T](c.ctx, c.wg, c.reader, c.bucket, c.errors, c.confirmations)

	// Bridge bucket -> toConsume, confirming every entity the caller took.
	// Entities still in bucket at shutdown stay uncommitted and are
	// redelivered.
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer close(c.confirmations)
		defer close(c.toConsume)

		for d := range c.bucket {
			select {
			case <-c.ctx.Done():
				return
			case c.toConsume <- *d.entity:
				c.confirmations <- d.message
			}
		}
	}()
}

// ToConsumeBuffered exposes the consumer channel of entities. Receiving an
// entity acknowledges it. The channel is closed after Close.
func (c *KafkaConsumer[T]) ToConsumeBuffered() <-chan T {
	return c.toConsume
}

// Close stops the workers and closes the reader.
func (c *KafkaConsumer[T]) Close() {
	c.closeOnce.Do(func() {
		c.cancel()
		c.wg.Wait()

		close(c.errors)
		<-c.logged

		if err := c.reader.Close(); err != nil {
			c.logger.Warn("close kafka reader", zap.Error(err))
		}
	})
}

var _ domainrepos.MessageQueueConsumer[shared.Entity] = (*KafkaConsumer[shared.Entity])(nil)
