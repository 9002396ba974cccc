package repository

import (
	"context"
	"fmt"
	"sync"

	json "github.com/goccy/go-json"

	sdk "github.com/segmentio/kafka-go"
	domainrepos "github.com/whiteelite/solid/internal/domain/repositories"
	mapper "github.com/whiteelite/solid/internal/infrastructure/messaging/kafka/repositories/mapper"
	shared "github.com/whiteelite/solid/pkg/shared/domain/entities"
	"go.uber.org/zap"
)

// StartProducer writes every entity from bucket to the topic until bucket
// is closed or ctx is done.
func StartProducer[T shared.Entity](
	ctx context.Context,
	wg *sync.WaitGroup,
	writer messageWriter,
	bucket <-chan *T,
	errors chan<- error,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case request, ok := <-bucket:
			if !ok {
				return
			}

			model, err := mapper.ToMessage(request)
			if err != nil {
				errors <- err
				continue
			}

			serialized, err := json.Marshal(model)
			if err != nil {
				errors <- err
				continue
			}

			err = writer.WriteMessages(ctx, sdk.Message{
				Key:   []byte(model.Hash),
				Value: serialized,
			})
			if err != nil {
				errors <- fmt.Errorf("write message %s: %w", model.ID, err)
			}
		}
	}
}

// KafkaProducer implements repositories.MessageQueueProducer on top of
// StartProducer.
type KafkaProducer[T shared.Entity] struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     *sync.WaitGroup
	logger *zap.Logger

	writer messageWriter

	toProduce chan T
	bucket    chan *T
	errors    chan error
	logged    chan struct{}

	// mu guards closed and the close of toProduce against Produce.
	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
}

// NewKafkaProducer validates params and starts a producer for the topic.
func NewKafkaProducer[T shared.Entity](params KafkaMessageQueueParams, logger *zap.Logger) (*KafkaProducer[T], error) {
	if err := ValidateKafkaParams(params); err != nil {
		return nil, err
	}
	params = withDefaults(params)

	writer := &sdk.Writer{
		Addr:         sdk.TCP(params.Brokers...),
		Topic:        params.Topic,
		RequiredAcks: sdk.RequireAll,
		Balancer:     &sdk.LeastBytes{},
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("kafka producer initialized", zap.Any("params", params.Get()))

	return newKafkaProducer[T](writer, params.ToProduceBufSize, logger), nil
}

func newKafkaProducer[T shared.Entity](writer messageWriter, bufSize int, logger *zap.Logger) *KafkaProducer[T] {
	ctx, cancel := context.WithCancel(context.Background())

	p := &KafkaProducer[T]{
		ctx:       ctx,
		cancel:    cancel,
		wg:        &sync.WaitGroup{},
		logger:    logger,
		writer:    writer,
		toProduce: make(chan T, bufSize),
		bucket:    make(chan *T, bufSize),
		errors:    make(chan error, 16),
		logged:    make(chan struct{}),
	}

	p.startWorkers()
	return p
}

func (p *KafkaProducer[T]) startWorkers() {
	go logErrors(p.logger, "producer", p.errors, p.logged)

	p.wg.Add(1)
	go StartProducer[T](p.ctx, p.wg, p.writer, p.bucket, p.errors)

	// Bridge external toProduce -> bucket (*T)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer close(p.bucket)

		for e := range p.toProduce {
			entity := e
			p.bucket <- &entity
		}
	}()
}

// Produce enqueues entity for writing. It blocks while the buffer is full
// and returns false once the producer is closed.
func (p *KafkaProducer[T]) Produce(entity T) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return false
	}
	p.toProduce <- entity
	return true
}

// Close flushes buffered entities, stops the workers and closes the writer.
func (p *KafkaProducer[T]) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.toProduce)
		p.mu.Unlock()

		p.wg.Wait()

		close(p.errors)
		<-p.logged

		if err := p.writer.Close(); err != nil {
			p.logger.Warn("close kafka writer", zap.Error(err))
		}
		p.cancel()
	})
}

var _ domainrepos.MessageQueueProducer[shared.Entity] = (*KafkaProducer[shared.Entity])(nil)
