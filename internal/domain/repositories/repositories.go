package repositories

import (
	shared "github.com/whiteelite/solid/pkg/shared/domain/entities"
)

type MessageQueueParams interface {
	Get() map[string]any
}

type MessageQueueConsumer[T shared.Entity] interface {
	ToConsumeBuffered() <-chan T
	Close()
}

type MessageQueueProducer[T shared.Entity] interface {
	// Produce enqueues entity and reports false once the producer is closed.
	Produce(entity T) bool
	Close()
}
