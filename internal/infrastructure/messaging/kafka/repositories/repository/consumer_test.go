package repository

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"

	sdk "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whiteelite/solid/internal/domain/entities"
	"github.com/whiteelite/solid/internal/infrastructure/messaging/kafka/repositories/mapper"
	"go.uber.org/zap"
)

func encodeMessage(t *testing.T, offset int64, email entities.WelcomeEmail) sdk.Message {
	t.Helper()

	model, err := mapper.ToMessage(&email)
	require.NoError(t, err)

	value, err := json.Marshal(model)
	require.NoError(t, err)

	return sdk.Message{Offset: offset, Key: []byte(model.Hash), Value: value}
}

func TestKafkaConsumer_DeliversAndCommits(t *testing.T) {
	reader := &fakeReader{queue: []sdk.Message{
		encodeMessage(t, 1, entities.WelcomeEmail{Name: "Ada", Email: "ada@example.com"}),
	}}
	consumer := newKafkaConsumer[entities.WelcomeEmail](reader, 4, zap.NewNop())

	select {
	case got := <-consumer.ToConsumeBuffered():
		assert.Equal(t, entities.Email("ada@example.com"), got.Email)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}

	consumer.Close()

	commits := reader.commits()
	require.Len(t, commits, 1)
	assert.Equal(t, int64(1), commits[0].Offset)
	assert.True(t, reader.closed)

	_, open := <-consumer.ToConsumeBuffered()
	assert.False(t, open)
}

func TestKafkaConsumer_SkipsUndecodableMessages(t *testing.T) {
	reader := &fakeReader{queue: []sdk.Message{
		{Offset: 1, Value: []byte("garbage")},
		encodeMessage(t, 2, entities.WelcomeEmail{Name: "Linus"}),
	}}
	consumer := newKafkaConsumer[entities.WelcomeEmail](reader, 4, zap.NewNop())

	select {
	case got := <-consumer.ToConsumeBuffered():
		assert.Equal(t, entities.Name("Linus"), got.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}

	consumer.Close()

	assert.Len(t, reader.commits(), 2)
}

func TestKafkaConsumer_UnreadMessagesAreNotCommitted(t *testing.T) {
	reader := &fakeReader{queue: []sdk.Message{
		encodeMessage(t, 1, entities.WelcomeEmail{Name: "Ada"}),
		encodeMessage(t, 2, entities.WelcomeEmail{Name: "Linus"}),
		encodeMessage(t, 3, entities.WelcomeEmail{Name: "Grace"}),
	}}
	consumer := newKafkaConsumer[entities.WelcomeEmail](reader, 4, zap.NewNop())

	require.Eventually(t, reader.drained, 2*time.Second, 10*time.Millisecond)
	consumer.Close()

	assert.Empty(t, reader.commits())

	_, open := <-consumer.ToConsumeBuffered()
	assert.False(t, open)
}

func TestKafkaConsumer_CommitsOnlyWhatWasRead(t *testing.T) {
	reader := &fakeReader{queue: []sdk.Message{
		encodeMessage(t, 1, entities.WelcomeEmail{Name: "Ada"}),
		encodeMessage(t, 2, entities.WelcomeEmail{Name: "Linus"}),
	}}
	consumer := newKafkaConsumer[entities.WelcomeEmail](reader, 4, zap.NewNop())

	select {
	case got := <-consumer.ToConsumeBuffered():
		assert.Equal(t, entities.Name("Ada"), got.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}

	require.Eventually(t, reader.drained, 2*time.Second, 10*time.Millisecond)
	consumer.Close()

	commits := reader.commits()
	require.Len(t, commits, 1)
	assert.Equal(t, int64(1), commits[0].Offset)
}
