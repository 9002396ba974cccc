package mapper

import (
	"crypto/sha256"
	"errors"

	json "github.com/goccy/go-json"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/whiteelite/solid/internal/infrastructure/messaging/kafka/repositories/models"
	shared "github.com/whiteelite/solid/pkg/shared/domain/entities"
)

var ErrHashMismatch = errors.New("message hash does not match content")

func ToMessage[T shared.Entity](entity *T) (*models.Message, error) {
	serialized, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}

	return &models.Message{
		ID:      uuid.New(),
		Content: string(serialized),
		Hash:    Hash(serialized),
	}, nil
}

func FromMessage[T shared.Entity](message *models.Message) (*T, error) {
	if message.Hash != "" && message.Hash != Hash([]byte(message.Content)) {
		return nil, ErrHashMismatch
	}

	entity := new(T)
	if err := json.Unmarshal([]byte(message.Content), entity); err != nil {
		return nil, err
	}

	return entity, nil
}

// Hash returns the base58 encoded SHA-256 digest of content.
func Hash(content []byte) string {
	sum := sha256.Sum256(content)
	return base58.Encode(sum[:])
}
