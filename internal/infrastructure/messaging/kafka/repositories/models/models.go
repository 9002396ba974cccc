package models

import "github.com/google/uuid"

// Message is the envelope written to the topic for every entity.
type Message struct {
	ID      uuid.UUID `json:"id"`
	Content string    `json:"content"`
	Hash    string    `json:"hash"`
}
