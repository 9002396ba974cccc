package srp

import "github.com/whiteelite/solid/internal/domain/entities"

// UserRecord mixes data, persistence and notification in one type.
// DatabaseService and EmailService replace it.
type UserRecord struct {
	Name  entities.Name
	Email entities.Email
}

func NewUserRecord(name, email string) UserRecord {
	return UserRecord{Name: entities.Name(name), Email: entities.Email(email)}
}

func (u UserRecord) SaveToDatabase() {}

func (u UserRecord) SendWelcomeEmail() {}
