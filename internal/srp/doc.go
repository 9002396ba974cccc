// Package srp demonstrates the single responsibility principle: a record
// that both persists itself and sends mail is split into a DatabaseService
// and an EmailService, each with one reason to change.
package srp
