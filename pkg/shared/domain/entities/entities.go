package entities

// Entity is a minimal marker interface used as a generic constraint
// for records that travel through the message queue.
type Entity interface{}
