// Package config loads runner settings from an optional YAML file and
// SOLID_ prefixed environment variables.
package config

// Config holds all runner configuration.
type Config struct {
	Log   LogConfig   `mapstructure:"log" validate:"required"`
	Kafka KafkaConfig `mapstructure:"kafka"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// KafkaConfig configures the welcome-email transport. It is disabled when
// no brokers are set.
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers" validate:"omitempty,dive,hostname_port"`
	Topic   string   `mapstructure:"topic" validate:"required"`
	GroupID string   `mapstructure:"group_id"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}
