// Package config resolves where nustudy keeps its data and how it logs.
package config

// Config holds all application configuration.
type Config struct {
	Data DataConfig `mapstructure:"data" toml:"data" validate:"required"`
	Log  LogConfig  `mapstructure:"log" toml:"log" validate:"required"`
}

// DataConfig points at the line-oriented record file.
type DataConfig struct {
	Path string `mapstructure:"path" toml:"path" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" toml:"level" validate:"required,oneof=debug info warn error"`
}
