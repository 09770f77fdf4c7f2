package main

import "time"

type Config struct {
	BufferSize                int           `env:"BUFFER_SIZE,required=true"`
	ConnectionBufferSize      int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	ModerationCharReplacement rune          `env:"MODERATION_CHARACTER_REPLACEMENT,required=true"`
	HistoryLimit              int           `env:"HISTORY_LIMIT,default=50"`
	SinkTimeout               time.Duration `env:"SINK_TIMEOUT,required=true"`
	StorageTimeout            time.Duration `env:"STORAGE_TIMEOUT,required=true"`
	RestartInterval           time.Duration `env:"RESTART_INTERVAL,required=true"`
	GCInterval                time.Duration `env:"GC_INTERVAL,default=5m"`
	TelemetryInterval         time.Duration `env:"TELEMETRY_INTERVAL,default=1m"`
	BadgerFilepath            string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel                  string        `env:"LOG_LEVEL,required=true"`
	Host                      string        `env:"HOST,default=localhost"`
	Port                      int           `env:"PORT,default=8080"`
}
