package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"agenda/config"
	"agenda/shared/constant"
	"agenda/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	original := log.Logger
	defer func() { log.Logger = original }()

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	original := log.Logger
	defer func() { log.Logger = original }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("slot lookup failed"))

	assert.Contains(t, buf.String(), "slot lookup failed")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestSetLogLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "info", level: "info", want: zerolog.InfoLevel},
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "empty falls back to trace", level: "", want: zerolog.TraceLevel},
		{name: "unknown falls back to trace", level: "loud", want: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestUseJSONOutput(t *testing.T) {
	original := log.Logger
	defer func() { log.Logger = original }()

	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.App.Name = "agenda"

	cfg.Server.Env = constant.ServerEnvDevelopment
	logger.UseJSONOutput(cfg, &buf)
	log.Info().Msg("ignored")
	assert.Empty(t, buf.String())

	cfg.Server.Env = constant.ServerEnvProduction
	logger.UseJSONOutput(cfg, &buf)
	log.Info().Msg("booked")
	assert.Contains(t, buf.String(), `"app":"agenda"`)
	assert.Contains(t, buf.String(), `"message":"booked"`)
}
