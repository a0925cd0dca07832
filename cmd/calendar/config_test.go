package main

import (
	"testing"

	"github.com/reugn/go-calendar/calendar"
	"github.com/reugn/go-calendar/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("CALENDAR_LOG_LEVEL", "trace")
	t.Setenv("CALENDAR_DEFAULT_OFFSET", "-05:00")
	t.Setenv("CALENDAR_DATES_LIMIT", "7")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, logger.LevelTrace, cfg.level)
	assert.Equal(t, -5*3600, cfg.offset.TotalSeconds())
	assert.Equal(t, 7, cfg.limit)
	assert.False(t, cfg.metrics)
}

func TestConfig_Settings(t *testing.T) {
	t.Parallel()

	cfg, err := Config{LogLevel: "info", DefaultOffset: "Z", DatesLimit: 1000}.settings()
	require.NoError(t, err)
	assert.Equal(t, calendar.UTC, cfg.offset)
	assert.Equal(t, logger.LevelInfo, cfg.level)

	_, err = Config{LogLevel: "loud", DefaultOffset: "Z", DatesLimit: 1}.settings()
	assert.Error(t, err)

	_, err = Config{LogLevel: "info", DefaultOffset: "+25:00", DatesLimit: 1}.settings()
	assert.ErrorIs(t, err, calendar.ErrParse)

	_, err = Config{LogLevel: "info", DefaultOffset: "Z", DatesLimit: 0}.settings()
	assert.Error(t, err)
}
