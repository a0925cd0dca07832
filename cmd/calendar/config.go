package main

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/reugn/go-calendar/calendar"
	"github.com/reugn/go-calendar/logger"
)

// Config holds the environment configuration of the tool.
type Config struct {
	LogLevel      string `env:"CALENDAR_LOG_LEVEL" env-default:"info" env-description:"Log level: trace, debug, info, warn, error or off"`
	DefaultOffset string `env:"CALENDAR_DEFAULT_OFFSET" env-default:"Z" env-description:"Offset applied to date-times given without one"`
	DatesLimit    int    `env:"CALENDAR_DATES_LIMIT" env-default:"1000" env-description:"Maximum number of dates or occurrences printed by a command"`
	Metrics       bool   `env:"CALENDAR_METRICS" env-default:"false" env-description:"Write the collected metrics to stderr on exit"`
}

// settings is the validated form of Config.
type settings struct {
	level   logger.Level
	offset  calendar.ZoneOffset
	limit   int
	metrics bool
}

func loadConfig() (settings, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return settings{}, fmt.Errorf("error parsing configuration from environment variables: %w", err)
	}
	return cfg.settings()
}

func (cfg Config) settings() (settings, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return settings{}, err
	}
	offset, err := calendar.ParseOffset(cfg.DefaultOffset)
	if err != nil {
		return settings{}, fmt.Errorf("CALENDAR_DEFAULT_OFFSET: %w", err)
	}
	if cfg.DatesLimit <= 0 {
		return settings{}, fmt.Errorf("CALENDAR_DATES_LIMIT must be positive: %d", cfg.DatesLimit)
	}
	return settings{
		level:   level,
		offset:  offset,
		limit:   cfg.DatesLimit,
		metrics: cfg.Metrics,
	}, nil
}

// usage returns the description of the environment variables.
func usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
