// Command calendar parses, formats and computes with ISO-8601 calendar values.
//
// Usage:
//
//	calendar parse TEXT
//	calendar plus VALUE PERIOD
//	calendar minus VALUE PERIOD
//	calendar between START END
//	calendar dates START END [STEP]
//	calendar next [-from DATETIME] [-n COUNT] KEY=TRIGGER...
//	calendar offset ID
//	calendar ecma119 DATETIME
//
// A TRIGGER is a cron expression, a period such as P1M, or once:PERIOD.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/reugn/go-calendar/calendar"
	"github.com/reugn/go-calendar/logger"
	"github.com/reugn/go-calendar/metrics"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:       slog.Level(cfg.level),
		ReplaceAttr: logger.ReplaceLevelAttr,
	})
	logger.SetDefault(logger.NewSlogLogger(context.Background(), slog.New(handler)))

	registry := prometheus.NewRegistry()
	app := newApp(cfg, os.Stdout, metrics.New(registry))

	err = app.run(os.Args[1:])
	if cfg.metrics {
		writeMetrics(registry)
	}
	if err != nil {
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func writeMetrics(registry *prometheus.Registry) {
	families, err := registry.Gather()
	if err != nil {
		logger.Warn("Failed to gather metrics", "error", err)
		return
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(os.Stderr, family); err != nil {
			logger.Warn("Failed to write metrics", "error", err)
			return
		}
	}
}

// currentTime returns the current time in the configured default offset.
func (a *app) currentTime() (calendar.OffsetDateTime, error) {
	odt, err := calendar.OffsetDateTimeOfTime(a.now())
	if err != nil {
		return calendar.OffsetDateTime{}, err
	}
	return odt.WithOffsetSameInstant(a.cfg.offset)
}
