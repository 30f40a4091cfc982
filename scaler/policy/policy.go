// Package policy decides, from cluster telemetry and the time of day, whether a cluster
// should grow, shrink or be shut down.
package policy

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/twitter/taskscaler/cloud/cluster"
	"github.com/twitter/taskscaler/common/stats"
)

// Cluster metrics read by the policy.
const (
	MemoryAllocatedMB = "MemoryAllocatedMB"
	MemoryTotalMB     = "MemoryTotalMB"
	ContainerPending  = "ContainerPending"
)

const (
	MemoryWindow  = time.Hour
	PendingWindow = 5 * time.Minute
)

// Config holds the time of day parameters. Hours are interpreted in Location.
type Config struct {
	OfficeHoursStart int
	OfficeHoursEnd   int
	ShutdownHour     int
	Location         *time.Location
}

type Policy struct {
	signals cluster.Signals
	cfg     Config
	now     func() time.Time
	stat    stats.StatsReceiver
}

// NewPolicy creates a Policy. A nil now uses the wall clock, a nil Location uses UTC.
func NewPolicy(signals cluster.Signals, cfg Config, now func() time.Time, stat stats.StatsReceiver) *Policy {
	if now == nil {
		now = time.Now
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if stat == nil {
		stat = stats.NilStatsReceiver()
	}
	return &Policy{signals: signals, cfg: cfg, now: now, stat: stat}
}

// ShouldScaleUp is true when containers have been waiting in the last 5 minutes.
func (p *Policy) ShouldScaleUp(ctx context.Context) (bool, error) {
	pending, err := p.signals.MaxOverWindow(ctx, ContainerPending, PendingWindow)
	if err != nil {
		return false, err
	}
	p.stat.GaugeFloat(stats.PolicyPendingContainersGauge).Update(pending)
	if pending > 0 {
		log.Infof("%v containers are waiting, should scale up.", pending)
		return true, nil
	}
	return false, nil
}

// ShouldScaleDown is true when the hourly memory used ratio is at or below threshold,
// unless it is office hours.
func (p *Policy) ShouldScaleDown(ctx context.Context, threshold float64) (bool, error) {
	allocated, err := p.signals.AverageOverWindow(ctx, MemoryAllocatedMB, MemoryWindow)
	if err != nil {
		return false, err
	}
	total, err := p.signals.AverageOverWindow(ctx, MemoryTotalMB, MemoryWindow)
	if err != nil {
		return false, err
	}
	if total == 0 {
		return false, &cluster.NoDataError{Metric: MemoryTotalMB, Statistic: "Average", Window: MemoryWindow}
	}

	ratio := allocated / total
	p.stat.GaugeFloat(stats.PolicyMemoryUsedRatioGauge).Update(ratio)
	if ratio > threshold {
		return false, nil
	}
	if p.InOfficeHours() {
		p.stat.Counter(stats.PolicyOfficeHoursSuppressedCounter).Inc(1)
		log.Infof("Memory used ratio %v is below threshold of %v, but won't scale down due to office hours.", ratio, threshold)
		return false, nil
	}
	log.Infof("Memory used ratio %v is below threshold of %v, should scale down.", ratio, threshold)
	return true, nil
}

// InOfficeHours evaluates office hours at the current time in the reference zone.
func (p *Policy) InOfficeHours() bool {
	return IsInOfficeHours(Normalize(p.now(), p.cfg.Location), p.cfg.OfficeHoursStart, p.cfg.OfficeHoursEnd)
}

// IsAfterShutdownTime evaluates the shutdown hour at the current time.
func (p *Policy) IsAfterShutdownTime() bool {
	return IsAfterShutdownTime(p.now(), p.cfg.ShutdownHour, p.cfg.Location)
}

func (p *Policy) Now() time.Time {
	return Normalize(p.now(), p.cfg.Location)
}
