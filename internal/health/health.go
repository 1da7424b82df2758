package health

import (
	"context"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const (
	StatusHealthy       = "healthy"
	StatusUnhealthy     = "unhealthy"
	StatusNotConfigured = "not_configured"
)

// Pinger is satisfied by *pgxpool.Pool and *cache.Denylist. Pass a nil
// interface, not a nil pointer, for a dependency that is switched off.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthChecker struct {
	db      Pinger
	cache   Pinger
	started time.Time
}

type HealthStatus struct {
	Status   string           `json:"status"`
	Database DependencyHealth `json:"database"`
	Cache    DependencyHealth `json:"cache"`
}

type DependencyHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

type SystemHealth struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryTotalMB uint64  `json:"memory_total_mb"`
	Goroutines    int     `json:"goroutines"`
	UptimeSeconds int64   `json:"uptime_seconds"`
}

type DetailedStatus struct {
	HealthStatus
	System SystemHealth `json:"system"`
}

// NewHealthChecker takes the database pool and the cache; either may be nil
// (the demo server has no database).
func NewHealthChecker(db Pinger, cache Pinger) *HealthChecker {
	return &HealthChecker{db: db, cache: cache, started: time.Now()}
}

// CheckBasic is unhealthy only when the database fails. The cache is optional.
func (h *HealthChecker) CheckBasic(ctx context.Context) HealthStatus {
	dbHealth := check(ctx, h.db)
	status := StatusHealthy
	if dbHealth.Status == StatusUnhealthy {
		status = StatusUnhealthy
	}

	return HealthStatus{
		Status:   status,
		Database: dbHealth,
		Cache:    check(ctx, h.cache),
	}
}

func (h *HealthChecker) CheckDetailed(ctx context.Context) DetailedStatus {
	return DetailedStatus{
		HealthStatus: h.CheckBasic(ctx),
		System:       h.system(ctx),
	}
}

func check(ctx context.Context, p Pinger) DependencyHealth {
	if p == nil {
		return DependencyHealth{Status: StatusNotConfigured}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	err := p.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return DependencyHealth{Status: StatusUnhealthy, ResponseTime: responseTime}
	}
	return DependencyHealth{Status: StatusHealthy, ResponseTime: responseTime}
}

func (h *HealthChecker) system(ctx context.Context) SystemHealth {
	stats := SystemHealth{
		Goroutines:    runtime.NumGoroutine(),
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
	}
	// An interval of 0 compares against the previous call instead of blocking.
	if percents, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(percents) > 0 {
		stats.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		stats.MemoryPercent = vm.UsedPercent
		stats.MemoryTotalMB = vm.Total / 1024 / 1024
	}
	return stats
}
