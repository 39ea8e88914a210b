package utils

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// HealthProbe reports whether a dependency is reachable.
type HealthProbe func(ctx context.Context) error

// HealthStatus represents current status of backing services.
type HealthStatus struct {
	Checks    map[string]bool `json:"checks"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	checks := make(map[string]bool, len(currentHealth.Checks))
	for k, v := range currentHealth.Checks {
		checks[k] = v
	}
	return HealthStatus{Checks: checks, CheckedAt: currentHealth.CheckedAt}
}

// RunHealthChecks runs every probe once and stores the result.
func RunHealthChecks(ctx context.Context, probes map[string]HealthProbe) HealthStatus {
	checks := make(map[string]bool, len(probes))
	for name, probe := range probes {
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := probe(pctx)
		cancel()
		if err != nil {
			GetLogger().Warn("health probe failed", zap.String("probe", name), zap.Error(err))
		}
		checks[name] = err == nil
	}

	status := HealthStatus{Checks: checks, CheckedAt: time.Now()}
	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is cancelled.
func StartHealthMonitor(ctx context.Context, interval time.Duration, probes map[string]HealthProbe) {
	RunHealthChecks(ctx, probes)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				RunHealthChecks(ctx, probes)
			}
		}
	}()
}
