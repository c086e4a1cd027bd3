package utils

import (
	"context"
	"sync"
	"time"
)

// Pinger is anything that can report its reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus represents current status of the local and remote stores.
type HealthStatus struct {
	Local     bool      `json:"local"`
	Remote    bool      `json:"remote"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth pings both stores once and stores the result.
func CheckHealth(ctx context.Context, local, remote Pinger) HealthStatus {
	status := HealthStatus{
		Local:     ping(ctx, local),
		Remote:    ping(ctx, remote),
		CheckedAt: time.Now(),
	}
	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

func ping(ctx context.Context, p Pinger) bool {
	if p == nil {
		return true
	}
	ctx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	return p.Ping(ctx) == nil
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, local, remote Pinger) {
	CheckHealth(ctx, local, remote)
	go func() {
		ticker := time.NewTicker(HealthCheckInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, local, remote)
			}
		}
	}()
}
