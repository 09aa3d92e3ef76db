package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Status is the probe outcome for one dependency.
type Status string

const (
	StatusOperational Status = "operational"
	StatusDown        Status = "down"
)

// ProbeFunc checks one dependency; a nil return means the dependency is up.
type ProbeFunc func(ctx context.Context) error

// Prober runs real dependency checks for the health endpoint. Probes run
// concurrently under a shared timeout so a slow dependency cannot stall the
// whole report.
type Prober struct {
	timeout time.Duration
	probes  map[string]ProbeFunc
}

// NewProber creates a prober with the given per-report timeout.
func NewProber(timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Prober{
		timeout: timeout,
		probes:  make(map[string]ProbeFunc),
	}
}

// Register adds a named dependency probe. Registration happens at startup,
// before the prober is shared across requests.
func (p *Prober) Register(name string, fn ProbeFunc) {
	p.probes[name] = fn
}

// Probe runs every registered check and returns the per-dependency status.
func (p *Prober) Probe(ctx context.Context) map[string]Status {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	results := make(map[string]Status, len(p.probes))
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for name, fn := range p.probes {
		name, fn := name, fn
		g.Go(func() error {
			status := StatusOperational
			if err := fn(ctx); err != nil {
				status = StatusDown
			}
			mu.Lock()
			results[name] = status
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Healthy reports whether every probed dependency is operational.
func Healthy(results map[string]Status) bool {
	for _, status := range results {
		if status != StatusOperational {
			return false
		}
	}
	return true
}
