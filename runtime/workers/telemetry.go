package workers

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/process"

	"sockchat/contract"
	"sockchat/observability"
)

var _ contract.Worker = (*Telemetry)(nil)

// Telemetry logs engine counters and process stats on an interval, giving
// operators a heartbeat without an external metrics stack.
type Telemetry struct {
	log      *slog.Logger
	metrics  *observability.Metrics
	interval time.Duration
	proc     *process.Process
}

func NewTelemetry(log *slog.Logger, metrics *observability.Metrics, interval time.Duration) (*Telemetry, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &Telemetry{log: log, metrics: metrics, interval: interval, proc: proc}, nil
}

func (w *Telemetry) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping telemetry")
			return ctx.Err()
		case <-ticker.C:
			w.report()
		}
	}
}

func (w *Telemetry) report() {
	snapshot := w.metrics.GetLatest()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	attrs := []any{
		"registrations", snapshot.Registrations,
		"disconnects", snapshot.Disconnects,
		"public_routed", snapshot.PublicRouted,
		"private_routed", snapshot.PrivateRouted,
		"broadcasts", snapshot.Broadcasts,
		"storage_failures", snapshot.StorageFailures,
		"alloc_mb", memStats.Alloc / 1024 / 1024,
		"num_gc", memStats.NumGC,
		"goroutines", runtime.NumGoroutine(),
	}

	// Process-level stats are best-effort; some platforms refuse them.
	if memInfo, err := w.proc.MemoryInfo(); err == nil {
		attrs = append(attrs, "rss_mb", memInfo.RSS/1024/1024)
	}
	if cpu, err := w.proc.CPUPercent(); err == nil {
		attrs = append(attrs, "cpu_percent", cpu)
	}

	w.log.Info("telemetry", attrs...)
}
