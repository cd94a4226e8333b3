package metrics

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

const collectInterval = 5 * time.Second

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_bytes",
			Help: "System memory usage in bytes",
		},
	)

	ApplicationMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_memory_usage_bytes",
			Help: "Application memory usage in bytes (Go heap allocation)",
		},
	)

	ApplicationResidentMemory = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "application_resident_memory_bytes",
			Help: "Resident set size of the service process",
		},
	)
)

// StartSystemMetricsCollector снимает метрики хоста и процесса, пока не
// отменён ctx.
func StartSystemMetricsCollector(ctx context.Context) {
	self, err := process.NewProcess(int32(os.Getpid())) //nolint:gosec // pid помещается в int32
	if err != nil {
		self = nil
	}

	go func() {
		ticker := time.NewTicker(collectInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectSystemMetrics(ctx, self)
			}
		}
	}()
}

func collectSystemMetrics(ctx context.Context, self *process.Process) {
	cpuPercent, err := cpu.PercentWithContext(ctx, time.Second, false)
	if err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationMemoryUsage.Set(float64(m.Alloc))

	if self != nil {
		if info, err := self.MemoryInfoWithContext(ctx); err == nil {
			ApplicationResidentMemory.Set(float64(info.RSS))
		}
	}
}
