package limiter

import (
	"runtime"

	"github.com/aiwolfie/waybackwolf/internal/config"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// PoolSizes holds the effective concurrency ceilings for one run. They are
// computed once at startup; no resizing happens mid-run.
type PoolSizes struct {
	Probe   int
	Archive int
}

// ComputePoolSizes reads system capacity and memory pressure and derives the
// effective pool sizes. The probe pool gets half the logical CPUs, the
// archive pool a quarter; both divisors double when memory usage exceeds the
// configured threshold. The configured maxima always cap the result.
func ComputePoolSizes(cfg config.LimiterConfig, logger zerolog.Logger) PoolSizes {
	cpuCount := logicalCPUCount()
	memPercent := memoryUsedFraction(logger)

	sizes := derivePoolSizes(cfg, cpuCount, memPercent)

	logger.Info().
		Int("cpu_count", cpuCount).
		Float64("memory_used_percent", memPercent*100).
		Int("probe_workers", sizes.Probe).
		Int("archive_workers", sizes.Archive).
		Msg("Adjusted worker pools based on system resources")

	return sizes
}

// derivePoolSizes is the pure sizing function, separated from the gopsutil
// reads so it can be tested directly.
func derivePoolSizes(cfg config.LimiterConfig, cpuCount int, memUsedFraction float64) PoolSizes {
	if cpuCount < 1 {
		cpuCount = 1
	}

	probeDivisor, archiveDivisor := 2, 4
	if memUsedFraction > cfg.MemoryThreshold {
		probeDivisor, archiveDivisor = 4, 8
	}

	return PoolSizes{
		Probe:   capped(cfg.MaxProbeWorkers, cpuCount/probeDivisor),
		Archive: capped(cfg.MaxArchiveWorkers, cpuCount/archiveDivisor),
	}
}

func capped(configuredMax, derived int) int {
	if derived < 1 {
		derived = 1
	}
	if configuredMax > 0 && derived > configuredMax {
		return configuredMax
	}
	return derived
}

func logicalCPUCount() int {
	count, err := cpu.Counts(true)
	if err != nil || count < 1 {
		return runtime.NumCPU()
	}
	return count
}

func memoryUsedFraction(logger zerolog.Logger) float64 {
	vmStat, err := mem.VirtualMemory()
	if err != nil {
		logger.Warn().Err(err).Msg("Could not read system memory stats, assuming no pressure")
		return 0
	}
	return vmStat.UsedPercent / 100.0
}
