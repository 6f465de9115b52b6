package scaler

import (
	"context"
	"log/slog"

	"github.com/skillcoder/dockerscaler-controller/internal/infra/metrics"
)

// cpuPercent implements the standard two-sample delta: the difference
// of the container's cumulative CPU time over the difference of total
// system CPU time, scaled by the online CPU count. Non-positive deltas
// report 0.
func cpuPercent(prevCPUTotal, prevSystemCPU uint64, smp UsageSample) float64 {
	if smp.CPUTotal <= prevCPUTotal || smp.SystemCPU <= prevSystemCPU {
		return 0
	}

	cpuDelta := float64(smp.CPUTotal - prevCPUTotal)
	systemDelta := float64(smp.SystemCPU - prevSystemCPU)

	cpus := smp.OnlineCPUs
	if cpus <= 0 {
		cpus = 1
	}

	return cpuDelta / systemDelta * float64(cpus) * maxPercent
}

// memPercent is usage over limit, single sample.
func memPercent(smp UsageSample) float64 {
	if smp.MemLimit == 0 {
		return 0
	}

	return float64(smp.MemUsage) / float64(smp.MemLimit) * maxPercent
}

// sampleAll fetches one usage sample per tracked container and updates
// the registry metrics fields in place. A failed query keeps the
// previous values; a container that fails maxSampleFailures times in a
// row is dropped as unreachable. Sampling never creates records.
func (s *Service) sampleAll(ctx context.Context, logger *slog.Logger) {
	for _, id := range s.reg.ids() {
		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "context done, stopping sampling")

			return
		default:
		}

		smp, err := s.runtime.ContainerStatsQuery(ctx, id)
		if err != nil {
			metrics.RecordSampleFailure()

			dropped := s.reg.recordSampleFailure(id)
			if dropped {
				logger.WarnContext(ctx, "container unreachable, dropped from registry",
					"container", id,
					"failures", maxSampleFailures,
				)

				continue
			}

			logger.WarnContext(ctx, "stats query failed, keeping previous values",
				"container", id,
				"reason", err,
			)

			continue
		}

		s.reg.applySample(id, *smp)
	}
}
