package scaler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type cpuPercentCase struct {
	name          string
	prevCPUTotal  uint64
	prevSystemCPU uint64
	sample        UsageSample
	want          float64
}

func Test_cpuPercent(t *testing.T) {
	t.Parallel()

	tests := []cpuPercentCase{
		{
			name:          "half of one cpu",
			prevCPUTotal:  1000,
			prevSystemCPU: 1000,
			sample:        UsageSample{CPUTotal: 1500, SystemCPU: 2000, OnlineCPUs: 1},
			want:          50,
		},
		{
			name:          "scaled by online cpus",
			prevCPUTotal:  0,
			prevSystemCPU: 0,
			sample:        UsageSample{CPUTotal: 500, SystemCPU: 2000, OnlineCPUs: 4},
			want:          100,
		},
		{
			name:          "zero online cpus treated as one",
			prevCPUTotal:  0,
			prevSystemCPU: 0,
			sample:        UsageSample{CPUTotal: 500, SystemCPU: 1000, OnlineCPUs: 0},
			want:          50,
		},
		{
			name:          "cpu counter went backwards reports zero",
			prevCPUTotal:  2000,
			prevSystemCPU: 1000,
			sample:        UsageSample{CPUTotal: 1500, SystemCPU: 2000, OnlineCPUs: 1},
			want:          0,
		},
		{
			name:          "system counter unchanged reports zero",
			prevCPUTotal:  1000,
			prevSystemCPU: 2000,
			sample:        UsageSample{CPUTotal: 1500, SystemCPU: 2000, OnlineCPUs: 1},
			want:          0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := cpuPercent(tt.prevCPUTotal, tt.prevSystemCPU, tt.sample)
			require.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func Test_memPercent(t *testing.T) {
	t.Parallel()

	t.Run("usage over limit", func(t *testing.T) {
		t.Parallel()

		got := memPercent(UsageSample{MemUsage: 768, MemLimit: 1024})
		require.InDelta(t, 75.0, got, 0.001)
	})

	t.Run("zero limit reports zero", func(t *testing.T) {
		t.Parallel()

		got := memPercent(UsageSample{MemUsage: 768, MemLimit: 0})
		require.InDelta(t, 0.0, got, 0.001)
	})
}
