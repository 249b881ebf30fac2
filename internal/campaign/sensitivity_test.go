package campaign

import (
	"testing"
	"time"
)

func TestComputeSensitivityGridShape(t *testing.T) {
	start := day(2025, time.November, 1)
	fdvs := DefaultFDVs
	durations := DefaultDurations()

	grid := ComputeSensitivity(10_000, false, 5, 500_000_000,
		fdvs, durations, start, testRules(), CompoundGrowth{Daily: 0.015})

	if len(grid.NetProfit) != len(durations) {
		t.Fatalf("expected %d rows, got %d", len(durations), len(grid.NetProfit))
	}
	for i, row := range grid.NetProfit {
		if len(row) != len(fdvs) {
			t.Fatalf("row %d: expected %d columns, got %d", i, len(fdvs), len(row))
		}
	}
}

func TestComputeSensitivityMonotonicInFDV(t *testing.T) {
	start := day(2025, time.November, 1)
	grid := ComputeSensitivity(10_000, false, 5, 500_000_000,
		DefaultFDVs, DefaultDurations(), start, testRules(), CompoundGrowth{Daily: 0.015})

	for i, row := range grid.NetProfit {
		for j := 1; j < len(row); j++ {
			if row[j] <= row[j-1] {
				t.Fatalf("row %d: net profit not strictly increasing in FDV at column %d", i, j)
			}
		}
	}
}

func TestDefaultDurations(t *testing.T) {
	days := DefaultDurations()
	if days[0] != 15 || days[len(days)-1] != 90 {
		t.Errorf("duration axis spans %d..%d, want 15..90", days[0], days[len(days)-1])
	}
	for i := 1; i < len(days); i++ {
		if days[i]-days[i-1] != 5 {
			t.Fatalf("duration step at %d is not 5", i)
		}
	}
}
