package burn

import (
	"errors"
	"testing"
)

func TestFrontStats(t *testing.T) {
	p := DefaultParams()
	s, err := FrontStats(p, 60, 84)
	if err != nil {
		t.Fatalf("FrontStats: %v", err)
	}
	if s.Samples != 60*84 {
		t.Fatalf("samples %d", s.Samples)
	}
	if s.Min < 0 || s.Max > p.MaxFront() {
		t.Fatalf("range [%v, %v] outside [0, %v]", s.Min, s.Max, p.MaxFront())
	}
	if !(s.Min <= s.P10 && s.P10 <= s.P50 && s.P50 <= s.P90 && s.P90 <= s.Max) {
		t.Fatalf("quantiles out of order: %+v", s)
	}
	if s.Mean < s.Min || s.Mean > s.Max || s.StdDev <= 0 {
		t.Fatalf("mean %v stddev %v", s.Mean, s.StdDev)
	}
	if !s.Consumes || s.ConsumedAt >= p.MaxProgress {
		t.Fatalf("default tuning should consume the sheet, consumed at %v", s.ConsumedAt)
	}

	if _, err := FrontStats(p, 0, 5); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestCoverageAt(t *testing.T) {
	p := DefaultParams()
	start, err := CoverageAt(p, 30, 42, 0)
	if err != nil {
		t.Fatalf("CoverageAt: %v", err)
	}
	if start[ZoneVoid] != 0 || start[ZoneIntact] < 0.9 {
		t.Fatalf("coverage at start %v", start)
	}
	end, err := CoverageAt(p, 30, 42, p.MaxProgress)
	if err != nil {
		t.Fatalf("CoverageAt: %v", err)
	}
	if end[ZoneVoid] != 1 {
		t.Fatalf("coverage at ceiling %v", end)
	}
}
