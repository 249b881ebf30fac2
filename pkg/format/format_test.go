package format

import "testing"

func TestUSD(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{999, "$999.00"},
		{10000, "$10,000.00"},
		{28789.12, "$28,789.12"},
		{1234567.89, "$1,234,567.89"},
		{-5000, "-$5,000.00"},
	}
	for _, tt := range tests {
		if got := USD(tt.in); got != tt.want {
			t.Errorf("USD(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUSDCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.5e9, "$1.50B"},
		{500e6, "$500.00M"},
		{28789, "$28.79K"},
		{42.5, "$42.50"},
		{-2e6, "-$2.00M"},
	}
	for _, tt := range tests {
		if got := USDCompact(tt.in); got != tt.want {
			t.Errorf("USDCompact(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPoints(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{781_541_372, "781.54M"},
		{2_500_000_000, "2.50B"},
		{450_300, "450,300"},
		{999, "999"},
	}
	for _, tt := range tests {
		if got := Points(tt.in); got != tt.want {
			t.Errorf("Points(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPct(t *testing.T) {
	if got := Pct(287.89); got != "+287.89%" {
		t.Errorf("Pct(287.89) = %q", got)
	}
	if got := Pct(-1.23); got != "-1.23%" {
		t.Errorf("Pct(-1.23) = %q", got)
	}
}

func TestSharePct(t *testing.T) {
	if got := SharePct(0.0576); got != "0.0576%" {
		t.Errorf("SharePct(0.0576) = %q", got)
	}
}
