package stock

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		min      float64
		expected Status
	}{
		{"zero stock is out", 0, 10, StatusOut},
		{"below minimum is low", 2, 10, StatusLow},
		{"at minimum is low", 10, 10, StatusLow},
		{"above minimum is ok", 11, 10, StatusOK},
		{"zero stock with zero minimum is out", 0, 0, StatusOut},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.current, tc.min); got != tc.expected {
				t.Errorf("Classify(%v, %v) = %q, want %q", tc.current, tc.min, got, tc.expected)
			}
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	// Every combination lands in exactly one of the three buckets,
	// and out only at zero.
	for current := 0.0; current <= 40; current++ {
		got := Classify(current, 10)
		if got != StatusOut && got != StatusLow && got != StatusOK {
			t.Fatalf("Classify(%v, 10) produced unknown status %q", current, got)
		}
		if (got == StatusOut) != (current == 0) {
			t.Errorf("Classify(%v, 10) = %q; out must mean exactly zero stock", current, got)
		}
	}
}

func TestFillPercent(t *testing.T) {
	if got := FillPercent(15, 50); got != 30 {
		t.Errorf("FillPercent(15, 50) = %v, want 30", got)
	}

	// Overstock caps at 100.
	if got := FillPercent(60, 50); got != 100 {
		t.Errorf("FillPercent(60, 50) = %v, want 100", got)
	}

	// A zero maximum would divide by zero; it reads as empty instead.
	if got := FillPercent(5, 0); got != 0 {
		t.Errorf("FillPercent(5, 0) = %v, want 0", got)
	}
}

func TestBarTier(t *testing.T) {
	// 2 of 30 with min 10: at or below the min percentage.
	if got := BarTier(2, 10, 30); got != TierRed {
		t.Errorf("BarTier(2, 10, 30) = %q, want red", got)
	}

	// 12 of 50 with min 5 is 24%: above min, at most 30%.
	if got := BarTier(12, 5, 50); got != TierYellow {
		t.Errorf("BarTier(12, 5, 50) = %q, want yellow", got)
	}

	// 25 of 40 with min 5 is 62.5%.
	if got := BarTier(25, 5, 40); got != TierGreen {
		t.Errorf("BarTier(25, 5, 40) = %q, want green", got)
	}
}
