// Package stock derives qualitative stock levels from an inventory
// item's current, minimum, and maximum quantities.
package stock

// Status represents the qualitative stock level of an inventory item
type Status string

const (
	StatusOut Status = "out"
	StatusLow Status = "low"
	StatusOK  Status = "ok"
)

// Tier is the color bucket used by the stock-level bar
type Tier string

const (
	TierRed    Tier = "red"
	TierYellow Tier = "yellow"
	TierGreen  Tier = "green"
)

// Classify buckets a stock level: out at zero, low at or below the
// minimum, ok above it. Every input maps to exactly one status.
func Classify(current, min float64) Status {
	if current == 0 {
		return StatusOut
	}
	if current <= min {
		return StatusLow
	}
	return StatusOK
}

// FillPercent returns how full the stock bar is, capped at 100.
func FillPercent(current, max float64) float64 {
	if max <= 0 {
		return 0
	}
	pct := current / max * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// BarTier picks the bar color: red at or below the minimum-stock
// percentage, yellow at 30% or less, green above.
func BarTier(current, min, max float64) Tier {
	pct := FillPercent(current, max)
	if pct <= FillPercent(min, max) {
		return TierRed
	}
	if pct <= 30 {
		return TierYellow
	}
	return TierGreen
}
