package scoring

import (
	"fmt"

	"github.com/alexanderramin/iaso/internal/domain"
	"github.com/alexanderramin/iaso/internal/questionbank"
)

// Bands holds the lower score boundaries of the moderate, high and urgent
// tiers. Scores below Moderate classify as low. Boundaries are calibration
// data, not logic; they usually travel with the question bank document.
type Bands struct {
	Moderate float64
	High     float64
	Urgent   float64
}

// DefaultBands returns the built-in calibration: low [0,30), moderate
// [30,60), high [60,80), urgent [80,∞).
func DefaultBands() Bands {
	return Bands{Moderate: 30, High: 60, Urgent: 80}
}

// BandsFromConfig converts a bank document's band section, falling back to
// the defaults when the document carries none.
func BandsFromConfig(cfg *questionbank.BandsConfig) Bands {
	if cfg == nil {
		return DefaultBands()
	}
	return Bands{Moderate: cfg.Moderate, High: cfg.High, Urgent: cfg.Urgent}
}

// Validate rejects non-monotonic boundaries.
func (b Bands) Validate() error {
	if !(0 <= b.Moderate && b.Moderate < b.High && b.High < b.Urgent) {
		return fmt.Errorf("tier bands must satisfy 0 <= moderate < high < urgent, got %.1f/%.1f/%.1f",
			b.Moderate, b.High, b.Urgent)
	}
	return nil
}

// Classify maps a composite score into a tier. Monotonic by construction:
// a higher score never yields a lower tier.
func (b Bands) Classify(score float64) domain.RiskTier {
	switch {
	case score >= b.Urgent:
		return domain.TierUrgent
	case score >= b.High:
		return domain.TierHigh
	case score >= b.Moderate:
		return domain.TierModerate
	default:
		return domain.TierLow
	}
}
