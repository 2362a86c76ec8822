package schema

import (
	"strings"
	"time"
)

// TierForScore buckets a 0-100 score into a tier label.
func TierForScore(score float64) TierLabel {
	switch {
	case score >= HighTierCutoff:
		return HighTier
	case score >= MediumTierCutoff:
		return MediumTier
	case score >= LowTierCutoff:
		return LowTier
	default:
		return VeryLowTier
	}
}

// TierRank returns the rank of a tier, 0 being the best. Unknown labels
// rank below every valid tier.
func TierRank(tier TierLabel) int {
	for i, t := range ValidTierLabels {
		if t == tier {
			return i
		}
	}
	return len(ValidTierLabels)
}

// FormatMonths formats peak months as "Jun, Nov, Dec".
func FormatMonths(months []time.Month) string {
	if len(months) == 0 {
		return "-"
	}
	parts := make([]string, len(months))
	for i, m := range months {
		parts[i] = m.String()[:3]
	}
	return strings.Join(parts, ", ")
}

// ParseTierLabel parses a case-insensitive tier name.
func ParseTierLabel(s string) (TierLabel, bool) {
	for _, t := range ValidTierLabels {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}
