package consts

import (
	"github.com/Cysparks-Inc/lendy-sub000/configs"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"
)

// RiskThresholds is the single table the classifier reads tier boundaries
// from. Days overdue within (0, MediumMaxDays] is medium, (MediumMaxDays,
// HighMaxDays] is high, above that critical; zero days is low.
type RiskThresholds struct {
	MediumMaxDays int
	HighMaxDays   int
}

func DefaultRiskThresholds() RiskThresholds {
	return RiskThresholds{MediumMaxDays: 30, HighMaxDays: 90}
}

// RiskThresholdsFromConfig returns the configured table, falling back to the
// defaults when the envs are unset or nonsensical.
func RiskThresholdsFromConfig() RiskThresholds {
	t := DefaultRiskThresholds()
	if configs.RISK_MEDIUM_MAX_DAYS > 0 {
		t.MediumMaxDays = configs.RISK_MEDIUM_MAX_DAYS
	}
	if configs.RISK_HIGH_MAX_DAYS > t.MediumMaxDays {
		t.HighMaxDays = configs.RISK_HIGH_MAX_DAYS
	}
	return t
}

// Tier maps days overdue onto a risk tier. Monotone: more days overdue never
// yields a lower tier.
func (t RiskThresholds) Tier(daysOverdue int) models.RiskTier {
	switch {
	case daysOverdue <= 0:
		return models.RiskLow
	case daysOverdue <= t.MediumMaxDays:
		return models.RiskMedium
	case daysOverdue <= t.HighMaxDays:
		return models.RiskHigh
	default:
		return models.RiskCritical
	}
}
