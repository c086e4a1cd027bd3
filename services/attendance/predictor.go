package attendance

import (
	"errors"

	"attendly/models"
)

var ErrNegativeProjection = errors.New("future attend and miss counts must not be negative")

// BandFor classifies a percentage with the shared 75/65 thresholds.
func BandFor(percentage int) models.Band {
	switch {
	case percentage >= models.SafeThreshold:
		return models.BandSafe
	case percentage >= models.WarningThreshold:
		return models.BandWarning
	default:
		return models.BandRisk
	}
}

// Predict layers hypothetical present and absent counts on top of current stats.
func Predict(current models.AttendanceStats, futureAttend, futureMiss int) (models.Prediction, error) {
	if futureAttend < 0 || futureMiss < 0 {
		return models.Prediction{}, ErrNegativeProjection
	}
	newTotal := current.Total + futureAttend + futureMiss
	newPresent := current.Present + futureAttend
	pct := Percent(newPresent, newTotal)
	return models.Prediction{Percentage: pct, Status: BandFor(pct)}, nil
}
