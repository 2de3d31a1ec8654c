package recipes

import (
	"math"

	"gourmet/errs"
)

const (
	MinNote = 0
	MaxNote = 5
)

// NextRating folds one vote into a running mean.
func NextRating(avg float64, n int, vote float64) (float64, int) {
	next := n + 1
	return (avg*float64(n) + vote) / float64(next), next
}

func checkNote(note *float64) error {
	if note == nil {
		return errs.Validation(errs.MsgMissingRequired)
	}
	if math.IsNaN(*note) || math.IsInf(*note, 0) || *note < MinNote || *note > MaxNote {
		return errs.Validation("Note must be between 0 and 5")
	}
	return nil
}
