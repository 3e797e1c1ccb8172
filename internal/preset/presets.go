// Package preset provides the single countdown timer and its saved
// durations.
package preset

import (
	"errors"
	"strings"

	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/util"
)

var (
	ErrEmptyName    = errors.New("preset name is required")
	ErrZeroDuration = errors.New("duration must be greater than zero")
)

// NewPreset validates and builds a preset.
func NewPreset(name string, seconds int) (models.TimerPreset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.TimerPreset{}, ErrEmptyName
	}
	if seconds <= 0 {
		return models.TimerPreset{}, ErrZeroDuration
	}
	return models.TimerPreset{ID: util.NewID(), Name: name, DurationSeconds: seconds}, nil
}

// Add appends p to list.
func Add(list []models.TimerPreset, p models.TimerPreset) []models.TimerPreset {
	return append(append([]models.TimerPreset(nil), list...), p)
}

// Delete removes the preset with id.
func Delete(list []models.TimerPreset, id string) []models.TimerPreset {
	out := make([]models.TimerPreset, 0, len(list))
	for _, p := range list {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
