package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/tasktimer/internal/config"
	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/util"
)

// NewSession returns a one-cycle session holding the default work interval.
func NewSession(name string) models.Session {
	return models.Session{
		ID:        util.NewID(),
		Name:      name,
		Cycles:    1,
		CreatedAt: time.Now().UnixMilli(),
		Intervals: []models.Interval{{
			ID:              util.NewID(),
			Name:            config.DefaultIntervalName,
			DurationSeconds: config.DefaultIntervalSeconds,
			SoundID:         models.DefaultSoundID,
		}},
	}
}

// ClampCycles bounds a cycle count to the editor's range.
func ClampCycles(n int) int {
	return util.Clamp(n, config.MinCycles, config.MaxCycles)
}

// Validate reports whether s can be saved.
func Validate(s models.Session) error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if len(s.Intervals) == 0 {
		return ErrNoIntervals
	}
	if s.Cycles < config.MinCycles {
		return ErrInvalidCycles
	}
	return nil
}

// Normalize trims names, clamps cycles, fixes negative durations and
// unknown sounds, and fills missing ids and creation time.
func Normalize(s models.Session) models.Session {
	out := s.Clone()
	if out.ID == "" {
		out.ID = util.NewID()
	}
	if out.CreatedAt == 0 {
		out.CreatedAt = time.Now().UnixMilli()
	}
	out.Name = strings.TrimSpace(out.Name)
	out.Cycles = ClampCycles(out.Cycles)
	for i := range out.Intervals {
		iv := &out.Intervals[i]
		if iv.ID == "" {
			iv.ID = util.NewID()
		}
		iv.Name = strings.TrimSpace(iv.Name)
		if iv.DurationSeconds < 0 {
			iv.DurationSeconds = 0
		}
		iv.SoundID = iv.SoundID.OrDefault()
	}
	return out
}

// AddInterval appends "Interval N" with the default added duration.
func AddInterval(s *models.Session) models.Interval {
	iv := models.Interval{
		ID:              util.NewID(),
		Name:            fmt.Sprintf("Interval %d", len(s.Intervals)+1),
		DurationSeconds: config.AddedIntervalSeconds,
		SoundID:         models.DefaultSoundID,
	}
	s.Intervals = append(s.Intervals, iv)
	return iv
}

// RemoveInterval deletes an interval. The last remaining interval is kept.
func RemoveInterval(s *models.Session, id string) bool {
	if len(s.Intervals) <= 1 {
		return false
	}
	idx := s.IntervalByID(id)
	if idx < 0 {
		return false
	}
	s.Intervals = append(s.Intervals[:idx], s.Intervals[idx+1:]...)
	return true
}

// MoveInterval swaps an interval with its neighbour; delta is -1 or +1.
func MoveInterval(s *models.Session, id string, delta int) bool {
	return util.SwapNeighbor(s.Intervals, s.IntervalByID(id), delta)
}

// DuplicateInterval inserts a copy right after the original. The copy and
// each of its tasks get fresh ids.
func DuplicateInterval(s *models.Session, id string) (models.Interval, bool) {
	idx := s.IntervalByID(id)
	if idx < 0 {
		return models.Interval{}, false
	}
	dup := s.Intervals[idx].Clone()
	dup.ID = util.NewID()
	for i := range dup.Tasks {
		dup.Tasks[i].ID = util.NewID()
	}
	s.Intervals = append(s.Intervals[:idx+1], append([]models.Interval{dup}, s.Intervals[idx+1:]...)...)
	return dup, true
}

// AddTemplateTask appends a task to an interval of a template.
func AddTemplateTask(s *models.Session, intervalID, text string) bool {
	text = strings.TrimSpace(text)
	idx := s.IntervalByID(intervalID)
	if idx < 0 || text == "" {
		return false
	}
	s.Intervals[idx].Tasks = append(s.Intervals[idx].Tasks, models.Task{ID: util.NewID(), Text: text})
	return true
}

// Upsert replaces the session with the same id or appends s. A replaced
// session keeps its creation time.
func Upsert(list []models.Session, s models.Session) []models.Session {
	for i := range list {
		if list[i].ID == s.ID {
			out := append([]models.Session(nil), list...)
			if list[i].CreatedAt != 0 {
				s.CreatedAt = list[i].CreatedAt
			}
			out[i] = s
			return out
		}
	}
	return append(append([]models.Session(nil), list...), s)
}

// Delete removes the session with id from list.
func Delete(list []models.Session, id string) []models.Session {
	out := make([]models.Session, 0, len(list))
	for _, s := range list {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}
