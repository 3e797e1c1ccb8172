package database

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/akyairhashvil/tasktimer/internal/config"
	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/util"
)

// Repository reads and writes the application's JSON blobs over a Store.
// A blob that fails to decode is logged and treated as empty so one corrupt
// key never blocks startup.
type Repository struct {
	store Store
}

func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// loadJSON decodes key into dst. found is false when the key is absent or
// its value is malformed.
func (r *Repository) loadJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		util.LogError("discarding malformed "+key, err)
		return false, nil
	}
	return true, nil
}

func (r *Repository) saveJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &OpError{Op: "encode", Key: key, Err: err}
	}
	return r.store.Set(ctx, key, string(raw))
}

func (r *Repository) LoadSessions(ctx context.Context) ([]models.Session, error) {
	var out []models.Session
	if ok, err := r.loadJSON(ctx, config.KeySessions, &out); err != nil || !ok {
		return []models.Session{}, err
	}
	if out == nil {
		out = []models.Session{}
	}
	return out, nil
}

func (r *Repository) SaveSessions(ctx context.Context, sessions []models.Session) error {
	if sessions == nil {
		sessions = []models.Session{}
	}
	return r.saveJSON(ctx, config.KeySessions, sessions)
}

func (r *Repository) LoadTasks(ctx context.Context) ([]models.StandaloneTask, error) {
	var out []models.StandaloneTask
	if ok, err := r.loadJSON(ctx, config.KeyStandaloneTasks, &out); err != nil || !ok {
		return []models.StandaloneTask{}, err
	}
	if out == nil {
		out = []models.StandaloneTask{}
	}
	return out, nil
}

func (r *Repository) SaveTasks(ctx context.Context, tasks []models.StandaloneTask) error {
	if tasks == nil {
		tasks = []models.StandaloneTask{}
	}
	return r.saveJSON(ctx, config.KeyStandaloneTasks, tasks)
}

func (r *Repository) LoadPresets(ctx context.Context) ([]models.TimerPreset, error) {
	var out []models.TimerPreset
	if ok, err := r.loadJSON(ctx, config.KeyPresets, &out); err != nil || !ok {
		return []models.TimerPreset{}, err
	}
	if out == nil {
		out = []models.TimerPreset{}
	}
	return out, nil
}

func (r *Repository) SavePresets(ctx context.Context, presets []models.TimerPreset) error {
	if presets == nil {
		presets = []models.TimerPreset{}
	}
	return r.saveJSON(ctx, config.KeyPresets, presets)
}

// LoadSettings returns stored preferences, using models.DefaultSettings for
// any key that is absent or malformed.
func (r *Repository) LoadSettings(ctx context.Context) (models.Settings, error) {
	s := models.DefaultSettings()

	var b bool
	if ok, err := r.loadJSON(ctx, config.KeyAutoCheck, &b); err != nil {
		return s, err
	} else if ok {
		s.AutoCheck = b
	}
	if ok, err := r.loadJSON(ctx, config.KeySkipSound, &b); err != nil {
		return s, err
	} else if ok {
		s.SkipSound = b
	}
	if ok, err := r.loadJSON(ctx, config.KeyPriorityEnabled, &b); err != nil {
		return s, err
	} else if ok {
		s.PriorityEnabled = b
	}
	raw, ok, err := r.store.Get(ctx, config.KeyDefaultSound)
	if err != nil {
		return s, err
	}
	if ok {
		s.DefaultSound = decodeSound(raw)
	}
	return s, nil
}

// decodeSound reads the default sound, which is stored as a bare id. A
// JSON-quoted id is accepted too.
func decodeSound(raw string) models.SoundID {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, `"`) {
		var quoted string
		if err := json.Unmarshal([]byte(raw), &quoted); err == nil {
			raw = quoted
		}
	}
	return models.SoundID(raw).OrDefault()
}

func (r *Repository) SaveSettings(ctx context.Context, s models.Settings) error {
	if err := r.saveJSON(ctx, config.KeyAutoCheck, s.AutoCheck); err != nil {
		return err
	}
	if err := r.saveJSON(ctx, config.KeySkipSound, s.SkipSound); err != nil {
		return err
	}
	if err := r.saveJSON(ctx, config.KeyPriorityEnabled, s.PriorityEnabled); err != nil {
		return err
	}
	return r.store.Set(ctx, config.KeyDefaultSound, string(s.DefaultSound.OrDefault()))
}
