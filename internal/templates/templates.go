// Package templates reads and writes session templates as YAML so they can
// be shared or edited outside the app.
package templates

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/session"
	"github.com/akyairhashvil/tasktimer/internal/timing"
	"github.com/akyairhashvil/tasktimer/internal/util"
	"gopkg.in/yaml.v3"
)

var ErrUnknownSound = errors.New("unknown sound")

type document struct {
	Sessions []sessionDoc `yaml:"sessions"`
}

type sessionDoc struct {
	Name      string        `yaml:"name"`
	Cycles    int           `yaml:"cycles"`
	Intervals []intervalDoc `yaml:"intervals"`
}

type intervalDoc struct {
	Name     string   `yaml:"name"`
	Duration string   `yaml:"duration"`
	Sound    string   `yaml:"sound,omitempty"`
	Tasks    []string `yaml:"tasks,omitempty"`
}

// Encode writes sessions as a YAML document. Task completion and ids are
// not exported.
func Encode(w io.Writer, sessions []models.Session) error {
	doc := document{Sessions: make([]sessionDoc, 0, len(sessions))}
	for _, s := range sessions {
		sd := sessionDoc{Name: s.Name, Cycles: s.Cycles}
		for _, iv := range s.Intervals {
			id := intervalDoc{
				Name:     iv.Name,
				Duration: formatDuration(iv.DurationSeconds),
				Sound:    string(iv.SoundID),
			}
			for _, t := range iv.Tasks {
				id.Tasks = append(id.Tasks, t.Text)
			}
			sd.Intervals = append(sd.Intervals, id)
		}
		doc.Sessions = append(doc.Sessions, sd)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// Decode reads a YAML document and returns validated sessions with fresh
// ids. A missing sound uses the default; an unknown sound is an error.
func Decode(r io.Reader) ([]models.Session, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []models.Session{}, nil
		}
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	out := make([]models.Session, 0, len(doc.Sessions))
	for i, sd := range doc.Sessions {
		s, err := sd.toSession()
		if err != nil {
			return nil, fmt.Errorf("session %d (%q): %w", i+1, sd.Name, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func (sd sessionDoc) toSession() (models.Session, error) {
	s := models.Session{ID: util.NewID(), Name: sd.Name, Cycles: sd.Cycles}
	if s.Cycles == 0 {
		s.Cycles = 1
	}
	for j, id := range sd.Intervals {
		seconds, err := timing.ParseClock(id.Duration)
		if err != nil {
			return models.Session{}, fmt.Errorf("interval %d: %w", j+1, err)
		}
		sound := models.SoundID(strings.TrimSpace(id.Sound))
		if sound == "" {
			sound = models.DefaultSoundID
		}
		if !sound.Valid() {
			return models.Session{}, fmt.Errorf("interval %d: %w %q", j+1, ErrUnknownSound, sound)
		}
		iv := models.Interval{ID: util.NewID(), Name: id.Name, DurationSeconds: seconds, SoundID: sound}
		for _, text := range id.Tasks {
			if text = strings.TrimSpace(text); text != "" {
				iv.Tasks = append(iv.Tasks, models.Task{ID: util.NewID(), Text: text})
			}
		}
		s.Intervals = append(s.Intervals, iv)
	}
	s = session.Normalize(s)
	if err := session.Validate(s); err != nil {
		return models.Session{}, err
	}
	return s, nil
}

// formatDuration renders seconds the way ParseClock reads them back.
func formatDuration(seconds int) string {
	if seconds <= 0 {
		return "0s"
	}
	h, m, s := seconds/3600, (seconds%3600)/60, seconds%60
	var b strings.Builder
	if h > 0 {
		fmt.Fprintf(&b, "%dh", h)
	}
	if m > 0 {
		fmt.Fprintf(&b, "%dm", m)
	}
	if s > 0 {
		fmt.Fprintf(&b, "%ds", s)
	}
	return b.String()
}
