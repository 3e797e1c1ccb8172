package session

import (
	"strings"

	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/util"
)

// Plan maps interval ids to the task texts prepared for a launch.
type Plan map[string][]string

// PlanFromTemplate seeds a plan with the template's task texts.
func PlanFromTemplate(t models.Session) Plan {
	plan := make(Plan, len(t.Intervals))
	for _, iv := range t.Intervals {
		texts := make([]string, 0, len(iv.Tasks))
		for _, task := range iv.Tasks {
			texts = append(texts, task.Text)
		}
		plan[iv.ID] = texts
	}
	return plan
}

// Add appends text to an interval's planned tasks, ignoring blanks.
func (p Plan) Add(intervalID, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	p[intervalID] = append(p[intervalID], text)
	return true
}

// Remove drops the planned task at index i of an interval.
func (p Plan) Remove(intervalID string, i int) bool {
	texts := p[intervalID]
	if i < 0 || i >= len(texts) {
		return false
	}
	p[intervalID] = append(texts[:i:i], texts[i+1:]...)
	return true
}

// Prepare builds the running copy of a template: every planned task gets a
// fresh id and starts incomplete. The template is left untouched.
func Prepare(t models.Session, plan Plan) models.Session {
	out := t.Clone()
	for i := range out.Intervals {
		iv := &out.Intervals[i]
		iv.Tasks = nil
		for _, text := range plan[iv.ID] {
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			iv.Tasks = append(iv.Tasks, models.Task{ID: util.NewID(), Text: text})
		}
	}
	return out
}

// Launch prepares t with its own task texts, skipping the planning step.
func Launch(t models.Session) models.Session {
	return Prepare(t, PlanFromTemplate(t))
}
