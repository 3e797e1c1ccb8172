package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m MainModel, key string) (MainModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Views       []View
	// When restricts the binding to a sub-state of its views.
	When     func(m MainModel) bool
	Priority int
}

func (b KeyBinding) AppliesTo(m MainModel) bool {
	if len(b.Views) > 0 {
		found := false
		for _, v := range b.Views {
			if v == m.view {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return b.When == nil || b.When(m)
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(m) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(m MainModel) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(m) {
			out = append(out, b)
		}
	}
	return out
}

// HelpFor renders the footer hint for the model's current view.
func (r *HandlerRegistry) HelpFor(m MainModel) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(m) {
		if b.Description == "" || seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, "["+b.Key+"] "+b.Description)
	}
	return strings.Join(parts, "  ")
}
