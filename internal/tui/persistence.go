package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/tasktimer/internal/session"
	"github.com/akyairhashvil/tasktimer/internal/tasks"
	"github.com/akyairhashvil/tasktimer/internal/util"
)

const saveTimeout = 5 * time.Second

func saveContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), saveTimeout)
}

func (m MainModel) saveTasks() MainModel {
	ctx, cancel := saveContext()
	defer cancel()
	if err := m.repo.SaveTasks(ctx, m.sched.Tasks()); err != nil {
		util.LogError("save tasks", err)
		m.err = err
	}
	return m
}

func (m MainModel) saveSessions() MainModel {
	ctx, cancel := saveContext()
	defer cancel()
	if err := m.repo.SaveSessions(ctx, m.sessions); err != nil {
		util.LogError("save sessions", err)
		m.err = err
	}
	return m
}

func (m MainModel) savePresets() MainModel {
	ctx, cancel := saveContext()
	defer cancel()
	if err := m.repo.SavePresets(ctx, m.presets); err != nil {
		util.LogError("save presets", err)
		m.err = err
	}
	return m
}

// saveSettings persists the settings and pushes them to every engine.
func (m MainModel) saveSettings() MainModel {
	m.sched.UpdatePolicy(tasks.PolicyFromSettings(m.settings))
	if m.runner != nil {
		m.runner.UpdatePolicy(m.sessionPolicy())
	}
	m.timer.SetSound(m.settings.DefaultSound)

	ctx, cancel := saveContext()
	defer cancel()
	if err := m.repo.SaveSettings(ctx, m.settings); err != nil {
		util.LogError("save settings", err)
		m.err = err
	}
	return m
}

func (m MainModel) sessionPolicy() session.Policy {
	return session.PolicyFromSettings(m.settings, m.cfg.SkipBackThreshold)
}
