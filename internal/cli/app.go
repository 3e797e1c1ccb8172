package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/tasktimer/internal/config"
	"github.com/akyairhashvil/tasktimer/internal/database"
	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/sound"
	"github.com/akyairhashvil/tasktimer/internal/tasks"
	"github.com/akyairhashvil/tasktimer/internal/timing"
	"github.com/akyairhashvil/tasktimer/internal/util"
)

var ErrAmbiguousRef = errors.New("reference matches more than one item")

const persistTimeout = 5 * time.Second

type app struct {
	cfg  *config.Config
	db   *database.Database
	repo *database.Repository
}

func openApp(ctx context.Context) (*app, error) {
	path := configPath
	if path == "" {
		path = filepath.Join(util.ConfigDir(config.AppName), config.ConfigFileName)
	}
	cfg, err := config.Load(path, util.DataDir(config.AppName))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, db: db, repo: database.NewRepository(db)}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// taskRunner restores the saved task list into a scheduler whose every
// change is written back to the store.
func (a *app) taskRunner(ctx context.Context, player sound.Player) (*tasks.BackgroundRunner, error) {
	settings, err := a.repo.LoadSettings(ctx)
	if err != nil {
		return nil, err
	}
	saved, err := a.repo.LoadTasks(ctx)
	if err != nil {
		return nil, err
	}
	sched := tasks.NewScheduler(timing.SystemClock, player, tasks.PolicyFromSettings(settings))
	sched.Restore(saved)
	persist := func(list []models.StandaloneTask) error {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		return a.repo.SaveTasks(ctx, list)
	}
	return tasks.NewBackgroundRunner(sched, a.cfg.TaskPollInterval, persist), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveID finds the single id equal to ref or starting with it.
func resolveID(ids []string, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	var match string
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
		if ref != "" && strings.HasPrefix(id, ref) {
			if match != "" {
				return "", fmt.Errorf("%w: %s", ErrAmbiguousRef, ref)
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("no match for %q", ref)
	}
	return match, nil
}
