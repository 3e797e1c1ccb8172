package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime options read from config.yaml and the environment.
type Config struct {
	DBPath              string        `mapstructure:"db_path"`
	LogFile             string        `mapstructure:"log_file"`
	Theme               string        `mapstructure:"theme"`
	Bell                bool          `mapstructure:"bell"`
	SkipBackThreshold   time.Duration `mapstructure:"skip_back_threshold"`
	TaskPollInterval    time.Duration `mapstructure:"task_poll_interval"`
	SessionPollInterval time.Duration `mapstructure:"session_poll_interval"`
}

// DefaultConfig places the database and log under dataDir.
func DefaultConfig(dataDir string) *Config {
	return &Config{
		DBPath:              filepath.Join(dataDir, DBFileName),
		LogFile:             filepath.Join(dataDir, LogFileName),
		Theme:               "default",
		Bell:                true,
		SkipBackThreshold:   SkipBackThreshold,
		TaskPollInterval:    TaskPollInterval,
		SessionPollInterval: SessionPollInterval,
	}
}

// Load reads path over the defaults. A missing file is not an error.
// TASKTIMER_* environment variables override file values.
func Load(path, dataDir string) (*Config, error) {
	cfg := DefaultConfig(dataDir)

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("db_path", cfg.DBPath)
	v.SetDefault("log_file", cfg.LogFile)
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("bell", cfg.Bell)
	v.SetDefault("skip_back_threshold", cfg.SkipBackThreshold)
	v.SetDefault("task_poll_interval", cfg.TaskPollInterval)
	v.SetDefault("session_poll_interval", cfg.SessionPollInterval)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.SkipBackThreshold < 0 {
		c.SkipBackThreshold = SkipBackThreshold
	}
	if c.TaskPollInterval <= 0 {
		c.TaskPollInterval = TaskPollInterval
	}
	if c.SessionPollInterval <= 0 {
		c.SessionPollInterval = SessionPollInterval
	}
	if strings.TrimSpace(c.Theme) == "" {
		c.Theme = "default"
	}
}
