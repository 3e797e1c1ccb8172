// Package cli wires the cobra command tree: the interactive TUI by default,
// plus scriptable subcommands over the same store.
package cli

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
)

var (
	configPath string
	dbPath     string
	rootCmd    *cobra.Command
	addOnce    sync.Once
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "tasktimer",
		Short: "Interval sessions, task timers, a stopwatch and countdown presets",
		Long: `tasktimer runs structured work sessions made of timed intervals repeated over
cycles, alongside a list of standalone timed tasks, a stopwatch and a preset
countdown timer.

Run without arguments to open the terminal UI.`,
		RunE:          runTUI,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the database file")
}

func addCommands() {
	addOnce.Do(func() {
		rootCmd.AddCommand(tasksCmd)
		rootCmd.AddCommand(sessionsCmd)
		rootCmd.AddCommand(presetsCmd)
		rootCmd.AddCommand(reportCmd)
		rootCmd.AddCommand(watchCmd)
		rootCmd.AddCommand(versionCmd)
	})
}

// Execute runs the root command
func Execute(version string) error {
	addCommands()
	appVersion = version
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
