package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/tasktimer/internal/config"
	"github.com/akyairhashvil/tasktimer/internal/report"
	"github.com/akyairhashvil/tasktimer/internal/util"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [path]",
	Short: "Export tasks, sessions and presets as a PDF",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	taskList, err := a.repo.LoadTasks(ctx)
	if err != nil {
		return err
	}
	sessions, err := a.repo.LoadSessions(ctx)
	if err != nil {
		return err
	}
	presets, err := a.repo.LoadPresets(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		dir := util.ReportsDir(config.AppName)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		path = filepath.Join(dir, fmt.Sprintf("%s-report-%s.pdf", config.AppName, now.Format("20060102-150405")))
	}

	data := report.Data{GeneratedAt: now, Tasks: taskList, Sessions: sessions, Presets: presets}
	if err := report.Write(path, data); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
	return nil
}
