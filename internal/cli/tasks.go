package cli

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/sound"
	"github.com/akyairhashvil/tasktimer/internal/tasks"
	"github.com/akyairhashvil/tasktimer/internal/timing"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage standalone timed tasks",
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE:  runTasksList,
}

var tasksAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a task to the top of the list",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTasksAdd,
}

var tasksStartCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Start a task's countdown",
	Args:  cobra.ExactArgs(1),
	RunE: taskAction(func(s *tasks.Scheduler, t models.StandaloneTask) error {
		if t.IsRunning {
			return nil
		}
		return s.ToggleRunning(t.ID)
	}),
}

var tasksStopCmd = &cobra.Command{
	Use:   "stop <id>",
	Short: "Pause a task's countdown",
	Args:  cobra.ExactArgs(1),
	RunE: taskAction(func(s *tasks.Scheduler, t models.StandaloneTask) error {
		if !t.IsRunning {
			return nil
		}
		return s.ToggleRunning(t.ID)
	}),
}

var tasksDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	RunE: taskAction(func(s *tasks.Scheduler, t models.StandaloneTask) error {
		if t.IsCompleted {
			return nil
		}
		return s.ToggleStatus(t.ID)
	}),
}

var tasksReopenCmd = &cobra.Command{
	Use:   "reopen <id>",
	Short: "Reopen a completed task with its full duration",
	Args:  cobra.ExactArgs(1),
	RunE: taskAction(func(s *tasks.Scheduler, t models.StandaloneTask) error {
		if !t.IsCompleted {
			return nil
		}
		return s.ToggleStatus(t.ID)
	}),
}

var tasksRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: taskAction(func(s *tasks.Scheduler, t models.StandaloneTask) error {
		return s.Delete(t.ID)
	}),
}

func init() {
	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(tasksAddCmd)
	tasksCmd.AddCommand(tasksStartCmd)
	tasksCmd.AddCommand(tasksStopCmd)
	tasksCmd.AddCommand(tasksDoneCmd)
	tasksCmd.AddCommand(tasksReopenCmd)
	tasksCmd.AddCommand(tasksRmCmd)

	tasksAddCmd.Flags().StringP("duration", "d", "", "Countdown length, e.g. 25m or 1:30:00")
	tasksAddCmd.Flags().String("sound", "", "Sound played when the countdown ends")
	tasksAddCmd.Flags().Int("priority", 0, "Priority stars (1-5)")
}

func runTasksList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	list, err := a.repo.LoadTasks(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No tasks. Add one with 'tasktimer tasks add <text>'.")
		return nil
	}
	fmt.Fprintln(out, renderTaskTable(list))
	return nil
}

func taskStatus(t models.StandaloneTask) string {
	switch {
	case t.IsCompleted:
		return "done"
	case t.IsRunning:
		return "running"
	case t.TotalSeconds > 0 && t.RemainingSeconds < t.TotalSeconds:
		return "paused"
	default:
		return "open"
	}
}

func renderTaskTable(list []models.StandaloneTask) string {
	rows := make([][]string, 0, len(list))
	for _, t := range list {
		remaining := "-"
		if t.TotalSeconds > 0 {
			remaining = timing.FormatClock(t.RemainingSeconds)
		}
		stars := ""
		if t.Priority > 0 {
			stars = strings.Repeat("*", t.Priority)
		}
		rows = append(rows, []string{shortID(t.ID), taskStatus(t), remaining, stars, t.Text})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "STATUS", "REMAINING", "PRIORITY", "TEXT").
		Rows(rows...).
		String()
}

func runTasksAdd(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	durFlag, _ := cmd.Flags().GetString("duration")
	soundFlag, _ := cmd.Flags().GetString("sound")
	priority, _ := cmd.Flags().GetInt("priority")

	secs := 0
	if durFlag != "" {
		var err error
		if secs, err = timing.ParseClock(durFlag); err != nil {
			return err
		}
	}
	soundID := models.SoundID(soundFlag)
	if soundFlag != "" && !soundID.Valid() {
		return fmt.Errorf("unknown sound %q", soundFlag)
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	runner, err := a.taskRunner(cmd.Context(), sound.Nop)
	if err != nil {
		return err
	}

	var added models.StandaloneTask
	err = runner.Do(func(s *tasks.Scheduler) error {
		t, err := s.Add(text, secs, soundID)
		if err != nil {
			return err
		}
		added = t
		if priority > 0 {
			return s.SetPriority(t.ID, priority)
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", shortID(added.ID), added.Text)
	return nil
}

// taskAction resolves the id argument and applies op through the
// scheduler, saving the result.
func taskAction(op func(s *tasks.Scheduler, t models.StandaloneTask) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		runner, err := a.taskRunner(cmd.Context(), sound.Nop)
		if err != nil {
			return err
		}

		list := runner.Tasks()
		ids := make([]string, len(list))
		for i, t := range list {
			ids[i] = t.ID
		}
		id, err := resolveID(ids, args[0])
		if err != nil {
			return err
		}
		var target models.StandaloneTask
		for _, t := range list {
			if t.ID == id {
				target = t
			}
		}
		if err := runner.Do(func(s *tasks.Scheduler) error { return op(s, target) }); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: ok\n", cmd.Name(), shortID(id))
		return nil
	}
}
