package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/akyairhashvil/tasktimer/internal/session"
	"github.com/akyairhashvil/tasktimer/internal/templates"
	"github.com/akyairhashvil/tasktimer/internal/timing"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List, export and import session templates",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List session templates",
	Args:  cobra.NoArgs,
	RunE:  runSessionsList,
}

var sessionsExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write session templates as YAML (stdout by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSessionsExport,
}

var sessionsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add session templates from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsImport,
}

func init() {
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsExportCmd)
	sessionsCmd.AddCommand(sessionsImportCmd)
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	list, err := a.repo.LoadSessions(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No sessions.")
		return nil
	}
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{
			shortID(s.ID),
			s.Name,
			strconv.Itoa(len(s.Intervals)),
			strconv.Itoa(s.Cycles),
			strconv.Itoa(s.TaskCount()),
			timing.FormatClock(s.TotalDuration()),
		})
	}
	fmt.Fprintln(out, table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "INTERVALS", "CYCLES", "TASKS", "TOTAL").
		Rows(rows...).
		String())
	return nil
}

func runSessionsExport(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	list, err := a.repo.LoadSessions(cmd.Context())
	if err != nil {
		return err
	}
	var w io.Writer = cmd.OutOrStdout()
	if len(args) == 1 {
		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return templates.Encode(w, list)
}

func runSessionsImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	imported, err := templates.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	list, err := a.repo.LoadSessions(cmd.Context())
	if err != nil {
		return err
	}
	for _, s := range imported {
		list = session.Upsert(list, s)
	}
	if err := a.repo.SaveSessions(cmd.Context(), list); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d session(s)\n", len(imported))
	return nil
}
