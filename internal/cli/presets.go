package cli

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/tasktimer/internal/preset"
	"github.com/akyairhashvil/tasktimer/internal/timing"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage countdown presets",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List presets",
	Args:  cobra.NoArgs,
	RunE:  runPresetsList,
}

var presetsAddCmd = &cobra.Command{
	Use:   "add <name> <duration>",
	Short: "Save a preset, e.g. 'add Tea 3m'",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runPresetsAdd,
}

var presetsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetsRm,
}

func init() {
	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsAddCmd)
	presetsCmd.AddCommand(presetsRmCmd)
}

func runPresetsList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	list, err := a.repo.LoadPresets(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No presets.")
		return nil
	}
	for _, p := range list {
		fmt.Fprintf(out, "  %-8s  %-20s  %s\n", shortID(p.ID), p.Name, timing.FormatClock(p.DurationSeconds))
	}
	return nil
}

func runPresetsAdd(cmd *cobra.Command, args []string) error {
	name := strings.Join(args[:len(args)-1], " ")
	secs, err := timing.ParseClock(args[len(args)-1])
	if err != nil {
		return err
	}
	p, err := preset.NewPreset(name, secs)
	if err != nil {
		return err
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	list, err := a.repo.LoadPresets(cmd.Context())
	if err != nil {
		return err
	}
	if err := a.repo.SavePresets(cmd.Context(), preset.Add(list, p)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s (%s)\n", shortID(p.ID), p.Name, timing.FormatClock(p.DurationSeconds))
	return nil
}

func runPresetsRm(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	list, err := a.repo.LoadPresets(cmd.Context())
	if err != nil {
		return err
	}
	ids := make([]string, len(list))
	for i, p := range list {
		ids[i] = p.ID
	}
	id, err := resolveID(ids, args[0])
	if err != nil {
		return err
	}
	if err := a.repo.SavePresets(cmd.Context(), preset.Delete(list, id)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", shortID(id))
	return nil
}
