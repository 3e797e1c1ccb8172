package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/akyairhashvil/tasktimer/internal/config"
	"github.com/akyairhashvil/tasktimer/internal/sound"
	"github.com/akyairhashvil/tasktimer/internal/timing"
	"github.com/akyairhashvil/tasktimer/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("the interactive UI needs a terminal; see 'tasktimer --help' for scriptable commands")

func bellPlayer(cfg *config.Config) sound.Player {
	if !cfg.Bell {
		return sound.Nop
	}
	return sound.NewBellPlayer(os.Stdout)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if a.cfg.LogFile != "" {
		f, err := tea.LogToFile(a.cfg.LogFile, config.AppName)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	}

	model, err := tui.NewMainModel(cmd.Context(), tui.Deps{
		Repo:   a.repo,
		Clock:  timing.SystemClock,
		Player: bellPlayer(a.cfg),
		Config: a.cfg,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
