package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/akyairhashvil/tasktimer/internal/sound"
	"github.com/akyairhashvil/tasktimer/internal/tasks"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run task countdowns headless, ringing when each one ends",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	player := bellPlayer(a.cfg)
	runner, err := a.taskRunner(cmd.Context(), player)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	events := runner.Subscribe(16)
	runner.Start()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Watching %d task(s). Press Ctrl+C to stop.\n", countRunning(runner))

	for {
		select {
		case <-ctx.Done():
			runner.Stop()
			if bp, ok := player.(*sound.BellPlayer); ok {
				bp.Wait()
			}
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type == tasks.EventExpired {
				fmt.Fprintf(out, "Time's up: %s\n", ev.Text)
			}
		}
	}
}

func countRunning(r *tasks.BackgroundRunner) int {
	n := 0
	for _, t := range r.Tasks() {
		if t.IsRunning {
			n++
		}
	}
	return n
}
