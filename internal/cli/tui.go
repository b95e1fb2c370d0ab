package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"neonfocus/internal/core/session"
	"neonfocus/internal/debug"
	"neonfocus/internal/notify"
	"neonfocus/internal/tasks"
	"neonfocus/internal/tui"
	"neonfocus/internal/ui/preferences"
)

func newTUICmd(opts *options, runners Runners) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		Long: `Run the focus timer as a terminal UI.

Controls:
  space/s - start or pause
  r       - reset the current phase
  +/-     - focus length
  </>     - break length
  a       - add a task (enter saves, esc cancels)
  x/enter - check or uncheck the selected task
  d       - delete the selected task
  ↑/↓     - move between tasks
  q       - quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := resolveSettings(cmd, opts)
			if err != nil {
				return err
			}
			if runners.Terminal == nil {
				return fmt.Errorf("terminal frontend unavailable")
			}
			return runners.Terminal(settings, cmd.OutOrStdout())
		},
	}
}

// terminalNotifier rings the bell on completion when the user asked for sound.
func terminalNotifier(settings preferences.Settings, out io.Writer) session.Notifier {
	return notify.NewGate(notify.NewBell(out), settings.Sound == preferences.SoundBell)
}

func runTerminal(settings preferences.Settings, out io.Writer) error {
	// Log lines would corrupt the alternate screen.
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)
	restoreDebug := debug.SetOutput(io.Discard)
	defer restoreDebug()

	controller := session.New(settings.TimerConfig(), session.NewIntervalTicker(0))
	defer controller.Close()
	controller.SetNotifier(terminalNotifier(settings, out))

	return tui.Run(controller, tasks.NewList(settings.Tasks...))
}
