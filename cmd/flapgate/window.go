package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapgate/internal/games/flapgate"
	"github.com/vovakirdan/flapgate/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized to the configured field. Resizing the
window resizes the field.

Controls:
  Space/Up/W/Click/Tap - Flap (also starts the game)
  Enter                - Start
  P/Esc                - Pause
  R                    - Restart

Examples:
  flapgate window
  flapgate window --store file --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr, "flapgate-window")
	flapgate.SetLogger(logger)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	st := openStores(logger)
	defer st.Close()

	opts := window.Options{
		Title:      "Flapgate",
		Seed:       seed,
		TPS:        flagFPS,
		HighScores: st.highScores,
		Logger:     logger,
	}
	if st.history != nil {
		opts.Runs = st.history
	}

	if err := window.Run(flapgate.LoadConfig(), opts); err != nil {
		st.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
