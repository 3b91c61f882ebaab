package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flapgate/internal/core"
	"github.com/vovakirdan/flapgate/internal/games/flapgate"
	"github.com/vovakirdan/flapgate/internal/platform/tui"
	"github.com/vovakirdan/flapgate/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W/Click - Flap (also starts the game)
  Enter            - Start
  P/Esc            - Pause
  R                - Restart
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower gates, gentle speed-up
  normal - Default speed ramp
  hard   - Faster gates, steeper ramp, denser spawns
  fixed  - No speed-up

Logs go to ~/.flapgate/flapgate.log while the game owns the terminal.

Examples:
  flapgate play
  flapgate play --difficulty hard
  flapgate play --config ./my-flapgate.yaml
  flapgate play --seed 42 --store none`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logOut, closeLog := openLogFile()
	defer closeLog()
	logger := newLogger(logOut, "flapgate")
	flapgate.SetLogger(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(flapgate.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	st := openStores(logger)
	runErr := tui.Run(game, st.history, cfg, logger)
	st.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
