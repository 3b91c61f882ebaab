// flapgate is a flyer-and-gates arcade game for the terminal, the desktop
// and SSH.
//
// Usage:
//
//	flapgate list              - List available game modes
//	flapgate play              - Play in the terminal
//	flapgate window            - Play in a desktop window
//	flapgate serve             - Start SSH server for remote play
//	flapgate scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.flapgate/scores.db)
//	--store <kind>        - High score store: sqlite, file or none
//	--log-level <level>   - debug, info, warn or error
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapgate/internal/config"
	"github.com/vovakirdan/flapgate/internal/games/flapgate"
	"github.com/vovakirdan/flapgate/internal/sim"
	"github.com/vovakirdan/flapgate/internal/storage"
)

// Store kinds accepted by --store.
const (
	storeSQLite = "sqlite"
	storeFile   = "file"
	storeNone   = "none"
)

// appName names the gdata app-data directory.
const appName = "flapgate"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagStore      string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapgate",
	Short: "Flapgate - steer a flyer through endless gates",
	Long: `Flapgate is a one-button arcade game: keep the flyer airborne and
slip through the gaps between gates. Speed rises every five gates.

Available commands:
  list     - Show game modes
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  flapgate play
  flapgate play --difficulty hard
  flapgate window --store file
  flapgate serve --ssh :2222
  flapgate scores --interactive`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagStore != storeSQLite && flagStore != storeFile && flagStore != storeNone {
			return fmt.Errorf("invalid --store %q (want sqlite, file or none)", flagStore)
		}
		if flagDifficulty != "" && !config.IsValidPreset(flagDifficulty) {
			return fmt.Errorf("invalid --difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		flapgate.SetConfigPath(flagConfig)
		flapgate.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flapgate/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storeSQLite, "High score store: sqlite, file or none")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// openLogFile opens ~/.flapgate/flapgate.log for drivers that own the
// terminal. Falls back to discarding output.
func openLogFile() (io.Writer, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return io.Discard, func() {}
	}
	dir := filepath.Join(home, ".flapgate")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "flapgate.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

// stores bundles the score history and the selected high-score store.
type stores struct {
	history    *storage.Store
	highScores sim.HighScoreStore
}

// Close releases the database handle.
func (s stores) Close() {
	if s.history != nil {
		s.history.Close()
	}
}

// openStores opens the score history and the high-score store chosen by
// --store. Failures degrade to running without persistence.
func openStores(logger *log.Logger) stores {
	var s stores

	history, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
	} else {
		s.history = history
	}

	switch flagStore {
	case storeSQLite:
		if s.history != nil {
			s.highScores = s.history.HighScores(flapgate.ID)
		}
	case storeFile:
		fs, err := storage.OpenFileStore(appName)
		if err != nil {
			logger.Warn("could not open app data", "error", err)
			break
		}
		s.highScores = fs.HighScores(flapgate.ID)
	}

	flapgate.SetHighScoreStore(s.highScores)
	return s
}
