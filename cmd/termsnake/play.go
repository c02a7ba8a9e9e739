package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/termsnake/internal/audio"
	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/platform/term"
)

var scoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a game of snake.

Controls:
  Arrow keys - Steer the snake
  Q/Ctrl+C   - Quit

The snake starts still; press an arrow key to set it moving.

Examples:
  termsnake play
  termsnake play --seed 42
  termsnake play --config ./my-config.yaml`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if !xterm.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagLog != "" {
		cfg.Log.Path = flagLog
	}

	logger, closeLog := newLogger(cfg.Log.Path)
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	score, err := term.Run(term.Options{
		Seed:      seed,
		ShowTrace: cfg.ShowInputTrace,
		Logger:    logger,
		Sound:     audio.NewPlayer(cfg.Sound, logger),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(scoreStyle.Render(fmt.Sprintf("Your Score: %d", score)))
}

// newLogger builds the session logger. The game owns the terminal while it
// runs, so logs only ever go to a file; without one they are discarded.
func newLogger(path string) (*log.Logger, func()) {
	if path == "" {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "termsnake",
	})
	return logger, func() { f.Close() }
}
