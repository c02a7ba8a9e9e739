// termsnake is a real-time snake game played in the terminal.
//
// Usage:
//
//	termsnake play           - Start a game
//	termsnake keys           - Show the controls
//
// Global flags:
//
//	--config <path>  - Path to a custom config YAML
//	--seed <value>   - RNG seed for apple placement (0 = random based on time)
//	--log <path>     - Write the session log to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagLog    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termsnake",
	Short: "Snake in your terminal",
	Long: `termsnake is a real-time snake game rendered in the terminal.

Steer the snake onto apples to grow and score; running into the border or
yourself ends the game.

Examples:
  termsnake play
  termsnake play --seed 42
  termsnake play --log ./termsnake.log
  termsnake keys`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write the session log to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(keysCmd)
}
