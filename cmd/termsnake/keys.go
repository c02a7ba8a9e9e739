package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the controls",
	Long:  `Shows the key bindings used during a game.`,
	Run:   runKeys,
}

func runKeys(cmd *cobra.Command, args []string) {
	fmt.Println(headingStyle.Render("Controls"))
	fmt.Println()

	bindings := []struct {
		key  string
		what string
	}{
		{"Up/Down/Left/Right", "Steer the snake"},
		{"Q, Ctrl+C", "Quit"},
	}

	width := 0
	for _, b := range bindings {
		if len(b.key) > width {
			width = len(b.key)
		}
	}
	for _, b := range bindings {
		fmt.Printf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-*s", width, b.key)), b.what)
	}

	fmt.Println()
	fmt.Println(noteStyle.Render("The snake starts still; press an arrow key to set it moving."))
	fmt.Println(noteStyle.Render("Reversing straight into yourself is ignored."))
}
