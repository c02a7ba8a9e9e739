package core

// Color represents a foreground color for a screen cell. The terminal
// backend maps these to whatever the terminal supports.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightRed
	ColorGray
)
