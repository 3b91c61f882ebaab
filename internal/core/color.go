package core

// Color is a semantic palette slot for a screen cell. Frontends decide how
// a slot is drawn; ANSI gives the terminal code.
type Color uint8

// Palette slots used by the Flapgate renderer.
const (
	ColorDefault Color = iota
	ColorGate
	ColorGateCap
	ColorFlyer
	ColorNose
	ColorHUD
	ColorMuted
	ColorBanner
	ColorTitle
	ColorPaused
	ColorGameOver

	colorCount
)

// ansiCodes holds the ANSI 256-color code for each slot. Empty means the
// terminal's default foreground.
var ansiCodes = [colorCount]string{
	ColorDefault:  "",
	ColorGate:     "2",
	ColorGateCap:  "10",
	ColorFlyer:    "3",
	ColorNose:     "208",
	ColorHUD:      "15",
	ColorMuted:    "245",
	ColorBanner:   "11",
	ColorTitle:    "14",
	ColorPaused:   "3",
	ColorGameOver: "9",
}

// ANSI returns the terminal color code for c, or "" for the default
// foreground and for unknown slots.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansiCodes[c]
}

// Colors returns every palette slot in order.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}
