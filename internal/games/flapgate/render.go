package flapgate

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flapgate/internal/core"
	"github.com/vovakirdan/flapgate/internal/sim"
)

// Visual characters for rendering
const (
	GateChar       = '█'
	GateCapTop     = '▀'
	GateCapBottom  = '▄'
	FlyerChar      = '█'
	FlyerNoseUp    = '▲'
	FlyerNoseLevel = '▶'
	FlyerNoseDown  = '▼'
)

// noseThreshold is the rotation, in degrees, past which the flyer glyph
// tilts.
const noseThreshold = 10.0

// scaler maps logical field coordinates to screen cells.
type scaler struct {
	sx, sy float64
}

func newScaler(field sim.Dimensions, cols, rows int) scaler {
	return scaler{
		sx: float64(cols) / field.Width,
		sy: float64(rows) / field.Height,
	}
}

func (s scaler) col(x float64) int { return int(math.Floor(x * s.sx)) }
func (s scaler) row(y float64) int { return int(math.Floor(y * s.sy)) }

// span returns the number of cells covering a logical length, at least 1.
func span(v, scale float64) int {
	return core.Max(1, int(math.Round(v*scale)))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.sim.Snapshot()
	sc := newScaler(snap.Field, dst.Width(), dst.Height())

	for _, gate := range snap.Gates {
		drawGate(dst, sc, gate)
	}
	drawFlyer(dst, sc, snap.Flyer)

	hud := fmt.Sprintf(" Score: %d  Best: %d ", snap.Score, snap.HighScore)
	dst.DrawTextColored(1, 0, hud, core.ColorHUD)
	speed := fmt.Sprintf(" Speed %.2f ", snap.Speed)
	dst.DrawTextColored(dst.Width()-len(speed)-1, 0, speed, core.ColorMuted)

	if g.popup != "" {
		banner := "★ " + g.popup + " ★"
		x := (dst.Width() - len([]rune(banner))) / 2
		dst.DrawTextColored(x, 2, banner, core.ColorBanner)
	}

	switch snap.State {
	case sim.StateReady:
		drawMessage(dst, "FLAPGATE", "Space to start and flap", core.ColorTitle)
	case sim.StatePaused:
		drawMessage(dst, "PAUSED", "Press P to resume", core.ColorPaused)
	case sim.StateOver:
		sub := fmt.Sprintf("Score: %d  Best: %d  |  R to restart", snap.Score, snap.HighScore)
		drawMessage(dst, "GAME OVER", sub, core.ColorGameOver)
	}
}

func drawGate(dst *core.Screen, sc scaler, gate sim.GateSnapshot) {
	x0 := sc.col(gate.X)
	w := core.Max(1, sc.col(gate.X+gate.Width)-x0)

	topRows := sc.row(gate.TopHeight)
	if topRows > 0 {
		dst.FillArea(x0, 0, w, topRows, GateChar, core.ColorGate)
		dst.FillArea(x0, topRows-1, w, 1, GateCapTop, core.ColorGateCap)
	}

	bottomY := sc.row(gate.BottomY)
	if bottomY < dst.Height() {
		dst.FillArea(x0, bottomY, w, dst.Height()-bottomY, GateChar, core.ColorGate)
		dst.FillArea(x0, bottomY, w, 1, GateCapBottom, core.ColorGateCap)
	}
}

func drawFlyer(dst *core.Screen, sc scaler, f sim.FlyerSnapshot) {
	x := sc.col(f.X)
	y := sc.row(f.Y)
	w := span(f.Width, sc.sx)
	h := span(f.Height, sc.sy)

	dst.FillArea(x, y, w, h, FlyerChar, core.ColorFlyer)
	dst.SetColored(x+w-1, y, noseGlyph(f.RotationHint), core.ColorNose)
}

// noseGlyph picks the flyer's leading glyph from its rotation hint.
func noseGlyph(rotation float64) rune {
	switch {
	case rotation < -noseThreshold:
		return FlyerNoseUp
	case rotation > noseThreshold:
		return FlyerNoseDown
	default:
		return FlyerNoseLevel
	}
}

// drawMessage draws a message box in the center of the screen.
func drawMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillArea(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
