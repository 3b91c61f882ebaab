package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flapgate/internal/config"
	"github.com/vovakirdan/flapgate/internal/sim"
)

var (
	skyColor      = color.RGBA{R: 112, G: 197, B: 206, A: 255}
	gateColor     = color.RGBA{R: 83, G: 160, B: 57, A: 255}
	gateCapColor  = color.RGBA{R: 56, G: 120, B: 40, A: 255}
	flyerColor    = color.RGBA{R: 247, G: 200, B: 46, A: 255}
	eyeColor      = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	overlayColor  = color.RGBA{R: 0, G: 0, B: 0, A: 150}
	bannerColor   = color.RGBA{R: 30, G: 30, B: 60, A: 200}
	gateCapHeight = float32(12)
)

// Debug font cell size used to center text.
const (
	glyphW = 6
	glyphH = 16
)

// Game implements ebiten.Game around the simulation.
type Game struct {
	ctl   *controller
	flyer *ebiten.Image
}

// NewGame builds a window game for the given config.
func NewGame(cfg config.FlapgateConfig, opts Options) *Game {
	return &Game{ctl: newController(cfg, opts)}
}

// Update reads input and advances the simulation one tick.
func (g *Game) Update() error {
	g.ctl.step(readIntent())
	return nil
}

// readIntent decodes this frame's key, mouse and touch presses.
func readIntent() Intent {
	in := Intent{
		Start:   inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
	in.Flap = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	return in
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	snap := g.ctl.sim.Snapshot()

	for _, gate := range snap.Gates {
		drawGate(screen, gate)
	}
	g.drawFlyer(screen, snap.Flyer)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 10, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Best: %d", snap.HighScore), 10, 8+glyphH)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if g.ctl.popup != "" {
		drawBanner(screen, w, 60, "* "+g.ctl.popup+" *")
	}

	switch snap.State {
	case sim.StateReady:
		drawOverlay(screen, w, h, "FLAPGATE", "Click or press Space to flap")
	case sim.StatePaused:
		drawOverlay(screen, w, h, "PAUSED", "Press P to resume")
	case sim.StateOver:
		drawOverlay(screen, w, h, "GAME OVER",
			fmt.Sprintf("Score %d  Best %d  -  R to restart", snap.Score, snap.HighScore))
	}
}

func drawGate(screen *ebiten.Image, gate sim.GateSnapshot) {
	x, w := float32(gate.X), float32(gate.Width)
	top := float32(gate.TopHeight)
	bottomY, bottomH := float32(gate.BottomY), float32(gate.BottomHeight)

	vector.FillRect(screen, x, 0, w, top, gateColor, false)
	vector.FillRect(screen, x-2, top-gateCapHeight, w+4, gateCapHeight, gateCapColor, false)
	vector.FillRect(screen, x, bottomY, w, bottomH, gateColor, false)
	vector.FillRect(screen, x-2, bottomY, w+4, gateCapHeight, gateCapColor, false)
}

// drawFlyer draws the flyer sprite rotated by its hint around its center.
func (g *Game) drawFlyer(screen *ebiten.Image, f sim.FlyerSnapshot) {
	w, h := int(math.Ceil(f.Width)), int(math.Ceil(f.Height))
	if w <= 0 || h <= 0 {
		return
	}
	if g.flyer == nil || g.flyer.Bounds().Dx() != w || g.flyer.Bounds().Dy() != h {
		g.flyer = newFlyerImage(w, h)
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Rotate(f.RotationHint * math.Pi / 180)
	op.GeoM.Translate(f.X+f.Width/2, f.Y+f.Height/2)
	screen.DrawImage(g.flyer, &op)
}

func newFlyerImage(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(flyerColor)
	eye := float32(max(2, w/6))
	vector.FillRect(img, float32(w)-2*eye, eye, eye, eye, eyeColor, false)
	return img
}

func drawOverlay(screen *ebiten.Image, w, h int, title, subtitle string) {
	boxW := float32(max(len(title), len(subtitle))*glyphW + 40)
	boxH := float32(glyphH*3 + 20)
	x := (float32(w) - boxW) / 2
	y := (float32(h) - boxH) / 2
	vector.FillRect(screen, x, y, boxW, boxH, overlayColor, false)

	ebitenutil.DebugPrintAt(screen, title, (w-len(title)*glyphW)/2, int(y)+10)
	ebitenutil.DebugPrintAt(screen, subtitle, (w-len(subtitle)*glyphW)/2, int(y)+10+glyphH*2)
}

func drawBanner(screen *ebiten.Image, w, y int, text string) {
	tw := len(text)*glyphW + 20
	vector.FillRect(screen, float32((w-tw)/2), float32(y), float32(tw), glyphH+8, bannerColor, false)
	ebitenutil.DebugPrintAt(screen, text, (w-len(text)*glyphW)/2, y+4)
}

// Layout makes the logical field follow the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ctl.resize(outsideWidth, outsideHeight)
	f := g.ctl.sim.Field()
	return int(f.Width), int(f.Height)
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.FlapgateConfig, opts Options) error {
	cfg.Sanitize()
	title := opts.Title
	if title == "" {
		title = "Flapgate"
	}
	tps := opts.TPS
	if tps <= 0 {
		tps = 60
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(cfg.Field.Width), int(cfg.Field.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(NewGame(cfg, opts)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
