// Package window runs the game in a desktop window through ebiten
package window

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/flappy/config"
	"github.com/lixenwraith/flappy/constants"
	"github.com/lixenwraith/flappy/render"
	"github.com/lixenwraith/flappy/scene"
	"github.com/lixenwraith/flappy/status"
)

const fontSize = 16

var (
	colorSky      = color.RGBA{78, 192, 202, 255}
	colorTower    = color.RGBA{115, 190, 46, 255}
	colorTowerRim = color.RGBA{60, 120, 20, 255}
	colorFence    = color.RGBA{222, 216, 149, 255}
	colorPost     = color.RGBA{140, 100, 50, 255}
	colorBird     = color.RGBA{250, 200, 40, 255}
	colorBirdDead = color.RGBA{200, 60, 40, 255}
	colorRain     = color.RGBA{40, 90, 160, 200}
	colorSensor   = color.RGBA{255, 0, 255, 255}
)

// activateKeys mirror the terminal bindings
var activateKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK}

// Game implements ebiten.Game over a scene controller
type Game struct {
	ctrl   *scene.Controller
	texts  *render.TextLayer
	game   config.GameConfig
	status *status.Registry
	debug  bool

	face    *text.GoTextFace
	birdImg *ebiten.Image
}

// NewGame loads the UI font and wraps ctrl; the controller must already be started
func NewGame(ctrl *scene.Controller, texts *render.TextLayer, game config.GameConfig, reg *status.Registry, debug bool) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	return &Game{
		ctrl:   ctrl,
		texts:  texts,
		game:   game,
		status: reg,
		debug:  debug,
		face:   &text.GoTextFace{Source: src, Size: fontSize},
	}, nil
}

// Update handles input then steps the controller by one tick
func (g *Game) Update() error {
	ctx := g.ctrl.Context()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		ctx.ToggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ctx.TogglePause()
	}
	if !ctx.IsPaused.Load() && activatePressed() {
		g.ctrl.Activate()
	}

	g.ctrl.Update(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func activatePressed() bool {
	for _, k := range activateKeys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// Draw paints the world back to front
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)

	for _, c := range g.ctrl.Clouds() {
		a := uint8(255 * math.Min(1, c.Alpha))
		r := c.Body.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), color.RGBA{a, a, a, a}, true)
	}
	for _, d := range g.ctrl.Drops() {
		r := d.Body.Rect
		vector.StrokeLine(screen, float32(r.X), float32(r.Y), float32(r.X), float32(r.Bottom()), 1, colorRain, true)
	}
	for _, o := range g.ctrl.Obstacles() {
		r := o.Body.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colorTower, false)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 3, colorTowerRim, false)
	}
	if g.debug {
		for _, s := range g.ctrl.Sensors() {
			r := s.Body.Rect
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, colorSensor, false)
		}
	}

	g.drawFence(screen)
	g.drawBird(screen)
	g.drawTexts(screen)

	if g.debug {
		lines := append([]string{"scene: " + g.ctrl.SceneName()}, g.status.Lines()...)
		ebitenutil.DebugPrint(screen, strings.Join(lines, "\n"))
	}
}

func (g *Game) drawFence(screen *ebiten.Image) {
	top := g.game.WorldHeight - g.game.GroundHeight
	vector.DrawFilledRect(screen, 0, float32(top), float32(g.game.WorldWidth), float32(g.game.GroundHeight), colorFence, false)

	for x := g.ctrl.FenceOffset(); x < g.game.WorldWidth; x += constants.FenceTileWidth {
		vector.DrawFilledRect(screen, float32(x), float32(top), 4, float32(g.game.GroundHeight), colorPost, false)
	}
	vector.StrokeLine(screen, 0, float32(top+8), float32(g.game.WorldWidth), float32(top+8), 2, colorPost, false)
}

func (g *Game) drawBird(screen *ebiten.Image) {
	bird := g.ctrl.Bird()
	if bird == nil || bird.Body == nil {
		return
	}
	r := bird.Body.Rect

	clr := colorBird
	if !bird.Animating {
		clr = colorBirdDead
	}

	// Draw on a scratch image so the tilt rotates around the body centre
	w, h := int(r.W), int(r.H)
	if g.birdImg == nil || g.birdImg.Bounds().Dx() != w || g.birdImg.Bounds().Dy() != h {
		g.birdImg = ebiten.NewImage(w, h)
	}
	img := g.birdImg
	img.Fill(clr)
	wingY := float32(r.H) * float32(1+bird.Frame) / 5
	vector.DrawFilledRect(img, float32(r.W)/4, wingY, float32(r.W)/3, 4, colorTowerRim, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-r.W/2, -r.H/2)
	op.GeoM.Rotate(bird.Angle * math.Pi / 180)
	op.GeoM.Translate(bird.Body.CenterX(), bird.Body.CenterY())
	screen.DrawImage(img, op)
}

func (g *Game) drawTexts(screen *ebiten.Image) {
	for _, it := range g.texts.Visible() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(it.X, it.Y)
		op.ColorScale.ScaleWithColor(color.White)
		op.LineSpacing = fontSize * 1.5
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, it.Text, g.face, op)
	}
}

// Layout fixes the logical screen to the world size; ebiten scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.game.WorldWidth), int(g.game.WorldHeight)
}
