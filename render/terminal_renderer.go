package render

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/flappy/config"
	"github.com/lixenwraith/flappy/constants"
	"github.com/lixenwraith/flappy/physics"
	"github.com/lixenwraith/flappy/status"
)

// birdGlyphs maps animation frames to the wing position shown on the bird's body
var birdGlyphs = [...]rune{'^', '-', 'v', '-'}

// TerminalRenderer scales the world onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int

	worldW float64
	worldH float64
	ground float64

	debug  bool
	status *status.Registry
}

// NewTerminalRenderer creates a renderer sized to the screen's current dimensions
func NewTerminalRenderer(screen tcell.Screen, game config.GameConfig, reg *status.Registry) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		worldW: game.WorldWidth,
		worldH: game.WorldHeight,
		ground: game.GroundHeight,
		status: reg,
	}
	r.Resize()
	return r
}

// Resize re-reads the screen size, call after tcell.EventResize
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// SetDebug toggles the sensor strips and status overlay
func (r *TerminalRenderer) SetDebug(on bool) {
	r.debug = on
}

// RenderFrame draws one complete frame and shows it
func (r *TerminalRenderer) RenderFrame(v View, texts *TextLayer) {
	bg := tcell.StyleDefault.Background(RgbSky)
	r.screen.Fill(' ', bg)

	if r.width <= 0 || r.height <= 0 {
		r.screen.Show()
		return
	}

	for _, c := range v.Clouds() {
		r.fillRect(c.Body.Rect, '░', bg.Foreground(cloudColor(c.Alpha)))
	}
	for _, d := range v.Drops() {
		col, row := r.toCell(d.Body.X, d.Body.Y)
		r.set(col, row, '\'', bg.Foreground(RgbRain))
	}

	towerStyle := tcell.StyleDefault.Background(RgbTower).Foreground(RgbTowerRim)
	for _, o := range v.Obstacles() {
		r.fillRect(o.Body.Rect, '▒', towerStyle)
	}

	if r.debug {
		for _, g := range v.Sensors() {
			r.fillRect(g.Body.Rect, '¦', bg.Foreground(RgbSensor))
		}
	}

	r.drawFence(v.FenceOffset())
	r.drawBird(v)
	r.drawTexts(texts)

	if r.debug {
		r.drawStatus(v)
	}

	r.screen.Show()
}

// toCell converts world coordinates to a cell
func (r *TerminalRenderer) toCell(x, y float64) (int, int) {
	return int(math.Floor(x * float64(r.width) / r.worldW)), int(math.Floor(y * float64(r.height) / r.worldH))
}

// fillRect covers every cell the rectangle touches, always at least one
func (r *TerminalRenderer) fillRect(rect physics.Rect, ch rune, style tcell.Style) {
	x0, y0 := r.toCell(rect.Left(), rect.Top())
	x1 := int(math.Ceil(rect.Right()*float64(r.width)/r.worldW)) - 1
	y1 := int(math.Ceil(rect.Bottom()*float64(r.height)/r.worldH)) - 1
	x1 = max(x1, x0)
	y1 = max(y1, y0)

	for y := max(y0, 0); y <= min(y1, r.height-1); y++ {
		for x := max(x0, 0); x <= min(x1, r.width-1); x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// set writes one cell if it is on screen
func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// drawFence fills the ground strip with posts every tile, shifted by offset
func (r *TerminalRenderer) drawFence(offset float64) {
	_, top := r.toCell(0, r.worldH-r.ground)
	top = min(top, r.height-1)
	style := tcell.StyleDefault.Background(RgbFence).Foreground(RgbFencePost)
	unitsPerCol := r.worldW / float64(r.width)

	for x := 0; x < r.width; x++ {
		worldX := float64(x)*unitsPerCol - offset
		ch := '='
		if math.Mod(worldX, constants.FenceTileWidth) < unitsPerCol {
			ch = '#'
		}
		for y := top; y < r.height; y++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawBird(v View) {
	bird := v.Bird()
	if bird == nil || bird.Body == nil {
		return
	}

	color := RgbBird
	glyph := birdGlyphs[bird.Frame%len(birdGlyphs)]
	if !bird.Animating && bird.Angle == constants.BirdDeadAngle {
		color = RgbBirdDead
		glyph = 'x'
	}
	style := tcell.StyleDefault.Background(color).Foreground(tcell.ColorBlack)
	r.fillRect(bird.Body.Rect, ' ', style)

	col, row := r.toCell(bird.Body.CenterX(), bird.Body.CenterY())
	r.set(col, row, glyph, style)
}

// drawTexts centres each visible item's lines on its anchor
func (r *TerminalRenderer) drawTexts(texts *TextLayer) {
	if texts == nil {
		return
	}
	style := tcell.StyleDefault.Background(RgbSky).Foreground(RgbText).Bold(true)

	for _, it := range texts.Visible() {
		lines := strings.Split(it.Text, "\n")
		col, row := r.toCell(it.X, it.Y)
		row -= len(lines) / 2
		for i, line := range lines {
			r.drawString(col-len([]rune(line))/2, row+i, line, style)
		}
	}
}

func (r *TerminalRenderer) drawString(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.set(x+i, y, ch, style)
	}
}

// drawStatus lists the scene, session and registry metrics in the top-left corner
func (r *TerminalRenderer) drawStatus(v View) {
	style := tcell.StyleDefault.Background(RgbSky).Foreground(RgbDebug)
	s := v.Session()

	lines := []string{
		"scene: " + v.SceneName(),
		"session: " + sessionFlags(s.Started, s.Over),
	}
	if r.status != nil {
		lines = append(lines, r.status.Lines()...)
	}
	for i, line := range lines {
		r.drawString(0, i, line, style)
	}
}

func sessionFlags(started, over bool) string {
	switch {
	case over:
		return "over"
	case started:
		return "playing"
	default:
		return "idle"
	}
}
