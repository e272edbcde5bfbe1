package render

import "github.com/gdamore/tcell/v2"

// RGB palette approximating the flappy sprite sheet
var (
	RgbSky       = tcell.NewRGBColor(78, 192, 202)  // Daylight cyan
	RgbCloud     = tcell.NewRGBColor(235, 245, 245) // Off-white
	RgbCloudDim  = tcell.NewRGBColor(170, 215, 220) // Cloud at low alpha
	RgbRain      = tcell.NewRGBColor(40, 90, 160)   // Deep blue
	RgbTower     = tcell.NewRGBColor(115, 190, 46)  // Pipe green
	RgbTowerRim  = tcell.NewRGBColor(60, 120, 20)   // Pipe shadow
	RgbFence     = tcell.NewRGBColor(222, 216, 149) // Sand
	RgbFencePost = tcell.NewRGBColor(140, 100, 50)  // Wood
	RgbBird      = tcell.NewRGBColor(250, 200, 40)  // Yellow
	RgbBirdDead  = tcell.NewRGBColor(200, 60, 40)   // Red
	RgbText      = tcell.NewRGBColor(255, 255, 255) // White
	RgbSensor    = tcell.NewRGBColor(255, 0, 255)   // Magenta debug strip
	RgbDebug     = tcell.NewRGBColor(0, 0, 0)       // Black overlay text
)

// cloudColor fades towards the sky as alpha drops
func cloudColor(alpha float64) tcell.Color {
	if alpha >= 0.9 {
		return RgbCloud
	}
	return RgbCloudDim
}
