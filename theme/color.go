package theme

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	accentSaturation = 1.0
	accentLightness  = 0.45
)

// ThemeColor returns the primary colour as a CSS hsl() value.
func (c *Config) ThemeColor() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.s.PrimaryHue,
		int(accentSaturation*100), int(accentLightness*100))
}

// AccentColor returns the primary colour in sRGB.
func (c *Config) AccentColor() color.RGBA {
	return HSL(float64(c.s.PrimaryHue), accentSaturation, accentLightness)
}

// HSL converts hue in degrees and saturation/lightness in [0,1] to RGBA.
// Hues outside [0,360) wrap around.
func HSL(h, s, l float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
