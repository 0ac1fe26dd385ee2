package game

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
)

// SpriteSize is the edge length of the generated point sprite in pixels
const SpriteSize = 64

// spriteStops are the radial alpha stops of the point sprite, centre outwards.
// The first stop takes the caller's centre opacity.
var spriteStops = []struct{ offset, alpha float64 }{
	{0, 1},
	{0.2, 0.95},
	{0.5, 0.6},
	{1, 0},
}

// NewCircleTexture renders a soft round point sprite: a radial gradient of the
// given "r,g,b" colour from centerOpacity at the middle to transparent at the edge.
func NewCircleTexture(rgb string, centerOpacity float64) (*image.NRGBA, error) {
	c, err := parseRGB(rgb)
	if err != nil {
		return nil, err
	}
	if centerOpacity < 0 || centerOpacity > 1 {
		return nil, fmt.Errorf("center opacity %v out of [0,1]", centerOpacity)
	}

	half := float64(SpriteSize) / 2
	grad := gg.NewRadialGradient(half, half, 0, half, half, half)
	for i, stop := range spriteStops {
		a := stop.alpha
		if i == 0 {
			a = centerOpacity
		}
		grad.AddColorStop(stop.offset, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(math.Round(a * 255))})
	}

	dc := gg.NewContext(SpriteSize, SpriteSize)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, SpriteSize, SpriteSize)
	dc.Fill()

	// gg blends the stops premultiplied, so only the coverage is taken from it
	mask := dc.AsMask()
	img := image.NewNRGBA(image.Rect(0, 0, SpriteSize, SpriteSize))
	for y := 0; y < SpriteSize; y++ {
		for x := 0; x < SpriteSize; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: mask.AlphaAt(x, y).A})
		}
	}
	return img, nil
}

// CircleTextureFromColor is NewCircleTexture for an image/color value
func CircleTextureFromColor(c color.Color, centerOpacity float64) (*image.NRGBA, error) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewCircleTexture(fmt.Sprintf("%d,%d,%d", n.R, n.G, n.B), centerOpacity)
}

func parseRGB(s string) (color.RGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.RGBA{}, fmt.Errorf("colour %q: want \"r,g,b\"", s)
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
		}
		if v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("colour %q: channel %d out of range", s, v)
		}
		ch[i] = uint8(v)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 0xff}, nil
}

// SaveTexturePNG writes a sprite to disk for inspection
func SaveTexturePNG(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create sprite file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode sprite: %w", err)
	}
	return nil
}
