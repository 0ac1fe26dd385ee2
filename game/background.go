package game

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorOscillator ping-pongs the clear colour between two endpoints
type ColorOscillator struct {
	Base      colorful.Color
	Target    colorful.Color
	Fraction  float64 // always within [0,1]
	Direction float64 // +1 or -1
	Step      float64
}

// NewColorOscillator parses the two hex endpoints and starts at the base colour
func NewColorOscillator(baseHex, targetHex string, step float64) (*ColorOscillator, error) {
	base, err := colorful.Hex(baseHex)
	if err != nil {
		return nil, fmt.Errorf("background base %q: %w", baseHex, err)
	}
	target, err := colorful.Hex(targetHex)
	if err != nil {
		return nil, fmt.Errorf("background target %q: %w", targetHex, err)
	}
	return &ColorOscillator{
		Base:      base,
		Target:    target,
		Direction: 1,
		Step:      step,
	}, nil
}

// Advance moves the fraction one step and flips direction at either bound
func (o *ColorOscillator) Advance() {
	o.Fraction += o.Step * o.Direction
	if o.Fraction >= 1 || o.Fraction <= 0 {
		if o.Fraction > 1 {
			o.Fraction = 1
		} else if o.Fraction < 0 {
			o.Fraction = 0
		}
		o.Direction = -o.Direction
	}
}

// Current returns the interpolated colour for the current fraction
func (o *ColorOscillator) Current() colorful.Color {
	switch o.Fraction {
	case 0:
		return o.Base
	case 1:
		return o.Target
	}
	return o.Base.BlendRgb(o.Target, o.Fraction)
}

// RGBA returns the current colour ready for ebiten's Fill
func (o *ColorOscillator) RGBA() color.RGBA {
	r, g, b := o.Current().Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
