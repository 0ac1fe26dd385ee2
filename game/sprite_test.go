package game

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestNewCircleTexture(t *testing.T) {
	img, err := NewCircleTexture("255,128,0", 1)
	require.NoError(t, err)
	require.Equal(t, SpriteSize, img.Bounds().Dx())
	require.Equal(t, SpriteSize, img.Bounds().Dy())

	centre := img.NRGBAAt(SpriteSize/2, SpriteSize/2)
	assert.Equal(t, uint8(255), centre.R)
	assert.Equal(t, uint8(128), centre.G)
	assert.Equal(t, uint8(0), centre.B)
	assert.GreaterOrEqual(t, centre.A, uint8(250))

	for _, p := range [][2]int{{0, 0}, {SpriteSize - 1, 0}, {0, SpriteSize - 1}, {SpriteSize - 1, SpriteSize - 1}} {
		assert.Zero(t, img.NRGBAAt(p[0], p[1]).A, "corner %v", p)
	}

	// Alpha falls off monotonically along a radius
	prev := uint8(255)
	for x := SpriteSize / 2; x < SpriteSize; x++ {
		a := img.NRGBAAt(x, SpriteSize/2).A
		assert.LessOrEqual(t, a, prev, "x=%d", x)
		prev = a
	}
}

func TestNewCircleTexture_CenterOpacity(t *testing.T) {
	img, err := NewCircleTexture("255,255,255", 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5*255, img.NRGBAAt(SpriteSize/2, SpriteSize/2).A, 16)
}

func TestNewCircleTexture_Errors(t *testing.T) {
	for _, s := range []string{"", "255,255", "a,b,c", "256,0,0", "-1,0,0", "1,2,3,4"} {
		_, err := NewCircleTexture(s, 1)
		assert.Error(t, err, "%q", s)
	}
	_, err := NewCircleTexture("1,2,3", 1.5)
	assert.Error(t, err)
}

func TestCircleTextureFromColor(t *testing.T) {
	img, err := CircleTextureFromColor(colornames.White, 1)
	require.NoError(t, err)
	c := img.NRGBAAt(SpriteSize/2, SpriteSize/2)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: c.A}, c)
}

func TestNewCircleTexture_GradientStops(t *testing.T) {
	img, err := NewCircleTexture("255,255,255", 1)
	require.NoError(t, err)

	// Pixels on the centre row, sampled at their centres (x+0.5, 32.5)
	tests := []struct {
		x     int
		alpha float64
	}{
		{38, 0.95}, // r ~ 0.2
		{47, 0.6},  // r ~ 0.5
		{55, 0.3},  // r ~ 0.75
	}
	for _, tt := range tests {
		got := img.NRGBAAt(tt.x, SpriteSize/2).A
		assert.InDelta(t, tt.alpha*255, got, 8, "x=%d", tt.x)
	}
}

func TestSaveTexturePNG(t *testing.T) {
	img, err := NewCircleTexture("200,200,255", 1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sprite.png")
	require.NoError(t, SaveTexturePNG(img, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
