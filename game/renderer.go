package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// screenSprite is one particle projected into screen space
type screenSprite struct {
	X, Y    float64 // centre in pixels
	Size    float64 // edge length in pixels
	R, G, B float32 // straight (non-premultiplied) colour
	A       float32
}

// Renderer draws the starfield layers as additive point sprites
type Renderer struct {
	camera *Camera
	sprite *ebiten.Image

	// Projected sprites per layer, rebuilt when the layer or camera changes
	cache  map[*ParticleGroup][]screenSprite
	lastVP map[*ParticleGroup]mgl32.Mat4

	op ebiten.DrawImageOptions
}

// NewRenderer creates a new renderer
func NewRenderer(camera *Camera, sprite *ebiten.Image) *Renderer {
	return &Renderer{
		camera: camera,
		sprite: sprite,
		cache:  make(map[*ParticleGroup][]screenSprite),
		lastVP: make(map[*ParticleGroup]mgl32.Mat4),
	}
}

// Render clears to the sky colour and draws every layer
func (r *Renderer) Render(screen *ebiten.Image, field *Starfield) {
	screen.Fill(field.Sky.RGBA())

	vp := r.camera.ViewProjection()
	for _, g := range field.Groups() {
		for _, s := range r.sprites(g, vp) {
			r.drawSprite(screen, s)
		}
	}
}

// sprites returns the cached projection of g, re-projecting when its buffers
// are dirty or the camera moved since the last frame.
func (r *Renderer) sprites(g *ParticleGroup, vp mgl32.Mat4) []screenSprite {
	dirty := g.ConsumeDirty()
	cached, ok := r.cache[g]
	if ok && !dirty.Any() && r.lastVP[g] == vp {
		return cached
	}
	cached = r.project(g, vp, cached[:0])
	r.cache[g] = cached
	r.lastVP[g] = vp
	return cached
}

// project converts every visible particle of g into a screen sprite, appending to dst
func (r *Renderer) project(g *ParticleGroup, vp mgl32.Mat4, dst []screenSprite) []screenSprite {
	tint := g.Config.Tint
	tr := float32(tint.R) / 255
	tg := float32(tint.G) / 255
	tb := float32(tint.B) / 255

	for i, p := range g.Positions {
		a := g.Alpha(i)
		if a <= 0 {
			continue
		}
		sx, sy, scale, ok := r.camera.WorldToScreen(vp, p)
		if !ok {
			continue
		}
		s := screenSprite{
			X:    sx,
			Y:    sy,
			Size: float64(g.Sizes[i]) * scale,
			R:    tr,
			G:    tg,
			B:    tb,
			A:    a,
		}
		if g.Colors != nil {
			c := g.Colors[i]
			s.R *= c[0]
			s.G *= c[1]
			s.B *= c[2]
		}
		dst = append(dst, s)
	}
	return dst
}

func (r *Renderer) drawSprite(screen *ebiten.Image, s screenSprite) {
	if r.sprite == nil || s.Size < 0.5 {
		return
	}
	k := s.Size / SpriteSize

	op := &r.op
	op.GeoM.Reset()
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(s.X-s.Size/2, s.Y-s.Size/2)

	// ColorScale is premultiplied
	op.ColorScale.Reset()
	op.ColorScale.Scale(s.R*s.A, s.G*s.A, s.B*s.A, s.A)

	op.Blend = ebiten.BlendLighter
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.sprite, op)
}
