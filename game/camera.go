package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sway parameters: slow, low-amplitude rotation for a parallax shimmer
const (
	swayFreqX     = 0.1
	swayFreqY     = 0.07
	swayAmplitude = 0.002
)

// Camera is a perspective camera looking down -Z
type Camera struct {
	Position  mgl32.Vec3
	RotationX float32 // radians
	RotationY float32 // radians

	FOV    float32 // vertical field of view, degrees
	Aspect float32
	Near   float32
	Far    float32

	// Output surface size in pixels
	Width  float64
	Height float64
}

// NewCamera creates a camera for a width x height viewport
func NewCamera(cfg Config) *Camera {
	c := &Camera{
		Position: mgl32.Vec3{0, 0, cfg.CameraZ},
		FOV:      cfg.FOV,
		Near:     cfg.NearPlane,
		Far:      cfg.FarPlane,
		Aspect:   1,
	}
	c.SetViewport(cfg.ScreenWidth, cfg.ScreenHeight)
	return c
}

// SetViewport updates the surface size and aspect ratio.
// Degenerate sizes (minimised windows) are ignored; it reports whether anything changed.
func (c *Camera) SetViewport(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if c.Width == float64(width) && c.Height == float64(height) {
		return false
	}
	c.Width = float64(width)
	c.Height = float64(height)
	c.Aspect = float32(width) / float32(height)
	return true
}

// Sway applies the cosmetic rotation for the given elapsed time in seconds
func (c *Camera) Sway(elapsed float64) {
	c.RotationX = float32(math.Sin(elapsed*swayFreqX) * swayAmplitude)
	c.RotationY = float32(math.Sin(elapsed*swayFreqY) * swayAmplitude)
}

// Projection returns the perspective matrix
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// View returns the world-to-camera matrix (inverse of translate * rotX * rotY)
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.HomogRotate3DY(-c.RotationY).
		Mul4(mgl32.HomogRotate3DX(-c.RotationX)).
		Mul4(mgl32.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z()))
}

// ViewProjection returns Projection * View
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// WorldToScreen projects a world point with a precomputed view-projection matrix.
// scale is pixels per world unit at the point's depth; ok is false when the
// point is outside the near/far range.
func (c *Camera) WorldToScreen(vp mgl32.Mat4, p mgl32.Vec3) (sx, sy, scale float64, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= c.Near {
		return 0, 0, 0, false
	}
	ndcZ := clip.Z() / w
	if ndcZ < -1 || ndcZ > 1 {
		return 0, 0, 0, false
	}

	ndcX := float64(clip.X() / w)
	ndcY := float64(clip.Y() / w)

	sx = (ndcX + 1) * 0.5 * c.Width
	sy = (1 - ndcY) * 0.5 * c.Height
	scale = c.Height * 0.5 / float64(w)
	return sx, sy, scale, true
}
