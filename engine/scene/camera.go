package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a camera translation direction.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down
)

func (m Movement) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Camera defaults.
const (
	DefaultYaw         float32 = -90
	DefaultPitch       float32 = 0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45

	// MaxPitch keeps the front vector away from WorldUp, where Right degenerates.
	MaxPitch float32 = 89
)

// FlyCamera is a free-fly camera driven by Euler angles in degrees.
// Front, Right and Up are always rebuilt from Yaw/Pitch, never rotated incrementally.
type FlyCamera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32 // vertical field of view, degrees
}

// NewFlyCamera returns a camera at position looking down -Z.
func NewFlyCamera(position mgl32.Vec3) *FlyCamera {
	c := &FlyCamera{
		Position:         position,
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
	}
	c.updateVectors()
	return c
}

// ProcessKeyboard moves the camera MovementSpeed*dt units in direction dir.
func (c *FlyCamera) ProcessKeyboard(dir Movement, dt float32) {
	velocity := c.MovementSpeed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.WorldUp.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.WorldUp.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by a pointer delta. yoffset must
// already point up (screen y negated by the caller).
func (c *FlyCamera) ProcessMouseMovement(xoffset, yoffset float32) {
	if xoffset == 0 && yoffset == 0 {
		return
	}
	c.Yaw += xoffset * c.MouseSensitivity
	c.Pitch += yoffset * c.MouseSensitivity
	c.Pitch = mgl32.Clamp(c.Pitch, -MaxPitch, MaxPitch)
	c.updateVectors()
}

// ViewMatrix returns the look-at transform for the current position and orientation.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// Projection returns a perspective transform using Zoom as the vertical field of view.
func (c *FlyCamera) Projection(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, near, far)
}

func (c *FlyCamera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	front := mgl32.Vec3{
		float32(math.Cos(pitch) * math.Cos(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Sin(yaw)),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
