package scene

import "github.com/hubastard/lightscene/engine/core"

// FlyController: WASD move, Space/X up/down, mouse look.
type FlyController struct {
	Camera *FlyCamera
}

func NewFlyController(cam *FlyCamera) *FlyController {
	return &FlyController{Camera: cam}
}

var movementKeys = [...]struct {
	key core.Key
	dir Movement
}{
	{core.KeySpace, Up},
	{core.KeyX, Down},
	{core.KeyW, Forward},
	{core.KeyA, Left},
	{core.KeyS, Backward},
	{core.KeyD, Right},
}

// Update applies held movement keys for dt seconds, then the frame's pointer delta.
func (cc *FlyController) Update(in *core.Input, dt float32) {
	for _, mk := range movementKeys {
		if in.IsKeyDown(mk.key) {
			cc.Camera.ProcessKeyboard(mk.dir, dt)
		}
	}

	// Screen y grows downward; pitch grows upward.
	dx, dy := in.MouseDelta()
	cc.Camera.ProcessMouseMovement(float32(dx), float32(-dy))
}
