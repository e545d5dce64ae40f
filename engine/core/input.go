package core

// Input holds the per-frame input state: a two-state key table fed by discrete
// key events, and the cursor samples used to derive the pointer delta.
type Input struct {
	keys           map[Key]bool
	mouseX, mouseY float64
	dx, dy         float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	if e, ok := ev.(EventKey); ok {
		in.keys[e.Key] = e.Down
	}
}

func (in *Input) IsKeyDown(k Key) bool { return in.keys[k] }

// SeedMouse sets the reference cursor position without producing a delta.
func (in *Input) SeedMouse(x, y float64) {
	in.mouseX, in.mouseY = x, y
	in.dx, in.dy = 0, 0
}

// SampleMouse records a new cursor position; the delta is relative to the previous sample.
func (in *Input) SampleMouse(x, y float64) {
	in.dx, in.dy = x-in.mouseX, y-in.mouseY
	in.mouseX, in.mouseY = x, y
}

func (in *Input) Mouse() (float64, float64)      { return in.mouseX, in.mouseY }
func (in *Input) MouseDelta() (float64, float64) { return in.dx, in.dy }
