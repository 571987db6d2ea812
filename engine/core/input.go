package core

// Input tracks the raw device state seen so far: held keys and buttons,
// the last pointer position and the last modifier snapshot.
type Input struct {
	keys           map[Key]bool
	buttons        ButtonMask
	mods           Mod
	mouseX, mouseY float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
		in.mods = e.Mods
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		in.mouseX, in.mouseY = e.X, e.Y
		in.mods = e.Mods
		if e.Down {
			in.buttons |= e.Button.Mask()
		} else {
			in.buttons &^= e.Button.Mask()
		}
	}
}

func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }
func (in *Input) Buttons() ButtonMask       { return in.buttons }
func (in *Input) Mods() Mod                 { return in.mods }
