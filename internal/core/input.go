package core

// Action is a player intent, independent of the key or button behind it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // move paddle left while held
	ActionRight          // move paddle right while held
	ActionLaunch         // launch the ball; restart after Win/Lose
	ActionFire           // primary pointer button held
	ActionPause          // toggle pause
	ActionResume         // leave pause
	ActionRestart        // rebuild the level
	ActionBack           // back to the main menu (paused or finished)
	ActionShot1          // select normal shot
	ActionShot2          // select piercing shot
	ActionShot3          // select explosive shot
	ActionQuit           // leave the program

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Launch", "Fire", "Pause", "Resume",
	"Restart", "Back", "Shot1", "Shot2", "Shot3", "Quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the input sampled for one simulation step: the set of
// active actions plus the pointer in world coordinates. It is a plain
// value; copies are independent.
type InputFrame struct {
	actions uint32

	PointerX, PointerY float64
}

// NewInputFrame returns a frame with no actions and the pointer at the
// origin.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as active. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a != ActionNone && a < actionCount {
		f.actions |= 1 << a
	}
}

// Has reports whether a is active.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.actions&(1<<a) != 0
}

// Empty reports whether no action is active.
func (f InputFrame) Empty() bool {
	return f.actions == 0
}

// SetPointer records the pointer position in world coordinates.
func (f *InputFrame) SetPointer(x, y float64) {
	f.PointerX, f.PointerY = x, y
}

// Clear drops every action. The pointer is kept.
func (f *InputFrame) Clear() {
	f.actions = 0
}

// Clone returns a copy of f.
func (f InputFrame) Clone() InputFrame {
	return f
}
