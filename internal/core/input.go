package core

// Action represents a semantic turtle action, abstracted from physical key
// presses so bindings can change without touching the drawing logic.
type Action int

const (
	ActionNone     Action = iota
	ActionForward         // Up arrow, w - step forward
	ActionBackward        // Down arrow, s - step backward
	ActionLeft            // Left arrow, a - turn left
	ActionRight           // Right arrow, d - turn right
	ActionUndo            // u, ctrl+z - undo last call
	ActionPen             // Space - toggle pen up/down
	ActionColor           // c - cycle pen color
	ActionWider           // ] - thicker pen
	ActionNarrower        // [ - thinner pen
	ActionFaster          // + - shorter delay
	ActionSlower          // - - longer delay
	ActionHome            // h - go home
	ActionReset           // r - wipe drawing and history
	ActionPrompt          // : - open the command prompt
	ActionHelp            // ? - toggle full help
	ActionSnapshot        // ctrl+s - save a PNG of the canvas
	ActionBack            // Esc, b - back to the menu
	ActionQuit            // q, ctrl+c - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBackward:
		return "Backward"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUndo:
		return "Undo"
	case ActionPen:
		return "Pen"
	case ActionColor:
		return "Color"
	case ActionWider:
		return "Wider"
	case ActionNarrower:
		return "Narrower"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionHome:
		return "Home"
	case ActionReset:
		return "Reset"
	case ActionPrompt:
		return "Prompt"
	case ActionHelp:
		return "Help"
	case ActionSnapshot:
		return "Snapshot"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
