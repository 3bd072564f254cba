package protocol

// Direction represents paddle movement direction
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = 2
)

// Side identifies one end of the court
type Side int

const (
	SideNone   Side = 0
	SidePlayer Side = 1
	SideAI     Side = 2
)

// String returns the name shown on the win banner
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "Player"
	case SideAI:
		return "AI"
	}
	return "None"
}

// Key is a discrete key press the engine understands on the game over screen
type Key int

const (
	KeyNone Key = iota
	Key3
	Key5
	Key7
	KeyEscape
)

// Action is the outcome of a game over key press
type Action int

const (
	ActionNone Action = iota
	ActionContinue
	ActionExit
)

func (a Action) String() string {
	switch a {
	case ActionContinue:
		return "continue"
	case ActionExit:
		return "exit"
	}
	return "none"
}

// KeyState is the snapshot of movement keys held during a frame.
// Up and Down may both be held.
type KeyState struct {
	Up   bool
	Down bool
}

// BoxState is an axis-aligned bounding box in court coordinates
type BoxState struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// BallState represents the ball's bounds and velocity
type BallState struct {
	BoxState
	VX float64
	VY float64
}

// GameState is the read-only view of a match handed to the renderer
type GameState struct {
	Frame        int
	Ball         BallState
	Player       BoxState
	AI           BoxState
	PlayerScore  int
	AIScore      int
	CourtWidth   int
	CourtHeight  int
	WinningScore int
	GameOver     bool
	Winner       Side
	Options      []int // replay thresholds offered on game over
	Recommended  int
	SoundOn      bool
}
