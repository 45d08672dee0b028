package scene

// State is the active scene. Exactly one is active at a time.
type State int

const (
	Boot State = iota
	Preloading
	StartMenu
	Playing
	GameOver
	LoadFailed
)

// String returns the scene name used in logs and the status line.
func (s State) String() string {
	switch s {
	case Boot:
		return "boot"
	case Preloading:
		return "preloading"
	case StartMenu:
		return "start-menu"
	case Playing:
		return "playing"
	case GameOver:
		return "game-over"
	case LoadFailed:
		return "load-failed"
	default:
		return "unknown"
	}
}

// Event is something a scene reports back to the manager.
type Event int

const (
	EventBooted     Event = iota // display configured
	EventLoaded                  // required audio decoded
	EventLoadFailed              // required asset failed or timed out
	EventConfirm                 // rising edge of the confirm input
	EventHazardHit               // hazard touched the player
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventBooted:
		return "booted"
	case EventLoaded:
		return "loaded"
	case EventLoadFailed:
		return "load-failed"
	case EventConfirm:
		return "confirm"
	case EventHazardHit:
		return "hazard-hit"
	default:
		return "unknown"
	}
}

// transitions is the whole scene graph. A confirm on LoadFailed retries
// the preload.
var transitions = map[State]map[Event]State{
	Boot:       {EventBooted: Preloading},
	Preloading: {EventLoaded: StartMenu, EventLoadFailed: LoadFailed},
	StartMenu:  {EventConfirm: Playing},
	Playing:    {EventHazardHit: GameOver},
	GameOver:   {EventConfirm: StartMenu},
	LoadFailed: {EventConfirm: Preloading},
}

// Transition returns the state that follows s on event e. It reports false
// when e does not apply to s, in which case s is returned unchanged.
func Transition(s State, e Event) (State, bool) {
	next, ok := transitions[s][e]
	if !ok {
		return s, false
	}
	return next, true
}
