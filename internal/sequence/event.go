package sequence

// EventKind distinguishes the three inputs the controller understands.
type EventKind int

const (
	// EventAdvance is the global tap/click/key that moves the sequence on.
	EventAdvance EventKind = iota
	// EventPetal is a click on one petal during the game.
	EventPetal
	// EventTimer is a previously scheduled delay elapsing.
	EventTimer
)

// TimerKey names a delayed transition. There is at most one live timer per key.
type TimerKey string

const (
	TimerEnterThoughts TimerKey = "enter-thoughts"
	TimerEnterGame     TimerKey = "enter-game"
	TimerEnterBridge   TimerKey = "enter-bridge"
	TimerEnterAsk      TimerKey = "enter-ask"
	TimerOverlayEnd    TimerKey = "overlay-end"
	TimerRevealMessage TimerKey = "reveal-message"
)

// Event is one input to Step.
type Event struct {
	Kind  EventKind
	Petal int
	Timer TimerKey
}

// Advance returns the global advance event.
func Advance() Event { return Event{Kind: EventAdvance} }

// Petal returns a click on petal i.
func Petal(i int) Event { return Event{Kind: EventPetal, Petal: i} }

// Timer returns the firing of timer k.
func Timer(k TimerKey) Event { return Event{Kind: EventTimer, Timer: k} }
