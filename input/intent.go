// Package input maps raw device events to intents and routes the single activate action
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit        // q, Esc, Ctrl+C
	IntentActivate    // Space, Enter, Up, mouse click, touch
	IntentToggleMute  // m
	IntentTogglePause // p
	IntentResize      // terminal resize event
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentActivate:    "activate",
	IntentToggleMute:  "mute",
	IntentTogglePause: "pause",
	IntentResize:      "resize",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}
