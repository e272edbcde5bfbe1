package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// SpecialKeys covers non-rune keys (Enter, arrows, Ctrl+*)
	SpecialKeys map[tcell.Key]IntentType
	// Runes covers printable keys
	Runes map[rune]IntentType

	// buttonHeld suppresses repeats while the primary button stays down
	buttonHeld bool
}

// DefaultKeyTable returns the standard bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEnter:  IntentActivate,
			tcell.KeyUp:     IntentActivate,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
		},
		Runes: map[rune]IntentType{
			' ': IntentActivate,
			'w': IntentActivate,
			'k': IntentActivate,
			'q': IntentQuit,
			'm': IntentToggleMute,
			'p': IntentTogglePause,
		},
	}
}

// Translate classifies a terminal event
// A mouse press activates once; motion with the button held does not repeat it
func (kt *KeyTable) Translate(ev tcell.Event) IntentType {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyRune {
			return kt.Runes[e.Rune()]
		}
		return kt.SpecialKeys[e.Key()]
	case *tcell.EventMouse:
		pressed := e.Buttons()&tcell.Button1 != 0
		edge := pressed && !kt.buttonHeld
		kt.buttonHeld = pressed
		if edge {
			return IntentActivate
		}
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}
