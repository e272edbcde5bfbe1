package input

import "log"

// Handler reacts to the activate action
type Handler func()

// Gate holds at most one activate handler
// Registering replaces the previous handler, so a scene can never trigger another scene's action
type Gate struct {
	name    string
	handler Handler
	once    bool

	// fired counts dispatched activations, for the debug overlay
	fired int64
}

// NewGate creates an empty gate
func NewGate() *Gate {
	return &Gate{}
}

// OnActivate registers a persistent handler, deregistering any previous one
func (g *Gate) OnActivate(name string, h Handler) {
	g.register(name, h, false)
}

// OnActivateOnce registers a handler that is removed before its first run
func (g *Gate) OnActivateOnce(name string, h Handler) {
	g.register(name, h, true)
}

func (g *Gate) register(name string, h Handler, once bool) {
	if g.handler != nil {
		log.Printf("input: replacing handler %q with %q", g.name, name)
	}
	g.name = name
	g.handler = h
	g.once = once
}

// RemoveActivateHandler deregisters the current handler; no-op when empty
func (g *Gate) RemoveActivateHandler() {
	g.name = ""
	g.handler = nil
	g.once = false
}

// Active returns the registered handler name, empty when none
func (g *Gate) Active() string {
	return g.name
}

// Activate dispatches to the current handler
// Returns false when nothing is registered
func (g *Gate) Activate() bool {
	h := g.handler
	if h == nil {
		return false
	}
	if g.once {
		g.RemoveActivateHandler()
	}
	g.fired++
	h()
	return true
}

// Fired returns the number of dispatched activations
func (g *Gate) Fired() int64 {
	return g.fired
}
