package render

import (
	"sync"

	"github.com/lixenwraith/flappy/component"
)

// TextItem is one positioned, possibly multi-line text element
type TextItem struct {
	ID      component.Entity
	X, Y    float64 // World-space anchor, text is centred on it
	Text    string
	Visible bool
}

// TextLayer is the presenter shared by every front end
// It stores text state only; renderers decide how to draw it
type TextLayer struct {
	mu    sync.RWMutex
	next  component.Entity
	items map[component.Entity]*TextItem
	order []component.Entity
}

// NewTextLayer creates an empty layer
func NewTextLayer() *TextLayer {
	return &TextLayer{items: make(map[component.Entity]*TextItem)}
}

// CreateEntityAt adds an empty, visible text anchored at (x, y)
func (l *TextLayer) CreateEntityAt(x, y float64) component.Entity {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.next++
	id := l.next
	l.items[id] = &TextItem{ID: id, X: x, Y: y, Visible: true}
	l.order = append(l.order, id)
	return id
}

// SetText replaces the text of e; unknown entities are ignored
func (l *TextLayer) SetText(e component.Entity, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if it, ok := l.items[e]; ok {
		it.Text = text
	}
}

// SetVisible shows or hides e
func (l *TextLayer) SetVisible(e component.Entity, visible bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if it, ok := l.items[e]; ok {
		it.Visible = visible
	}
}

// Kill removes e
func (l *TextLayer) Kill(e component.Entity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.items[e]; !ok {
		return
	}
	delete(l.items, e)
	for i, id := range l.order {
		if id == e {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Visible returns copies of visible items with text, in creation order
func (l *TextLayer) Visible() []TextItem {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]TextItem, 0, len(l.order))
	for _, id := range l.order {
		it := l.items[id]
		if it.Visible && it.Text != "" {
			out = append(out, *it)
		}
	}
	return out
}

// Len returns the number of live items
func (l *TextLayer) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}
