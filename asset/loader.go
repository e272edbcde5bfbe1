// Package asset prepares resources in the background while the Preload scene is shown
package asset

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/flappy/core"
)

// Step is one unit of preparation
// A failing optional step is logged and skipped; a failing required step fails the load
type Step struct {
	Name     string
	Required bool
	Run      func() error
}

// Loader runs its steps in order on a background goroutine
type Loader struct {
	steps   []Step
	running atomic.Bool

	// spawn starts the worker; swapped for a synchronous call in tests
	spawn func(func())
}

// NewLoader creates a loader for steps
func NewLoader(steps ...Step) *Loader {
	return &Loader{steps: steps, spawn: core.Go}
}

// Add appends a step; call before Load
func (l *Loader) Add(s Step) {
	l.steps = append(l.steps, s)
}

// Load implements engine.AssetLoader
// done receives nil or the first required failure, exactly once per call
// A Load issued while another is running fails immediately
func (l *Loader) Load(done func(err error)) {
	if !l.running.CompareAndSwap(false, true) {
		done(fmt.Errorf("asset load already running"))
		return
	}
	l.spawn(func() {
		defer l.running.Store(false)
		done(l.run())
	})
}

func (l *Loader) run() error {
	start := time.Now()
	for _, s := range l.steps {
		stepStart := time.Now()
		if err := s.Run(); err != nil {
			if s.Required {
				return fmt.Errorf("asset %s: %w", s.Name, err)
			}
			log.Printf("asset: optional step %s failed: %v", s.Name, err)
			continue
		}
		log.Printf("asset: %s ready in %v", s.Name, time.Since(stepStart))
	}
	log.Printf("asset: %d steps done in %v", len(l.steps), time.Since(start))
	return nil
}
