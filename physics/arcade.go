package physics

import "time"

// Arcade is a minimal velocity integrator with AABB overlap
// It owns no bodies; callers pass the ones they want stepped
type Arcade struct {
	bounds  Rect
	gravity float64
}

// NewArcade creates an integrator for a world of the given bounds
func NewArcade(bounds Rect, gravity float64) *Arcade {
	return &Arcade{bounds: bounds, gravity: gravity}
}

// Bounds returns the world rectangle
func (a *Arcade) Bounds() Rect {
	return a.bounds
}

// Integrate advances velocity then position: v += g*dt; p += v*dt
func (a *Arcade) Integrate(b *Body, dt time.Duration) {
	if b == nil {
		return
	}
	sec := dt.Seconds()

	if b.AllowGravity {
		b.VelY += (a.gravity + b.GravityY) * sec
	}
	b.X += b.VelX * sec
	b.Y += b.VelY * sec

	if b.CollideWorldBounds {
		a.clamp(b)
	}
}

// clamp keeps the body inside bounds and kills velocity into the wall
func (a *Arcade) clamp(b *Body) {
	if b.X < a.bounds.Left() {
		b.X = a.bounds.Left()
		b.VelX = 0
	} else if b.Right() > a.bounds.Right() {
		b.X = a.bounds.Right() - b.W
		b.VelX = 0
	}
	if b.Y < a.bounds.Top() {
		b.Y = a.bounds.Top()
		b.VelY = 0
	} else if b.Bottom() > a.bounds.Bottom() {
		b.Y = a.bounds.Bottom() - b.H
		b.VelY = 0
	}
}

// ApplyImpulse sets vertical velocity (a flap replaces, not adds)
func (a *Arcade) ApplyImpulse(b *Body, velY float64) {
	if b == nil {
		return
	}
	b.VelY = velY
}

// Overlap reports whether two bodies intersect
func (a *Arcade) Overlap(x, y *Body) bool {
	if x == nil || y == nil {
		return false
	}
	return x.Rect.Overlaps(y.Rect)
}

// OnOverlap calls fn for every body in others that overlaps b
// fn may mutate the caller's collection; others is iterated over a snapshot
func (a *Arcade) OnOverlap(b *Body, others []*Body, fn func(other *Body)) int {
	if b == nil {
		return 0
	}
	hits := 0
	snapshot := make([]*Body, len(others))
	copy(snapshot, others)
	for _, o := range snapshot {
		if a.Overlap(b, o) {
			hits++
			fn(o)
		}
	}
	return hits
}

// IsOutOfBounds reports whether any edge of b touches or leaves the world
func (a *Arcade) IsOutOfBounds(b *Body) bool {
	if b == nil {
		return false
	}
	return b.Top() <= a.bounds.Top() || b.Bottom() >= a.bounds.Bottom() ||
		b.Right() < a.bounds.Left() || b.Left() > a.bounds.Right()
}
