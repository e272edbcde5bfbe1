package physics

// Rect is an axis-aligned rectangle in world units
type Rect struct {
	X, Y, W, H float64
}

// Left returns the minimum x
func (r Rect) Left() float64 { return r.X }

// Right returns the maximum x
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the minimum y
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the maximum y
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether two rectangles share any area
// Touching edges do not overlap
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Body is a kinematic box driven by the arcade integrator
type Body struct {
	Rect

	VelX, VelY float64

	// AllowGravity gates the world gravity for this body
	AllowGravity bool
	// GravityY is added on top of world gravity when AllowGravity is set
	GravityY float64

	// CollideWorldBounds clamps the body inside the world after integration
	CollideWorldBounds bool
}

// NewBody creates a body with gravity disabled
func NewBody(x, y, w, h float64) *Body {
	return &Body{Rect: Rect{X: x, Y: y, W: w, H: h}}
}

// CenterX returns the horizontal centre
func (b *Body) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical centre
func (b *Body) CenterY() float64 { return b.Y + b.H/2 }

// SetCenter moves the body so its centre sits at (x, y)
func (b *Body) SetCenter(x, y float64) {
	b.X = x - b.W/2
	b.Y = y - b.H/2
}
