package object

// ExplosionSize is the edge length of the explosion sprite.
const ExplosionSize = 32

// ExplosionTicks is how many frames an explosion stays on screen.
const ExplosionTicks = 30

// Explosion is a purely visual marker left where something was destroyed.
type Explosion struct {
	X, Y  float64 // Top-left of the sprite
	Ticks int     // Frames remaining
}

// NewExplosion creates an explosion centred on the given entity's box.
func NewExplosion(e *Entity, ticks int) Explosion {
	return Explosion{
		X:     centerOn(e.X, e.Width(), ExplosionSize),
		Y:     centerOn(e.Y, e.Height(), ExplosionSize),
		Ticks: ticks,
	}
}

// Tick consumes one frame. Returns true once the explosion has expired.
func (x *Explosion) Tick() bool {
	if x.Ticks > 0 {
		x.Ticks--
	}
	return x.Ticks <= 0
}

// Expired reports whether the explosion should be removed.
func (x *Explosion) Expired() bool {
	return x.Ticks <= 0
}
