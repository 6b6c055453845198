// Package object defines the entities of the play field: the player, their
// ordnance, enemies and their bullets, explosions, and the frame timers that
// pace spawning and firing.
package object

import (
	"math"

	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/physics"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// Screen represents the play field dimensions in pixels.
type Screen struct {
	Width  int
	Height int
}

// ClampBox keeps a w x h box anchored at (x,y) fully inside the screen.
func (s Screen) ClampBox(x, y *float64, w, h float64) {
	*x = physics.Clamp(*x, 0, float64(s.Width)-w)
	*y = physics.Clamp(*y, 0, float64(s.Height)-h)
}

// Entity is anything that moves and collides. (X,Y) is the top-left corner
// of its bounding box; the box size comes from its Kind.
type Entity struct {
	ID    uint64
	Kind  Kind
	X, Y  float64
	Alive bool
}

// NewEntity creates a live entity of the given kind.
func NewEntity(id uint64, kind Kind, x, y float64) Entity {
	return Entity{ID: id, Kind: kind, X: x, Y: y, Alive: true}
}

// Width returns the bounding box width.
func (e *Entity) Width() float64 {
	return kinds[e.Kind].Width
}

// Height returns the bounding box height.
func (e *Entity) Height() float64 {
	return kinds[e.Kind].Height
}

// Rect returns the entity's bounding box.
func (e *Entity) Rect() physics.Rect {
	spec := kinds[e.Kind]
	return physics.Rect{X: e.X, Y: e.Y, W: spec.Width, H: spec.Height}
}

// Center returns the centre of the bounding box, halving the size with
// floor division so whole-pixel entities get whole-pixel centres.
func (e *Entity) Center() (float64, float64) {
	spec := kinds[e.Kind]
	return e.X + math.Floor(spec.Width/2), e.Y + math.Floor(spec.Height/2)
}

// Advance applies the kind's movement rule for one frame.
func (e *Entity) Advance() {
	spec := kinds[e.Kind]
	if spec.Move != nil {
		spec.Move(e, spec)
	}
}

// OffScreen reports whether the entity has left the field.
func (e *Entity) OffScreen(field Screen) bool {
	spec := kinds[e.Kind]
	return spec.OffScreen(e, spec, field)
}

// MarkDestroyed marks the entity for removal in the next compaction pass.
func (e *Entity) MarkDestroyed() {
	e.Alive = false
}

// IsDestroyed returns true if the entity is marked for removal.
func (e *Entity) IsDestroyed() bool {
	return !e.Alive
}

// centerOn returns the left/top offset that centres a span of size inner on a
// span of size outer starting at origin, rounding down like the sprite blits do.
func centerOn(origin, outer, inner float64) float64 {
	return origin + math.Floor(outer/2) - math.Floor(inner/2)
}

// Compact removes destroyed entities in place, keeping insertion order.
func Compact(entities []Entity) []Entity {
	kept := entities[:0] // reuse backing array
	for _, e := range entities {
		if e.Alive {
			kept = append(kept, e)
		}
	}
	clear(entities[len(kept):])
	return kept
}
