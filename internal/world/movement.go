package world

import (
	"math"

	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/physics"
)

// moveEntities advances every linear mover by one frame and marks the ones
// that left the field. Enemies may fire as they move; their new bullets move
// in the same frame.
func (w *World) moveEntities() {
	field := w.rules.Field

	advanceAll(w.Bullets, field)
	advanceAll(w.Missiles, field)

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.IsDestroyed() {
			continue
		}
		e.Advance()
		if w.enemyFires() {
			w.EnemyBullets = append(w.EnemyBullets, object.NewEnemyBullet(w.newID(), e))
		}
		if e.OffScreen(field) {
			e.MarkDestroyed()
		}
	}

	advanceAll(w.EnemyBullets, field)
}

func advanceAll(entities []object.Entity, field object.Screen) {
	for i := range entities {
		e := &entities[i]
		if e.IsDestroyed() {
			continue
		}
		e.Advance()
		if e.OffScreen(field) {
			e.MarkDestroyed()
		}
	}
}

// homeMissiles steers each missile toward the nearest enemy. The missile only
// turns while that enemy is still above it, and never by more than the homing
// speed in one frame. Missiles stay on whole pixels so the step is exact.
func (w *World) homeMissiles() {
	for i := range w.Missiles {
		m := &w.Missiles[i]
		if m.IsDestroyed() {
			continue
		}
		target := nearestEnemy(m, w.Enemies)
		if target == nil || target.Y >= m.Y {
			continue
		}

		mx, _ := m.Center()
		ex, _ := target.Center()
		speed := math.Floor(w.rules.HomingSpeed)
		m.X = math.Round(m.X) + physics.Clamp(math.Round(ex-mx), -speed, speed)
	}
}

// nearestEnemy returns the live enemy whose centre is closest to the
// missile's centre. Ties go to the earliest enemy.
func nearestEnemy(m *object.Entity, enemies []object.Entity) *object.Entity {
	mx, my := m.Center()

	var best *object.Entity
	bestDist := math.Inf(1)
	for i := range enemies {
		e := &enemies[i]
		if e.IsDestroyed() {
			continue
		}
		ex, ey := e.Center()
		if d := physics.DistanceSquared(mx, my, ex, ey); d < bestDist {
			best = e
			bestDist = d
		}
	}
	return best
}
