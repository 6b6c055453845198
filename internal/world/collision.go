package world

import (
	"github.com/tomz197/skyraid/internal/audio"
	"github.com/tomz197/skyraid/internal/object"
)

// resolveCollisions runs the four collision groups in their fixed order:
// player bullets and then missiles against enemies, followed by enemy bullets
// and then enemies against the player.
func (w *World) resolveCollisions() {
	w.indexEnemies()
	w.projectilesVsEnemies(w.Bullets)
	w.projectilesVsEnemies(w.Missiles)

	w.enemyBulletsVsPlayer()
	if w.over {
		return
	}
	w.enemiesVsPlayer()
}

// indexEnemies rebuilds the broad-phase grid from the live enemies.
func (w *World) indexEnemies() {
	w.grid.Clear()
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.IsDestroyed() {
			w.grid.Insert(e.Rect(), i)
		}
	}
}

// projectilesVsEnemies destroys each projectile together with the first
// enemy it overlaps, in enemy insertion order.
func (w *World) projectilesVsEnemies(projectiles []object.Entity) {
	for i := range projectiles {
		p := &projectiles[i]
		if p.IsDestroyed() {
			continue
		}
		hit := w.firstEnemyHit(p)
		if hit < 0 {
			continue
		}

		enemy := &w.Enemies[hit]
		p.MarkDestroyed()
		enemy.MarkDestroyed()
		w.explode(enemy)
		w.Score++
	}
}

// firstEnemyHit returns the lowest index of a live enemy overlapping p, or -1.
// The grid only narrows the candidates; the lowest index keeps the result
// identical to scanning every enemy in order.
func (w *World) firstEnemyHit(p *object.Entity) int {
	rect := p.Rect()
	hit := -1
	w.grid.Query(rect, func(i int) bool {
		e := &w.Enemies[i]
		if (hit < 0 || i < hit) && !e.IsDestroyed() && rect.Intersects(e.Rect()) {
			hit = i
		}
		return false
	})
	return hit
}

// enemyBulletsVsPlayer lets every enemy bullet overlapping the player hit
// once. The player rect is read per bullet since a lost life moves the player
// back to the spawn point. Scanning stops when the game ends.
func (w *World) enemyBulletsVsPlayer() {
	for i := range w.EnemyBullets {
		b := &w.EnemyBullets[i]
		if b.IsDestroyed() || !w.Player.Rect().Intersects(b.Rect()) {
			continue
		}
		b.MarkDestroyed()
		w.damagePlayer(b.Kind.Spec().Damage)
		if w.over {
			return
		}
	}
}

// enemiesVsPlayer resolves at most one enemy ramming the player per frame.
// Rammed enemies explode but score nothing.
func (w *World) enemiesVsPlayer() {
	player := w.Player.Rect()
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.IsDestroyed() || !player.Intersects(e.Rect()) {
			continue
		}
		e.MarkDestroyed()
		w.explode(e)
		w.damagePlayer(e.Kind.Spec().Damage)
		return
	}
}

// damagePlayer applies damage. A lost life blows up the player where they
// were before respawning; losing the last life ends the game.
func (w *World) damagePlayer(amount int) {
	wreck := w.Player.Entity
	switch w.Player.TakeDamage(amount) {
	case object.DamageHurt:
		return
	case object.DamageGameOver:
		w.over = true
	}
	w.explode(&wreck)
}

// explode leaves an explosion centred on e.
func (w *World) explode(e *object.Entity) {
	w.Explosions = append(w.Explosions, object.NewExplosion(e, w.rules.ExplosionTicks))
	w.sounds.Play(audio.EffectExplosion)
}
