package world

import (
	"github.com/tomz197/skyraid/internal/audio"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/object"
)

// spawnPlayerFire handles auto-fire and missile launches.
func (w *World) spawnPlayerFire(in input.Input) {
	if w.autoFire.Tick() {
		w.Bullets = append(w.Bullets, object.NewPlayerBullet(w.newID(), w.Player))
		w.sounds.Play(audio.EffectGunshot)
	}

	w.missile.Tick()
	if in.Fire && w.missile.Ready() {
		w.Missiles = append(w.Missiles, object.NewPlayerMissile(w.newID(), w.Player))
		w.missile.Trigger()
		w.sounds.Play(audio.EffectMissile)
	}
}

// spawnEnemies adds an enemy at a random column along the top edge whenever
// the spawn timer fires.
func (w *World) spawnEnemies() {
	if !w.enemySpawn.Tick() {
		return
	}
	span := w.rules.Field.Width - object.EnemyWidth
	x := 0
	if span > 0 {
		x = w.rng.IntN(span + 1)
	}
	w.Enemies = append(w.Enemies, object.NewEnemy(w.newID(), float64(x)))
}

// enemyFires draws whether one enemy shoots this frame.
func (w *World) enemyFires() bool {
	return w.rules.FireOdds > 0 && w.rng.IntN(w.rules.FireOdds) == 0
}
