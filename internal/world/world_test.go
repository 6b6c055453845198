package world

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/skyraid/internal/audio"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/object"
)

// stubRand always draws n, capped to the requested range. With n = 1 enemies
// never fire and always spawn at x = 1.
type stubRand struct{ n int }

func (r stubRand) IntN(max int) int {
	return min(r.n, max-1)
}

type mockSounds struct {
	mock.Mock
}

func (m *mockSounds) Play(effect audio.Effect) {
	m.Called(effect)
}

func (m *mockSounds) PlayLoop(track audio.Track) {
	m.Called(track)
}

func newTestWorld() *World {
	return New(DefaultRules(), stubRand{n: 1}, nil)
}

func TestNewStartsRandomSoundtrack(t *testing.T) {
	sounds := &mockSounds{}
	sounds.On("PlayLoop", audio.Track(5)).Once()

	w := New(DefaultRules(), stubRand{n: 4}, sounds)

	assert.Equal(t, audio.Track(5), w.Track)
	sounds.AssertExpectations(t)
}

func TestSoundtrackWithinRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 200; i++ {
		w := New(DefaultRules(), rng, nil)
		assert.GreaterOrEqual(t, int(w.Track), 1)
		assert.LessOrEqual(t, int(w.Track), audio.TrackCount)
	}
}

func TestAutoFireEveryEightFrames(t *testing.T) {
	sounds := &mockSounds{}
	sounds.On("PlayLoop", mock.Anything)
	sounds.On("Play", audio.EffectGunshot)

	w := New(DefaultRules(), stubRand{n: 1}, sounds)
	for i := 0; i < 24; i++ {
		require.Equal(t, Running, w.Step(input.Input{}))
	}

	assert.Len(t, w.Bullets, 3)
	sounds.AssertNumberOfCalls(t, "Play", 3)
}

func TestMissileCooldown(t *testing.T) {
	w := newTestWorld()
	fire := input.Input{Fire: true}

	w.spawnPlayerFire(fire)
	require.Len(t, w.Missiles, 1)
	assert.False(t, w.MissileReady())

	for i := 0; i < 479; i++ {
		w.spawnPlayerFire(fire)
	}
	assert.Len(t, w.Missiles, 1, "still cooling down after 480 frames")
	assert.True(t, w.MissileReady())

	w.spawnPlayerFire(fire)
	assert.Len(t, w.Missiles, 2)
}

func TestMissileNeedsFireHeld(t *testing.T) {
	w := newTestWorld()
	for i := 0; i < 10; i++ {
		w.spawnPlayerFire(input.Input{})
	}
	assert.Empty(t, w.Missiles)
}

func TestEnemySpawnCadence(t *testing.T) {
	w := newTestWorld()

	for i := 0; i < 30; i++ {
		w.spawnEnemies()
	}
	require.Empty(t, w.Enemies)

	w.spawnEnemies()
	require.Len(t, w.Enemies, 1)
	assert.Equal(t, 1.0, w.Enemies[0].X)
	assert.Equal(t, 0.0, w.Enemies[0].Y)

	for i := 0; i < 31; i++ {
		w.spawnEnemies()
	}
	assert.Len(t, w.Enemies, 2)
}

func TestEnemySpawnWithinField(t *testing.T) {
	w := New(DefaultRules(), rand.New(rand.NewPCG(1, 1)), nil)
	w.enemySpawn.Step = w.enemySpawn.Delay

	for i := 0; i < 1000; i++ {
		w.spawnEnemies()
	}
	require.Len(t, w.Enemies, 1000)

	limit := float64(w.rules.Field.Width - object.EnemyWidth)
	for _, e := range w.Enemies {
		assert.GreaterOrEqual(t, e.X, 0.0)
		assert.LessOrEqual(t, e.X, limit)
	}
}

func TestEnemyFireRate(t *testing.T) {
	w := New(DefaultRules(), rand.New(rand.NewPCG(42, 1024)), nil)

	fired := 0
	for i := 0; i < 1000; i++ {
		if w.enemyFires() {
			fired++
		}
	}
	assert.GreaterOrEqual(t, fired, 10)
	assert.LessOrEqual(t, fired, 60)
}

func TestEnemyBulletSpawnsBelowEnemy(t *testing.T) {
	w := New(DefaultRules(), stubRand{n: 0}, nil)
	w.Enemies = append(w.Enemies, object.NewEnemy(w.newID(), 100))

	w.moveEntities()

	require.Len(t, w.EnemyBullets, 1)
	eb := w.EnemyBullets[0]
	assert.Equal(t, 100.0+16-2, eb.X)
	assert.Equal(t, object.EnemySpeed+object.EnemyHeight+object.EnemyBulletSpeed, eb.Y,
		"spawned under the moved enemy and moved in the same frame")
}

func TestStepClampsPlayer(t *testing.T) {
	w := newTestWorld()
	w.enemySpawn.Step = 0
	field := w.rules.Field

	for i := 0; i < 100; i++ {
		w.Step(input.Input{Up: true, Left: true})
		assert.GreaterOrEqual(t, w.Player.X, 0.0)
		assert.GreaterOrEqual(t, w.Player.Y, 0.0)
	}
	assert.Equal(t, 0.0, w.Player.X)
	assert.Equal(t, 0.0, w.Player.Y)

	for i := 0; i < 200; i++ {
		w.Step(input.Input{Down: true, Right: true})
	}
	assert.Equal(t, float64(field.Width-object.PlayerWidth), w.Player.X)
	assert.Equal(t, float64(field.Height-object.PlayerHeight), w.Player.Y)
}

func TestStepScrollsBackground(t *testing.T) {
	w := newTestWorld()
	for i := 0; i < 481; i++ {
		w.Step(input.Input{})
	}
	assert.Equal(t, 1.0, w.Scroll.Offset)
}

func TestOffScreenRemoval(t *testing.T) {
	w := newTestWorld()
	w.Bullets = append(w.Bullets, object.NewPlayerBullet(w.newID(), w.Player))
	w.Bullets[0].Y = -object.BulletHeight - 1
	w.Enemies = append(w.Enemies, object.NewEnemy(w.newID(), 10))
	w.Enemies[0].Y = float64(w.rules.Field.Height + 1)
	w.EnemyBullets = append(w.EnemyBullets, object.NewEntity(w.newID(), object.KindEnemyBullet, 10, 481))

	w.Step(input.Input{})

	assert.Empty(t, w.Bullets)
	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.EnemyBullets)
}

func TestProjectilesMoveEachStep(t *testing.T) {
	w := newTestWorld()
	w.Bullets = append(w.Bullets, object.NewEntity(w.newID(), object.KindPlayerBullet, 10, 300))
	w.EnemyBullets = append(w.EnemyBullets, object.NewEntity(w.newID(), object.KindEnemyBullet, 10, 100))

	for i := 1; i <= 5; i++ {
		w.moveEntities()
		assert.Equal(t, 300-float64(i)*object.BulletSpeed, w.Bullets[0].Y)
		assert.Equal(t, 100+float64(i)*object.EnemyBulletSpeed, w.EnemyBullets[0].Y)
	}
}

func TestGameOverStopsWorld(t *testing.T) {
	w := newTestWorld()
	w.Player.Health = 1
	w.Player.Lives = 1
	w.EnemyBullets = append(w.EnemyBullets,
		object.NewEntity(w.newID(), object.KindEnemyBullet, w.Player.X+10, w.Player.Y))

	require.Equal(t, GameOver, w.Step(input.Input{}))
	assert.True(t, w.Over())
	frame := w.Frame

	assert.Equal(t, GameOver, w.Step(input.Input{Fire: true}))
	assert.Equal(t, frame, w.Frame)
	assert.Equal(t, "game over", GameOver.String())
}

func TestExplosionRemovedAfterThirtyFrames(t *testing.T) {
	w := newTestWorld()
	enemy := object.NewEnemy(w.newID(), 50)
	w.explode(&enemy)

	for i := 1; i < object.ExplosionTicks; i++ {
		w.decayExplosions()
		w.compact()
		require.Len(t, w.Explosions, 1, "removed early after %d frames", i)
	}

	w.decayExplosions()
	w.compact()
	assert.Empty(t, w.Explosions)
}
