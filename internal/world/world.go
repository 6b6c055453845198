// Package world runs the shooter's simulation. A World owns every entity of
// one game and advances them a frame at a time; it never blocks, never logs
// and is not safe for concurrent use.
package world

import (
	"github.com/tomz197/skyraid/internal/audio"
	"github.com/tomz197/skyraid/internal/background"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/physics"
)

// Rand is the source of randomness for spawn positions, enemy fire and the
// soundtrack. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Rules holds the gameplay parameters of a World.
type Rules struct {
	Field object.Screen

	MaxHealth int
	Lives     int

	AutoFireDelay   float64 // Frames between player bullets
	MissileCooldown int     // Frames between missiles
	SpawnStep       float64 // Enemy spawn timer increment per frame
	SpawnDelay      float64 // Enemy spawn timer threshold
	FireOdds        int     // Each enemy fires with probability 1/FireOdds per frame
	HomingSpeed     float64 // Max horizontal missile correction per frame
	ScrollSpeed     float64 // Background pixels per frame
	ExplosionTicks  int
}

// DefaultRules returns the standard game.
func DefaultRules() Rules {
	return Rules{
		Field:           object.Screen{Width: 320, Height: 480},
		MaxHealth:       3,
		Lives:           3,
		AutoFireDelay:   8,
		MissileCooldown: 480,
		SpawnStep:       1.3,
		SpawnDelay:      40,
		FireOdds:        30,
		HomingSpeed:     8,
		ScrollSpeed:     1,
		ExplosionTicks:  object.ExplosionTicks,
	}
}

// Status is the outcome of a frame.
type Status uint8

const (
	Running Status = iota
	GameOver
)

func (s Status) String() string {
	if s == GameOver {
		return "game over"
	}
	return "running"
}

// World is the complete state of one game.
type World struct {
	rules  Rules
	rng    Rand
	sounds audio.Player

	Player       *object.Player
	Bullets      []object.Entity
	Missiles     []object.Entity
	Enemies      []object.Entity
	EnemyBullets []object.Entity
	Explosions   []object.Explosion

	Score  int
	Frame  uint64 // Frames stepped so far
	Track  audio.Track
	Scroll background.Scroll

	autoFire   object.Timer
	missile    object.Cooldown
	enemySpawn object.Timer
	grid       *physics.SpatialGrid
	nextID     uint64
	over       bool
}

// New creates a game with the player at the bottom centre of the field and
// starts a randomly chosen soundtrack. A nil sounds plays nothing.
func New(rules Rules, rng Rand, sounds audio.Player) *World {
	if sounds == nil {
		sounds = audio.Nop{}
	}

	cell := object.MaxExtent()
	w := &World{
		rules:      rules,
		rng:        rng,
		sounds:     sounds,
		Scroll:     background.NewScroll(rules.ScrollSpeed, float64(rules.Field.Height)),
		autoFire:   object.NewTimer(1, rules.AutoFireDelay),
		missile:    object.NewCooldown(rules.MissileCooldown),
		enemySpawn: object.NewTimer(rules.SpawnStep, rules.SpawnDelay),
		grid:       physics.NewSpatialGrid(float64(rules.Field.Width), float64(rules.Field.Height), cell),
	}
	w.Player = object.NewPlayer(w.newID(), rules.Field, rules.MaxHealth, rules.Lives)

	w.Track = audio.Track(1 + rng.IntN(audio.TrackCount))
	w.sounds.PlayLoop(w.Track)
	return w
}

// Rules returns the parameters the world was created with.
func (w *World) Rules() Rules {
	return w.rules
}

// Over reports whether the game has ended.
func (w *World) Over() bool {
	return w.over
}

// MissileReady reports whether holding fire on the next Step launches a missile.
func (w *World) MissileReady() bool {
	return w.missile.Remaining <= 1
}

// Step advances the game by one frame. Once the game is over Step does
// nothing and keeps returning GameOver.
func (w *World) Step(in input.Input) Status {
	if w.over {
		return GameOver
	}
	w.Frame++

	w.Player.Steer(in, w.rules.Field)
	w.Scroll.Advance()

	w.spawnPlayerFire(in)
	w.spawnEnemies()

	w.moveEntities()
	w.homeMissiles()

	w.resolveCollisions()
	w.decayExplosions()
	w.compact()

	if w.over {
		return GameOver
	}
	return Running
}

func (w *World) newID() uint64 {
	w.nextID++
	return w.nextID
}

// compact drops every entity marked destroyed during the frame.
func (w *World) compact() {
	w.Bullets = object.Compact(w.Bullets)
	w.Missiles = object.Compact(w.Missiles)
	w.Enemies = object.Compact(w.Enemies)
	w.EnemyBullets = object.Compact(w.EnemyBullets)

	kept := w.Explosions[:0]
	for _, x := range w.Explosions {
		if !x.Expired() {
			kept = append(kept, x)
		}
	}
	clear(w.Explosions[len(kept):])
	w.Explosions = kept
}

func (w *World) decayExplosions() {
	for i := range w.Explosions {
		w.Explosions[i].Tick()
	}
}
