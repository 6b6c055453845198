package object

// Kind identifies what an Entity is. Behaviour that differs between kinds is
// looked up in the kind table rather than spread across types.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindPlayerBullet
	KindPlayerMissile
	KindEnemy
	KindEnemyBullet
)

// Sprite sizes and speeds, in field pixels and pixels per frame.
const (
	PlayerWidth  = 32
	PlayerHeight = 32
	PlayerSpeed  = 5.0

	BulletWidth  = 4
	BulletHeight = 6
	BulletSpeed  = 10.0

	MissileWidth  = 6
	MissileHeight = 12
	MissileSpeed  = 14.0

	EnemyWidth  = 32
	EnemyHeight = 32
	EnemySpeed  = 3.0

	EnemyBulletWidth  = 4
	EnemyBulletHeight = 6
	EnemyBulletSpeed  = 7.0
)

// Damage dealt to the player on contact.
const (
	EnemyBulletDamage  = 1
	EnemyContactDamage = 3
)

// KindSpec is the per-kind row of the behaviour table.
type KindSpec struct {
	Name   string
	Width  float64
	Height float64
	Speed  float64

	// Move advances an entity by one frame. Nil for input-driven kinds.
	Move func(e *Entity, spec KindSpec)

	// OffScreen reports whether the entity has left the field and should be removed.
	OffScreen func(e *Entity, spec KindSpec, field Screen) bool

	// Damage is what the entity deals to the player when they collide.
	Damage int
}

var kinds = [...]KindSpec{
	KindPlayer: {
		Name:      "player",
		Width:     PlayerWidth,
		Height:    PlayerHeight,
		Speed:     PlayerSpeed,
		OffScreen: never,
	},
	KindPlayerBullet: {
		Name:      "bullet",
		Width:     BulletWidth,
		Height:    BulletHeight,
		Speed:     BulletSpeed,
		Move:      moveUp,
		OffScreen: exitedTop,
	},
	KindPlayerMissile: {
		Name:      "missile",
		Width:     MissileWidth,
		Height:    MissileHeight,
		Speed:     MissileSpeed,
		Move:      moveUp,
		OffScreen: exitedTop,
	},
	KindEnemy: {
		Name:      "enemy",
		Width:     EnemyWidth,
		Height:    EnemyHeight,
		Speed:     EnemySpeed,
		Move:      moveDown,
		OffScreen: exitedBottom,
		Damage:    EnemyContactDamage,
	},
	KindEnemyBullet: {
		Name:      "enemy bullet",
		Width:     EnemyBulletWidth,
		Height:    EnemyBulletHeight,
		Speed:     EnemyBulletSpeed,
		Move:      moveDown,
		OffScreen: exitedBottom,
		Damage:    EnemyBulletDamage,
	},
}

// Spec returns the table row for k.
func (k Kind) Spec() KindSpec {
	return kinds[k]
}

func (k Kind) String() string {
	if int(k) < len(kinds) {
		return kinds[k].Name
	}
	return "unknown"
}

// MaxExtent is the largest width or height of any kind. A grid cell this size
// holds any entity in at most four cells.
func MaxExtent() float64 {
	m := 0.0
	for _, s := range kinds {
		m = max(m, s.Width, s.Height)
	}
	return m
}

func moveUp(e *Entity, spec KindSpec) {
	e.Y -= spec.Speed
}

func moveDown(e *Entity, spec KindSpec) {
	e.Y += spec.Speed
}

func exitedTop(e *Entity, spec KindSpec, _ Screen) bool {
	return e.Y < -spec.Height
}

func exitedBottom(e *Entity, _ KindSpec, field Screen) bool {
	return e.Y > float64(field.Height)
}

func never(*Entity, KindSpec, Screen) bool {
	return false
}
