package object

// Facing is the sprite variant for the player; it has no gameplay effect.
type Facing uint8

const (
	FacingForward Facing = iota
	FacingLeft
	FacingRight
)

// DamageResult describes what a hit did to the player.
type DamageResult uint8

const (
	DamageHurt     DamageResult = iota // Health dropped, still alive
	DamageLifeLost                     // Health ran out, respawned with a life fewer
	DamageGameOver                     // Health ran out on the last life
)

// Player is the player-controlled aircraft.
type Player struct {
	Entity

	Health    int
	MaxHealth int
	Lives     int
	Facing    Facing

	SpawnX, SpawnY float64 // Bottom-centre of the field
}

// NewPlayer creates the player at the bottom centre of the field.
func NewPlayer(id uint64, field Screen, maxHealth, lives int) *Player {
	x := float64((field.Width - PlayerWidth) / 2)
	y := float64(field.Height - PlayerHeight)
	return &Player{
		Entity:    NewEntity(id, KindPlayer, x, y),
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Lives:     lives,
		SpawnX:    x,
		SpawnY:    y,
	}
}

// Steer moves the player from input and keeps them inside the field.
// Up and down both apply when held together; right wins over left.
func (p *Player) Steer(in Input, field Screen) {
	if in.Up {
		p.Y -= PlayerSpeed
	}
	if in.Down {
		p.Y += PlayerSpeed
	}

	p.Facing = FacingForward
	if in.Right {
		p.X += PlayerSpeed
		p.Facing = FacingRight
	} else if in.Left {
		p.X -= PlayerSpeed
		p.Facing = FacingLeft
	}

	field.ClampBox(&p.X, &p.Y, PlayerWidth, PlayerHeight)
}

// TakeDamage subtracts health. When health runs out a life is consumed and the
// player respawns at full health, unless that was the last life.
func (p *Player) TakeDamage(amount int) DamageResult {
	p.Health -= amount
	if p.Health > 0 {
		return DamageHurt
	}

	p.Lives--
	if p.Lives <= 0 {
		p.Lives = 0
		p.Health = 0
		return DamageGameOver
	}

	p.Respawn()
	return DamageLifeLost
}

// Respawn restores full health and moves the player back to the spawn point.
func (p *Player) Respawn() {
	p.Health = p.MaxHealth
	p.X = p.SpawnX
	p.Y = p.SpawnY
	p.Facing = FacingForward
}
