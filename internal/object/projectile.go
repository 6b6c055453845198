package object

// NewPlayerBullet creates a bullet centred on the player's nose.
func NewPlayerBullet(id uint64, p *Player) Entity {
	return NewEntity(id, KindPlayerBullet, centerOn(p.X, PlayerWidth, BulletWidth), p.Y)
}

// NewPlayerMissile creates a homing missile centred on the player's nose.
func NewPlayerMissile(id uint64, p *Player) Entity {
	return NewEntity(id, KindPlayerMissile, centerOn(p.X, PlayerWidth, MissileWidth), p.Y)
}

// NewEnemy creates an enemy at the top edge of the field.
func NewEnemy(id uint64, x float64) Entity {
	return NewEntity(id, KindEnemy, x, 0)
}

// NewEnemyBullet creates a bullet just below an enemy, centred horizontally.
func NewEnemyBullet(id uint64, enemy *Entity) Entity {
	x := centerOn(enemy.X, EnemyWidth, EnemyBulletWidth)
	return NewEntity(id, KindEnemyBullet, x, enemy.Y+EnemyHeight)
}
