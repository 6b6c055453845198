package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectilesMoveAtFixedSpeed(t *testing.T) {
	bullet := NewEntity(1, KindPlayerBullet, 100, 200)
	enemyBullet := NewEntity(2, KindEnemyBullet, 100, 200)

	for i := 1; i <= 5; i++ {
		prevUp, prevDown := bullet.Y, enemyBullet.Y
		bullet.Advance()
		enemyBullet.Advance()

		assert.Equal(t, prevUp-BulletSpeed, bullet.Y)
		assert.Equal(t, prevDown+EnemyBulletSpeed, enemyBullet.Y)
	}
}

func TestPlayerDoesNotAdvance(t *testing.T) {
	p := NewEntity(1, KindPlayer, 10, 10)
	p.Advance()
	assert.Equal(t, 10.0, p.Y)
	assert.False(t, p.OffScreen(testField))
}

func TestOffScreen(t *testing.T) {
	tests := []struct {
		name string
		e    Entity
		want bool
	}{
		{"bullet above top", NewEntity(1, KindPlayerBullet, 0, -BulletHeight-1), true},
		{"bullet at limit", NewEntity(1, KindPlayerBullet, 0, -BulletHeight), false},
		{"missile above top", NewEntity(1, KindPlayerMissile, 0, -MissileHeight-1), true},
		{"enemy below bottom", NewEntity(1, KindEnemy, 0, 481), true},
		{"enemy at bottom", NewEntity(1, KindEnemy, 0, 480), false},
		{"enemy bullet below bottom", NewEntity(1, KindEnemyBullet, 0, 481), true},
		{"enemy above top is fine", NewEntity(1, KindEnemy, 0, -100), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.e.OffScreen(testField))
		})
	}
}

func TestSpawnPositions(t *testing.T) {
	p := NewPlayer(1, testField, 3, 3)

	b := NewPlayerBullet(2, p)
	assert.Equal(t, p.X+16-2, b.X)
	assert.Equal(t, p.Y, b.Y)

	m := NewPlayerMissile(3, p)
	assert.Equal(t, p.X+16-3, m.X)

	enemy := NewEnemy(4, 50)
	assert.Equal(t, 0.0, enemy.Y)

	eb := NewEnemyBullet(5, &enemy)
	assert.Equal(t, 50.0+16-2, eb.X)
	assert.Equal(t, float64(EnemyHeight), eb.Y)
}

func TestCompactKeepsOrder(t *testing.T) {
	es := []Entity{
		NewEntity(1, KindEnemy, 0, 0),
		NewEntity(2, KindEnemy, 0, 0),
		NewEntity(3, KindEnemy, 0, 0),
		NewEntity(4, KindEnemy, 0, 0),
	}
	es[1].MarkDestroyed()
	es[2].MarkDestroyed()

	es = Compact(es)

	assert.Len(t, es, 2)
	assert.Equal(t, uint64(1), es[0].ID)
	assert.Equal(t, uint64(4), es[1].ID)
}

func TestKindTable(t *testing.T) {
	assert.Equal(t, "missile", KindPlayerMissile.String())
	assert.Equal(t, "unknown", Kind(99).String())
	assert.Equal(t, 32.0, MaxExtent())
	assert.Equal(t, EnemyContactDamage, KindEnemy.Spec().Damage)
	assert.Equal(t, EnemyBulletDamage, KindEnemyBullet.Spec().Damage)
}
