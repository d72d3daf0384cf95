package system

import (
	"testing"

	"go-galaxy-raid/internal/component"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulletKinematics(t *testing.T) {
	f := newFixture(t)
	b := f.addBullet(100, 400)
	eb := f.addEnemyBullet(100, 100, 30, 60)

	f.bullets.Update(0.5)
	assert.Equal(t, 100.0, b.X)
	assert.Equal(t, 400-f.world.Tuning.BulletSpeed*0.5, b.Y)
	assert.Equal(t, 115.0, eb.X)
	assert.Equal(t, 130.0, eb.Y)
}

func TestPruneRemovesAdjacentBulletsInOnePass(t *testing.T) {
	f := newFixture(t)
	h := f.world.Tuning.Height

	keep1 := f.addBullet(10, 300)
	f.addBullet(20, -30)
	f.addBullet(30, -40)
	keep2 := f.addBullet(40, -10)
	f.addBullet(50, -50)

	ekeep := f.addEnemyBullet(0, h, 0, 0)
	f.addEnemyBullet(0, h+25, 0, 0)
	f.addEnemyBullet(0, h+30, 0, 0)

	f.bullets.Update(0)

	require.Len(t, f.world.Bullets, 2)
	assert.Same(t, keep1, f.world.Bullets[0])
	assert.Same(t, keep2, f.world.Bullets[1])
	require.Len(t, f.world.EnemyBullets, 1)
	assert.Same(t, ekeep, f.world.EnemyBullets[0])
}

func TestFilterInPlace(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7}
	out := filterInPlace(in, func(v int) bool { return v%3 != 0 && v != 4 })
	assert.Equal(t, []int{1, 2, 5, 7}, out)
}

func TestEnemyBulletsLeavingAnyEdgeArePruned(t *testing.T) {
	f := newFixture(t)
	tun := f.world.Tuning

	// ныряльщик у нижнего края стреляет вверх по игроку
	diver := f.addEnemy(300, tun.Height-5, 1, component.Grunt)
	diver.Phase = component.Diving
	f.combat.fire(diver)
	require.Len(t, f.world.EnemyBullets, 1)
	upward := f.world.EnemyBullets[0]
	require.Less(t, upward.VY, 0.0)

	sideways := f.addEnemyBullet(tun.Width-5, 300, 280, 0)
	leftward := f.addEnemyBullet(5, 300, -280, 0)
	inside := f.addEnemyBullet(tun.Width/2, tun.Height/2, 0, 0)

	for i := 0; i < 600; i++ {
		f.bullets.Update(tun.MaxDeltaTime)
	}

	require.Len(t, f.world.EnemyBullets, 1)
	assert.Same(t, inside, f.world.EnemyBullets[0])
	assert.NotContains(t, f.world.EnemyBullets, upward)
	assert.NotContains(t, f.world.EnemyBullets, sideways)
	assert.NotContains(t, f.world.EnemyBullets, leftward)
}

func TestEnemyBulletPruneBoundsIncludeMargin(t *testing.T) {
	f := newFixture(t)
	tun := f.world.Tuning
	m := tun.PruneMargin

	keep := []*component.EnemyBullet{
		f.addEnemyBullet(-m, 100, 0, 0),
		f.addEnemyBullet(tun.Width+m, 100, 0, 0),
		f.addEnemyBullet(100, -m, 0, 0),
	}
	f.addEnemyBullet(-m-1, 100, 0, 0)
	f.addEnemyBullet(tun.Width+m+1, 100, 0, 0)
	f.addEnemyBullet(100, -m-1, 0, 0)

	f.bullets.Update(0)

	assert.Equal(t, keep, f.world.EnemyBullets)
}
