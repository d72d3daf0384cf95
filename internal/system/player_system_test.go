package system

import (
	"math/rand"
	"testing"

	"go-galaxy-raid/internal/component"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerStaysInsideBand(t *testing.T) {
	f := newFixture(t)
	tun := f.world.Tuning
	p := f.world.Player
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 5000; i++ {
		in := component.Intent{
			Left:  rng.Intn(2) == 0,
			Right: rng.Intn(3) == 0,
			Up:    rng.Intn(2) == 0,
			Down:  rng.Intn(4) == 0,
		}
		f.player.Update(rng.Float64()*tun.MaxDeltaTime, in)

		require.GreaterOrEqual(t, p.X, tun.PlayerMarginX)
		require.LessOrEqual(t, p.X, tun.Width-tun.PlayerMarginX)
		require.GreaterOrEqual(t, p.Y, tun.Height-tun.PlayerBandTop)
		require.LessOrEqual(t, p.Y, tun.Height-tun.PlayerBandBottom)
	}
}

func TestPlayerMovesBySpeed(t *testing.T) {
	f := newFixture(t)
	p := f.world.Player
	x0, y0 := p.X, p.Y

	f.player.Update(0.01, component.Intent{Right: true, Up: true})
	assert.InDelta(t, x0+3, p.X, 1e-9)
	assert.InDelta(t, y0-3, p.Y, 1e-9)

	// противоположные клавиши гасят друг друга
	f.player.Update(0.01, component.Intent{Left: true, Right: true})
	assert.InDelta(t, x0+3, p.X, 1e-9)
}

func TestPlayerFireIsCooldownGated(t *testing.T) {
	f := newFixture(t)
	p := f.world.Player
	fire := component.Intent{Fire: true}

	f.player.Update(0.016, fire)
	require.Len(t, f.world.Bullets, 1)
	b := f.world.Bullets[0]
	assert.Equal(t, p.X, b.X)
	assert.Equal(t, p.Y-p.H/2, b.Y)
	assert.Equal(t, -f.world.Tuning.BulletSpeed, b.VY)
	assert.Equal(t, p.FireRate, p.FireCooldown)

	// 0.2 с перезарядки: ещё 12 кадров по 16 мс - без выстрела
	for i := 0; i < 12; i++ {
		f.player.Update(0.016, fire)
	}
	assert.Len(t, f.world.Bullets, 1)

	f.player.Update(0.016, fire)
	assert.Len(t, f.world.Bullets, 2)
}

func TestDeadPlayerDoesNothing(t *testing.T) {
	f := newFixture(t)
	p := f.world.Player
	p.Alive = false
	x0, y0 := p.X, p.Y

	f.player.Update(0.03, component.Intent{Left: true, Up: true, Fire: true})
	assert.Equal(t, x0, p.X)
	assert.Equal(t, y0, p.Y)
	assert.Empty(t, f.world.Bullets)
}
