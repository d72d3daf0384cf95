// internal/config/tuning.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Tuning holds every gameplay constant of the simulation. The zero value is
// not usable; start from Default().
type Tuning struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	PlayerWidth       float64 `json:"player_width"`
	PlayerHeight      float64 `json:"player_height"`
	PlayerSpeed       float64 `json:"player_speed"`
	PlayerFireRate    float64 `json:"player_fire_rate"` // секунд между выстрелами
	PlayerMarginX     float64 `json:"player_margin_x"`
	PlayerBandTop     float64 `json:"player_band_top"`    // от нижнего края экрана
	PlayerBandBottom  float64 `json:"player_band_bottom"` // от нижнего края экрана
	PlayerSpawnOffset float64 `json:"player_spawn_offset"`
	StartingLives     int     `json:"starting_lives"`
	RespawnDelayMs    int     `json:"respawn_delay_ms"`

	BulletWidth      float64 `json:"bullet_width"`
	BulletHeight     float64 `json:"bullet_height"`
	BulletSpeed      float64 `json:"bullet_speed"`
	EnemyBulletSpeed float64 `json:"enemy_bullet_speed"`
	PruneMargin      float64 `json:"prune_margin"`

	EnemyWidth  float64 `json:"enemy_width"`
	EnemyHeight float64 `json:"enemy_height"`
	SpacingX    float64 `json:"spacing_x"`
	SpacingY    float64 `json:"spacing_y"`
	GridTop     float64 `json:"grid_top"`
	GridShiftX  float64 `json:"grid_shift_x"`
	BossRows    int     `json:"boss_rows"`
	BossHP      int     `json:"boss_hp"`
	GruntHP     int     `json:"grunt_hp"`
	HitScore    int     `json:"hit_score"`

	EntrySpeed  float64 `json:"entry_speed"` // прирост t в секунду
	EntryRise   float64 `json:"entry_rise"`  // подъём опорной точки Безье над точкой появления
	SpawnMargin float64 `json:"spawn_margin"`
	SpawnMinY   float64 `json:"spawn_min_y"`
	SpawnMaxY   float64 `json:"spawn_max_y"`

	DiveDelayMin    float64 `json:"dive_delay_min"`
	DiveDelayMax    float64 `json:"dive_delay_max"`
	DiveCooldownMin float64 `json:"dive_cooldown_min"`
	DiveCooldownMax float64 `json:"dive_cooldown_max"`
	DivePhaseRate   float64 `json:"dive_phase_rate"`
	DiveAmplitude   float64 `json:"dive_amplitude"`
	DiveFrequency   float64 `json:"dive_frequency"`
	DiveSpeed       float64 `json:"dive_speed"`

	FormationFireRate  float64 `json:"formation_fire_rate"` // выстрелов в секунду
	DivingFireRate     float64 `json:"diving_fire_rate"`
	BossFireMultiplier float64 `json:"boss_fire_multiplier"`

	InitialCols  int `json:"initial_cols"`
	InitialRows  int `json:"initial_rows"`
	BaseCols     int `json:"base_cols"`
	MaxExtraCols int `json:"max_extra_cols"`
	BaseRows     int `json:"base_rows"`
	MaxExtraRows int `json:"max_extra_rows"`

	SwayEnabled  bool    `json:"sway_enabled"`
	SwaySpeed    float64 `json:"sway_speed"`
	SwayRange    float64 `json:"sway_range"`
	BobAmplitude float64 `json:"bob_amplitude"`
	BobFrequency float64 `json:"bob_frequency"`
	MaxDeltaTime float64 `json:"max_delta_time"`
}

// Default returns the built-in tuning.
func Default() *Tuning {
	return &Tuning{
		Width:  ScreenWidth,
		Height: ScreenHeight,

		PlayerWidth:       28,
		PlayerHeight:      18,
		PlayerSpeed:       300,
		PlayerFireRate:    0.2,
		PlayerMarginX:     20,
		PlayerBandTop:     160,
		PlayerBandBottom:  20,
		PlayerSpawnOffset: 60,
		StartingLives:     3,
		RespawnDelayMs:    int(RespawnDelay / time.Millisecond),

		BulletWidth:      4,
		BulletHeight:     12,
		BulletSpeed:      480,
		EnemyBulletSpeed: 280,
		PruneMargin:      20,

		EnemyWidth:  24,
		EnemyHeight: 18,
		SpacingX:    48,
		SpacingY:    40,
		GridTop:     80,
		GridShiftX:  0,
		BossRows:    2,
		BossHP:      2,
		GruntHP:     1,
		HitScore:    10,

		EntrySpeed:  0.6,
		EntryRise:   100,
		SpawnMargin: 40,
		SpawnMinY:   40,
		SpawnMaxY:   ScreenHeight / 2,

		DiveDelayMin:    2,
		DiveDelayMax:    6,
		DiveCooldownMin: 3,
		DiveCooldownMax: 7,
		DivePhaseRate:   3,
		DiveAmplitude:   40,
		DiveFrequency:   2,
		DiveSpeed:       160,

		FormationFireRate:  0.05,
		DivingFireRate:     0.5,
		BossFireMultiplier: 2,

		InitialCols:  10,
		InitialRows:  5,
		BaseCols:     8,
		MaxExtraCols: 6,
		BaseRows:     4,
		MaxExtraRows: 3,

		SwayEnabled:  false,
		SwaySpeed:    40,
		SwayRange:    60,
		BobAmplitude: 6,
		BobFrequency: 0.8,
		MaxDeltaTime: MaxDeltaTime,
	}
}

// RespawnDelay returns the configured respawn delay.
func (t *Tuning) RespawnDelay() time.Duration {
	return time.Duration(t.RespawnDelayMs) * time.Millisecond
}

// PlayerSpawn returns the default player position.
func (t *Tuning) PlayerSpawn() (float64, float64) {
	return t.Width / 2, t.Height - t.PlayerSpawnOffset
}

// GridFor returns the formation shape for the given wave number.
// The first wave uses the initial grid, later waves grow up to the caps.
func (t *Tuning) GridFor(wave int) (cols, rows int) {
	if wave <= 1 {
		return t.InitialCols, t.InitialRows
	}
	return t.BaseCols + min(t.MaxExtraCols, wave), t.BaseRows + min(t.MaxExtraRows, wave/2)
}

// Validate checks the tuning for values the simulation cannot work with.
func (t *Tuning) Validate() error {
	var errs []error
	positive := map[string]float64{
		"width":              t.Width,
		"height":             t.Height,
		"player_width":       t.PlayerWidth,
		"player_height":      t.PlayerHeight,
		"player_speed":       t.PlayerSpeed,
		"bullet_width":       t.BulletWidth,
		"bullet_height":      t.BulletHeight,
		"bullet_speed":       t.BulletSpeed,
		"enemy_bullet_speed": t.EnemyBulletSpeed,
		"enemy_width":        t.EnemyWidth,
		"enemy_height":       t.EnemyHeight,
		"entry_speed":        t.EntrySpeed,
		"dive_speed":         t.DiveSpeed,
		"max_delta_time":     t.MaxDeltaTime,
	}
	for name, v := range positive {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	if t.StartingLives < 1 {
		errs = append(errs, fmt.Errorf("starting_lives must be at least 1, got %d", t.StartingLives))
	}
	if t.BossHP < 1 || t.GruntHP < 1 {
		errs = append(errs, fmt.Errorf("enemy hit points must be at least 1 (boss %d, grunt %d)", t.BossHP, t.GruntHP))
	}
	if t.InitialCols < 1 || t.InitialRows < 1 || t.BaseCols < 1 || t.BaseRows < 1 {
		errs = append(errs, errors.New("grid dimensions must be at least 1"))
	}
	if t.MaxExtraCols < 0 || t.MaxExtraRows < 0 {
		errs = append(errs, errors.New("grid growth caps must not be negative"))
	}
	if t.DiveDelayMin > t.DiveDelayMax {
		errs = append(errs, fmt.Errorf("dive_delay_min %v exceeds dive_delay_max %v", t.DiveDelayMin, t.DiveDelayMax))
	}
	if t.DiveCooldownMin > t.DiveCooldownMax {
		errs = append(errs, fmt.Errorf("dive_cooldown_min %v exceeds dive_cooldown_max %v", t.DiveCooldownMin, t.DiveCooldownMax))
	}
	if t.SpawnMinY > t.SpawnMaxY {
		errs = append(errs, fmt.Errorf("spawn_min_y %v exceeds spawn_max_y %v", t.SpawnMinY, t.SpawnMaxY))
	}
	if t.PlayerBandTop < t.PlayerBandBottom {
		errs = append(errs, fmt.Errorf("player_band_top %v is below player_band_bottom %v", t.PlayerBandTop, t.PlayerBandBottom))
	}
	if 2*t.PlayerMarginX > t.Width {
		errs = append(errs, fmt.Errorf("player_margin_x %v leaves no room on a %v wide field", t.PlayerMarginX, t.Width))
	}
	return errors.Join(errs...)
}

// Load reads a JSON tuning file on top of Default() and validates the result.
// Fields missing from the file keep their default values.
func Load(path string) (*Tuning, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning in %s: %w", path, err)
	}
	return t, nil
}
