package shooter

import (
	"math"

	"github.com/minigamehub/arcade/internal/core"
)

// Entity constants in canvas units and ticks.
const (
	BulletSize      = 5.0
	ItemSize        = 8.0
	ContactDamage   = 10.0
	KillScore       = 10
	ItemHeal        = 20.0
	TextLifetime    = 60
	TextDrift       = 0.5
	FanSpread       = 0.4 // Radians covered by a multi-projectile volley
	SpeedCapBonus   = 2.5 // Enemy speed never exceeds player speed + this
	MaxProjectiles  = 5
	MinUpgradeRate  = 4 // Shoot rate floor for the Fire Rate upgrade
	MinItemFireRate = 5 // Shoot rate floor for the fire rate item
)

// FireMode is the player's firing pattern.
type FireMode int

const (
	FireSingle FireMode = iota
	FireMulti
	FireSpread
)

func (m FireMode) String() string {
	switch m {
	case FireMulti:
		return "multi"
	case FireSpread:
		return "spread"
	default:
		return "single"
	}
}

// EnemyKind selects an enemy's motion rule and look.
type EnemyKind int

const (
	Chaser EnemyKind = iota
	Wander
	Sine
	Fast
	Boss
)

func (k EnemyKind) String() string {
	switch k {
	case Chaser:
		return "chaser"
	case Wander:
		return "wander"
	case Sine:
		return "sine"
	case Fast:
		return "fast"
	case Boss:
		return "boss"
	default:
		return "unknown"
	}
}

// ItemKind is the effect of a pickup.
type ItemKind int

const (
	ItemHP ItemKind = iota
	ItemSpeed
	ItemFireRate
	ItemRelic
)

// RelicKind names a stacking passive effect.
type RelicKind int

const (
	RelicRegen RelicKind = iota
	RelicCrit
	RelicLifesteal
	RelicBulletSpeed
	RelicPierceBoost
)

func (k RelicKind) String() string {
	switch k {
	case RelicRegen:
		return "regen"
	case RelicCrit:
		return "crit"
	case RelicLifesteal:
		return "lifesteal"
	case RelicBulletSpeed:
		return "bullet_speed"
	case RelicPierceBoost:
		return "pierce_boost"
	default:
		return "unknown"
	}
}

// Player is the controlled survivor. X and Y are the top-left corner.
type Player struct {
	X, Y         float64
	Size         float64
	Speed        float64
	HP, MaxHP    float64
	Cooldown     int
	ShootRate    int
	Mode         FireMode
	Projectiles  int
	BulletSpeed  float64
	BulletDamage float64
	Piercing     bool
	Relics       map[RelicKind]float64
}

// Box returns the player's hitbox.
func (p *Player) Box() core.Box {
	return core.NormalizeFootprint(p.X, p.Y, 0, 0, p.Size)
}

// Center returns the middle of the player.
func (p *Player) Center() (float64, float64) {
	return p.X + p.Size/2, p.Y + p.Size/2
}

// Heal restores hp without exceeding max hp.
func (p *Player) Heal(amount float64) {
	p.HP = math.Min(p.MaxHP, p.HP+amount)
}

// Relic returns the stacked magnitude of a relic.
func (p *Player) Relic(k RelicKind) float64 {
	return p.Relics[k]
}

// AddRelic stacks a relic additively.
func (p *Player) AddRelic(k RelicKind, amount float64) {
	if p.Relics == nil {
		p.Relics = make(map[RelicKind]float64)
	}
	p.Relics[k] += amount
}

// Enemy is a hostile. X and Y are the top-left corner.
type Enemy struct {
	X, Y  float64
	W, H  float64
	Speed float64
	HP    float64
	MaxHP float64
	Kind  EnemyKind
	Phase float64 // Milliseconds added to the motion clock
	Exp   int
	Dead  bool
}

// Box returns the enemy's hitbox.
func (e *Enemy) Box() core.Box {
	return core.NormalizeFootprint(e.X, e.Y, e.W, e.H, 0)
}

// Center returns the middle of the enemy.
func (e *Enemy) Center() (float64, float64) {
	return e.X + e.W/2, e.Y + e.H/2
}

// Bullet travels on a fixed heading.
type Bullet struct {
	X, Y     float64
	Size     float64
	Angle    float64
	Speed    float64
	Damage   float64
	Piercing bool
	Dead     bool
}

// Box returns the bullet's hitbox.
func (b *Bullet) Box() core.Box {
	return core.NormalizeFootprint(b.X, b.Y, 0, 0, b.Size)
}

// Item is a pickup lying on the field.
type Item struct {
	X, Y float64
	Size float64
	Kind ItemKind
	Dead bool
}

// Box returns the item's hitbox.
func (it *Item) Box() core.Box {
	return core.NormalizeFootprint(it.X, it.Y, 0, 0, it.Size)
}

// FloatingText is a short-lived label that drifts up and fades.
type FloatingText struct {
	X, Y  float64
	Text  string
	Color core.Color
	Alpha float64
	Life  int
}

// update drifts and fades the text. Reports whether it is still visible.
func (t *FloatingText) update() bool {
	t.Y -= TextDrift
	t.Alpha -= 1.0 / float64(t.Life)
	return t.Alpha > 0
}
