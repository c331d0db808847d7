package shooter

import (
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/minigamehub/arcade/internal/config"
	"github.com/minigamehub/arcade/internal/core"
)

// World owns every piece of mutable state of one shooter session.
// Restarting builds a new World.
type World struct {
	cfg        config.ShooterConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	W, H float64 // Canvas size

	Player  Player
	Bullets []Bullet
	Enemies []Enemy
	Items   []Item
	Texts   []FloatingText

	prog    Progression
	clockMs float64 // Simulated milliseconds, drives periodic motion
	frameMs float64

	ticker  *Timer // 1 s score and elapsed time
	spawner *Timer // Enemy waves, decaying period
	bosses  *Timer // Boss every period

	choice  ChoiceState
	offers  []int
	pending []ChoiceState

	over   bool
	events []core.Event
}

// NewWorld builds a fresh session. frameMs is the simulated duration of one tick.
func NewWorld(cfg config.ShooterConfig, seed int64, frameMs float64) *World {
	w := &World{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(seed)),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		W:          cfg.Canvas.Width,
		H:          cfg.Canvas.Height,
		prog:       newProgression(),
		frameMs:    frameMs,
	}

	pc := cfg.Player
	w.Player = Player{
		X:            w.W/2 - pc.Size/2,
		Y:            w.H/2 - pc.Size/2,
		Size:         pc.Size,
		Speed:        pc.Speed,
		HP:           pc.HP,
		MaxHP:        pc.HP,
		ShootRate:    pc.ShootRate,
		Mode:         FireSingle,
		Projectiles:  1,
		BulletSpeed:  pc.BulletSpeed,
		BulletDamage: pc.BulletDamage,
		Relics:       make(map[RelicKind]float64),
	}

	w.ticker = NewTimer(1000, func(*Timer) {
		w.prog.Elapsed++
		w.prog.Score++
	})
	w.spawner = NewTimer(cfg.Spawn.InitialPeriodMs, func(t *Timer) {
		w.spawnGroup()
		if t.Period() > cfg.Spawn.MinPeriodMs {
			t.SetPeriod(math.Max(cfg.Spawn.MinPeriodMs, t.Period()*cfg.Spawn.Decay))
		}
	})
	w.bosses = NewTimer(cfg.Spawn.BossPeriodMs, func(*Timer) {
		w.spawnBoss()
	})

	return w
}

// Progress returns a copy of the score and experience track.
func (w *World) Progress() Progression {
	return w.prog
}

// Over reports whether the player has died.
func (w *World) Over() bool {
	return w.over
}

// Paused reports whether the simulation is waiting for a choice.
func (w *World) Paused() bool {
	return w.choice != ChoiceNone
}

// SpawnPeriod returns the current enemy wave period in milliseconds.
func (w *World) SpawnPeriod() float64 {
	return w.spawner.Period()
}

// TimersStopped reports whether all periodic timers were cancelled.
func (w *World) TimersStopped() bool {
	return w.ticker.Stopped() && w.spawner.Stopped() && w.bosses.Stopped()
}

func (w *World) emit(kind core.EventKind, msg string) {
	w.events = append(w.events, core.Event{Kind: kind, Message: msg})
}

// drainEvents returns and clears the events of the last tick.
func (w *World) drainEvents() []core.Event {
	ev := w.events
	w.events = nil
	return ev
}

// Tick runs one simulation step. Nothing advances while a choice is open
// or after game over.
func (w *World) Tick(in core.InputFrame) {
	if w.over || w.choice != ChoiceNone {
		return
	}

	w.updatePlayer(in)
	w.updateBullets()
	w.updateEnemies()
	w.updateItems()
	w.updateTexts()
	w.compact()

	if w.Player.HP <= 0 {
		w.gameOver()
		return
	}

	w.clockMs += w.frameMs
	w.ticker.Advance(w.frameMs)
	w.spawner.Advance(w.frameMs)
	w.bosses.Advance(w.frameMs)
}

func (w *World) updatePlayer(in core.InputFrame) {
	p := &w.Player

	if in.IsHeld(core.ActionUp) {
		p.Y -= p.Speed
	}
	if in.IsHeld(core.ActionDown) {
		p.Y += p.Speed
	}
	if in.IsHeld(core.ActionLeft) {
		p.X -= p.Speed
	}
	if in.IsHeld(core.ActionRight) {
		p.X += p.Speed
	}
	p.X = core.ClampF(p.X, 0, w.W-p.Size)
	p.Y = core.ClampF(p.Y, 0, w.H-p.Size)

	if regen := p.Relic(RelicRegen); regen > 0 {
		p.Heal(regen)
	}

	if p.Cooldown > 0 {
		p.Cooldown--
		return
	}
	w.shoot(in)
	p.Cooldown = p.ShootRate
}

// shoot fires along the held arrow direction. With no arrow held nothing
// is fired but the cooldown still restarts.
func (w *World) shoot(in core.InputFrame) {
	var ax, ay float64
	if in.IsHeld(core.ActionAimUp) {
		ay = -1
	}
	if in.IsHeld(core.ActionAimDown) {
		ay = 1
	}
	if in.IsHeld(core.ActionAimLeft) {
		ax = -1
	}
	if in.IsHeld(core.ActionAimRight) {
		ax = 1
	}
	if ax == 0 && ay == 0 {
		return
	}
	w.fire(math.Atan2(ay, ax))
}

// fire emits a volley centred on angle. More than one projectile fans out
// evenly across FanSpread.
func (w *World) fire(angle float64) {
	p := &w.Player
	cx, cy := p.Center()
	n := max(1, p.Projectiles)
	for i := range n {
		a := angle
		if n > 1 {
			a += (float64(i)/float64(n-1) - 0.5) * FanSpread
		}
		w.Bullets = append(w.Bullets, Bullet{
			X:        cx,
			Y:        cy,
			Size:     BulletSize,
			Angle:    a,
			Speed:    p.BulletSpeed,
			Damage:   p.BulletDamage,
			Piercing: p.Piercing,
		})
	}
}

func (w *World) updateBullets() {
	for i := range w.Bullets {
		b := &w.Bullets[i]
		b.X += math.Cos(b.Angle) * b.Speed
		b.Y += math.Sin(b.Angle) * b.Speed
		if b.X < 0 || b.X > w.W || b.Y < 0 || b.Y > w.H {
			b.Dead = true
		}
	}
}

func (w *World) updateEnemies() {
	for i := range w.Enemies {
		e := &w.Enemies[i]
		moveEnemy(e, &w.Player, w.clockMs)

		if e.Box().Intersects(w.Player.Box()) {
			w.Player.HP -= ContactDamage
			e.Dead = true
			continue
		}

		for j := range w.Bullets {
			b := &w.Bullets[j]
			if b.Dead || !e.Box().Intersects(b.Box()) {
				continue
			}
			w.hit(e, b)
			if e.Dead {
				break
			}
		}
	}
}

// hit applies one bullet to one enemy.
func (w *World) hit(e *Enemy, b *Bullet) {
	p := &w.Player

	dmg := b.Damage
	if crit := p.Relic(RelicCrit); crit > 0 && w.rng.Float64() < crit {
		dmg *= 2
	}
	e.HP -= dmg
	if steal := p.Relic(RelicLifesteal); steal > 0 {
		p.Heal(dmg * steal)
	}

	if !b.Piercing {
		boost := p.Relic(RelicPierceBoost)
		if boost <= 0 || w.rng.Float64() >= boost {
			b.Dead = true
		}
	}

	if e.HP <= 0 {
		w.kill(e)
	}
}

// kill removes an enemy and pays out. A boss opens a relic step before its
// experience is counted, so the relic step is the one shown first.
func (w *World) kill(e *Enemy) {
	e.Dead = true
	w.prog.Score += KillScore
	cx, cy := e.Center()

	if e.Kind == Boss {
		w.emit(core.EventBossKilled, fmt.Sprintf("boss down at %ds", w.prog.Elapsed))
		w.requestChoice(ChoiceRelic)
		w.AddExp(e.Exp)
		w.Items = append(w.Items, Item{X: cx, Y: cy, Size: ItemSize, Kind: ItemRelic})
		return
	}

	w.AddExp(e.Exp)
	d := w.cfg.Drops
	r := w.rng.Float64()
	switch {
	case r < d.HPChance:
		w.Items = append(w.Items, Item{X: cx, Y: cy, Size: ItemSize, Kind: ItemHP})
	case r < d.HPChance+d.SpeedChance:
		w.Items = append(w.Items, Item{X: cx, Y: cy, Size: ItemSize, Kind: ItemSpeed})
	case r < d.HPChance+d.SpeedChance+d.FireRateChance:
		w.Items = append(w.Items, Item{X: cx, Y: cy, Size: ItemSize, Kind: ItemFireRate})
	}
}

func (w *World) updateItems() {
	for i := range w.Items {
		it := &w.Items[i]
		if !it.Box().Intersects(w.Player.Box()) {
			continue
		}
		it.Dead = true
		w.pickUp(it.Kind)
	}
}

// pickUp applies an item and labels it with a floating text.
func (w *World) pickUp(kind ItemKind) {
	p := &w.Player
	var text string
	var color core.Color

	switch kind {
	case ItemHP:
		p.Heal(ItemHeal)
		text, color = fmt.Sprintf("+%.0f HP", ItemHeal), core.ColorGreen
	case ItemSpeed:
		p.Speed += 0.5
		text, color = "Speed UP", core.ColorBrightCyan
	case ItemFireRate:
		p.ShootRate = max(MinItemFireRate, p.ShootRate-2)
		text, color = "Fire Rate UP", core.ColorOrange
	case ItemRelic:
		text, color = "Relic Found!", core.ColorRed
		w.requestChoice(ChoiceRelic)
	}

	w.Texts = append(w.Texts, FloatingText{
		X:     p.X,
		Y:     p.Y,
		Text:  text,
		Color: color,
		Alpha: 1,
		Life:  TextLifetime,
	})
	w.emit(core.EventItemPicked, text)
}

func (w *World) updateTexts() {
	for i := range w.Texts {
		w.Texts[i].update()
	}
}

// compact drops every entity marked during this tick.
func (w *World) compact() {
	w.Bullets = slices.DeleteFunc(w.Bullets, func(b Bullet) bool { return b.Dead })
	w.Enemies = slices.DeleteFunc(w.Enemies, func(e Enemy) bool { return e.Dead })
	w.Items = slices.DeleteFunc(w.Items, func(it Item) bool { return it.Dead })
	w.Texts = slices.DeleteFunc(w.Texts, func(t FloatingText) bool { return t.Alpha <= 0 })
}

// gameOver freezes the world and cancels its timers.
func (w *World) gameOver() {
	w.over = true
	w.ticker.Stop()
	w.spawner.Stop()
	w.bosses.Stop()
	w.emit(core.EventGameOver, fmt.Sprintf("score %d, level %d, %ds", w.prog.Score, w.prog.Level, w.prog.Elapsed))
}
