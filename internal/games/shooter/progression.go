package shooter

import (
	"fmt"
	"math"

	"github.com/minigamehub/arcade/internal/core"
)

// ChoiceState routes input while the simulation waits for the player.
type ChoiceState int

const (
	ChoiceNone ChoiceState = iota
	ChoiceUpgrade
	ChoiceRelic
)

func (s ChoiceState) String() string {
	switch s {
	case ChoiceUpgrade:
		return "upgrade"
	case ChoiceRelic:
		return "relic"
	default:
		return "none"
	}
}

// Number of options offered per step.
const (
	UpgradeOffers = 3
	RelicOffers   = 2
)

// Option is one card of a choice step.
type Option struct {
	Title string
	Desc  string
}

type effect struct {
	Option
	apply func(p *Player)
}

var upgradePool = []effect{
	{Option{"Max HP +20", "Increase max HP by 20"}, func(p *Player) {
		p.MaxHP += 20
		p.Heal(20)
	}},
	{Option{"Speed +0.5", "Increase movement speed"}, func(p *Player) {
		p.Speed += 0.5
	}},
	{Option{"Fire Rate", "Shoot faster (lower cooldown)"}, func(p *Player) {
		p.ShootRate = max(MinUpgradeRate, p.ShootRate-3)
	}},
	{Option{"Multi Shot", "Increase projectile count"}, func(p *Player) {
		p.Projectiles = min(MaxProjectiles, max(1, p.Projectiles)+1)
		p.Mode = FireMulti
	}},
	{Option{"Spread Shot", "Gain spread firing mode"}, func(p *Player) {
		p.Projectiles = max(3, p.Projectiles)
		p.Mode = FireSpread
	}},
	{Option{"Piercing", "Bullets pierce enemies"}, func(p *Player) {
		p.Piercing = true
	}},
	{Option{"Damage +5", "Increase bullet damage"}, func(p *Player) {
		p.BulletDamage += 5
	}},
}

var relicPool = []effect{
	{Option{"Relic: Health Regen", "Slowly regenerate HP over time"}, func(p *Player) {
		p.AddRelic(RelicRegen, 0.02)
	}},
	{Option{"Relic: Crit", "Small chance to deal extra damage"}, func(p *Player) {
		p.AddRelic(RelicCrit, 0.05)
	}},
	{Option{"Relic: Lifesteal", "Bullets heal for a fraction"}, func(p *Player) {
		p.AddRelic(RelicLifesteal, 0.05)
	}},
	{Option{"Relic: Bullet Speed", "Increase bullet speed"}, func(p *Player) {
		p.AddRelic(RelicBulletSpeed, 1)
		p.BulletSpeed++
	}},
	{Option{"Relic: Pierce Boost", "Increase piercing chance"}, func(p *Player) {
		p.AddRelic(RelicPierceBoost, 0.1)
	}},
}

// Progression is the score and experience track of a run.
type Progression struct {
	Score     int
	Level     int
	Exp       int
	ExpToNext int
	Elapsed   int // Whole seconds survived
}

func newProgression() Progression {
	return Progression{Level: 1, ExpToNext: 100}
}

// AddExp grants experience. Crossing the threshold levels up once and
// requests an upgrade step.
func (w *World) AddExp(amount int) {
	w.prog.Exp += amount
	if w.prog.Exp < w.prog.ExpToNext {
		return
	}
	w.prog.Level++
	w.prog.Exp = 0
	w.prog.ExpToNext = int(math.Floor(float64(w.prog.ExpToNext) * 1.5))
	w.emit(core.EventLevelUp, fmt.Sprintf("reached level %d", w.prog.Level))
	w.requestChoice(ChoiceUpgrade)
}

// requestChoice opens a step now, or queues it behind the open one.
func (w *World) requestChoice(s ChoiceState) {
	if w.choice != ChoiceNone {
		w.pending = append(w.pending, s)
		return
	}
	w.openChoice(s)
}

// openChoice draws distinct offers from the step's pool.
func (w *World) openChoice(s ChoiceState) {
	pool, n := upgradePool, UpgradeOffers
	if s == ChoiceRelic {
		pool, n = relicPool, RelicOffers
	}

	remaining := make([]int, len(pool))
	for i := range remaining {
		remaining[i] = i
	}
	w.offers = w.offers[:0]
	for len(w.offers) < n && len(remaining) > 0 {
		i := w.rng.Intn(len(remaining))
		w.offers = append(w.offers, remaining[i])
		remaining = append(remaining[:i], remaining[i+1:]...)
	}
	w.choice = s
}

// Choice returns the open step, if any.
func (w *World) Choice() ChoiceState {
	return w.choice
}

// Offers returns the options of the open step in display order.
func (w *World) Offers() []Option {
	pool := w.pool()
	if pool == nil {
		return nil
	}
	opts := make([]Option, len(w.offers))
	for i, idx := range w.offers {
		opts[i] = pool[idx].Option
	}
	return opts
}

// Pending returns the number of queued steps.
func (w *World) Pending() int {
	return len(w.pending)
}

func (w *World) pool() []effect {
	switch w.choice {
	case ChoiceUpgrade:
		return upgradePool
	case ChoiceRelic:
		return relicPool
	default:
		return nil
	}
}

// Choose applies the option at index. A choice with no open step or an
// out-of-range index is ignored. An upgrade always leads into a relic
// step; resolving a relic step opens the next queued step or resumes the
// simulation. Reports whether the selection was applied.
func (w *World) Choose(index int) bool {
	pool := w.pool()
	if pool == nil || index < 0 || index >= len(w.offers) {
		return false
	}

	picked := pool[w.offers[index]]
	picked.apply(&w.Player)

	switch w.choice {
	case ChoiceUpgrade:
		w.emit(core.EventUpgradeChosen, picked.Title)
		w.openChoice(ChoiceRelic)
	case ChoiceRelic:
		w.emit(core.EventRelicChosen, picked.Title)
		w.choice = ChoiceNone
		w.offers = w.offers[:0]
		if len(w.pending) > 0 {
			next := w.pending[0]
			w.pending = w.pending[1:]
			w.openChoice(next)
		}
	}
	return true
}
