package shooter

import "math"

// motionFunc returns an enemy's displacement for one tick. ux and uy form
// the unit vector towards the player; t is the enemy's motion clock in
// milliseconds.
type motionFunc func(e *Enemy, ux, uy, t float64) (dx, dy float64)

// motions is the strategy table, dispatched once per enemy per tick.
var motions = [...]motionFunc{
	Chaser: pursue(1),
	Wander: wobble(0.8, 300, 0.6),
	Sine:   wobble(1, 200, 1.2),
	Fast:   pursue(1.35),
	Boss:   pursue(1),
}

// pursue moves straight at the player, scaled by mult.
func pursue(mult float64) motionFunc {
	return func(e *Enemy, ux, uy, _ float64) (float64, float64) {
		return ux * e.Speed * mult, uy * e.Speed * mult
	}
}

// wobble blends pursuit with a circular drift of the given radius whose
// angle advances by one radian every period milliseconds.
func wobble(mult, period, radius float64) motionFunc {
	return func(e *Enemy, ux, uy, t float64) (float64, float64) {
		a := t / period
		return ux*e.Speed*mult + math.Cos(a)*radius, uy*e.Speed*mult + math.Sin(a)*radius
	}
}

// moveEnemy caps the enemy's speed against the player and advances it.
func moveEnemy(e *Enemy, p *Player, clockMs float64) {
	if limit := p.Speed + SpeedCapBonus; e.Speed > limit {
		e.Speed = limit
	}

	px, py := p.Center()
	ex, ey := e.Center()
	dx, dy := px-ex, py-ey
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1
	}

	move := motions[Chaser]
	if int(e.Kind) < len(motions) {
		move = motions[e.Kind]
	}
	mx, my := move(e, dx/dist, dy/dist, clockMs+e.Phase)
	e.X += mx
	e.Y += my
}
