package shooter

import (
	"fmt"
	"math"

	"github.com/minigamehub/arcade/internal/core"
)

// Shares of a spawn roll, scaled by the difficulty level. A roll past the
// last threshold is a chaser.
const (
	fastShare   = 0.15
	sineShare   = 0.45
	wanderShare = 0.75
)

// edgePoint picks a point just outside a random canvas edge.
func (w *World) edgePoint(size float64) (x, y float64) {
	if w.rng.Float64() < 0.5 {
		x = -size
		if w.rng.Float64() >= 0.5 {
			x = w.W + size
		}
		return x, w.rng.Float64() * w.H
	}
	x = w.rng.Float64() * w.W
	y = -size
	if w.rng.Float64() >= 0.5 {
		y = w.H + size
	}
	return x, y
}

// speedCap is the fastest any enemy may move.
func (w *World) speedCap() float64 {
	return w.Player.Speed + SpeedCapBonus
}

// pickKind draws an enemy kind for the current difficulty level.
func (w *World) pickKind() EnemyKind {
	m := w.difficulty.Level(w.prog.Score, float64(w.prog.Elapsed))
	r := w.rng.Float64()
	switch {
	case r < fastShare*m:
		return Fast
	case r < sineShare*m:
		return Sine
	case r < wanderShare*m:
		return Wander
	default:
		return Chaser
	}
}

// spawnGroup adds one wave. Group size and enemy stats grow with time.
func (w *World) spawnGroup() {
	t := float64(w.prog.Elapsed)
	size := 16 + math.Floor(t/40)
	hp := 10 + math.Floor(t*1.5)
	exp := 8 + int(t/12)
	baseSpeed := 1 + t/120
	group := 1 + w.prog.Elapsed/20

	for range group {
		x, y := w.edgePoint(size)
		kind := w.pickKind()
		speed := math.Min(baseSpeed*(0.8+w.rng.Float64()*1.2), w.speedCap())
		w.Enemies = append(w.Enemies, Enemy{
			X:     x,
			Y:     y,
			W:     size,
			H:     size,
			Speed: speed,
			HP:    hp,
			MaxHP: hp,
			Kind:  kind,
			Phase: w.rng.Float64() * 1000,
			Exp:   exp,
		})
	}
}

// spawnBoss adds a single boss.
func (w *World) spawnBoss() {
	t := float64(w.prog.Elapsed)
	size := 40 + math.Floor(t/30)
	hp := 200 + math.Floor(t*5)
	x, y := w.edgePoint(size)
	w.Enemies = append(w.Enemies, Enemy{
		X:     x,
		Y:     y,
		W:     size,
		H:     size,
		Speed: math.Min(2+t/120, w.speedCap()),
		HP:    hp,
		MaxHP: hp,
		Kind:  Boss,
		Phase: w.rng.Float64() * 1000,
		Exp:   200 + int(t/2),
	})
	w.emit(core.EventBossSpawned, fmt.Sprintf("boss with %.0f hp at %ds", hp, w.prog.Elapsed))
}
