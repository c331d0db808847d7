package shooter

import (
	"fmt"
	"hash/fnv"
)

// Snapshot captures the session state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Score       int
	Level       int
	Exp         int
	Elapsed     int
	PlayerX     float64
	PlayerY     float64
	PlayerHP    float64
	Enemies     int
	Bullets     int
	Items       int
	Choice      ChoiceState
	Pending     int
	SpawnPeriod float64
	Over        bool
	Field       uint64 // Hash of every entity position
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	p := w.Progress()
	return Snapshot{
		Tick:        g.tick,
		Score:       p.Score,
		Level:       p.Level,
		Exp:         p.Exp,
		Elapsed:     p.Elapsed,
		PlayerX:     w.Player.X,
		PlayerY:     w.Player.Y,
		PlayerHP:    w.Player.HP,
		Enemies:     len(w.Enemies),
		Bullets:     len(w.Bullets),
		Items:       len(w.Items),
		Choice:      w.Choice(),
		Pending:     w.Pending(),
		SpawnPeriod: w.SpawnPeriod(),
		Over:        w.Over(),
		Field:       w.Hash(),
	}
}

// Hash returns a hash of every entity in the world.
func (w *World) Hash() uint64 {
	h := fnv.New64a()
	for _, e := range w.Enemies {
		fmt.Fprintf(h, "e%d:%.4f:%.4f:%.4f;", e.Kind, e.X, e.Y, e.HP)
	}
	for _, b := range w.Bullets {
		fmt.Fprintf(h, "b%.4f:%.4f;", b.X, b.Y)
	}
	for _, it := range w.Items {
		fmt.Fprintf(h, "i%d:%.4f:%.4f;", it.Kind, it.X, it.Y)
	}
	return h.Sum64()
}

// Hash returns a hash of the whole snapshot.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%d:%d:%d:%d:%.4f:%.4f:%.4f:%d:%d:%d:%d:%d:%.4f:%v:%d",
		s.Tick, s.Score, s.Level, s.Exp, s.Elapsed, s.PlayerX, s.PlayerY, s.PlayerHP,
		s.Enemies, s.Bullets, s.Items, s.Choice, s.Pending, s.SpawnPeriod, s.Over, s.Field)
	return h.Sum64()
}
