package maze

import (
	"fmt"
	"hash/fnv"
)

// Snapshot captures the session state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Size     int
	PlayerX  int
	PlayerY  int
	Moves    int
	Seconds  int
	TrailLen int
	Status   Status
	Walls    uint64 // Hash of every wall flag
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Size:     g.grid.Size(),
		PlayerX:  g.player.X,
		PlayerY:  g.player.Y,
		Moves:    g.moves,
		Seconds:  g.seconds,
		TrailLen: len(g.trail),
		Status:   g.status,
		Walls:    g.grid.Hash(),
	}
}

// Hash returns a hash of the wall layout.
func (g *Grid) Hash() uint64 {
	h := fnv.New64a()
	for _, c := range g.cells {
		for _, w := range c.Walls {
			if w {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return h.Sum64()
}

// Hash returns a hash of the whole snapshot.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%d:%d:%d:%d:%d:%d:%d:%d",
		s.Tick, s.Size, s.PlayerX, s.PlayerY, s.Moves, s.Seconds, s.TrailLen, s.Status, s.Walls)
	return h.Sum64()
}
