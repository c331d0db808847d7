package maze

import (
	"math/rand"
	"testing"
)

func reachable(g *Grid, from Point) int {
	seen := map[Point]bool{from: true}
	queue := []Point{from}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			if !g.CanMove(p, d) {
				continue
			}
			n := p.Step(d)
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen)
}

func TestGenerateSpanningTree(t *testing.T) {
	for _, size := range []int{2, 3, 5, 8, 15, 30} {
		for seed := int64(1); seed <= 5; seed++ {
			g := Generate(size, rand.New(rand.NewSource(seed)))

			if got, want := g.OpenPassages(), size*size-1; got != want {
				t.Errorf("size %d seed %d: open passages = %d, expected %d", size, seed, got, want)
			}
			if got := reachable(g, Point{}); got != size*size {
				t.Errorf("size %d seed %d: reachable cells = %d, expected %d", size, seed, got, size*size)
			}
		}
	}
}

func TestWallPairSymmetry(t *testing.T) {
	g := Generate(15, rand.New(rand.NewSource(7)))

	for y := range g.Size() {
		for x := range g.Size() {
			p := Point{X: x, Y: y}
			for _, d := range Directions {
				n := p.Step(d)
				if !g.InBounds(n) {
					continue
				}
				if g.At(p).Walls[d] != g.At(n).Walls[d.Opposite()] {
					t.Fatalf("wall %v of %v disagrees with wall %v of %v", d, p, d.Opposite(), n)
				}
			}
		}
	}
}

func TestCanMoveBlockedAtBoundary(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := Generate(6, rand.New(rand.NewSource(seed)))
		last := g.Size() - 1
		for i := range g.Size() {
			checks := []struct {
				p Point
				d Direction
			}{
				{Point{X: i, Y: 0}, Top},
				{Point{X: i, Y: last}, Bottom},
				{Point{X: 0, Y: i}, Left},
				{Point{X: last, Y: i}, Right},
			}
			for _, c := range checks {
				if g.CanMove(c.p, c.d) {
					t.Errorf("seed %d: CanMove(%v, %v) should be false at the boundary", seed, c.p, c.d)
				}
			}
		}
	}
}

func TestGenerateClampsSize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := Generate(0, rng).Size(); got != MinSize {
		t.Errorf("Generate(0).Size() = %d, expected %d", got, MinSize)
	}
	if got := Generate(500, rng).Size(); got != MaxSize {
		t.Errorf("Generate(500).Size() = %d, expected %d", got, MaxSize)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(20, rand.New(rand.NewSource(42)))
	b := Generate(20, rand.New(rand.NewSource(42)))
	if a.Hash() != b.Hash() {
		t.Error("same seed should produce the same maze")
	}

	c := Generate(20, rand.New(rand.NewSource(43)))
	if a.Hash() == c.Hash() {
		t.Error("different seeds should produce different mazes")
	}
}

func TestGenerateLargestSize(t *testing.T) {
	g := Generate(MaxSize, rand.New(rand.NewSource(3)))
	if got, want := g.OpenPassages(), MaxSize*MaxSize-1; got != want {
		t.Errorf("open passages = %d, expected %d", got, want)
	}
}

func TestSolve(t *testing.T) {
	g := Generate(15, rand.New(rand.NewSource(11)))
	exit := Point{X: 14, Y: 14}

	path := g.Solve(Point{}, exit)
	if len(path) < 29 {
		t.Fatalf("path length %d is shorter than the Manhattan distance", len(path))
	}
	if path[0] != (Point{}) || path[len(path)-1] != exit {
		t.Fatalf("path should run from origin to exit, got %v .. %v", path[0], path[len(path)-1])
	}

	seen := make(map[Point]bool)
	for i := 1; i < len(path); i++ {
		if seen[path[i]] {
			t.Fatalf("path revisits %v", path[i])
		}
		seen[path[i]] = true

		moved := false
		for _, d := range Directions {
			if path[i-1].Step(d) == path[i] {
				moved = g.CanMove(path[i-1], d)
			}
		}
		if !moved {
			t.Fatalf("step %v -> %v crosses a wall", path[i-1], path[i])
		}
	}

	if got := g.Solve(exit, exit); len(got) != 1 {
		t.Errorf("Solve to self = %v, expected a single point", got)
	}
	if got := g.Solve(Point{X: -1}, exit); got != nil {
		t.Errorf("Solve from outside = %v, expected nil", got)
	}
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d, want Direction
	}{
		{Top, Bottom},
		{Right, Left},
		{Bottom, Top},
		{Left, Right},
	}
	for _, tt := range tests {
		if got := tt.d.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, expected %v", tt.d, got, tt.want)
		}
	}
}
