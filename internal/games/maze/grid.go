package maze

import "math/rand"

// Grid size limits. Sizes outside the range are clamped by Generate.
const (
	MinSize = 2
	MaxSize = 99
)

// Direction is a cardinal direction and also the index of the matching wall.
type Direction int

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

// Directions lists all directions in wall-index order.
var Directions = [4]Direction{Top, Right, Bottom, Left}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the unit grid offset of a direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Top:
		return 0, -1
	case Right:
		return 1, 0
	case Bottom:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Step returns the neighbouring point in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Cell is one maze square. Walls is indexed by Direction.
type Cell struct {
	X, Y  int
	Walls [4]bool
}

// Grid is a square maze. Cells are stored row-major.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid creates a size×size grid with every wall standing.
func NewGrid(size int) *Grid {
	size = clampSize(size)
	g := &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
	for y := range size {
		for x := range size {
			g.cells[y*size+x] = Cell{X: x, Y: y, Walls: [4]bool{true, true, true, true}}
		}
	}
	return g
}

func clampSize(size int) int {
	return max(MinSize, min(MaxSize, size))
}

// carveFrame is one level of the backtracker: a cell and its shuffled
// directions, of which the first next have been tried.
type carveFrame struct {
	at   Point
	dirs [4]Direction
	next int
}

// Generate builds a perfect maze with a randomized recursive backtracker
// starting at (0, 0). Each cell shuffles its directions on entry and
// descends into every unvisited neighbour in that order before trying
// the next one. The recursion is kept on an explicit stack, so the carve
// order is the recursive one while native stack depth stays constant.
func Generate(size int, rng *rand.Rand) *Grid {
	g := NewGrid(size)
	visited := make([]bool, len(g.cells))

	newFrame := func(p Point) carveFrame {
		f := carveFrame{at: p, dirs: Directions}
		rng.Shuffle(len(f.dirs), func(i, j int) {
			f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
		})
		visited[g.index(p)] = true
		return f
	}

	stack := make([]carveFrame, 0, len(g.cells))
	stack = append(stack, newFrame(Point{}))

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.dirs[top.next]
		top.next++

		n := top.at.Step(d)
		if !g.InBounds(n) || visited[g.index(n)] {
			continue
		}
		g.carve(top.at, d)
		stack = append(stack, newFrame(n))
	}

	return g
}

// carve clears the wall pair between p and its neighbour in direction d.
func (g *Grid) carve(p Point, d Direction) {
	n := p.Step(d)
	g.cells[g.index(p)].Walls[d] = false
	g.cells[g.index(n)].Walls[d.Opposite()] = false
}

func (g *Grid) index(p Point) int {
	return p.Y*g.size + p.X
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// At returns a copy of the cell at p. Out-of-bounds points return a
// fully walled cell.
func (g *Grid) At(p Point) Cell {
	if !g.InBounds(p) {
		return Cell{X: p.X, Y: p.Y, Walls: [4]bool{true, true, true, true}}
	}
	return g.cells[g.index(p)]
}

// CanMove reports whether a move from p in direction d is allowed: the
// wall on that side must be clear and the destination inside the grid.
func (g *Grid) CanMove(p Point, d Direction) bool {
	if !g.InBounds(p) || !g.InBounds(p.Step(d)) {
		return false
	}
	return !g.cells[g.index(p)].Walls[d]
}

// OpenPassages counts cleared wall pairs. A perfect maze has size²-1.
func (g *Grid) OpenPassages() int {
	n := 0
	for _, c := range g.cells {
		p := Point{X: c.X, Y: c.Y}
		if g.CanMove(p, Right) {
			n++
		}
		if g.CanMove(p, Bottom) {
			n++
		}
	}
	return n
}

// Solve returns the path from one cell to another through open passages,
// both ends included. It returns nil if either point is outside the grid
// or the target is unreachable.
func (g *Grid) Solve(from, to Point) []Point {
	if !g.InBounds(from) || !g.InBounds(to) {
		return nil
	}

	prev := make([]int, len(g.cells))
	for i := range prev {
		prev[i] = -1
	}
	start := g.index(from)
	prev[start] = start

	queue := []Point{from}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == to {
			break
		}
		for _, d := range Directions {
			if !g.CanMove(p, d) {
				continue
			}
			n := p.Step(d)
			if prev[g.index(n)] != -1 {
				continue
			}
			prev[g.index(n)] = g.index(p)
			queue = append(queue, n)
		}
	}

	if prev[g.index(to)] == -1 {
		return nil
	}

	var path []Point
	for i := g.index(to); ; i = prev[i] {
		path = append(path, Point{X: i % g.size, Y: i / g.size})
		if i == start {
			break
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}
