// Package pathfind implements the A* search the Path tool uses (spec
// §4.F): 18-connectivity, heuristic weight 4.0, expansion cap 10000.
package pathfind

import (
	"container/heap"
	"math"
)

// Cap bounds how many nodes A* will expand before giving up.
const Cap = 10000

// HeuristicWeight scales the Euclidean heuristic (spec §4.F).
const HeuristicWeight = 4.0

// Point is an integer grid coordinate.
type Point [3]int32

// Walkable reports whether p can be entered by the path.
type Walkable func(p Point) bool

var neighbors18 = buildNeighbors18()

func buildNeighbors18() []Point {
	var out []Point
	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			for dz := int32(-1); dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				nonZero := 0
				if dx != 0 {
					nonZero++
				}
				if dy != 0 {
					nonZero++
				}
				if dz != 0 {
					nonZero++
				}
				if nonZero <= 2 { // face (1) and edge (2) neighbors = 18-connectivity
					out = append(out, Point{dx, dy, dz})
				}
			}
		}
	}
	return out
}

type node struct {
	p          Point
	g, f       float64
	parent     *node
	heapIdx    int
}

// Find runs A* from start to goal, returning the path (inclusive of both
// ends) or nil if no path was found within Cap expansions.
func Find(start, goal Point, walkable Walkable) []Point {
	if start == goal {
		return []Point{start}
	}

	open := &nodeHeap{}
	heap.Init(open)
	visited := make(map[Point]*node)

	startNode := &node{p: start, g: 0, f: heuristic(start, goal)}
	heap.Push(open, startNode)
	visited[start] = startNode

	expansions := 0
	for open.Len() > 0 && expansions < Cap {
		current := heap.Pop(open).(*node)
		expansions++

		if current.p == goal {
			return reconstruct(current)
		}

		for _, d := range neighbors18 {
			np := Point{current.p[0] + d[0], current.p[1] + d[1], current.p[2] + d[2]}
			if np != goal && !walkable(np) {
				continue
			}
			stepCost := stepCost(d)
			g := current.g + stepCost

			existing, seen := visited[np]
			if seen && g >= existing.g {
				continue
			}

			n := &node{p: np, g: g, f: g + heuristic(np, goal), parent: current}
			visited[np] = n
			heap.Push(open, n)
		}
	}
	return nil
}

func stepCost(d Point) float64 {
	nonZero := 0
	if d[0] != 0 {
		nonZero++
	}
	if d[1] != 0 {
		nonZero++
	}
	if d[2] != 0 {
		nonZero++
	}
	if nonZero == 2 {
		return 1.41421356
	}
	return 1.0
}

func heuristic(a, b Point) float64 {
	dx := float64(a[0] - b[0])
	dy := float64(a[1] - b[1])
	dz := float64(a[2] - b[2])
	return HeuristicWeight * math.Sqrt(dx*dx+dy*dy+dz*dz)
}

func reconstruct(n *node) []Point {
	var out []Point
	for cur := n; cur != nil; cur = cur.parent {
		out = append([]Point{cur.p}, out...)
	}
	return out
}

type nodeHeap []*node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].heapIdx, h[j].heapIdx = i, j }
func (h *nodeHeap) Push(x interface{}) {
	n := x.(*node)
	n.heapIdx = len(*h)
	*h = append(*h, n)
}
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
