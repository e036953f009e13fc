// Package algo implements path search for the traffic simulation.
package algo

import (
	"container/heap"

	"github.com/mysydiouf/circulation-routiere-en-2D/internal/core"
)

// pathNode for the A* priority queue.
type pathNode struct {
	cell   core.Cell
	g      int // steps from start
	f      int // g + Manhattan heuristic
	parent *pathNode
	index  int // heap index
}

// pathHeap implements heap.Interface.
type pathHeap []*pathNode

func (h pathHeap) Len() int           { return len(h) }
func (h pathHeap) Less(i, j int) bool { return h[i].f < h[j].f }
func (h pathHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *pathHeap) Push(x any) {
	n := x.(*pathNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *pathHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// FindPath returns the shortest legal cell sequence from start to goal,
// inclusive, moving only along policy-allowed edges and never through
// obstacles. It returns nil when start or goal is out of bounds or an
// obstacle, or when no path exists, and [start] when start == goal.
//
// Each cell has at most one horizontal and one vertical successor, so the
// search visits O(W*H) nodes regardless of grid shape.
func FindPath(g *core.Grid, policy *core.DirectionPolicy, start, goal core.Cell) []core.Cell {
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil
	}
	if g.IsObstacle(start) || g.IsObstacle(goal) {
		return nil
	}
	if start == goal {
		return []core.Cell{start}
	}

	open := &pathHeap{}
	heap.Init(open)
	heap.Push(open, &pathNode{
		cell: start,
		g:    0,
		f:    core.Manhattan(start, goal),
	})

	bestG := map[core.Cell]int{start: 0}

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)

		if current.cell == goal {
			return reconstructPath(current)
		}
		if current.g > bestG[current.cell] {
			continue // stale queue entry
		}

		for _, neighbor := range policy.AllowedNeighbors(g, current.cell) {
			if g.IsObstacle(neighbor) {
				continue
			}
			ng := current.g + 1
			if prev, seen := bestG[neighbor]; seen && ng >= prev {
				continue
			}
			bestG[neighbor] = ng
			heap.Push(open, &pathNode{
				cell:   neighbor,
				g:      ng,
				f:      ng + core.Manhattan(neighbor, goal),
				parent: current,
			})
		}
	}

	return nil // no path found
}

func reconstructPath(node *pathNode) []core.Cell {
	var path []core.Cell
	for n := node; n != nil; n = n.parent {
		path = append(path, n.cell)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
