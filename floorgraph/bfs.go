package floorgraph

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// queueItem pairs a floor id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	g       *Graph
	queue   []queueItem
	visited mapset.Set[int]
	parent  map[int]int
}

func newWalker(g *Graph) *walker {
	return &walker{
		g:       g,
		queue:   make([]queueItem, 0, g.Len()),
		visited: mapset.New[int](),
		parent:  make(map[int]int, g.Len()),
	}
}

// enqueue marks id visited, records its parent and appends it to the queue.
// The root is enqueued with parent == id.
func (w *walker) enqueue(id, depth, parent int) {
	w.visited.Put(id)
	if parent != id {
		w.parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

// run floods from start until the queue drains or stop returns true.
func (w *walker) run(start int, stop func(id int) bool) bool {
	w.enqueue(start, 0, start)
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		if stop != nil && stop(item.id) {
			return true
		}
		for _, nbr := range w.g.Neighbors(item.id) {
			if !w.visited.Has(nbr) {
				w.enqueue(nbr, item.depth+1, item.id)
			}
		}
	}
	return false
}

// pathTo rebuilds start → dest from parent links.
func (w *walker) pathTo(dest int) []int {
	path := []int{dest}
	for cur := dest; ; {
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Path returns the floor ids of a fewest-hops route from → to, both included.
// from == to yields [from].
func Path(g *Graph, from, to int) ([]int, error) {
	if !g.Has(from) {
		return nil, fmt.Errorf("%w: %d", ErrFloorNotFound, from)
	}
	if !g.Has(to) {
		return nil, fmt.Errorf("%w: %d", ErrFloorNotFound, to)
	}
	if from == to {
		return []int{from}, nil
	}
	w := newWalker(g)
	if !w.run(from, func(id int) bool { return id == to }) {
		return nil, ErrNoPath
	}
	return w.pathTo(to), nil
}

// Reachable returns every floor id connected to from, from included.
func Reachable(g *Graph, from int) (mapset.Set[int], error) {
	if !g.Has(from) {
		return mapset.New[int](), fmt.Errorf("%w: %d", ErrFloorNotFound, from)
	}
	w := newWalker(g)
	w.run(from, nil)
	return w.visited, nil
}

// Components partitions the graph into connected components. Components are
// ordered by their first floor in graph order; ids inside a component are in
// BFS order from that floor.
func Components(g *Graph) [][]int {
	seen := mapset.New[int]()
	var comps [][]int
	for _, id := range g.ids {
		if seen.Has(id) {
			continue
		}
		var comp []int
		w := newWalker(g)
		w.run(id, func(v int) bool {
			comp = append(comp, v)
			seen.Put(v)
			return false
		})
		comps = append(comps, comp)
	}
	return comps
}
