package aoc

// Graph is an undirected weighted graph.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	delete(g.Edges[b], a)
}

func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	var q Queue[K]
	q.Push(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	InitMap(&g.Nodes)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if g.Edges[b] == nil {
		g.Edges[b] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.Edges[b][a] = dist
	g.Nodes[a] = true
	g.Nodes[b] = true
}

// LongestPath returns the size of the longest simple path from start to end.
func (g Graph[K]) LongestPath(start, end K) (rp int, ok bool) {
	return g.longestPathHelper(start, end, make(map[K]bool))
}

func (g Graph[K]) longestPathHelper(start, end K, visited map[K]bool) (rp int, ok bool) {
	if start == end {
		return 0, true
	}

	visited[start] = true
	defer func() {
		visited[start] = false
	}()
	max := -1
	for k, v := range g.Edges[start] {
		if visited[k] {
			continue
		}
		got, ok := g.longestPathHelper(k, end, visited)
		got += v
		if ok && (max == -1 || got > max) {
			max = got
		}
	}
	if max != -1 {
		return max, true
	}
	return 0, false
}

// Collapse collapses the graph by removing any nodes with only two edges and
// merging the two edges into one. When that duplicates an existing edge the
// longer one is kept. Nodes in keep are never removed.
func (g *Graph[K]) Collapse(keep ...K) {
	kept := make(map[K]bool, len(keep))
	for _, k := range keep {
		kept[k] = true
	}
	for {
		trimmed := false
		for k1, e := range g.Edges {
			if len(e) != 2 || kept[k1] {
				continue
			}
			trimmed = true
			var ks [2]K
			var ds [2]int
			i := 0
			for k, v := range e {
				ks[i], ds[i] = k, v
				i++
			}
			d := ds[0] + ds[1]
			if old, ok := g.Edges[ks[0]][ks[1]]; ok && old > d {
				d = old
			}

			delete(g.Edges, k1)
			delete(g.Nodes, k1)
			g.RemoveEdge(ks[0], k1)
			g.RemoveEdge(ks[1], k1)
			g.AddEdge(ks[0], ks[1], d)
		}
		if !trimmed {
			break
		}
	}
}
