package datastructure

// labelComponents. label the connected components of the undirected graph with an iterative dfs.
// components[u] is the id of the component of u, ids are assigned in graph order.
func (g *CampusGraph) labelComponents() {
	n := len(g.locations)
	g.components = make([]Index, n)
	for u := range g.components {
		g.components[u] = INVALID_INDEX
	}

	stack := make([]Index, 0, n)
	componentId := Index(0)
	for s := Index(0); s < Index(n); s++ {
		if g.components[s] != INVALID_INDEX {
			continue
		}

		g.components[s] = componentId
		stack = append(stack[:0], s)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, nb := range g.adj[u] {
				if g.components[nb.head] == INVALID_INDEX {
					g.components[nb.head] = componentId
					stack = append(stack, nb.head)
				}
			}
		}
		componentId++
	}
	g.numComponents = int(componentId)
}

func (g *CampusGraph) NumberOfComponents() int {
	return g.numComponents
}

// SameComponent. true if both locations exist and a walking route between them exists.
func (g *CampusGraph) SameComponent(from, to string) bool {
	u, ok := g.index[from]
	if !ok {
		return false
	}
	v, ok := g.index[to]
	if !ok {
		return false
	}
	return g.components[u] == g.components[v]
}

// ComponentSizes. number of locations in each component, indexed by component id
func (g *CampusGraph) ComponentSizes() []int {
	sizes := make([]int, g.numComponents)
	for _, c := range g.components {
		sizes[c]++
	}
	return sizes
}
