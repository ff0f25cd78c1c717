package domain

import "slices"

// DependencyMap maps a package name to the suite-local packages it depends on.
type DependencyMap map[string][]string

// Nodes returns every name known to the map, including names only referenced as
// dependencies, in lexicographic order.
func (m DependencyMap) Nodes() []string {
	set := make(map[string]struct{}, len(m))
	for name, deps := range m {
		set[name] = struct{}{}
		for _, dep := range deps {
			set[dep] = struct{}{}
		}
	}
	nodes := make([]string, 0, len(set))
	for name := range set {
		nodes = append(nodes, name)
	}
	slices.Sort(nodes)
	return nodes
}

// Dependents returns the packages declaring name as a dependency, sorted.
func (m DependencyMap) Dependents(name string) []string {
	var dependents []string
	for pkg, deps := range m {
		if slices.Contains(deps, name) {
			dependents = append(dependents, pkg)
		}
	}
	slices.Sort(dependents)
	return dependents
}

// TopologicalOrder returns the names ordered so that every package comes after
// all of its dependencies. Ties between ready packages are broken
// lexicographically, so the result is stable across runs.
// A cycle yields a *CycleError holding the cycle path.
func (m DependencyMap) TopologicalOrder() ([]string, error) {
	nodes := m.Nodes()
	pending := make(map[string]int, len(nodes))
	dependents := make(map[string][]string, len(nodes))

	for _, name := range nodes {
		deps := Dedupe(m[name])
		pending[name] = len(deps)
		for _, dep := range deps {
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var ready []string
	for _, name := range nodes {
		if pending[name] == 0 {
			ready = append(ready, name)
		}
	}

	order := make([]string, 0, len(nodes))
	for len(ready) > 0 {
		next := ready[0]
		ready = ready[1:]
		order = append(order, next)

		for _, dependent := range dependents[next] {
			pending[dependent]--
			if pending[dependent] == 0 {
				ready = insertSorted(ready, dependent)
			}
		}
	}

	if len(order) != len(nodes) {
		return nil, &CycleError{Cycle: m.findCycle(pending)}
	}
	return order, nil
}

// HasPath reports whether to is reachable from from by following declared
// dependencies. A visited set makes cycles terminate.
func (m DependencyMap) HasPath(from, to string) bool {
	visited := make(map[string]bool)
	var visit func(node string) bool
	visit = func(node string) bool {
		if node == to {
			return true
		}
		visited[node] = true
		for _, next := range m[node] {
			if !visited[next] && visit(next) {
				return true
			}
		}
		return false
	}
	return visit(from)
}

// findCycle extracts one cycle among the nodes Kahn's algorithm could not
// release. States: 0 unvisited, 1 visiting, 2 done.
func (m DependencyMap) findCycle(pending map[string]int) []string {
	var stuck []string
	for name, n := range pending {
		if n > 0 {
			stuck = append(stuck, name)
		}
	}
	slices.Sort(stuck)

	state := make(map[string]int, len(stuck))
	var stack []string
	var cycle []string

	var visit func(node string) bool
	visit = func(node string) bool {
		state[node] = 1
		stack = append(stack, node)

		deps := slices.Clone(m[node])
		slices.Sort(deps)
		for _, dep := range deps {
			switch state[dep] {
			case 1:
				start := slices.Index(stack, dep)
				cycle = append(slices.Clone(stack[start:]), dep)
				return true
			case 0:
				if visit(dep) {
					return true
				}
			}
		}

		state[node] = 2
		stack = stack[:len(stack)-1]
		return false
	}

	for _, name := range stuck {
		if state[name] == 0 && visit(name) {
			return cycle
		}
	}
	return stuck
}

func insertSorted(s []string, v string) []string {
	i, _ := slices.BinarySearch(s, v)
	return slices.Insert(s, i, v)
}
