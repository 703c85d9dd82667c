package core

import (
	"strings"

	"github.com/archdrift/archdrift/schema"
)

// collectCycles merges circular dependencies supplied by upstream data with
// cycles found independently in the normalized model. Each unique cycle
// (up to rotation) appears exactly once, in canonical form.
func collectCycles(model schema.DependencyModel, static *schema.StaticResults, graph *schema.DependencyGraph) [][]string {
	seen := make(map[string]struct{})
	var cycles [][]string

	add := func(cycle []string) {
		canonical := canonicalCycle(cycle)
		if len(canonical) == 0 {
			return
		}
		key := strings.Join(canonical, "->")
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		cycles = append(cycles, canonical)
	}

	if graph != nil {
		for _, cycle := range graph.CircularDependencies {
			add(cycle)
		}
	}
	if static != nil {
		for _, cycle := range static.DependencyAnalysis.CircularDependencies {
			add(cycle)
		}
	}
	for _, cycle := range findCycles(model) {
		add(cycle)
	}

	return cycles
}

// Node colors for the depth-first traversal.
const (
	white = iota // unvisited
	gray         // on the current DFS path
	black        // fully explored
)

// findCycles detects cycles via back-edge detection in a depth-first
// traversal of the model. Iteration order is sorted so results are
// deterministic for a given graph.
func findCycles(model schema.DependencyModel) [][]string {
	state := make(map[string]int, len(model))
	var stack []string
	var cycles [][]string

	var visit func(node string)
	visit = func(node string) {
		state[node] = gray
		stack = append(stack, node)

		for _, next := range schema.SetToSorted(model[node]) {
			switch state[next] {
			case white:
				visit(next)
			case gray:
				// Back edge: the cycle is the stack suffix starting at next.
				for i := len(stack) - 1; i >= 0; i-- {
					if stack[i] == next {
						cycles = append(cycles, append([]string(nil), stack[i:]...))
						break
					}
				}
			}
		}

		stack = stack[:len(stack)-1]
		state[node] = black
	}

	for _, node := range schema.SortedKeys(model) {
		if state[node] == white {
			visit(node)
		}
	}
	return cycles
}

// canonicalCycle rotates a cycle so its lexicographically smallest member
// comes first, making rotations of the same cycle compare equal. Empty and
// single-element inputs yield nil.
func canonicalCycle(cycle []string) []string {
	// Drop a trailing repeat of the head (some upstreams close the loop).
	if len(cycle) > 1 && cycle[0] == cycle[len(cycle)-1] {
		cycle = cycle[:len(cycle)-1]
	}
	if len(cycle) < 2 {
		return nil
	}

	smallest := 0
	for i, name := range cycle {
		if name < cycle[smallest] {
			smallest = i
		}
	}

	rotated := make([]string, 0, len(cycle))
	rotated = append(rotated, cycle[smallest:]...)
	rotated = append(rotated, cycle[:smallest]...)
	return rotated
}
