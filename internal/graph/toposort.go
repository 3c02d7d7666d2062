package graph

import (
	"fmt"
	"sort"

	"git.home.luguber.info/inful/graphdot/internal/errors"
)

// TopoSort returns the node IDs in dependency order using Kahn's algorithm:
// an edge a -> b places a before b. Returns a validation error naming the
// offending nodes if the graph contains a cycle.
// Ordering is deterministic: ties are broken lexically.
func (g *Graph) TopoSort() ([]string, error) {
	if len(g.nodes) == 0 {
		return []string{}, nil
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	// Build adjacency from the per-node outgoing sets and calculate
	// in-degrees. Outgoing deduplicates, so parallel edges count once.
	adjacency := make(map[string][]string, len(g.nodes))
	inDegree := make(map[string]int, len(g.nodes))
	for _, n := range g.nodes {
		inDegree[n.ID] = 0
	}
	for _, n := range g.nodes {
		targets := g.Outgoing(n.ID)
		adjacency[n.ID] = targets
		for _, target := range targets {
			inDegree[target]++
		}
	}

	// Start with nodes that have no incoming edges, sorted for deterministic
	// ordering when multiple nodes are ready at once.
	var queue []string
	for _, id := range g.sortedIDs() {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	var result []string
	visited := make(map[string]bool)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true
		result = append(result, current)

		// Outgoing returns targets already in lexical order.
		for _, neighbor := range adjacency[current] {
			inDegree[neighbor]--
			if inDegree[neighbor] == 0 {
				queue = append(queue, neighbor)
				sort.Strings(queue)
			}
		}
	}

	// If we didn't visit all nodes, there's a cycle. Name the unvisited nodes
	// to give a useful error message.
	if len(result) != len(g.nodes) {
		var unvisited []string
		for _, n := range g.nodes {
			if !visited[n.ID] {
				unvisited = append(unvisited, n.ID)
			}
		}
		sort.Strings(unvisited)
		return nil, errors.NewValidationError(
			fmt.Sprintf("circular dependency detected involving nodes: %v", unvisited)).
			WithContext("nodes", unvisited)
	}

	return result, nil
}
