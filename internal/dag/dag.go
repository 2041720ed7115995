// Package dag provides directed acyclic graph operations for script
// dependencies. It supports cycle detection, level grouping and
// upstream/downstream traversal.
package dag

import (
	"fmt"
	"slices"
	"sort"
)

// Node represents a node in the DAG.
type Node[T any] struct {
	// ID is the unique identifier
	ID string
	// Data holds the node payload
	Data T
}

// Graph represents a directed acyclic graph.
type Graph[T any] struct {
	nodes   map[string]*Node[T]
	order   []string            // insertion order
	edges   map[string][]string // parent -> children (dependents)
	parents map[string][]string // child -> parents (dependencies)
}

// NewGraph creates a new empty graph.
func NewGraph[T any]() *Graph[T] {
	return &Graph[T]{
		nodes:   make(map[string]*Node[T]),
		edges:   make(map[string][]string),
		parents: make(map[string][]string),
	}
}

// AddNode adds a node to the graph, replacing the data of an existing one.
func (g *Graph[T]) AddNode(id string, data T) {
	if node, exists := g.nodes[id]; exists {
		node.Data = data
		return
	}
	g.nodes[id] = &Node[T]{ID: id, Data: data}
	g.order = append(g.order, id)
}

// AddEdge adds a directed edge from parent to child (child depends on parent).
func (g *Graph[T]) AddEdge(parentID, childID string) error {
	if _, exists := g.nodes[parentID]; !exists {
		return fmt.Errorf("parent node %q does not exist", parentID)
	}
	if _, exists := g.nodes[childID]; !exists {
		return fmt.Errorf("child node %q does not exist", childID)
	}
	if parentID == childID {
		return fmt.Errorf("self-loop detected: %s", parentID)
	}

	if !slices.Contains(g.edges[parentID], childID) {
		g.edges[parentID] = append(g.edges[parentID], childID)
	}
	if !slices.Contains(g.parents[childID], parentID) {
		g.parents[childID] = append(g.parents[childID], parentID)
	}
	return nil
}

// GetNode returns a node by ID.
func (g *Graph[T]) GetNode(id string) (*Node[T], bool) {
	node, exists := g.nodes[id]
	return node, exists
}

// GetParents returns the parents (dependencies) of a node.
func (g *Graph[T]) GetParents(id string) []string {
	return g.parents[id]
}

// GetChildren returns the children (dependents) of a node.
func (g *Graph[T]) GetChildren(id string) []string {
	return g.edges[id]
}

// Nodes returns all nodes in insertion order.
func (g *Graph[T]) Nodes() []*Node[T] {
	nodes := make([]*Node[T], 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph[T]) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph[T]) EdgeCount() int {
	count := 0
	for _, children := range g.edges {
		count += len(children)
	}
	return count
}

// HasCycle returns true if the graph contains a cycle, along with the cycle path.
func (g *Graph[T]) HasCycle() (bool, []string) {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)
	path := make(map[string]string)

	var cyclePath []string

	var dfs func(id string) bool
	dfs = func(id string) bool {
		visited[id] = true
		recStack[id] = true

		for _, childID := range g.edges[id] {
			if !visited[childID] {
				path[childID] = id
				if dfs(childID) {
					return true
				}
			} else if recStack[childID] {
				cyclePath = []string{childID}
				for curr := id; curr != childID; curr = path[curr] {
					cyclePath = append([]string{curr}, cyclePath...)
				}
				cyclePath = append([]string{childID}, cyclePath...)
				return true
			}
		}

		recStack[id] = false
		return false
	}

	for _, id := range g.order {
		if !visited[id] && dfs(id) {
			return true, cyclePath
		}
	}
	return false, nil
}

// Levels assigns every node its depth: 0 for nodes without dependencies,
// otherwise one more than the deepest parent.
func (g *Graph[T]) Levels() (map[string]int, error) {
	if hasCycle, cyclePath := g.HasCycle(); hasCycle {
		return nil, fmt.Errorf("cycle detected: %v", cyclePath)
	}

	assigned := make(map[string]int, len(g.nodes))
	var getLevel func(id string) int
	getLevel = func(id string) int {
		if level, ok := assigned[id]; ok {
			return level
		}
		level := 0
		for _, parentID := range g.parents[id] {
			level = max(level, getLevel(parentID)+1)
		}
		assigned[id] = level
		return level
	}

	for _, id := range g.order {
		getLevel(id)
	}
	return assigned, nil
}

// GetExecutionLevels returns node IDs grouped by level, each group sorted.
func (g *Graph[T]) GetExecutionLevels() ([][]string, error) {
	assigned, err := g.Levels()
	if err != nil {
		return nil, err
	}

	levels := [][]string{}
	for id, level := range assigned {
		for len(levels) <= level {
			levels = append(levels, []string{})
		}
		levels[level] = append(levels[level], id)
	}
	for i := range levels {
		sort.Strings(levels[i])
	}
	return levels, nil
}

// GetDownstreamNodes returns all nodes that depend on id, directly or not.
func (g *Graph[T]) GetDownstreamNodes(id string) []string {
	return g.reach(id, g.edges)
}

// GetUpstreamNodes returns all nodes id depends on, directly or not.
func (g *Graph[T]) GetUpstreamNodes(id string) []string {
	return g.reach(id, g.parents)
}

func (g *Graph[T]) reach(id string, next map[string][]string) []string {
	seen := make(map[string]bool)

	var mark func(nodeID string)
	mark = func(nodeID string) {
		for _, n := range next[nodeID] {
			if !seen[n] {
				seen[n] = true
				mark(n)
			}
		}
	}
	mark(id)

	result := make([]string, 0, len(seen))
	for nodeID := range seen {
		result = append(result, nodeID)
	}
	sort.Strings(result)
	return result
}

// GetRoots returns nodes with no parents (no dependencies).
func (g *Graph[T]) GetRoots() []string {
	var roots []string
	for _, id := range g.order {
		if len(g.parents[id]) == 0 {
			roots = append(roots, id)
		}
	}
	return roots
}

// GetLeaves returns nodes with no children (no dependents).
func (g *Graph[T]) GetLeaves() []string {
	var leaves []string
	for _, id := range g.order {
		if len(g.edges[id]) == 0 {
			leaves = append(leaves, id)
		}
	}
	return leaves
}
