package tree

import (
	"errors"
	"fmt"
	"sort"

	"github.com/xlab/treeprint"
)

// ErrCircularInheritance is triggered when a chain of nodes loops back on itself
var ErrCircularInheritance = errors.New("circular inheritance detected")

// MultiRootTree represents a forest with multiple independent root nodes.
// It maintains a map of nodes for faster lookups and managing node data.
type MultiRootTree struct {
	rootNames []string
	nodes     map[string]*TreeNode
}

// NewMultiRootTree returns an empty multi root tree
func NewMultiRootTree() *MultiRootTree {
	return &MultiRootTree{
		rootNames: []string{},
		nodes:     map[string]*TreeNode{},
	}
}

func (t *MultiRootTree) AddNode(node *TreeNode) {
	t.nodes[node.GetName()] = node
}

func (t *MultiRootTree) AddNodeIfNotExist(node *TreeNode) {
	if _, ok := t.GetNodeByName(node.GetName()); !ok {
		t.AddNode(node)
	}
}

func (t *MultiRootTree) GetNodeByName(name string) (*TreeNode, bool) {
	value, ok := t.nodes[name]
	return value, ok
}

// MarkRoot registers a node as the start of an independent chain
func (t *MultiRootTree) MarkRoot(node *TreeNode) {
	t.rootNames = append(t.rootNames, node.GetName())
}

func (t *MultiRootTree) GetRootNodes() []*TreeNode {
	nodes := make([]*TreeNode, 0, len(t.rootNames))
	for _, name := range t.rootNames {
		node, _ := t.GetNodeByName(name)
		nodes = append(nodes, node)
	}
	return nodes
}

// ValidateCyclic fails on the first chain that loops back on itself,
// rendering the offending path in the error.
func (t *MultiRootTree) ValidateCyclic() error {
	visited := make(map[string]bool)
	for _, name := range t.sortedNames() {
		if !visited[name] {
			if err := t.walk(t.nodes[name], visited, make(map[string]bool), nil); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *MultiRootTree) sortedNames() []string {
	names := make([]string, 0, len(t.nodes))
	for name := range t.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// walk is a depth first search keeping the set of names on the current
// path; meeting one of them again is a cycle.
func (t *MultiRootTree) walk(node *TreeNode, visited, onPath map[string]bool, path []string) error {
	if visited[node.GetName()] {
		return nil
	}
	visited[node.GetName()] = true
	onPath[node.GetName()] = true
	path = append(path, node.GetName())

	for _, dep := range node.Dependents {
		child, ok := t.GetNodeByName(dep.GetName())
		if !ok {
			child = dep
		}
		if onPath[child.GetName()] {
			cycle := append(path, child.GetName())
			return fmt.Errorf("%w:\n%s", ErrCircularInheritance, renderPath(cycle))
		}
		if err := t.walk(child, visited, onPath, path); err != nil {
			return err
		}
	}

	onPath[node.GetName()] = false
	return nil
}

func renderPath(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	root := treeprint.NewWithRoot(paths[len(paths)-1])
	branch := root
	for i := len(paths) - 2; i >= 0; i-- {
		branch = branch.AddBranch(paths[i])
	}
	return root.String()
}
