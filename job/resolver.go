package job

import (
	"fmt"

	"github.com/jobforge/jobforge/internal/errors"
	"github.com/jobforge/jobforge/internal/lib/tree"
)

// Resolver materializes sparse specs into complete ones by walking their
// inheritance chains. Roots extend the resolver's base spec, every other
// spec extends its already resolved parent.
type Resolver struct {
	base *Spec
	home string
}

// NewResolver builds a resolver around the given base spec. home is the
// directory maven local repositories default under.
func NewResolver(base *Spec, home string) *Resolver {
	return &Resolver{
		base: base,
		home: home,
	}
}

type specNode struct {
	spec *Spec
}

func (n specNode) GetName() string {
	return n.spec.ID
}

// Resolve merges, rewrites and validates every spec and returns the non
// abstract ones, parents always ahead of their children. The first spec
// that fails aborts resolution.
func (r *Resolver) Resolve(specs []*Spec) ([]*Spec, error) {
	index, err := indexByID(specs)
	if err != nil {
		return nil, err
	}
	inheritanceTree, err := r.buildTree(index, specs)
	if err != nil {
		return nil, err
	}
	if err := inheritanceTree.ValidateCyclic(); err != nil {
		return nil, errors.InvalidArgument(EntityJob, err.Error())
	}

	resolved := make([]*Spec, 0, len(specs))
	for _, root := range inheritanceTree.GetRootNodes() {
		for _, node := range root.GetAllNodes() {
			spec := node.Data.(specNode).spec
			parent := r.base
			if spec.Parent != "" {
				parent = index[spec.Parent]
			}
			if err := spec.MergeFrom(parent); err != nil {
				return nil, err
			}
			if err := spec.RewriteMavenGoals(r.home); err != nil {
				return nil, err
			}
			if err := spec.Validate(); err != nil {
				return nil, err
			}
			if !spec.Abstract {
				resolved = append(resolved, spec)
			}
		}
	}
	return resolved, nil
}

// Tree builds the inheritance forest without resolving it, for callers
// that only need the chain structure.
func (r *Resolver) Tree(specs []*Spec) (*tree.MultiRootTree, error) {
	index, err := indexByID(specs)
	if err != nil {
		return nil, err
	}
	inheritanceTree, err := r.buildTree(index, specs)
	if err != nil {
		return nil, err
	}
	if err := inheritanceTree.ValidateCyclic(); err != nil {
		return nil, errors.InvalidArgument(EntityJob, err.Error())
	}
	return inheritanceTree, nil
}

func indexByID(specs []*Spec) (map[string]*Spec, error) {
	index := make(map[string]*Spec, len(specs))
	for _, spec := range specs {
		if _, ok := index[spec.ID]; ok {
			return nil, errors.AlreadyExists(EntityJob, "duplicate job id "+spec.ID)
		}
		index[spec.ID] = spec
	}
	return index, nil
}

func (*Resolver) buildTree(index map[string]*Spec, specs []*Spec) (*tree.MultiRootTree, error) {
	inheritanceTree := tree.NewMultiRootTree()
	for _, spec := range specs {
		node := findOrCreateNode(inheritanceTree, spec)
		if spec.Parent == "" {
			inheritanceTree.MarkRoot(node)
			continue
		}
		parentSpec, ok := index[spec.Parent]
		if !ok {
			return nil, errors.NotFound(EntityJob,
				fmt.Sprintf("job %s inherits unknown parent %s", spec.ID, spec.Parent))
		}
		parentNode := findOrCreateNode(inheritanceTree, parentSpec)
		parentNode.AddDependent(node)
	}
	return inheritanceTree, nil
}

func findOrCreateNode(inheritanceTree *tree.MultiRootTree, spec *Spec) *tree.TreeNode {
	if node, ok := inheritanceTree.GetNodeByName(spec.ID); ok {
		return node
	}
	node := tree.NewTreeNode(specNode{spec: spec})
	inheritanceTree.AddNode(node)
	return node
}
