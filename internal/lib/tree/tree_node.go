package tree

type TreeData interface {
	GetName() string
}

// TreeNode carries data along with the nodes that depend on it. For an
// inheritance chain the dependents are the children extending this node.
type TreeNode struct {
	Data       TreeData
	Dependents []*TreeNode
}

// NewTreeNode wraps data into a node with no dependents yet
func NewTreeNode(data TreeData) *TreeNode {
	return &TreeNode{
		Data:       data,
		Dependents: []*TreeNode{},
	}
}

func (t *TreeNode) GetName() string {
	return t.Data.GetName()
}

func (t *TreeNode) AddDependent(depNode *TreeNode) *TreeNode {
	t.Dependents = append(t.Dependents, depNode)
	return t
}

// GetAllNodes walks the subtree under this node breadth first, so a node
// always comes before any of its dependents in the result.
func (t *TreeNode) GetAllNodes() []*TreeNode {
	allNodes := make([]*TreeNode, 0)
	queue := []*TreeNode{t}
	for len(queue) != 0 {
		node := queue[0]
		queue = queue[1:]
		allNodes = append(allNodes, node)
		queue = append(queue, node.Dependents...)
	}
	return allNodes
}
