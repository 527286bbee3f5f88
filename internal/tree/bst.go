package tree

import "golang.org/x/exp/constraints"

// Node holds one value and exclusively owns its two subtrees. Pointers
// returned by lookups are only valid until the next Insert or Remove.
type Node[T constraints.Ordered] struct {
	data        T
	left, right *Node[T]
}

func (n *Node[T]) Data() T { return n.data }

func (n *Node[T]) Left() *Node[T] { return n.left }

func (n *Node[T]) Right() *Node[T] { return n.right }

func (n *Node[T]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// BST is an unbalanced binary search tree. Values smaller than a node go
// left, everything else (duplicates included) goes right. A BST is not safe
// for concurrent use.
type BST[T constraints.Ordered] struct {
	root *Node[T]
}

func New[T constraints.Ordered]() *BST[T] {
	return &BST[T]{}
}

func (t *BST[T]) Root() *Node[T] {
	return t.root
}

func (t *BST[T]) Insert(item T) {
	link := &t.root
	for *link != nil {
		if item < (*link).data {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	*link = &Node[T]{data: item}
}

// Remove deletes the first node equal to item on its search path. It
// reports whether anything was removed.
func (t *BST[T]) Remove(item T) bool {
	return remove(&t.root, item)
}

// Find returns the first node equal to item on its search path, or nil.
func (t *BST[T]) Find(item T) *Node[T] {
	n := t.root
	for n != nil && n.data != item {
		if item < n.data {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n
}

func (t *BST[T]) FindRightMostNode(start *Node[T]) *Node[T] {
	return rightMost(start)
}

// FindParent walks down from the root steering by target's value and
// returns the node visited just before target. It returns nil when target
// is nil or the root, or when the walk falls off the tree without meeting
// target. The walk compares values, so a node that does not sit on the
// search path of its own value is not found. That happens after a
// two-child Remove pulls a duplicated predecessor value up over an equal
// value left behind in the left subtree.
func (t *BST[T]) FindParent(target *Node[T]) *Node[T] {
	if target == nil || t.root == nil || t.root == target {
		return nil
	}

	var parent *Node[T]
	current := t.root
	for current != nil && current != target {
		parent = current
		if target.data < current.data {
			current = current.left
		} else {
			current = current.right
		}
	}
	if current == nil {
		return nil
	}
	return parent
}

func (t *BST[T]) Min() (T, bool) {
	n := t.root
	if n == nil {
		var zero T
		return zero, false
	}
	for n.left != nil {
		n = n.left
	}
	return n.data, true
}

func (t *BST[T]) Max() (T, bool) {
	n := rightMost(t.root)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.data, true
}

func (t *BST[T]) NodeCount() int {
	count := 0
	for range t.nodes() {
		count++
	}
	return count
}

func (t *BST[T]) LeavesCount() int {
	count := 0
	for n := range t.nodes() {
		if n.IsLeaf() {
			count++
		}
	}
	return count
}

// Height is the number of nodes on the longest root-to-leaf path.
func (t *BST[T]) Height() int {
	if t.root == nil {
		return 0
	}

	height := 0
	level := []*Node[T]{t.root}
	for len(level) > 0 {
		height++
		var next []*Node[T]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}

// Clear drops every node.
func (t *BST[T]) Clear() {
	t.root = nil
}

//-------------------------UTILITY FUNCTIONS-------------------------------------//

// remove follows links by value until it reaches the matching node and
// splices it out. A node with two children takes its in-order predecessor's
// value, and the search continues in the left subtree for that value.
func remove[T constraints.Ordered](link **Node[T], item T) bool {
	for *link != nil {
		n := *link
		switch {
		case item < n.data:
			link = &n.left
		case item != n.data:
			// same routing as Insert and Find, so unordered values go right
			link = &n.right
		case n.left == nil:
			*link = n.right
			return true
		case n.right == nil:
			*link = n.left
			return true
		default:
			pred := rightMost(n.left)
			n.data = pred.data
			link, item = &n.left, pred.data
		}
	}
	return false
}

func rightMost[T constraints.Ordered](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

//--------------------------------------END-------------------------------------//
