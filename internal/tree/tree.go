package tree

import (
	"iter"

	"golang.org/x/exp/constraints"
)

type Tree[T constraints.Ordered] interface {
	Insert(item T)
	Remove(item T) bool
	Find(item T) *Node[T]
	FindParent(target *Node[T]) *Node[T]
	Traverse(order Order) iter.Seq[T]
	Values(order Order) []T
	NodeCount() int
	LeavesCount() int
	Height() int
}

var _ Tree[int] = (*BST[int])(nil)
