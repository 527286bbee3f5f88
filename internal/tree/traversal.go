package tree

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"slices"
)

type Order string

const (
	PreOrder  Order = "preorder"
	InOrder   Order = "inorder"
	PostOrder Order = "postorder"
)

func ParseOrder(s string) (Order, bool) {
	switch o := Order(s); o {
	case PreOrder, InOrder, PostOrder:
		return o, true
	}
	return "", false
}

// Traverse returns the values in the given order. An unknown order yields
// nothing.
func (t *BST[T]) Traverse(order Order) iter.Seq[T] {
	switch order {
	case PreOrder:
		return t.PreOrder()
	case InOrder:
		return t.InOrder()
	case PostOrder:
		return t.PostOrder()
	}
	return func(func(T) bool) {}
}

// Values collects the traversal into a slice.
func (t *BST[T]) Values(order Order) []T {
	return slices.Collect(t.Traverse(order))
}

// PreOrder yields each node before its left and then right subtree.
func (t *BST[T]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range t.nodes() {
			if !yield(n.data) {
				return
			}
		}
	}
}

// InOrder yields the values in ascending order.
func (t *BST[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack []*Node[T]
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.data) {
				return
			}
			n = n.right
		}
	}
}

// PostOrder yields both subtrees of a node before the node itself.
func (t *BST[T]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack []*Node[T]
		var last *Node[T]
		n := t.root
		for n != nil || len(stack) > 0 {
			if n != nil {
				stack = append(stack, n)
				n = n.left
				continue
			}
			top := stack[len(stack)-1]
			if top.right != nil && top.right != last {
				n = top.right
				continue
			}
			stack = stack[:len(stack)-1]
			if !yield(top.data) {
				return
			}
			last = top
		}
	}
}

// nodes walks the tree in pre-order with an explicit stack.
func (t *BST[T]) nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if t.root == nil {
			return
		}
		stack := []*Node[T]{t.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			if n.right != nil {
				stack = append(stack, n.right)
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
		}
	}
}

// Fprint writes every value followed by a space, then a newline.
func Fprint[T any](w io.Writer, seq iter.Seq[T]) error {
	bw := bufio.NewWriter(w)
	for v := range seq {
		fmt.Fprintf(bw, "%v ", v)
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
