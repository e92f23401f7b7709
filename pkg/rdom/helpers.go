package rdom

import "fmt"

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Group composes siblings into a single renderable without a wrapper
// element. Members render in order with no separators; nil members and
// nil slices are skipped, nested slices are flattened.
func Group(children ...any) *Node {
	node := &Node{
		Kind:     KindSeq,
		Children: make([]*Node, 0, len(children)),
	}

	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *Node:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*Node:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		default:
			panic(fmt.Sprintf("rdom: unsupported child type %T in Group", child))
		}
	}

	return node
}

// Nothing returns an empty node that renders no bytes.
func Nothing() *Node {
	return &Node{Kind: KindSeq}
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *Node) *Node {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy construction.
// The function is only called if condition is true.
func When(condition bool, fn func() *Node) *Node {
	if condition {
		return fn()
	}
	return nil
}

// Map renders one node per item, preserving order.
func Map[T any](items []T, fn func(item T, index int) *Node) []*Node {
	nodes := make([]*Node, 0, len(items))
	for i, item := range items {
		if n := fn(item, i); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Repeat renders n nodes from an index function.
func Repeat(n int, fn func(i int) *Node) []*Node {
	nodes := make([]*Node, 0, n)
	for i := 0; i < n; i++ {
		if node := fn(i); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}
