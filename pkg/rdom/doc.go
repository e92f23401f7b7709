// Package rdom defines the render value model: the tagged tree of
// renderable values that the rest of Quill composes and serializes.
//
// # Core Types
//
// Node is the fundamental building block. Its Kind discriminates five
// variants: elements, escaped text, raw (pre-sanitized) markup, ordered
// sequences, and deferred subtrees produced at render time. Attr is an
// ordered (key, value) pair; elements keep attributes as a slice so
// duplicate keys survive in insertion order.
//
// # Composition
//
// Composition is value construction, bottom-up. A sequence of nodes is
// itself a node (Group), so callers never need an explicit concat:
//
//	rdom.Group(
//	    rdom.Text("Hi, "),
//	    rdom.Text(name),
//	)
//
// Trees are never shared or mutated after construction; build a fresh
// tree per render. Conditional and iterative construction go through
// If, IfElse, When, Map and Repeat.
//
// # Deferred Nodes
//
// Deferred wraps a nullary function invoked exactly once, when its
// position is reached during traversal. This is the escape hatch for
// content that depends on state only available at render time. Unlike
// every other variant, a Deferred render is not guaranteed to be
// idempotent: the thunk sees captured variables by reference.
//
// Serialization of trees lives in package render; the HTML vocabulary
// and the fluent element builder live in package html.
package rdom
