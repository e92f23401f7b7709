// Package quill renders HTML documents from trees composed in Go code.
//
// Documents are built from rdom nodes, usually through the html
// package's element constructors, and rendered depth-first to any
// io.Writer:
//
//	page := html.Div(html.Class("greeting"), "Hello, ", html.Strong(name))
//	out, err := quill.String(page)
//
// Templates registered in the template package can additionally render
// out of process; see the dynamic package.
package quill

import (
	"io"

	"github.com/quill-dev/quill/pkg/rdom"
	"github.com/quill-dev/quill/pkg/render"
)

// Node is a document tree node. See the rdom package for constructors.
type Node = rdom.Node

// Attr is a single element attribute.
type Attr = rdom.Attr

// Render streams node as HTML to w.
func Render(w io.Writer, node *Node) error {
	return render.Render(w, node)
}

// String renders node to a string.
func String(node *Node) (string, error) {
	return render.String(node)
}

// Bytes renders node to a byte slice.
func Bytes(node *Node) ([]byte, error) {
	return render.Bytes(node)
}
