package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/quill-dev/quill/pkg/rdom"
)

// Render streams a node tree to the given writer in one depth-first,
// left-to-right, append-only pass. The writer is the sole boundary
// toward raw I/O: a bytes.Buffer, a file, a socket or a child
// process's stdout all work the same way. Render holds no cross-call
// state; two renders of an identical tree (Deferred effects aside)
// produce byte-identical output.
func Render(w io.Writer, node *rdom.Node) error {
	return renderNode(w, node)
}

// String renders a node tree to a string.
func String(node *rdom.Node) (string, error) {
	var buf bytes.Buffer
	if err := renderNode(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Bytes renders a node tree to a byte slice.
func Bytes(node *rdom.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := renderNode(&buf, node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderNode dispatches rendering based on node kind.
func renderNode(w io.Writer, node *rdom.Node) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case rdom.KindElement:
		return renderElement(w, node)
	case rdom.KindText:
		return writeEscapedText(w, node.Text)
	case rdom.KindRaw:
		return writeString(w, node.Text)
	case rdom.KindSeq:
		for _, child := range node.Children {
			if err := renderNode(w, child); err != nil {
				return err
			}
		}
		return nil
	case rdom.KindDeferred:
		if node.Thunk == nil {
			return fmt.Errorf("render: deferred node without thunk")
		}
		return renderNode(w, node.Thunk())
	default:
		return fmt.Errorf("render: unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an element with its attributes and children.
// Attributes are written in insertion order; duplicate keys are all
// emitted. An attribute with an empty value is written bare.
func renderElement(w io.Writer, node *rdom.Node) error {
	if err := writeString(w, "<"+node.Tag); err != nil {
		return err
	}

	for _, attr := range node.Attrs {
		if attr.IsEmpty() {
			continue
		}
		if err := writeString(w, " "+attr.Key); err != nil {
			return err
		}
		if attr.Value == "" {
			continue
		}
		if err := writeString(w, `="`); err != nil {
			return err
		}
		if err := writeEscapedAttr(w, attr.Value); err != nil {
			return err
		}
		if err := writeString(w, `"`); err != nil {
			return err
		}
	}

	if err := writeString(w, ">"); err != nil {
		return err
	}

	// Void elements take no children and no closing tag.
	if IsVoidElement(node.Tag) {
		return nil
	}

	for _, child := range node.Children {
		if err := renderNode(w, child); err != nil {
			return err
		}
	}

	return writeString(w, "</"+node.Tag+">")
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
