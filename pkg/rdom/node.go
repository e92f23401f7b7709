package rdom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <p>, etc.
	KindText                 // Escaped text
	KindRaw                  // Pre-sanitized markup, written verbatim
	KindSeq                  // Ordered grouping without a wrapper
	KindDeferred             // Subtree produced lazily at render time
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	case KindSeq:
		return "Seq"
	case KindDeferred:
		return "Deferred"
	default:
		return "Unknown"
	}
}

// Attr is a single attribute pair. Attributes are kept as an ordered
// slice, never a map: duplicate keys are legal and are emitted in
// insertion order. An Attr with an empty Value renders as a bare
// (valueless) attribute, e.g. " disabled".
type Attr struct {
	Key   string
	Value string
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Node is one value in the render tree.
//
// Trees are finite, acyclic and built bottom-up. A node exclusively
// owns its children; once constructed, a tree is never mutated or
// shared between renders. Rendering the same Raw/Text/Element/Seq tree
// twice produces byte-identical output. KindDeferred is the one
// exemption: its Thunk may observe state that changed since the tree
// was built.
type Node struct {
	Kind     Kind
	Tag      string       // KindElement
	Attrs    []Attr       // KindElement, insertion order, duplicates kept
	Children []*Node      // KindElement and KindSeq
	Text     string       // KindText and KindRaw
	Thunk    func() *Node // KindDeferred
}

// Element creates an element node with the given tag, attributes and
// children. The attrs slice is used as-is; callers hand over ownership.
func Element(tag string, attrs []Attr, children ...*Node) *Node {
	kids := make([]*Node, 0, len(children))
	for _, c := range children {
		if c != nil {
			kids = append(kids, c)
		}
	}
	return &Node{
		Kind:     KindElement,
		Tag:      tag,
		Attrs:    attrs,
		Children: kids,
	}
}

// Text creates an escaped text node.
func Text(content string) *Node {
	return &Node{Kind: KindText, Text: content}
}

// Raw creates a node whose content is written without escaping.
// This is an explicit trust boundary: the caller asserts the content
// is already safe for the output grammar. Use with caution - raw
// user-provided content can lead to XSS.
func Raw(markup string) *Node {
	return &Node{Kind: KindRaw, Text: markup}
}

// RawBytes is Raw for callers that already hold a byte slice.
func RawBytes(markup []byte) *Node {
	return &Node{Kind: KindRaw, Text: string(markup)}
}

// Deferred creates a node whose subtree is produced by fn when its
// position is reached during traversal. fn is invoked exactly once per
// render and may return nil for "nothing". Go closures capture by
// reference, so fn observes mutations made to captured state between
// construction and render; snapshot values explicitly if that matters.
func Deferred(fn func() *Node) *Node {
	return &Node{Kind: KindDeferred, Thunk: fn}
}
