package html

import (
	"fmt"

	"github.com/quill-dev/quill/pkg/rdom"
)

// Builder accumulates attributes on a tag before finalization. It is a
// persistent value: every setter returns a new Builder and never
// mutates the receiver, so earlier references cannot be altered by
// later code:
//
//	base := html.El("a").Attr("class", "nav")
//	home := base.Attr("href", "/")      // base unchanged
//	docs := base.Attr("href", "/docs")  // independent of home
//
// Body seals the builder into an element; sealing the same builder
// twice is a programmer error and panics.
type Builder struct {
	tag       string
	attrs     []rdom.Attr
	finalized bool
}

// El starts a builder for the given tag. A builder finalized without
// content renders as an empty element.
func El(tag string) *Builder {
	return &Builder{tag: tag}
}

// Tag returns the builder's tag name.
func (b *Builder) Tag() string {
	return b.tag
}

// Attr returns a new builder with the pair appended. Appending is
// order-preserving and non-idempotent: setting the same key twice
// yields two attributes.
func (b *Builder) Attr(key, value string) *Builder {
	attrs := make([]rdom.Attr, len(b.attrs), len(b.attrs)+1)
	copy(attrs, b.attrs)
	return &Builder{
		tag:   b.tag,
		attrs: append(attrs, rdom.Attr{Key: key, Value: value}),
	}
}

// Flag returns a new builder with a bare (valueless) attribute
// appended, e.g. Flag("disabled").
func (b *Builder) Flag(key string) *Builder {
	return b.Attr(key, "")
}

// Set returns a new builder with the given attributes appended.
func (b *Builder) Set(attrs ...rdom.Attr) *Builder {
	merged := make([]rdom.Attr, len(b.attrs), len(b.attrs)+len(attrs))
	copy(merged, b.attrs)
	for _, a := range attrs {
		if !a.IsEmpty() {
			merged = append(merged, a)
		}
	}
	return &Builder{tag: b.tag, attrs: merged}
}

// Common attribute shorthands, mirroring the attribute helpers.

func (b *Builder) Class(classes ...string) *Builder { return b.Set(Class(classes...)) }
func (b *Builder) ID(id string) *Builder            { return b.Set(ID(id)) }
func (b *Builder) Href(href string) *Builder        { return b.Set(Href(href)) }
func (b *Builder) Src(src string) *Builder          { return b.Set(Src(src)) }
func (b *Builder) Type(t string) *Builder           { return b.Set(TypeAttr(t)) }
func (b *Builder) Name(name string) *Builder        { return b.Set(Name(name)) }
func (b *Builder) Value(value string) *Builder      { return b.Set(Value(value)) }
func (b *Builder) Data(key, value string) *Builder  { return b.Set(Data(key, value)) }

// Body finalizes the builder into an element with the given content.
// Children accept the same argument kinds as the element constructors:
// *rdom.Node, []*rdom.Node, string (text shorthand) and nil. The
// builder is consumed; finalizing it a second time panics.
func (b *Builder) Body(children ...any) *rdom.Node {
	b.seal()
	node := rdom.Element(b.tag, b.attrs)
	for _, child := range children {
		appendChild(node, b.tag, child)
	}
	return node
}

// Node finalizes the builder with no content, yielding an element that
// renders empty (or void, if the tag is a void element).
func (b *Builder) Node() *rdom.Node {
	b.seal()
	return rdom.Element(b.tag, b.attrs)
}

func (b *Builder) seal() {
	if b.finalized {
		panic(fmt.Sprintf("html: builder for <%s> already finalized", b.tag))
	}
	b.finalized = true
}
