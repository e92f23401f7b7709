package html

import (
	"fmt"

	"github.com/quill-dev/quill/pkg/rdom"
	"github.com/quill-dev/quill/pkg/render"
)

// newElement creates an element from variadic arguments.
// Arguments can be: nil, rdom.Attr, []rdom.Attr, *rdom.Node,
// []*rdom.Node, or string (text shorthand).
func newElement(tag string, args []any) *rdom.Node {
	node := &rdom.Node{
		Kind: rdom.KindElement,
		Tag:  tag,
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes and children).
		case rdom.Attr:
			if !v.IsEmpty() {
				node.Attrs = append(node.Attrs, v)
			}
		case []rdom.Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					node.Attrs = append(node.Attrs, a)
				}
			}
		default:
			appendChild(node, tag, arg)
		}
	}

	return node
}

func appendChild(node *rdom.Node, tag string, arg any) {
	switch v := arg.(type) {
	case nil:
	case *rdom.Node:
		if v != nil {
			node.Children = append(node.Children, v)
		}
	case []*rdom.Node:
		for _, child := range v {
			if child != nil {
				node.Children = append(node.Children, child)
			}
		}
	case string:
		node.Children = append(node.Children, rdom.Text(v))
	default:
		panic(fmt.Sprintf("html: unsupported argument %T for <%s>", arg, tag))
	}
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return render.IsVoidElement(tag)
}

// Doctype renders a document type declaration, e.g. Doctype("html").
func Doctype(name string) *rdom.Node {
	return rdom.Raw("<!DOCTYPE " + name + ">")
}

// Document structure

func Html(args ...any) *rdom.Node    { return newElement("html", args) }
func Head(args ...any) *rdom.Node    { return newElement("head", args) }
func Body(args ...any) *rdom.Node    { return newElement("body", args) }
func Title(args ...any) *rdom.Node   { return newElement("title", args) }
func Meta(args ...any) *rdom.Node    { return newElement("meta", args) }
func LinkEl(args ...any) *rdom.Node  { return newElement("link", args) }
func Script(args ...any) *rdom.Node  { return newElement("script", args) }
func StyleEl(args ...any) *rdom.Node { return newElement("style", args) }

// Sectioning

func Header(args ...any) *rdom.Node     { return newElement("header", args) }
func Footer(args ...any) *rdom.Node     { return newElement("footer", args) }
func MainEl(args ...any) *rdom.Node     { return newElement("main", args) }
func Nav(args ...any) *rdom.Node        { return newElement("nav", args) }
func Section(args ...any) *rdom.Node    { return newElement("section", args) }
func Article(args ...any) *rdom.Node    { return newElement("article", args) }
func Aside(args ...any) *rdom.Node      { return newElement("aside", args) }
func Blockquote(args ...any) *rdom.Node { return newElement("blockquote", args) }

// Headings

func H1(args ...any) *rdom.Node { return newElement("h1", args) }
func H2(args ...any) *rdom.Node { return newElement("h2", args) }
func H3(args ...any) *rdom.Node { return newElement("h3", args) }
func H4(args ...any) *rdom.Node { return newElement("h4", args) }
func H5(args ...any) *rdom.Node { return newElement("h5", args) }
func H6(args ...any) *rdom.Node { return newElement("h6", args) }

// Content

func Div(args ...any) *rdom.Node    { return newElement("div", args) }
func P(args ...any) *rdom.Node      { return newElement("p", args) }
func Span(args ...any) *rdom.Node   { return newElement("span", args) }
func A(args ...any) *rdom.Node      { return newElement("a", args) }
func Ul(args ...any) *rdom.Node     { return newElement("ul", args) }
func Ol(args ...any) *rdom.Node     { return newElement("ol", args) }
func Li(args ...any) *rdom.Node     { return newElement("li", args) }
func Pre(args ...any) *rdom.Node    { return newElement("pre", args) }
func Code(args ...any) *rdom.Node   { return newElement("code", args) }
func Strong(args ...any) *rdom.Node { return newElement("strong", args) }
func Em(args ...any) *rdom.Node     { return newElement("em", args) }
func B(args ...any) *rdom.Node      { return newElement("b", args) }
func I(args ...any) *rdom.Node      { return newElement("i", args) }
func U(args ...any) *rdom.Node      { return newElement("u", args) }
func Img(args ...any) *rdom.Node    { return newElement("img", args) }
func Br(args ...any) *rdom.Node     { return newElement("br", args) }
func Hr(args ...any) *rdom.Node     { return newElement("hr", args) }

// Forms

func Form(args ...any) *rdom.Node     { return newElement("form", args) }
func Label(args ...any) *rdom.Node    { return newElement("label", args) }
func Input(args ...any) *rdom.Node    { return newElement("input", args) }
func Button(args ...any) *rdom.Node   { return newElement("button", args) }
func Textarea(args ...any) *rdom.Node { return newElement("textarea", args) }
func Select(args ...any) *rdom.Node   { return newElement("select", args) }
func Option(args ...any) *rdom.Node   { return newElement("option", args) }

// Tables

func Table(args ...any) *rdom.Node { return newElement("table", args) }
func Thead(args ...any) *rdom.Node { return newElement("thead", args) }
func Tbody(args ...any) *rdom.Node { return newElement("tbody", args) }
func Tr(args ...any) *rdom.Node    { return newElement("tr", args) }
func Th(args ...any) *rdom.Node    { return newElement("th", args) }
func Td(args ...any) *rdom.Node    { return newElement("td", args) }
