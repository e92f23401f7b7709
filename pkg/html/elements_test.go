package html

import (
	"strings"
	"testing"

	"github.com/quill-dev/quill/pkg/rdom"
	"github.com/quill-dev/quill/pkg/render"
)

func TestConstructorMixedArgs(t *testing.T) {
	node := Div(Class("container"),
		H1("Title"),
		nil, // conditional child that didn't apply
		P(rdom.Text("Content")),
	)

	s, err := render.String(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(s, `<div class="container">`) {
		t.Errorf("missing div with class: %q", s)
	}
	if !strings.Contains(s, "<h1>Title</h1>") {
		t.Errorf("missing h1: %q", s)
	}
	if !strings.Contains(s, "<p>Content</p>") {
		t.Errorf("missing p: %q", s)
	}
}

func TestConstructorAttrSlice(t *testing.T) {
	attrs := []rdom.Attr{ID("x"), Data("k", "v")}
	s, err := render.String(Span(attrs, "t"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if s != `<span id="x" data-k="v">t</span>` {
		t.Errorf("got %q", s)
	}
}

func TestConstructorNodeSlice(t *testing.T) {
	items := rdom.Map([]string{"a", "b"}, func(s string, _ int) *rdom.Node {
		return Li(s)
	})
	s, err := render.String(Ul(items))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if s != "<ul><li>a</li><li>b</li></ul>" {
		t.Errorf("got %q", s)
	}
}

func TestConstructorPanicsOnUnsupportedArg(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unsupported argument type")
		}
	}()
	Div(3.14)
}

func TestDoctype(t *testing.T) {
	s, err := render.String(rdom.Group(Doctype("html"), Html(Body())))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if s != "<!DOCTYPE html><html><body></body></html>" {
		t.Errorf("got %q", s)
	}
}

func TestBooleanAttributesRenderBare(t *testing.T) {
	s, err := render.String(Input(TypeAttr("checkbox"), Checked(), Disabled()))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if s != `<input type="checkbox" checked disabled>` {
		t.Errorf("got %q", s)
	}
}

func TestClassJoinsWithSpaces(t *testing.T) {
	a := Class("btn", "btn-primary")
	if a.Value != "btn btn-primary" {
		t.Errorf("got %q", a.Value)
	}
}
