package html

import (
	"testing"

	"github.com/quill-dev/quill/pkg/render"
)

func renderString(t *testing.T, b *Builder) string {
	t.Helper()
	s, err := render.String(b.Node())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return s
}

func TestBuilderBareTag(t *testing.T) {
	s, err := render.String(El("div").Node())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if s != "<div></div>" {
		t.Errorf("got %q, want %q", s, "<div></div>")
	}
}

func TestBuilderAttrOrderWithDuplicates(t *testing.T) {
	b := El("div").Attr("a", "1").Attr("b", "2").Attr("a", "3")
	s := renderString(t, b)
	want := `<div a="1" b="2" a="3"></div>`
	if s != want {
		t.Errorf("got %q, want %q", s, want)
	}
}

func TestBuilderIsPersistent(t *testing.T) {
	base := El("a").Attr("class", "nav")
	home := base.Attr("href", "/")
	docs := base.Attr("href", "/docs")

	if got := renderString(t, home); got != `<a class="nav" href="/"></a>` {
		t.Errorf("home: got %q", got)
	}
	if got := renderString(t, docs); got != `<a class="nav" href="/docs"></a>` {
		t.Errorf("docs: got %q", got)
	}
	// The shared prefix is untouched by either branch.
	if got := renderString(t, base); got != `<a class="nav"></a>` {
		t.Errorf("base: got %q", got)
	}
}

func TestBuilderBody(t *testing.T) {
	node := El("div").ID("x").Body("hi")
	s, err := render.String(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if s != `<div id="x">hi</div>` {
		t.Errorf("got %q", s)
	}
}

func TestBuilderFlag(t *testing.T) {
	node := El("input").Type("checkbox").Flag("checked").Node()
	s, err := render.String(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if s != `<input type="checkbox" checked>` {
		t.Errorf("got %q", s)
	}
}

func TestBuilderDoubleFinalizePanics(t *testing.T) {
	b := El("div").Attr("id", "once")
	b.Body("first")

	defer func() {
		if recover() == nil {
			t.Error("second finalization should panic")
		}
	}()
	b.Body("second")
}

func TestBuilderNodeThenBodyPanics(t *testing.T) {
	b := El("span")
	b.Node()

	defer func() {
		if recover() == nil {
			t.Error("finalizing a consumed builder should panic")
		}
	}()
	b.Node()
}

func TestBuilderSetSkipsEmptyAttrs(t *testing.T) {
	b := El("div").Set(ID("x"), Class())
	s := renderString(t, b)
	// Class() with no classes still has key "class"; only a zero Attr is skipped.
	if s != `<div id="x" class></div>` {
		t.Errorf("got %q", s)
	}
}
