package rdom

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindRaw, "Raw"},
		{KindSeq, "Seq"},
		{KindDeferred, "Deferred"},
		{Kind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestElementDropsNilChildren(t *testing.T) {
	node := Element("div", nil, Text("a"), nil, Text("b"))
	if len(node.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(node.Children))
	}
	if node.Children[0].Text != "a" || node.Children[1].Text != "b" {
		t.Errorf("children out of order: %v", node.Children)
	}
}

func TestElementKeepsDuplicateAttrs(t *testing.T) {
	attrs := []Attr{{"a", "1"}, {"b", "2"}, {"a", "3"}}
	node := Element("div", attrs)

	if len(node.Attrs) != 3 {
		t.Fatalf("got %d attrs, want 3 (duplicates must survive)", len(node.Attrs))
	}
	for i, want := range []string{"a", "b", "a"} {
		if node.Attrs[i].Key != want {
			t.Errorf("attr %d key = %q, want %q", i, node.Attrs[i].Key, want)
		}
	}
}

func TestTextAndRaw(t *testing.T) {
	if n := Text("<b>"); n.Kind != KindText || n.Text != "<b>" {
		t.Errorf("Text: got %+v", n)
	}
	if n := Raw("<b>"); n.Kind != KindRaw || n.Text != "<b>" {
		t.Errorf("Raw: got %+v", n)
	}
	if n := RawBytes([]byte("<i>")); n.Kind != KindRaw || n.Text != "<i>" {
		t.Errorf("RawBytes: got %+v", n)
	}
}

func TestDeferredHoldsThunk(t *testing.T) {
	called := false
	n := Deferred(func() *Node {
		called = true
		return Text("lazy")
	})
	if n.Kind != KindDeferred || n.Thunk == nil {
		t.Fatalf("Deferred: got %+v", n)
	}
	if called {
		t.Error("thunk must not run at construction time")
	}
	if got := n.Thunk(); got.Text != "lazy" {
		t.Errorf("thunk returned %+v", got)
	}
}

func TestAttrIsEmpty(t *testing.T) {
	if !(Attr{}).IsEmpty() {
		t.Error("zero Attr should be empty")
	}
	if (Attr{Key: "id"}).IsEmpty() {
		t.Error("keyed Attr should not be empty")
	}
}
