package template

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quill-dev/quill/pkg/rdom"
	"github.com/quill-dev/quill/pkg/render"
)

func noopEntry(payload []byte) (*rdom.Node, error) {
	return rdom.Text("ok"), nil
}

func TestRegisterAndResolve(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("home", noopEntry); err != nil {
		t.Fatalf("register: %v", err)
	}

	entry, err := reg.Resolve("home")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	node, err := entry(nil)
	if err != nil {
		t.Fatalf("entry: %v", err)
	}
	if node.Text != "ok" {
		t.Errorf("entry returned %+v", node)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("home", noopEntry); err != nil {
		t.Fatalf("register: %v", err)
	}

	err := reg.Register("home", noopEntry)
	if !errors.Is(err, ErrDuplicateTemplate) {
		t.Errorf("got %v, want ErrDuplicateTemplate", err)
	}
}

func TestRegisterInvalid(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("", noopEntry); !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("empty id: got %v", err)
	}
	if err := reg.Register("x", nil); !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("nil entry: got %v", err)
	}
}

func TestResolveUnknown(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Resolve("missing")
	if !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("got %v, want ErrUnknownTemplate", err)
	}
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister("home", noopEntry)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate MustRegister")
		}
	}()
	reg.MustRegister("home", noopEntry)
}

func TestIDsSorted(t *testing.T) {
	reg := NewRegistry()
	for _, id := range []string{"zeta", "alpha", "mid"} {
		reg.MustRegister(id, noopEntry)
	}

	want := []string{"alpha", "mid", "zeta"}
	if diff := cmp.Diff(want, reg.IDs()); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONEntry(t *testing.T) {
	type data struct {
		Name string `json:"name"`
	}
	entry := JSON(func(d data) *rdom.Node {
		return rdom.Textf("Hi, %s", d.Name)
	})

	node, err := entry([]byte(`{"name":"William"}`))
	if err != nil {
		t.Fatalf("entry: %v", err)
	}
	s, err := render.String(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if s != "Hi, William" {
		t.Errorf("got %q", s)
	}
}

func TestJSONEntryDeserializationError(t *testing.T) {
	entry := JSON(func(d struct{}) *rdom.Node { return rdom.Nothing() })

	_, err := entry([]byte("{not json"))
	var derr *DeserializationError
	if !errors.As(err, &derr) {
		t.Errorf("got %v, want DeserializationError", err)
	}
}
