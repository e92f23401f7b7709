package html

import (
	"strings"
	"testing"

	"github.com/microcosm-cc/bluemonday"

	"github.com/quill-dev/quill/pkg/render"
)

func TestSanitizedStripsScripts(t *testing.T) {
	node := Sanitized(`<p>fine</p><script>alert("xss")</script>`)
	s, err := render.String(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(s, "<script>") {
		t.Errorf("script survived sanitizing: %q", s)
	}
	if !strings.Contains(s, "<p>fine</p>") {
		t.Errorf("benign markup was dropped: %q", s)
	}
}

func TestSanitizedWithStrictPolicy(t *testing.T) {
	node := SanitizedWith(bluemonday.StrictPolicy(), "<b>bold</b> plain")
	s, err := render.String(node)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(s, "<b>") {
		t.Errorf("strict policy should strip tags: %q", s)
	}
	if !strings.Contains(s, "plain") {
		t.Errorf("text content was lost: %q", s)
	}
}
