package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNewFromRegistry(t *testing.T) {
	err := New("Q001")
	if err.Code != "Q001" {
		t.Errorf("Code = %q", err.Code)
	}
	if err.Category != CategoryDynamic {
		t.Errorf("Category = %q", err.Category)
	}
	if err.Message == "" || err.Detail == "" {
		t.Error("registered template not applied")
	}
	if got := err.Error(); !strings.HasPrefix(got, "Q001: ") {
		t.Errorf("Error() = %q", got)
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("Q999")
	if err.Code != "Q999" || err.Message != "Unknown error" {
		t.Errorf("unexpected error for unknown code: %+v", err)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := New("Q002").Wrap(cause)
	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable through errors.Is")
	}
}

func TestFromErrorPassthrough(t *testing.T) {
	orig := New("Q003")
	if got := FromError(orig, "Q001"); got != orig {
		t.Error("FromError re-wrapped an existing QuillError")
	}
	if FromError(nil, "Q001") != nil {
		t.Error("FromError(nil) != nil")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("Q003").Wrap(stderrors.New("deadline exceeded"))
	out := err.Format()
	for _, want := range []string{"ERROR Q003:", "Caused by: deadline exceeded", "Hint:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	err := Newf(CategoryCLI, "bad flag %q", "--frob")
	if got := err.FormatCompact(); got != `bad flag "--frob"` {
		t.Errorf("FormatCompact() = %q", got)
	}
}

func TestWrapTextBreaksOnWidth(t *testing.T) {
	lines := wrapText("aaa bbb ccc ddd", 7)
	if len(lines) != 2 || lines[0] != "aaa bbb" || lines[1] != "ccc ddd" {
		t.Errorf("wrapText = %q", lines)
	}
}
