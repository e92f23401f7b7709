package dynamic

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/quill-dev/quill/pkg/protocol"
	"github.com/quill-dev/quill/pkg/render"
	"github.com/quill-dev/quill/pkg/template"
)

// IsChild reports whether this process was spawned as a render child.
// Hosts using ModeSelf must check it before their normal startup:
//
//	func main() {
//	    registerTemplates()
//	    if dynamic.IsChild() {
//	        dynamic.Main()
//	    }
//	    // ... normal host entry point
//	}
func IsChild() bool {
	return os.Getenv(EnvChild) != ""
}

// Main runs one render request from stdin against the default registry,
// streams the document to stdout and exits: 0 on success, 1 on any
// failure with a diagnostic line on stderr. It never returns.
func Main() {
	if err := RunChild(os.Stdin, os.Stdout, template.Default); err != nil {
		fmt.Fprintf(os.Stderr, "quill: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

// RunChild is the child render loop: read exactly one framed request
// from r, resolve the template, and stream the rendered document to w.
// Output is written as it is produced rather than buffered whole, so
// child memory stays bounded for large documents.
//
// Failures never mix an error marker into w; the caller (Main) reports
// them through the exit status, keeping "N valid bytes" and "failed
// after N bytes" unambiguous for the parent.
func RunChild(r io.Reader, w io.Writer, reg *template.Registry) error {
	req, err := protocol.ReadRequest(r)
	if err != nil {
		return err
	}

	entry, err := reg.Resolve(req.TemplateID)
	if err != nil {
		return err
	}

	node, err := entry(req.Payload)
	if err != nil {
		return fmt.Errorf("building template %q: %w", req.TemplateID, err)
	}

	bw := bufio.NewWriter(w)
	if err := render.Render(bw, node); err != nil {
		return fmt.Errorf("rendering template %q: %w", req.TemplateID, err)
	}
	return bw.Flush()
}
