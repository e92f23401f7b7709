// Package errors provides structured, actionable error messages for
// the quill CLI.
//
// Each registered error has a stable code (e.g. "Q001") mapping to a
// short message, a detailed explanation and a fix suggestion. Errors
// render either as a multi-line terminal block (Format) or a single
// line for logs (FormatCompact).
//
//	err := errors.New("Q002").Wrap(spawnErr)
//	fmt.Fprint(os.Stderr, err.Format())
package errors
