// Package dynamic renders registered templates in a child process and
// returns the produced document to the caller.
//
// A Client spawns one child per request, writes a single framed request
// to the child's stdin and drains its stdout concurrently. The two
// directions are pumped by separate goroutines so a request and a
// response that both exceed the pipe buffer cannot deadlock. A child
// that exits non-zero fails the whole request; any bytes it produced
// before dying are discarded.
//
// Two spawn modes are supported. ModeSelf re-executes the current
// binary with QUILL_RENDER_CHILD set, relying on the host to call
// IsChild and Main early in its own startup. ModeSeparate executes a
// dedicated renderer binary at a configured path.
package dynamic
