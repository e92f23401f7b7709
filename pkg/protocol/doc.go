// Package protocol implements the wire format of the dynamic rendering
// exchange: exactly one framed request per child-process lifetime.
//
// # Wire Format
//
// A request is a self-describing, length-prefixed frame:
//
//	┌──────────────────┬──────────────┬──────────────┬─────────────┐
//	│ Frame Length     │ ID Length    │ Template ID  │ Payload     │
//	│ (4B big-endian)  │ (2B BE)      │ (UTF-8)      │ (opaque)    │
//	└──────────────────┴──────────────┴──────────────┴─────────────┘
//
// The outer length lets the child read exactly one request and then
// stop; it never waits for more input than the frame declares.
//
// # Response
//
// There is no response frame. A successful child streams raw rendered
// bytes on its output channel and exits 0; any failure is reported
// solely through a non-zero exit status so that "N valid bytes" and
// "failed after N bytes" stay unambiguous. Error-channel text is
// advisory diagnostics, not part of the contract.
package protocol
