// Package render serializes rdom node trees into HTML bytes.
//
// The renderer performs a single depth-first, left-to-right traversal
// matching construction order, writing into any io.Writer. It handles:
//
//   - HTML5 compliant element rendering
//   - Text and attribute escaping (XSS prevention)
//   - Void element handling (input, br, img, etc.)
//   - Bare (valueless) attribute handling (disabled, checked, etc.)
//   - Duplicate attributes, emitted in insertion order
//
// # Basic Usage
//
// To render a tree to a string:
//
//	html, err := render.String(node)
//
// To stream to a writer:
//
//	err := render.Render(w, node)
//
// # Security
//
// Text nodes are escaped for markup context and attribute values are
// always escaped for attribute context, regardless of producer. Raw
// nodes are written verbatim; that is an explicit trust boundary and
// should only carry pre-sanitized content (see html.Sanitized).
package render
