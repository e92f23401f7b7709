// Package html provides the HTML vocabulary over the rdom value model:
// variadic element constructors, attribute helpers and a fluent,
// persistent element builder.
//
// # Element Constructors
//
// Elements are created using variadic factory functions taking
// attributes and children in any order:
//
//	html.Div(html.Class("card"), html.ID("main"),
//	    html.H1("Title"),
//	    html.P("Content"),
//	)
//
// Strings are text-node shorthand and are escaped on render.
//
// # Builder
//
// For attribute-heavy elements the Builder offers a fluent chain.
// Each setter returns a new builder; finalizing with Body (or Node for
// a childless element) seals it:
//
//	html.El("a").Class("nav").Href("/docs").Body("Documentation")
//
// # Untrusted Content
//
// Sanitized passes markup through a bluemonday UGC policy before
// trusting it as raw output. Prefer it over rdom.Raw for anything a
// user typed.
package html
