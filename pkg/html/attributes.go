package html

import (
	"strconv"
	"strings"

	"github.com/quill-dev/quill/pkg/rdom"
)

// attr creates an Attr with the given key and value.
func attr(key, value string) rdom.Attr {
	return rdom.Attr{Key: key, Value: value}
}

// flag creates a bare (valueless) attribute.
func flag(key string) rdom.Attr {
	return rdom.Attr{Key: key}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) rdom.Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) rdom.Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with the StyleEl element).
func StyleAttr(style string) rdom.Attr { return attr("style", style) }

// TitleAttr sets the title attribute (named to avoid conflict with the Title element).
func TitleAttr(title string) rdom.Attr { return attr("title", title) }

// Name sets the name attribute.
func Name(name string) rdom.Attr { return attr("name", name) }

// Links and resources

// Href sets the href attribute.
func Href(href string) rdom.Attr { return attr("href", href) }

// Src sets the src attribute.
func Src(src string) rdom.Attr { return attr("src", src) }

// Rel sets the rel attribute.
func Rel(rel string) rdom.Attr { return attr("rel", rel) }

// Alt sets the alt attribute.
func Alt(alt string) rdom.Attr { return attr("alt", alt) }

// Integrity sets the integrity attribute for subresource integrity.
func Integrity(hash string) rdom.Attr { return attr("integrity", hash) }

// Crossorigin sets the crossorigin attribute.
func Crossorigin(mode string) rdom.Attr { return attr("crossorigin", mode) }

// Document metadata

// Charset sets the charset attribute.
func Charset(cs string) rdom.Attr { return attr("charset", cs) }

// Content sets the content attribute.
func Content(content string) rdom.Attr { return attr("content", content) }

// Lang sets the lang attribute.
func Lang(lang string) rdom.Attr { return attr("lang", lang) }

// Forms

// TypeAttr sets the type attribute.
func TypeAttr(t string) rdom.Attr { return attr("type", t) }

// Value sets the value attribute.
func Value(value string) rdom.Attr { return attr("value", value) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) rdom.Attr { return attr("placeholder", text) }

// Method sets the method attribute.
func Method(method string) rdom.Attr { return attr("method", method) }

// Action sets the action attribute.
func Action(action string) rdom.Attr { return attr("action", action) }

// For sets the for attribute.
func For(id string) rdom.Attr { return attr("for", id) }

// Rows sets the rows attribute.
func Rows(n int) rdom.Attr { return attr("rows", strconv.Itoa(n)) }

// Cols sets the cols attribute.
func Cols(n int) rdom.Attr { return attr("cols", strconv.Itoa(n)) }

// Boolean attributes, rendered bare.

// Checked sets the checked attribute.
func Checked() rdom.Attr { return flag("checked") }

// Disabled sets the disabled attribute.
func Disabled() rdom.Attr { return flag("disabled") }

// Required sets the required attribute.
func Required() rdom.Attr { return flag("required") }

// Hidden sets the hidden attribute.
func Hidden() rdom.Attr { return flag("hidden") }

// Selected sets the selected attribute.
func Selected() rdom.Attr { return flag("selected") }

// Misc

// Data creates a data-* attribute.
// Example: Data("id", "123") -> data-id="123"
func Data(key, value string) rdom.Attr { return attr("data-"+key, value) }

// Aria creates an aria-* attribute.
func Aria(key, value string) rdom.Attr { return attr("aria-"+key, value) }

// Role sets the role attribute.
func Role(role string) rdom.Attr { return attr("role", role) }

// Scope sets the scope attribute.
func Scope(scope string) rdom.Attr { return attr("scope", scope) }
