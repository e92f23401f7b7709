package render

import "io"

// writeEscapedText writes s with markup-significant characters
// converted to their entity equivalents. Unescaped spans are written
// in one piece so the sink sees as few writes as possible without any
// whole-document buffering.
func writeEscapedText(w io.Writer, s string) error {
	return writeEscaped(w, s, textEntity)
}

// writeEscapedAttr writes s escaped for attribute-value context.
// In addition to the standard entities it escapes whitespace
// characters that could break attribute parsing.
func writeEscapedAttr(w io.Writer, s string) error {
	return writeEscaped(w, s, attrEntity)
}

func writeEscaped(w io.Writer, s string, entity func(byte) string) error {
	last := 0
	for i := 0; i < len(s); i++ {
		e := entity(s[i])
		if e == "" {
			continue
		}
		if last < i {
			if _, err := io.WriteString(w, s[last:i]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, e); err != nil {
			return err
		}
		last = i + 1
	}
	if last < len(s) {
		if _, err := io.WriteString(w, s[last:]); err != nil {
			return err
		}
	}
	return nil
}

func textEntity(c byte) string {
	switch c {
	case '&':
		return "&amp;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '"':
		return "&quot;"
	case '\'':
		return "&#39;"
	default:
		return ""
	}
}

func attrEntity(c byte) string {
	switch c {
	case '&':
		return "&amp;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '"':
		return "&quot;"
	case '\'':
		return "&#39;"
	case '\n':
		return "&#10;"
	case '\r':
		return "&#13;"
	case '\t':
		return "&#9;"
	default:
		return ""
	}
}
