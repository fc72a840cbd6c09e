package equinox

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// isInCharacterRange checks if the rune is in the XML Character Range
func isInCharacterRange(r rune) bool {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xDF77 ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

var (
	escQuot = []byte("&#34;") // shorter than "&quot;"
	escAmp  = []byte("&amp;")
	escLt   = []byte("&lt;")
	escGt   = []byte("&gt;")
	escTab  = []byte("&#9;")
	escNl   = []byte("&#10;")
	escCr   = []byte("&#13;")
	escFffd = []byte("�") // Unicode replacement character
)

func escapeAttrValue(w io.Writer, s string) error {
	var esc []byte
	last := 0
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRuneInString(s[i:])
		i += width
		switch r {
		case '"':
			esc = escQuot
		case '&':
			esc = escAmp
		case '<':
			esc = escLt
		case '>':
			esc = escGt
		case '\n':
			esc = escNl
		case '\r':
			esc = escCr
		case '\t':
			esc = escTab
		default:
			if !isInCharacterRange(r) || (r == 0xFFFD && width == 1) {
				esc = escFffd
				break
			}
			continue
		}

		if _, err := io.WriteString(w, s[last:i-width]); err != nil {
			return err
		}
		if _, err := w.Write(esc); err != nil {
			return err
		}
		last = i
	}

	_, err := io.WriteString(w, s[last:])
	return err
}

// escapeText writes to w the escaped equivalent of the plain text s.
func escapeText(w io.Writer, s string) error {
	var esc []byte
	last := 0
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRuneInString(s[i:])
		i += width
		switch r {
		case '&':
			esc = escAmp
		case '<':
			esc = escLt
		case '>':
			esc = escGt
		case '\r':
			esc = escCr
		default:
			if !isInCharacterRange(r) || (r == 0xFFFD && width == 1) {
				esc = escFffd
				break
			}
			continue
		}

		if _, err := io.WriteString(w, s[last:i-width]); err != nil {
			return err
		}
		if _, err := w.Write(esc); err != nil {
			return err
		}
		last = i
	}

	_, err := io.WriteString(w, s[last:])
	return err
}

// checkName rejects names the writer cannot emit verbatim without
// producing unreadable output.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf(`empty name: %w`, ErrInvalidName)
	}
	for _, r := range name {
		switch r {
		case '<', '>', '&', '"', '\'', '=', ' ', '\t', '\n', '\r':
			return fmt.Errorf(`name %q: %w`, name, ErrInvalidName)
		}
	}
	return nil
}
