package vacefron

import (
	"strings"
	"unicode/utf8"
)

// replacements is the escaping table the API expects for free-text
// parameters. It is not standard percent-encoding: "^" maps to the UTF-8
// bytes of U+02C6 and letters, digits and most other runes are sent as-is.
var replacements = map[rune]string{
	' ':  "%20",
	'!':  "%21",
	'"':  "%22",
	'#':  "%23",
	'$':  "%24",
	'%':  "%25",
	'&':  "%26",
	'\'': "%27",
	'(':  "%28",
	')':  "%29",
	'*':  "%2A",
	'+':  "%2B",
	',':  "%2C",
	'-':  "%2D",
	'.':  "%2E",
	'/':  "%2F",
	'=':  "%3D",
	'@':  "%40",
	':':  "%3A",
	';':  "%3B",
	'^':  "%CB%86",
	'_':  "%5F",
	'©':  "%C2%A9",
}

// Escape replaces every rune found in the escaping table with its
// replacement. Runes outside the table pass through unchanged.
func Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if rep, ok := replacements[r]; ok {
			b.WriteString(rep)
		} else {
			// unmapped runes and invalid UTF-8 are copied as-is
			b.WriteString(text[i : i+size])
		}
		i += size
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

// requote percent-encodes the bytes of rawURL that may not appear in a
// request line (space, control bytes, non-ASCII) and keeps existing %XX
// escapes and URL delimiters as they are. A lone '%' becomes %25.
func requote(rawURL string) string {
	var b strings.Builder
	b.Grow(len(rawURL))
	for i := 0; i < len(rawURL); i++ {
		c := rawURL[i]
		switch {
		case c == '%' && i+2 < len(rawURL) && isHex(rawURL[i+1]) && isHex(rawURL[i+2]):
			b.WriteString(rawURL[i : i+3])
			i += 2
		case c != '%' && allowedInURL(c):
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0f])
		}
	}
	return b.String()
}

// allowedInURL reports whether c is an RFC 3986 unreserved or reserved
// character.
func allowedInURL(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-._~:/?#[]@!$&'()*+,;=", c) >= 0
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
