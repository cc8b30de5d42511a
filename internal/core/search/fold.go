package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// folded is a lowercased copy of a line plus the way back to the original
// bytes. offs[i] is the byte offset in orig of the rune that produced folded
// byte i; offs is nil when folding kept every offset in place.
type folded struct {
	orig string
	text string
	offs []int
}

func foldText(s string) string {
	if isASCII(s) {
		return strings.ToLower(s)
	}
	return fold(s).text
}

func fold(s string) folded {
	if isASCII(s) {
		return folded{orig: s, text: strings.ToLower(s)}
	}

	var b strings.Builder
	b.Grow(len(s))
	offs := make([]int, 0, len(s)+1)
	var buf [utf8.UTFMax]byte
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && w <= 1 {
			// Keep stray bytes verbatim so offsets stay one to one.
			b.WriteByte(s[i])
			offs = append(offs, i)
			i++
			continue
		}
		n := utf8.EncodeRune(buf[:], unicode.ToLower(r))
		b.Write(buf[:n])
		for j := 0; j < n; j++ {
			offs = append(offs, i)
		}
		i += w
	}
	offs = append(offs, len(s))
	return folded{orig: s, text: b.String(), offs: offs}
}

func (f folded) start(i int) int {
	if f.offs == nil {
		return i
	}
	return f.offs[i]
}

// end maps an exclusive folded end offset back to orig. An end that falls
// inside the expansion of one original rune is pushed to that rune's end.
func (f folded) end(i int) int {
	if f.offs == nil {
		return i
	}
	if i > 0 && i < len(f.text) && f.offs[i] == f.offs[i-1] {
		o := f.offs[i]
		_, w := utf8.DecodeRuneInString(f.orig[o:])
		return o + w
	}
	return f.offs[i]
}

// skipPartial moves i past the rest of a partially consumed expansion.
func (f folded) skipPartial(i int) int {
	if f.offs == nil {
		return i
	}
	for i > 0 && i < len(f.text) && f.offs[i] == f.offs[i-1] {
		i++
	}
	return i
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
