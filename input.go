package cube

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
)

func atEnd(z *parse.Input) bool {
	return z.Peek(0) == 0 && z.Err() != nil
}

// skipSpace skips Unicode whitespace, including non-breaking spaces from pasted text.
func skipSpace(z *parse.Input) {
	for !atEnd(z) {
		if c := z.Peek(0); c < utf8.RuneSelf {
			if !unicode.IsSpace(rune(c)) {
				return
			}
			z.Move(1)
		} else if r, n := z.PeekRune(0); unicode.IsSpace(r) {
			z.Move(n)
		} else {
			return
		}
	}
}

// peekChar returns the rune at the cursor and how to quote it in an error message. The rune is 0 at the end of input, an embedded NUL is quoted as such.
func peekChar(z *parse.Input) (rune, string) {
	if atEnd(z) {
		return 0, "end of input"
	}
	r, _ := z.PeekRune(0)
	return r, fmt.Sprintf("%q", r)
}
