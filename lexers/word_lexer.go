package lexers

import (
	"unicode"
	"unicode/utf8"
)

// WordLexer splits plain text into words, whitespace runs and single
// symbols. It is the fallback for buffers no grammar knows about.
type WordLexer struct {
	buf    []byte
	end    int
	offset int
	mode   int
	tok    Token
}

func NewWordLexer() *WordLexer {
	return &WordLexer{}
}

func isLetterOrDigit(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

func (w *WordLexer) Start(buf []byte, from, to, mode int) error {
	if err := checkBounds(buf, from, to); err != nil {
		return err
	}
	w.buf = buf
	w.end = to
	w.offset = from
	w.mode = mode
	w.tok = Token{Start: from, End: from, Type: None}
	w.Advance()
	return nil
}

func (w *WordLexer) Token() Token { return w.tok }
func (w *WordLexer) Mode() int    { return w.mode }

// run consumes runes from w.offset while pred holds.
func (w *WordLexer) run(pred func(rune) bool) {
	for w.offset < w.end {
		r, size := utf8.DecodeRune(w.buf[w.offset:w.end])
		if !pred(r) {
			return
		}
		w.offset += size
	}
}

func (w *WordLexer) Advance() {
	start := w.offset
	if start == w.end {
		w.tok = Token{Start: start, End: start, Type: None}
		return
	}
	r, size := utf8.DecodeRune(w.buf[start:w.end])
	switch {
	case isLetterOrDigit(r):
		w.run(isLetterOrDigit)
		w.tok = Token{Start: start, End: w.offset, Type: Identifier}
	case isWhitespace(r):
		w.run(isWhitespace)
		w.tok = Token{Start: start, End: w.offset, Type: Whitespace}
	default:
		w.offset += size
		w.tok = Token{Start: start, End: w.offset, Type: Symbol}
	}
}
