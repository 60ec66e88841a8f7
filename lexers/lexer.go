package lexers

import (
	"errors"
	"fmt"
)

// Token is the basic data type of lexer
// buffer[Start:End)
type Token struct {
	Start int
	End   int
	Type  Kind
}

func (t Token) Len() int {
	return t.End - t.Start
}

// Text returns the source text of t in buf.
func (t Token) Text(buf []byte) []byte {
	return buf[t.Start:t.End]
}

func (t Token) String() string {
	return fmt.Sprintf("%s[%d:%d)", t.Type, t.Start, t.End)
}

// ErrOutOfBounds is returned by Start for a scan range outside the buffer.
// It is a programming error, never a lexical one.
var ErrOutOfBounds = errors.New("lexing range out of bounds")

// Lexer produces a stream of tokens over buf[from:to), one at a time.
//
//	err := l.Start(buf, 0, len(buf), 0)
//	for tok := l.Token(); tok.Type != None; tok = l.Token() {
//		// use tok
//		l.Advance()
//	}
//
// Start leaves the first token current, there is no need to call Advance
// before reading it. After the last token, Token().Type is None.
type Lexer interface {
	Start(buf []byte, from, to, mode int) error
	Advance()
	Token() Token
	// Mode is an opaque value callers may store and pass back to Start to
	// resume lexing at a token boundary.
	Mode() int
}

func checkBounds(buf []byte, from, to int) error {
	switch {
	case from < 0:
		return fmt.Errorf("%w: negative start offset %d", ErrOutOfBounds, from)
	case to > len(buf):
		return fmt.Errorf("%w: end offset %d beyond buffer length %d", ErrOutOfBounds, to, len(buf))
	case from > to:
		return fmt.Errorf("%w: start offset %d after end offset %d", ErrOutOfBounds, from, to)
	}
	return nil
}
