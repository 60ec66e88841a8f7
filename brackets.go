package adalex

import (
	"iter"

	"github.com/amirrezaask/adalex/lexers"
)

var closingBrackets = map[lexers.Kind]lexers.Kind{
	lexers.RightParenthesis:  lexers.LeftParenthesis,
	lexers.RightLabelBracket: lexers.LeftLabelBracket,
}

type BracketPair struct {
	Open  lexers.Token
	Close lexers.Token
}

type Brackets struct {
	// Pairs in the order they close.
	Pairs     []BracketPair
	Unmatched []lexers.Token
}

// PairBrackets matches parentheses and label brackets of a token stream.
// A closing bracket that does not match the innermost open one is reported
// as unmatched and leaves the open one in place.
func PairBrackets(tokens iter.Seq[lexers.Token]) Brackets {
	var b Brackets
	open := NewStack[lexers.Token](16)
	for tok := range tokens {
		switch tok.Type {
		case lexers.LeftParenthesis, lexers.LeftLabelBracket:
			open.Push(tok)
		case lexers.RightParenthesis, lexers.RightLabelBracket:
			top, err := open.Top()
			if err != nil || top.Type != closingBrackets[tok.Type] {
				b.Unmatched = append(b.Unmatched, tok)
				continue
			}
			open.Pop()
			b.Pairs = append(b.Pairs, BracketPair{Open: top, Close: tok})
		}
	}
	b.Unmatched = append(b.Unmatched, open.Drain()...)
	sortme(b.Unmatched, func(t1, t2 lexers.Token) bool {
		return t1.Start < t2.Start
	})
	return b
}
