package lexers

import "iter"

// Tokens lazily lexes the whole of buf with l. Every range over the result
// restarts l at offset 0; breaking out of the loop stops lexing.
func Tokens(l Lexer, buf []byte) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		if err := l.Start(buf, 0, len(buf), 0); err != nil {
			// [0, len(buf)) is always in bounds
			panic(err)
		}
		for tok := l.Token(); tok.Type != None; tok = l.Token() {
			if !yield(tok) {
				return
			}
			l.Advance()
		}
	}
}

// AdaTokens lazily lexes buf as Ada source.
func AdaTokens(buf []byte) iter.Seq[Token] {
	return Tokens(NewAdaLexer(), buf)
}

// Collect lexes buf[from:to) with l and returns every token.
func Collect(l Lexer, buf []byte, from, to int) ([]Token, error) {
	if err := l.Start(buf, from, to, 0); err != nil {
		return nil, err
	}
	var tokens []Token
	for tok := l.Token(); tok.Type != None; tok = l.Token() {
		tokens = append(tokens, tok)
		l.Advance()
	}
	return tokens, nil
}

// FirstToken returns the first token l finds in buf, or false for an empty
// buffer.
func FirstToken(l Lexer, buf []byte) (Token, bool) {
	if err := l.Start(buf, 0, len(buf), 0); err != nil {
		return Token{}, false
	}
	tok := l.Token()
	return tok, tok.Type != None
}
