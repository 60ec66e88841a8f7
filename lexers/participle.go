package lexers

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/amirrezaask/adalex/byteutils"
)

// Definition exposes a Lexer to participle parsers. Token type names are the
// Kind names ("IDENTIFIER", "WITH_KEYWORD", "SEMICOLON", ...), so a grammar
// refers to them directly:
//
//	Units []string `parser:"WITH_KEYWORD @IDENTIFIER ( COMMA @IDENTIFIER )* SEMICOLON"`
type Definition struct {
	newLexer func() Lexer
	symbols  map[string]lexer.TokenType
}

var _ lexer.Definition = (*Definition)(nil)

// NewDefinition wraps lexers returned by newLexer; each Lex call gets a
// fresh one.
func NewDefinition(newLexer func() Lexer) *Definition {
	symbols := map[string]lexer.TokenType{"EOF": lexer.EOF}
	for _, k := range AllKinds() {
		symbols[k.String()] = lexer.TokenType(k)
	}
	return &Definition{newLexer: newLexer, symbols: symbols}
}

// AdaDefinition is the participle definition of the Ada lexer.
func AdaDefinition() *Definition {
	return NewDefinition(func() Lexer { return NewAdaLexer() })
}

func (d *Definition) Symbols() map[string]lexer.TokenType {
	return d.symbols
}

func (d *Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexBytes(filename, buf)
}

func (d *Definition) LexString(filename string, input string) (lexer.Lexer, error) {
	return d.LexBytes(filename, []byte(input))
}

func (d *Definition) LexBytes(filename string, input []byte) (lexer.Lexer, error) {
	l := d.newLexer()
	if err := l.Start(input, 0, len(input), 0); err != nil {
		return nil, err
	}
	return &participleLexer{
		filename: filename,
		buf:      input,
		lines:    byteutils.NewLineIndex(input),
		l:        l,
	}, nil
}

type participleLexer struct {
	filename string
	buf      []byte
	lines    *byteutils.LineIndex
	l        Lexer
}

func (p *participleLexer) position(offset int) lexer.Position {
	line, column := p.lines.Position(offset)
	return lexer.Position{Filename: p.filename, Offset: offset, Line: line, Column: column}
}

func (p *participleLexer) Next() (lexer.Token, error) {
	tok := p.l.Token()
	if tok.Type == None {
		return lexer.EOFToken(p.position(len(p.buf))), nil
	}
	p.l.Advance()
	return lexer.Token{
		Type:  lexer.TokenType(tok.Type),
		Value: string(tok.Text(p.buf)),
		Pos:   p.position(tok.Start),
	}, nil
}
