package lexers

import (
	"unicode"
	"unicode/utf8"

	"github.com/amirrezaask/adalex/regex"
)

// candidate is a live regex of the scan frontier, tagged with the index of
// the root rule it descends from.
type candidate struct {
	node regex.Ref
	rule int
}

// AdaLexer is the Ada 2012 lexer. It matches every rule of AdaGrammar in
// parallel, one rune at a time, and keeps the longest match; between rules
// accepting the same text the one with the highest priority wins, so a
// reserved word beats an identifier of the same spelling.
//
// An AdaLexer is not safe for concurrent use. Separate lexers may run
// concurrently, they only share the frozen grammar.
type AdaLexer struct {
	grammar *Grammar
	scratch *regex.Arena

	buf    []byte
	end    int
	offset int
	mode   int

	tok Token

	// reused between tokens
	frontier, next, accepting []candidate
}

func NewAdaLexer() *AdaLexer {
	g := AdaGrammar()
	return &AdaLexer{
		grammar: g,
		scratch: g.Arena().Scratch(),
	}
}

// Start resets l to lex buf[from:to) and computes the first token. buf is
// not copied and must not change while it is being lexed.
func (l *AdaLexer) Start(buf []byte, from, to, mode int) error {
	if err := checkBounds(buf, from, to); err != nil {
		return err
	}
	l.buf = buf
	l.end = to
	l.offset = from
	l.mode = mode
	l.tok = Token{Start: from, End: from, Type: None}
	l.Advance()
	return nil
}

func (l *AdaLexer) Token() Token    { return l.tok }
func (l *AdaLexer) Kind() Kind      { return l.tok.Type }
func (l *AdaLexer) TokenStart() int { return l.tok.Start }
func (l *AdaLexer) TokenEnd() int   { return l.tok.End }
func (l *AdaLexer) Mode() int       { return l.mode }
func (l *AdaLexer) BufferEnd() int  { return l.end }
func (l *AdaLexer) Done() bool      { return l.tok.Type == None }

// peek decodes the folded rune at pos. Folding happens rune by rune so byte
// offsets stay valid against the original buffer.
func (l *AdaLexer) peek(pos int) (rune, int) {
	r, w := utf8.DecodeRune(l.buf[pos:l.end])
	return unicode.ToLower(r), w
}

// Advance computes the next token. At the end of the range the current
// token becomes None and stays so.
func (l *AdaLexer) Advance() {
	if l.offset == l.end {
		l.tok = Token{Start: l.offset, End: l.offset, Type: None}
		return
	}

	start := l.offset
	c, w := l.peek(start)

	// A tick right after an identifier is always an attribute tick, never
	// the opening of a character literal: X'First, T'('a').
	if c == '\'' && l.tok.Type == Identifier {
		l.offset += w
		l.tok = Token{Start: start, End: l.offset, Type: Apostrophe}
		return
	}

	l.scratch.Reset()
	rules := l.grammar.Rules()
	frontier := l.frontier[:0]
	for i, rule := range rules {
		frontier = append(frontier, candidate{node: rule.Root, rule: i})
	}
	next := l.next[:0]
	accepting := l.accepting[:0]
	// bytes consumed since the last accepting frontier
	rollback := 0

	pos := start
	for {
		c, w = l.peek(pos)
		next = next[:0]
		nullable := false
		for _, cand := range frontier {
			d := l.scratch.Derive(cand.node, c)
			if d == regex.Dead {
				continue
			}
			next = append(next, candidate{node: d, rule: cand.rule})
			if !nullable && l.scratch.Nullable(d) {
				nullable = true
			}
		}
		frontier, next = next, frontier
		if len(frontier) == 0 {
			break
		}
		pos += w
		if nullable {
			accepting = append(accepting[:0], frontier...)
			rollback = 0
		} else {
			rollback += w
		}
		if pos == l.end {
			break
		}
	}
	l.frontier, l.next, l.accepting = frontier, next, accepting

	// At the range end the survivors are the candidates, accepting or not.
	candidates := accepting
	if pos == l.end && len(frontier) > 0 {
		candidates = frontier
		rollback = 0
	}

	best := -1
	for i, cand := range candidates {
		if !l.scratch.Nullable(cand.node) {
			continue
		}
		if best < 0 || rules[cand.rule].Priority > rules[candidates[best].rule].Priority {
			best = i
		}
	}

	if best < 0 {
		_, w = l.peek(start)
		l.offset = start + w
		l.tok = Token{Start: start, End: l.offset, Type: Invalid}
		return
	}

	l.offset = pos - rollback
	l.tok = Token{Start: start, End: l.offset, Type: rules[candidates[best].rule].Kind}
}
