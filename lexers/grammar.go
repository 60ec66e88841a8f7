package lexers

import (
	"sync"

	"github.com/amirrezaask/adalex/regex"
)

// Rule is one root regex of a grammar and the kind it produces.
type Rule struct {
	Root     regex.Ref
	Kind     Kind
	Priority int
}

// Grammar is a frozen set of root rules. It is built once and shared by every
// lexer; nothing mutates it after construction.
type Grammar struct {
	arena *regex.Arena
	rules []Rule
}

// Arena returns the frozen arena the rules live in.
func (g *Grammar) Arena() *regex.Arena {
	return g.arena
}

// Rules returns the root rules in registration order. Ties between rules of
// equal priority are broken in this order.
func (g *Grammar) Rules() []Rule {
	return g.rules
}

// KindOf returns the kind of the rule rooted at root.
func (g *Grammar) KindOf(root regex.Ref) (Kind, bool) {
	for _, r := range g.rules {
		if r.Root == root {
			return r.Kind, true
		}
	}
	return None, false
}

type grammarBuilder struct {
	a     *regex.Arena
	rules []Rule
}

func (b *grammarBuilder) register(kind Kind, root regex.Ref) {
	b.rules = append(b.rules, Rule{Root: root, Kind: kind, Priority: b.a.Priority(root)})
}

// noneOf matches exactly one rune not matched by any of except.
func (b *grammarBuilder) noneOf(except ...regex.Ref) regex.Ref {
	return b.a.Intersection(b.a.AnyRune(), b.a.Negation(b.a.Union(except...)))
}

var (
	adaGrammar     *Grammar
	adaGrammarOnce sync.Once
)

// AdaGrammar returns the Ada 2012 lexical grammar (ISO/IEC 8652:2012, 2.1-2.9).
func AdaGrammar() *Grammar {
	adaGrammarOnce.Do(func() {
		adaGrammar = buildAdaGrammar()
	})
	return adaGrammar
}

func buildAdaGrammar() *Grammar {
	a := regex.NewArena()
	b := &grammarBuilder{a: a}

	// whitespace
	ht, lf, vt, ff, cr := a.Unit("\t", 0), a.Unit("\n", 0), a.Unit("\v", 0), a.Unit("\f", 0), a.Unit("\r", 0)
	nel := a.Unit("\u0085", 0)
	whitespace := a.OneOrMore(a.Union(ht, lf, vt, ff, cr, a.Unit(" ", 0), nel, a.Unit("\u00a0", 0)))

	// character classes
	lineSeparator, paragraphSeparator := a.Category("Zl"), a.Category("Zp")
	formatEffector := a.Union(ht, lf, vt, ff, cr, nel, lineSeparator, paragraphSeparator)
	otherControl := a.Intersection(a.Category("Cc"), a.Negation(formatEffector))
	graphic := b.noneOf(otherControl, a.Category("Co"), a.Category("Cs"), formatEffector,
		a.Unit("\ufffe", 0), a.Unit("\uffff", 0))

	// identifiers
	identifierStart := a.Union(a.Category("Lu"), a.Category("Ll"), a.Category("Lt"),
		a.Category("Lm"), a.Category("Lo"), a.Category("Nl"))
	identifierExtend := a.Union(a.Category("Mn"), a.Category("Mc"), a.Category("Nd"), a.Category("Pc"))
	identifier := a.Concat(identifierStart, a.ZeroOrMore(a.Union(identifierStart, identifierExtend)))

	// numeric literals
	digit := a.Range('0', '9')
	numeral := a.Concat(digit, a.ZeroOrMore(a.Concat(a.ZeroOrOne(a.Unit("_", 0)), digit)))
	exponent := a.Concat(a.Unit("e", 0), a.Union(a.Unit("-", 0), a.ZeroOrOne(a.Unit("+", 0))), numeral)
	decimal := a.Concat(numeral,
		a.ZeroOrOne(a.Concat(a.Unit(".", 0), numeral)),
		a.ZeroOrOne(exponent))

	extendedDigit := a.Union(digit, a.Range('a', 'f'))
	basedNumeral := a.Concat(extendedDigit, a.ZeroOrMore(a.Concat(a.ZeroOrOne(a.Unit("_", 0)), extendedDigit)))
	based := a.Concat(numeral,
		a.Unit("#", 0),
		basedNumeral,
		a.ZeroOrOne(a.Concat(a.Unit(".", 0), basedNumeral)),
		a.Unit("#", 0),
		a.ZeroOrOne(exponent))

	// character and string literals
	character := a.Concat(a.Unit("'", 0), graphic, a.Unit("'", 0))
	nonQuoteGraphic := a.Intersection(graphic, a.Negation(a.Unit(`"`, 0)))
	stringElement := a.Union(a.Unit(`""`, 0), nonQuoteGraphic)
	str := a.Concat(a.Unit(`"`, 0), a.ZeroOrMore(stringElement), a.Unit(`"`, 0))

	// comments
	nonEndOfLine := b.noneOf(lf, vt, ff, cr, nel, lineSeparator, paragraphSeparator)
	comment := a.Concat(a.Unit("--", 0), a.ZeroOrMore(nonEndOfLine))

	b.register(Whitespace, whitespace)
	for k := Ampersand; k <= VerticalLine; k++ {
		b.register(k, a.Unit(delimiterSpellings[k], 0))
	}
	for k := Arrow; k <= BoxSign; k++ {
		b.register(k, a.Unit(delimiterSpellings[k], 1))
	}
	b.register(Identifier, identifier)
	b.register(DecimalLiteral, decimal)
	b.register(BasedLiteral, based)
	b.register(CharacterLiteral, character)
	b.register(StringLiteral, str)
	b.register(Comment, comment)
	for k := AbortKeyword; k <= XorKeyword; k++ {
		b.register(k, a.Unit(reservedWords[k], 1))
	}

	a.Freeze()
	return &Grammar{arena: a, rules: b.rules}
}
