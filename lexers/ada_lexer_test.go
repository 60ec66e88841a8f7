package lexers

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lex(t *testing.T, src string) []Token {
	t.Helper()
	tokens, err := Collect(NewAdaLexer(), []byte(src), 0, len(src))
	require.NoError(t, err)
	return tokens
}

func kindsOf(tokens []Token) []Kind {
	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Type
	}
	return kinds
}

// withoutWhitespace drops whitespace tokens and returns the rest as
// (kind, text) pairs.
func withoutWhitespace(src string, tokens []Token) []string {
	var out []string
	for _, tok := range tokens {
		if tok.Type == Whitespace {
			continue
		}
		out = append(out, tok.Type.String()+" "+src[tok.Start:tok.End])
	}
	return out
}

func TestSingleDelimiters(t *testing.T) {
	src := "& ' ( ) * + , - . / : ; < = > |"
	delimiters := []Kind{
		Ampersand, Apostrophe, LeftParenthesis, RightParenthesis, Asterisk, PlusSign,
		Comma, HyphenMinus, FullStop, Solidus, Colon, Semicolon,
		LessThanSign, EqualsSign, GreaterThanSign, VerticalLine,
	}
	var expected []Token
	for i, k := range delimiters {
		expected = append(expected, Token{Start: 2 * i, End: 2*i + 1, Type: k})
		if i < len(delimiters)-1 {
			expected = append(expected, Token{Start: 2*i + 1, End: 2*i + 2, Type: Whitespace})
		}
	}

	assert.Equal(t, expected, lex(t, src))
}

func TestCompoundDelimiters(t *testing.T) {
	src := "=> .. ** := /= >= <= << >> <>"
	assert.Equal(t, []string{
		"ARROW =>", "DOUBLE_DOT ..", "DOUBLE_ASTERISK **", "ASSIGNMENT :=", "NOT_EQUAL_SIGN /=",
		"GREATER_EQUAL_SIGN >=", "LESS_EQUAL_SIGN <=", "LEFT_LABEL_BRACKET <<",
		"RIGHT_LABEL_BRACKET >>", "BOX_SIGN <>",
	}, withoutWhitespace(src, lex(t, src)))
}

func TestReservedWordsAndIdentifiers(t *testing.T) {
	tests := []struct {
		src  string
		kind Kind
	}{
		{"end", EndKeyword},
		{"End", EndKeyword},
		{"END", EndKeyword},
		{"ending", Identifier},
		{"ends", Identifier},
		{"en", Identifier},
		{"procedure", ProcedureKeyword},
		{"proc", Identifier},
		{"Procedure_1", Identifier},
		{"synchronized", SynchronizedKeyword},
		{"xor", XorKeyword},
		{"X", Identifier},
		{"Σύνολο", Identifier},
		{"a1_b2", Identifier},
	}
	for _, test := range tests {
		tokens := lex(t, test.src)
		require.Len(t, tokens, 1, test.src)
		assert.Equal(t, Token{Start: 0, End: len(test.src), Type: test.kind}, tokens[0], test.src)
	}
}

func TestEveryReservedWord(t *testing.T) {
	for k := AbortKeyword; k <= XorKeyword; k++ {
		word, ok := k.Spelling()
		require.True(t, ok, k.String())
		for _, spelling := range []string{word, strings.ToUpper(word), strings.ToUpper(word[:1]) + word[1:]} {
			assert.Equal(t, []Token{{Start: 0, End: len(word), Type: k}}, lex(t, spelling), spelling)
		}
		assert.Equal(t, []Kind{Identifier}, kindsOf(lex(t, word+"x")), word+"x")
	}
}

func TestKeywordFollowedByDelimiter(t *testing.T) {
	src := "if X=1then null;end if;"
	assert.Equal(t, []string{
		"IF_KEYWORD if", "IDENTIFIER X", "EQUALS_SIGN =", "DECIMAL_LITERAL 1", "THEN_KEYWORD then",
		"NULL_KEYWORD null", "SEMICOLON ;", "END_KEYWORD end", "IF_KEYWORD if", "SEMICOLON ;",
	}, withoutWhitespace(src, lex(t, src)))
}

func TestTickAfterIdentifier(t *testing.T) {
	src := "Foo'Bar"
	assert.Equal(t, []Token{
		{Start: 0, End: 3, Type: Identifier},
		{Start: 3, End: 4, Type: Apostrophe},
		{Start: 4, End: 7, Type: Identifier},
	}, lex(t, src))

	// Without the override 'a' would open a character literal.
	src = "X'a'"
	assert.Equal(t, []Kind{Identifier, Apostrophe, Identifier, Apostrophe}, kindsOf(lex(t, src)))

	src = "Character'('a')"
	assert.Equal(t, []string{
		"IDENTIFIER Character", "APOSTROPHE '", "LEFT_PARENTHESIS (", "CHARACTER_LITERAL 'a'", "RIGHT_PARENTHESIS )",
	}, withoutWhitespace(src, lex(t, src)))
}

func TestTickWithoutIdentifier(t *testing.T) {
	src := "('a', ''', 'Access)"
	assert.Equal(t, []string{
		"LEFT_PARENTHESIS (", "CHARACTER_LITERAL 'a'", "COMMA ,", "CHARACTER_LITERAL '''", "COMMA ,",
		"APOSTROPHE '", "ACCESS_KEYWORD Access", "RIGHT_PARENTHESIS )",
	}, withoutWhitespace(src, lex(t, src)))
}

func TestNumericLiterals(t *testing.T) {
	tests := []struct {
		src  string
		kind Kind
	}{
		{"0", DecimalLiteral},
		{"1_000", DecimalLiteral},
		{"3.14159_26", DecimalLiteral},
		{"1E6", DecimalLiteral},
		{"1.0e-3", DecimalLiteral},
		{"2e+10", DecimalLiteral},
		{"2#1010_1010#", BasedLiteral},
		{"16#FF_FF#", BasedLiteral},
		{"16#f.8#E+2", BasedLiteral},
		{"8#777#e1", BasedLiteral},
	}
	for _, test := range tests {
		assert.Equal(t, []Token{{Start: 0, End: len(test.src), Type: test.kind}}, lex(t, test.src), test.src)
	}
}

func TestNumericBoundaries(t *testing.T) {
	src := "1..10"
	assert.Equal(t, []Token{
		{Start: 0, End: 1, Type: DecimalLiteral},
		{Start: 1, End: 3, Type: DoubleDot},
		{Start: 3, End: 5, Type: DecimalLiteral},
	}, lex(t, src))

	// Inside the buffer the scan rolls back to the last accepting point,
	// across several runes.
	src = "1e "
	assert.Equal(t, []Token{
		{Start: 0, End: 1, Type: DecimalLiteral},
		{Start: 1, End: 2, Type: Identifier},
		{Start: 2, End: 3, Type: Whitespace},
	}, lex(t, src))

	src = "16#FF "
	assert.Equal(t, []Token{
		{Start: 0, End: 2, Type: DecimalLiteral},
		{Start: 2, End: 3, Type: Invalid},
		{Start: 3, End: 5, Type: Identifier},
		{Start: 5, End: 6, Type: Whitespace},
	}, lex(t, src))

	// "1" and "1.5" both accept; the rollback restarts at the second one.
	src = "1.5e+ "
	assert.Equal(t, []Token{
		{Start: 0, End: 3, Type: DecimalLiteral},
		{Start: 3, End: 4, Type: Identifier},
		{Start: 4, End: 5, Type: PlusSign},
		{Start: 5, End: 6, Type: Whitespace},
	}, lex(t, src))
}

func TestRangeEndResolvesAgainstSurvivors(t *testing.T) {
	// At the range end the unfinished survivors are the only candidates, so
	// a token that accepted earlier does not win by rolling back.
	src := "1e"
	assert.Equal(t, []Token{
		{Start: 0, End: 1, Type: Invalid},
		{Start: 1, End: 2, Type: Identifier},
	}, lex(t, src))

	src = "1."
	assert.Equal(t, []Token{
		{Start: 0, End: 1, Type: Invalid},
		{Start: 1, End: 2, Type: FullStop},
	}, lex(t, src))

	src = "16#FF"
	assert.Equal(t, []string{"INVALID 1", "INVALID 6", "INVALID #", "IDENTIFIER FF"}, withoutWhitespace(src, lex(t, src)))

	// the same text followed by a delimiter inside the range
	tokens, err := Collect(NewAdaLexer(), []byte("1e;"), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []Kind{Invalid, Identifier}, kindsOf(tokens))

	tokens, err = Collect(NewAdaLexer(), []byte("1e;"), 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []Kind{DecimalLiteral, Identifier, Semicolon}, kindsOf(tokens))
}

func TestStringLiterals(t *testing.T) {
	src := `"He said ""hi"""`
	assert.Equal(t, []Token{{Start: 0, End: len(src), Type: StringLiteral}}, lex(t, src))

	src = `""`
	assert.Equal(t, []Token{{Start: 0, End: 2, Type: StringLiteral}}, lex(t, src))

	src = `"ab" & "cd"`
	assert.Equal(t, []string{`STRING_LITERAL "ab"`, "AMPERSAND &", `STRING_LITERAL "cd"`}, withoutWhitespace(src, lex(t, src)))

	src = `"λ → ∀"`
	assert.Equal(t, []Token{{Start: 0, End: len(src), Type: StringLiteral}}, lex(t, src))
}

func TestUnterminatedString(t *testing.T) {
	src := `"abc`
	assert.Equal(t, []Token{
		{Start: 0, End: 1, Type: Invalid},
		{Start: 1, End: 4, Type: Identifier},
	}, lex(t, src))

	src = "\"ab\ncd\""
	assert.Equal(t, []string{"INVALID \"", "IDENTIFIER ab", "IDENTIFIER cd", "INVALID \""}, withoutWhitespace(src, lex(t, src)))
}

func TestComments(t *testing.T) {
	src := "x := 1; -- the answer\ny"
	tokens := lex(t, src)
	assert.Equal(t, []string{
		"IDENTIFIER x", "ASSIGNMENT :=", "DECIMAL_LITERAL 1", "SEMICOLON ;", "COMMENT -- the answer", "IDENTIFIER y",
	}, withoutWhitespace(src, tokens))

	src = "--"
	assert.Equal(t, []Token{{Start: 0, End: 2, Type: Comment}}, lex(t, src))

	src = "- -"
	assert.Equal(t, []Kind{HyphenMinus, Whitespace, HyphenMinus}, kindsOf(lex(t, src)))
}

func TestWhitespace(t *testing.T) {
	src := " \t\r\n\v\f \u0085x"
	assert.Equal(t, []Token{
		{Start: 0, End: len(src) - 1, Type: Whitespace},
		{Start: len(src) - 1, End: len(src), Type: Identifier},
	}, lex(t, src))
}

func TestInvalidCharacters(t *testing.T) {
	for _, garbage := range []string{"$", "@", "[", "?", "`", "\x00", "\xff"} {
		src := "a " + garbage + " b"
		assert.Equal(t, []Token{
			{Start: 0, End: 1, Type: Identifier},
			{Start: 1, End: 2, Type: Whitespace},
			{Start: 2, End: 3, Type: Invalid},
			{Start: 3, End: 4, Type: Whitespace},
			{Start: 4, End: 5, Type: Identifier},
		}, lex(t, src), "%q", garbage)
	}

	// A multi-byte invalid character is one token covering the whole rune.
	src := "x€y"
	assert.Equal(t, []Token{
		{Start: 0, End: 1, Type: Identifier},
		{Start: 1, End: 4, Type: Invalid},
		{Start: 4, End: 5, Type: Identifier},
	}, lex(t, src))
}

func TestStartBounds(t *testing.T) {
	buf := []byte("begin null; end;")
	for _, r := range [][2]int{{-1, 3}, {0, len(buf) + 1}, {5, 4}} {
		err := NewAdaLexer().Start(buf, r[0], r[1], 0)
		assert.ErrorIs(t, err, ErrOutOfBounds, "%v", r)
	}
}

func TestFirstTokenIsCurrentAfterStart(t *testing.T) {
	buf := []byte("  with Ada;")
	l := NewAdaLexer()
	require.NoError(t, l.Start(buf, 2, len(buf), 0))

	assert.False(t, l.Done())
	assert.Equal(t, WithKeyword, l.Kind())
	assert.Equal(t, 2, l.TokenStart())
	assert.Equal(t, 6, l.TokenEnd())
	assert.Equal(t, len(buf), l.BufferEnd())
}

func TestEndOfStream(t *testing.T) {
	l := NewAdaLexer()
	require.NoError(t, l.Start([]byte("abc"), 1, 1, 0))
	assert.True(t, l.Done())
	assert.Equal(t, None, l.Kind())

	require.NoError(t, l.Start([]byte("a"), 0, 1, 0))
	assert.Equal(t, Identifier, l.Kind())
	l.Advance()
	assert.True(t, l.Done())
	l.Advance()
	assert.True(t, l.Done())
}

func TestModeRoundTrips(t *testing.T) {
	l := NewAdaLexer()
	require.NoError(t, l.Start([]byte("x"), 0, 1, 42))
	assert.Equal(t, 42, l.Mode())
}

func TestRangeEndsInsideToken(t *testing.T) {
	buf := []byte("begin")
	tokens, err := Collect(NewAdaLexer(), buf, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []Token{{Start: 0, End: 3, Type: Identifier}}, tokens)
}

const sample = `with Ada.Text_IO; use Ada.Text_IO;

procedure Hello is
   type Color is (Red, Green, Blue);
   Count : constant Integer := 16#FF#;
   Ratio : Float := 1.5E-3;
   C     : Character := 'x';
begin
   -- greet everybody
   for I in 1 .. Count loop
      Put_Line ("Hello, ""world"" #" & Integer'Image (I));
   end loop;
   <<Done>> null;
   pragma Assert (Color'First /= Blue and then C >= ' ');
end Hello;
`

func TestTokensPartitionRange(t *testing.T) {
	buf := []byte(sample)
	ranges := [][2]int{{0, len(buf)}, {0, 0}, {5, 40}, {17, 18}, {100, len(buf) - 3}}
	for _, r := range ranges {
		tokens, err := Collect(NewAdaLexer(), buf, r[0], r[1])
		require.NoError(t, err)

		pos := r[0]
		for _, tok := range tokens {
			assert.Equal(t, pos, tok.Start, "gap or overlap before %v", tok)
			assert.Greater(t, tok.End, tok.Start, "empty token %v", tok)
			pos = tok.End
		}
		assert.Equal(t, r[1], pos, "range %v not covered", r)
	}
}

func TestSampleHasNoInvalidTokens(t *testing.T) {
	for _, tok := range lex(t, sample) {
		assert.NotEqual(t, Invalid, tok.Type, "%v %q", tok, sample[tok.Start:tok.End])
	}
}

func TestSampleAttributes(t *testing.T) {
	src := "Integer'Image (I) Color'First"
	assert.Equal(t, []string{
		"IDENTIFIER Integer", "APOSTROPHE '", "IDENTIFIER Image", "LEFT_PARENTHESIS (", "IDENTIFIER I",
		"RIGHT_PARENTHESIS )", "IDENTIFIER Color", "APOSTROPHE '", "IDENTIFIER First",
	}, withoutWhitespace(src, lex(t, src)))
}

func TestTokensIsRestartable(t *testing.T) {
	buf := []byte(sample)
	seq := AdaTokens(buf)

	var first, second []Token
	for tok := range seq {
		first = append(first, tok)
	}
	for tok := range seq {
		second = append(second, tok)
		if len(second) == 3 {
			break
		}
	}
	require.NotEmpty(t, first)
	assert.Equal(t, first[:3], second)
	assert.Equal(t, len(buf), first[len(first)-1].End)
}

func TestFirstToken(t *testing.T) {
	tok, ok := FirstToken(NewAdaLexer(), []byte("package Foo is"))
	require.True(t, ok)
	assert.Equal(t, Token{Start: 0, End: 7, Type: PackageKeyword}, tok)

	_, ok = FirstToken(NewAdaLexer(), nil)
	assert.False(t, ok)

	tok, ok = FirstToken(NewWordLexer(), []byte("!x"))
	require.True(t, ok)
	assert.Equal(t, Token{Start: 0, End: 1, Type: Symbol}, tok)
}

func TestConcurrentLexers(t *testing.T) {
	expected := lex(t, sample)

	var wg sync.WaitGroup
	results := make([][]Token, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var tokens []Token
			for tok := range AdaTokens([]byte(sample)) {
				tokens = append(tokens, tok)
			}
			results[i] = tokens
		}(i)
	}
	wg.Wait()

	for _, tokens := range results {
		assert.Equal(t, expected, tokens)
	}
}

func BenchmarkAdaLexer(b *testing.B) {
	buf := []byte(strings.Repeat(sample, 20))
	l := NewAdaLexer()
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := l.Start(buf, 0, len(buf), 0); err != nil {
			b.Fatal(err)
		}
		for !l.Done() {
			l.Advance()
		}
	}
}
