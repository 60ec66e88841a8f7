package adalex

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/amirrezaask/adalex/lexers"
)

// ContextClauses is the context clause list at the head of an Ada
// compilation unit: its with clauses, use clauses and pragmas.
type ContextClauses struct {
	Clauses []*ContextClause `parser:"@@*"`
}

type ContextClause struct {
	With   *WithClause   `parser:"  @@"`
	Use    *UseClause    `parser:"| @@"`
	Pragma *PragmaClause `parser:"| @@"`
}

type WithClause struct {
	Pos lexer.Position

	Limited bool   `parser:"@LIMITED_KEYWORD?"`
	Private bool   `parser:"@PRIVATE_KEYWORD?"`
	Units   []Name `parser:"WITH_KEYWORD @@ ( COMMA @@ )* SEMICOLON"`
}

type UseClause struct {
	Pos lexer.Position

	All   bool   `parser:"USE_KEYWORD @ALL_KEYWORD?"`
	Type  bool   `parser:"@TYPE_KEYWORD?"`
	Names []Name `parser:"@@ ( COMMA @@ )* SEMICOLON"`
}

type PragmaClause struct {
	Pos lexer.Position

	Name string `parser:"PRAGMA_KEYWORD @IDENTIFIER ( !SEMICOLON )* SEMICOLON"`
}

// Name is a dotted library unit name such as Ada.Text_IO.
type Name struct {
	Parts []string `parser:"@IDENTIFIER ( FULL_STOP @IDENTIFIER )*"`
}

func (n Name) String() string {
	return strings.Join(n.Parts, ".")
}

var contextParser = participle.MustBuild[ContextClauses](
	participle.Lexer(lexers.AdaDefinition()),
	participle.Elide("WHITESPACE", "COMMENT"),
)

// ParseContextClauses parses the context clauses at the start of src and
// ignores the rest of the unit.
func ParseContextClauses(filename string, src []byte) (*ContextClauses, error) {
	return contextParser.ParseBytes(filename, src, participle.AllowTrailing(true))
}

// Dependencies returns the units named by with clauses, each once, in order
// of first appearance.
func (c *ContextClauses) Dependencies() []string {
	seen := map[string]bool{}
	var deps []string
	for _, clause := range c.Clauses {
		if clause.With == nil {
			continue
		}
		for _, unit := range clause.With.Units {
			name := unit.String()
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}
			seen[key] = true
			deps = append(deps, name)
		}
	}
	return deps
}
