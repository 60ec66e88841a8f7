package lexers

import (
	"fmt"
	"sort"
)

// Kind is the lexical category of a token. Values are part of the contract
// with highlighters and parsers: never reorder or renumber them, only append.
type Kind int

const (
	None       Kind = iota // end of stream
	Invalid                // one rune no rule accepts
	Whitespace             // run of whitespace

	// single delimiters
	Ampersand        // &
	Apostrophe       // '
	LeftParenthesis  // (
	RightParenthesis // )
	Asterisk         // *
	PlusSign         // +
	Comma            // ,
	HyphenMinus      // -
	FullStop         // .
	Solidus          // /
	Colon            // :
	Semicolon        // ;
	LessThanSign     // <
	EqualsSign       // =
	GreaterThanSign  // >
	VerticalLine     // |

	// compound delimiters
	Arrow             // =>
	DoubleDot         // ..
	DoubleAsterisk    // **
	Assignment        // :=
	NotEqualSign      // /=
	GreaterEqualSign  // >=
	LessEqualSign     // <=
	LeftLabelBracket  // <<
	RightLabelBracket // >>
	BoxSign           // <>

	Identifier
	DecimalLiteral
	BasedLiteral
	CharacterLiteral
	StringLiteral
	Comment

	// reserved words
	AbortKeyword
	AbsKeyword
	AbstractKeyword
	AcceptKeyword
	AccessKeyword
	AliasedKeyword
	AllKeyword
	AndKeyword
	ArrayKeyword
	AtKeyword
	BeginKeyword
	BodyKeyword
	CaseKeyword
	ConstantKeyword
	DeclareKeyword
	DelayKeyword
	DeltaKeyword
	DigitsKeyword
	DoKeyword
	ElseKeyword
	ElsifKeyword
	EndKeyword
	EntryKeyword
	ExceptionKeyword
	ExitKeyword
	ForKeyword
	FunctionKeyword
	GenericKeyword
	GotoKeyword
	IfKeyword
	InKeyword
	InterfaceKeyword
	IsKeyword
	LimitedKeyword
	LoopKeyword
	ModKeyword
	NewKeyword
	NotKeyword
	NullKeyword
	OfKeyword
	OrKeyword
	OthersKeyword
	OutKeyword
	OverridingKeyword
	PackageKeyword
	PragmaKeyword
	PrivateKeyword
	ProcedureKeyword
	ProtectedKeyword
	RaiseKeyword
	RangeKeyword
	RecordKeyword
	RemKeyword
	RenamesKeyword
	RequeueKeyword
	ReturnKeyword
	ReverseKeyword
	SelectKeyword
	SeparateKeyword
	SomeKeyword
	SubtypeKeyword
	SynchronizedKeyword
	TaggedKeyword
	TaskKeyword
	TerminateKeyword
	ThenKeyword
	TypeKeyword
	UntilKeyword
	UseKeyword
	WhenKeyword
	WhileKeyword
	WithKeyword
	XorKeyword

	// Symbol is any punctuation rune of a plain-text buffer.
	Symbol
)

var kindNames = [...]string{
	None:                "NONE",
	Invalid:             "INVALID",
	Whitespace:          "WHITESPACE",
	Ampersand:           "AMPERSAND",
	Apostrophe:          "APOSTROPHE",
	LeftParenthesis:     "LEFT_PARENTHESIS",
	RightParenthesis:    "RIGHT_PARENTHESIS",
	Asterisk:            "ASTERISK",
	PlusSign:            "PLUS_SIGN",
	Comma:               "COMMA",
	HyphenMinus:         "HYPHEN_MINUS",
	FullStop:            "FULL_STOP",
	Solidus:             "SOLIDUS",
	Colon:               "COLON",
	Semicolon:           "SEMICOLON",
	LessThanSign:        "LESS_THAN_SIGN",
	EqualsSign:          "EQUALS_SIGN",
	GreaterThanSign:     "GREATER_THAN_SIGN",
	VerticalLine:        "VERTICAL_LINE",
	Arrow:               "ARROW",
	DoubleDot:           "DOUBLE_DOT",
	DoubleAsterisk:      "DOUBLE_ASTERISK",
	Assignment:          "ASSIGNMENT",
	NotEqualSign:        "NOT_EQUAL_SIGN",
	GreaterEqualSign:    "GREATER_EQUAL_SIGN",
	LessEqualSign:       "LESS_EQUAL_SIGN",
	LeftLabelBracket:    "LEFT_LABEL_BRACKET",
	RightLabelBracket:   "RIGHT_LABEL_BRACKET",
	BoxSign:             "BOX_SIGN",
	Identifier:          "IDENTIFIER",
	DecimalLiteral:      "DECIMAL_LITERAL",
	BasedLiteral:        "BASED_LITERAL",
	CharacterLiteral:    "CHARACTER_LITERAL",
	StringLiteral:       "STRING_LITERAL",
	Comment:             "COMMENT",
	AbortKeyword:        "ABORT_KEYWORD",
	AbsKeyword:          "ABS_KEYWORD",
	AbstractKeyword:     "ABSTRACT_KEYWORD",
	AcceptKeyword:       "ACCEPT_KEYWORD",
	AccessKeyword:       "ACCESS_KEYWORD",
	AliasedKeyword:      "ALIASED_KEYWORD",
	AllKeyword:          "ALL_KEYWORD",
	AndKeyword:          "AND_KEYWORD",
	ArrayKeyword:        "ARRAY_KEYWORD",
	AtKeyword:           "AT_KEYWORD",
	BeginKeyword:        "BEGIN_KEYWORD",
	BodyKeyword:         "BODY_KEYWORD",
	CaseKeyword:         "CASE_KEYWORD",
	ConstantKeyword:     "CONSTANT_KEYWORD",
	DeclareKeyword:      "DECLARE_KEYWORD",
	DelayKeyword:        "DELAY_KEYWORD",
	DeltaKeyword:        "DELTA_KEYWORD",
	DigitsKeyword:       "DIGITS_KEYWORD",
	DoKeyword:           "DO_KEYWORD",
	ElseKeyword:         "ELSE_KEYWORD",
	ElsifKeyword:        "ELSIF_KEYWORD",
	EndKeyword:          "END_KEYWORD",
	EntryKeyword:        "ENTRY_KEYWORD",
	ExceptionKeyword:    "EXCEPTION_KEYWORD",
	ExitKeyword:         "EXIT_KEYWORD",
	ForKeyword:          "FOR_KEYWORD",
	FunctionKeyword:     "FUNCTION_KEYWORD",
	GenericKeyword:      "GENERIC_KEYWORD",
	GotoKeyword:         "GOTO_KEYWORD",
	IfKeyword:           "IF_KEYWORD",
	InKeyword:           "IN_KEYWORD",
	InterfaceKeyword:    "INTERFACE_KEYWORD",
	IsKeyword:           "IS_KEYWORD",
	LimitedKeyword:      "LIMITED_KEYWORD",
	LoopKeyword:         "LOOP_KEYWORD",
	ModKeyword:          "MOD_KEYWORD",
	NewKeyword:          "NEW_KEYWORD",
	NotKeyword:          "NOT_KEYWORD",
	NullKeyword:         "NULL_KEYWORD",
	OfKeyword:           "OF_KEYWORD",
	OrKeyword:           "OR_KEYWORD",
	OthersKeyword:       "OTHERS_KEYWORD",
	OutKeyword:          "OUT_KEYWORD",
	OverridingKeyword:   "OVERRIDING_KEYWORD",
	PackageKeyword:      "PACKAGE_KEYWORD",
	PragmaKeyword:       "PRAGMA_KEYWORD",
	PrivateKeyword:      "PRIVATE_KEYWORD",
	ProcedureKeyword:    "PROCEDURE_KEYWORD",
	ProtectedKeyword:    "PROTECTED_KEYWORD",
	RaiseKeyword:        "RAISE_KEYWORD",
	RangeKeyword:        "RANGE_KEYWORD",
	RecordKeyword:       "RECORD_KEYWORD",
	RemKeyword:          "REM_KEYWORD",
	RenamesKeyword:      "RENAMES_KEYWORD",
	RequeueKeyword:      "REQUEUE_KEYWORD",
	ReturnKeyword:       "RETURN_KEYWORD",
	ReverseKeyword:      "REVERSE_KEYWORD",
	SelectKeyword:       "SELECT_KEYWORD",
	SeparateKeyword:     "SEPARATE_KEYWORD",
	SomeKeyword:         "SOME_KEYWORD",
	SubtypeKeyword:      "SUBTYPE_KEYWORD",
	SynchronizedKeyword: "SYNCHRONIZED_KEYWORD",
	TaggedKeyword:       "TAGGED_KEYWORD",
	TaskKeyword:         "TASK_KEYWORD",
	TerminateKeyword:    "TERMINATE_KEYWORD",
	ThenKeyword:         "THEN_KEYWORD",
	TypeKeyword:         "TYPE_KEYWORD",
	UntilKeyword:        "UNTIL_KEYWORD",
	UseKeyword:          "USE_KEYWORD",
	WhenKeyword:         "WHEN_KEYWORD",
	WhileKeyword:        "WHILE_KEYWORD",
	WithKeyword:         "WITH_KEYWORD",
	XorKeyword:          "XOR_KEYWORD",
	Symbol:              "SYMBOL",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// delimiterSpellings maps delimiter kinds to their source text.
var delimiterSpellings = map[Kind]string{
	Ampersand:         "&",
	Apostrophe:        "'",
	LeftParenthesis:   "(",
	RightParenthesis:  ")",
	Asterisk:          "*",
	PlusSign:          "+",
	Comma:             ",",
	HyphenMinus:       "-",
	FullStop:          ".",
	Solidus:           "/",
	Colon:             ":",
	Semicolon:         ";",
	LessThanSign:      "<",
	EqualsSign:        "=",
	GreaterThanSign:   ">",
	VerticalLine:      "|",
	Arrow:             "=>",
	DoubleDot:         "..",
	DoubleAsterisk:    "**",
	Assignment:        ":=",
	NotEqualSign:      "/=",
	GreaterEqualSign:  ">=",
	LessEqualSign:     "<=",
	LeftLabelBracket:  "<<",
	RightLabelBracket: ">>",
	BoxSign:           "<>",
}

// reservedWords maps reserved-word kinds to their lower-case spelling.
var reservedWords = map[Kind]string{
	AbortKeyword:        "abort",
	AbsKeyword:          "abs",
	AbstractKeyword:     "abstract",
	AcceptKeyword:       "accept",
	AccessKeyword:       "access",
	AliasedKeyword:      "aliased",
	AllKeyword:          "all",
	AndKeyword:          "and",
	ArrayKeyword:        "array",
	AtKeyword:           "at",
	BeginKeyword:        "begin",
	BodyKeyword:         "body",
	CaseKeyword:         "case",
	ConstantKeyword:     "constant",
	DeclareKeyword:      "declare",
	DelayKeyword:        "delay",
	DeltaKeyword:        "delta",
	DigitsKeyword:       "digits",
	DoKeyword:           "do",
	ElseKeyword:         "else",
	ElsifKeyword:        "elsif",
	EndKeyword:          "end",
	EntryKeyword:        "entry",
	ExceptionKeyword:    "exception",
	ExitKeyword:         "exit",
	ForKeyword:          "for",
	FunctionKeyword:     "function",
	GenericKeyword:      "generic",
	GotoKeyword:         "goto",
	IfKeyword:           "if",
	InKeyword:           "in",
	InterfaceKeyword:    "interface",
	IsKeyword:           "is",
	LimitedKeyword:      "limited",
	LoopKeyword:         "loop",
	ModKeyword:          "mod",
	NewKeyword:          "new",
	NotKeyword:          "not",
	NullKeyword:         "null",
	OfKeyword:           "of",
	OrKeyword:           "or",
	OthersKeyword:       "others",
	OutKeyword:          "out",
	OverridingKeyword:   "overriding",
	PackageKeyword:      "package",
	PragmaKeyword:       "pragma",
	PrivateKeyword:      "private",
	ProcedureKeyword:    "procedure",
	ProtectedKeyword:    "protected",
	RaiseKeyword:        "raise",
	RangeKeyword:        "range",
	RecordKeyword:       "record",
	RemKeyword:          "rem",
	RenamesKeyword:      "renames",
	RequeueKeyword:      "requeue",
	ReturnKeyword:       "return",
	ReverseKeyword:      "reverse",
	SelectKeyword:       "select",
	SeparateKeyword:     "separate",
	SomeKeyword:         "some",
	SubtypeKeyword:      "subtype",
	SynchronizedKeyword: "synchronized",
	TaggedKeyword:       "tagged",
	TaskKeyword:         "task",
	TerminateKeyword:    "terminate",
	ThenKeyword:         "then",
	TypeKeyword:         "type",
	UntilKeyword:        "until",
	UseKeyword:          "use",
	WhenKeyword:         "when",
	WhileKeyword:        "while",
	WithKeyword:         "with",
	XorKeyword:          "xor",
}

// Spelling returns the fixed source text of a delimiter or reserved word.
func (k Kind) Spelling() (string, bool) {
	if s, ok := delimiterSpellings[k]; ok {
		return s, true
	}
	s, ok := reservedWords[k]
	return s, ok
}

func (k Kind) IsReservedWord() bool {
	return k >= AbortKeyword && k <= XorKeyword
}

func (k Kind) IsDelimiter() bool {
	return k >= Ampersand && k <= BoxSign
}

// Categories of kinds, used as keys of a theme's syntax colors.
const (
	CategoryNone       = ""
	CategoryInvalid    = "invalid"
	CategoryWhitespace = "whitespace"
	CategoryDelimiter  = "delimiter"
	CategoryIdent      = "ident"
	CategoryNumber     = "number"
	CategoryString     = "string"
	CategoryComment    = "comment"
	CategoryKeyword    = "keyword"
)

// Category groups k with the kinds a highlighter paints the same way.
func (k Kind) Category() string {
	switch {
	case k == None:
		return CategoryNone
	case k == Invalid:
		return CategoryInvalid
	case k == Whitespace:
		return CategoryWhitespace
	case k.IsDelimiter(), k == Symbol:
		return CategoryDelimiter
	case k == Identifier:
		return CategoryIdent
	case k == DecimalLiteral, k == BasedLiteral:
		return CategoryNumber
	case k == CharacterLiteral, k == StringLiteral:
		return CategoryString
	case k == Comment:
		return CategoryComment
	case k.IsReservedWord():
		return CategoryKeyword
	}
	return CategoryNone
}

var kindsByName map[string]Kind

func init() {
	kindsByName = make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		kindsByName[name] = Kind(k)
	}
}

// KindByName is the inverse of Kind.String.
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// AllKinds returns every kind a lexer can report, in numeric order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames)-1)
	for k := range kindNames {
		if Kind(k) != None {
			kinds = append(kinds, Kind(k))
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
