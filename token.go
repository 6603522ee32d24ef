package script

// TokenKind enumerates every terminal the lexer can produce.
type TokenKind int

const (
	KeywordInt TokenKind = iota
	KeywordFloat
	KeywordBoolean
	KeywordString
	KeywordChar

	KeywordFunction

	KeywordIf
	KeywordElse

	KeywordFor
	KeywordWhile

	KeywordContinue
	KeywordBreak
	KeywordReturn

	KeywordNew

	LiteralInt
	LiteralFloat
	LiteralTrue
	LiteralFalse
	LiteralString
	LiteralChar

	Identifier

	Plus
	Minus
	Asterisk
	Slash
	Mod

	BitAnd
	BitOr
	BitXor
	BitNot
	ShiftLeft
	ShiftRight

	Backslash

	LogicalAnd
	LogicalOr
	LogicalNot

	Less
	LessEqual
	Greater
	GreaterEqual
	Equal
	NotEqual

	Assign

	Semicolon
	Colon
	Comma
	Dot

	LeftParen
	RightParen
	LeftBracket
	RightBracket
	LeftBrace
	RightBrace

	EndOfInput
	ParseErrorToken
)

var tokenKindNames = map[TokenKind]string{
	KeywordInt:      "int",
	KeywordFloat:    "float",
	KeywordBoolean:  "boolean",
	KeywordString:   "string",
	KeywordChar:     "char",
	KeywordFunction: "function",
	KeywordIf:       "if",
	KeywordElse:     "else",
	KeywordFor:      "for",
	KeywordWhile:    "while",
	KeywordContinue: "continue",
	KeywordBreak:    "break",
	KeywordReturn:   "return",
	KeywordNew:      "new",
	LiteralInt:      "literal int",
	LiteralFloat:    "literal float",
	LiteralTrue:     "true",
	LiteralFalse:    "false",
	LiteralString:   "literal string",
	LiteralChar:     "literal char",
	Identifier:      "identifier",
	Plus:            "+",
	Minus:           "-",
	Asterisk:        "*",
	Slash:           "/",
	Mod:             "%",
	BitAnd:          "&",
	BitOr:           "|",
	BitXor:          "^",
	BitNot:          "~",
	ShiftLeft:       "<<",
	ShiftRight:      ">>",
	Backslash:       `\`,
	LogicalAnd:      "&&",
	LogicalOr:       "||",
	LogicalNot:      "!",
	Less:            "<",
	LessEqual:       "<=",
	Greater:         ">",
	GreaterEqual:    ">=",
	Equal:           "==",
	NotEqual:        "!=",
	Assign:          "=",
	Semicolon:       ";",
	Colon:           ":",
	Comma:           ",",
	Dot:             ".",
	LeftParen:       "(",
	RightParen:      ")",
	LeftBracket:     "[",
	RightBracket:    "]",
	LeftBrace:       "{",
	RightBrace:      "}",
	EndOfInput:      "<eof>",
	ParseErrorToken: "<error>",
}

// String returns the canonical printable name used in error messages.
func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "<unknown token>"
}

// Token is a single lexer terminal together with the position where it
// was recognized.
type Token struct {
	Content string
	Kind    TokenKind
	Line    int
	Column  int
}

func newToken(content string, kind TokenKind, pos Position) Token {
	return Token{Content: content, Kind: kind, Line: pos.Line(), Column: pos.CharsLine}
}

var keywords = map[string]TokenKind{
	"int":      KeywordInt,
	"float":    KeywordFloat,
	"boolean":  KeywordBoolean,
	"string":   KeywordString,
	"char":     KeywordChar,
	"function": KeywordFunction,
	"if":       KeywordIf,
	"else":     KeywordElse,
	"for":      KeywordFor,
	"while":    KeywordWhile,
	"continue": KeywordContinue,
	"break":    KeywordBreak,
	"return":   KeywordReturn,
	"new":      KeywordNew,
}
