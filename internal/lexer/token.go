// Package lexer turns Mython source text into a stream of tokens.
package lexer

import "fmt"

// TokenType identifies the lexical category of a Token.
type TokenType int

// Token categories, grouped the way the grammar uses them.
const (
	ILLEGAL TokenType = iota // unexpected character
	EOF                      // end of input
	NEWLINE                  // logical end of a statement line
	INDENT                   // increase in block indentation
	DEDENT                   // decrease in block indentation

	IDENT  // identifiers: x, myVar, Point
	INT    // integer literals: 0, 42 (a leading '-' is a separate MINUS token)
	STRING // string literals: "hello"

	literalEnd // marker, not a real token

	// Keywords
	CLASS
	DEF
	IF
	ELSE
	RETURN
	NEW
	AND
	OR
	NOT
	PRINT
	STR
	TRUE
	FALSE
	NONE
	SELF

	keywordEnd // marker, not a real token

	// Operators and punctuation
	ASSIGN   // =
	PLUS     // +
	MINUS    // -
	ASTERISK // *
	SLASH    // /
	LT       // <
	LTE      // <=
	GT       // >
	GTE      // >=
	EQ       // ==
	NOT_EQ   // !=
	DOT      // .
	COMMA    // ,
	COLON    // :
	LPAREN   // (
	RPAREN   // )
)

var tokenNames = map[TokenType]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF", NEWLINE: "NEWLINE",
	INDENT: "INDENT", DEDENT: "DEDENT",
	IDENT: "IDENT", INT: "INT", STRING: "STRING",
	CLASS: "class", DEF: "def", IF: "if", ELSE: "else", RETURN: "return",
	NEW: "new", AND: "and", OR: "or", NOT: "not", PRINT: "print", STR: "str",
	TRUE: "True", FALSE: "False", NONE: "None", SELF: "self",
	ASSIGN: "=", PLUS: "+", MINUS: "-", ASTERISK: "*", SLASH: "/",
	LT: "<", LTE: "<=", GT: ">", GTE: ">=", EQ: "==", NOT_EQ: "!=",
	DOT: ".", COMMA: ",", COLON: ":", LPAREN: "(", RPAREN: ")",
}

// String renders the token type as its canonical spelling or a debug name.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

var keywords = map[string]TokenType{
	"class": CLASS, "def": DEF, "if": IF, "else": ELSE, "return": RETURN,
	"new": NEW, "and": AND, "or": OR, "not": NOT, "print": PRINT, "str": STR,
	"True": TRUE, "False": FALSE, "None": NONE, "self": SELF,
}

// LookupIdent classifies an identifier as a keyword token or plain IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Position locates a token within the source text.
//
// Columns are rune counts, so multi-byte UTF-8 source (e.g. a string
// literal containing non-ASCII text) advances the column by one per
// character. Offset is the byte offset into the input.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
