// Package lex tokenizes behaviour tree source text.
package lex

import "fmt"

// TokenType identifies the lexical class of a Token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenError

	TokenIdentity
	TokenQuotedString
	TokenInteger

	// reserved words
	TokenTree
	TokenSubtree
	TokenSelector
	TokenSequence
	TokenPriority
	TokenInverter
	// TokenBlackboard is always tokenized as a keyword; whether the
	// grammar *accepts* a blackboard node is gated separately by
	// parser.WithBlackboard.
	TokenBlackboard

	// punctuation
	TokenLeftBrace
	TokenRightBrace
	TokenLeftParenthesis
	TokenRightParenthesis
	TokenLeftArray
	TokenRightArray
	TokenComma
	TokenColon

	// operator-shaped punctuation; the grammar decides whether these
	// are Minus/Plus punctuation or an Operator value
	TokenPlus
	TokenMinus
	TokenMultiply
	TokenDivide

	// comparison punctuation: recognised by the lexer so that
	// check_condition's single-char operator forms (">", "<", "=")
	// reach the grammar as ordinary tokens; ast.OperatorFromByte does
	// not classify them, so the grammar renders them as Unknown
	// values rather than Operator values.
	TokenGreater
	TokenLess
	TokenEqual
)

var tokenNames = map[TokenType]string{
	TokenEOF:              "EOF",
	TokenError:            "error",
	TokenIdentity:         "identifier",
	TokenQuotedString:     "string",
	TokenInteger:          "integer",
	TokenTree:             "tree",
	TokenSubtree:          "subtree",
	TokenSelector:         "selector",
	TokenSequence:         "sequence",
	TokenPriority:         "priority",
	TokenInverter:         "inverter",
	TokenBlackboard:       "blackboard",
	TokenLeftBrace:        "{",
	TokenRightBrace:       "}",
	TokenLeftParenthesis:  "(",
	TokenRightParenthesis: ")",
	TokenLeftArray:        "[",
	TokenRightArray:       "]",
	TokenComma:            ",",
	TokenColon:            ":",
	TokenPlus:             "+",
	TokenMinus:            "-",
	TokenMultiply:         "*",
	TokenDivide:           "/",
	TokenGreater:          ">",
	TokenLess:             "<",
	TokenEqual:            "=",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

var reservedWords = map[string]TokenType{
	"tree":       TokenTree,
	"subtree":    TokenSubtree,
	"selector":   TokenSelector,
	"sequence":   TokenSequence,
	"priority":   TokenPriority,
	"inverter":   TokenInverter,
	"blackboard": TokenBlackboard,
}

// Token is one lexeme: its type, the text/position it carries and its
// offset within the source. V is the identifier text, the quoted
// string's (unescaped) contents or the literal integer's decimal
// digits, depending on T.
type Token struct {
	T   TokenType
	V   string
	Pos int
}

func (t Token) String() string {
	if t.V == "" {
		return t.T.String()
	}
	return fmt.Sprintf("%s(%q)", t.T, t.V)
}
