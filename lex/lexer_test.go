package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTokens(t *testing.T, src string) []Token {
	t.Helper()
	l := NewLexer(src)
	var toks []Token
	for {
		tok, err := l.NextToken()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.T == TokenEOF {
			return toks
		}
	}
}

func TestLexerPunctuationAndKeywords(t *testing.T) {
	toks := allTokens(t, `tree main { selector { sequence { inverter { print_text("hi") } } } }`)
	types := make([]TokenType, 0, len(toks))
	for _, tok := range toks {
		types = append(types, tok.T)
	}
	assert.Equal(t, []TokenType{
		TokenTree, TokenIdentity, TokenLeftBrace,
		TokenSelector, TokenLeftBrace,
		TokenSequence, TokenLeftBrace,
		TokenInverter, TokenLeftBrace,
		TokenIdentity, TokenLeftParenthesis, TokenQuotedString, TokenRightParenthesis,
		TokenRightBrace, TokenRightBrace, TokenRightBrace, TokenRightBrace,
		TokenEOF,
	}, types)
}

func TestLexerNegativeIntegerVsMinus(t *testing.T) {
	// "-3" has no preceding operand: a negative integer literal.
	// "-x" is followed by a non-digit: Minus punctuation.
	// "4-2" has no separating space, so the "-2" is still read as its
	// own negative integer literal rather than a subtraction operator --
	// the lexer has no notion of "preceding operand", only local
	// lookahead on the rune following '-'.
	toks := allTokens(t, `[-3, -x, 4-2]`)
	types := make([]TokenType, 0, len(toks))
	for _, tok := range toks {
		types = append(types, tok.T)
	}
	assert.Equal(t, []TokenType{
		TokenLeftArray,
		TokenInteger, TokenComma,
		TokenMinus, TokenIdentity, TokenComma,
		TokenInteger, TokenInteger,
		TokenRightArray, TokenEOF,
	}, types)
	assert.Equal(t, "-3", toks[1].V)
	assert.Equal(t, "x", toks[4].V)
	assert.Equal(t, "4", toks[6].V)
	assert.Equal(t, "-2", toks[7].V)
}

func TestLexerQuotedStringEscapes(t *testing.T) {
	toks := allTokens(t, `"a\nb\tc\"d\\e"`)
	require.Len(t, toks, 2)
	assert.Equal(t, "a\nb\tc\"d\\e", toks[0].V)
}

func TestLexerQuotedStringUnnecessaryEscapePassesThrough(t *testing.T) {
	toks := allTokens(t, `"a\qb"`)
	require.Len(t, toks, 2)
	assert.Equal(t, "aqb", toks[0].V)
}

func TestLexerUnfinishedQuotedString(t *testing.T) {
	l := NewLexer(`"unterminated`)
	_, err := l.NextToken()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unfinished quoted string")
}

func TestLexerUnfinishedEscapeSequence(t *testing.T) {
	l := NewLexer(`"abc\`)
	_, err := l.NextToken()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "during escape sequence")
}

func TestLexerUnrecognizedCharacter(t *testing.T) {
	l := NewLexer(`@`)
	_, err := l.NextToken()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized character")
}

func TestParseIntegerLiteral(t *testing.T) {
	n, err := ParseIntegerLiteral("-42")
	require.NoError(t, err)
	assert.Equal(t, int64(-42), n)
}
