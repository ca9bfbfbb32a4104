package lex

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/fuhongbo/behaviortree/logging"
)

// Lexer turns source text into a stream of Tokens. It exposes a
// one-character pushback internally (see backup/peek) but that is
// not observable from NextToken's interface; callers that need
// lookahead use the TokenPager built on top of NextToken (see
// package parser).
type Lexer struct {
	input   []rune
	pos     int // index of the next rune to read
	lastPos int // index backup() rewinds to
	log     logging.Logger
}

// NewLexer creates a Lexer over input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input), log: logging.Default}
}

const eof = -1

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.lastPos = l.pos
		return eof
	}
	l.lastPos = l.pos
	r := l.input[l.pos]
	l.pos++
	return r
}

// backup rewinds the stream by exactly the last rune returned by
// next. Calling backup twice in a row without an intervening next is
// a bug.
func (l *Lexer) backup() {
	l.pos = l.lastPos
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) consumeWhitespace() {
	for {
		r := l.next()
		if r == eof {
			return
		}
		if !unicode.IsSpace(r) {
			l.backup()
			return
		}
	}
}

// NextToken returns the next Token, or a lexical error. Whitespace is
// a pure separator, never emitted.
func (l *Lexer) NextToken() (Token, error) {
	l.consumeWhitespace()
	start := l.pos
	r := l.next()
	if r == eof {
		return Token{T: TokenEOF, Pos: start}, nil
	}

	switch r {
	case '{':
		return Token{T: TokenLeftBrace, Pos: start}, nil
	case '}':
		return Token{T: TokenRightBrace, Pos: start}, nil
	case ',':
		return Token{T: TokenComma, Pos: start}, nil
	case ':':
		return Token{T: TokenColon, Pos: start}, nil
	case '(':
		return Token{T: TokenLeftParenthesis, Pos: start}, nil
	case ')':
		return Token{T: TokenRightParenthesis, Pos: start}, nil
	case '[':
		return Token{T: TokenLeftArray, Pos: start}, nil
	case ']':
		return Token{T: TokenRightArray, Pos: start}, nil
	case '+':
		return Token{T: TokenPlus, Pos: start}, nil
	case '*':
		return Token{T: TokenMultiply, Pos: start}, nil
	case '/':
		return Token{T: TokenDivide, Pos: start}, nil
	case '>':
		return Token{T: TokenGreater, Pos: start}, nil
	case '<':
		return Token{T: TokenLess, Pos: start}, nil
	case '=':
		return Token{T: TokenEqual, Pos: start}, nil
	case '"':
		return l.lexQuotedString(start)
	case '-':
		// Local one-character lookahead: "-" followed by a digit is a
		// negative integer literal; anything else is Minus punctuation.
		if n := l.peek(); isDigit(n) {
			return l.lexInteger(start, true), nil
		}
		return Token{T: TokenMinus, Pos: start}, nil
	}

	if unicode.IsLetter(r) {
		l.backup()
		return l.lexIdentOrKeyword(start), nil
	}
	if isDigit(r) {
		l.backup()
		return l.lexInteger(start, false), nil
	}

	return Token{}, fmt.Errorf("lex: unrecognized character %q at offset %d", r, start)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func (l *Lexer) lexIdentOrKeyword(start int) Token {
	var b strings.Builder
	for {
		r := l.next()
		if r == eof || !isIdentRune(r) {
			if r != eof {
				l.backup()
			}
			break
		}
		b.WriteRune(r)
	}
	word := b.String()
	if tt, ok := reservedWords[word]; ok {
		return Token{T: tt, V: word, Pos: start}
	}
	return Token{T: TokenIdentity, V: word, Pos: start}
}

func (l *Lexer) lexInteger(start int, negative bool) Token {
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for {
		r := l.next()
		if r == eof || !isDigit(r) {
			if r != eof {
				l.backup()
			}
			break
		}
		b.WriteRune(r)
	}
	return Token{T: TokenInteger, V: b.String(), Pos: start}
}

func (l *Lexer) lexQuotedString(start int) (Token, error) {
	var b strings.Builder
	for {
		r := l.next()
		switch r {
		case eof:
			return Token{}, fmt.Errorf("lex: unfinished quoted string starting at offset %d", start)
		case '"':
			return Token{T: TokenQuotedString, V: b.String(), Pos: start}, nil
		case '\\':
			esc := l.next()
			switch esc {
			case eof:
				return Token{}, fmt.Errorf("lex: unfinished quoted string during escape sequence starting at offset %d", start)
			case '\\':
				b.WriteByte('\\')
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			default:
				l.log.Warnf("lex: unnecessary escape for character %q", esc)
				b.WriteRune(esc)
			}
		default:
			b.WriteRune(r)
		}
	}
}

// ParseIntegerLiteral converts the text carried by a TokenInteger
// Token into an int64. Exposed for the grammar (value.go) and tests.
func ParseIntegerLiteral(text string) (int64, error) {
	return strconv.ParseInt(text, 10, 64)
}
