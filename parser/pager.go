package parser

import (
	"github.com/fuhongbo/behaviortree/lex"
)

// tokenPager wraps a lex.Lexer with one-token lookahead and backup:
// a materialized token list plus a cursor, rather than a single-token
// ring buffer, so Backup is unconditionally cheap. The Lexer can
// report a lexical error from NextToken, so a lex error here is
// turned into a panic, caught by the same recover that catches
// grammar errors (see parser.go).
type tokenPager struct {
	lex    *lex.Lexer
	tokens []lex.Token
	cursor int
}

func newTokenPager(l *lex.Lexer) *tokenPager {
	return &tokenPager{lex: l, cursor: -1}
}

func (p *tokenPager) fill() {
	tok, err := p.lex.NextToken()
	if err != nil {
		panic(err)
	}
	p.tokens = append(p.tokens, tok)
}

// Next consumes and returns the next token.
func (p *tokenPager) Next() lex.Token {
	if p.cursor+1 >= len(p.tokens) {
		p.fill()
	}
	p.cursor++
	return p.tokens[p.cursor]
}

// Cur returns the current token without consuming, fetching the
// first token lazily if nothing has been read yet.
func (p *tokenPager) Cur() lex.Token {
	if p.cursor == -1 {
		return p.Next()
	}
	return p.tokens[p.cursor]
}

// Peek returns the token after Cur without consuming it.
func (p *tokenPager) Peek() lex.Token {
	if p.cursor == -1 {
		p.Next()
	}
	if p.cursor+1 >= len(p.tokens) {
		p.fill()
	}
	return p.tokens[p.cursor+1]
}

// Backup rewinds the cursor by one token.
func (p *tokenPager) Backup() {
	if p.cursor > 0 {
		p.cursor--
	}
}
