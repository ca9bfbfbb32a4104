package parser

import (
	"github.com/fuhongbo/behaviortree/ast"
	"github.com/fuhongbo/behaviortree/lex"
)

// punctChar maps a punctuation TokenType to the single character it
// lexed from, for the bare op-char value production and for array
// elements that are operator-shaped but not one of the four
// arithmetic operators (those become Unknown values).
var punctChar = map[lex.TokenType]rune{
	lex.TokenPlus:     '+',
	lex.TokenMinus:    '-',
	lex.TokenMultiply: '*',
	lex.TokenDivide:   '/',
	lex.TokenGreater:  '>',
	lex.TokenLess:     '<',
	lex.TokenEqual:    '=',
}

// parseValue parses one `value` production: quoted string, integer,
// map, array, or a bare operator/unknown character.
func (p *Parser) parseValue() ast.Value {
	tok := p.pager.Cur()
	switch tok.T {
	case lex.TokenQuotedString:
		p.pager.Next()
		return ast.String(tok.V)
	case lex.TokenInteger:
		p.pager.Next()
		n, err := lex.ParseIntegerLiteral(tok.V)
		if err != nil {
			p.errorf("malformed integer literal %q: %s", tok.V, err)
		}
		return ast.Integer(n)
	case lex.TokenLeftBrace:
		return p.parseMapValue()
	case lex.TokenLeftArray:
		return p.parseArrayValue()
	default:
		if r, ok := punctChar[tok.T]; ok {
			p.pager.Next()
			if op, ok := ast.OperatorFromByte(r); ok {
				return ast.Op(op)
			}
			return ast.Unknown(r)
		}
		p.unexpected(tok, "value")
		panic("unreachable")
	}
}

// parseMapValue parses `{ IDENT : value , ... }`, trailing comma
// permitted.
func (p *Parser) parseMapValue() ast.Value {
	p.expect(lex.TokenLeftBrace, "map")
	m := make(map[string]ast.Value)
	for p.pager.Cur().T != lex.TokenRightBrace {
		key := p.expect(lex.TokenIdentity, "map key")
		p.expect(lex.TokenColon, "map")
		m[key.V] = p.parseValue()
		if p.pager.Cur().T == lex.TokenComma {
			p.pager.Next()
			continue
		}
		break
	}
	p.expect(lex.TokenRightBrace, "map")
	return ast.Map(m)
}

// parseArrayValue parses `[ value , ... ]`, trailing comma
// permitted. Elements include integers, strings, operators, or
// nested values.
func (p *Parser) parseArrayValue() ast.Value {
	p.expect(lex.TokenLeftArray, "array")
	var elems []ast.Value
	for p.pager.Cur().T != lex.TokenRightArray {
		elems = append(elems, p.parseValue())
		if p.pager.Cur().T == lex.TokenComma {
			p.pager.Next()
			continue
		}
		break
	}
	p.expect(lex.TokenRightArray, "array")
	return ast.Array(elems)
}
