// Package parser implements the grammar stage of the pipeline: token
// stream -> ast.Tree. It is a hand-rolled recursive-descent parser
// that panics with a formatted error deep in the recursion and
// recovers it into a single returned error at the Parse boundary,
// keeping the recursive descent code free of threaded error returns.
package parser

import (
	"fmt"

	"github.com/fuhongbo/behaviortree/ast"
	"github.com/fuhongbo/behaviortree/lex"
)

// Option configures optional grammar extensions.
type Option func(*Parser)

// WithBlackboard enables the `blackboard { KEY } { node }` composite,
// an opt-in extension of the core grammar. Off by default, so the
// grammar is unchanged unless a caller asks for it.
func WithBlackboard() Option {
	return func(p *Parser) { p.blackboard = true }
}

// Parser drives one parse of a complete source text.
type Parser struct {
	pager      *tokenPager
	blackboard bool
}

// Parse parses a complete TreeCollection. A lexical or syntactic
// error is returned as a single human-readable error naming the
// offending token; Parse does not attempt error recovery to find
// further errors.
func Parse(text string, opts ...Option) (trees []ast.Tree, err error) {
	p := &Parser{pager: newTokenPager(lex.NewLexer(text))}
	for _, o := range opts {
		o(p)
	}
	defer p.recover(&err)
	trees = p.parseCollection()
	return trees, nil
}

// errorf formats the error and terminates processing via panic.
func (p *Parser) errorf(format string, args ...interface{}) {
	panic(fmt.Errorf("parser: "+format, args...))
}

// unexpected complains about the token and terminates processing.
func (p *Parser) unexpected(tok lex.Token, context string) {
	p.errorf("unexpected %s in %s", tok, context)
}

// recover turns a panic raised by errorf (or a lexical error panic
// from the pager) into a returned error.
func (p *Parser) recover(errp *error) {
	e := recover()
	if e == nil {
		return
	}
	if err, ok := e.(error); ok {
		*errp = err
		return
	}
	panic(e)
}

// expect verifies the current token has type tt, consumes it and
// returns it; otherwise it panics via unexpected.
func (p *Parser) expect(tt lex.TokenType, context string) lex.Token {
	tok := p.pager.Cur()
	if tok.T != tt {
		p.unexpected(tok, context)
	}
	p.pager.Next()
	return tok
}

func (p *Parser) parseCollection() []ast.Tree {
	var trees []ast.Tree
	for p.pager.Cur().T != lex.TokenEOF {
		trees = append(trees, p.parseTree())
	}
	return trees
}

func (p *Parser) parseTree() ast.Tree {
	p.expect(lex.TokenTree, "tree")
	name := p.expect(lex.TokenIdentity, "tree name")
	p.expect(lex.TokenLeftBrace, "tree body")
	root := p.parseNode()
	p.expect(lex.TokenRightBrace, "tree body")
	return ast.Tree{Name: name.V, Root: root}
}

func (p *Parser) parseNode() ast.Node {
	tok := p.pager.Cur()
	switch tok.T {
	case lex.TokenSequence:
		p.pager.Next()
		return ast.Node{Kind: ast.NodeSequence, Children: p.parseChildren()}
	case lex.TokenSelector:
		p.pager.Next()
		return ast.Node{Kind: ast.NodeSelector, Children: p.parseChildren()}
	case lex.TokenPriority:
		p.pager.Next()
		return ast.Node{Kind: ast.NodePriority, Children: p.parseChildren()}
	case lex.TokenInverter:
		p.pager.Next()
		p.expect(lex.TokenLeftBrace, "inverter")
		child := p.parseNode()
		p.expect(lex.TokenRightBrace, "inverter")
		return ast.Node{Kind: ast.NodeInverter, Child: &child}
	case lex.TokenSubtree:
		p.pager.Next()
		name := p.expect(lex.TokenIdentity, "subtree name")
		return ast.Node{Kind: ast.NodeSubtree, SubtreeName: name.V}
	case lex.TokenBlackboard:
		if !p.blackboard {
			p.errorf("blackboard extension is not enabled")
		}
		p.pager.Next()
		p.expect(lex.TokenLeftBrace, "blackboard key")
		key := p.expect(lex.TokenIdentity, "blackboard key")
		p.expect(lex.TokenRightBrace, "blackboard key")
		p.expect(lex.TokenLeftBrace, "blackboard body")
		child := p.parseNode()
		p.expect(lex.TokenRightBrace, "blackboard body")
		return ast.Node{Kind: ast.NodeBlackboard, BlackboardKey: key.V, Child: &child}
	case lex.TokenIdentity:
		return p.parseLeaf()
	default:
		p.unexpected(tok, "node")
		panic("unreachable")
	}
}

// parseChildren parses the comma-separated, trailing-comma-permitted
// node list inside a composite's braces.
func (p *Parser) parseChildren() []ast.Node {
	p.expect(lex.TokenLeftBrace, "composite body")
	var children []ast.Node
	for p.pager.Cur().T != lex.TokenRightBrace {
		children = append(children, p.parseNode())
		if p.pager.Cur().T == lex.TokenComma {
			p.pager.Next()
			continue
		}
		break
	}
	p.expect(lex.TokenRightBrace, "composite body")
	return children
}

// parseLeaf parses `IDENT`, `IDENT ( )` or `IDENT ( value )`. Empty
// parentheses carry no argument, exactly like a bare `IDENT`.
func (p *Parser) parseLeaf() ast.Node {
	name := p.expect(lex.TokenIdentity, "leaf name")
	if p.pager.Cur().T != lex.TokenLeftParenthesis {
		return ast.Node{Kind: ast.NodeLeaf, Name: name.V}
	}
	p.pager.Next()
	if p.pager.Cur().T == lex.TokenRightParenthesis {
		p.pager.Next()
		return ast.Node{Kind: ast.NodeLeaf, Name: name.V}
	}
	v := p.parseValue()
	p.expect(lex.TokenRightParenthesis, "leaf argument")
	return ast.Node{Kind: ast.NodeLeaf, Name: name.V, Value: &v}
}
