package parser

import (
	"github.com/sergev/ablescript/lang"
)

// Parser builds statement trees from a token stream by recursive descent.
// It stops at the first error; partial trees are never returned.
//
// Expressions have no operator precedence: every binary operator takes the
// expression built so far as its left operand and exactly one operand to
// its right, so `a + b * c` means `(a + b) * c`.
type Parser struct {
	src TokenSource
}

// New creates a parser pulling tokens from src.
func New(src TokenSource) *Parser {
	return &Parser{src: src}
}

// Init parses statements until the token stream is exhausted.
func (p *Parser) Init() ([]lang.Stmt, error) {
	var ast []lang.Stmt
	for {
		tok, ok := p.src.Next()
		if !ok {
			return ast, nil
		}
		stmt, err := p.parse(tok)
		if err != nil {
			return nil, err
		}
		ast = append(ast, stmt)
	}
}

// next pulls one token, failing at end of input.
func (p *Parser) next() (Token, error) {
	tok, ok := p.src.Next()
	if !ok {
		return Token{}, unexpectedEOF(p.src.Span())
	}
	return tok, nil
}

// spanFrom closes a span opened at start with the end of the last token read.
func (p *Parser) spanFrom(start int) lang.Span {
	return lang.Span{Start: start, End: p.src.Span().End}
}

// parse routes a statement's lead token to the matching flow.
func (p *Parser) parse(tok Token) (lang.Stmt, error) {
	start := p.src.Span().Start

	var (
		kind lang.StmtKind
		err  error
	)
	switch tok.Type {
	case TokenIf:
		kind, err = p.ifFlow()
	case TokenFunctio:
		kind, err = p.functioFlow()
	case TokenVar:
		kind, err = p.varFlow()
	case TokenMelo:
		kind, err = p.meloFlow()
	case TokenLoop:
		kind, err = p.loopFlow()
	case TokenBreak:
		kind, err = p.semiTerminated(lang.BreakStmt{})
	case TokenHopBack:
		kind, err = p.semiTerminated(lang.HopBackStmt{})
	case TokenIdentifier,
		TokenString,
		TokenInteger,
		TokenBool,
		TokenAbool,
		TokenNul,
		TokenLeftParen:
		kind, err = p.valueFlow(tok)
	default:
		return lang.Stmt{}, unexpectedToken(tok, p.spanFrom(start))
	}
	if err != nil {
		return lang.Stmt{}, err
	}
	return lang.Stmt{Kind: kind, Span: p.spanFrom(start)}, nil
}

func (p *Parser) semiTerminated(kind lang.StmtKind) (lang.StmtKind, error) {
	if err := p.require(TokenSemicolon); err != nil {
		return nil, err
	}
	return kind, nil
}

// require consumes the next token and checks its type.
func (p *Parser) require(tt TokenType) error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.Type != tt {
		return unexpectedToken(tok, p.src.Span())
	}
	return nil
}

func (p *Parser) getIden() (lang.Iden, error) {
	tok, err := p.next()
	if err != nil {
		return lang.Iden{}, err
	}
	if tok.Type != TokenIdentifier {
		return lang.Iden{}, unexpectedToken(tok, p.src.Span())
	}
	return lang.Iden{Name: tok.Lexeme, Span: p.src.Span()}, nil
}

// parseExpr turns one token, plus whatever it pulls, into an expression.
// buf is the expression accumulated so far and may be nil; operators use it
// as their left operand. The caller replaces its buffer with the result.
func (p *Parser) parseExpr(tok Token, buf *lang.Expr) (lang.Expr, error) {
	start := p.src.Span().Start

	switch tok.Type {
	case TokenIdentifier:
		return lang.Expr{
			Kind: lang.VariableExpr{Name: tok.Lexeme},
			Span: p.spanFrom(start),
		}, nil
	case TokenInteger, TokenString, TokenBool, TokenAbool, TokenNul:
		return lang.Expr{
			Kind: lang.LiteralExpr{Value: tok.Value},
			Span: p.spanFrom(start),
		}, nil
	case TokenNot:
		next, err := p.next()
		if err != nil {
			return lang.Expr{}, err
		}
		operand, err := p.parseExpr(next, buf)
		if err != nil {
			return lang.Expr{}, err
		}
		return lang.Expr{
			Kind: lang.NotExpr{Operand: operand},
			Span: p.spanFrom(start),
		}, nil
	case TokenLeftParen:
		return p.exprFlow(TokenRightParen)
	}

	if op, ok := binOpKind(tok.Type); ok {
		return p.binOpFlow(op, buf)
	}
	return lang.Expr{}, unexpectedToken(tok, p.spanFrom(start))
}

// binOpFlow builds an operation from the buffered left operand and the
// single expression that follows the operator.
func (p *Parser) binOpFlow(op lang.BinOpKind, lhs *lang.Expr) (lang.Expr, error) {
	if lhs == nil {
		return lang.Expr{}, missingLhs(p.src.Span())
	}
	next, err := p.next()
	if err != nil {
		return lang.Expr{}, err
	}
	rhs, err := p.parseExpr(next, nil)
	if err != nil {
		return lang.Expr{}, err
	}
	return lang.Expr{
		Kind: lang.BinOpExpr{Lhs: *lhs, Rhs: rhs, Op: op},
		Span: p.spanFrom(lhs.Span.Start),
	}, nil
}

// exprFlow parses expressions into a single buffer until terminate.
func (p *Parser) exprFlow(terminate TokenType) (lang.Expr, error) {
	var buf *lang.Expr
	for {
		tok, err := p.next()
		if err != nil {
			return lang.Expr{}, err
		}
		if tok.Type == terminate {
			if buf == nil {
				return lang.Expr{}, unexpectedToken(tok, p.src.Span())
			}
			return *buf, nil
		}
		expr, err := p.parseExpr(tok, buf)
		if err != nil {
			return lang.Expr{}, err
		}
		buf = &expr
	}
}

// getBlock parses statements between curly braces.
func (p *Parser) getBlock() (lang.Block, error) {
	if err := p.require(TokenLeftCurly); err != nil {
		return lang.Block{}, err
	}
	var stmts []lang.Stmt
	for {
		tok, err := p.next()
		if err != nil {
			return lang.Block{}, err
		}
		if tok.Type == TokenRightCurly {
			return lang.Block{Stmts: stmts}, nil
		}
		stmt, err := p.parse(tok)
		if err != nil {
			return lang.Block{}, err
		}
		stmts = append(stmts, stmt)
	}
}

// valueFlow handles statements that begin with a value. The expression is
// buffered until either `print` or the `(` of a call shows what the
// statement is; both must end with a semicolon.
func (p *Parser) valueFlow(init Token) (lang.StmtKind, error) {
	first, err := p.parseExpr(init, nil)
	if err != nil {
		return nil, err
	}
	buf := &first

	var kind lang.StmtKind
	for kind == nil {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case TokenPrint:
			kind = lang.PrintStmt{Expr: *buf}
		case TokenLeftParen:
			v, ok := buf.Kind.(lang.VariableExpr)
			if !ok {
				return nil, unexpectedToken(tok, p.src.Span())
			}
			kind, err = p.functioCallFlow(lang.Iden{Name: v.Name, Span: buf.Span})
			if err != nil {
				return nil, err
			}
		default:
			expr, err := p.parseExpr(tok, buf)
			if err != nil {
				return nil, err
			}
			buf = &expr
		}
	}
	if err := p.require(TokenSemicolon); err != nil {
		return nil, err
	}
	return kind, nil
}

// ifFlow parses a parenthesised condition and a block. There is no else.
func (p *Parser) ifFlow() (lang.StmtKind, error) {
	if err := p.require(TokenLeftParen); err != nil {
		return nil, err
	}
	cond, err := p.exprFlow(TokenRightParen)
	if err != nil {
		return nil, err
	}
	body, err := p.getBlock()
	if err != nil {
		return nil, err
	}
	return lang.IfStmt{Cond: cond, Body: body}, nil
}

// functioFlow parses `functio name(a, b, c) { ... }`.
func (p *Parser) functioFlow() (lang.StmtKind, error) {
	iden, err := p.getIden()
	if err != nil {
		return nil, err
	}
	if err := p.require(TokenLeftParen); err != nil {
		return nil, err
	}

	var params []lang.Iden
	afterComma := false
	for done := false; !done; {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch {
		case tok.Type == TokenRightParen && !afterComma:
			done = true
		case tok.Type == TokenIdentifier:
			params = append(params, lang.Iden{Name: tok.Lexeme, Span: p.src.Span()})
			sep, err := p.next()
			if err != nil {
				return nil, err
			}
			switch sep.Type {
			case TokenComma:
				afterComma = true
			case TokenRightParen:
				done = true
			default:
				return nil, unexpectedToken(sep, p.src.Span())
			}
		default:
			return nil, unexpectedToken(tok, p.src.Span())
		}
	}

	body, err := p.getBlock()
	if err != nil {
		return nil, err
	}
	return lang.FunctioStmt{Iden: iden, Params: params, Body: body}, nil
}

// functioCallFlow parses call arguments after the opening parenthesis.
func (p *Parser) functioCallFlow(iden lang.Iden) (lang.StmtKind, error) {
	var args []lang.Expr
	var buf *lang.Expr
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case TokenRightParen:
			if buf != nil {
				args = append(args, *buf)
			}
			return lang.CallStmt{Iden: iden, Args: args}, nil
		case TokenComma:
			if buf == nil {
				return nil, unexpectedToken(tok, p.src.Span())
			}
			args = append(args, *buf)
			buf = nil
		default:
			expr, err := p.parseExpr(tok, buf)
			if err != nil {
				return nil, err
			}
			buf = &expr
		}
	}
}

// varFlow parses `var name;` or `var name = expr;`.
func (p *Parser) varFlow() (lang.StmtKind, error) {
	iden, err := p.getIden()
	if err != nil {
		return nil, err
	}
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case TokenEqual:
		init, err := p.exprFlow(TokenSemicolon)
		if err != nil {
			return nil, err
		}
		return lang.VarStmt{Iden: iden, Init: &init}, nil
	case TokenSemicolon:
		return lang.VarStmt{Iden: iden}, nil
	default:
		return nil, unexpectedToken(tok, p.src.Span())
	}
}

func (p *Parser) meloFlow() (lang.StmtKind, error) {
	iden, err := p.getIden()
	if err != nil {
		return nil, err
	}
	return p.semiTerminated(lang.MeloStmt{Iden: iden})
}

// loopFlow parses `loop { ... }`, which has no condition.
func (p *Parser) loopFlow() (lang.StmtKind, error) {
	body, err := p.getBlock()
	if err != nil {
		return nil, err
	}
	return lang.LoopStmt{Body: body}, nil
}
