package parser

import "github.com/sergev/ablescript/lang"

// TokenType enumerates lexical categories recognised by the lexer.
type TokenType int

const (
	TokenIllegal TokenType = iota
	TokenUnterminated // string literal cut off by end of input

	TokenIdentifier
	TokenInteger
	TokenString
	TokenBool
	TokenAbool
	TokenNul

	// Keywords
	TokenIf
	TokenFunctio
	TokenVar
	TokenMelo
	TokenLoop
	TokenBreak
	TokenHopBack
	TokenPrint

	// Operators
	TokenPlus        // +
	TokenMinus       // -
	TokenStar        // *
	TokenFwdSlash    // /
	TokenEqualEqual  // ==
	TokenNotEqual    // !=
	TokenLessThan    // <
	TokenGreaterThan // >
	TokenAnd         // &
	TokenOr          // |
	TokenNot         // !

	// Punctuation
	TokenEqual      // =
	TokenSemicolon  // ;
	TokenComma      // ,
	TokenLeftParen  // (
	TokenRightParen // )
	TokenLeftCurly  // {
	TokenRightCurly // }
)

func (tt TokenType) String() string {
	switch tt {
	case TokenIllegal:
		return "illegal"
	case TokenUnterminated:
		return "unterminated string"
	case TokenIdentifier:
		return "identifier"
	case TokenInteger:
		return "integer"
	case TokenString:
		return "string"
	case TokenBool:
		return "bool"
	case TokenAbool:
		return "abool"
	case TokenNul:
		return "nul"
	case TokenIf:
		return "if"
	case TokenFunctio:
		return "functio"
	case TokenVar:
		return "var"
	case TokenMelo:
		return "melo"
	case TokenLoop:
		return "loop"
	case TokenBreak:
		return "break"
	case TokenHopBack:
		return "hopback"
	case TokenPrint:
		return "print"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "*"
	case TokenFwdSlash:
		return "/"
	case TokenEqualEqual:
		return "=="
	case TokenNotEqual:
		return "!="
	case TokenLessThan:
		return "<"
	case TokenGreaterThan:
		return ">"
	case TokenAnd:
		return "&"
	case TokenOr:
		return "|"
	case TokenNot:
		return "!"
	case TokenEqual:
		return "="
	case TokenSemicolon:
		return ";"
	case TokenComma:
		return ","
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenLeftCurly:
		return "{"
	case TokenRightCurly:
		return "}"
	default:
		return "unknown"
	}
}

// Token is a single lexical unit.
type Token struct {
	Type   TokenType
	Lexeme string     // raw source text of the token
	Value  lang.Value // decoded value for literal tokens
	Span   lang.Span
}

func (t Token) String() string {
	switch t.Type {
	case TokenIdentifier, TokenInteger, TokenString, TokenIllegal, TokenUnterminated:
		return t.Type.String() + " " + quoteLexeme(t.Lexeme)
	default:
		return t.Type.String()
	}
}

func quoteLexeme(s string) string {
	return "`" + s + "`"
}

// binOpKind maps an operator token to its expression kind.
func binOpKind(tt TokenType) (lang.BinOpKind, bool) {
	switch tt {
	case TokenPlus:
		return lang.OpAdd, true
	case TokenMinus:
		return lang.OpSubtract, true
	case TokenStar:
		return lang.OpMultiply, true
	case TokenFwdSlash:
		return lang.OpDivide, true
	case TokenEqualEqual:
		return lang.OpEqual, true
	case TokenNotEqual:
		return lang.OpNotEqual, true
	case TokenLessThan:
		return lang.OpLess, true
	case TokenGreaterThan:
		return lang.OpGreater, true
	case TokenAnd:
		return lang.OpAnd, true
	case TokenOr:
		return lang.OpOr, true
	default:
		return 0, false
	}
}

// TokenSource is a pull-based stream of tokens. Next reports false once the
// stream is exhausted. Span returns the span of the token most recently
// returned by Next, or an empty span at the end of input after exhaustion.
type TokenSource interface {
	Next() (Token, bool)
	Span() lang.Span
}
