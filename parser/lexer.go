package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sergev/ablescript/lang"
)

// Lexer turns source text into tokens on demand. It implements TokenSource.
// Malformed input becomes a TokenIllegal token rather than an error, so the
// parser can report it with its span. A string literal still open at the
// end of input becomes TokenUnterminated.
type Lexer struct {
	src  string
	pos  int
	span lang.Span
}

// NewLexer creates a lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Span returns the span of the last token returned by Next.
func (lx *Lexer) Span() lang.Span {
	return lx.span
}

// Next returns the next token, or false at end of input.
func (lx *Lexer) Next() (Token, bool) {
	for {
		lx.skipWhitespace()
		if lx.pos >= len(lx.src) {
			lx.span = lang.Span{Start: len(lx.src), End: len(lx.src)}
			return Token{}, false
		}
		start := lx.pos
		r, ok := lx.readRune()
		if !ok {
			return lx.emit(TokenIllegal, start), true
		}

		switch {
		case isIdentifierStart(r):
			lx.scanIdentifier()
			lexeme := lx.src[start:lx.pos]
			if lexeme == "owo" {
				lx.skipLine()
				continue
			}
			return lx.emitWord(lexeme, start), true
		case unicode.IsDigit(r):
			return lx.scanInteger(start), true
		case r == '"':
			return lx.scanString(start), true
		}

		var tt TokenType
		switch r {
		case '+':
			tt = TokenPlus
		case '-':
			tt = TokenMinus
		case '*':
			tt = TokenStar
		case '/':
			tt = TokenFwdSlash
		case '<':
			tt = TokenLessThan
		case '>':
			tt = TokenGreaterThan
		case '&':
			tt = TokenAnd
		case '|':
			tt = TokenOr
		case '=':
			if lx.match('=') {
				tt = TokenEqualEqual
			} else {
				tt = TokenEqual
			}
		case '!':
			if lx.match('=') {
				tt = TokenNotEqual
			} else {
				tt = TokenNot
			}
		case ';':
			tt = TokenSemicolon
		case ',':
			tt = TokenComma
		case '(':
			tt = TokenLeftParen
		case ')':
			tt = TokenRightParen
		case '{':
			tt = TokenLeftCurly
		case '}':
			tt = TokenRightCurly
		default:
			tt = TokenIllegal
		}
		return lx.emit(tt, start), true
	}
}

func (lx *Lexer) emit(tt TokenType, start int) Token {
	lx.span = lang.Span{Start: start, End: lx.pos}
	return Token{
		Type:   tt,
		Lexeme: lx.src[start:lx.pos],
		Span:   lx.span,
	}
}

func (lx *Lexer) emitValue(tt TokenType, start int, val lang.Value) Token {
	tok := lx.emit(tt, start)
	tok.Value = val
	return tok
}

func (lx *Lexer) emitWord(lexeme string, start int) Token {
	switch lexeme {
	case "true", "false":
		return lx.emitValue(TokenBool, start, lang.BoolValue(lexeme == "true"))
	case "always":
		return lx.emitValue(TokenAbool, start, lang.AboolValue(lang.Always))
	case "sometimes":
		return lx.emitValue(TokenAbool, start, lang.AboolValue(lang.Sometimes))
	case "never":
		return lx.emitValue(TokenAbool, start, lang.AboolValue(lang.Never))
	case "nul":
		return lx.emitValue(TokenNul, start, lang.Nul())
	}
	if tt, ok := keywordToken(lexeme); ok {
		return lx.emit(tt, start)
	}
	return lx.emit(TokenIdentifier, start)
}

// readRune consumes one rune. It reports false on invalid UTF-8, after
// consuming the offending byte.
func (lx *Lexer) readRune() (rune, bool) {
	r, w := utf8.DecodeRuneInString(lx.src[lx.pos:])
	lx.pos += w
	if r == utf8.RuneError && w == 1 {
		return r, false
	}
	return r, true
}

func (lx *Lexer) peekRune() (rune, bool) {
	if lx.pos >= len(lx.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(lx.src[lx.pos:])
	return r, true
}

func (lx *Lexer) match(expected rune) bool {
	r, ok := lx.peekRune()
	if !ok || r != expected {
		return false
	}
	lx.pos += utf8.RuneLen(r)
	return true
}

func (lx *Lexer) skipWhitespace() {
	for {
		r, ok := lx.peekRune()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		lx.pos += utf8.RuneLen(r)
	}
}

func (lx *Lexer) skipLine() {
	if idx := strings.IndexByte(lx.src[lx.pos:], '\n'); idx >= 0 {
		lx.pos += idx + 1
		return
	}
	lx.pos = len(lx.src)
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func (lx *Lexer) scanIdentifier() {
	for {
		r, ok := lx.peekRune()
		if !ok || !isIdentifierPart(r) {
			return
		}
		lx.pos += utf8.RuneLen(r)
	}
}

func (lx *Lexer) scanInteger(start int) Token {
	for {
		r, ok := lx.peekRune()
		if !ok || !unicode.IsDigit(r) {
			break
		}
		lx.pos += utf8.RuneLen(r)
	}
	i, err := strconv.ParseInt(lx.src[start:lx.pos], 10, 32)
	if err != nil {
		return lx.emit(TokenIllegal, start)
	}
	return lx.emitValue(TokenInteger, start, lang.IntValue(int32(i)))
}

// scanString reads a double-quoted literal. A literal cut off by the end of
// input becomes TokenUnterminated; one with an unknown escape sequence
// becomes an illegal token covering the whole literal.
func (lx *Lexer) scanString(start int) Token {
	var (
		builder strings.Builder
		bad     bool
	)
	for {
		if lx.pos >= len(lx.src) {
			return lx.emit(TokenUnterminated, start)
		}
		r, ok := lx.readRune()
		if !ok {
			bad = true
			continue
		}
		if r == '"' {
			break
		}
		if r == '\\' {
			if lx.pos >= len(lx.src) {
				return lx.emit(TokenUnterminated, start)
			}
			esc, _ := lx.readRune()
			switch esc {
			case 'n':
				builder.WriteRune('\n')
			case 't':
				builder.WriteRune('\t')
			case '\\', '"':
				builder.WriteRune(esc)
			default:
				bad = true
			}
			continue
		}
		builder.WriteRune(r)
	}
	if bad {
		return lx.emit(TokenIllegal, start)
	}
	return lx.emitValue(TokenString, start, lang.StrValue(builder.String()))
}

func keywordToken(lexeme string) (TokenType, bool) {
	switch lexeme {
	case "if":
		return TokenIf, true
	case "functio":
		return TokenFunctio, true
	case "var":
		return TokenVar, true
	case "melo":
		return TokenMelo, true
	case "loop":
		return TokenLoop, true
	case "break":
		return TokenBreak, true
	case "hopback":
		return TokenHopBack, true
	case "print":
		return TokenPrint, true
	default:
		return TokenIllegal, false
	}
}
