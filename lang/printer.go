package lang

import (
	"strings"
)

// String renders the block as source text on a single line.
func (b Block) String() string {
	if len(b.Stmts) == 0 {
		return "{ }"
	}
	var sb strings.Builder
	sb.WriteString("{")
	for _, s := range b.Stmts {
		sb.WriteString(" ")
		sb.WriteString(s.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// String renders the statement as source text. Parsing the result yields
// the same tree, spans aside.
func (s Stmt) String() string {
	switch k := s.Kind.(type) {
	case IfStmt:
		return "if (" + k.Cond.String() + ") " + k.Body.String()
	case FunctioStmt:
		names := make([]string, len(k.Params))
		for i, p := range k.Params {
			names[i] = p.Name
		}
		return "functio " + k.Iden.Name + "(" + strings.Join(names, ", ") + ") " + k.Body.String()
	case VarStmt:
		if k.Init == nil {
			return "var " + k.Iden.Name + ";"
		}
		return "var " + k.Iden.Name + " = " + k.Init.String() + ";"
	case MeloStmt:
		return "melo " + k.Iden.Name + ";"
	case LoopStmt:
		return "loop " + k.Body.String()
	case BreakStmt:
		return "break;"
	case HopBackStmt:
		return "hopback;"
	case PrintStmt:
		// A statement cannot begin with `!`.
		expr := k.Expr.String()
		if strings.HasPrefix(expr, "!") {
			expr = "(" + expr + ")"
		}
		return expr + " print;"
	case CallStmt:
		args := make([]string, len(k.Args))
		for i, a := range k.Args {
			args[i] = a.String()
		}
		return k.Iden.Name + "(" + strings.Join(args, ", ") + ");"
	default:
		return "<invalid statement>"
	}
}

// String renders the expression as source text. A right operand that is
// itself an operation is parenthesised, since chains only fold left.
func (e Expr) String() string {
	switch k := e.Kind.(type) {
	case LiteralExpr:
		return literalString(k.Value)
	case VariableExpr:
		return k.Name
	case NotExpr:
		return "!" + operandString(k.Operand)
	case BinOpExpr:
		return k.Lhs.String() + " " + k.Op.String() + " " + operandString(k.Rhs)
	default:
		return "<invalid expression>"
	}
}

func operandString(e Expr) string {
	if _, ok := e.Kind.(BinOpExpr); ok {
		return "(" + e.String() + ")"
	}
	return e.String()
}

func literalString(v Value) string {
	switch v.Type {
	case TypeStr:
		return quoteString(v.Str())
	default:
		return v.String()
	}
}
