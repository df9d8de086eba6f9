package lang

// Span is a half-open byte range [Start, End) within the source text.
type Span struct {
	Start int
	End   int
}

// Iden is an identifier together with the span where it occurred.
type Iden struct {
	Name string
	Span Span
}

// Expr is an expression node. Expressions never have side effects.
type Expr struct {
	Kind ExprKind
	Span Span
}

// ExprKind is implemented by every expression variant.
type ExprKind interface {
	exprKind()
}

// LiteralExpr is a constant value written in the source.
type LiteralExpr struct {
	Value Value
}

func (LiteralExpr) exprKind() {}

// VariableExpr reads the binding with the given name.
type VariableExpr struct {
	Name string
}

func (VariableExpr) exprKind() {}

// NotExpr negates its single operand.
type NotExpr struct {
	Operand Expr
}

func (NotExpr) exprKind() {}

// BinOpExpr applies a binary operator. All operators bind identically and
// chains fold to the left.
type BinOpExpr struct {
	Lhs Expr
	Rhs Expr
	Op  BinOpKind
}

func (BinOpExpr) exprKind() {}

// BinOpKind enumerates the binary operators.
type BinOpKind int

const (
	OpAdd BinOpKind = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpEqual
	OpNotEqual
	OpLess
	OpGreater
	OpAnd
	OpOr
)

func (k BinOpKind) String() string {
	switch k {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	default:
		return "unknown"
	}
}

// Stmt is a statement node.
type Stmt struct {
	Kind StmtKind
	Span Span
}

// StmtKind is implemented by every statement variant.
type StmtKind interface {
	stmtKind()
}

// Block is an ordered sequence of statements enclosed in braces.
type Block struct {
	Stmts []Stmt
}

// IfStmt runs Body when Cond holds. There is no else branch.
type IfStmt struct {
	Cond Expr
	Body Block
}

func (IfStmt) stmtKind() {}

// FunctioStmt defines a named native functio.
type FunctioStmt struct {
	Iden   Iden
	Params []Iden
	Body   Block
}

func (FunctioStmt) stmtKind() {}

// VarStmt declares a variable, optionally initialised.
type VarStmt struct {
	Iden Iden
	Init *Expr // may be nil
}

func (VarStmt) stmtKind() {}

// MeloStmt curses the named binding.
type MeloStmt struct {
	Iden Iden
}

func (MeloStmt) stmtKind() {}

// LoopStmt repeats Body forever.
type LoopStmt struct {
	Body Block
}

func (LoopStmt) stmtKind() {}

// BreakStmt leaves the innermost loop.
type BreakStmt struct{}

func (BreakStmt) stmtKind() {}

// HopBackStmt restarts the innermost loop iteration.
type HopBackStmt struct{}

func (HopBackStmt) stmtKind() {}

// PrintStmt writes the value of Expr.
type PrintStmt struct {
	Expr Expr
}

func (PrintStmt) stmtKind() {}

// CallStmt invokes the functio bound to Iden.
type CallStmt struct {
	Iden Iden
	Args []Expr
}

func (CallStmt) stmtKind() {}
