package lang

import (
	"strings"
	"testing"
)

func TestEnvParentLookupAndErrors(t *testing.T) {
	parent := NewEnv(nil)
	parent.Declare("x", IntValue(1))
	child := NewEnv(parent)

	if err := child.Set("x", IntValue(2)); err != nil {
		t.Fatalf("Set should update parent binding: %v", err)
	}
	val, err := parent.Get("x")
	if err != nil || val.Int() != 2 {
		t.Fatalf("expected parent value updated to 2, got %v err=%v", val, err)
	}

	if err := child.Set("missing", IntValue(0)); err == nil || !strings.Contains(err.Error(), "unbound variable") {
		t.Fatalf("expected error updating missing binding, got %v", err)
	}

	if _, err := child.Lookup("missing"); err == nil || !strings.Contains(err.Error(), "unbound variable") {
		t.Fatalf("expected error fetching missing binding, got %v", err)
	}

	if child.Parent() != parent {
		t.Fatalf("expected Parent to expose enclosing environment")
	}
}

func TestAliasSharesStorageButNotMelo(t *testing.T) {
	orig := NewVariable(StrValue("before"))
	alias := orig.Alias()

	if !orig.SharesStorage(alias) {
		t.Fatalf("expected alias to share storage")
	}
	alias.Set(IntValue(7))
	if got := orig.Get(); !got.Equal(IntValue(7)) {
		t.Fatalf("expected write through alias to be visible, got %v", got)
	}
	orig.Set(BoolValue(true))
	if got := alias.Get(); !got.Equal(BoolValue(true)) {
		t.Fatalf("expected write through original to be visible, got %v", got)
	}

	orig.SetMelo(true)
	if !orig.Melo() {
		t.Fatalf("expected original to be cursed")
	}
	if alias.Melo() {
		t.Fatalf("expected alias to stay uncursed")
	}
}

func TestFreshVariablesDoNotShareStorage(t *testing.T) {
	a := NewVariable(IntValue(1))
	b := NewVariable(IntValue(1))
	if a.SharesStorage(b) || a.SharesStorage(nil) {
		t.Fatalf("expected independent storage")
	}
	a.Set(IntValue(2))
	if b.Get().Int() != 1 {
		t.Fatalf("expected b to keep its value, got %v", b.Get())
	}
}

func TestAliasAcrossScopes(t *testing.T) {
	global := NewEnv(nil)
	arg := global.Declare("n", IntValue(1))

	// A callee frame binds its parameter to the caller's storage.
	frame := NewEnv(global)
	frame.Define("param", arg.Alias())
	if err := frame.Set("param", IntValue(5)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if got, _ := global.Get("n"); got.Int() != 5 {
		t.Fatalf("expected caller to observe 5, got %v", got)
	}

	param, _ := frame.Lookup("param")
	param.SetMelo(true)
	if n, _ := global.Lookup("n"); n.Melo() {
		t.Fatalf("expected cursing the parameter not to curse the caller's binding")
	}

	// Shadowing in the frame leaves the outer binding untouched.
	frame.Declare("n", StrValue("inner"))
	if got, _ := global.Get("n"); got.Int() != 5 {
		t.Fatalf("expected outer n unchanged, got %v", got)
	}
}

func TestBase55(t *testing.T) {
	var got []int32
	for _, r := range "AbleScript" {
		got = append(got, CharToNum(r))
	}
	want := []int32{-1, 2, 12, 5, -19, 3, 18, 9, 16, 20}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	if CharToNum('U') != -210 || NumToChar(-210) != 'U' {
		t.Fatalf("expected U to map to -210 both ways")
	}
	if NumToChar(-21) != ' ' {
		t.Fatalf("expected -21 to be unmapped")
	}
	if CharToNum('?') != 0 || NumToChar(1000) != ' ' {
		t.Fatalf("expected out-of-table inputs to map to 0 and space")
	}
	for _, r := range "abcxyzABCXYZ /\\." {
		if back := NumToChar(CharToNum(r)); back != r {
			t.Fatalf("expected %q to round trip, got %q", r, back)
		}
	}
}

func TestPrinterParenthesisesRightOperations(t *testing.T) {
	a := Expr{Kind: VariableExpr{Name: "a"}}
	b := Expr{Kind: VariableExpr{Name: "b"}}
	c := Expr{Kind: LiteralExpr{Value: StrValue("q\"")}}

	left := Expr{Kind: BinOpExpr{Lhs: Expr{Kind: BinOpExpr{Lhs: a, Rhs: b, Op: OpAdd}}, Rhs: c, Op: OpMultiply}}
	if got, want := left.String(), `a + b * "q\""`; got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}

	right := Expr{Kind: BinOpExpr{Lhs: a, Rhs: Expr{Kind: BinOpExpr{Lhs: b, Rhs: c, Op: OpOr}}, Op: OpAnd}}
	if got, want := right.String(), `a & (b | "q\"")`; got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}

	not := Expr{Kind: NotExpr{Operand: Expr{Kind: BinOpExpr{Lhs: a, Rhs: b, Op: OpLess}}}}
	if got, want := not.String(), "!(a < b)"; got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
