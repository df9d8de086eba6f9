package main

import (
	"fmt"

	"github.com/sergev/ablescript/lang"
	"gopkg.in/yaml.v3"
)

// dumpYAML renders statements as a YAML document describing the tree.
func dumpYAML(stmts []lang.Stmt) ([]byte, error) {
	nodes := make([]map[string]any, len(stmts))
	for i, s := range stmts {
		nodes[i] = stmtNode(s)
	}
	data, err := yaml.Marshal(nodes)
	if err != nil {
		return nil, fmt.Errorf("dump yaml: %w", err)
	}
	return data, nil
}

func spanNode(s lang.Span) []int {
	return []int{s.Start, s.End}
}

func blockNode(b lang.Block) []map[string]any {
	out := make([]map[string]any, len(b.Stmts))
	for i, s := range b.Stmts {
		out[i] = stmtNode(s)
	}
	return out
}

func stmtNode(s lang.Stmt) map[string]any {
	node := map[string]any{"span": spanNode(s.Span)}
	switch k := s.Kind.(type) {
	case lang.IfStmt:
		node["stmt"] = "if"
		node["cond"] = exprNode(k.Cond)
		node["body"] = blockNode(k.Body)
	case lang.FunctioStmt:
		params := make([]string, len(k.Params))
		for i, p := range k.Params {
			params[i] = p.Name
		}
		node["stmt"] = "functio"
		node["name"] = k.Iden.Name
		node["params"] = params
		node["body"] = blockNode(k.Body)
	case lang.VarStmt:
		node["stmt"] = "var"
		node["name"] = k.Iden.Name
		if k.Init != nil {
			node["init"] = exprNode(*k.Init)
		}
	case lang.MeloStmt:
		node["stmt"] = "melo"
		node["name"] = k.Iden.Name
	case lang.LoopStmt:
		node["stmt"] = "loop"
		node["body"] = blockNode(k.Body)
	case lang.BreakStmt:
		node["stmt"] = "break"
	case lang.HopBackStmt:
		node["stmt"] = "hopback"
	case lang.PrintStmt:
		node["stmt"] = "print"
		node["expr"] = exprNode(k.Expr)
	case lang.CallStmt:
		args := make([]map[string]any, len(k.Args))
		for i, a := range k.Args {
			args[i] = exprNode(a)
		}
		node["stmt"] = "call"
		node["name"] = k.Iden.Name
		node["args"] = args
	}
	return node
}

func exprNode(e lang.Expr) map[string]any {
	node := map[string]any{"span": spanNode(e.Span)}
	switch k := e.Kind.(type) {
	case lang.LiteralExpr:
		node["expr"] = "literal"
		node["type"] = k.Value.Type.String()
		node["value"] = k.Value.String()
	case lang.VariableExpr:
		node["expr"] = "variable"
		node["name"] = k.Name
	case lang.NotExpr:
		node["expr"] = "not"
		node["operand"] = exprNode(k.Operand)
	case lang.BinOpExpr:
		node["expr"] = "binop"
		node["op"] = k.Op.String()
		node["lhs"] = exprNode(k.Lhs)
		node["rhs"] = exprNode(k.Rhs)
	}
	return node
}
