package script

import (
	"fmt"
	"strings"
)

// Format renders a parsed statement tree back to source text. It is
// meant for diagnostics and tests, not for round-tripping byte-for-byte
// — literal values print in their canonical form rather than the
// original lexeme.
func Format(stmt Statement) string {
	var sb strings.Builder
	formatStatement(&sb, stmt, "")
	return sb.String()
}

func formatStatement(sb *strings.Builder, stmt Statement, indent string) {
	switch s := stmt.(type) {
	case *blockStatement:
		sb.WriteString(indent + "{\n")
		for _, inner := range s.statements {
			formatStatement(sb, inner, indent+"    ")
		}
		sb.WriteString(indent + "}\n")
	case *expressionStatement:
		sb.WriteString(fmt.Sprintf("%s%s;\n", indent, formatExpr(s.expr)))
	case *breakStatement:
		sb.WriteString(indent + "break;\n")
	case *continueStatement:
		sb.WriteString(indent + "continue;\n")
	case *returnStatement:
		if s.expr == nil {
			sb.WriteString(indent + "return;\n")
			return
		}
		sb.WriteString(fmt.Sprintf("%sreturn %s;\n", indent, formatExpr(s.expr)))
	case *whileStatement:
		sb.WriteString(fmt.Sprintf("%swhile (%s)\n", indent, formatExpr(s.condition)))
		formatStatement(sb, s.body, indent)
	case *forStatement:
		init, cond, update := "", "", ""
		if s.init != nil {
			init = strings.TrimSuffix(strings.TrimSpace(formatOneLine(s.init)), ";")
		}
		if s.condition != nil {
			cond = formatExpr(s.condition)
		}
		if s.update != nil {
			update = strings.TrimSuffix(strings.TrimSpace(formatOneLine(s.update)), ";")
		}
		sb.WriteString(fmt.Sprintf("%sfor (%s; %s; %s)\n", indent, init, cond, update))
		formatStatement(sb, s.body, indent)
	default:
		sb.WriteString(fmt.Sprintf("%s<unknown statement %T>\n", indent, stmt))
	}
}

func formatOneLine(stmt Statement) string {
	var sb strings.Builder
	formatStatement(&sb, stmt, "")
	return sb.String()
}

func formatExpr(e Expression) string {
	switch n := e.(type) {
	case *literalExpr:
		return n.value.String()
	case *binaryExpr:
		return fmt.Sprintf("(%s %s %s)", formatExpr(n.lhs), n.sym, formatExpr(n.rhs))
	case *logicalAndExpr:
		return fmt.Sprintf("(%s && %s)", formatExpr(n.lhs), formatExpr(n.rhs))
	case *logicalOrExpr:
		return fmt.Sprintf("(%s || %s)", formatExpr(n.lhs), formatExpr(n.rhs))
	case *unaryExpr:
		return fmt.Sprintf("(%s%s)", n.sym, formatExpr(n.operand))
	case *castExpr:
		return fmt.Sprintf("(%s)%s", n.target, formatExpr(n.operand))
	case *newArrayExpr:
		var dims strings.Builder
		for _, d := range n.dims {
			dims.WriteString(fmt.Sprintf("[%s]", formatExpr(d)))
		}
		return fmt.Sprintf("new %s%s", n.elemType, dims.String())
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}
