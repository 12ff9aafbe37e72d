package ast

import "github.com/sophie-lund/forge/pkg/source"

// ToMap renders any Node as a plain map[string]any following the
// serialization contract (a "type" discriminator, an optional
// "sourceRange", and the node's own fields), with every nested Node
// recursively converted too. JSON and CBOR encoding both build on this
// single representation so the two encodings never drift apart.
func ToMap(n Node) map[string]any {
	if n == nil {
		return nil
	}

	out := map[string]any{"type": n.TypeTag()}
	if r := encodeRange(n.SourceRange()); r != nil {
		out["sourceRange"] = map[string]any{
			"path":       r.Path,
			"line":       r.Line,
			"column":     r.Column,
			"offset":     r.Offset,
			"byteLength": r.ByteLength,
		}
	}

	for k, v := range mapFields(n) {
		out[k] = v
	}

	return out
}

func nodeListMap[T Node](nodes []T) []any {
	out := make([]any, len(nodes))
	for i, node := range nodes {
		out[i] = ToMap(node)
	}
	return out
}

func mapFields(n Node) map[string]any {
	switch t := n.(type) {
	case *TypeMissing:
		return map[string]any{}
	case *TypeBool:
		return map[string]any{}
	case *TypeInt:
		return map[string]any{"bitWidth": t.BitWidth, "signed": t.Signed}
	case *TypeFloat:
		return map[string]any{"bitWidth": t.BitWidth}
	case *TypePointer:
		return map[string]any{"derefType": ToMap(t.DerefType)}

	case *ExprBool:
		return map[string]any{"value": t.Value}
	case *ExprInt:
		return map[string]any{"value": intValueMap(t.Value)}
	case *ExprFloat:
		return map[string]any{"value": floatValueMap(t.Value)}
	case *ExprSymbol:
		return map[string]any{"name": t.Name}
	case *ExprUnary:
		return map[string]any{"operator": t.Operator.JSONName(), "operand": ToMap(t.Operand)}
	case *ExprBinary:
		return map[string]any{
			"operator": t.Operator.JSONName(),
			"left":     ToMap(t.Left),
			"right":    ToMap(t.Right),
		}
	case *ExprCall:
		return map[string]any{"callee": ToMap(t.Callee), "args": nodeListMap(t.Args)}

	case *StmtExpr:
		return map[string]any{"expr": ToMap(t.Expr)}
	case *StmtIf:
		return map[string]any{
			"condition": ToMap(t.Condition),
			"then":      ToMap(t.Then),
			"else":      ToMap(t.Else),
		}
	case *StmtWhile:
		return map[string]any{
			"condition": ToMap(t.Condition),
			"body":      ToMap(t.Body),
			"isDoWhile": t.IsDoWhile,
		}
	case *StmtReturn:
		return map[string]any{"value": ToMap(t.Value)}
	case *StmtContinue:
		return map[string]any{}
	case *StmtBreak:
		return map[string]any{}
	case *StmtBlock:
		return map[string]any{"stmts": nodeListMap(t.Stmts)}
	case *StmtDeclVar:
		return map[string]any{"decl": ToMap(t.Decl)}

	case *DeclVar:
		return map[string]any{
			"name":         t.Name,
			"type":         ToMap(t.Type),
			"initialValue": ToMap(t.InitialValue),
		}
	case *DeclFn:
		args := make([]any, len(t.Args))
		for i, a := range t.Args {
			args[i] = ToMap(a)
		}
		var body any
		if t.Body != nil {
			body = ToMap(t.Body)
		}
		return map[string]any{
			"name":       t.Name,
			"args":       args,
			"returnType": ToMap(t.ReturnType),
			"body":       body,
		}
	case *Program:
		return map[string]any{"decls": nodeListMap(t.Decls)}

	default:
		return map[string]any{}
	}
}

func intValueMap(v IntValue) map[string]any {
	switch v.Kind {
	case IntValueI8:
		return map[string]any{"type": "i8", "value": v.I8}
	case IntValueI16:
		return map[string]any{"type": "i16", "value": v.I16}
	case IntValueI32:
		return map[string]any{"type": "i32", "value": v.I32}
	case IntValueI64:
		return map[string]any{"type": "i64", "value": v.I64}
	case IntValueU8:
		return map[string]any{"type": "u8", "value": v.U8}
	case IntValueU16:
		return map[string]any{"type": "u16", "value": v.U16}
	case IntValueU32:
		return map[string]any{"type": "u32", "value": v.U32}
	case IntValueU64:
		return map[string]any{"type": "u64", "value": v.U64}
	default:
		return map[string]any{}
	}
}

func floatValueMap(v FloatValue) map[string]any {
	switch v.Kind {
	case FloatValueF32:
		return map[string]any{"type": "f32", "value": v.F32}
	case FloatValueF64:
		return map[string]any{"type": "f64", "value": v.F64}
	default:
		return map[string]any{}
	}
}

// sourceRangeJSON mirrors the original implementation's serialized
// SourceRange shape: a path, a 1-based line/column for the start, and a
// byte length, which together are enough to recover the exact span
// without re-running grapheme segmentation.
type sourceRangeJSON struct {
	Path       string `json:"path"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Offset     int    `json:"offset"`
	ByteLength int    `json:"byteLength"`
}

func encodeRange(r *source.Range) *sourceRangeJSON {
	if r == nil {
		return nil
	}
	return &sourceRangeJSON{
		Path:       r.First.Ref().Path(),
		Line:       r.First.Line(),
		Column:     r.First.Column(),
		Offset:     r.First.Offset(),
		ByteLength: r.ByteLength,
	}
}
