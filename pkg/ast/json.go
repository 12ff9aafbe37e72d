package ast

import "encoding/json"

// MarshalNode renders n as the tagged JSON record described by the
// serialization contract.
func MarshalNode(n Node) ([]byte, error) {
	return json.Marshal(ToMap(n))
}

func (t *TypeMissing) MarshalJSON() ([]byte, error)  { return MarshalNode(t) }
func (t *TypeBool) MarshalJSON() ([]byte, error)     { return MarshalNode(t) }
func (t *TypeInt) MarshalJSON() ([]byte, error)      { return MarshalNode(t) }
func (t *TypeFloat) MarshalJSON() ([]byte, error)    { return MarshalNode(t) }
func (t *TypePointer) MarshalJSON() ([]byte, error)  { return MarshalNode(t) }
func (e *ExprBool) MarshalJSON() ([]byte, error)     { return MarshalNode(e) }
func (e *ExprInt) MarshalJSON() ([]byte, error)      { return MarshalNode(e) }
func (e *ExprFloat) MarshalJSON() ([]byte, error)    { return MarshalNode(e) }
func (e *ExprSymbol) MarshalJSON() ([]byte, error)   { return MarshalNode(e) }
func (e *ExprUnary) MarshalJSON() ([]byte, error)    { return MarshalNode(e) }
func (e *ExprBinary) MarshalJSON() ([]byte, error)   { return MarshalNode(e) }
func (e *ExprCall) MarshalJSON() ([]byte, error)     { return MarshalNode(e) }
func (s *StmtExpr) MarshalJSON() ([]byte, error)     { return MarshalNode(s) }
func (s *StmtIf) MarshalJSON() ([]byte, error)       { return MarshalNode(s) }
func (s *StmtWhile) MarshalJSON() ([]byte, error)    { return MarshalNode(s) }
func (s *StmtReturn) MarshalJSON() ([]byte, error)   { return MarshalNode(s) }
func (s *StmtContinue) MarshalJSON() ([]byte, error) { return MarshalNode(s) }
func (s *StmtBreak) MarshalJSON() ([]byte, error)    { return MarshalNode(s) }
func (s *StmtBlock) MarshalJSON() ([]byte, error)    { return MarshalNode(s) }
func (s *StmtDeclVar) MarshalJSON() ([]byte, error)  { return MarshalNode(s) }
func (d *DeclVar) MarshalJSON() ([]byte, error)      { return MarshalNode(d) }
func (d *DeclFn) MarshalJSON() ([]byte, error)       { return MarshalNode(d) }
func (p *Program) MarshalJSON() ([]byte, error)      { return MarshalNode(p) }
