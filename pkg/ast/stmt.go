package ast

import "github.com/sophie-lund/forge/pkg/source"

// Stmt is the closed sum type of Forge's statements.
type Stmt interface {
	Node
	isStmt()
}

// StmtExpr evaluates an expression for its side effects, discarding the
// result.
type StmtExpr struct {
	hasRange    bool
	sourceRange source.Range
	Expr        Expr
}

func NewStmtExpr(expr Expr) *StmtExpr { return &StmtExpr{Expr: expr} }
func NewStmtExprFromSource(r source.Range, expr Expr) *StmtExpr {
	return &StmtExpr{hasRange: true, sourceRange: r, Expr: expr}
}
func (s *StmtExpr) isStmt()                    {}
func (s *StmtExpr) TypeTag() string            { return "stmtExpr" }
func (s *StmtExpr) SourceRange() *source.Range { return rangePtr(s.sourceRange, s.hasRange) }
func (s *StmtExpr) Children() []Node           { return childrenFrom(s.Expr) }
func (s *StmtExpr) Equal(other Node) bool {
	o, ok := other.(*StmtExpr)
	return ok && nodeEqual(s.Expr, o.Expr)
}

// StmtDeclVar lifts a local `let` declaration into statement position.
type StmtDeclVar struct {
	Decl *DeclVar
}

func NewStmtDeclVar(decl *DeclVar) *StmtDeclVar { return &StmtDeclVar{Decl: decl} }

func (s *StmtDeclVar) isStmt()                    {}
func (s *StmtDeclVar) TypeTag() string            { return "stmtDeclVar" }
func (s *StmtDeclVar) SourceRange() *source.Range { return s.Decl.SourceRange() }
func (s *StmtDeclVar) Children() []Node           { return childrenFrom(s.Decl) }
func (s *StmtDeclVar) Equal(other Node) bool {
	o, ok := other.(*StmtDeclVar)
	return ok && nodeEqual(s.Decl, o.Decl)
}

// StmtIf is a conditional with an optional else branch.
type StmtIf struct {
	hasRange    bool
	sourceRange source.Range
	Condition   Expr
	Then        Stmt
	Else        Stmt
}

func NewStmtIf(condition Expr, then Stmt) *StmtIf {
	return &StmtIf{Condition: condition, Then: then}
}
func NewStmtIfFromSource(r source.Range, condition Expr, then Stmt) *StmtIf {
	return &StmtIf{hasRange: true, sourceRange: r, Condition: condition, Then: then}
}

// WithElse returns a copy of s with its else branch set.
func (s StmtIf) WithElse(elseStmt Stmt) *StmtIf {
	s.Else = elseStmt
	return &s
}

func (s *StmtIf) isStmt()                    {}
func (s *StmtIf) TypeTag() string            { return "stmtIf" }
func (s *StmtIf) SourceRange() *source.Range { return rangePtr(s.sourceRange, s.hasRange) }
func (s *StmtIf) Children() []Node {
	return childrenFrom(s.Condition, s.Then, s.Else)
}
func (s *StmtIf) Equal(other Node) bool {
	o, ok := other.(*StmtIf)
	return ok && nodeEqual(s.Condition, o.Condition) && nodeEqual(s.Then, o.Then) && nodeEqual(s.Else, o.Else)
}

// StmtWhile is a while loop, or a do-while loop when IsDoWhile is true.
type StmtWhile struct {
	hasRange    bool
	sourceRange source.Range
	Condition   Expr
	Body        Stmt
	IsDoWhile   bool
}

func NewStmtWhile(condition Expr, body Stmt) *StmtWhile {
	return &StmtWhile{Condition: condition, Body: body}
}
func NewStmtWhileFromSource(r source.Range, condition Expr, body Stmt) *StmtWhile {
	return &StmtWhile{hasRange: true, sourceRange: r, Condition: condition, Body: body}
}

// WithDoWhileEnabled returns a copy of s marked as a do-while loop.
func (s StmtWhile) WithDoWhileEnabled() *StmtWhile {
	s.IsDoWhile = true
	return &s
}

func (s *StmtWhile) isStmt()                    {}
func (s *StmtWhile) TypeTag() string            { return "stmtWhile" }
func (s *StmtWhile) SourceRange() *source.Range { return rangePtr(s.sourceRange, s.hasRange) }
func (s *StmtWhile) Children() []Node {
	return childrenFrom(s.Condition, s.Body)
}
func (s *StmtWhile) Equal(other Node) bool {
	o, ok := other.(*StmtWhile)
	return ok && s.IsDoWhile == o.IsDoWhile &&
		nodeEqual(s.Condition, o.Condition) && nodeEqual(s.Body, o.Body)
}

// StmtReturn returns from the enclosing function, optionally with a
// value.
type StmtReturn struct {
	hasRange    bool
	sourceRange source.Range
	Value       Expr
}

func NewStmtReturn() *StmtReturn { return &StmtReturn{} }
func NewStmtReturnFromSource(r source.Range) *StmtReturn {
	return &StmtReturn{hasRange: true, sourceRange: r}
}

// WithValue returns a copy of s with its return value set.
func (s StmtReturn) WithValue(value Expr) *StmtReturn {
	s.Value = value
	return &s
}

func (s *StmtReturn) isStmt()                    {}
func (s *StmtReturn) TypeTag() string            { return "stmtReturn" }
func (s *StmtReturn) SourceRange() *source.Range { return rangePtr(s.sourceRange, s.hasRange) }
func (s *StmtReturn) Children() []Node           { return childrenFrom(s.Value) }
func (s *StmtReturn) Equal(other Node) bool {
	o, ok := other.(*StmtReturn)
	return ok && nodeEqual(s.Value, o.Value)
}

// StmtContinue jumps to the next iteration of the enclosing loop.
type StmtContinue struct {
	hasRange    bool
	sourceRange source.Range
}

func NewStmtContinue() *StmtContinue { return &StmtContinue{} }
func NewStmtContinueFromSource(r source.Range) *StmtContinue {
	return &StmtContinue{hasRange: true, sourceRange: r}
}
func (s *StmtContinue) isStmt()                    {}
func (s *StmtContinue) TypeTag() string            { return "stmtContinue" }
func (s *StmtContinue) SourceRange() *source.Range { return rangePtr(s.sourceRange, s.hasRange) }
func (s *StmtContinue) Children() []Node           { return nil }
func (s *StmtContinue) Equal(other Node) bool {
	_, ok := other.(*StmtContinue)
	return ok
}

// StmtBreak exits the enclosing loop.
type StmtBreak struct {
	hasRange    bool
	sourceRange source.Range
}

func NewStmtBreak() *StmtBreak { return &StmtBreak{} }
func NewStmtBreakFromSource(r source.Range) *StmtBreak {
	return &StmtBreak{hasRange: true, sourceRange: r}
}
func (s *StmtBreak) isStmt()                    {}
func (s *StmtBreak) TypeTag() string            { return "stmtBreak" }
func (s *StmtBreak) SourceRange() *source.Range { return rangePtr(s.sourceRange, s.hasRange) }
func (s *StmtBreak) Children() []Node           { return nil }
func (s *StmtBreak) Equal(other Node) bool {
	_, ok := other.(*StmtBreak)
	return ok
}

// StmtBlock is an ordered sequence of statements in their own scope.
type StmtBlock struct {
	hasRange    bool
	sourceRange source.Range
	Stmts       []Stmt
}

func NewStmtBlock() *StmtBlock { return &StmtBlock{} }
func NewStmtBlockFromSource(r source.Range) *StmtBlock {
	return &StmtBlock{hasRange: true, sourceRange: r}
}

// WithAppendedStmt returns a copy of s with stmt appended.
func (s StmtBlock) WithAppendedStmt(stmt Stmt) *StmtBlock {
	next := make([]Stmt, len(s.Stmts)+1)
	copy(next, s.Stmts)
	next[len(s.Stmts)] = stmt
	s.Stmts = next
	return &s
}

// WithAppendedStmts returns a copy of s with stmts appended.
func (s StmtBlock) WithAppendedStmts(stmts ...Stmt) *StmtBlock {
	next := make([]Stmt, len(s.Stmts)+len(stmts))
	copy(next, s.Stmts)
	copy(next[len(s.Stmts):], stmts)
	s.Stmts = next
	return &s
}

// WithReplacedStmts returns a copy of s whose statement list is replaced
// entirely.
func (s StmtBlock) WithReplacedStmts(stmts []Stmt) *StmtBlock {
	s.Stmts = stmts
	return &s
}

func (s *StmtBlock) isStmt()                    {}
func (s *StmtBlock) TypeTag() string            { return "stmtBlock" }
func (s *StmtBlock) SourceRange() *source.Range { return rangePtr(s.sourceRange, s.hasRange) }
func (s *StmtBlock) Children() []Node {
	out := make([]Node, 0, len(s.Stmts))
	for _, st := range s.Stmts {
		out = append(out, childrenFrom(st)...)
	}
	return out
}
func (s *StmtBlock) Equal(other Node) bool {
	o, ok := other.(*StmtBlock)
	if !ok || len(s.Stmts) != len(o.Stmts) {
		return false
	}
	for i := range s.Stmts {
		if !nodeEqual(s.Stmts[i], o.Stmts[i]) {
			return false
		}
	}
	return true
}
