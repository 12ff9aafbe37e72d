package ast

import "github.com/sophie-lund/forge/pkg/source"

// Decl is the closed sum type of Forge's top-level declarations.
type Decl interface {
	Node
	isDecl()
}

// DeclVar is a variable declaration, optionally typed and optionally
// initialized.
type DeclVar struct {
	hasRange     bool
	sourceRange  source.Range
	Name         string
	Type         Type
	InitialValue Expr
}

func NewDeclVar(name string) *DeclVar { return &DeclVar{Name: name} }
func NewDeclVarFromSource(r source.Range, name string) *DeclVar {
	return &DeclVar{hasRange: true, sourceRange: r, Name: name}
}

// WithType returns a copy of d with its declared type set.
func (d DeclVar) WithType(t Type) *DeclVar {
	d.Type = t
	return &d
}

// WithInitialValue returns a copy of d with its initializer set.
func (d DeclVar) WithInitialValue(value Expr) *DeclVar {
	d.InitialValue = value
	return &d
}

func (d *DeclVar) isDecl()                    {}
func (d *DeclVar) TypeTag() string            { return "declVar" }
func (d *DeclVar) SourceRange() *source.Range { return rangePtr(d.sourceRange, d.hasRange) }
func (d *DeclVar) Children() []Node {
	return childrenFrom(d.Type, d.InitialValue)
}
func (d *DeclVar) Equal(other Node) bool {
	o, ok := other.(*DeclVar)
	return ok && d.Name == o.Name && nodeEqual(d.Type, o.Type) && nodeEqual(d.InitialValue, o.InitialValue)
}

// DeclFn is a function declaration: a name, its parameters (each a
// DeclVar), an optional return type, and an optional body (absent for a
// forward declaration).
type DeclFn struct {
	hasRange    bool
	sourceRange source.Range
	Name        string
	Args        []*DeclVar
	ReturnType  Type
	Body        *StmtBlock
}

func NewDeclFn(name string) *DeclFn { return &DeclFn{Name: name} }
func NewDeclFnFromSource(r source.Range, name string) *DeclFn {
	return &DeclFn{hasRange: true, sourceRange: r, Name: name}
}

// WithAppendedArg returns a copy of d with arg appended to its parameter
// list.
func (d DeclFn) WithAppendedArg(arg *DeclVar) *DeclFn {
	next := make([]*DeclVar, len(d.Args)+1)
	copy(next, d.Args)
	next[len(d.Args)] = arg
	d.Args = next
	return &d
}

// WithAppendedArgs returns a copy of d with args appended.
func (d DeclFn) WithAppendedArgs(args ...*DeclVar) *DeclFn {
	next := make([]*DeclVar, len(d.Args)+len(args))
	copy(next, d.Args)
	copy(next[len(d.Args):], args)
	d.Args = next
	return &d
}

// WithReplacedArgs returns a copy of d whose parameter list is replaced
// entirely.
func (d DeclFn) WithReplacedArgs(args []*DeclVar) *DeclFn {
	d.Args = args
	return &d
}

// WithReturnType returns a copy of d with its return type set.
func (d DeclFn) WithReturnType(t Type) *DeclFn {
	d.ReturnType = t
	return &d
}

// WithBody returns a copy of d with its body set.
func (d DeclFn) WithBody(body *StmtBlock) *DeclFn {
	d.Body = body
	return &d
}

func (d *DeclFn) isDecl()                    {}
func (d *DeclFn) TypeTag() string            { return "declFn" }
func (d *DeclFn) SourceRange() *source.Range { return rangePtr(d.sourceRange, d.hasRange) }
func (d *DeclFn) Children() []Node {
	out := make([]Node, 0, len(d.Args)+2)
	for _, a := range d.Args {
		out = append(out, childrenFrom(a)...)
	}
	out = append(out, childrenFrom(d.ReturnType)...)
	if d.Body != nil {
		out = append(out, childrenFrom(d.Body)...)
	}
	return out
}
func (d *DeclFn) Equal(other Node) bool {
	o, ok := other.(*DeclFn)
	if !ok || d.Name != o.Name || len(d.Args) != len(o.Args) {
		return false
	}
	for i := range d.Args {
		if !nodeEqual(d.Args[i], o.Args[i]) {
			return false
		}
	}
	if !nodeEqual(d.ReturnType, o.ReturnType) {
		return false
	}
	if (d.Body == nil) != (o.Body == nil) {
		return false
	}
	if d.Body != nil && !d.Body.Equal(o.Body) {
		return false
	}
	return true
}

// Program is the root node: an ordered sequence of top-level
// declarations.
type Program struct {
	hasRange    bool
	sourceRange source.Range
	Decls       []Decl
}

func NewProgram() *Program { return &Program{} }
func NewProgramFromSource(r source.Range) *Program {
	return &Program{hasRange: true, sourceRange: r}
}

// WithAppendedDecl returns a copy of p with decl appended.
func (p Program) WithAppendedDecl(decl Decl) *Program {
	next := make([]Decl, len(p.Decls)+1)
	copy(next, p.Decls)
	next[len(p.Decls)] = decl
	p.Decls = next
	return &p
}

func (p *Program) TypeTag() string            { return "program" }
func (p *Program) SourceRange() *source.Range { return rangePtr(p.sourceRange, p.hasRange) }
func (p *Program) Children() []Node {
	out := make([]Node, 0, len(p.Decls))
	for _, d := range p.Decls {
		out = append(out, childrenFrom(d)...)
	}
	return out
}
func (p *Program) Equal(other Node) bool {
	o, ok := other.(*Program)
	if !ok || len(p.Decls) != len(o.Decls) {
		return false
	}
	for i := range p.Decls {
		if !nodeEqual(p.Decls[i], o.Decls[i]) {
			return false
		}
	}
	return true
}
