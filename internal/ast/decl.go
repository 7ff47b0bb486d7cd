package ast

// Declaration is one of the *...Decl types below, *AttributeSpec, *SubprogramBody or *RawDecl.
type Declaration interface {
	Row
	declNode()
}

// ObjectClass tells signal, constant, variable and shared variable declarations apart.
type ObjectClass uint8

const (
	ObjSignal ObjectClass = iota
	ObjConstant
	ObjVariable
	ObjSharedVariable
	ObjFile
)

// ObjectDecl: <class> names : subtype [:= init];
type ObjectDecl struct {
	Trivia
	Class   ObjectClass
	Keyword string // source spelling of the class keyword(s), e.g. "shared variable"
	Names   []string
	Subtype Subtype
	Default Expr
}

// TypeDecl: type name [is def];
type TypeDecl struct {
	Trivia
	Name string
	Def  TypeDef // nil for an incomplete type declaration
}

// TypeDef is one of *EnumTypeDef, *RangeTypeDef, *ArrayTypeDef, *RecordTypeDef, *AccessTypeDef.
type TypeDef interface {
	typeDefNode()
}

type EnumTypeDef struct {
	Literals []Expr // identifiers or character literals
}

type RangeTypeDef struct {
	Range Expr
	Units []*PhysicalUnit // physical types only
}

// PhysicalUnit: ns = 1000 ps; (the primary unit has no Value).
type PhysicalUnit struct {
	Trivia
	Name  string
	Value Expr
}

type ArrayTypeDef struct {
	Indexes []Expr // ranges, "natural range <>" or index subtypes
	Element Subtype
}

type RecordTypeDef struct {
	Fields   []*RecordField
	EndLabel string
	Tail     []Comment
}

type RecordField struct {
	Trivia
	Names   []string
	Subtype Subtype
}

type AccessTypeDef struct {
	Subtype Subtype
}

func (*EnumTypeDef) typeDefNode()   {}
func (*RangeTypeDef) typeDefNode()  {}
func (*ArrayTypeDef) typeDefNode()  {}
func (*RecordTypeDef) typeDefNode() {}
func (*AccessTypeDef) typeDefNode() {}

// SubtypeDecl: subtype name is indication;
type SubtypeDecl struct {
	Trivia
	Name    string
	Subtype Subtype
}

// AliasDecl: alias name [: subtype] is target;
type AliasDecl struct {
	Trivia
	Name    string
	Subtype *Subtype
	Target  Expr
}

// ComponentDecl: component name [is] generic/port clauses end component [name];
type ComponentDecl struct {
	Trivia
	Name     string
	Generics *GenericClause
	Ports    *PortClause
	EndLabel string
	Tail     []Comment
}

// AttributeDecl: attribute name : type_mark;
type AttributeDecl struct {
	Trivia
	Name     string
	TypeMark Expr
}

// AttributeSpec: attribute name of entities : class is value;
type AttributeSpec struct {
	Trivia
	Name     string
	Entities []Expr
	Class    string
	Value    Expr
}

// SubprogramSpec is the shared header of a function or procedure.
type SubprogramSpec struct {
	Kind   string // source spelling: function or procedure
	Purity string // pure, impure or ""
	Name   string // identifier or operator symbol string
	Params []*Port
	Tail   []Comment
	Return Expr
}

// SubprogramDecl: spec;
type SubprogramDecl struct {
	Trivia
	Spec SubprogramSpec
}

// SubprogramBody: spec is decls begin stmts end [kind] [label];
// The end is always printed with kind and name.
type SubprogramBody struct {
	Trivia
	Spec     SubprogramSpec
	Decls    []Declaration
	DeclTail []Comment
	Stmts    []SequentialStmt
	EndLabel string
	Tail     []Comment
}

// RawDecl keeps a declaration the parser does not model as its token texts.
type RawDecl struct {
	Trivia
	Tokens []RawToken
}

// RawToken is one token of an unmodelled construct.
type RawToken struct {
	Text      string
	IsKeyword bool
	IsIdent   bool
}

func (*ObjectDecl) declNode()     {}
func (*TypeDecl) declNode()       {}
func (*SubtypeDecl) declNode()    {}
func (*AliasDecl) declNode()      {}
func (*ComponentDecl) declNode()  {}
func (*AttributeDecl) declNode()  {}
func (*AttributeSpec) declNode()  {}
func (*SubprogramDecl) declNode() {}
func (*SubprogramBody) declNode() {}
func (*RawDecl) declNode()        {}
