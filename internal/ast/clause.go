package ast

// GenericClause is "generic ( ... );".
type GenericClause struct {
	Params []*GenericParam
	Tail   []Comment // comments before the closing parenthesis
}

// PortClause is "port ( ... );".
type PortClause struct {
	Ports []*Port
	Tail  []Comment
}

// GenericParam: names : subtype [:= default]. Class is an optional leading
// "constant" keyword in its source spelling.
type GenericParam struct {
	Trivia
	Class   string
	Names   []string
	Subtype Subtype
	Default Expr
}

// Port is an interface declaration with a mode. It also models subprogram
// parameters, where Class may be signal, variable, constant or file.
type Port struct {
	Trivia
	Class   string
	Names   []string
	Mode    string // in, out, inout, buffer, linkage or ""
	Subtype Subtype
	Default Expr
}

// Subtype is a subtype indication: [resolution] type_mark [constraint].
type Subtype struct {
	Resolution Expr
	TypeMark   Expr
	Constraint Constraint
}

// Constraint is one of *IndexConstraint, *RangeConstraint.
type Constraint interface {
	constraintNode()
}

// IndexConstraint: (7 downto 0, 3 downto 0).
type IndexConstraint struct {
	Ranges []Expr
}

// RangeConstraint: range 0 to 255.
type RangeConstraint struct {
	Range Expr
}

func (*IndexConstraint) constraintNode() {}
func (*RangeConstraint) constraintNode() {}
