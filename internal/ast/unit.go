package ast

// DesignFile is the root: design units in source order plus comments after the last one.
type DesignFile struct {
	Units    []DesignUnit
	Trailing []Comment
}

// DesignUnit is one of *Entity, *Architecture, *Package, *PackageBody.
type DesignUnit interface {
	Row
	UnitName() string
	unitNode()
}

// ContextItem is one of *LibraryClause, *UseClause.
type ContextItem interface {
	Row
	contextNode()
}

type LibraryClause struct {
	Trivia
	Names []string
}

type UseClause struct {
	Trivia
	Names []Expr // selected names: ieee.std_logic_1164.all
}

type Entity struct {
	Trivia
	Context  []ContextItem
	Name     string
	Generics *GenericClause
	Ports    *PortClause
	Decls    []Declaration
	HasBegin bool
	Stmts    []ConcurrentStmt
	EndLabel string
	Tail     []Comment // comments before "end"
}

type Architecture struct {
	Trivia
	Context    []ContextItem
	Name       string
	EntityName string
	Decls      []Declaration
	DeclTail   []Comment // comments before "begin"
	Stmts      []ConcurrentStmt
	EndLabel   string
	Tail       []Comment
}

type Package struct {
	Trivia
	Context  []ContextItem
	Name     string
	Generics *GenericClause
	Decls    []Declaration
	EndLabel string
	Tail     []Comment
}

type PackageBody struct {
	Trivia
	Context  []ContextItem
	Name     string
	Decls    []Declaration
	EndLabel string
	Tail     []Comment
}

func (u *Entity) UnitName() string       { return u.Name }
func (u *Architecture) UnitName() string { return u.Name }
func (u *Package) UnitName() string      { return u.Name }
func (u *PackageBody) UnitName() string  { return u.Name }

func (*Entity) unitNode()       {}
func (*Architecture) unitNode() {}
func (*Package) unitNode()      {}
func (*PackageBody) unitNode()  {}

func (*LibraryClause) contextNode() {}
func (*UseClause) contextNode()     {}

// a use clause may also appear in any declarative part
func (*UseClause) declNode() {}

// UnitContext returns the context clause that precedes a unit.
func UnitContext(u DesignUnit) []ContextItem {
	switch u := u.(type) {
	case *Entity:
		return u.Context
	case *Architecture:
		return u.Context
	case *Package:
		return u.Context
	case *PackageBody:
		return u.Context
	}
	return nil
}

// EndName is the label printed after "end <kind>": the explicit label or the unit name.
func EndName(label, name string) string {
	if label != "" {
		return label
	}
	return name
}
