package ast

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Dump writes an indented outline of the tree: one line per row-level node,
// named by its Go type and, where it has one, its name or label.
func Dump(w io.Writer, f *DesignFile) {
	d := dumper{w: w}
	for _, u := range f.Units {
		for _, c := range UnitContext(u) {
			d.line(0, c, "")
		}
		d.unit(u)
	}
	if len(f.Trailing) > 0 {
		d.printf(0, "trailing comments: %d", len(f.Trailing))
	}
}

type dumper struct {
	w io.Writer
}

func (d *dumper) printf(depth int, format string, args ...any) {
	fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (d *dumper) line(depth int, n any, name string) {
	kind := reflect.TypeOf(n).Elem().Name()
	extra := ""
	if r, ok := n.(Row); ok {
		t := r.Comments()
		if len(t.Leading) > 0 {
			extra += fmt.Sprintf(" [%d comments]", len(t.Leading))
		}
		if t.Inline != "" {
			extra += " [inline]"
		}
	}
	if name != "" {
		d.printf(depth, "%s %s%s", kind, name, extra)
		return
	}
	d.printf(depth, "%s%s", kind, extra)
}

func (d *dumper) unit(u DesignUnit) {
	d.line(0, u, u.UnitName())
	switch u := u.(type) {
	case *Entity:
		d.generics(1, u.Generics)
		d.ports(1, u.Ports)
		d.decls(1, u.Decls)
		d.concurrent(1, u.Stmts)
	case *Architecture:
		d.decls(1, u.Decls)
		d.concurrent(1, u.Stmts)
	case *Package:
		d.generics(1, u.Generics)
		d.decls(1, u.Decls)
	case *PackageBody:
		d.decls(1, u.Decls)
	}
}

func (d *dumper) generics(depth int, c *GenericClause) {
	if c == nil {
		return
	}
	for _, g := range c.Params {
		d.line(depth, g, strings.Join(g.Names, ", "))
	}
}

func (d *dumper) ports(depth int, c *PortClause) {
	if c == nil {
		return
	}
	for _, p := range c.Ports {
		d.line(depth, p, strings.Join(p.Names, ", "))
	}
}

func (d *dumper) decls(depth int, decls []Declaration) {
	for _, decl := range decls {
		switch decl := decl.(type) {
		case *ObjectDecl:
			d.line(depth, decl, strings.Join(decl.Names, ", "))
		case *TypeDecl:
			d.line(depth, decl, decl.Name)
		case *SubtypeDecl:
			d.line(depth, decl, decl.Name)
		case *AliasDecl:
			d.line(depth, decl, decl.Name)
		case *ComponentDecl:
			d.line(depth, decl, decl.Name)
			d.generics(depth+1, decl.Generics)
			d.ports(depth+1, decl.Ports)
		case *AttributeDecl:
			d.line(depth, decl, decl.Name)
		case *AttributeSpec:
			d.line(depth, decl, decl.Name)
		case *SubprogramDecl:
			d.line(depth, decl, decl.Spec.Name)
		case *SubprogramBody:
			d.line(depth, decl, decl.Spec.Name)
			d.decls(depth+1, decl.Decls)
			d.sequential(depth+1, decl.Stmts)
		default:
			d.line(depth, decl, "")
		}
	}
}

func (d *dumper) concurrent(depth int, stmts []ConcurrentStmt) {
	for _, s := range stmts {
		switch s := s.(type) {
		case *Process:
			d.line(depth, s, s.Label)
			d.decls(depth+1, s.Decls)
			d.sequential(depth+1, s.Stmts)
		case *Instance:
			d.line(depth, s, s.Label)
		case *ForGenerate:
			d.line(depth, s, s.Label)
			d.decls(depth+1, s.Body.Decls)
			d.concurrent(depth+1, s.Body.Stmts)
		case *IfGenerate:
			d.line(depth, s, s.Label)
			for _, b := range s.Branches {
				d.decls(depth+1, b.Body.Decls)
				d.concurrent(depth+1, b.Body.Stmts)
			}
		default:
			d.line(depth, s, stmtLabel(s))
		}
	}
}

func (d *dumper) sequential(depth int, stmts []SequentialStmt) {
	for _, s := range stmts {
		d.line(depth, s, stmtLabel(s))
		switch s := s.(type) {
		case *IfStmt:
			for _, b := range s.Branches {
				d.sequential(depth+1, b.Stmts)
			}
		case *CaseStmt:
			for _, a := range s.Alts {
				d.sequential(depth+1, a.Stmts)
			}
		case *ForLoop:
			d.sequential(depth+1, s.Stmts)
		case *WhileLoop:
			d.sequential(depth+1, s.Stmts)
		case *Loop:
			d.sequential(depth+1, s.Stmts)
		}
	}
}

// stmtLabel returns the statement label through reflection on the Label field.
func stmtLabel(n any) string {
	v := reflect.ValueOf(n)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if f := v.FieldByName("Label"); f.IsValid() && f.Kind() == reflect.String {
		return f.String()
	}
	return ""
}
