package format

import (
	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/casing"
)

// collectConstants registers every generic and constant name of the file,
// wherever it is declared.
func collectConstants(f *ast.DesignFile, tr *casing.Transform) {
	c := collector{tr: tr}
	for _, u := range f.Units {
		switch u := u.(type) {
		case *ast.Entity:
			c.generics(u.Generics)
			c.decls(u.Decls)
			c.concurrent(u.Stmts)
		case *ast.Architecture:
			c.decls(u.Decls)
			c.concurrent(u.Stmts)
		case *ast.Package:
			c.generics(u.Generics)
			c.decls(u.Decls)
		case *ast.PackageBody:
			c.decls(u.Decls)
		}
	}
}

type collector struct {
	tr *casing.Transform
}

func (c collector) generics(g *ast.GenericClause) {
	if g == nil {
		return
	}
	for _, param := range g.Params {
		for _, n := range param.Names {
			c.tr.AddConstant(n)
		}
	}
}

func (c collector) decls(decls []ast.Declaration) {
	for _, d := range decls {
		switch d := d.(type) {
		case *ast.ObjectDecl:
			if d.Class != ast.ObjConstant {
				continue
			}
			for _, n := range d.Names {
				c.tr.AddConstant(n)
			}
		case *ast.ComponentDecl:
			c.generics(d.Generics)
		case *ast.SubprogramBody:
			c.decls(d.Decls)
		}
	}
}

func (c collector) concurrent(stmts []ast.ConcurrentStmt) {
	for _, s := range stmts {
		switch s := s.(type) {
		case *ast.Process:
			c.decls(s.Decls)
		case *ast.ForGenerate:
			c.decls(s.Body.Decls)
			c.concurrent(s.Body.Stmts)
		case *ast.IfGenerate:
			for _, br := range s.Branches {
				c.decls(br.Body.Decls)
				c.concurrent(br.Body.Stmts)
			}
		}
	}
}
