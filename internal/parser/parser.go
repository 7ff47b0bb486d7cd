package parser

import (
	"fortio.org/safecast"

	"vhdlfmt/internal/ast"
	"vhdlfmt/internal/diag"
	"vhdlfmt/internal/lexer"
	"vhdlfmt/internal/source"
	"vhdlfmt/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser: состояние парсера на один файл
type Parser struct {
	toks     []token.Token // весь поток токенов, последний всегда EOF
	pos      int
	opts     Options
	lastSpan source.Span   // span последнего съеденного токена для лучшей диагностики
	pending  []ast.Comment // комментарии из середины конструкций, ждут ближайшей строки
}

// ParseFile: входная точка для разбора одного файла.
func ParseFile(lx *lexer.Lexer, opts Options) *ast.DesignFile {
	p := Parser{
		toks: lx.All(),
		opts: opts,
	}
	return p.parseDesignFile()
}

// Parse lexes and parses a source file, collecting diagnostics into bag.
func Parse(f *source.File, bag *diag.Bag) *ast.DesignFile {
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(f, lexer.Options{Reporter: rep})
	maxErrors, err := safecast.Conv[uint](bag.Cap())
	if err != nil {
		maxErrors = 0
	}
	return ParseFile(lx, Options{Reporter: rep, MaxErrors: maxErrors})
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

// parseDesignFile: основной цикл верхнего уровня: context items копятся и
// прикрепляются к ближайшему design unit.
func (p *Parser) parseDesignFile() *ast.DesignFile {
	file := &ast.DesignFile{}
	var context []ast.ContextItem

	for !p.at(token.EOF) {
		start := p.pos
		switch p.peek().Kind {
		case token.KwLibrary:
			context = append(context, p.parseLibraryClause())
		case token.KwUse:
			context = append(context, p.parseUseClause())
		case token.KwEntity, token.KwArchitecture, token.KwPackage:
			if u := p.parseUnit(context); u != nil {
				file.Units = append(file.Units, u)
			}
			context = nil
		default:
			p.report(diag.SynUnexpectedTopLevel, diag.SevError, p.diagSpan(),
				"expected a design unit, got \""+p.peek().Text+"\"")
			p.resyncTop()
		}
		if p.pos == start {
			p.advance()
		}
	}

	if len(context) > 0 {
		p.report(diag.SynUnexpectedTopLevel, diag.SevError, p.diagSpan(), "context clause is not followed by a design unit")
	}
	file.Trailing = p.tail()
	return file
}

func (p *Parser) parseUnit(context []ast.ContextItem) ast.DesignUnit {
	switch p.peek().Kind {
	case token.KwEntity:
		return p.parseEntity(context)
	case token.KwArchitecture:
		return p.parseArchitecture(context)
	case token.KwPackage:
		if p.peekN(1).Kind == token.KwBody {
			return p.parsePackageBody(context)
		}
		return p.parsePackage(context)
	}
	return nil
}

// resyncTop: восстановление после ошибки на верхнем уровне:
// прокручиваем до стартового токена следующего unit или EOF.
func (p *Parser) resyncTop() {
	for !p.at(token.EOF) {
		switch p.peek().Kind {
		case token.KwLibrary, token.KwUse, token.KwEntity, token.KwArchitecture, token.KwPackage:
			if p.atLineStart() {
				return
			}
		}
		p.advance()
	}
}
