package casing

import "strings"

// Transform applies one style per token class. Names registered with
// AddConstant are cased as constants wherever they appear.
type Transform struct {
	Keywords    Style
	Constants   Style
	Identifiers Style

	constants map[string]struct{}
}

// NewTransform builds a transform with an empty constant set.
func NewTransform(keywords, constants, identifiers Style) *Transform {
	return &Transform{
		Keywords:    keywords,
		Constants:   constants,
		Identifiers: identifiers,
		constants:   make(map[string]struct{}),
	}
}

// AddConstant registers a constant or generic name; matching is case-insensitive.
func (t *Transform) AddConstant(name string) {
	if t.constants == nil {
		t.constants = make(map[string]struct{})
	}
	t.constants[strings.ToLower(name)] = struct{}{}
}

// IsConstant reports whether name was registered as a constant.
func (t *Transform) IsConstant(name string) bool {
	_, ok := t.constants[strings.ToLower(name)]
	return ok
}

func (t *Transform) Keyword(text string) string {
	return Apply(text, t.Keywords)
}

func (t *Transform) Constant(text string) string {
	return Apply(text, t.Constants)
}

func (t *Transform) Identifier(text string) string {
	return Apply(text, t.Identifiers)
}

// Name cases an identifier use: constants by the constant style, anything
// else by the identifier style.
func (t *Transform) Name(text string) string {
	if t.IsConstant(text) {
		return t.Constant(text)
	}
	return t.Identifier(text)
}
