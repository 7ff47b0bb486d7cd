package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedExtIdent     Code = 1005
	LexBadBitString             Code = 1006

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectIdentifier   Code = 2002
	SynExpectSemicolon    Code = 2003
	SynExpectKeyword      Code = 2004
	SynUnclosedParen      Code = 2005
	SynUnexpectedTopLevel Code = 2006
	SynExpectExpression   Code = 2007
	SynEndLabelMismatch   Code = 2008
	SynExpectStatement    Code = 2009
	SynExpectDeclaration  Code = 2010

	// Конфигурация
	CfgInfo          Code = 3000
	CfgUnknownKey    Code = 3001
	CfgInvalidValue  Code = 3002
	CfgVersionPinned Code = 3003
	CfgDecodeFailed  Code = 3004
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed numeric literal",
	LexUnterminatedExtIdent:     "Unterminated extended identifier",
	LexBadBitString:             "Malformed bit string literal",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectSemicolon:          "Expected semicolon",
	SynExpectKeyword:            "Expected keyword",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnexpectedTopLevel:       "Unexpected token at design unit level",
	SynExpectExpression:         "Expected expression",
	SynEndLabelMismatch:         "End label does not match unit name",
	SynExpectStatement:          "Expected statement",
	SynExpectDeclaration:        "Expected declaration",
	CfgInfo:                     "Configuration information",
	CfgUnknownKey:               "Unknown configuration key",
	CfgInvalidValue:             "Invalid configuration value",
	CfgVersionPinned:            "Formatter version does not satisfy required_version",
	CfgDecodeFailed:             "Configuration file could not be decoded",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("CFG%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
