package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	Ident        // identifier
	ExtIdent     // extended identifier \name\
	DecimalLit   // decimal literal, integer or real
	BasedLit     // based literal 16#FF#
	CharLit      // character literal 'x'
	StringLit    // string literal
	BitStringLit // bit string literal X"FF"

	// Delimiters and operators.

	Amp        // &
	Tick       // '
	LParen     // (
	RParen     // )
	Star       // *
	Plus       // +
	Comma      // ,
	Minus      // -
	Dot        // .
	Slash      // /
	Colon      // :
	Semicolon  // ;
	Lt         // <
	Eq         // =
	Gt         // >
	Bar        // |
	LBracket   // [
	RBracket   // ]
	Question   // ?
	At         // @
	Caret      // ^
	Arrow      // =>
	StarStar   // **
	VarAssign  // :=
	NotEq      // /=
	GtEq       // >=
	LtEq       // <=
	Box        // <>
	Cond       // ??
	MatchEq    // ?=
	MatchNotEq // ?/=
	MatchLt    // ?<
	MatchLtEq  // ?<=
	MatchGt    // ?>
	MatchGtEq  // ?>=
	DoubleLt   // <<
	DoubleGt   // >>

	kwBegin
	KwAbs
	KwAccess
	KwAfter
	KwAlias
	KwAll
	KwAnd
	KwArchitecture
	KwArray
	KwAssert
	KwAttribute
	KwBegin
	KwBlock
	KwBody
	KwBuffer
	KwBus
	KwCase
	KwComponent
	KwConfiguration
	KwConstant
	KwContext
	KwDefault
	KwDisconnect
	KwDownto
	KwElse
	KwElsif
	KwEnd
	KwEntity
	KwExit
	KwFile
	KwFor
	KwForce
	KwFunction
	KwGenerate
	KwGeneric
	KwGroup
	KwGuarded
	KwIf
	KwImpure
	KwIn
	KwInertial
	KwInout
	KwIs
	KwLabel
	KwLibrary
	KwLinkage
	KwLiteral
	KwLoop
	KwMap
	KwMod
	KwNand
	KwNew
	KwNext
	KwNor
	KwNot
	KwNull
	KwOf
	KwOn
	KwOpen
	KwOr
	KwOthers
	KwOut
	KwPackage
	KwParameter
	KwPort
	KwPostponed
	KwProcedure
	KwProcess
	KwProtected
	KwPure
	KwRange
	KwRecord
	KwRegister
	KwReject
	KwRelease
	KwRem
	KwReport
	KwReturn
	KwRol
	KwRor
	KwSelect
	KwSeverity
	KwShared
	KwSignal
	KwSla
	KwSll
	KwSra
	KwSrl
	KwSubtype
	KwThen
	KwTo
	KwTransport
	KwType
	KwUnaffected
	KwUnits
	KwUntil
	KwUse
	KwVariable
	KwWait
	KwWhen
	KwWhile
	KwWith
	KwXnor
	KwXor
	kwEnd
)

var kindNames = [...]string{
	Invalid: "Invalid",
	EOF:     "EOF",
	Ident:        "Ident",
	ExtIdent:     "ExtIdent",
	DecimalLit:   "DecimalLit",
	BasedLit:     "BasedLit",
	CharLit:      "CharLit",
	StringLit:    "StringLit",
	BitStringLit: "BitStringLit",
	Amp:          "Amp",
	Tick:         "Tick",
	LParen:       "LParen",
	RParen:       "RParen",
	Star:         "Star",
	Plus:         "Plus",
	Comma:        "Comma",
	Minus:        "Minus",
	Dot:          "Dot",
	Slash:        "Slash",
	Colon:        "Colon",
	Semicolon:    "Semicolon",
	Lt:           "Lt",
	Eq:           "Eq",
	Gt:           "Gt",
	Bar:          "Bar",
	LBracket:     "LBracket",
	RBracket:     "RBracket",
	Question:     "Question",
	At:           "At",
	Caret:        "Caret",
	Arrow:        "Arrow",
	StarStar:     "StarStar",
	VarAssign:    "VarAssign",
	NotEq:        "NotEq",
	GtEq:         "GtEq",
	LtEq:         "LtEq",
	Box:          "Box",
	Cond:         "Cond",
	MatchEq:      "MatchEq",
	MatchNotEq:   "MatchNotEq",
	MatchLt:      "MatchLt",
	MatchLtEq:    "MatchLtEq",
	MatchGt:      "MatchGt",
	MatchGtEq:    "MatchGtEq",
	DoubleLt:     "DoubleLt",
	DoubleGt:     "DoubleGt",
}

func (k Kind) String() string {
	if k.IsKeyword() {
		return "Kw(" + keywordText[k] + ")"
	}
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k > kwBegin && k < kwEnd
}
