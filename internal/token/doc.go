// Package token defines lexical token kinds and trivia for VHDL sources.
// Invariants:
//   - Token.Text is the exact source slice; keywords keep their original case.
//   - Keyword lookup is case-insensitive; KeywordText gives the canonical spelling.
//   - Comments and whitespace are never tokens; they travel as Leading trivia
//     of the next significant token.
//   - Character literals and the attribute tick share the ' delimiter; the
//     lexer disambiguates from the previous token.
package token
