// Package ast holds the VHDL syntax tree consumed by the formatter.
//
// The tree is strictly single-owner: every node is reachable from exactly one
// parent and nothing points back up. Node categories (design units,
// declarations, statements, expressions, constraints) are closed variant sets
// expressed as sealed interfaces; consumers switch over the concrete types.
//
// Names and keywords are stored with their source spelling. Casing is a
// rendering concern and never rewrites the tree.
package ast
