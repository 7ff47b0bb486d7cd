// Package diag defines the diagnostic model shared by the lexer, parser and
// configuration loader.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages.
//
// Producers emit through the Reporter interface; Bag collects diagnostics with
// a hard cap and offers deterministic ordering (Sort) and deduplication.
// Rendering lives in format.go and never touches the filesystem.
package diag
