// Package format prints a VHDL design file as a doc.Doc and lays it out.
//
// Назначение: канонический pretty-print всего файла: отступы, выравнивание,
// регистр, перенос строк по ширине.
// Не делает: IO, поиск файлов, разбор конфигурации.
// Зависимости: internal/ast, internal/doc, internal/layout, internal/align,
// internal/casing, internal/config.
package format
