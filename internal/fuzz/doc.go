// Package fuzztests houses Go fuzz harnesses for the formatter pipeline
// (source -> lexer -> parser -> printer -> layout). They guard against
// panics, hangs and output that no longer parses.
//
// Назначение: прогонять произвольные байты через FileSet, лексер, парсер
// и форматтер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
