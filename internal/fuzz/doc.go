// Package fuzztests houses Go fuzz harnesses that exercise the apexts
// conversion pipeline (source -> lexer -> parser -> emit). Its goal is to
// smoke test robustness and guard against panics or hangs on arbitrary
// .cls inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер, парсер и эмиттер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/emit,
// internal/diag, internal/testkit.

package fuzztests
