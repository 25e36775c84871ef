// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cubes

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Diagnostic represents a tokenizer or parser error/warning
// with a span in the original source.
type Diagnostic struct {
	Severity slog.Level // Error, Warning, Info
	Message  string     // "expected ':', found Number(3)"
	Span     Span       // where in the file it occurred
	Notes    []string   // optional additional help messages
}

// DiagnosticFromError converts tokenizer and syntax errors into diagnostics.
// It returns false for any other error.
func DiagnosticFromError(err error) (Diagnostic, bool) {
	var se *SyntaxError
	if errors.As(err, &se) {
		diag := Diagnostic{Severity: slog.LevelError, Span: se.Span()}
		if se.Found.Is(EndOfInput) {
			diag.Message = fmt.Sprintf("unexpected end of input: expected %s", se.Expected)
		} else {
			diag.Message = fmt.Sprintf("expected %s, found %s", se.Expected, se.Found)
		}
		return diag, true
	}
	var te *TokenizeError
	if errors.As(err, &te) {
		return Diagnostic{Severity: slog.LevelError, Message: te.Err.Error(), Span: te.Span}, true
	}
	return Diagnostic{}, false
}

// PrintDiagnostic writes the diagnostic, the source line it points at,
// and a caret under the first byte of the span.
// lines holds the source, one entry per line, without line endings.
func PrintDiagnostic(w io.Writer, diag Diagnostic, filename string, lines []string) {
	span := diag.Span
	_, _ = fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
		filename, span.Line, span.Column,
		strings.ToLower(diag.Severity.String()), diag.Message)

	if 1 <= span.Line && span.Line <= len(lines) {
		line := lines[span.Line-1]
		_, _ = fmt.Fprintf(w, "    %s\n", line)

		caretCount := span.Column - 1
		if caretCount < 0 {
			caretCount = 0
		} else if caretCount > len(line) {
			caretCount = len(line)
		}
		_, _ = fmt.Fprintf(w, "    %s^\n", strings.Repeat(" ", caretCount))
	}

	for _, note := range diag.Notes {
		_, _ = fmt.Fprintf(w, "    note: %s\n", note)
	}
}
