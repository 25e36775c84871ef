// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cubes

import "fmt"

// Token represents a single lexical token from the input.
type Token struct {
	Position

	Kind  Kind
	Text  string // the lexeme
	Value int    // set for Number tokens only
}

// Is reports whether tok.Kind matches the provided kind.
//
// It returns false if tok is nil.
func (tok *Token) Is(kind Kind) bool {
	if tok == nil {
		return false
	}
	return tok.Kind == kind
}

// IsOneOf reports whether tok.Kind matches any of the provided kinds.
//
// It returns false if tok is nil.
func (tok *Token) IsOneOf(kinds ...Kind) bool {
	if tok == nil {
		return false
	}
	for _, kind := range kinds {
		if tok.Kind == kind {
			return true
		}
	}
	return false
}

// Length is the length of the lexeme, in bytes.
func (tok *Token) Length() int {
	return len(tok.Text)
}

// String formats the token the way it is shown in syntax errors,
// e.g. "Game", "Number(3)", "Color(red)", ":" or "End".
func (tok *Token) String() string {
	if tok == nil {
		return "<nil>"
	}
	switch tok.Kind {
	case GameKw:
		return "Game"
	case Number:
		return fmt.Sprintf("Number(%d)", tok.Value)
	case Color:
		return fmt.Sprintf("Color(%s)", tok.Text)
	case COLON, COMMA, SEMICOLON:
		return tok.Text
	case EndOfInput:
		return "End"
	}
	return fmt.Sprintf("Unknown(%q)", tok.Text)
}

// Position represents a position in the original source.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, byte column
	Start  int // byte index into the line (0-based)
}

// Span represents a range in a source line: [Start, End).
type Span struct {
	Start int
	End   int

	// 1-based line and column of the *start* of the span.
	Line   int
	Column int
}

// spanFromToken creates a Span that covers a single token.
func spanFromToken(tok *Token) Span {
	return Span{
		Start:  tok.Start,
		End:    tok.Start + tok.Length(),
		Line:   tok.Line,
		Column: tok.Column,
	}
}
