// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cubes

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax   = errors.New("syntax error")
	ErrTokenize = errors.New("tokenize error")
)

// TokenizeError is returned when a run of characters can't be turned
// into a token. The only way to get one today is a number too large for an int.
type TokenizeError struct {
	Span Span
	Text string
	Err  error
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("%d:%d: unexpected token %q: %v", e.Span.Line, e.Span.Column, e.Text, e.Err)
}

func (e *TokenizeError) Unwrap() []error {
	return []error{ErrTokenize, e.Err}
}

// SyntaxError is returned when the parser finds a token it did not expect.
// Found is the offending token; it is the end token if input ran out.
type SyntaxError struct {
	Expected Kind
	Found    *Token
}

func (e *SyntaxError) Error() string {
	if e.Found.Is(EndOfInput) {
		return fmt.Sprintf("%d:%d: unexpected end of input: expected %s", e.Found.Line, e.Found.Column, e.Expected)
	}
	return fmt.Sprintf("%d:%d: expected %s, found %s", e.Found.Line, e.Found.Column, e.Expected, e.Found)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// Span returns the location of the offending token.
func (e *SyntaxError) Span() Span {
	return spanFromToken(e.Found)
}
