// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cubes

import (
	"bytes"
	"log/slog"
	"strconv"
)

// Lexer invariants
//
// The lexer works on a single line of input, treated as immutable bytes.
// Every token class is ASCII, so there is no need to decode runes:
// bytes outside the classes are skipped one at a time.
//
//   pos       - index of the next unread byte, 0 <= pos <= len(input)
//   anchorPos - index where the current token starts
//
// Token classes are tried in a fixed order at each position:
//   "Game", ':', ',', ';', digit run, letter run.
// The keyword is matched as a literal prefix before the letter run,
// so "Games" is the keyword followed by Color("s").
//
// Once pos reaches the end of input, Scan returns the same end token forever.

type Lexer struct {
	line      int // line number of the input, 1-based
	input     []byte
	pos       int
	anchorPos int

	endToken *Token

	logger *slog.Logger
}

var keywordGame = []byte("Game")

func NewLexer(lineNo int, input []byte, options ...Option) *Lexer {
	c := newConfig(options...)
	return &Lexer{
		line:   lineNo,
		input:  input,
		logger: c.logger,
	}
}

// Scan returns the next token from the input.
// It returns an error only for a digit run that does not fit in an int.
func (l *Lexer) Scan() (*Token, error) {
	l.skipUnmatched()
	if l.iseof() {
		if l.endToken == nil {
			l.endToken = &Token{
				Position: l.position(l.pos),
				Kind:     EndOfInput,
			}
		}
		return l.endToken, nil
	}

	l.anchorPos = l.pos
	switch ch := l.input[l.pos]; {
	case bytes.HasPrefix(l.input[l.pos:], keywordGame):
		l.pos += len(keywordGame)
		return l.token(GameKw), nil
	case ch == ':':
		l.pos++
		return l.token(COLON), nil
	case ch == ',':
		l.pos++
		return l.token(COMMA), nil
	case ch == ';':
		l.pos++
		return l.token(SEMICOLON), nil
	case isdigit(ch):
		for !l.iseof() && isdigit(l.input[l.pos]) {
			l.pos++
		}
		tok := l.token(Number)
		value, err := strconv.Atoi(tok.Text)
		if err != nil {
			l.logger.Debug("lexer: number", "line", tok.Line, "column", tok.Column, "text", tok.Text, "err", err)
			return nil, &TokenizeError{Span: spanFromToken(tok), Text: tok.Text, Err: err}
		}
		tok.Value = value
		return tok, nil
	case isalpha(ch):
		for !l.iseof() && isalpha(l.input[l.pos]) {
			l.pos++
		}
		return l.token(Color), nil
	}
	// skipUnmatched guarantees the current byte starts a token
	panic("assert(lexer.pos starts a token)")
}

// skipUnmatched advances past bytes that can't start any token.
func (l *Lexer) skipUnmatched() {
	for !l.iseof() && !startsToken(l.input[l.pos]) {
		l.pos++
	}
}

func (l *Lexer) token(kind Kind) *Token {
	return &Token{
		Position: l.position(l.anchorPos),
		Kind:     kind,
		Text:     string(l.input[l.anchorPos:l.pos]),
	}
}

func (l *Lexer) position(start int) Position {
	return Position{Line: l.line, Column: start + 1, Start: start}
}

func (l *Lexer) iseof() bool {
	return l.pos >= len(l.input)
}

// Tokenize returns the tokens of a single line, without the end token.
func Tokenize(line string, options ...Option) ([]*Token, error) {
	return tokenizeLine(NewLexer(1, []byte(line), options...))
}

func tokenizeLine(l *Lexer) ([]*Token, error) {
	var toks []*Token
	for {
		tok, err := l.Scan()
		if err != nil {
			return nil, err
		}
		if tok.Kind == EndOfInput {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// TokenizeLines tokenizes each line and concatenates the results into a
// single stream terminated by an end token.
//
// A line that fails to tokenize is dropped from the stream; the failure is
// logged and returned as a warning diagnostic.
func TokenizeLines(lines []string, options ...Option) ([]*Token, []Diagnostic) {
	c := newConfig(options...)
	var stream []*Token
	var diags []Diagnostic
	for n, line := range lines {
		toks, err := tokenizeLine(NewLexer(n+1, []byte(line), options...))
		if err != nil {
			c.logger.Warn("lexer: skipping line", "line", n+1, "err", err)
			diag := Diagnostic{Severity: slog.LevelWarn, Message: err.Error(), Span: Span{Line: n + 1, Column: 1}}
			if te, ok := err.(*TokenizeError); ok {
				diag.Span = te.Span
				diag.Message = "line skipped: " + te.Err.Error()
			}
			diags = append(diags, diag)
			continue
		}
		stream = append(stream, toks...)
	}
	// the end token sits just past the last byte of the last line
	end := Position{Line: 1, Column: 1}
	if n := len(lines); n != 0 {
		end = Position{Line: n, Column: len(lines[n-1]) + 1, Start: len(lines[n-1])}
	}
	stream = append(stream, &Token{Position: end, Kind: EndOfInput})
	return stream, diags
}

func isdigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isalpha(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func startsToken(ch byte) bool {
	return ch == ':' || ch == ',' || ch == ';' || isdigit(ch) || isalpha(ch)
}
