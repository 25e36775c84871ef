// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cubes

import (
	"log/slog"
)

/*
Grammar:

	GameList  := Game*
	Game      := 'Game' Number ':' EntryList (';' EntryList)*
	EntryList := Entry (',' Entry)*
	Entry     := Number Color

Invariants:
  - tokens is never empty and always ends with an EndOfInput token.
    NewParser appends one if the caller didn't.
  - pos indexes the lookahead token; 0 <= pos < len(tokens).
  - peek() never moves the cursor.
  - expect() and accept() are the only ways to consume a token, and they
    match and advance in one step. Once the cursor reaches EndOfInput it
    stays there.
*/

type Parser struct {
	tokens []*Token
	pos    int

	logger           *slog.Logger
	truncateBadDraws bool
}

// NewParser returns a parser positioned at the first token.
func NewParser(tokens []*Token, options ...Option) *Parser {
	c := newConfig(options...)
	if n := len(tokens); n == 0 || tokens[n-1].Kind != EndOfInput {
		end := &Token{Position: Position{Line: 1, Column: 1}, Kind: EndOfInput}
		if n != 0 {
			last := tokens[n-1]
			end.Position = Position{Line: last.Line, Column: last.Column + last.Length(), Start: last.Start + last.Length()}
		}
		tokens = append(tokens[:n:n], end)
	}
	return &Parser{
		tokens:           tokens,
		logger:           c.logger,
		truncateBadDraws: c.truncateBadDraws,
	}
}

// Parse parses the token stream into a list of games.
func Parse(tokens []*Token, options ...Option) ([]*Game, error) {
	return NewParser(tokens, options...).ParseGames()
}

// ParseGames parses games for as long as the lookahead is the Game keyword.
// Running out of games is not an error; any tokens left over are ignored.
func (p *Parser) ParseGames() ([]*Game, error) {
	var games []*Game
	for p.match(GameKw) {
		game, err := p.parseGame()
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	if tok := p.peek(); !tok.Is(EndOfInput) {
		p.logger.Debug("parser: stopped before end of input", "line", tok.Line, "column", tok.Column, "token", tok.String())
	}
	return games, nil
}

// parseGame implements
//
//	Game := 'Game' Number ':' EntryList (';' EntryList)*
func (p *Parser) parseGame() (*Game, error) {
	if _, err := p.expect(GameKw); err != nil {
		return nil, err
	}
	id, err := p.expect(Number)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(COLON); err != nil {
		return nil, err
	}

	game := &Game{ID: id.Value}
	for {
		draw, err := p.parseEntryList()
		if err != nil {
			if !p.truncateBadDraws {
				return nil, err
			}
			p.logger.Warn("parser: truncating game", "game", game.ID, "draws", len(game.Draws), "err", err)
			break
		}
		game.Draws = append(game.Draws, draw)
		if p.accept(SEMICOLON) == nil {
			break
		}
	}
	return game, nil
}

// parseEntryList implements
//
//	EntryList := Entry (',' Entry)*
func (p *Parser) parseEntryList() (Draw, error) {
	var draw Draw
	for {
		entry, err := p.parseEntry()
		if err != nil {
			return nil, err
		}
		draw = append(draw, entry)
		if p.accept(COMMA) == nil {
			return draw, nil
		}
	}
}

// parseEntry implements
//
//	Entry := Number Color
func (p *Parser) parseEntry() (Entry, error) {
	count, err := p.expect(Number)
	if err != nil {
		return Entry{}, err
	}
	color, err := p.expect(Color)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Count: count.Value, Color: color.Text}, nil
}

// peek returns the lookahead token without consuming it.
func (p *Parser) peek() *Token {
	return p.tokens[p.pos]
}

// match reports whether the lookahead token matches the given kind.
func (p *Parser) match(kind Kind) bool {
	return p.peek().Is(kind)
}

// advance consumes and returns the lookahead token.
// It never moves past the end token.
func (p *Parser) advance() *Token {
	tok := p.tokens[p.pos]
	if tok.Kind != EndOfInput {
		p.pos++
	}
	return tok
}

// accept consumes and returns the lookahead token if its Kind equals kind.
// It returns nil if the lookahead does not match.
func (p *Parser) accept(kind Kind) *Token {
	if p.match(kind) {
		return p.advance()
	}
	return nil
}

// expect consumes and returns the lookahead token if its Kind equals kind.
// Otherwise, it returns a SyntaxError naming the token found and leaves
// the cursor where it was.
func (p *Parser) expect(kind Kind) (*Token, error) {
	if tok := p.accept(kind); tok != nil {
		return tok, nil
	}
	return nil, &SyntaxError{Expected: kind, Found: p.peek()}
}
