// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cubes

// Kind implements enums for tokens
type Kind int

const (
	UNKNOWN Kind = iota

	COLON
	COMMA
	SEMICOLON

	Color  // run of letters that isn't the Game keyword
	GameKw // the literal "Game"
	Number // run of digits

	EndOfInput // end of input
)

// String returns the text used for the kind in diagnostics.
func (k Kind) String() string {
	switch k {
	case COLON:
		return "':'"
	case COMMA:
		return "','"
	case SEMICOLON:
		return "';'"
	case Color:
		return "color"
	case GameKw:
		return "'Game'"
	case Number:
		return "number"
	case EndOfInput:
		return "end of input"
	}
	return "unknown"
}
