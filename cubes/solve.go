// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cubes

// Verdict is the outcome of the rules for one game.
type Verdict struct {
	Game     *Game
	Possible bool
	Power    int
}

// Result is the outcome of solving a game log.
type Result struct {
	Verdicts    []Verdict
	Part1       int          // sum of the ids of possible games
	Part2       int          // sum of the powers of all games
	Diagnostics []Diagnostic // lines skipped by the tokenizer
}

// Games returns the parsed games in input order.
func (r *Result) Games() []*Game {
	games := make([]*Game, 0, len(r.Verdicts))
	for _, v := range r.Verdicts {
		games = append(games, v.Game)
	}
	return games
}

// Solve tokenizes and parses the lines, then applies both rules using bag.
// Lines that fail to tokenize are skipped and reported in Diagnostics.
// A syntax error fails the whole solve.
func Solve(lines []string, bag Bag, options ...Option) (*Result, error) {
	tokens, diags := TokenizeLines(lines, options...)
	games, err := Parse(tokens, options...)
	if err != nil {
		return nil, err
	}
	r := &Result{
		Verdicts:    make([]Verdict, 0, len(games)),
		Diagnostics: diags,
	}
	for _, game := range games {
		v := Verdict{Game: game, Possible: bag.Possible(game), Power: bag.Power(game)}
		if v.Possible {
			r.Part1 += game.ID
		}
		r.Part2 += v.Power
		r.Verdicts = append(r.Verdicts, v)
	}
	return r, nil
}
