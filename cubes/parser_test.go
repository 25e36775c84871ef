// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cubes_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdhender/aoc23/cubes"
)

func parseLines(t *testing.T, lines []string, options ...cubes.Option) ([]*cubes.Game, error) {
	t.Helper()
	toks, diags := cubes.TokenizeLines(lines, options...)
	if len(diags) != 0 {
		t.Fatalf("tokenize: unexpected diagnostics %+v", diags)
	}
	return cubes.Parse(toks, options...)
}

func TestParse_Game(t *testing.T) {
	games, err := parseLines(t, []string{"Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []*cubes.Game{
		{ID: 1, Draws: []cubes.Draw{
			{{Count: 3, Color: "blue"}, {Count: 4, Color: "red"}},
			{{Count: 1, Color: "red"}, {Count: 2, Color: "green"}, {Count: 6, Color: "blue"}},
		}},
	}
	if diff := cmp.Diff(want, games); diff != "" {
		t.Errorf("games mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_GameList(t *testing.T) {
	games, err := parseLines(t, []string{
		"Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green",
		"Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue",
		"Game 17: 5 purple",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("games: got %d, want 3", len(games))
	}
	for i, want := range []struct{ id, draws int }{{1, 3}, {2, 3}, {17, 1}} {
		if games[i].ID != want.id || len(games[i].Draws) != want.draws {
			t.Errorf("game %d: got id %d with %d draws, want id %d with %d draws", i, games[i].ID, len(games[i].Draws), want.id, want.draws)
		}
	}
	if got := games[2].Entries(); len(got) != 1 || got[0] != (cubes.Entry{Count: 5, Color: "purple"}) {
		t.Errorf("game 17 entries: got %+v", got)
	}
}

func TestParse_Empty(t *testing.T) {
	games, err := cubes.Parse(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("games: got %d, want 0", len(games))
	}
}

func TestParse_StopsAtNonGameToken(t *testing.T) {
	games, err := parseLines(t, []string{"Game 1: 3 blue", "trailing words 4"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(games) != 1 {
		t.Errorf("games: got %d, want 1", len(games))
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	for _, tc := range []struct {
		line     string
		expected cubes.Kind
		message  string
	}{
		{"Game red: 3 blue", cubes.Number, "1:6: expected number, found Color(red)"},
		{"Game 1 3 blue", cubes.COLON, "1:8: expected ':', found Number(3)"},
		{"Game 1: blue", cubes.Number, "1:9: expected number, found Color(blue)"},
		{"Game 1: 3, 4 red", cubes.Color, "1:10: expected color, found ,"},
		{"Game 1: 3 blue; ; 4 red", cubes.Number, "1:17: expected number, found ;"},
		{"Game 1: 3 blue,", cubes.Number, "1:16: unexpected end of input: expected number"},
		{"Game 1:", cubes.Number, "1:8: unexpected end of input: expected number"},
		{"Game", cubes.Number, "1:5: unexpected end of input: expected number"},
	} {
		_, err := parseLines(t, []string{tc.line})
		if !errors.Is(err, cubes.ErrSyntax) {
			t.Errorf("%q: got %v, want ErrSyntax", tc.line, err)
			continue
		}
		var se *cubes.SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("%q: got %T, want *SyntaxError", tc.line, err)
			continue
		}
		if se.Expected != tc.expected {
			t.Errorf("%q: expected kind: got %v, want %v", tc.line, se.Expected, tc.expected)
		}
		if got := err.Error(); got != tc.message {
			t.Errorf("%q: message: got %q, want %q", tc.line, got, tc.message)
		}
	}
}

func TestParse_MalformedDrawStopsAllGames(t *testing.T) {
	_, err := parseLines(t, []string{
		"Game 1: 3 blue; ; 4 red",
		"Game 2: 1 green",
	})
	if !errors.Is(err, cubes.ErrSyntax) {
		t.Fatalf("got %v, want ErrSyntax", err)
	}
}

func TestParse_TruncateBadDraws(t *testing.T) {
	games, err := parseLines(t, []string{
		"Game 1: 3 blue; 4 red; green",
		"Game 2: 1 green",
	}, cubes.WithTruncateBadDraws(true))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// the bad draw ends game 1, and the stray color stops the game list
	want := []*cubes.Game{
		{ID: 1, Draws: []cubes.Draw{
			{{Count: 3, Color: "blue"}},
			{{Count: 4, Color: "red"}},
		}},
	}
	if diff := cmp.Diff(want, games); diff != "" {
		t.Errorf("games mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_TruncateBadDraws_NextGameSurvives(t *testing.T) {
	games, err := parseLines(t, []string{
		"Game 1: 3 blue;",
		"Game 2: 1 green",
	}, cubes.WithTruncateBadDraws(true))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("games: got %d, want 2", len(games))
	}
	if len(games[0].Draws) != 1 || len(games[1].Draws) != 1 {
		t.Errorf("draws: got %d and %d, want 1 and 1", len(games[0].Draws), len(games[1].Draws))
	}
}

func TestParse_HeaderErrorsAreFatalWhenTruncating(t *testing.T) {
	_, err := parseLines(t, []string{"Game 1 3 blue"}, cubes.WithTruncateBadDraws(true))
	if !errors.Is(err, cubes.ErrSyntax) {
		t.Fatalf("got %v, want ErrSyntax", err)
	}
}
