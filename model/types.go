// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package model

import (
	"time"
)

// Puzzle names, also used as the input directory under the data dir.
const (
	PuzzleCalibration = "day01"
	PuzzleCubes       = "day02"
)

// Run is one execution of a puzzle solver against an input file.
type Run struct {
	ID        int64     `json:"id"        db:"id"`
	Puzzle    string    `json:"puzzle"    db:"puzzle"` // e.g. "day02"
	Day       int       `json:"day"       db:"day"`
	InputName string    `json:"inputName" db:"input_name"`
	SHA256    string    `json:"sha256"    db:"sha256"` // hash of the raw input
	Lines     int       `json:"lines"     db:"lines"`
	Part1     int       `json:"part1"     db:"part1"`
	Part2     int       `json:"part2"     db:"part2"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// SameAnswers reports whether both runs produced the same answers.
func (r *Run) SameAnswers(other *Run) bool {
	return r.Part1 == other.Part1 && r.Part2 == other.Part2
}

// CalibrationLine is the outcome of the digit scans for one input line.
// An error column is empty when that scan succeeded.
type CalibrationLine struct {
	ID     int64  `json:"id"               db:"id"`
	RunID  int64  `json:"runId"            db:"run_id"`
	LineNo int    `json:"lineNo"           db:"line_no"` // 1-based
	Text   string `json:"text"             db:"text"`
	Part1  int    `json:"part1"            db:"part1"`
	Error1 string `json:"error1,omitempty" db:"error1"`
	Part2  int    `json:"part2"            db:"part2"`
	Error2 string `json:"error2,omitempty" db:"error2"`
}

// Game is one parsed game with the verdicts of both rules.
type Game struct {
	ID       int64   `json:"id"       db:"id"`
	RunID    int64   `json:"runId"    db:"run_id"`
	GameNo   int     `json:"gameNo"   db:"game_no"` // id from the game log
	Possible bool    `json:"possible" db:"possible"`
	Power    int     `json:"power"    db:"power"`
	Draws    []*Draw `json:"draws,omitempty"` // ordered list for JSON export/import
}

// Draw is one handful of cubes within a game.
type Draw struct {
	ID      int64    `json:"id"     db:"id"`
	GameID  int64    `json:"gameId" db:"game_id"`
	Seq     int      `json:"seq"    db:"seq"` // 1-based
	Entries []*Entry `json:"entries,omitempty"`
}

// Entry is a count of cubes of one color within a draw.
type Entry struct {
	ID     int64  `json:"id"     db:"id"`
	DrawID int64  `json:"drawId" db:"draw_id"`
	Seq    int    `json:"seq"    db:"seq"` // 1-based
	Count  int    `json:"count"  db:"count"`
	Color  string `json:"color"  db:"color"`
}
