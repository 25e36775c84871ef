// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package adapters converts solver results into model rows.
package adapters

import (
	"github.com/mdhender/aoc23/calibration"
	"github.com/mdhender/aoc23/cubes"
	"github.com/mdhender/aoc23/model"
)

// CalibrationToModel converts the per-line results of a calibration run.
func CalibrationToModel(runID int64, r *calibration.Result) []*model.CalibrationLine {
	lines := make([]*model.CalibrationLine, 0, len(r.Lines))
	for _, lr := range r.Lines {
		lines = append(lines, &model.CalibrationLine{
			RunID:  runID,
			LineNo: lr.LineNo,
			Text:   lr.Text,
			Part1:  lr.Part1,
			Error1: errorText(lr.Err1),
			Part2:  lr.Part2,
			Error2: errorText(lr.Err2),
		})
	}
	return lines
}

// CubesToModel converts the games and verdicts of a cubes run.
// Sequence numbers for draws and entries are 1-based and follow input order.
func CubesToModel(runID int64, r *cubes.Result) []*model.Game {
	games := make([]*model.Game, 0, len(r.Verdicts))
	for _, v := range r.Verdicts {
		game := &model.Game{
			RunID:    runID,
			GameNo:   v.Game.ID,
			Possible: v.Possible,
			Power:    v.Power,
		}
		for n, draw := range v.Game.Draws {
			md := &model.Draw{Seq: n + 1}
			for m, entry := range draw {
				md.Entries = append(md.Entries, &model.Entry{
					Seq:   m + 1,
					Count: entry.Count,
					Color: entry.Color,
				})
			}
			game.Draws = append(game.Draws, md)
		}
		games = append(games, game)
	}
	return games
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
