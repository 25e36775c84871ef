// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mdhender/aoc23/model"
)

// InsertRun inserts a Run and returns its assigned ID.
func (s *SQLiteStore) InsertRun(ctx context.Context, run *model.Run) (int64, error) {
	const query = `
		INSERT INTO runs (puzzle, day, input_name, sha256, lines, part1, part2, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := s.db.ExecContext(ctx, query,
		run.Puzzle,
		run.Day,
		run.InputName,
		run.SHA256,
		run.Lines,
		run.Part1,
		run.Part2,
		run.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	return result.LastInsertId()
}

// GetRunsBySHA256 returns earlier runs of the puzzle against the same input,
// oldest first. It returns an empty list if there are none.
func (s *SQLiteStore) GetRunsBySHA256(ctx context.Context, puzzle, sha256 string) ([]*model.Run, error) {
	const query = `
		SELECT id, puzzle, day, input_name, sha256, lines, part1, part2, created_at
		FROM runs
		WHERE puzzle = ? AND sha256 = ?
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, puzzle, sha256)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []*model.Run
	for rows.Next() {
		var run model.Run
		var createdAt string
		if err := rows.Scan(&run.ID, &run.Puzzle, &run.Day, &run.InputName, &run.SHA256, &run.Lines, &run.Part1, &run.Part2, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if run.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("run %d: created_at: %w", run.ID, err)
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	return runs, nil
}

// InsertCalibrationLine inserts a CalibrationLine and returns its assigned ID.
func (s *SQLiteStore) InsertCalibrationLine(ctx context.Context, line *model.CalibrationLine) (int64, error) {
	const query = `
		INSERT INTO calibration_lines (run_id, line_no, text, part1, error1, part2, error2)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := s.db.ExecContext(ctx, query,
		line.RunID,
		line.LineNo,
		line.Text,
		line.Part1,
		nullString(line.Error1),
		line.Part2,
		nullString(line.Error2),
	)
	if err != nil {
		return 0, fmt.Errorf("insert calibration_line: %w", err)
	}
	return result.LastInsertId()
}
