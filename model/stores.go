// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package model

import "context"

// Store is an interface for persisting puzzle runs.
type Store interface {
	InsertRun(ctx context.Context, run *Run) (int64, error)
	GetRunsBySHA256(ctx context.Context, puzzle, sha256 string) ([]*Run, error)

	InsertCalibrationLine(ctx context.Context, line *CalibrationLine) (int64, error)

	// InsertGame inserts the game together with its draws and entries.
	InsertGame(ctx context.Context, game *Game) (int64, error)

	TableStats(ctx context.Context) (map[string]int64, error)
	Close() error
}
