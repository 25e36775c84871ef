// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mdhender/aoc23/model"
)

// InsertGame inserts the game, its draws and their entries in a single
// transaction, and returns the game's assigned ID.
// The IDs of the inserted rows are written back into the model.
func (s *SQLiteStore) InsertGame(ctx context.Context, game *model.Game) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("insert game: begin: %w", err)
	}
	defer tx.Rollback()

	const gameQuery = `
		INSERT INTO games (run_id, game_no, possible, power)
		VALUES (?, ?, ?, ?)
	`
	result, err := tx.ExecContext(ctx, gameQuery, game.RunID, game.GameNo, boolToInt(game.Possible), game.Power)
	if err != nil {
		return 0, fmt.Errorf("insert game: %w", err)
	}
	if game.ID, err = result.LastInsertId(); err != nil {
		return 0, fmt.Errorf("insert game: %w", err)
	}

	for _, draw := range game.Draws {
		draw.GameID = game.ID
		if err := insertDraw(ctx, tx, draw); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("insert game: commit: %w", err)
	}
	return game.ID, nil
}

func insertDraw(ctx context.Context, tx *sql.Tx, draw *model.Draw) error {
	const query = `
		INSERT INTO draws (game_id, seq)
		VALUES (?, ?)
	`
	result, err := tx.ExecContext(ctx, query, draw.GameID, draw.Seq)
	if err != nil {
		return fmt.Errorf("insert draw: %w", err)
	}
	if draw.ID, err = result.LastInsertId(); err != nil {
		return fmt.Errorf("insert draw: %w", err)
	}
	for _, entry := range draw.Entries {
		entry.DrawID = draw.ID
		if err := insertEntry(ctx, tx, entry); err != nil {
			return err
		}
	}
	return nil
}

func insertEntry(ctx context.Context, tx *sql.Tx, entry *model.Entry) error {
	const query = `
		INSERT INTO entries (draw_id, seq, count, color)
		VALUES (?, ?, ?, ?)
	`
	result, err := tx.ExecContext(ctx, query, entry.DrawID, entry.Seq, entry.Count, entry.Color)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	if entry.ID, err = result.LastInsertId(); err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// GetGamesByRun returns the games of a run with their draws and entries,
// in the order they were inserted.
func (s *SQLiteStore) GetGamesByRun(ctx context.Context, runID int64) ([]*model.Game, error) {
	const query = `
		SELECT g.id, g.game_no, g.possible, g.power,
		       d.id, d.seq,
		       e.id, e.seq, e.count, e.color
		FROM games g
		LEFT JOIN draws d ON d.game_id = g.id
		LEFT JOIN entries e ON e.draw_id = d.id
		WHERE g.run_id = ?
		ORDER BY g.id, d.seq, e.seq
	`
	rows, err := s.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	var games []*model.Game
	var game *model.Game
	var draw *model.Draw
	for rows.Next() {
		var gameID int64
		var gameNo, power int
		var possible int64
		var drawID, entryID sql.NullInt64
		var drawSeq, entrySeq, count sql.NullInt64
		var color sql.NullString
		if err := rows.Scan(&gameID, &gameNo, &possible, &power, &drawID, &drawSeq, &entryID, &entrySeq, &count, &color); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		if game == nil || game.ID != gameID {
			game = &model.Game{ID: gameID, RunID: runID, GameNo: gameNo, Possible: possible != 0, Power: power}
			games = append(games, game)
			draw = nil
		}
		if !drawID.Valid {
			continue
		}
		if draw == nil || draw.ID != drawID.Int64 {
			draw = &model.Draw{ID: drawID.Int64, GameID: gameID, Seq: int(drawSeq.Int64)}
			game.Draws = append(game.Draws, draw)
		}
		if entryID.Valid {
			draw.Entries = append(draw.Entries, &model.Entry{
				ID:     entryID.Int64,
				DrawID: draw.ID,
				Seq:    int(entrySeq.Int64),
				Count:  int(count.Int64),
				Color:  color.String,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	return games, nil
}
