// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package stages_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mdhender/aoc23/config"
	"github.com/mdhender/aoc23/cubes"
	"github.com/mdhender/aoc23/model"
	"github.com/mdhender/aoc23/pipelines/stages"
	store "github.com/mdhender/aoc23/stores/sqlite"
	"github.com/spf13/afero"
)

// mockStore implements stages.RunStore for testing.
type mockStore struct {
	runs  map[int64]*model.Run
	lines []*model.CalibrationLine
	games []*model.Game

	nextRunID int64
	failGames bool
}

func newMockStore() *mockStore {
	return &mockStore{
		runs:      make(map[int64]*model.Run),
		nextRunID: 1,
	}
}

func (m *mockStore) InsertRun(_ context.Context, run *model.Run) (int64, error) {
	id := m.nextRunID
	m.nextRunID++
	run.ID = id
	m.runs[id] = run
	return id, nil
}

func (m *mockStore) GetRunsBySHA256(_ context.Context, puzzle, sha256 string) ([]*model.Run, error) {
	var list []*model.Run
	for id := int64(1); id < m.nextRunID; id++ {
		if run := m.runs[id]; run.Puzzle == puzzle && run.SHA256 == sha256 {
			list = append(list, run)
		}
	}
	return list, nil
}

func (m *mockStore) InsertCalibrationLine(_ context.Context, line *model.CalibrationLine) (int64, error) {
	m.lines = append(m.lines, line)
	return int64(len(m.lines)), nil
}

func (m *mockStore) InsertGame(_ context.Context, game *model.Game) (int64, error) {
	if m.failGames {
		return 0, errors.New("disk full")
	}
	m.games = append(m.games, game)
	return int64(len(m.games)), nil
}

func newRunner(t *testing.T, st stages.RunStore, cfg *config.Config, files map[string]string) *stages.RunnerService {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, text := range files {
		if err := afero.WriteFile(fs, path, []byte(text), 0644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	svc := stages.NewRunnerService(st, cfg, nil)
	svc.SetFS(fs)
	return svc
}

const calibrationInput = "two1nine\neightwothree\nabcone2threexyz\nxtwone3four\n4nineeightseven2\nzoneight234\n7pqrstsixteen\n"

const cubesInput = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestRunnerService_RunCalibration_DefaultPath(t *testing.T) {
	ctx := context.Background()
	st := newMockStore()
	svc := newRunner(t, st, nil, map[string]string{"testdata/day01/input.txt": calibrationInput})

	rr, r, err := svc.RunCalibration(ctx, "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.Part2 != 281 {
		t.Errorf("part2: got %d, want 281", r.Part2)
	}
	if rr.Run.ID != 1 || rr.Run.Day != 1 || rr.Run.Lines != 7 || rr.Run.Part2 != 281 {
		t.Errorf("run: got %+v", rr.Run)
	}
	if len(st.lines) != 7 {
		t.Errorf("lines: got %d, want 7", len(st.lines))
	}
	if st.lines[1].Error1 == "" {
		t.Errorf("line 2: want a part 1 error, got none")
	}
	if !rr.Consistent || len(rr.Previous) != 0 {
		t.Errorf("first run: got consistent %v with %d previous", rr.Consistent, len(rr.Previous))
	}
}

func TestRunnerService_RunCubes(t *testing.T) {
	ctx := context.Background()
	st := newMockStore()
	svc := newRunner(t, st, nil, map[string]string{"/in/games.txt": cubesInput})

	rr, r, err := svc.RunCubes(ctx, "/in/games.txt")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.Part1 != 8 || r.Part2 != 2286 {
		t.Errorf("answers: got (%d, %d), want (8, 2286)", r.Part1, r.Part2)
	}
	if rr.Run.Puzzle != model.PuzzleCubes || rr.Run.InputName != "games.txt" {
		t.Errorf("run: got %+v", rr.Run)
	}
	if len(st.games) != 5 {
		t.Fatalf("games: got %d, want 5", len(st.games))
	}
	if st.games[2].Possible || st.games[2].Power != 1560 {
		t.Errorf("game 3: got %+v", st.games[2])
	}
}

func TestRunnerService_RunCubes_ConfiguredBag(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Cubes.Bag = []config.BagConfig{{Color: "red", Max: 100}, {Color: "green", Max: 100}, {Color: "blue", Max: 100}}
	svc := newRunner(t, newMockStore(), cfg, map[string]string{"testdata/day02/input.txt": cubesInput})

	_, r, err := svc.RunCubes(ctx, "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.Part1 != 15 {
		t.Errorf("part1: got %d, want 15", r.Part1)
	}
}

func TestRunnerService_RunCubes_SyntaxError(t *testing.T) {
	ctx := context.Background()
	st := newMockStore()
	svc := newRunner(t, st, nil, map[string]string{"/in/games.txt": "Game 1: 3 blue\nGame 2 4 red\n"})

	_, _, err := svc.RunCubes(ctx, "/in/games.txt")
	var perr *stages.ErrParseSyntax
	if !errors.As(err, &perr) {
		t.Fatalf("got %v, want *ErrParseSyntax", err)
	}
	if perr.Line != 2 || perr.Column != 8 {
		t.Errorf("position: got %d:%d, want 2:8", perr.Line, perr.Column)
	}
	if !errors.Is(err, cubes.ErrSyntax) {
		t.Errorf("got %v, want it to wrap cubes.ErrSyntax", err)
	}
	if stages.ErrorCode(err) != stages.ErrCodeParseSyntax {
		t.Errorf("code: got %q", stages.ErrorCode(err))
	}
	if len(st.runs) != 0 {
		t.Errorf("runs: got %d, want 0", len(st.runs))
	}
}

func TestRunnerService_RunCubes_TruncateBadDraws(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Cubes.TruncateBadDraws = true
	svc := newRunner(t, newMockStore(), cfg, map[string]string{"/in/games.txt": "Game 1: 3 blue;\nGame 2: 20 red\n"})

	_, r, err := svc.RunCubes(ctx, "/in/games.txt")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.Part1 != 1 || r.Part2 != 3+20 {
		t.Errorf("answers: got (%d, %d), want (1, 23)", r.Part1, r.Part2)
	}
}

func TestRunnerService_MissingInput(t *testing.T) {
	svc := newRunner(t, newMockStore(), nil, nil)
	_, _, err := svc.RunCalibration(context.Background(), "/nope.txt")
	var rerr *stages.ErrReadFile
	if !errors.As(err, &rerr) {
		t.Fatalf("got %v, want *ErrReadFile", err)
	}
	if stages.ErrorCode(err) != stages.ErrCodeReadFile {
		t.Errorf("code: got %q", stages.ErrorCode(err))
	}
}

func TestRunnerService_DatabaseError(t *testing.T) {
	st := newMockStore()
	st.failGames = true
	svc := newRunner(t, st, nil, map[string]string{"/in/games.txt": cubesInput})
	_, _, err := svc.RunCubes(context.Background(), "/in/games.txt")
	if stages.ErrorCode(err) != stages.ErrCodeDatabase {
		t.Fatalf("got %v (%s), want a database error", err, stages.ErrorCode(err))
	}
}

func TestRunnerService_Idempotent(t *testing.T) {
	ctx := context.Background()
	sqlStore, err := store.NewSQLiteStore()
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	defer sqlStore.Close()
	svc := newRunner(t, sqlStore, nil, map[string]string{
		"testdata/day01/input.txt": calibrationInput,
		"testdata/day02/input.txt": cubesInput,
	})

	for i := 0; i < 2; i++ {
		rr, _, err := svc.RunCubes(ctx, "")
		if err != nil {
			t.Fatalf("cubes run %d: %v", i+1, err)
		}
		if len(rr.Previous) != i || !rr.Consistent {
			t.Errorf("cubes run %d: got %d previous, consistent %v", i+1, len(rr.Previous), rr.Consistent)
		}
		rr, _, err = svc.RunCalibration(ctx, "")
		if err != nil {
			t.Fatalf("calibration run %d: %v", i+1, err)
		}
		if len(rr.Previous) != i || !rr.Consistent {
			t.Errorf("calibration run %d: got %d previous, consistent %v", i+1, len(rr.Previous), rr.Consistent)
		}
	}

	stats, err := sqlStore.TableStats(ctx)
	if err != nil {
		t.Fatalf("table stats: %v", err)
	}
	if stats["runs"] != 4 || stats["games"] != 10 || stats["calibration_lines"] != 14 {
		t.Errorf("stats: got %v", stats)
	}
}

func TestRunnerService_DetectsChangedAnswers(t *testing.T) {
	ctx := context.Background()
	st := newMockStore()
	svc := newRunner(t, st, nil, map[string]string{"/in/games.txt": cubesInput})

	first, _, err := svc.RunCubes(ctx, "/in/games.txt")
	if err != nil {
		t.Fatalf("run 1: %v", err)
	}
	// pretend an older build got a different answer for the same input
	first.Run.Part1 = 7

	second, _, err := svc.RunCubes(ctx, "/in/games.txt")
	if err != nil {
		t.Fatalf("run 2: %v", err)
	}
	if second.Consistent {
		t.Errorf("consistent: got true, want false")
	}
}
