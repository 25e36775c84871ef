// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package stages

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mdhender/aoc23/adapters"
	"github.com/mdhender/aoc23/calibration"
	"github.com/mdhender/aoc23/config"
	"github.com/mdhender/aoc23/cubes"
	"github.com/mdhender/aoc23/inputs"
	"github.com/mdhender/aoc23/model"
	"github.com/spf13/afero"
)

// RunnerService loads puzzle inputs, runs the solvers and persists the results.
type RunnerService struct {
	store  RunStore
	cfg    *config.Config
	fs     afero.Fs
	logger *slog.Logger
}

// RunStore defines the store operations needed by RunnerService.
type RunStore interface {
	InsertRun(ctx context.Context, run *model.Run) (int64, error)
	GetRunsBySHA256(ctx context.Context, puzzle, sha256 string) ([]*model.Run, error)
	InsertCalibrationLine(ctx context.Context, line *model.CalibrationLine) (int64, error)
	InsertGame(ctx context.Context, game *model.Game) (int64, error)
}

// NewRunnerService creates a new RunnerService.
// A nil cfg uses config.Default() and a nil logger uses slog.Default().
func NewRunnerService(store RunStore, cfg *config.Config, logger *slog.Logger) *RunnerService {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RunnerService{
		store:  store,
		cfg:    cfg,
		fs:     afero.NewOsFs(),
		logger: logger,
	}
}

// SetFS sets the filesystem for testing.
func (s *RunnerService) SetFS(fs afero.Fs) {
	s.fs = fs
}

// RunResult describes a persisted run.
type RunResult struct {
	Run   *model.Run
	Input *inputs.File

	// Previous holds earlier runs of the same puzzle against the same input.
	// Consistent is false if any of them produced different answers.
	Previous   []*model.Run
	Consistent bool
}

// InputPath returns path if it is set, otherwise the default input for the puzzle.
func (s *RunnerService) InputPath(puzzle, path string) string {
	if path != "" {
		return path
	}
	return inputs.DefaultPath(s.cfg.Inputs.DataDir, puzzle)
}

// RunCalibration solves the calibration puzzle for the input at path.
// Lines that fail a scan are logged and recorded; they do not fail the run.
func (s *RunnerService) RunCalibration(ctx context.Context, path string) (*RunResult, *calibration.Result, error) {
	path = s.InputPath(model.PuzzleCalibration, path)
	input, err := s.load(path)
	if err != nil {
		return nil, nil, err
	}

	r := calibration.Solve(input.Lines)
	for _, lr := range r.Lines {
		if lr.Err1 != nil {
			s.logger.Debug("calibration: part 1", "line", lr.LineNo, "text", lr.Text, "err", lr.Err1)
		}
		if lr.Err2 != nil {
			s.logger.Debug("calibration: part 2", "line", lr.LineNo, "text", lr.Text, "err", lr.Err2)
		}
	}

	rr, err := s.saveRun(ctx, model.PuzzleCalibration, input, r.Part1, r.Part2)
	if err != nil {
		return nil, nil, err
	}
	for _, line := range adapters.CalibrationToModel(rr.Run.ID, r) {
		if _, err := s.store.InsertCalibrationLine(ctx, line); err != nil {
			return nil, nil, &ErrDatabase{Op: "insert calibration line", Err: err}
		}
	}
	return rr, r, nil
}

// RunCubes solves the cube game puzzle for the input at path.
// A syntax error in the game log fails the run and nothing is persisted.
func (s *RunnerService) RunCubes(ctx context.Context, path string) (*RunResult, *cubes.Result, error) {
	path = s.InputPath(model.PuzzleCubes, path)
	input, err := s.load(path)
	if err != nil {
		return nil, nil, err
	}

	r, err := cubes.Solve(input.Lines, s.cfg.Bag(),
		cubes.WithLogger(s.logger),
		cubes.WithTruncateBadDraws(s.cfg.Cubes.TruncateBadDraws))
	if err != nil {
		perr := &ErrParseSyntax{Path: path, Err: err}
		var se *cubes.SyntaxError
		if errors.As(err, &se) {
			perr.Line, perr.Column = se.Found.Line, se.Found.Column
		}
		return nil, nil, perr
	}

	rr, err := s.saveRun(ctx, model.PuzzleCubes, input, r.Part1, r.Part2)
	if err != nil {
		return nil, nil, err
	}
	for _, game := range adapters.CubesToModel(rr.Run.ID, r) {
		if _, err := s.store.InsertGame(ctx, game); err != nil {
			return nil, nil, &ErrDatabase{Op: "insert game", Err: err}
		}
	}
	return rr, r, nil
}

func (s *RunnerService) load(path string) (*inputs.File, error) {
	input, err := inputs.Load(s.fs, path,
		inputs.WithAutoEOL(s.cfg.Inputs.AutoEOL),
		inputs.WithStripCR(s.cfg.Inputs.StripCR))
	if err != nil {
		return nil, &ErrReadFile{Op: "read", Path: path, Err: err}
	}
	return input, nil
}

// saveRun compares the answers with earlier runs on the same input, then
// inserts the new run.
func (s *RunnerService) saveRun(ctx context.Context, puzzle string, input *inputs.File, part1, part2 int) (*RunResult, error) {
	day, err := inputs.PuzzleDay(puzzle)
	if err != nil {
		return nil, err
	}
	run := &model.Run{
		Puzzle:    puzzle,
		Day:       day,
		InputName: input.Name,
		SHA256:    input.SHA256,
		Lines:     len(input.Lines),
		Part1:     part1,
		Part2:     part2,
		CreatedAt: time.Now().UTC(),
	}

	previous, err := s.store.GetRunsBySHA256(ctx, puzzle, input.SHA256)
	if err != nil {
		return nil, &ErrDatabase{Op: "get previous runs", Err: err}
	}
	rr := &RunResult{Run: run, Input: input, Previous: previous, Consistent: true}
	for _, prev := range previous {
		if !prev.SameAnswers(run) {
			rr.Consistent = false
			s.logger.Warn("runner: answers differ from an earlier run on the same input",
				"puzzle", puzzle, "run", prev.ID, "part1", prev.Part1, "part2", prev.Part2)
		}
	}

	if run.ID, err = s.store.InsertRun(ctx, run); err != nil {
		return nil, &ErrDatabase{Op: "insert run", Err: err}
	}
	return rr, nil
}
