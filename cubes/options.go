// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cubes

import "log/slog"

type config struct {
	logger           *slog.Logger
	truncateBadDraws bool
}

type Option func(c *config)

func newConfig(options ...Option) *config {
	c := &config{logger: slog.Default()}
	for _, option := range options {
		option(c)
	}
	return c
}

// WithLogger sets the logger used by the lexer and parser.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTruncateBadDraws restores the lenient draw loop: a draw that fails
// to parse ends the game instead of failing the parse.
// Draws already parsed are kept and the failure is logged as a warning.
func WithTruncateBadDraws(flag bool) Option {
	return func(c *config) {
		c.truncateBadDraws = flag
	}
}
