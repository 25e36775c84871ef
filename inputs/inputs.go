// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package inputs

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

var (
	// puzzle directories have names that match the pattern dayNN.
	rxPuzzleDir = regexp.MustCompile(`^day(\d{2})$`)
)

// File is a puzzle input loaded into memory.
type File struct {
	Name   string   // base name of the file
	Path   string   // path the file was loaded from
	SHA256 string   // hash of the raw bytes, before line endings are changed
	Lines  []string // lines without end-of-line markers
}

// Config holds the loader settings.
type Config struct {
	autoEOL bool
	stripCR bool
	debug   bool
}

type Option func(c *Config) error

// WithAutoEOL replaces CR+LF and lone CR with LF.
func WithAutoEOL(flag bool) Option {
	return func(c *Config) error {
		c.autoEOL = flag
		return nil
	}
}

// WithStripCR replaces CR+LF with LF.
// It is ignored when auto-eol is set.
func WithStripCR(flag bool) Option {
	return func(c *Config) error {
		c.stripCR = flag
		return nil
	}
}

func WithDebug(flag bool) Option {
	return func(c *Config) error {
		c.debug = flag
		return nil
	}
}

// DefaultPath returns the conventional location of a puzzle's input:
// dataDir/puzzle/input.txt.
func DefaultPath(dataDir, puzzle string) string {
	return filepath.Join(dataDir, puzzle, "input.txt")
}

// PuzzleDay returns the day number encoded in a puzzle name such as "day02".
func PuzzleDay(puzzle string) (int, error) {
	matches := rxPuzzleDir.FindStringSubmatch(puzzle)
	// length of matches is 2 because it includes the whole string in the slice
	if len(matches) != 2 {
		return 0, fmt.Errorf("puzzle %q: does not match dayNN", puzzle)
	}
	day, _ := strconv.Atoi(matches[1])
	if day < 1 || day > 25 {
		return 0, fmt.Errorf("puzzle %q: invalid day", puzzle)
	}
	return day, nil
}

// Load reads the file and splits it into lines.
// A final end-of-line does not create an empty last line.
func Load(fs afero.Fs, path string, options ...Option) (*File, error) {
	var cfg Config
	for _, option := range options {
		if err := option(&cfg); err != nil {
			return nil, err
		}
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	hash := sha256.Sum256(data)

	if cfg.autoEOL {
		if cfg.debug {
			log.Printf("inputs: auto-eol: replacing CR+LF and CR with LF")
		}
		data = bytes.ReplaceAll(data, []byte{'\r', '\n'}, []byte{'\n'})
		data = bytes.ReplaceAll(data, []byte{'\r'}, []byte{'\n'})
	} else if cfg.stripCR {
		if cfg.debug {
			log.Printf("inputs: strip-cr: replacing CR+LF with LF")
		}
		data = bytes.ReplaceAll(data, []byte{'\r', '\n'}, []byte{'\n'})
	}

	return &File{
		Name:   filepath.Base(path),
		Path:   path,
		SHA256: hex.EncodeToString(hash[:]),
		Lines:  SplitLines(string(data)),
	}, nil
}

// SplitLines splits text on LF. A trailing LF does not start a new line,
// and empty text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
