// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package aoc23 holds the version of the puzzle solvers.
//
// The solvers live in sub-packages:
//
//	calibration - first and last digit of each line, literal or spelled out
//	cubes       - tokenizer, parser and rules for the cube game log
//
// The aoc23 command in cmd/aoc23 wires them to input files and the run store.
package aoc23
