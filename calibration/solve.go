// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package calibration

// LineResult holds the outcome of both scans for one input line.
// A scan that failed has a zero value and a non-nil error.
type LineResult struct {
	LineNo int // 1-based
	Text   string
	Part1  int
	Err1   error
	Part2  int
	Err2   error
}

// Result is the outcome of scanning a whole document.
type Result struct {
	Lines []LineResult
	Part1 int // sum of FirstLastDigits over all lines
	Part2 int // sum of SpelledDigits over all lines
}

// Failures returns the number of lines that failed in each part.
func (r *Result) Failures() (part1, part2 int) {
	for _, line := range r.Lines {
		if line.Err1 != nil {
			part1++
		}
		if line.Err2 != nil {
			part2++
		}
	}
	return part1, part2
}

// Solve runs both scans over every line.
// Errors are isolated to the line that raised them; the line adds
// nothing to that part's sum and the scan moves on.
func Solve(lines []string) *Result {
	r := &Result{Lines: make([]LineResult, 0, len(lines))}
	for n, line := range lines {
		lr := LineResult{LineNo: n + 1, Text: line}
		if lr.Part1, lr.Err1 = FirstLastDigits(line); lr.Err1 == nil {
			r.Part1 += lr.Part1
		}
		if lr.Part2, lr.Err2 = SpelledDigits(line); lr.Err2 == nil {
			r.Part2 += lr.Part2
		}
		r.Lines = append(r.Lines, lr)
	}
	return r
}
