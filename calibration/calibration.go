// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package calibration recovers calibration values from lines of text.
//
// A calibration value is the two-digit number formed from the first and
// the last digit found on a line. A line with a single digit uses it for
// both places.
package calibration

import (
	"errors"
	"strings"
)

var (
	ErrNoDigits = errors.New("no digits in line")
)

// digitWords maps the spelled-out digits to their values.
// Index 0 is unused; there is no "zero" in the puzzle.
var digitWords = [...]string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// FirstLastDigits returns the calibration value using literal digits only.
func FirstLastDigits(line string) (int, error) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		if isdigit(line[i]) {
			first = int(line[i] - '0')
			break
		}
	}
	for i := len(line) - 1; i >= 0; i-- {
		if isdigit(line[i]) {
			last = int(line[i] - '0')
			break
		}
	}
	if first < 0 || last < 0 {
		return 0, ErrNoDigits
	}
	return first*10 + last, nil
}

// SpelledDigits returns the calibration value counting both literal digits
// and the words "one" through "nine".
//
// Words may overlap by one character: after a match the scan resumes on
// the last letter of the word, so "eightwo" yields 8 and then 2.
func SpelledDigits(line string) (int, error) {
	var t tracker
	for pos := 0; pos < len(line); pos++ {
		if ch := line[pos]; isdigit(ch) {
			t.set(int(ch - '0'))
			continue
		}
		if value, length := spelledDigitAt(line, pos); length != 0 {
			t.set(value)
			pos += length - 2 // loop increment lands on the last letter
		}
	}
	return t.value()
}

// spelledDigitAt returns the value and length of the digit word that starts
// at pos. It returns a length of zero if no word starts there.
func spelledDigitAt(line string, pos int) (value, length int) {
	rest := line[pos:]
	for value = 1; value < len(digitWords); value++ {
		if strings.HasPrefix(rest, digitWords[value]) {
			return value, len(digitWords[value])
		}
	}
	return 0, 0
}

// tracker remembers the first and the most recent digit seen in a scan.
type tracker struct {
	found       bool
	first, last int
}

func (t *tracker) set(digit int) {
	if !t.found {
		t.first, t.found = digit, true
	}
	t.last = digit
}

func (t *tracker) value() (int, error) {
	if !t.found {
		return 0, ErrNoDigits
	}
	return t.first*10 + t.last, nil
}

func isdigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
