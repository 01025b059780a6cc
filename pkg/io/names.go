package io

import (
	"path/filepath"
	"strconv"
)

const (
	inputPrefix  = "input"
	outputPrefix = "output"
)

// ExtractNumber returns the first run of decimal digits in s as an int, or
// 0 when s has none. Leading zeros are dropped ("input007" yields 7); runs
// too long for an int saturate.
func ExtractNumber(s string) int {
	i := 0
	for i < len(s) && !isDigit(s[i]) {
		i++
	}
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	if i == j {
		return 0
	}
	n, err := strconv.Atoi(s[i:j])
	if err != nil {
		// Only overflow is possible here.
		return int(^uint(0) >> 1)
	}
	return n
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// OutputName derives the output file name for an input path. The number is
// taken from the base name only, so directories with digits do not
// interfere; the result has no directory.
func OutputName(input string) string {
	return outputPrefix + strconv.Itoa(ExtractNumber(filepath.Base(input)))
}

// InputName returns the conventional input file name for n points.
func InputName(n int) string {
	return inputPrefix + strconv.Itoa(n)
}
