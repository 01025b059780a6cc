// Package io reads point sets and writes layer decompositions.
//
// # Input Format
//
// An input file starts with the number of points n, followed by n pairs of
// integers "x y". Tokens may be separated by any whitespace:
//
//	3
//	1 5
//	2 3
//	3 1
//
// Use [ImportPoints] to read a file, or [ReadPoints] to read from any
// io.Reader. Failures carry the codes of [github.com/matzehuels/maxima/pkg/errors]:
// INPUT_OPEN when the file cannot be opened, INPUT_PARSE when the count or a
// pair is missing or malformed, ALLOCATION when the declared count is too
// large to hold. Tokens after the last declared pair are ignored.
//
// # Output Format
//
// [WriteText] prints one "x, y" line per point and a blank line after each
// layer, layers from highest MaxY to lowest:
//
//	1, 5
//
//	2, 3
//
//	3, 1
//
// [WriteJSON] writes the same layers as a JSON document:
//
//	{"layers": [{"max_y": 5, "points": [{"x": 1, "y": 5}]}]}
//
// # File Names
//
// [OutputName] derives the output file name from the input name by taking
// the first run of decimal digits in its base name: "input42" becomes
// "output42". [InputName] is the inverse used by generated inputs.
//
// # Generation
//
// [Generate] draws uniform random points and [WriteInput] writes them in
// the input format above.
package io
