package io

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/maxima/pkg/errors"
	"github.com/matzehuels/maxima/pkg/geom"
)

func TestReadPoints(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []geom.Point
	}{
		{"lines", "3\n1 5\n2 3\n3 1\n", []geom.Point{{X: 1, Y: 5}, {X: 2, Y: 3}, {X: 3, Y: 1}}},
		{"single line", "2 7 8 -1 -2", []geom.Point{{X: 7, Y: 8}, {X: -1, Y: -2}}},
		{"mixed whitespace", "  2\r\n\t4\n4\n\n5 5", []geom.Point{{X: 4, Y: 4}, {X: 5, Y: 5}}},
		{"zero points", "0\n", []geom.Point{}},
		{"trailing tokens ignored", "1\n1 1\n9 9\n", []geom.Point{{X: 1, Y: 1}}},
		{"duplicates kept", "2\n3 3\n3 3\n", []geom.Point{{X: 3, Y: 3}, {X: 3, Y: 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadPoints(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadPoints: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ReadPoints = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadPointsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
		msg   string
	}{
		{"empty", "", errors.ErrCodeInputParse, "reading number of points"},
		{"bad count", "three\n", errors.ErrCodeInputParse, "reading number of points"},
		{"negative count", "-4\n", errors.ErrCodeInputParse, "negative"},
		{"huge count", "999999999999\n", errors.ErrCodeAllocation, "cannot allocate"},
		{"missing pair", "2\n1 1\n", errors.ErrCodeInputParse, "reading point at index 1"},
		{"half pair", "1\n7\n", errors.ErrCodeInputParse, "reading point at index 0"},
		{"bad coordinate", "2\n1 1\n2 x\n", errors.ErrCodeInputParse, "reading point at index 1"},
		{"float coordinate", "1\n1.5 2\n", errors.ErrCodeInputParse, "reading point at index 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPoints(strings.NewReader(tt.input))
			if !errors.Is(err, tt.code) {
				t.Fatalf("error = %v, want code %s", err, tt.code)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q should mention %q", err, tt.msg)
			}
		})
	}
}

func TestImportPoints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input2")
	if err := os.WriteFile(path, []byte("2\n5 6\n7 8\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := ImportPoints(path)
	if err != nil {
		t.Fatalf("ImportPoints: %v", err)
	}
	if want := []geom.Point{{X: 5, Y: 6}, {X: 7, Y: 8}}; !slices.Equal(got, want) {
		t.Errorf("ImportPoints = %v, want %v", got, want)
	}
}

func TestImportPointsMissingFile(t *testing.T) {
	_, err := ImportPoints(filepath.Join(t.TempDir(), "input404"))
	if !errors.Is(err, errors.ErrCodeInputOpen) {
		t.Errorf("error = %v, want INPUT_OPEN", err)
	}
}
