package io

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/matzehuels/maxima/pkg/errors"
	"github.com/matzehuels/maxima/pkg/geom"
)

// maxPrealloc caps the up-front buffer so a large declared count does not
// reserve memory before the points are actually read.
const maxPrealloc = 1 << 16

// ReadPoints decodes the point count and that many "x y" pairs from r.
//
// ReadPoints does not close r.
func ReadPoints(r io.Reader) ([]geom.Point, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		return strconv.Atoi(sc.Text())
	}

	n, err := next()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInputParse, err, "reading number of points")
	}
	if err := errors.ValidatePointCount(n); err != nil {
		return nil, err
	}

	pts := make([]geom.Point, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		x, err := next()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInputParse, err, "reading point at index %d", i)
		}
		y, err := next()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInputParse, err, "reading point at index %d", i)
		}
		pts = append(pts, geom.Point{X: x, Y: y})
	}
	return pts, nil
}

// ImportPoints reads the input file at path.
func ImportPoints(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInputOpen, err, "open input %s", path)
	}
	defer f.Close()

	return ReadPoints(f)
}
