package io

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/maxima/pkg/errors"
	"github.com/matzehuels/maxima/pkg/geom"
	"github.com/matzehuels/maxima/pkg/layertree"
)

var sampleLayers = []layertree.Layer{
	{MaxY: 5, Points: []geom.Point{{X: 1, Y: 5}}},
	{MaxY: 3, Points: []geom.Point{{X: 4, Y: 1}, {X: 2, Y: 3}}},
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleLayers); err != nil {
		t.Fatal(err)
	}
	want := "1, 5\n\n4, 1\n2, 3\n\n"
	if buf.String() != want {
		t.Errorf("WriteText = %q, want %q", buf.String(), want)
	}
}

func TestWriteTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("WriteText(nil) = %q, want empty", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleLayers); err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Layers []struct {
			MaxY   int `json:"max_y"`
			Points []struct {
				X, Y int
			} `json:"points"`
		} `json:"layers"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(doc.Layers) != 2 || doc.Layers[1].MaxY != 3 || doc.Layers[1].Points[0].X != 4 {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{\n  \"layers\": []\n}\n" {
		t.Errorf("WriteJSON(nil) = %q", got)
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()

	textPath := filepath.Join(dir, "output1")
	if err := Export(sampleLayers, textPath, FormatText); err != nil {
		t.Fatalf("Export text: %v", err)
	}
	data, _ := os.ReadFile(textPath)
	if string(data) != "1, 5\n\n4, 1\n2, 3\n\n" {
		t.Errorf("text output = %q", data)
	}

	if err := Export(sampleLayers, filepath.Join(dir, "output1.json"), FormatJSON); err != nil {
		t.Fatalf("Export json: %v", err)
	}

	if err := Export(sampleLayers, filepath.Join(dir, "x"), "yaml"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad format error = %v", err)
	}

	err := Export(sampleLayers, filepath.Join(dir, "missing", "output1"), FormatText)
	if !errors.Is(err, errors.ErrCodeOutputOpen) {
		t.Errorf("unwritable path error = %v, want OUTPUT_OPEN", err)
	}
}

func TestInputRoundTrip(t *testing.T) {
	pts := Generate(rand.New(rand.NewPCG(1, 1)), 50, 20)
	path := filepath.Join(t.TempDir(), InputName(len(pts)))
	if err := ExportInput(pts, path); err != nil {
		t.Fatalf("ExportInput: %v", err)
	}
	got, err := ImportPoints(path)
	if err != nil {
		t.Fatalf("ImportPoints: %v", err)
	}
	if !slices.Equal(got, pts) {
		t.Error("points changed across write and read")
	}
}

func TestGenerateBounds(t *testing.T) {
	pts := Generate(rand.New(rand.NewPCG(2, 3)), 1000, 10)
	if len(pts) != 1000 {
		t.Fatalf("len = %d", len(pts))
	}
	for _, p := range pts {
		if p.X < 0 || p.X > 10 || p.Y < 0 || p.Y > 10 {
			t.Fatalf("point %v out of [0, 10]", p)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(rand.New(rand.NewPCG(9, 9)), 100, DefaultCoordMax)
	b := Generate(rand.New(rand.NewPCG(9, 9)), 100, DefaultCoordMax)
	if !slices.Equal(a, b) {
		t.Error("same seed should generate the same points")
	}
}
