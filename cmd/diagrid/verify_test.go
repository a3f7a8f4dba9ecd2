package main

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"diagrid/internal/extract"
)

const markdownInput = "# Overview\n\n```\nblock one\n```\n\n## Flow\n\n```\n+--+\n+--+\n```\n"

func TestReadDiagramLines_Stdin(t *testing.T) {
	got, err := readDiagramLines(strings.NewReader("+--+\n+--+\n"), nil, "", 0)
	if err != nil {
		t.Fatalf("readDiagramLines() error = %v", err)
	}
	want := []string{"+--+", "+--+"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadDiagramLines_Block(t *testing.T) {
	got, err := readDiagramLines(strings.NewReader(markdownInput), nil, "", 2)
	if err != nil {
		t.Fatalf("readDiagramLines() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"+--+", "+--+"}) {
		t.Errorf("got %v", got)
	}
}

func TestReadDiagramLines_Heading(t *testing.T) {
	got, err := readDiagramLines(strings.NewReader(markdownInput), nil, "flow", 0)
	if err != nil {
		t.Fatalf("readDiagramLines() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"+--+", "+--+"}) {
		t.Errorf("got %v", got)
	}
}

func TestBatchLoader(t *testing.T) {
	if batchLoader("", 0) != nil {
		t.Error("batchLoader with no selector should be nil (whole file)")
	}

	byBlock := batchLoader("", 2)
	got, err := byBlock(markdownInput)
	if err != nil {
		t.Fatalf("block loader error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"+--+", "+--+"}) {
		t.Errorf("block loader got %v", got)
	}

	byHeading := batchLoader("flow", 0)
	got, err = byHeading(markdownInput)
	if err != nil {
		t.Fatalf("heading loader error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"+--+", "+--+"}) {
		t.Errorf("heading loader got %v", got)
	}

	if _, err := byBlock("no fences here"); err == nil {
		t.Error("block loader on fence-less text should error")
	}
}

func TestReadDiagramLines_ExtractionErrors(t *testing.T) {
	_, err := readDiagramLines(strings.NewReader(markdownInput), nil, "no such heading", 0)
	var hnf *extract.HeadingNotFoundError
	if !errors.As(err, &hnf) {
		t.Errorf("error = %v, want *HeadingNotFoundError", err)
	}

	_, err = readDiagramLines(strings.NewReader(markdownInput), nil, "", 9)
	var bie *extract.BlockIndexError
	if !errors.As(err, &bie) {
		t.Errorf("error = %v, want *BlockIndexError", err)
	}
}
