package extract

import (
	"errors"
	"reflect"
	"testing"
)

const doc = `# First

intro text

` + "```" + `
block one
` + "```" + `

## Flow Diagram

some prose

` + "```" + `
+--+
|  |
+--+
` + "```" + `

### Other

` + "```" + `
block three
` + "```" + `
`

func TestBlocks(t *testing.T) {
	blocks := Blocks(doc)
	if len(blocks) != 3 {
		t.Fatalf("Blocks() found %d blocks, want 3", len(blocks))
	}
	if !reflect.DeepEqual(blocks[0], []string{"block one"}) {
		t.Errorf("block 1 = %v", blocks[0])
	}
}

func TestByIndex(t *testing.T) {
	got, err := ByIndex(doc, 2)
	if err != nil {
		t.Fatalf("ByIndex(2) error = %v", err)
	}
	want := []string{"+--+", "|  |", "+--+"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ByIndex(2) = %v, want %v", got, want)
	}
}

func TestByIndex_OutOfRange(t *testing.T) {
	for _, n := range []int{0, 4, -1} {
		_, err := ByIndex(doc, n)
		var bie *BlockIndexError
		if !errors.As(err, &bie) {
			t.Errorf("ByIndex(%d) error = %v, want *BlockIndexError", n, err)
			continue
		}
		if bie.Index != n || bie.Have != 3 {
			t.Errorf("ByIndex(%d): got Index=%d Have=%d", n, bie.Index, bie.Have)
		}
	}
}

func TestAfterHeading(t *testing.T) {
	got, err := AfterHeading(doc, "flow diagram")
	if err != nil {
		t.Fatalf("AfterHeading() error = %v", err)
	}
	want := []string{"+--+", "|  |", "+--+"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AfterHeading() = %v, want %v", got, want)
	}
}

func TestAfterHeading_NotFound(t *testing.T) {
	_, err := AfterHeading(doc, "missing section")
	var hnf *HeadingNotFoundError
	if !errors.As(err, &hnf) {
		t.Fatalf("error = %v, want *HeadingNotFoundError", err)
	}
	if hnf.Heading != "missing section" {
		t.Errorf("Heading = %q", hnf.Heading)
	}
}

func TestAfterHeading_NoBlockAfterHeading(t *testing.T) {
	_, err := AfterHeading("# Lonely heading\nno code here\n", "lonely")
	var bie *BlockIndexError
	if !errors.As(err, &bie) {
		t.Fatalf("error = %v, want *BlockIndexError", err)
	}
}
