// Package extract selects the lines of "the diagram" out of a larger
// markdown document: either the Nth fenced code block or the first block
// after a matching heading.
package extract

import (
	"fmt"
	"strings"
)

// HeadingNotFoundError reports that no markdown heading matched the
// requested text.
type HeadingNotFoundError struct {
	Heading string
}

func (e *HeadingNotFoundError) Error() string {
	return fmt.Sprintf("no heading matching %q found", e.Heading)
}

// BlockIndexError reports a fenced-block index outside the document.
type BlockIndexError struct {
	Index int
	Have  int
}

func (e *BlockIndexError) Error() string {
	return fmt.Sprintf("block %d not found (have %d blocks)", e.Index, e.Have)
}

// Blocks returns the contents of every fenced code block in document order,
// one slice of lines per block. Fences are lines whose trimmed text starts
// with ```.
func Blocks(text string) [][]string {
	return blocksAfter(strings.Split(text, "\n"), 0)
}

func blocksAfter(lines []string, start int) [][]string {
	var blocks [][]string
	var current []string
	inBlock := false
	for _, line := range lines[start:] {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if inBlock {
				blocks = append(blocks, current)
				current = nil
			} else {
				current = []string{}
			}
			inBlock = !inBlock
			continue
		}
		if inBlock {
			current = append(current, line)
		}
	}
	return blocks
}

// ByIndex returns the 1-based nth fenced code block.
func ByIndex(text string, n int) ([]string, error) {
	blocks := Blocks(text)
	if n < 1 || n > len(blocks) {
		return nil, &BlockIndexError{Index: n, Have: len(blocks)}
	}
	return blocks[n-1], nil
}

// AfterHeading returns the first fenced code block following the first
// markdown heading whose text contains heading, case-insensitively.
func AfterHeading(text, heading string) ([]string, error) {
	lines := strings.Split(text, "\n")
	needle := strings.ToLower(heading)
	at := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "#") && strings.Contains(strings.ToLower(line), needle) {
			at = i + 1
			break
		}
	}
	if at < 0 {
		return nil, &HeadingNotFoundError{Heading: heading}
	}
	blocks := blocksAfter(lines, at)
	if len(blocks) == 0 {
		return nil, &BlockIndexError{Index: 1, Have: 0}
	}
	return blocks[0], nil
}
