package diagram

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Kind classifies a single character position. The classification is purely
// lexical: it looks at the glyph alone, never at its neighbours.
type Kind uint8

const (
	// KindSpace is a blank cell.
	KindSpace Kind = iota
	// KindJunction is the corner/intersection glyph '+'.
	KindJunction
	// KindHorizontal is the horizontal border glyph '-'.
	KindHorizontal
	// KindVertical is the vertical connector glyph '|'.
	KindVertical
	// KindArrow is one of '^', 'v', '<', '>'.
	KindArrow
	// KindDiagonal is '/' or '\'.
	KindDiagonal
	// KindLabel is any other printable ASCII character (free text).
	KindLabel
	// KindBanned is a disallowed glyph: Unicode box drawing, fancy arrows,
	// geometric shapes, or anything wider than one terminal cell.
	KindBanned
)

func (k Kind) String() string {
	switch k {
	case KindSpace:
		return "space"
	case KindJunction:
		return "junction"
	case KindHorizontal:
		return "horizontal"
	case KindVertical:
		return "vertical"
	case KindArrow:
		return "arrow"
	case KindDiagonal:
		return "diagonal"
	case KindLabel:
		return "label"
	case KindBanned:
		return "banned"
	}
	return "unknown"
}

// bannedGlyphs are the characters text generators commonly substitute for
// ASCII box corners, lines, and arrows.
const bannedGlyphs = "┌┐└┘─│├┤┬┴┼╔╗╚╝═║╭╮╰╯" +
	"▶▼◀▲●○◆◇" +
	"→←↑↓↔↕" +
	"━┃┏┓┗┛┣┫┳┻╋"

var banned = func() map[rune]bool {
	m := make(map[rune]bool, len(bannedGlyphs))
	for _, r := range bannedGlyphs {
		m[r] = true
	}
	return m
}()

// Classify tags a single rune. Any non-ASCII rune is banned (the toolkit's
// scope is ASCII-only diagrams), as is anything go-runewidth reports as
// occupying more or less than one terminal cell.
func Classify(r rune) Kind {
	switch r {
	case ' ':
		return KindSpace
	case '+':
		return KindJunction
	case '-':
		return KindHorizontal
	case '|':
		return KindVertical
	case '^', 'v', '<', '>':
		return KindArrow
	case '/', '\\':
		return KindDiagonal
	}
	if banned[r] || r > unicode.MaxASCII || runewidth.RuneWidth(r) != 1 {
		return KindBanned
	}
	return KindLabel
}

// Delta is a coordinate offset in (row, col) space.
type Delta struct {
	DRow int
	DCol int
}

// JunctionRows maps a vertical-family glyph to the row offsets of the border
// rows it must join through: the undirected '|' is checked on both sides,
// while '^' and 'v' only meet a border in the direction they travel.
var JunctionRows = map[rune][]int{
	'|': {-1, +1},
	'^': {-1},
	'v': {+1},
}

// ArrowBackward maps an arrow glyph to the offset of the cell it points away
// from, i.e. where its originating line must be.
var ArrowBackward = map[rune]Delta{
	'^': {DRow: +1},
	'v': {DRow: -1},
	'<': {DCol: +1},
	'>': {DCol: -1},
}
