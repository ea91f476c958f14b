package game

// BugType is the closed set of eight bug types Hive is played with.
type BugType uint8

const (
	Queen BugType = iota
	Ant
	Grasshopper
	Spider
	Beetle
	Mosquito
	Ladybug
	Pillbug
	NumBugTypes
	NoneBugType
)

// bugCounts is the per-type physical tile count for one colour.
var bugCounts = [NumBugTypes]int{1, 3, 3, 2, 2, 1, 1, 1}

// Colour is a tile's physical colour, distinct from the Player index used
// by the game-framework boundary.
type Colour uint8

const (
	White Colour = iota
	Black
)

func OtherColour(c Colour) Colour {
	if c == White {
		return Black
	}
	return White
}

// Tile identifies one of the 28 physical pieces. The value is dense and
// totally ordered: white's 14 tiles first (Queen, 3 Ants, 3 Grasshoppers,
// 2 Spiders, 2 Beetles, Mosquito, Ladybug, Pillbug), then black's 14 in the
// same layout. NoneTile is the sentinel for "no tile".
type Tile uint8

const (
	wQ Tile = iota
	wA1
	wA2
	wA3
	wG1
	wG2
	wG3
	wS1
	wS2
	wB1
	wB2
	wM
	wL
	wP
	bQ
	bA1
	bA2
	bA3
	bG1
	bG2
	bG3
	bS1
	bS2
	bB1
	bB2
	bM
	bL
	bP
	NumTiles
)

// NoneTile is the sentinel value meaning "no tile".
const NoneTile Tile = NumTiles

// HasValue reports whether t identifies a real physical tile.
func (t Tile) HasValue() bool {
	return t < NoneTile
}

// tilesPerColour is the number of tiles in each colour's half (14).
const tilesPerColour = int(NumTiles) / 2

// GetBugType decodes t's bug type. NoneTile decodes to NoneBugType.
func (t Tile) GetBugType() BugType {
	if !t.HasValue() {
		return NoneBugType
	}
	ord := uint8(t) % uint8(tilesPerColour)
	switch {
	case ord == uint8(wQ):
		return Queen
	case ord <= uint8(wA3):
		return Ant
	case ord <= uint8(wG3):
		return Grasshopper
	case ord <= uint8(wS2):
		return Spider
	case ord <= uint8(wB2):
		return Beetle
	case ord == uint8(wM):
		return Mosquito
	case ord == uint8(wL):
		return Ladybug
	default:
		return Pillbug
	}
}

// GetColour decodes t's colour. Panics if t is NoneTile.
func (t Tile) GetColour() Colour {
	if !t.HasValue() {
		panic("Tile.GetColour: tile has no value")
	}
	if t < bQ {
		return White
	}
	return Black
}

// GetOrdinal decodes which copy of its bug type t is: 1-indexed.
func (t Tile) GetOrdinal() int {
	if !t.HasValue() {
		return 0
	}
	switch t {
	case wA2, wG2, wS2, wB2, bA2, bG2, bS2, bB2:
		return 2
	case wA3, wG3, bA3, bG3:
		return 3
	default:
		return 1
	}
}

// TilesOfColour returns the ordered 14-tile list belonging to colour c.
func TilesOfColour(c Colour) []Tile {
	if c == White {
		return []Tile{wQ, wA1, wA2, wA3, wG1, wG2, wG3, wS1, wS2, wB1, wB2, wM, wL, wP}
	}
	return []Tile{bQ, bA1, bA2, bA3, bG1, bG2, bG3, bS1, bS2, bB1, bB2, bM, bL, bP}
}

// TileFrom looks up the tile identity for a (colour, bug type, ordinal)
// triple. Panics if the triple does not identify a physical tile.
func TileFrom(c Colour, bug BugType, ordinal int) Tile {
	if ordinal < 1 || ordinal > bugCounts[bug] {
		panic("game.TileFrom: ordinal out of range for bug type")
	}
	offset := 0
	for b := BugType(0); b < bug; b++ {
		offset += bugCounts[b]
	}
	base := wQ
	if c == Black {
		base = bQ
	}
	return base + Tile(offset+ordinal-1)
}
