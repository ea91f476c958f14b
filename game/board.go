package game

import (
	"strings"

	"hive/utils"
)

// Board is the finite, flat-array store backing an infinite hex grid: the
// top-of-stack tile at every axial cell within radius, the side list of
// tiles buried beneath another, and the tile -> position index: a flat
// array over a hash map, sized once at construction.
type Board struct {
	params    GameParams
	radius    int
	squareDim int

	grid         []Tile             // top-of-stack tile per axial cell, indexed by axialIndex
	positionOf   [NumTiles]Position // tile -> its current position, or NullPosition
	coveredTiles [7]Tile            // buried tiles, roughly height-ordered
	playedTiles  []Tile             // append-only, in placement order

	lastMovedTile Tile
	lastMovedFrom Position

	colourInfluence    [2]map[Position]struct{}
	articulationPoints map[Position]struct{}

	largestRadius int
}

// NewBoard creates an empty board sized for params.
func NewBoard(params GameParams) *Board {
	params = params.normalized()
	radius := params.BoardRadius
	dim := 2*radius + 1

	b := &Board{
		params:    params,
		radius:    radius,
		squareDim: dim,
		grid:      make([]Tile, dim*dim),
	}
	for i := range b.grid {
		b.grid[i] = NoneTile
	}
	for t := Tile(0); t < NumTiles; t++ {
		b.positionOf[t] = NullPosition
	}
	for i := range b.coveredTiles {
		b.coveredTiles[i] = NoneTile
	}
	b.lastMovedTile = NoneTile
	b.lastMovedFrom = NullPosition
	b.colourInfluence[White] = make(map[Position]struct{})
	b.colourInfluence[Black] = make(map[Position]struct{})
	b.articulationPoints = make(map[Position]struct{})
	b.UpdateInfluence(White)
	b.UpdateInfluence(Black)
	return b
}

// Radius returns the board's fixed radius.
func (b *Board) Radius() int { return b.radius }

// SquareDimensions is the side length of the flattened square grid backing
// the hex board: 2*Radius()+1.
func (b *Board) SquareDimensions() int { return b.squareDim }

// LargestRadius is the largest hex distance from the origin any tile has
// ever reached, even if it never actually overflowed the board.
func (b *Board) LargestRadius() int { return b.largestRadius }

func (b *Board) axialIndex(q, r int8) int {
	return int(q) + b.radius + (int(r)+b.radius)*b.squareDim
}

// TopTileAt is a bounds-checked lookup of the tile currently on top at pos
// (height ignored: only the axial cell matters).
func (b *Board) TopTileAt(pos Position) Tile {
	if pos.DistanceTo(OriginPosition) > b.radius {
		return NoneTile
	}
	return b.grid[b.axialIndex(pos.Q, pos.R)]
}

// TileBelow returns the tile directly beneath pos, which must have H > 0.
func (b *Board) TileBelow(pos Position) Tile {
	if pos.H <= 0 {
		panic("game.Board.TileBelow: position has no tile below ground")
	}
	below := Position{pos.Q, pos.R, pos.H - 1}
	if top := b.TopTileAt(below); top.HasValue() && b.positionOf[top] == below {
		return top
	}
	for _, t := range b.coveredTiles {
		if t.HasValue() && b.positionOf[t] == below {
			return t
		}
	}
	return NoneTile
}

// PositionOf returns tile's current position, or NullPosition if unplayed.
func (b *Board) PositionOf(tile Tile) Position {
	if !tile.HasValue() {
		return NullPosition
	}
	return b.positionOf[tile]
}

// PlayedTiles returns every tile that has ever been placed, in placement
// order. Callers must not mutate the returned slice.
func (b *Board) PlayedTiles() []Tile { return b.playedTiles }

// IsInPlay reports whether tile currently occupies a position on the board.
func (b *Board) IsInPlay(tile Tile) bool {
	return tile.HasValue() && b.positionOf[tile] != NullPosition
}

// IsCoveredPos reports whether some tile is stacked above pos.
func (b *Board) IsCoveredPos(pos Position) bool {
	for _, t := range b.coveredTiles {
		if t.HasValue() && b.positionOf[t] == pos {
			return true
		}
	}
	return false
}

// IsCoveredTile reports whether tile itself is buried.
func (b *Board) IsCoveredTile(tile Tile) bool {
	if !tile.HasValue() {
		return false
	}
	return utils.FindIndex(b.coveredTiles[:], tile) >= 0
}

// IsColumnCoveredBy reports whether some tile of colour c is buried
// anywhere in the stack at pos's axial cell.
func (b *Board) IsColumnCoveredBy(pos Position, c Colour) bool {
	ground := pos.Grounded()
	for _, t := range b.coveredTiles {
		if t.HasValue() && t.GetColour() == c && b.positionOf[t].Grounded() == ground {
			return true
		}
	}
	return false
}

// IsPinnedPos reports whether pos is a cut vertex of the ground-level hive.
func (b *Board) IsPinnedPos(pos Position) bool {
	_, pinned := b.articulationPoints[pos]
	return pinned
}

// IsPinnedTile reports whether tile sits at a cut vertex and so cannot move
// (subject to the Pillbug-special exception enforced by the caller).
func (b *Board) IsPinnedTile(tile Tile) bool {
	if !tile.HasValue() {
		return false
	}
	return b.IsPinnedPos(b.positionOf[tile])
}

// IsQueenSurrounded reports whether colour's Queen is in play and all six
// of its cardinal neighbours are occupied.
func (b *Board) IsQueenSurrounded(c Colour) bool {
	queen := TileFrom(c, Queen, 1)
	if !b.IsInPlay(queen) {
		return false
	}
	for _, n := range b.positionOf[queen].Neighbours() {
		if !b.TopTileAt(n).HasValue() {
			return false
		}
	}
	return true
}

// LastMovedTile is the tile moved by the most recently applied move, reset
// by Pass.
func (b *Board) LastMovedTile() Tile { return b.lastMovedTile }

// LastMovedFrom is that tile's prior position.
func (b *Board) LastMovedFrom() Position { return b.lastMovedFrom }

// Pass clears the turn-scoped last-moved bookkeeping.
func (b *Board) Pass() {
	b.lastMovedTile = NoneTile
	b.lastMovedFrom = NullPosition
}

// IsGated reports whether sliding/climbing through the edge leaving pos in
// direction d is blocked. toIgnore excludes the moving tile's own start
// cell from the occupancy check (it is departing, so it should never gate
// its own exit).
func (b *Board) IsGated(pos Position, d Direction, toIgnore Position) bool {
	cw := pos.NeighbourAt(ClockwiseDirection(d))
	ccw := pos.NeighbourAt(CounterClockwiseDirection(d))

	cwExists := cw != toIgnore && b.PositionOf(b.TopTileAt(cw)).H >= pos.H
	ccwExists := ccw != toIgnore && b.PositionOf(b.TopTileAt(ccw)).H >= pos.H

	if pos.H == 0 {
		// at ground, exactly one of the two flanking cells must be occupied
		// to keep the slider touching the hive without squeezing through
		return cwExists == ccwExists
	}
	return cwExists && ccwExists
}

// NeighboursOf returns the top tiles cardinally adjacent to pos, excluding
// any neighbour at toIgnore. toIgnore is how the moving tile's own start
// cell is kept from counting towards the destination's connectivity.
func (b *Board) NeighboursOf(pos Position, toIgnore Position) []Tile {
	var out []Tile
	for _, n := range pos.Neighbours() {
		if n == toIgnore {
			continue
		}
		if t := b.TopTileAt(n); t.HasValue() {
			out = append(out, t)
		}
	}
	return out
}

// IsConnected reports whether pos would still touch the hive once toIgnore
// (the moving tile's start cell) is discounted - the One-Hive rule applied
// mid-motion.
func (b *Board) IsConnected(pos Position, toIgnore Position) bool {
	return len(b.NeighboursOf(pos, toIgnore)) > 0
}

// ApplyMove commits move to the board: it mutates the grid, the covered
// list, the tile->position index, the influence sets and the articulation
// points. It does not touch turn order or move numbering - that is the
// GameState's responsibility. Returns false if the destination would carry
// the hive outside the board's fixed radius; the only state it then changes
// is the LargestRadius high-water mark.
func (b *Board) ApplyMove(move Move) bool {
	if move.IsPass() {
		b.Pass()
		return true
	}

	var newPos Position
	if !move.To.HasValue() {
		newPos = OriginPosition
	} else {
		newPos = b.positionOf[move.To].NeighbourAt(move.Direction)
		if newPos.H > 0 {
			if top := b.TopTileAt(newPos); top.HasValue() {
				newPos.H = b.positionOf[top].H + 1
			} else {
				newPos.H = 0
			}
		}
	}

	dist := newPos.DistanceTo(OriginPosition)
	if dist > b.largestRadius {
		b.largestRadius = dist
	}
	if dist > b.radius {
		return false
	}

	oldPos := b.positionOf[move.From]
	if oldPos == NullPosition {
		b.playedTiles = append(b.playedTiles, move.From)
	}
	if newPos != oldPos {
		b.lastMovedFrom = oldPos
	}

	newIdx := b.axialIndex(newPos.Q, newPos.R)
	if existing := b.grid[newIdx]; existing.HasValue() {
		for i := range b.coveredTiles {
			if !b.coveredTiles[i].HasValue() {
				b.coveredTiles[i] = existing
				break
			}
		}
	}

	b.grid[newIdx] = move.From
	b.positionOf[move.From] = newPos
	b.lastMovedTile = move.From

	if oldPos.H > 0 {
		oldGround := oldPos.Grounded()
		for i := len(b.coveredTiles) - 1; i >= 0; i-- {
			t := b.coveredTiles[i]
			if !t.HasValue() || b.positionOf[t].Grounded() != oldGround {
				continue
			}
			oldIdx := b.axialIndex(oldPos.Q, oldPos.R)
			b.grid[oldIdx] = t
			copy(b.coveredTiles[i:], b.coveredTiles[i+1:])
			b.coveredTiles[len(b.coveredTiles)-1] = NoneTile
			break
		}
	} else if oldPos != NullPosition {
		b.grid[b.axialIndex(oldPos.Q, oldPos.R)] = NoneTile
	}

	// A single placement or move can open or close placement squares for
	// either colour (it can newly touch an enemy tile, or bury one beneath
	// a climb), so both influence sets are recomputed every time.
	b.UpdateInfluence(White)
	b.UpdateInfluence(Black)
	b.UpdateArticulationPoints()

	return true
}

// Clone returns a deep copy that shares no mutable state with b.
func (b *Board) Clone() *Board {
	out := &Board{
		params:        b.params,
		radius:        b.radius,
		squareDim:     b.squareDim,
		grid:          append([]Tile(nil), b.grid...),
		positionOf:    b.positionOf,
		coveredTiles:  b.coveredTiles,
		playedTiles:   append([]Tile(nil), b.playedTiles...),
		lastMovedTile: b.lastMovedTile,
		lastMovedFrom: b.lastMovedFrom,
		largestRadius: b.largestRadius,
	}
	out.colourInfluence[White] = copyPositionSet(b.colourInfluence[White])
	out.colourInfluence[Black] = copyPositionSet(b.colourInfluence[Black])
	out.articulationPoints = copyPositionSet(b.articulationPoints)
	return out
}

// Render is a debug-only ASCII dump of the occupied top-tile cells, in
// axial coordinates; nothing in the package calls it, it exists for manual
// inspection.
func (b *Board) Render() string {
	var sb strings.Builder
	for r := -b.radius; r <= b.radius; r++ {
		sb.WriteString(strings.Repeat(" ", abs(r)))
		for q := -b.radius; q <= b.radius; q++ {
			pos := Position{Q: int8(q), R: int8(r)}
			if pos.DistanceTo(OriginPosition) > b.radius {
				continue
			}
			if t := b.TopTileAt(pos); t.HasValue() {
				sb.WriteString(TileUHP(t))
			} else {
				sb.WriteString(".")
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func copyPositionSet(m map[Position]struct{}) map[Position]struct{} {
	out := make(map[Position]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}
