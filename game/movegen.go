package game

// GenerateAllMoves returns every legal Move for colour at the current board
// state: every placement, plus (once colour's Queen is in play) every
// movement and special ability of colour's tiles, each distinct Move listed
// once (a Pillbug lift can encode to the same Move as the lifted tile's own
// slide). Does not include the pass move - callers add that themselves when
// this returns empty.
func (b *Board) GenerateAllMoves(colour Colour) []Move {
	moves := b.GeneratePlacementMoves(colour)

	if b.IsInPlay(TileFrom(colour, Queen, 1)) {
		seen := make(map[Move]bool)
		for _, tile := range TilesOfColour(colour) {
			if !b.IsInPlay(tile) || b.IsCoveredTile(tile) {
				continue
			}
			for _, m := range b.generateMovesForTile(tile) {
				if !seen[m] {
					seen[m] = true
					moves = append(moves, m)
				}
			}
		}
	}
	return moves
}

// GeneratePlacementMoves returns every legal placement for colour: an
// unplayed, expansion-enabled tile onto a square touching colour's own
// tiles only (or the board origin, for the very first move of the game, or
// any neighbour of the first tile, for the second).
// Enforces the Queen-Bee placement rule: it may not be a player's first
// placement, and it must be played by their fourth.
func (b *Board) GeneratePlacementMoves(colour Colour) []Move {
	placedCount := 0
	for _, t := range TilesOfColour(colour) {
		if b.IsInPlay(t) {
			placedCount++
		}
	}
	queenInPlay := b.IsInPlay(TileFrom(colour, Queen, 1))
	mustPlaceQueen := !queenInPlay && placedCount == 3
	opening := len(b.playedTiles) == 0

	var positions []Position
	if opening {
		positions = []Position{OriginPosition}
	} else {
		positions = b.PlaceablePositions(colour)
	}
	if len(positions) == 0 {
		return nil
	}

	var moves []Move
	for bug := BugType(0); bug < NumBugTypes; bug++ {
		if mustPlaceQueen && bug != Queen {
			continue
		}
		if bug == Queen && placedCount == 0 {
			continue
		}
		if !b.params.bugTypeEnabled(bug) {
			continue
		}
		for ord := 1; ord <= bugCounts[bug]; ord++ {
			tile := TileFrom(colour, bug, ord)
			if b.IsInPlay(tile) {
				continue
			}
			for _, pos := range positions {
				if opening {
					moves = append(moves, Move{From: tile, To: NoneTile, Direction: Above})
				} else {
					moves = append(moves, b.encodeMove(tile, pos))
				}
			}
		}
	}
	return moves
}

// generateMovesForTile returns tile's own movement options plus, for a
// Pillbug or an adjacent-to-a-Pillbug Mosquito, its special lift-and-place
// moves. Pinning only suppresses tile's own movement - a special ability
// targets a different tile, checked independently.
func (b *Board) generateMovesForTile(tile Tile) []Move {
	var positions []Position
	if !b.IsPinnedTile(tile) {
		switch tile.GetBugType() {
		case Queen:
			positions = b.GenerateValidSlides(tile, 1)
		case Ant:
			positions = b.GenerateValidSlides(tile, -1)
		case Grasshopper:
			positions = b.GenerateValidGrasshopperPositions(tile)
		case Spider:
			positions = b.GenerateValidSlides(tile, 3)
		case Beetle:
			positions = b.GenerateValidClimbs(tile)
		case Mosquito:
			positions = b.GenerateValidMosquitoPositions(tile)
		case Ladybug:
			positions = b.GenerateValidLadybugPositions(tile)
		case Pillbug:
			positions = b.GenerateValidSlides(tile, 1)
		}
	}

	var specials []Move
	switch tile.GetBugType() {
	case Pillbug:
		specials = b.GenerateValidPillbugSpecials(tile)
	case Mosquito:
		specials = b.GenerateValidMosquitoSpecials(tile)
	}

	moves := make([]Move, 0, len(positions)+len(specials))
	for _, p := range positions {
		moves = append(moves, b.encodeMove(tile, p))
	}
	moves = append(moves, specials...)
	return moves
}

// encodeMove picks the canonical (to-tile, direction) encoding of moving
// from to dest: climbing directly onto an occupied cell is always encoded
// relative to the tile being climbed onto with Direction Above; landing on
// empty ground is encoded relative to whichever occupied neighbour of dest
// has the lowest Direction index, so each destination has exactly one
// encoding regardless of how many tiles border it.
func (b *Board) encodeMove(from Tile, dest Position) Move {
	if dest.H > 0 {
		return Move{From: from, To: b.TileBelow(dest), Direction: Above}
	}
	for d := Direction(0); d < NumCardinalDirections; d++ {
		n := dest.NeighbourAt(d)
		if t := b.TopTileAt(n); t.HasValue() && t != from {
			return Move{From: from, To: t, Direction: OppositeDirection(d)}
		}
	}
	return Move{From: from, To: NoneTile, Direction: Above}
}
