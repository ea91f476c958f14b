package game

// UpdateInfluence recomputes the set of empty ground positions adjacent to
// at least one of colour's in-play tiles and touching no tile of the other
// colour - the set a new tile of colour may be placed into.
func (b *Board) UpdateInfluence(c Colour) {
	set := b.colourInfluence[c]
	for k := range set {
		delete(set, k)
	}

	if len(b.playedTiles) == 0 {
		if c == White {
			set[OriginPosition] = struct{}{}
		}
		return
	}
	if len(b.playedTiles) == 1 {
		// the second tile ever placed may go at any neighbour of the first
		only := b.playedTiles[0]
		for _, n := range b.positionOf[only].Neighbours() {
			set[n] = struct{}{}
		}
		return
	}

	for _, tile := range b.playedTiles {
		if tile.GetColour() != c || b.IsCoveredTile(tile) {
			continue
		}
		pos := b.positionOf[tile].Grounded()
		for _, n := range pos.Neighbours() {
			if b.TopTileAt(n).HasValue() {
				continue
			}
			if b.touchesOnlyColour(n, c) {
				b.colourInfluence[c][n] = struct{}{}
			}
		}
	}
}

// touchesOnlyColour reports whether every occupied neighbour of the empty
// position pos belongs to colour c.
func (b *Board) touchesOnlyColour(pos Position, c Colour) bool {
	for _, n := range pos.Neighbours() {
		if t := b.TopTileAt(n); t.HasValue() && t.GetColour() != c {
			return false
		}
	}
	return true
}

// IsPlaceable reports whether pos is currently a legal placement square for
// a new tile of colour c.
func (b *Board) IsPlaceable(pos Position, c Colour) bool {
	_, ok := b.colourInfluence[c][pos]
	return ok
}

// PlaceablePositions returns every legal placement square for colour c.
func (b *Board) PlaceablePositions(c Colour) []Position {
	out := make([]Position, 0, len(b.colourInfluence[c]))
	for pos := range b.colourInfluence[c] {
		out = append(out, pos)
	}
	return out
}
