package game

// GenerateValidPillbugSpecials returns every lift-and-place Move available
// to the Pillbug at pillbug: for each uncovered, unpinned, ground-level
// neighbour other than the tile that moved last turn, every empty cell
// adjacent to the Pillbug that keeps the hive connected once that neighbour
// is lifted away. The ground-level slide-gate does not apply - the piece is
// carried over the top, not slid along the ground - but an upper gate still
// does: the lift passes through the cell directly above the Pillbug, and a
// pair of tiles at height one flanking that cell in the lift or drop
// direction pinches it shut just as the ordinary gate would at ground level.
func (b *Board) GenerateValidPillbugSpecials(pillbug Tile) []Move {
	if b.IsCoveredTile(pillbug) {
		return nil
	}
	pillbugPos := b.positionOf[pillbug]
	above := pillbugPos.NeighbourAt(Above)

	var moves []Move
	for sd := Direction(0); sd < NumCardinalDirections; sd++ {
		src := pillbugPos.NeighbourAt(sd)
		target := b.TopTileAt(src)
		if !target.HasValue() {
			continue
		}
		if target == b.lastMovedTile {
			continue // cannot undo the move just played
		}
		if b.positionOf[target].H != 0 {
			continue // only ground-level pieces can be lifted
		}
		if b.IsPinnedPos(src) {
			continue
		}
		if b.IsGated(above, sd, NullPosition) {
			continue // pinched lifting the piece up and over
		}

		for dd := Direction(0); dd < NumCardinalDirections; dd++ {
			dest := pillbugPos.NeighbourAt(dd)
			if dest == src {
				continue
			}
			if b.TopTileAt(dest).HasValue() {
				continue
			}
			if !b.IsConnected(dest, src) {
				continue
			}
			if b.IsGated(above, dd, NullPosition) {
				continue // pinched setting the piece back down
			}
			moves = append(moves, Move{From: target, To: pillbug, Direction: dd})
		}
	}
	return moves
}
