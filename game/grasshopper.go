package game

// GenerateValidGrasshopperPositions returns the landing cell, if any, for
// each of the six directions tile could jump in: the first empty cell past
// an unbroken run of at least one occupied cell. Grasshopper jumps ignore
// the gate rule entirely - they clear the hive rather than slide around it.
func (b *Board) GenerateValidGrasshopperPositions(tile Tile) []Position {
	start := b.positionOf[tile].Grounded()

	var out []Position
	for d := Direction(0); d < NumCardinalDirections; d++ {
		cur := start.NeighbourAt(d)
		if !b.TopTileAt(cur).HasValue() {
			continue // must clear at least one tile
		}
		for b.TopTileAt(cur).HasValue() {
			cur = cur.NeighbourAt(d)
		}
		out = append(out, cur)
	}
	return out
}
