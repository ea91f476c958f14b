package game

// GenerateValidMosquitoPositions returns the union of the move destinations
// tile would have if it copied every distinct bug type adjacent to it -
// Mosquito excluded, since a Mosquito never copies another Mosquito. Each
// adjacent bug type is generated unconditionally and the results
// deduplicated by destination, rather than skipping a bug type because a
// broader one (e.g. Ant) was already seen - that kind of pruning is an
// optimization, not a rule, and deduplicating is the safer default when a
// ruling is ambiguous. If tile itself is stacked on top of the hive, it can
// only move as a Beetle, per the official rule that an elevated Mosquito
// loses every other bug's ability.
func (b *Board) GenerateValidMosquitoPositions(tile Tile) []Position {
	pos := b.positionOf[tile]
	if pos.H > 0 {
		return b.GenerateValidClimbs(tile)
	}

	seen := make(map[BugType]bool)
	destSet := make(map[Position]struct{})
	for _, n := range pos.Neighbours() {
		adjacent := b.TopTileAt(n)
		if !adjacent.HasValue() {
			continue
		}
		bug := adjacent.GetBugType()
		if bug == Mosquito || seen[bug] {
			continue
		}
		seen[bug] = true

		for _, p := range b.generateAs(tile, bug) {
			destSet[p] = struct{}{}
		}
	}

	out := make([]Position, 0, len(destSet))
	for p := range destSet {
		out = append(out, p)
	}
	return out
}

// GenerateValidMosquitoSpecials returns the Pillbug-special lift-and-place
// moves tile gains by sitting adjacent to a Pillbug. An elevated Mosquito
// gains no special ability, matching its Beetle-only restriction above.
func (b *Board) GenerateValidMosquitoSpecials(tile Tile) []Move {
	pos := b.positionOf[tile]
	if pos.H > 0 {
		return nil
	}
	for _, n := range pos.Neighbours() {
		if adjacent := b.TopTileAt(n); adjacent.HasValue() && adjacent.GetBugType() == Pillbug {
			return b.GenerateValidPillbugSpecials(tile)
		}
	}
	return nil
}

// generateAs generates tile's destinations as though it were bug, dispatching
// to the same per-type generator GenerateValidMoves uses.
func (b *Board) generateAs(tile Tile, bug BugType) []Position {
	switch bug {
	case Queen:
		return b.GenerateValidSlides(tile, 1)
	case Ant:
		return b.GenerateValidSlides(tile, -1)
	case Grasshopper:
		return b.GenerateValidGrasshopperPositions(tile)
	case Spider:
		return b.GenerateValidSlides(tile, 3)
	case Beetle:
		return b.GenerateValidClimbs(tile)
	case Ladybug:
		return b.GenerateValidLadybugPositions(tile)
	case Pillbug:
		return b.GenerateValidSlides(tile, 1)
	default:
		return nil
	}
}
