package game

// enabledBugTypesInOrder lists the bug types active under params, in a
// fixed canonical order, for sizing and indexing observation planes.
func enabledBugTypesInOrder(params GameParams) []BugType {
	all := []BugType{Queen, Ant, Grasshopper, Spider, Beetle, Mosquito, Ladybug, Pillbug}
	out := make([]BugType, 0, len(all))
	for _, bug := range all {
		if params.bugTypeEnabled(bug) {
			out = append(out, bug)
		}
	}
	return out
}

// ObservationTensor renders the board as planes of shape [P, 2R+1, 2R+1]
// flattened row-major, P = 2*B + 6 where B is the number of enabled bug
// types: per enabled bug type a "mine" then an "opponent" plane, then
// mine/opponent pinned, mine/opponent placeable and mine/opponent covered.
// Cell (q, r) lands at [r+R, q+R] within each plane.
func (g *GameState) ObservationTensor(player int) []float32 {
	me := Colour(player)
	opp := OtherColour(me)
	radius := g.board.radius
	dim := 2*radius + 1

	bugs := enabledBugTypesInOrder(g.params)
	planeCount := 2*len(bugs) + 6
	out := make([]float32, planeCount*dim*dim)

	plane := 0
	set := func(q, r int) { out[plane*dim*dim+(r+radius)*dim+(q+radius)] = 1 }
	fill := func(pred func(Position) bool) {
		for q := -radius; q <= radius; q++ {
			for r := -radius; r <= radius; r++ {
				pos := Position{Q: int8(q), R: int8(r)}
				if pos.DistanceTo(OriginPosition) > radius {
					continue
				}
				if pred(pos) {
					set(q, r)
				}
			}
		}
		plane++
	}

	for _, bug := range bugs {
		fill(func(pos Position) bool {
			t := g.board.TopTileAt(pos)
			return t.HasValue() && t.GetBugType() == bug && t.GetColour() == me
		})
		fill(func(pos Position) bool {
			t := g.board.TopTileAt(pos)
			return t.HasValue() && t.GetBugType() == bug && t.GetColour() == opp
		})
	}

	fill(func(pos Position) bool {
		t := g.board.TopTileAt(pos)
		return t.HasValue() && t.GetColour() == me && g.board.IsPinnedPos(pos)
	})
	fill(func(pos Position) bool {
		t := g.board.TopTileAt(pos)
		return t.HasValue() && t.GetColour() == opp && g.board.IsPinnedPos(pos)
	})
	fill(func(pos Position) bool { return g.board.IsPlaceable(pos, me) })
	fill(func(pos Position) bool { return g.board.IsPlaceable(pos, opp) })
	fill(func(pos Position) bool { return g.board.IsColumnCoveredBy(pos, me) })
	fill(func(pos Position) bool { return g.board.IsColumnCoveredBy(pos, opp) })

	return out
}
